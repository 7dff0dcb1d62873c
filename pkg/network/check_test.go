package network

import (
	"errors"
	"strings"
	"testing"

	errs "github.com/matzehuels/netgen/pkg/errors"
)

// triangle returns a valid three-station network with two links.
func triangle() *Network {
	return &Network{
		Stations: []Station{
			{Code: "1", Name: "A", Clients: []Client{{Name: "Ada Lovelace", Phone: "12345678"}}},
			{Code: "2", Name: "B", Clients: []Client{{Name: "Alan Turing", Phone: "87654321"}}},
			{Code: "3", Name: "C", Clients: []Client{{Name: "Kai Ueda", Phone: "11111111"}}},
		},
		Links: []Link{{A: "1", B: "2"}, {A: "3", B: "2"}},
	}
}

func TestCheckValid(t *testing.T) {
	if err := Check(triangle()); err != nil {
		t.Errorf("Check() = %v, want nil", err)
	}
}

func TestCheckViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(n *Network)
		want   string
	}{
		{
			name:   "self link",
			mutate: func(n *Network) { n.Links[1] = Link{A: "3", B: "3"} },
			want:   "self-link",
		},
		{
			name:   "duplicate reversed",
			mutate: func(n *Network) { n.Links[1] = Link{A: "2", B: "1"} },
			want:   "duplicates link 0",
		},
		{
			name:   "dangling",
			mutate: func(n *Network) { n.Links[1] = Link{A: "3", B: "9"} },
			want:   "unknown station 9",
		},
		{
			name:   "wrong count",
			mutate: func(n *Network) { n.Links = n.Links[:1] },
			want:   "want 2",
		},
		{
			name:   "no clients",
			mutate: func(n *Network) { n.Stations[0].Clients = nil },
			want:   "has 0 clients",
		},
		{
			name: "too many clients",
			mutate: func(n *Network) {
				for range 5 {
					n.Stations[1].Clients = append(n.Stations[1].Clients, Client{Name: "x", Phone: "12121212"})
				}
			},
			want: "has 6 clients",
		},
		{
			name:   "zero in phone",
			mutate: func(n *Network) { n.Stations[2].Clients[0].Phone = "10000000" },
			want:   "invalid phone",
		},
		{
			name:   "duplicate station",
			mutate: func(n *Network) { n.Stations[2].Code = "1" },
			want:   "duplicate station code 1",
		},
		{
			name: "too few stations",
			mutate: func(n *Network) {
				n.Stations = n.Stations[:2]
				n.Links = n.Links[:1]
			},
			want: "at least 3 stations",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := triangle()
			tt.mutate(n)

			err := Check(n)
			if err == nil {
				t.Fatal("Check() = nil, want error")
			}
			if !errs.Is(err, errs.ErrCodeDocument) {
				t.Errorf("Check() code = %v, want %v", errs.GetCode(err), errs.ErrCodeDocument)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Check() = %q, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestCheckCollectsAll(t *testing.T) {
	n := triangle()
	n.Links = []Link{{A: "1", B: "1"}, {A: "2", B: "7"}}
	n.Stations[0].Clients[0].Phone = "0"

	err := Check(n)
	var v errs.Violations
	if !errors.As(err, &v) {
		t.Fatalf("Check() = %v, want Violations cause", err)
	}
	if len(v) != 3 {
		t.Errorf("len(Violations) = %d, want 3: %v", len(v), v)
	}
}
