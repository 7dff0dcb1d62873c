package network

import (
	"reflect"
	"testing"

	"github.com/matzehuels/netgen/pkg/catalog"
	errs "github.com/matzehuels/netgen/pkg/errors"
)

func TestGenerateDefaultCatalog(t *testing.T) {
	c := catalog.Default()
	g := NewGenerator(NewRand(42), StrategyRejection)

	n, err := g.Generate(c)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if n.StationCount() != 25 {
		t.Errorf("StationCount() = %d, want 25", n.StationCount())
	}
	if n.LinkCount() != 277 {
		t.Errorf("LinkCount() = %d, want 277", n.LinkCount())
	}
	for i, s := range n.Stations {
		if s.Code != c.Stations[i].Code || s.Name != c.Stations[i].Name {
			t.Errorf("station %d = %s-%s, want %s", i, s.Code, s.Name, c.Stations[i])
		}
	}
	if err := Check(n); err != nil {
		t.Errorf("Check() = %v", err)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	for _, strategy := range Strategies {
		t.Run(string(strategy), func(t *testing.T) {
			a, err := NewGenerator(NewRand(99), strategy).Generate(catalog.Default())
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			b, err := NewGenerator(NewRand(99), strategy).Generate(catalog.Default())
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if !reflect.DeepEqual(a, b) {
				t.Error("same seed produced different networks")
			}

			c, err := NewGenerator(NewRand(100), strategy).Generate(catalog.Default())
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if reflect.DeepEqual(a, c) {
				t.Error("different seeds produced identical networks")
			}
		})
	}
}

func TestGenerateTooFewStations(t *testing.T) {
	for _, n := range []int{1, 2} {
		c := numberedCatalog(t, n)
		_, err := NewGenerator(NewRand(1), "").Generate(c)
		if !errs.Is(err, errs.ErrCodeConfig) {
			t.Errorf("Generate(%d stations) code = %v, want %v", n, errs.GetCode(err), errs.ErrCodeConfig)
		}
	}
}

func TestGenerateInvalidCatalog(t *testing.T) {
	c := numberedCatalog(t, 4)
	c.Stations[3].Code = c.Stations[0].Code

	_, err := NewGenerator(NewRand(1), "").Generate(c)
	if !errs.Is(err, errs.ErrCodeCatalog) {
		t.Errorf("Generate() code = %v, want %v", errs.GetCode(err), errs.ErrCodeCatalog)
	}
}

func TestClients(t *testing.T) {
	g := NewGenerator(NewRand(5), "")
	first := []string{"Ada", "Alan"}
	last := []string{"Lovelace", "Turing"}
	names := map[string]bool{
		"Ada Lovelace": true, "Ada Turing": true,
		"Alan Lovelace": true, "Alan Turing": true,
	}

	counts := make(map[int]int)
	for range 1000 {
		clients := g.Clients(first, last)
		counts[len(clients)]++
		for _, c := range clients {
			if !names[c.Name] {
				t.Fatalf("unexpected name %q", c.Name)
			}
			if !ValidPhone(c.Phone) {
				t.Fatalf("invalid phone %q", c.Phone)
			}
		}
	}

	for k := range counts {
		if k < MinClients || k > MaxClients {
			t.Errorf("client count %d outside [%d, %d]", k, MinClients, MaxClients)
		}
	}
	for k := MinClients; k <= MaxClients; k++ {
		if counts[k] == 0 {
			t.Errorf("client count %d never drawn in 1000 tries", k)
		}
	}
}

func TestPhoneDigits(t *testing.T) {
	g := NewGenerator(NewRand(11), "")
	seen := make(map[byte]bool)
	for range 500 {
		p := g.phone()
		if len(p) != PhoneLength {
			t.Fatalf("len(%q) = %d, want %d", p, len(p), PhoneLength)
		}
		for i := 0; i < len(p); i++ {
			seen[p[i]] = true
		}
	}
	if seen['0'] {
		t.Error("phone contains digit 0")
	}
	for d := byte('1'); d <= '9'; d++ {
		if !seen[d] {
			t.Errorf("digit %c never drawn", d)
		}
	}
}

func TestValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"12345678", true},
		{"99999999", true},
		{"12345670", false},
		{"1234567", false},
		{"123456789", false},
		{"1234567a", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidPhone(tt.phone); got != tt.want {
			t.Errorf("ValidPhone(%q) = %v, want %v", tt.phone, got, tt.want)
		}
	}
}
