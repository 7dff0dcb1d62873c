package network

import (
	"fmt"

	errs "github.com/matzehuels/netgen/pkg/errors"
)

// ValidPhone reports whether p has [PhoneLength] digits, none of them zero.
func ValidPhone(p string) bool {
	if len(p) != PhoneLength {
		return false
	}
	for i := 0; i < len(p); i++ {
		if p[i] < '1' || p[i] > '9' {
			return false
		}
	}
	return true
}

// Check verifies the invariants of a generated network:
//   - station codes are unique and non-empty
//   - every station has MinClients..MaxClients clients with valid phones
//   - no link is a loop or repeats another link in either order
//   - every link endpoint is a station code
//   - the link count equals MinLinks(StationCount)
//
// All violations are collected. The returned error carries the
// DOCUMENT_INVALID code and an [errs.Violations] cause.
func Check(n *Network) error {
	var v errs.Violations

	codes := make(map[string]bool, len(n.Stations))
	for i, s := range n.Stations {
		switch {
		case s.Code == "":
			v = append(v, fmt.Sprintf("station %d has an empty code", i))
		case codes[s.Code]:
			v = append(v, fmt.Sprintf("duplicate station code %s", s.Code))
		}
		codes[s.Code] = true

		if c := len(s.Clients); c < MinClients || c > MaxClients {
			v = append(v, fmt.Sprintf("station %s has %d clients, want %d..%d", s.Code, c, MinClients, MaxClients))
		}
		for j, c := range s.Clients {
			if !ValidPhone(c.Phone) {
				v = append(v, fmt.Sprintf("station %s client %d has invalid phone %q", s.Code, j, c.Phone))
			}
		}
	}

	seen := make(map[PairKey]int, len(n.Links))
	for i, l := range n.Links {
		if l.IsLoop() {
			v = append(v, fmt.Sprintf("link %d is a self-link on %s", i, l.A))
		}
		for _, end := range []string{l.A, l.B} {
			if !codes[end] {
				v = append(v, fmt.Sprintf("link %d references unknown station %s", i, end))
			}
		}
		if prev, dup := seen[l.Key()]; dup {
			v = append(v, fmt.Sprintf("link %d (%s-%s) duplicates link %d", i, l.A, l.B, prev))
		} else {
			seen[l.Key()] = i
		}
	}

	if want, err := MinLinks(len(n.Stations)); err != nil {
		v = append(v, err.Error())
	} else if got := len(n.Links); got != want {
		v = append(v, fmt.Sprintf("network has %d links, want %d for %d stations", got, want, len(n.Stations)))
	}

	if len(v) == 0 {
		return nil
	}
	return errs.Wrap(errs.ErrCodeDocument, v, "%d invariant violation(s)", len(v))
}
