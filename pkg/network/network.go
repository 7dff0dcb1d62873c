package network

// Client is a person attached to a station. Clients have no identity beyond
// their name and phone; duplicates are allowed.
type Client struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Station is a network node identified by its area code.
type Station struct {
	Code    string   `json:"code"`
	Name    string   `json:"name"`
	Clients []Client `json:"clients"`
}

// Link is an undirected connection between two stations. A and B hold the
// codes in the order they were drawn; {A, B} and {B, A} are the same link.
type Link struct {
	A string `json:"a"`
	B string `json:"b"`
}

// PairKey identifies a link independently of endpoint order.
type PairKey struct {
	Lo, Hi string
}

// Key returns the order-independent key of l.
func (l Link) Key() PairKey {
	return MakeKey(l.A, l.B)
}

// IsLoop reports whether both endpoints are the same station.
func (l Link) IsLoop() bool { return l.A == l.B }

// MakeKey returns the key of the unordered pair {a, b}.
func MakeKey(a, b string) PairKey {
	if b < a {
		a, b = b, a
	}
	return PairKey{Lo: a, Hi: b}
}

// Network is the generated dataset: stations with their clients, and links.
type Network struct {
	Stations []Station `json:"stations"`
	Links    []Link    `json:"links"`
}

// StationCount returns the number of stations.
func (n *Network) StationCount() int { return len(n.Stations) }

// LinkCount returns the number of links.
func (n *Network) LinkCount() int { return len(n.Links) }

// ClientCount returns the total number of clients across all stations.
func (n *Network) ClientCount() int {
	total := 0
	for _, s := range n.Stations {
		total += len(s.Clients)
	}
	return total
}

// Station returns the station with the given code.
func (n *Network) Station(code string) (*Station, bool) {
	for i := range n.Stations {
		if n.Stations[i].Code == code {
			return &n.Stations[i], true
		}
	}
	return nil, false
}

// Codes returns the station codes in order.
func (n *Network) Codes() []string {
	codes := make([]string, len(n.Stations))
	for i, s := range n.Stations {
		codes[i] = s.Code
	}
	return codes
}
