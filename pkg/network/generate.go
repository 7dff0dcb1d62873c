package network

import (
	"math/rand/v2"
	"strings"

	"github.com/matzehuels/netgen/pkg/catalog"
)

// Client generation bounds.
const (
	MinClients  = 1
	MaxClients  = 5
	PhoneLength = 8
)

// NewRand returns a PCG-backed generator for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// Generator builds networks from a catalog. It is not safe for concurrent
// use because it draws from a single *rand.Rand.
type Generator struct {
	rng      *rand.Rand
	strategy Strategy
}

// NewGenerator returns a Generator drawing from rng. An empty strategy
// selects [StrategyRejection].
func NewGenerator(rng *rand.Rand, strategy Strategy) *Generator {
	if strategy == "" {
		strategy = StrategyRejection
	}
	return &Generator{rng: rng, strategy: strategy}
}

// Generate validates c and builds a network from it: every station with
// its clients, in catalog order, then the links.
func (g *Generator) Generate(c *catalog.Catalog) (*Network, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if _, err := MinLinks(c.Len()); err != nil {
		return nil, err
	}

	stations := make([]Station, c.Len())
	for i, e := range c.Stations {
		stations[i] = Station{
			Code:    e.Code,
			Name:    e.Name,
			Clients: g.Clients(c.FirstNames, c.LastNames),
		}
	}

	links, err := sampleLinks(g.rng, c.Codes(), g.strategy)
	if err != nil {
		return nil, err
	}
	return &Network{Stations: stations, Links: links}, nil
}

// Links samples the links for the given station codes. codes must be
// distinct.
func (g *Generator) Links(codes []string) ([]Link, error) {
	return sampleLinks(g.rng, codes, g.strategy)
}

// Clients returns between [MinClients] and [MaxClients] clients, each with
// a name drawn from the banks and a random phone.
func (g *Generator) Clients(firstNames, lastNames []string) []Client {
	n := MinClients + g.rng.IntN(MaxClients-MinClients+1)
	clients := make([]Client, n)
	for i := range clients {
		clients[i] = Client{
			Name:  g.name(firstNames, lastNames),
			Phone: g.phone(),
		}
	}
	return clients
}

func (g *Generator) name(firstNames, lastNames []string) string {
	first := firstNames[g.rng.IntN(len(firstNames))]
	last := lastNames[g.rng.IntN(len(lastNames))]
	return first + " " + last
}

// phone returns PhoneLength digits in '1'..'9'. Zero never appears.
func (g *Generator) phone() string {
	var b strings.Builder
	b.Grow(PhoneLength)
	for range PhoneLength {
		b.WriteByte(byte('1' + g.rng.IntN(9)))
	}
	return b.String()
}
