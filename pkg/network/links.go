package network

import (
	"math/rand/v2"

	errs "github.com/matzehuels/netgen/pkg/errors"
)

// MinStations is the smallest catalog for which [MinLinks] is defined.
const MinStations = 3

// MaxAttempts caps the number of draws [StrategyRejection] may make before
// giving up. For the built-in catalog (277 of 300 pairs) the expected number
// of draws is a few thousand.
const MaxAttempts = 1 << 24

// Strategy selects how links are sampled.
type Strategy string

const (
	// StrategyRejection draws endpoint pairs with replacement and rejects
	// self-pairs and repeats.
	StrategyRejection Strategy = "rejection"
	// StrategyShuffle takes a prefix of a shuffled list of all pairs.
	StrategyShuffle Strategy = "shuffle"
)

// Strategies lists the supported strategies.
var Strategies = []Strategy{StrategyRejection, StrategyShuffle}

// ParseStrategy converts a name into a Strategy. The empty string selects
// [StrategyRejection].
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case "", StrategyRejection:
		return StrategyRejection, nil
	case StrategyShuffle:
		return StrategyShuffle, nil
	}
	return "", errs.New(errs.ErrCodeConfig, "unknown link strategy %q (must be 'rejection' or 'shuffle')", s)
}

// MinLinks returns the number of links generated for n stations:
// ((n-1)*(n-2))/2 + 1. It fails for n < [MinStations], where the formula
// stops describing a meaningful count.
func MinLinks(n int) (int, error) {
	if n < MinStations {
		return 0, errs.New(errs.ErrCodeConfig, "need at least %d stations to generate links, got %d", MinStations, n)
	}
	return ((n-1)*(n-2))/2 + 1, nil
}

// MaxLinks returns the number of distinct undirected pairs among n stations.
func MaxLinks(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

// sampleLinks returns exactly MinLinks(len(codes)) distinct links.
// codes must not contain duplicates.
func sampleLinks(rng *rand.Rand, codes []string, strategy Strategy) ([]Link, error) {
	n := len(codes)
	m, err := MinLinks(n)
	if err != nil {
		return nil, err
	}
	if limit := MaxLinks(n); m > limit {
		return nil, errs.New(errs.ErrCodeConfig, "%d links requested but only %d distinct pairs exist among %d stations", m, limit, n)
	}

	switch strategy {
	case StrategyRejection:
		return rejectionLinks(rng, codes, m)
	case StrategyShuffle:
		return shuffleLinks(rng, codes, m), nil
	}
	return nil, errs.New(errs.ErrCodeConfig, "unknown link strategy %q", strategy)
}

func rejectionLinks(rng *rand.Rand, codes []string, m int) ([]Link, error) {
	chosen := make(map[PairKey]struct{}, m)
	links := make([]Link, 0, m)
	attempts := 0

	for len(links) < m {
		if attempts >= MaxAttempts {
			return nil, errs.New(errs.ErrCodeInternal, "link sampling gave up after %d draws with %d of %d links", attempts, len(links), m)
		}
		attempts++

		a := codes[rng.IntN(len(codes))]
		b := codes[rng.IntN(len(codes))]
		if a == b {
			continue
		}
		key := MakeKey(a, b)
		if _, dup := chosen[key]; dup {
			continue
		}
		chosen[key] = struct{}{}
		links = append(links, Link{A: a, B: b})
	}
	return links, nil
}

func shuffleLinks(rng *rand.Rand, codes []string, m int) []Link {
	pairs := make([]Link, 0, MaxLinks(len(codes)))
	for i := range codes {
		for j := i + 1; j < len(codes); j++ {
			pairs = append(pairs, Link{A: codes[i], B: codes[j]})
		}
	}
	rng.Shuffle(len(pairs), func(i, j int) { pairs[i], pairs[j] = pairs[j], pairs[i] })

	links := pairs[:m:m]
	for i := range links {
		if rng.IntN(2) == 1 {
			links[i].A, links[i].B = links[i].B, links[i].A
		}
	}
	return links
}
