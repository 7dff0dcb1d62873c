package network

import (
	"strconv"
	"testing"

	"github.com/matzehuels/netgen/pkg/catalog"
)

// numberedCatalog returns a catalog with stations "1".."n".
func numberedCatalog(t testing.TB, n int) *catalog.Catalog {
	t.Helper()
	entries := make([]string, n)
	for i := range entries {
		entries[i] = strconv.Itoa(i+1) + "-Station " + strconv.Itoa(i+1)
	}
	c, err := catalog.New(entries, nil, nil)
	if err != nil {
		t.Fatalf("catalog.New(%d) error = %v", n, err)
	}
	return c
}

func codesOf(n int) []string {
	codes := make([]string, n)
	for i := range codes {
		codes[i] = strconv.Itoa(i + 1)
	}
	return codes
}
