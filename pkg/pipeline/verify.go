package pipeline

import (
	"path/filepath"
	"strings"

	errs "github.com/matzehuels/netgen/pkg/errors"
	"github.com/matzehuels/netgen/pkg/netjson"
	"github.com/matzehuels/netgen/pkg/netxml"
	"github.com/matzehuels/netgen/pkg/network"
)

// ReadNetwork reads a network document. The format follows the file
// extension: .json is read as JSON, anything else as XML.
func ReadNetwork(path string) (*network.Network, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return netjson.ImportJSON(path)
	case ".xml", "":
		return netxml.ReadFile(path)
	default:
		return nil, errs.New(errs.ErrCodeUnsupported, "unsupported document type: %s (want .xml or .json)", filepath.Ext(path))
	}
}

// Verify reads a network document and checks every invariant.
// The network is returned even when the check fails so callers can report on it.
func Verify(path string) (*network.Network, network.Stats, error) {
	n, err := ReadNetwork(path)
	if err != nil {
		return nil, network.Stats{}, err
	}
	return n, network.ComputeStats(n), network.Check(n)
}
