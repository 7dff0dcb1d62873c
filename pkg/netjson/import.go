package netjson

import (
	"encoding/json"
	"io"
	"os"

	errs "github.com/matzehuels/netgen/pkg/errors"
	"github.com/matzehuels/netgen/pkg/network"
)

// ReadJSON decodes a network from r. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*network.Network, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var n network.Network
	if err := dec.Decode(&n); err != nil {
		return nil, errs.Wrap(errs.ErrCodeDocument, err, "decode network JSON")
	}
	return &n, nil
}

// ImportJSON reads the JSON file at path.
func ImportJSON(path string) (*network.Network, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}
