package netxml

import (
	"encoding/xml"
	"io"
	"os"

	errs "github.com/matzehuels/netgen/pkg/errors"
	"github.com/matzehuels/netgen/pkg/network"
)

// Read decodes a document from r.
func Read(r io.Reader) (*network.Network, error) {
	var doc document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errs.Wrap(errs.ErrCodeDocument, err, "decode network document")
	}

	if doc.Stations != len(doc.Station) {
		return nil, errs.New(errs.ErrCodeDocument, "stations attribute is %d but document has %d Station elements", doc.Stations, len(doc.Station))
	}
	if doc.Links != len(doc.Link) {
		return nil, errs.New(errs.ErrCodeDocument, "links attribute is %d but document has %d Link elements", doc.Links, len(doc.Link))
	}

	n := &network.Network{
		Stations: make([]network.Station, len(doc.Station)),
		Links:    make([]network.Link, len(doc.Link)),
	}
	for i, s := range doc.Station {
		if err := errs.ValidateAreaCode(s.Code); err != nil {
			return nil, errs.Wrap(errs.ErrCodeDocument, err, "station %d", i)
		}
		st := network.Station{Code: s.Code, Name: s.Name, Clients: make([]network.Client, len(s.Client))}
		for j, c := range s.Client {
			if !isDigits(c.Phone) {
				return nil, errs.New(errs.ErrCodeDocument, "station %s client %d: phone %q is not numeric", s.Code, j, c.Phone)
			}
			st.Clients[j] = network.Client{Name: c.Name, Phone: c.Phone}
		}
		n.Stations[i] = st
	}
	for i, l := range doc.Link {
		for _, code := range []string{l.A, l.B} {
			if err := errs.ValidateAreaCode(code); err != nil {
				return nil, errs.Wrap(errs.ErrCodeDocument, err, "link %d", i)
			}
		}
		n.Links[i] = network.Link{A: l.A, B: l.B}
	}
	return n, nil
}

// ReadFile decodes the document at path.
func ReadFile(path string) (*network.Network, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()
	return Read(f)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
