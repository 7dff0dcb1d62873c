package netxml

import (
	"bytes"
	_ "embed"
	"encoding/xml"
	"fmt"
	"io"

	errs "github.com/matzehuels/netgen/pkg/errors"
	"github.com/matzehuels/netgen/pkg/network"
)

// DefaultDTDName is the system identifier written into the DOCTYPE.
const DefaultDTDName = "Network.dtd"

// RootElement is the name of the document element.
const RootElement = "Network"

//go:embed Network.dtd
var dtd []byte

// DTD returns the document type definition matching [Marshal]'s output.
func DTD() []byte {
	return bytes.Clone(dtd)
}

// Options configures [Marshal].
type Options struct {
	// DTDName is the system identifier in the DOCTYPE. Defaults to DefaultDTDName.
	DTDName string
	// Indent pretty-prints the element tree with two-space indentation.
	Indent bool
}

type document struct {
	XMLName  xml.Name  `xml:"Network"`
	Links    int       `xml:"links,attr"`
	Stations int       `xml:"stations,attr"`
	Station  []station `xml:"Station"`
	Link     []link    `xml:"Link"`
}

type station struct {
	Code   string   `xml:"code,attr"`
	Name   string   `xml:"name,attr"`
	Client []client `xml:"Client"`
}

type client struct {
	Name  string `xml:"name,attr"`
	Phone string `xml:"phone,attr"`
}

type link struct {
	A string `xml:"stationACode,attr"`
	B string `xml:"stationBCode,attr"`
}

// Preamble returns the XML declaration and DOCTYPE that open every document.
func Preamble(dtdName string) string {
	if dtdName == "" {
		dtdName = DefaultDTDName
	}
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" ?><!DOCTYPE %s SYSTEM "%s">`, RootElement, dtdName)
}

// Marshal encodes n as a complete UTF-8 document.
func Marshal(n *network.Network, opts Options) ([]byte, error) {
	if opts.DTDName == "" {
		opts.DTDName = DefaultDTDName
	}
	if err := errs.ValidateDTDName(opts.DTDName); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(Preamble(opts.DTDName))
	if opts.Indent {
		buf.WriteByte('\n')
	}

	enc := xml.NewEncoder(&buf)
	if opts.Indent {
		enc.Indent("", "  ")
	}
	if err := enc.Encode(toDocument(n)); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	if opts.Indent {
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// Write encodes n and writes the document to w in a single call.
func Write(w io.Writer, n *network.Network, opts Options) error {
	data, err := Marshal(n, opts)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return errs.Wrap(errs.ErrCodeIO, err, "write document")
	}
	return nil
}

func toDocument(n *network.Network) document {
	doc := document{
		Links:    len(n.Links),
		Stations: len(n.Stations),
		Station:  make([]station, len(n.Stations)),
		Link:     make([]link, len(n.Links)),
	}
	for i, s := range n.Stations {
		st := station{Code: s.Code, Name: s.Name, Client: make([]client, len(s.Clients))}
		for j, c := range s.Clients {
			st.Client[j] = client{Name: c.Name, Phone: c.Phone}
		}
		doc.Station[i] = st
	}
	for i, l := range n.Links {
		doc.Link[i] = link{A: l.A, B: l.B}
	}
	return doc
}
