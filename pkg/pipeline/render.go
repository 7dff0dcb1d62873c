package pipeline

import (
	"context"

	errs "github.com/matzehuels/netgen/pkg/errors"
	"github.com/matzehuels/netgen/pkg/netjson"
	"github.com/matzehuels/netgen/pkg/netxml"
	"github.com/matzehuels/netgen/pkg/network"
	"github.com/matzehuels/netgen/pkg/render"
)

// Render generates output artifacts in the requested formats.
// DOT is computed once and shared between the dot and svg artifacts.
func Render(ctx context.Context, n *network.Network, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	var dot string
	for _, format := range orderedFormats(opts.Formats) {
		var data []byte
		var err error

		switch format {
		case FormatXML:
			data, err = netxml.Marshal(n, netxml.Options{DTDName: opts.DTDName, Indent: opts.Indent})
		case FormatJSON:
			data, err = netjson.Marshal(n)
		case FormatDOT, FormatSVG:
			if dot == "" {
				dot = render.ToDOT(n, render.Options{Detailed: opts.Detailed})
			}
			if format == FormatDOT {
				data = []byte(dot)
			} else {
				data, err = render.RenderSVG(ctx, dot)
			}
		default:
			return nil, errs.New(errs.ErrCodeFormat, "unsupported format: %s", format)
		}

		if err != nil {
			code := errs.GetCode(err)
			if code == "" {
				code = errs.ErrCodeInternal
			}
			return nil, errs.Wrap(code, err, "render %s", format)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}
