package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/netgen/pkg/network"
)

// Options configures DOT output.
type Options struct {
	// Detailed adds the client count to each station label.
	// When false, labels show the code and name only.
	Detailed bool
	// Layout selects the Graphviz engine (e.g. "circo", "neato").
	// Empty uses "circo", which suits dense undirected graphs.
	Layout string
}

// ToDOT converts a network to an undirected Graphviz graph.
// Isolated stations are drawn dashed.
func ToDOT(n *network.Network, opts Options) string {
	layout := opts.Layout
	if layout == "" {
		layout = "circo"
	}
	deg := network.Degrees(n)

	var buf bytes.Buffer
	buf.WriteString("graph Network {\n")
	fmt.Fprintf(&buf, "  layout=%s;\n", layout)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12, margin=\"0.15,0.05\"];\n")
	buf.WriteString("  edge [color=\"#7f7f7f\"];\n")
	buf.WriteString("\n")

	for _, s := range n.Stations {
		attrs := []string{fmt.Sprintf("label=%q", fmtLabel(s, opts.Detailed))}
		if deg[s.Code] == 0 {
			attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey")
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", s.Code, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, l := range n.Links {
		fmt.Fprintf(&buf, "  %q -- %q;\n", l.A, l.B)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(s network.Station, detailed bool) string {
	label := s.Code + "\n" + s.Name
	if detailed {
		label += fmt.Sprintf("\n%d clients", len(s.Clients))
	}
	return label
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based svg header with one whose
// width and height match the viewBox, so the image scales in browsers.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
