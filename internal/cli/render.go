package cli

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/netgen/pkg/errors"
	"github.com/matzehuels/netgen/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string   // output file path, base path for multiple formats, or "-" for stdout
	formats  []string // output formats: "svg", "dot", "json", "xml"
	detailed bool     // show client counts in station labels
}

// renderCommand creates the render command, which draws an existing
// network document.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a network document to SVG or DOT",
		Long: `Render reads a network document (.xml or .json) and draws it as an
undirected graph. The document is checked before rendering.

With a single format, -o names the output file ("-" writes to stdout).
With several formats, -o is a base path that receives one file per format.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = pipeline.ParseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", pipeline.FormatSVG, "output format(s): svg, dot, json, xml (comma-separated)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show client counts in station labels")

	return cmd
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .dot, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// renderPath returns the file a format is written to.
func renderPath(output, input, format string, single bool) string {
	if single && output != "" {
		return output
	}
	return basePath(output, input) + "." + format
}

// runRender loads and checks the document at input, then renders it to the
// requested formats.
func (c *CLI) runRender(cmd *cobra.Command, input string, opts *renderOpts) error {
	c.Logger.Infof("Rendering %s", input)

	n, _, err := pipeline.Verify(input)
	if err != nil {
		return err
	}
	c.Logger.Infof("Loaded network: %d stations, %d links", n.StationCount(), n.LinkCount())

	toStdout := opts.output == "-"
	if toStdout && len(opts.formats) != 1 {
		return errs.New(errs.ErrCodeConfig, "writing to stdout needs exactly one format, got %d", len(opts.formats))
	}

	artifacts, err := pipeline.Render(cmd.Context(), n, pipeline.Options{
		Formats:  opts.formats,
		Detailed: opts.detailed,
	})
	if err != nil {
		return err
	}

	if toStdout {
		_, err := c.Out.Write(artifacts[opts.formats[0]])
		return err
	}

	single := len(opts.formats) == 1
	for _, format := range opts.formats {
		path := renderPath(opts.output, input, format, single)
		if path == input {
			return errs.New(errs.ErrCodeConfig, "refusing to overwrite input %s", input)
		}
		if err := pipeline.WriteFile(path, artifacts[format]); err != nil {
			return err
		}
		c.Logger.Debugf("Generated %s: %d bytes", format, len(artifacts[format]))
		printFile(c.Out, path)
	}
	return nil
}
