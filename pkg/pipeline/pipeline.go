// Package pipeline runs network generation end to end.
//
// The pipeline is shared by every command of the CLI so that generation,
// checking and output behave the same everywhere:
//
//  1. Catalog: use the built-in catalog or load one from a TOML/YAML file
//  2. Generate: build the network with a seeded random source
//  3. Check: assert every network invariant before anything is written
//  4. Render: encode the requested formats (xml, json, dot, svg)
//  5. Write: replace each output file atomically with a single write
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Output:  "network.xml",
//	    Formats: []string{pipeline.FormatXML, pipeline.FormatSVG},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Files)
//
// Without an explicit seed the runner draws one and reports it in
// [Result.Seed], so any run can be reproduced with --seed.
package pipeline

import (
	"path/filepath"
	"slices"
	"strings"
	"time"

	errs "github.com/matzehuels/netgen/pkg/errors"
	"github.com/matzehuels/netgen/pkg/netxml"
	"github.com/matzehuels/netgen/pkg/network"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultOutput is the file the XML document is written to.
	DefaultOutput = "network.xml"

	// DefaultStrategy is the link sampling strategy.
	DefaultStrategy = network.StrategyRejection
)

// Format constants for output formats.
const (
	FormatXML  = "xml"
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatXML:  true,
	FormatJSON: true,
	FormatDOT:  true,
	FormatSVG:  true,
}

// formatOrder fixes the order in which artifacts are rendered and written.
var formatOrder = []string{FormatXML, FormatJSON, FormatDOT, FormatSVG}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a generation run.
type Options struct {
	// Output is the path of the XML document. Other formats are written next
	// to it with their own extension.
	Output string `json:"output,omitempty"`

	// Catalog is an optional TOML/YAML catalog file. Empty uses the built-in catalog.
	Catalog string `json:"catalog,omitempty"`

	// Seed makes the run reproducible. Nil draws a random seed.
	Seed *uint64 `json:"seed,omitempty"`

	// Strategy is the link sampling strategy name.
	Strategy string `json:"strategy,omitempty"`

	// Formats lists the artifacts to produce.
	Formats []string `json:"formats,omitempty"`

	// DTDName is the system identifier in the XML DOCTYPE.
	DTDName string `json:"dtd_name,omitempty"`

	// WriteDTD also writes the DTD next to the XML document.
	WriteDTD bool `json:"write_dtd,omitempty"`

	// Indent pretty-prints the XML document.
	Indent bool `json:"indent,omitempty"`

	// Detailed adds client counts to DOT/SVG labels.
	Detailed bool `json:"detailed,omitempty"`

	// DryRun generates and checks but writes nothing.
	DryRun bool `json:"dry_run,omitempty"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Network is the generated network.
	Network *network.Network

	// Seed is the seed actually used.
	Seed uint64

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Files lists written paths in write order.
	Files []string

	// Stats contains shape and timing information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	network.Stats
	GenerateTime time.Duration
	RenderTime   time.Duration
	WriteTime    time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errs.New(errs.ErrCodeFormat, "invalid format: %q (must be one of: xml, json, dot, svg)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma-separated format list. Empty input selects XML.
func ParseFormats(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{FormatXML}
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" && !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Output == "" {
		o.Output = DefaultOutput
	}
	if err := errs.ValidateOutputPath(o.Output); err != nil {
		return err
	}
	if o.DTDName == "" {
		o.DTDName = netxml.DefaultDTDName
	}
	if err := errs.ValidateDTDName(o.DTDName); err != nil {
		return err
	}
	strategy, err := network.ParseStrategy(o.Strategy)
	if err != nil {
		return err
	}
	o.Strategy = string(strategy)
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatXML}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ArtifactPath returns where the artifact of the given format is written.
// XML goes to output itself; other formats replace its extension.
func ArtifactPath(output, format string) string {
	if format == FormatXML {
		return output
	}
	return strings.TrimSuffix(output, filepath.Ext(output)) + "." + format
}

// DTDPath returns where the DTD is written: next to output.
func DTDPath(output, dtdName string) string {
	return filepath.Join(filepath.Dir(output), dtdName)
}

// orderedFormats returns formats in canonical order.
func orderedFormats(formats []string) []string {
	var out []string
	for _, f := range formatOrder {
		if slices.Contains(formats, f) {
			out = append(out, f)
		}
	}
	return out
}
