package pipeline

import (
	"slices"
	"testing"

	errs "github.com/matzehuels/netgen/pkg/errors"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"xml", false},
		{"json", false},
		{"dot", false},
		{"svg", false},
		{"png", true},
		{"XML", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errs.Is(err, errs.ErrCodeFormat) {
			t.Errorf("ValidateFormat(%q) code = %s, want %s", tt.format, errs.GetCode(err), errs.ErrCodeFormat)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"xml", "svg"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"xml", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{"xml"}},
		{"  ", []string{"xml"}},
		{"json", []string{"json"}},
		{"xml,json", []string{"xml", "json"}},
		{" XML , svg ,", []string{"xml", "svg"}},
		{"dot,dot", []string{"dot"}},
	}

	for _, tt := range tests {
		if got := ParseFormats(tt.in); !slices.Equal(got, tt.want) {
			t.Errorf("ParseFormats(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	var opts Options
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error = %v", err)
	}
	if opts.Output != DefaultOutput {
		t.Errorf("Output = %q, want %q", opts.Output, DefaultOutput)
	}
	if opts.DTDName != "Network.dtd" {
		t.Errorf("DTDName = %q, want Network.dtd", opts.DTDName)
	}
	if opts.Strategy != string(DefaultStrategy) {
		t.Errorf("Strategy = %q, want %q", opts.Strategy, DefaultStrategy)
	}
	if !slices.Equal(opts.Formats, []string{FormatXML}) {
		t.Errorf("Formats = %v, want [xml]", opts.Formats)
	}

	// Idempotent
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Errorf("second call error = %v", err)
	}
}

func TestValidateAndSetDefaultsErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errs.Code
	}{
		{"bad strategy", Options{Strategy: "greedy"}, errs.ErrCodeConfig},
		{"bad format", Options{Formats: []string{"png"}}, errs.ErrCodeFormat},
		{"bad dtd", Options{DTDName: "../net.dtd"}, errs.ErrCodeConfig},
		{"dtd extension", Options{DTDName: "net.xsd"}, errs.ErrCodeConfig},
		{"directory output", Options{Output: "out/"}, errs.ErrCodeConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts
			err := opts.ValidateAndSetDefaults()
			if !errs.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestArtifactPath(t *testing.T) {
	tests := []struct {
		output, format, want string
	}{
		{"network.xml", "xml", "network.xml"},
		{"network.xml", "json", "network.json"},
		{"out/net.xml", "svg", "out/net.svg"},
		{"net", "dot", "net.dot"},
		{"net", "xml", "net"},
	}

	for _, tt := range tests {
		if got := ArtifactPath(tt.output, tt.format); got != tt.want {
			t.Errorf("ArtifactPath(%q, %q) = %q, want %q", tt.output, tt.format, got, tt.want)
		}
	}
}

func TestDTDPath(t *testing.T) {
	if got := DTDPath("network.xml", "Network.dtd"); got != "Network.dtd" {
		t.Errorf("DTDPath() = %q, want Network.dtd", got)
	}
	if got := DTDPath("out/network.xml", "Network.dtd"); got != "out/Network.dtd" {
		t.Errorf("DTDPath() = %q, want out/Network.dtd", got)
	}
}

func TestOrderedFormats(t *testing.T) {
	got := orderedFormats([]string{"svg", "xml", "json"})
	want := []string{"xml", "json", "svg"}
	if !slices.Equal(got, want) {
		t.Errorf("orderedFormats() = %v, want %v", got, want)
	}
}
