package catalog

import (
	"os"
	"path/filepath"
	"testing"

	errs "github.com/matzehuels/netgen/pkg/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "catalog.toml", `
stations = ["1-Alpha", "2-Beta", "3-Gamma, Norte"]
first_names = ["Ada", "Alan"]
last_names = ["Lovelace", "Turing"]
`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}
	if c.Stations[2].Name != "Gamma, Norte" {
		t.Errorf("Stations[2].Name = %q, want %q", c.Stations[2].Name, "Gamma, Norte")
	}
	if len(c.FirstNames) != 2 || c.LastNames[1] != "Turing" {
		t.Errorf("name banks = %v %v", c.FirstNames, c.LastNames)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "catalog.yaml", `
stations:
  - 10-North
  - 20-South
  - 30-East
  - 40-West
`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := c.Codes(); len(got) != 4 || got[3] != "40" {
		t.Errorf("Codes() = %v, want [10 20 30 40]", got)
	}
	if len(c.FirstNames) != len(defaultFirstNames) {
		t.Errorf("FirstNames not defaulted: %v", c.FirstNames)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		wantCode errs.Code
	}{
		{"unsupported extension", "catalog.json", `{}`, errs.ErrCodeUnsupported},
		{"bad toml", "catalog.toml", `stations = [`, errs.ErrCodeCatalog},
		{"unknown toml key", "catalog.toml", "stations = [\"1-A\"]\nlinks = 3\n", errs.ErrCodeCatalog},
		{"unknown yaml key", "catalog.yml", "stations: [1-A]\nlinks: 3\n", errs.ErrCodeCatalog},
		{"empty yaml", "catalog.yaml", "", errs.ErrCodeCatalog},
		{"duplicate codes", "catalog.toml", `stations = ["1-A", "1-B"]`, errs.ErrCodeCatalog},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			_, err := Load(path)
			if err == nil {
				t.Fatal("Load() error = nil, want error")
			}
			if !errs.Is(err, tt.wantCode) {
				t.Errorf("Load() code = %v, want %v (err: %v)", errs.GetCode(err), tt.wantCode, err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !errs.Is(err, errs.ErrCodeFileNotFound) {
		t.Errorf("Load() code = %v, want %v", errs.GetCode(err), errs.ErrCodeFileNotFound)
	}
}
