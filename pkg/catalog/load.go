package catalog

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	errs "github.com/matzehuels/netgen/pkg/errors"
)

// file is the on-disk shape shared by TOML and YAML catalogs.
type file struct {
	Stations   []string `toml:"stations" yaml:"stations"`
	FirstNames []string `toml:"first_names" yaml:"first_names"`
	LastNames  []string `toml:"last_names" yaml:"last_names"`
}

// Load reads a catalog file. The format is chosen by extension:
// ".toml" for TOML, ".yaml" or ".yml" for YAML.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "catalog %s", path)
	}
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeIO, err, "read catalog %s", path)
	}

	var f file
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = decodeTOML(data, &f)
	case ".yaml", ".yml":
		err = decodeYAML(data, &f)
	default:
		return nil, errs.New(errs.ErrCodeUnsupported, "catalog %s: unsupported extension %q (want .toml, .yaml or .yml)", path, ext)
	}
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeCatalog, err, "decode catalog %s", path)
	}

	c, err := New(f.Stations, f.FirstNames, f.LastNames)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeCatalog, err, "catalog %s", path)
	}
	return c, nil
}

func decodeTOML(data []byte, f *file) error {
	md, err := toml.Decode(string(data), f)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return errs.New(errs.ErrCodeCatalog, "unknown key %q", undecoded[0].String())
	}
	return nil
}

func decodeYAML(data []byte, f *file) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(f); err != nil && err != io.EOF {
		return err
	}
	return nil
}
