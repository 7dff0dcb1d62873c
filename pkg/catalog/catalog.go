package catalog

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	errs "github.com/matzehuels/netgen/pkg/errors"
)

// Entry is a single station of the catalog.
type Entry struct {
	Code string `validate:"required,number,max=8"`
	Name string `validate:"required"`
}

// String returns the entry in its "code-name" form.
func (e Entry) String() string { return e.Code + "-" + e.Name }

// Catalog is the read-only input to network generation.
type Catalog struct {
	Stations   []Entry  `validate:"required,dive"`
	FirstNames []string `validate:"required,min=1,dive,required"`
	LastNames  []string `validate:"required,min=1,dive,required"`
}

var (
	validate     = validator.New()
	defaultOnce  sync.Once
	defaultEntry []Entry
)

// Default returns the built-in catalog.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultEntry = mustParseEntries(defaultStations)
	})
	return &Catalog{
		Stations:   slices.Clone(defaultEntry),
		FirstNames: slices.Clone(defaultFirstNames),
		LastNames:  slices.Clone(defaultLastNames),
	}
}

// New builds a catalog from raw "code-name" entries. Nil name banks are
// replaced by the defaults. The result is validated.
func New(entries, firstNames, lastNames []string) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, errs.New(errs.ErrCodeCatalog, "catalog has no stations")
	}
	stations, err := ParseEntries(entries)
	if err != nil {
		return nil, err
	}
	c := &Catalog{Stations: stations, FirstNames: firstNames, LastNames: lastNames}
	if c.FirstNames == nil {
		c.FirstNames = slices.Clone(defaultFirstNames)
	}
	if c.LastNames == nil {
		c.LastNames = slices.Clone(defaultLastNames)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// ParseEntry splits a "code-name" entry on its first '-'.
// Surrounding whitespace of both parts is trimmed.
func ParseEntry(s string) (Entry, error) {
	code, name, ok := strings.Cut(s, "-")
	if !ok {
		return Entry{}, errs.New(errs.ErrCodeCatalog, "entry %q: missing '-' separator", s)
	}
	e := Entry{Code: strings.TrimSpace(code), Name: strings.TrimSpace(name)}
	if err := errs.ValidateAreaCode(e.Code); err != nil {
		return Entry{}, errs.Wrap(errs.ErrCodeCatalog, err, "entry %q", s)
	}
	if e.Name == "" {
		return Entry{}, errs.New(errs.ErrCodeCatalog, "entry %q: empty station name", s)
	}
	return e, nil
}

// ParseEntries parses entries in order, stopping at the first malformed one.
func ParseEntries(raw []string) ([]Entry, error) {
	out := make([]Entry, 0, len(raw))
	for i, s := range raw {
		e, err := ParseEntry(s)
		if err != nil {
			return nil, fmt.Errorf("station %d: %w", i, err)
		}
		out = append(out, e)
	}
	return out, nil
}

func mustParseEntries(raw []string) []Entry {
	out, err := ParseEntries(raw)
	if err != nil {
		panic(err)
	}
	return out
}

// Validate checks the catalog's structure and rejects duplicate area codes.
// It does not enforce a minimum station count; that belongs to link
// generation, which is the only consumer that needs one.
func (c *Catalog) Validate() error {
	if c == nil {
		return errs.New(errs.ErrCodeCatalog, "catalog is nil")
	}
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}

	seen := make(map[string]string, len(c.Stations))
	for _, s := range c.Stations {
		if prev, ok := seen[s.Code]; ok {
			return errs.New(errs.ErrCodeCatalog, "duplicate area code %s (%q and %q)", s.Code, prev, s.Name)
		}
		seen[s.Code] = s.Name
	}
	return nil
}

// Codes returns the station codes in catalog order.
func (c *Catalog) Codes() []string {
	codes := make([]string, len(c.Stations))
	for i, s := range c.Stations {
		codes[i] = s.Code
	}
	return codes
}

// Len returns the number of stations.
func (c *Catalog) Len() int { return len(c.Stations) }

func formatValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errs.Wrap(errs.ErrCodeCatalog, err, "invalid catalog")
	}

	// Report the first failure; the rest are usually the same mistake repeated.
	e := validationErrs[0]
	field := e.Namespace()
	switch e.Tag() {
	case "required":
		return errs.New(errs.ErrCodeCatalog, "%s: field is required", field)
	case "number":
		return errs.New(errs.ErrCodeCatalog, "%s: %q is not a numeric area code", field, e.Value())
	case "max":
		return errs.New(errs.ErrCodeCatalog, "%s: must not exceed %s characters", field, e.Param())
	default:
		return errs.New(errs.ErrCodeCatalog, "%s: validation failed (%s)", field, e.Tag())
	}
}
