// Package catalog holds the static inputs of the generator: the station
// catalog and the first/last name banks used to invent clients.
//
// # Entries
//
// Stations are written as "code-name" entries, the code being a numeric
// telephone area code and the name a display name that may itself contain
// commas:
//
//	55-Mexico City
//	656-Ciudad Juarez, Chihuahua
//
// [ParseEntry] splits an entry on its first '-'.
//
// # Default Catalog
//
// [Default] returns the built-in catalog of 25 Mexican area codes together
// with the default name banks. Every call returns a fresh copy, so callers
// may modify the result without affecting later calls.
//
// # Catalog Files
//
// [Load] reads an alternative catalog from a TOML or YAML file, selected by
// extension:
//
//	stations = ["1-Alpha", "2-Beta", "3-Gamma"]
//	first_names = ["Ada", "Alan"]
//	last_names = ["Lovelace", "Turing"]
//
// Name banks that are omitted fall back to the defaults. Loaded catalogs are
// validated with [Catalog.Validate], which rejects malformed entries and
// duplicate area codes.
package catalog
