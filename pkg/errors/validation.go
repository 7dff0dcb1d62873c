package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// maxAreaCodeLength bounds area codes; real ones have two or three digits.
const maxAreaCodeLength = 8

// ValidateAreaCode checks that code is a non-empty string of ASCII digits.
func ValidateAreaCode(code string) error {
	if code == "" {
		return New(ErrCodeCatalog, "area code cannot be empty")
	}
	if len(code) > maxAreaCodeLength {
		return New(ErrCodeCatalog, "area code %q too long (max %d digits)", code, maxAreaCodeLength)
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return New(ErrCodeCatalog, "area code %q must contain only digits", code)
		}
	}
	return nil
}

// ValidateDTDName validates the system identifier written into the
// document type declaration. It must be a plain file name: the document
// and its DTD are shipped side by side.
func ValidateDTDName(name string) error {
	if name == "" {
		return New(ErrCodeConfig, "DTD name cannot be empty")
	}
	if strings.ContainsAny(name, `/\"'<>`) {
		return New(ErrCodeConfig, "DTD name %q must be a plain file name", name)
	}
	for _, r := range name {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeConfig, "DTD name %q contains invalid characters", name)
		}
	}
	if !strings.EqualFold(filepath.Ext(name), ".dtd") {
		return New(ErrCodeConfig, "DTD name %q must end in .dtd", name)
	}
	return nil
}

// ValidateOutputPath validates a path the generator will write to.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeConfig, "output path cannot be empty")
	}
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeConfig, "output path contains invalid characters")
		}
	}
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return New(ErrCodeConfig, "output path %q names a directory", path)
	}
	return nil
}
