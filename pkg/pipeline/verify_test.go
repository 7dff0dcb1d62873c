package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	errs "github.com/matzehuels/netgen/pkg/errors"
)

func TestVerifyGenerated(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "network.xml")
	if _, err := quietRunner().Execute(context.Background(), Options{
		Output:  out,
		Seed:    seedPtr(11),
		Formats: []string{FormatXML, FormatJSON},
	}); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{out, filepath.Join(dir, "network.json")} {
		n, stats, err := Verify(path)
		if err != nil {
			t.Errorf("Verify(%s) error = %v", filepath.Base(path), err)
			continue
		}
		if n.LinkCount() != 277 || stats.Links != 277 {
			t.Errorf("Verify(%s) links = %d/%d, want 277", filepath.Base(path), n.LinkCount(), stats.Links)
		}
	}
}

func TestVerifyDetectsViolations(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.xml")
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE Network SYSTEM "Network.dtd">
<Network links="1" stations="3">
<Station code="11" name="A"><Client name="X Y" phone="12345678"/></Station>
<Station code="22" name="B"><Client name="X Y" phone="12345678"/></Station>
<Station code="33" name="C"><Client name="X Y" phone="12345678"/></Station>
<Link stationACode="11" stationBCode="11"/>
</Network>
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	n, _, err := Verify(path)
	if n == nil {
		t.Fatal("Verify() should return the parsed network")
	}
	if !errs.Is(err, errs.ErrCodeDocument) {
		t.Fatalf("error = %v, want DOCUMENT_INVALID", err)
	}
	if !strings.Contains(err.Error(), "violation") {
		t.Errorf("error %q should mention violations", err)
	}
}

func TestReadNetworkErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := ReadNetwork(filepath.Join(dir, "net.csv")); !errs.Is(err, errs.ErrCodeUnsupported) {
		t.Errorf("csv error = %v, want UNSUPPORTED", err)
	}
	if _, err := ReadNetwork(filepath.Join(dir, "missing.xml")); !errs.Is(err, errs.ErrCodeFileNotFound) {
		t.Errorf("missing error = %v, want FILE_NOT_FOUND", err)
	}
}
