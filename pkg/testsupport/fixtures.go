package testsupport

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-beiform/pkg/form"
)

// Fixture names.
const (
	// Office is a complete medium-size office that passes local validation.
	Office = "office.yaml"
	// Small is a small-classified shop with an exempt section filled in.
	Small = "small.yaml"
	// Incomplete lacks the building name and has a window row without type
	// or area.
	Incomplete = "incomplete.yaml"
)

//go:embed testdata/*.yaml
var fixtureFS embed.FS

// Fixtures exposes the embedded snapshot fixtures.
func Fixtures() fs.FS {
	sub, err := fs.Sub(fixtureFS, "testdata")
	if err != nil {
		panic("testsupport: embedded fixtures missing: " + err.Error())
	}
	return sub
}

// LoadSnapshot decodes a named fixture, returning an error for callers
// managing setup outside of *testing.T.
func LoadSnapshot(name string) (*form.Snapshot, error) {
	data, err := fs.ReadFile(Fixtures(), name)
	if err != nil {
		return nil, fmt.Errorf("testsupport: read fixture: %w", err)
	}
	snap, err := form.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("testsupport: decode fixture %s: %w", name, err)
	}
	return snap, nil
}

// MustLoadSnapshot decodes a named fixture or fails the test.
func MustLoadSnapshot(t *testing.T, name string) *form.Snapshot {
	t.Helper()

	snap, err := LoadSnapshot(name)
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}
	return snap
}

// MustFixtureBytes returns the raw fixture, for request bodies.
func MustFixtureBytes(t *testing.T, name string) []byte {
	t.Helper()
	data, err := fs.ReadFile(Fixtures(), name)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	return data
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file, such as an expected payload document.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden rewrites the golden file at path when UPDATE_GOLDENS is
// set and reports whether it did; the caller then skips the comparison.
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
