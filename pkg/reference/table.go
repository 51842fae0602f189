package reference

import (
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-beiform/pkg/buildingtype"
)

// Range is the reference band for one (building type, category) pair,
// expressed as energy intensity.
type Range struct {
	Min     float64 `yaml:"min" json:"min"`
	Max     float64 `yaml:"max" json:"max"`
	Typical float64 `yaml:"typical" json:"typical"`
}

func (r Range) validate() error {
	if r.Min < 0 || r.Max < 0 || r.Typical < 0 {
		return fmt.Errorf("%w: negative bound %+v", ErrInvalidRange, r)
	}
	if r.Min > r.Typical || r.Typical > r.Max {
		return fmt.Errorf("%w: expected min <= typical <= max, got %+v", ErrInvalidRange, r)
	}
	return nil
}

// Guidance is the display form of a Range for UI hints.
type Guidance struct {
	Category Category `json:"category"`
	Label    string   `json:"label"`
	Range
	Unit string `json:"unit"`
}

// Table is an immutable lookup of reference ranges.
type Table struct {
	unit   string
	ranges map[buildingtype.Type]map[Category]Range
}

type tableFile struct {
	Unit  string                      `yaml:"unit"`
	Types map[string]map[string]Range `yaml:"types"`
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the bundled table. The embedded data is validated by tests,
// so a parse failure here is a build defect and panics.
func Default() *Table {
	defaultOnce.Do(func() {
		table, err := Load(EmbeddedFS(), DefaultFile)
		if err != nil {
			panic(err)
		}
		defaultTable = table
	})
	return defaultTable
}

// Load reads and parses the table stored at name inside fsys.
func Load(fsys fs.FS, name string) (*Table, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reference: read %s: %w", name, err)
	}
	return Parse(data, name)
}

// Parse decodes a YAML table. Unknown building types or categories are
// rejected so a typo cannot silently disable a range.
func Parse(data []byte, source string) (*Table, error) {
	if strings.TrimSpace(string(data)) == "" {
		return nil, fmt.Errorf("reference: file %s is empty", source)
	}
	var raw tableFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("reference: parse %s: %w", source, err)
	}
	if len(raw.Types) == 0 {
		return nil, fmt.Errorf("%w (file %s)", ErrEmptyTable, source)
	}

	table := &Table{
		unit:   strings.TrimSpace(raw.Unit),
		ranges: make(map[buildingtype.Type]map[Category]Range, len(raw.Types)),
	}
	for typeKey, byCategory := range raw.Types {
		typ := buildingtype.Type(strings.TrimSpace(typeKey))
		if !buildingtype.Valid(typ) {
			return nil, fmt.Errorf("reference: file %s: unknown building type %q", source, typeKey)
		}
		entries := make(map[Category]Range, len(byCategory))
		for catKey, rng := range byCategory {
			cat, ok := ParseCategory(catKey)
			if !ok {
				return nil, fmt.Errorf("reference: file %s: unknown category %q for %s", source, catKey, typ)
			}
			if err := rng.validate(); err != nil {
				return nil, fmt.Errorf("reference: file %s: %s/%s: %w", source, typ, cat, err)
			}
			entries[cat] = rng
		}
		table.ranges[typ] = entries
	}
	return table, nil
}

// Lookup returns the range for (t, c). The second result is false when the
// table holds no opinion for the pair.
func (t *Table) Lookup(typ buildingtype.Type, c Category) (Range, bool) {
	if t == nil {
		return Range{}, false
	}
	rng, ok := t.ranges[typ][c]
	return rng, ok
}

// Unit returns the intensity unit declared by the table.
func (t *Table) Unit() string {
	if t == nil {
		return ""
	}
	return t.unit
}

// Types lists the building types present in the table, sorted.
func (t *Table) Types() []buildingtype.Type {
	if t == nil {
		return nil
	}
	out := make([]buildingtype.Type, 0, len(t.ranges))
	for typ := range t.ranges {
		out = append(out, typ)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Guidance returns the per-category reference values for the building type
// identified by identifier, resolving aliases first.
func (t *Table) Guidance(identifier string) []Guidance {
	typ := buildingtype.Resolve(identifier)
	out := make([]Guidance, 0, len(categories))
	for _, c := range categories {
		rng, ok := t.Lookup(typ, c)
		if !ok {
			continue
		}
		out = append(out, Guidance{Category: c, Label: c.Label(), Range: rng, Unit: t.Unit()})
	}
	return out
}
