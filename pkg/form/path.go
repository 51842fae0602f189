package form

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// BuildingScope prefixes building record paths.
	BuildingScope = "building"
	// DesignEnergyScope prefixes design energy paths.
	DesignEnergyScope = "design_energy"
	// PerformanceScope prefixes advisory performance paths.
	PerformanceScope = "performance"
)

// Path is a parsed FieldPath.
type Path struct {
	Scope string // "building", "design_energy", "performance" or a section name
	Index int    // row index, -1 for scalar scopes
	Key   string
}

// BuildingPath returns "building.<key>".
func BuildingPath(key string) string {
	return BuildingScope + "." + key
}

// DesignEnergyPath returns "design_energy.<category>".
func DesignEnergyPath(category string) string {
	return DesignEnergyScope + "." + category
}

// CellPath returns "<section>.<index>.<key>".
func CellPath(section Section, index int, key string) string {
	return string(section) + "." + strconv.Itoa(index) + "." + key
}

// PerformancePath returns "performance.<key>".
func PerformancePath(key string) string {
	return PerformanceScope + "." + key
}

func isScalarScope(scope string) bool {
	return scope == BuildingScope || scope == DesignEnergyScope || scope == PerformanceScope
}

// ParsePath splits a FieldPath into its components.
func ParsePath(path string) (Path, error) {
	parts := strings.Split(strings.TrimSpace(path), ".")
	for _, part := range parts {
		if part == "" {
			return Path{}, fmt.Errorf("%w: %q", ErrInvalidPath, path)
		}
	}
	switch {
	case len(parts) == 2 && isScalarScope(parts[0]):
		return Path{Scope: parts[0], Index: -1, Key: parts[1]}, nil
	case len(parts) == 3:
		if _, ok := LookupSection(parts[0]); !ok {
			return Path{}, fmt.Errorf("%w %q", ErrUnknownSection, parts[0])
		}
		idx, err := strconv.Atoi(parts[1])
		if err != nil || idx < 0 {
			return Path{}, fmt.Errorf("%w: %q: bad row index", ErrInvalidPath, path)
		}
		return Path{Scope: parts[0], Index: idx, Key: parts[2]}, nil
	}
	return Path{}, fmt.Errorf("%w: %q", ErrInvalidPath, path)
}

func (p Path) String() string {
	if p.Index < 0 {
		return p.Scope + "." + p.Key
	}
	return CellPath(Section(p.Scope), p.Index, p.Key)
}
