package buildingtype

import "strings"

// Type is a canonical building category.
type Type string

const (
	Offices          Type = "offices"
	Hotels           Type = "hotels"
	Hospitals        Type = "hospitals"
	Shops            Type = "shops"
	DepartmentStores Type = "department_stores"
	Schools          Type = "schools"
	Restaurants      Type = "restaurants"
	AssemblyHalls    Type = "assembly_halls"
	Factories        Type = "factories"
)

// Default is returned for any identifier the alias table does not cover.
const Default = Offices

var all = []Type{
	Offices,
	Hotels,
	Hospitals,
	Shops,
	DepartmentStores,
	Schools,
	Restaurants,
	AssemblyHalls,
	Factories,
}

var labels = map[Type]string{
	Offices:          "事務所",
	Hotels:           "ホテル",
	Hospitals:        "病院",
	Shops:            "物販店",
	DepartmentStores: "百貨店",
	Schools:          "学校",
	Restaurants:      "飲食店",
	AssemblyHalls:    "集会所",
	Factories:        "工場",
}

// aliases maps every accepted identifier to its canonical type. ASCII keys are
// stored lower-case; Resolve folds ASCII input before the lookup.
var aliases = map[string]Type{
	// canonical plural keys
	"offices":           Offices,
	"hotels":            Hotels,
	"hospitals":         Hospitals,
	"shops":             Shops,
	"department_stores": DepartmentStores,
	"schools":           Schools,
	"restaurants":       Restaurants,
	"assembly_halls":    AssemblyHalls,
	"factories":         Factories,

	// legacy singular keys
	"office":                 Offices,
	"hotel":                  Hotels,
	"hospital":               Hospitals,
	"shop":                   Shops,
	"shop_department":        DepartmentStores,
	"shop_supermarket":       DepartmentStores,
	"school":                 Schools,
	"school_small":           Schools,
	"school_high":            Schools,
	"school_university":      Schools,
	"restaurant":             Restaurants,
	"assembly":               AssemblyHalls,
	"assembly_hall":          AssemblyHalls,
	"factory":                Factories,
	"residential_collective": Offices,

	// categories without reference data of their own
	"warehouses": Offices,
	"gyms":       AssemblyHalls,
	"museums":    AssemblyHalls,
	"libraries":  Schools,

	// official model names (様式A 建物用途)
	"事務所モデル":    Offices,
	"ビジネスホテルモデル": Hotels,
	"シティホテルモデル":  Hotels,
	"総合病院モデル":   Hospitals,
	"福祉施設モデル":   Hospitals,
	"クリニックモデル":  Hospitals,
	"学校モデル":     Schools,
	"幼稚園モデル":    Schools,
	"大学モデル":     Schools,
	"講堂モデル":     AssemblyHalls,
	"大規模物販モデル":  DepartmentStores,
	"小規模物販モデル":  Shops,
	"飲食店モデル":    Restaurants,
	"集会所モデル":    AssemblyHalls,
	"工場モデル":     Factories,
}

// modelNames is the ordered option list offered for 建物用途.
var modelNames = []string{
	"事務所モデル",
	"ビジネスホテルモデル",
	"シティホテルモデル",
	"総合病院モデル",
	"福祉施設モデル",
	"クリニックモデル",
	"学校モデル",
	"幼稚園モデル",
	"大学モデル",
	"講堂モデル",
	"大規模物販モデル",
	"小規模物販モデル",
	"飲食店モデル",
	"集会所モデル",
	"工場モデル",
}

// Resolve maps identifier to its canonical type. Surrounding whitespace is
// ignored and ASCII letters are matched case-insensitively. Unknown or empty
// identifiers resolve to Default.
func Resolve(identifier string) Type {
	key := strings.ToLower(strings.TrimSpace(identifier))
	if key == "" {
		return Default
	}
	if t, ok := aliases[key]; ok {
		return t
	}
	return Default
}

// Known reports whether identifier is covered by the alias table, letting
// callers tell an explicit match from the fallback.
func Known(identifier string) bool {
	_, ok := aliases[strings.ToLower(strings.TrimSpace(identifier))]
	return ok
}

// Valid reports whether t is one of the canonical types.
func Valid(t Type) bool {
	_, ok := labels[t]
	return ok
}

// All returns the canonical types in display order.
func All() []Type {
	out := make([]Type, len(all))
	copy(out, all)
	return out
}

// ModelNames returns the official model names accepted on the building form.
func ModelNames() []string {
	out := make([]string, len(modelNames))
	copy(out, modelNames)
	return out
}

// Label returns the Japanese display label for t, or the raw key when t is
// not canonical.
func Label(t Type) string {
	if label, ok := labels[t]; ok {
		return label
	}
	return string(t)
}

func (t Type) String() string { return string(t) }
