package reference

import "strings"

// Category is an end-use energy category.
type Category string

const (
	Heating     Category = "heating"
	Cooling     Category = "cooling"
	Ventilation Category = "ventilation"
	HotWater    Category = "hot_water"
	Lighting    Category = "lighting"
	Elevator    Category = "elevator"
)

var categories = []Category{Heating, Cooling, Ventilation, HotWater, Lighting, Elevator}

var categoryLabels = map[Category]string{
	Heating:     "暖房",
	Cooling:     "冷房",
	Ventilation: "機械換気",
	HotWater:    "給湯",
	Lighting:    "照明",
	Elevator:    "昇降機",
}

// Categories returns every category in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory matches s against the known category keys.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	_, ok := categoryLabels[c]
	return c, ok
}

// Label returns the Japanese display name, falling back to the key.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

func (c Category) String() string { return string(c) }
