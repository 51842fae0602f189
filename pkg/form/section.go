package form

import "strings"

// Section names a repeated table of the snapshot. The string value is the
// field-path prefix and the payload key.
type Section string

const (
	SectionWindows       Section = "windows"
	SectionInsulations   Section = "insulations"
	SectionEnvelopes     Section = "envelopes"
	SectionHeatSources   Section = "heat_sources"
	SectionOutdoorAir    Section = "outdoor_air"
	SectionPumps         Section = "pumps"
	SectionFans          Section = "fans"
	SectionVentilations  Section = "ventilations"
	SectionLightings     Section = "lightings"
	SectionHotWaters     Section = "hot_waters"
	SectionElevators     Section = "elevators"
	SectionSolarPVs      Section = "solar_pvs"
	SectionCogenerations Section = "cogenerations"
)

// SectionInfo describes a section for prompts and summaries.
type SectionInfo struct {
	Name  Section
	Label string
	// Sheet is the input-sheet tag the section is printed under.
	Sheet string
	// SmallExempt sections are neither validated nor submitted for
	// small-classified buildings.
	SmallExempt bool
}

// catalog lists the sections in wizard order.
var catalog = []SectionInfo{
	{Name: SectionWindows, Label: "開口部仕様", Sheet: "様式B1"},
	{Name: SectionInsulations, Label: "断熱仕様", Sheet: "様式B2"},
	{Name: SectionEnvelopes, Label: "外皮仕様", Sheet: "様式B3", SmallExempt: true},
	{Name: SectionHeatSources, Label: "空調熱源", Sheet: "様式C1"},
	{Name: SectionOutdoorAir, Label: "外気処理", Sheet: "様式C2"},
	{Name: SectionPumps, Label: "二次ポンプ", Sheet: "様式C3", SmallExempt: true},
	{Name: SectionFans, Label: "空調送風機", Sheet: "様式C4", SmallExempt: true},
	{Name: SectionVentilations, Label: "換気", Sheet: "様式D"},
	{Name: SectionLightings, Label: "照明", Sheet: "様式E"},
	{Name: SectionHotWaters, Label: "給湯", Sheet: "様式F"},
	{Name: SectionElevators, Label: "昇降機", Sheet: "様式G", SmallExempt: true},
	{Name: SectionSolarPVs, Label: "太陽光発電", Sheet: "様式H"},
	{Name: SectionCogenerations, Label: "コージェネレーション", Sheet: "様式I", SmallExempt: true},
}

// Sections returns the section catalog in wizard order.
func Sections() []SectionInfo {
	out := make([]SectionInfo, len(catalog))
	copy(out, catalog)
	return out
}

// LookupSection finds the catalog entry for name.
func LookupSection(name string) (SectionInfo, bool) {
	name = strings.TrimSpace(name)
	for _, info := range catalog {
		if string(info.Name) == name {
			return info, true
		}
	}
	return SectionInfo{}, false
}

// SmallExempt reports whether s is dropped for small-classified buildings.
func (s Section) SmallExempt() bool {
	info, ok := LookupSection(string(s))
	return ok && info.SmallExempt
}

func (s Section) String() string { return string(s) }
