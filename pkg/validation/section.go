package validation

import (
	"github.com/goliatone/go-beiform/pkg/form"
)

// RequiredField names a cell that must be filled on every significant row.
type RequiredField struct {
	Key   string
	Label string
}

// SectionRule is the local rule set for one section.
type SectionRule struct {
	Section  form.Section
	Required []RequiredField
	// GeometryMessage enables the area-or-width×height check when set; the
	// error is attached to the area cell.
	GeometryMessage string
}

// Geometry error messages.
const (
	WindowGeometryMessage   = "窓面積、または幅・高さを入力してください。"
	EnvelopeGeometryMessage = "外皮面積、または幅・高さを入力してください。"
)

var sectionRules = []SectionRule{
	{
		Section:         form.SectionWindows,
		Required:        []RequiredField{{"name", "建具仕様名称"}, {"window_type", "建具の種類"}},
		GeometryMessage: WindowGeometryMessage,
	},
	{
		Section:  form.SectionInsulations,
		Required: []RequiredField{{"name", "断熱仕様名称"}, {"part_class", "部位種別"}, {"input_method", "入力方法"}},
	},
	{
		Section:         form.SectionEnvelopes,
		Required:        []RequiredField{{"name", "外皮名称"}, {"direction", "方位"}},
		GeometryMessage: EnvelopeGeometryMessage,
	},
	{Section: form.SectionHeatSources, Required: []RequiredField{{"type", "熱源機種"}}},
	{Section: form.SectionOutdoorAir},
	{Section: form.SectionPumps},
	{Section: form.SectionFans},
	{Section: form.SectionVentilations, Required: []RequiredField{{"room_name", "室名称"}, {"room_type", "室用途"}}},
	{Section: form.SectionLightings, Required: []RequiredField{{"room_name", "室名称"}, {"room_type", "室用途"}}},
	{Section: form.SectionHotWaters, Required: []RequiredField{{"system_name", "給湯系統名称"}, {"use_type", "給湯用途"}}},
	{Section: form.SectionElevators, Required: []RequiredField{{"control_type", "速度制御方式"}}},
	{Section: form.SectionSolarPVs, Required: []RequiredField{{"cell_type", "太陽電池の種類"}, {"capacity_kw", "システム容量"}}},
	{Section: form.SectionCogenerations, Required: []RequiredField{{"rated_output", "定格発電出力"}}},
}

// SectionRules returns the rule table in wizard order.
func SectionRules() []SectionRule {
	out := make([]SectionRule, len(sectionRules))
	copy(out, sectionRules)
	return out
}

// RuleFor returns the rule for section.
func RuleFor(section form.Section) (SectionRule, bool) {
	for _, rule := range sectionRules {
		if rule.Section == section {
			return rule, true
		}
	}
	return SectionRule{}, false
}

// RequiredMessage formats the blocking error for a blank required cell.
func RequiredMessage(label string) string {
	return label + "は必須です。"
}

type finding struct {
	path    string
	warning Warning
}

// ValidateRows applies rule to every significant row and returns the
// blocking errors keyed by "<section>.<index>.<key>". Rows without input are
// skipped.
func ValidateRows(section form.Section, rows []form.Row, rule SectionRule) map[string]Warning {
	found := validateRows(section, rows, rule)
	out := make(map[string]Warning, len(found))
	for _, f := range found {
		if _, exists := out[f.path]; !exists {
			out[f.path] = f.warning
		}
	}
	return out
}

func validateRows(section form.Section, rows []form.Row, rule SectionRule) []finding {
	var out []finding
	for i, row := range rows {
		if !form.IsSignificant(row) {
			continue
		}
		for _, req := range rule.Required {
			v, ok := form.Get(row, req.Key)
			if ok && !v.Blank() {
				continue
			}
			out = append(out, finding{
				path:    form.CellPath(section, i, req.Key),
				warning: errorWarning(RequiredMessage(req.Label)),
			})
		}
		if rule.GeometryMessage != "" && !hasGeometry(row) {
			out = append(out, finding{
				path:    form.CellPath(section, i, "area"),
				warning: errorWarning(rule.GeometryMessage),
			})
		}
	}
	return out
}

func hasGeometry(row form.Row) bool {
	if positive(row, "area") {
		return true
	}
	return positive(row, "width") && positive(row, "height")
}

func positive(row form.Row, key string) bool {
	v, ok := form.Get(row, key)
	if !ok {
		return false
	}
	n, ok := v.Float()
	return ok && n > 0
}
