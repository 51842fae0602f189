package validation

import (
	"fmt"

	"github.com/goliatone/go-beiform/pkg/buildingtype"
	"github.com/goliatone/go-beiform/pkg/form"
	"github.com/goliatone/go-beiform/pkg/reference"
)

// Multipliers applied to the reference bounds.
const (
	FarBelowFactor   = 0.3
	NormalHighFactor = 1.1
	FarAboveFactor   = 2.0
	// MagnitudeFactor caps the raw annual value at floor area times this
	// factor before a unit mistake is assumed.
	MagnitudeFactor = 1000.0
)

// Band is the position of an intensity relative to a reference range.
type Band string

const (
	BandFarBelow   Band = "very_low"
	BandBelow      Band = "low"
	BandNormal     Band = "normal"
	BandNormalHigh Band = "normal_high"
	BandAbove      Band = "high"
	BandFarAbove   Band = "very_high"
)

// ClassifyIntensity places intensity within rng. The in-range band is split
// at NormalHighFactor times the typical value.
func ClassifyIntensity(rng reference.Range, intensity float64) Band {
	switch {
	case intensity < rng.Min*FarBelowFactor:
		return BandFarBelow
	case intensity < rng.Min:
		return BandBelow
	case intensity <= rng.Typical*NormalHighFactor:
		return BandNormal
	case intensity <= rng.Max:
		return BandNormalHigh
	case intensity <= rng.Max*FarAboveFactor:
		return BandAbove
	default:
		return BandFarAbove
	}
}

// FieldValidator classifies design energy values against a reference table.
type FieldValidator struct {
	table *reference.Table
}

// FieldOption customises a FieldValidator.
type FieldOption func(*FieldValidator)

// WithTable overrides the reference table.
func WithTable(table *reference.Table) FieldOption {
	return func(v *FieldValidator) {
		if table != nil {
			v.table = table
		}
	}
}

// NewFieldValidator builds a validator backed by reference.Default unless
// WithTable is supplied.
func NewFieldValidator(opts ...FieldOption) *FieldValidator {
	v := &FieldValidator{table: reference.Default()}
	for _, opt := range opts {
		if opt != nil {
			opt(v)
		}
	}
	return v
}

// Table returns the reference table in use.
func (v *FieldValidator) Table() *reference.Table {
	return v.table
}

// Classify returns the findings for one annual design energy value (MJ/年).
// Blank or non-numeric values yield nothing. Range classification needs a
// positive floor area; without one only the sign check runs.
func (v *FieldValidator) Classify(buildingType string, category reference.Category, value, floorArea form.Value) []Warning {
	n, ok := value.Float()
	if !ok {
		return nil
	}
	if n < 0 {
		return []Warning{{
			Level:      SeverityError,
			Message:    "エネルギー消費量は0以上の値を入力してください",
			Suggestion: "0以上の値を入力してください",
		}}
	}

	area, ok := floorArea.Float()
	if !ok || area <= 0 {
		return nil
	}

	var warnings []Warning
	rng, found := v.table.Lookup(buildingtype.Resolve(buildingType), category)
	if found {
		warnings = append(warnings, v.rangeWarning(category, rng, n/area))
	}
	if n > area*MagnitudeFactor {
		warnings = append(warnings, Warning{
			Level:          SeverityError,
			Message:        "値が床面積に対して極端に大きいです",
			Suggestion:     "単位を確認してください（MJ/年で入力）",
			Recommendation: "kWh/年の場合は3.6で割ってください",
		})
	}
	return warnings
}

func (v *FieldValidator) rangeWarning(category reference.Category, rng reference.Range, intensity float64) Warning {
	label := category.Label()
	unit := v.table.Unit()
	span := fmt.Sprintf("一般的な範囲: %g-%g %s（現在: %.1f %s）", rng.Min, rng.Max, unit, intensity, unit)

	switch ClassifyIntensity(rng, intensity) {
	case BandFarBelow:
		return Warning{
			Level:          SeverityWarning,
			Message:        label + "の値が一般的な範囲より大幅に小さいです",
			Suggestion:     span,
			Recommendation: "値を確認してください。設備が無い場合は0でも構いません",
		}
	case BandBelow:
		return Warning{Level: SeverityInfo, Message: label + "の値が一般的な範囲より小さいです", Suggestion: span}
	case BandNormalHigh:
		return Warning{
			Level:      SeverityInfo,
			Message:    label + "の値は適切な範囲内ですが、やや高めです",
			Suggestion: fmt.Sprintf("一般的な値: %g %s（現在: %.1f %s）", rng.Typical, unit, intensity, unit),
		}
	case BandAbove:
		return Warning{
			Level:          SeverityWarning,
			Message:        label + "の値が一般的な範囲より大きいです",
			Suggestion:     span,
			Recommendation: "特殊な設備がある場合は問題ありません",
		}
	case BandFarAbove:
		return Warning{
			Level:          SeverityError,
			Message:        label + "の値が一般的な範囲より大幅に大きいです",
			Suggestion:     span,
			Recommendation: "入力値を再確認してください。単位間違いの可能性があります",
		}
	default:
		return Warning{
			Level:      SeverityInfo,
			Message:    label + "の値は適切な範囲内です",
			Suggestion: fmt.Sprintf("一般的な値: %g %s（現在: %.1f %s）", rng.Typical, unit, intensity, unit),
		}
	}
}
