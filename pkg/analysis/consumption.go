package analysis

import (
	"fmt"
	"math"

	"github.com/goliatone/go-beiform/pkg/buildingtype"
	"github.com/goliatone/go-beiform/pkg/reference"
	"github.com/goliatone/go-beiform/pkg/validation"
)

// Consumption is the commentary for one category.
type Consumption struct {
	Category    reference.Category `json:"category"`
	Label       string             `json:"label"`
	Band        validation.Band    `json:"band"`
	Intensity   float64            `json:"intensity"`
	Typical     float64            `json:"typical,omitempty"`
	Ratio       float64            `json:"ratio,omitempty"`
	Comment     string             `json:"comment"`
	Detail      string             `json:"detail,omitempty"`
	Suggestions []string           `json:"suggestions,omitempty"`
}

var bandText = map[validation.Band]struct{ comment, detail string }{
	validation.BandFarBelow:   {"非常に低い消費量です", "省エネ性能が優秀です"},
	validation.BandBelow:      {"低い消費量です", "省エネ設計が効いています"},
	validation.BandNormal:     {"標準的な消費量です", "適切な範囲内です"},
	validation.BandNormalHigh: {"やや高めの消費量です", "改善の余地があります"},
	validation.BandAbove:      {"高い消費量です", "省エネ対策の検討をお勧めします"},
	validation.BandFarAbove:   {"非常に高い消費量です", "設計見直しを強くお勧めします"},
}

var suggestions = map[reference.Category][]string{
	reference.Heating: {
		"高効率ヒートポンプの導入",
		"建物外皮の断熱性能向上",
		"熱回収換気システムの採用",
		"床暖房システムの効率化",
	},
	reference.Cooling: {
		"高効率空調機への更新",
		"遮熱性能の向上（窓・外壁）",
		"自然換気の活用",
		"デマンド制御システムの導入",
	},
	reference.Ventilation: {
		"高効率換気ファンの採用",
		"熱交換換気システムの導入",
		"CO2センサーによる外気量制御",
		"ダクトレイアウトの最適化",
	},
	reference.HotWater: {
		"高効率給湯器への更新",
		"太陽熱温水システムの導入",
		"配管断熱の強化",
		"使用量に応じた容量最適化",
	},
	reference.Lighting: {
		"LED照明への完全更新",
		"昼光利用システムの導入",
		"人感センサーの設置",
		"タスク・アンビエント照明の採用",
	},
	reference.Elevator: {
		"回生電力システム搭載機種への更新",
		"インバータ制御の導入",
		"LED照明の採用",
		"待機電力の削減対策",
	},
}

// Suggestions returns improvement ideas for category. Bands at or below
// normal get none.
func Suggestions(category reference.Category, band validation.Band) []string {
	switch band {
	case validation.BandFarBelow, validation.BandBelow, validation.BandNormal:
		return nil
	}
	list := suggestions[category]
	if len(list) == 0 {
		return nil
	}
	return append([]string(nil), list...)
}

// Analyzer compares intensities with a reference table.
type Analyzer struct {
	table *reference.Table
}

// Option customises an Analyzer.
type Option func(*Analyzer)

// WithTable overrides the bundled reference table.
func WithTable(table *reference.Table) Option {
	return func(a *Analyzer) {
		if table != nil {
			a.table = table
		}
	}
}

// NewAnalyzer builds an Analyzer over the bundled table unless overridden.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	if a.table == nil {
		a.table = reference.Default()
	}
	return a
}

// Consumption analyses an intensity (MJ/m²年) for category. Pairs without a
// reference range report the normal band with a generic comment.
func (a *Analyzer) Consumption(intensity float64, buildingType string, category reference.Category) Consumption {
	out := Consumption{
		Category:  category,
		Label:     category.Label(),
		Band:      validation.BandNormal,
		Intensity: intensity,
		Comment:   "標準的な範囲内です",
	}
	rng, ok := a.table.Lookup(buildingtype.Resolve(buildingType), category)
	if !ok || rng.Typical <= 0 || math.IsNaN(intensity) || math.IsInf(intensity, 0) {
		return out
	}

	out.Band = validation.ClassifyIntensity(rng, intensity)
	out.Typical = rng.Typical
	out.Ratio = intensity / rng.Typical
	text := bandText[out.Band]
	out.Comment = fmt.Sprintf("%s（一般的な%gに対して%.0f%%）", text.comment, rng.Typical, out.Ratio*100)
	out.Detail = text.detail
	out.Suggestions = Suggestions(category, out.Band)
	return out
}

// Breakdown analyses every category present in intensities, in category
// display order.
func (a *Analyzer) Breakdown(intensities map[reference.Category]float64, buildingType string) []Consumption {
	out := make([]Consumption, 0, len(intensities))
	for _, category := range reference.Categories() {
		value, ok := intensities[category]
		if !ok {
			continue
		}
		out = append(out, a.Consumption(value, buildingType, category))
	}
	return out
}

// AnalyzeConsumption runs Consumption against the bundled table.
func AnalyzeConsumption(intensity float64, buildingType string, category reference.Category) Consumption {
	return NewAnalyzer().Consumption(intensity, buildingType, category)
}
