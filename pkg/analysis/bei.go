package analysis

import (
	"math"
	"strconv"
)

// Level is a BEI rating band.
type Level string

const (
	LevelExcellent        Level = "excellent"
	LevelVeryGood         Level = "very_good"
	LevelGood             Level = "good"
	LevelNeedsImprovement Level = "needs_improvement"
	LevelPoor             Level = "poor"
)

// ComplianceThreshold is the largest BEI that meets the energy standard.
const ComplianceThreshold = 1.0

// Rating is the commentary for a BEI value.
type Rating struct {
	Level     Level  `json:"level"`
	Comment   string `json:"comment"`
	Detail    string `json:"detail"`
	Compliant bool   `json:"compliant"`
}

type ratingBand struct {
	upper  float64
	rating Rating
}

var ratingBands = []ratingBand{
	{0.8, Rating{Level: LevelExcellent, Comment: "非常に優秀な省エネ性能です", Detail: "ZEB Ready相当の高性能建築物です"}},
	{0.9, Rating{Level: LevelVeryGood, Comment: "優秀な省エネ性能です", Detail: "基準を大幅に下回る高効率設計です"}},
	{1.0, Rating{Level: LevelGood, Comment: "省エネ基準に適合します", Detail: "法的要件を満たした良好な設計です"}},
	{1.2, Rating{Level: LevelNeedsImprovement, Comment: "省エネ基準に適合しません", Detail: "設備効率の改善が必要です"}},
}

var poorRating = Rating{Level: LevelPoor, Comment: "省エネ基準に大きく適合しません", Detail: "設計の抜本的な見直しが必要です"}

// AnalyzeBEI rates bei. Bounds are inclusive.
func AnalyzeBEI(bei float64) Rating {
	for _, band := range ratingBands {
		if bei <= band.upper {
			r := band.rating
			r.Compliant = bei <= ComplianceThreshold
			return r
		}
	}
	return poorRating
}

// RoundBEI rounds up at the third decimal and keeps two decimals for display.
// It reports false for non-finite input.
func RoundBEI(value float64) (float64, bool) {
	up, ok := ceilThousandths(value)
	if !ok {
		return 0, false
	}
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(up, 'f', 2, 64), 64)
	if err != nil {
		return 0, false
	}
	return rounded, true
}

// FormatBEI renders value the way BEI is displayed. Non-finite input yields
// an empty string.
func FormatBEI(value float64) string {
	up, ok := ceilThousandths(value)
	if !ok {
		return ""
	}
	return strconv.FormatFloat(up, 'f', 2, 64)
}

func ceilThousandths(value float64) (float64, bool) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return math.Ceil(value*1000) / 1000, true
}
