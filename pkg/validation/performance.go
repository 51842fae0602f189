package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-beiform/pkg/form"
)

// Floor area plausibility bounds (m²).
const (
	MinTypicalFloorArea = 50.0
	MaxTypicalFloorArea = 100000.0
)

// Envelope standards per 省エネ基準地域区分 1..8.
var (
	uaStandards    = map[int]float64{1: 0.46, 2: 0.46, 3: 0.56, 4: 0.75, 5: 0.87, 6: 0.87, 7: 0.87, 8: 0.87}
	etaACStandards = map[int]float64{1: 4.6, 2: 4.6, 3: 3.5, 4: 3.2, 5: 2.8, 6: 2.8, 7: 2.8, 8: 2.8}
)

// ClassifyFloorArea reports on the plausibility of a calculation floor area.
func ClassifyFloorArea(value form.Value) []Warning {
	n, ok := value.Float()
	if !ok {
		return nil
	}
	switch {
	case n <= 0:
		return []Warning{{Level: SeverityError, Message: "床面積は0より大きい値を入力してください", Suggestion: "正の値を入力してください"}}
	case n < MinTypicalFloorArea:
		return []Warning{{Level: SeverityWarning, Message: "床面積が小さいです", Suggestion: "住宅用途でない場合は値を確認してください"}}
	case n > MaxTypicalFloorArea:
		return []Warning{{Level: SeverityWarning, Message: "床面積が非常に大きいです", Suggestion: "超高層建築物の場合は問題ありません"}}
	}
	return []Warning{{Level: SeverityInfo, Message: "床面積は適切な範囲内です", Suggestion: fmt.Sprintf("%s m²", form.Number(n))}}
}

// RegionNumber extracts the zone number from identifiers such as "6地域" or
// "6". The second result is false outside 1..8.
func RegionNumber(region form.Value) (int, bool) {
	text := strings.TrimSuffix(region.Text(), "地域")
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n < 1 || n > 8 {
		return 0, false
	}
	return n, true
}

// ClassifyUA compares an average envelope U-value (W/(m²K)) with the
// regional standard.
func ClassifyUA(value, region form.Value) []Warning {
	return classifyEnvelope(value, region, envelopeCheck{
		name:        "UA値",
		hardMax:     5.0,
		typicalHint: "一般的な建築物のUA値は0.3～2.0の範囲です",
		unit:        " W/(m²·K)",
		standards:   uaStandards,
		warnAdvice:  "断熱性能の向上を検討してください",
		errorAdvice: "断熱改修が必要です",
	})
}

// ClassifyEtaAC compares an average cooling-season solar gain factor with
// the regional standard.
func ClassifyEtaAC(value, region form.Value) []Warning {
	return classifyEnvelope(value, region, envelopeCheck{
		name:        "ηAC値",
		hardMax:     10.0,
		typicalHint: "一般的な建築物のηAC値は1.0～6.0の範囲です",
		standards:   etaACStandards,
		warnAdvice:  "遮熱性能の向上を検討してください",
		errorAdvice: "窓・開口部の改修が必要です",
	})
}

type envelopeCheck struct {
	name        string
	hardMax     float64
	typicalHint string
	unit        string
	standards   map[int]float64
	warnAdvice  string
	errorAdvice string
}

func classifyEnvelope(value, region form.Value, check envelopeCheck) []Warning {
	n, ok := value.Float()
	if !ok {
		return nil
	}
	if n <= 0 {
		return []Warning{{Level: SeverityError, Message: check.name + "は0より大きい値を入力してください", Suggestion: "正の値を入力してください"}}
	}
	if n > check.hardMax {
		return []Warning{{
			Level:          SeverityError,
			Message:        check.name + "が極端に大きいです",
			Suggestion:     check.typicalHint,
			Recommendation: "入力値を再確認してください",
		}}
	}
	zone, ok := RegionNumber(region)
	if !ok {
		return []Warning{{Level: SeverityInfo, Message: check.name + "が入力されました", Suggestion: fmt.Sprintf("現在: %s%s", form.Number(n), check.unit)}}
	}

	std := check.standards[zone]
	detail := fmt.Sprintf("基準値: %s%s以下（現在: %s%s）", form.Number(std), check.unit, form.Number(n), check.unit)
	switch {
	case n <= std:
		return []Warning{{Level: SeverityInfo, Message: fmt.Sprintf("%d地域の省エネ基準に適合しています", zone), Suggestion: detail}}
	case n <= std*1.5:
		return []Warning{{
			Level:          SeverityWarning,
			Message:        fmt.Sprintf("%d地域の省エネ基準を上回っています", zone),
			Suggestion:     detail,
			Recommendation: check.warnAdvice,
		}}
	}
	return []Warning{{
		Level:          SeverityError,
		Message:        fmt.Sprintf("%d地域の省エネ基準を大幅に上回っています", zone),
		Suggestion:     detail,
		Recommendation: check.errorAdvice,
	}}
}

// ClassifyRenewable checks a renewable deduction (MJ/年) against the total
// design energy. totalDesign <= 0 skips the comparison.
func ClassifyRenewable(value form.Value, totalDesign float64) []Warning {
	n, ok := value.Float()
	if !ok {
		return nil
	}
	switch {
	case n < 0:
		return []Warning{{Level: SeverityError, Message: "再生可能エネルギー量は0以上の値を入力してください", Suggestion: "0以上の値を入力してください"}}
	case totalDesign > 0 && n > totalDesign:
		return []Warning{{
			Level:          SeverityWarning,
			Message:        "再エネ控除量が設計一次エネルギー消費量を上回っています",
			Suggestion:     "控除量は設計エネルギー消費量以下にしてください",
			Recommendation: "太陽光発電等の年間発電量を確認してください",
		}}
	case n > 0:
		return []Warning{{Level: SeverityInfo, Message: "再生可能エネルギー控除が設定されています", Suggestion: fmt.Sprintf("控除量: %s MJ/年", form.Number(n))}}
	}
	return nil
}
