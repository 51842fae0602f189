package validation

import (
	"testing"

	"github.com/goliatone/go-beiform/pkg/form"
)

func TestClassifyFloorArea(t *testing.T) {
	cases := []struct {
		value form.Value
		level Severity
		msg   string
	}{
		{"0", SeverityError, "床面積は0より大きい値を入力してください"},
		{"49", SeverityWarning, "床面積が小さいです"},
		{"100001", SeverityWarning, "床面積が非常に大きいです"},
		{"500", SeverityInfo, "床面積は適切な範囲内です"},
	}
	for _, tc := range cases {
		got := ClassifyFloorArea(tc.value)
		if len(got) != 1 || got[0].Level != tc.level || got[0].Message != tc.msg {
			t.Errorf("ClassifyFloorArea(%q) = %+v", tc.value, got)
		}
	}
	if ClassifyFloorArea("") != nil {
		t.Fatalf("blank floor area should yield nothing")
	}
}

func TestRegionNumber(t *testing.T) {
	cases := map[form.Value]int{"6地域": 6, "1": 1, " 8地域 ": 8}
	for in, want := range cases {
		if got, ok := RegionNumber(in); !ok || got != want {
			t.Errorf("RegionNumber(%q) = %d %v", in, got, ok)
		}
	}
	for _, bad := range []form.Value{"", "9地域", "北海道", "0"} {
		if _, ok := RegionNumber(bad); ok {
			t.Errorf("RegionNumber(%q) should fail", bad)
		}
	}
}

func TestClassifyUA(t *testing.T) {
	cases := []struct {
		value, region form.Value
		level         Severity
		msg           string
	}{
		{"0.80", "6地域", SeverityInfo, "6地域の省エネ基準に適合しています"},
		{"1.2", "6地域", SeverityWarning, "6地域の省エネ基準を上回っています"},
		{"1.5", "6地域", SeverityError, "6地域の省エネ基準を大幅に上回っています"},
		{"0.5", "1地域", SeverityWarning, "1地域の省エネ基準を上回っています"},
		{"6", "6地域", SeverityError, "UA値が極端に大きいです"},
		{"-1", "6地域", SeverityError, "UA値は0より大きい値を入力してください"},
		{"0.8", "", SeverityInfo, "UA値が入力されました"},
	}
	for _, tc := range cases {
		got := ClassifyUA(tc.value, tc.region)
		if len(got) != 1 || got[0].Level != tc.level || got[0].Message != tc.msg {
			t.Errorf("ClassifyUA(%q, %q) = %+v", tc.value, tc.region, got)
		}
	}
}

func TestClassifyEtaAC(t *testing.T) {
	got := ClassifyEtaAC("3.0", "4地域")
	if len(got) != 1 || got[0].Level != SeverityInfo {
		t.Fatalf("expected compliant result, got %+v", got)
	}
	got = ClassifyEtaAC("4.5", "5地域")
	if len(got) != 1 || got[0].Level != SeverityError || got[0].Recommendation != "窓・開口部の改修が必要です" {
		t.Fatalf("expected far-above result, got %+v", got)
	}
	got = ClassifyEtaAC("11", "5地域")
	if len(got) != 1 || got[0].Message != "ηAC値が極端に大きいです" {
		t.Fatalf("expected hard max result, got %+v", got)
	}
}

func TestClassifyRenewable(t *testing.T) {
	if got := ClassifyRenewable("-5", 100); len(got) != 1 || got[0].Level != SeverityError {
		t.Fatalf("expected negative error, got %+v", got)
	}
	if got := ClassifyRenewable("150", 100); len(got) != 1 || got[0].Level != SeverityWarning {
		t.Fatalf("expected over-deduction warning, got %+v", got)
	}
	if got := ClassifyRenewable("50", 100); len(got) != 1 || got[0].Suggestion != "控除量: 50 MJ/年" {
		t.Fatalf("expected info, got %+v", got)
	}
	if got := ClassifyRenewable("0", 100); got != nil {
		t.Fatalf("zero deduction should yield nothing, got %+v", got)
	}
	if got := ClassifyRenewable("150", 0); len(got) != 1 || got[0].Level != SeverityInfo {
		t.Fatalf("missing total should skip comparison, got %+v", got)
	}
}
