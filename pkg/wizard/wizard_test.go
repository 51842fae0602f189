package wizard

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStepForFieldPath(t *testing.T) {
	r := NewRouter()
	cases := map[string]int{
		"building.building_name":              StepBasic,
		"design_energy.lighting":              StepBasic,
		"performance.ua_value":                StepBasic,
		"windows.0.window_type":               StepOpenings,
		"insulations.2.part_class":            StepInsulation,
		"envelopes.0.area":                    StepEnvelope,
		"heat_sources.0.type":                 StepAirCondition,
		"outdoor_air.1.name":                  StepAirCondition,
		"pumps.0.flow_rate":                   StepAirCondition,
		"fans.0.airflow":                      StepAirCondition,
		"ventilations.0.room_type":            StepVentilation,
		"lightings.3.room_name":               StepLighting,
		"hot_waters.0.use_type":               StepHotWater,
		"elevators.0.control_type":            StepOther,
		"solar_pvs.0.capacity_kw":             StepOther,
		"cogenerations.0.rated_output":        StepOther,
		"/official_input/windows/0/name":      StepOpenings,
		"#/body/official_input/pumps/0/count": StepAirCondition,
		"lightings[1].room_name":              StepLighting,
		"building":                            StepBasic,
		"buildings.0.name":                    StepReview,
		"unknown":                             StepReview,
		"":                                    StepReview,
	}
	for path, want := range cases {
		if got := r.StepForFieldPath(path); got != want {
			t.Errorf("StepForFieldPath(%q) = %d, want %d", path, got, want)
		}
	}
}

func TestStepForFieldPathLongestPrefix(t *testing.T) {
	r := NewRouter(WithSteps([]Step{
		{ID: 1, FieldPrefixes: []string{"heat_sources."}},
		{ID: 2, FieldPrefixes: []string{"heat_sources.0."}},
		{ID: 3},
	}))
	if got := r.StepForFieldPath("heat_sources.0.type"); got != 2 {
		t.Fatalf("expected longest prefix to win, got %d", got)
	}
	if got := r.StepForFieldPath("heat_sources.1.type"); got != 1 {
		t.Fatalf("expected shorter prefix, got %d", got)
	}
	if got := r.StepForFieldPath("other"); got != 3 {
		t.Fatalf("expected fallback to last step, got %d", got)
	}
}

func TestStepForServerErrorTag(t *testing.T) {
	r := NewRouter()
	cases := []struct {
		msg    string
		want   int
		wantOK bool
	}{
		{"様式A 基本情報 は必ずアップロードしてください。", StepBasic, true},
		{"様式B1 開口部仕様の建具の種類が不正です", StepOpenings, true},
		{"様式B3: 外皮面積が0です", StepEnvelope, true},
		{"様式C1 熱源機器の台数が不正です", StepAirCondition, true},
		{"様式C3のポンプ", StepAirCondition, true},
		{"様式E 照明 と 様式A の整合性", StepLighting, true},
		{"error in 様式SB2 and 様式A", StepInsulation, true},
		{"様式SA が見つかりません", StepBasic, true},
		{"様式H 太陽光", StepOther, true},
		{"様式I", StepOther, true},
		{"Internal Server Error", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, ok := r.StepForServerErrorTag(tc.msg)
		if got != tc.want || ok != tc.wantOK {
			t.Errorf("StepForServerErrorTag(%q) = %d %v, want %d %v", tc.msg, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestStepForServerErrorTagTieBreak(t *testing.T) {
	r := NewRouter(WithTags([]Tag{{"様式C", 5}, {"様式C2", 42}}))
	if got, _ := r.StepForServerErrorTag("様式C2 外気処理"); got != 42 {
		t.Fatalf("longer marker at the same position should win, got %d", got)
	}
}

// The marker position in the message decides, not the order of the tag
// table: a message about 様式B1 that also cites 様式A routes to openings.
func TestStepForServerErrorTagPrefersEarliestMarker(t *testing.T) {
	msg := "様式B1 の窓面積が不正です（様式A の延べ面積を確認してください）"
	if got, ok := NewRouter().StepForServerErrorTag(msg); !ok || got != StepOpenings {
		t.Fatalf("expected step %d, got %d %v", StepOpenings, got, ok)
	}

	reordered := NewRouter(WithTags([]Tag{{"様式B1", StepOpenings}, {"様式A", StepBasic}}))
	if got, _ := reordered.StepForServerErrorTag("様式A と 様式B1"); got != StepBasic {
		t.Fatalf("expected step %d regardless of table order, got %d", StepBasic, got)
	}
}

func TestMachineTransitions(t *testing.T) {
	m := NewMachine(nil)
	if m.Current() != StepBasic {
		t.Fatalf("expected first step, got %d", m.Current())
	}
	if m.Previous() {
		t.Fatalf("previous on first step must fail")
	}
	var visited []int
	for m.Next() {
		visited = append(visited, m.Current())
	}
	if diff := cmp.Diff([]int{2, 3, 4, 5, 6, 7, 8, 9, 10}, visited); diff != "" {
		t.Fatalf("visit order mismatch (-want +got):\n%s", diff)
	}
	if m.CurrentStep().Label != "確認・出力" {
		t.Fatalf("unexpected final step %+v", m.CurrentStep())
	}
	if !m.Previous() || m.Current() != StepOther {
		t.Fatalf("expected to step back to 9, got %d", m.Current())
	}

	if m.JumpTo(42) || m.Current() != StepOther {
		t.Fatalf("unknown jump must not change state")
	}
	if !m.JumpTo(StepHotWater) || m.Current() != StepHotWater {
		t.Fatalf("jump failed")
	}
}

func TestMachineFollow(t *testing.T) {
	m := NewMachine(NewRouter())
	if !m.FollowPath("windows.0.window_type") || m.Current() != StepOpenings {
		t.Fatalf("expected openings step, got %d", m.Current())
	}
	if m.FollowPath("  ") || m.Current() != StepOpenings {
		t.Fatalf("blank path must not move")
	}
	if m.FollowServerError("unexpected failure") || m.Current() != StepOpenings {
		t.Fatalf("untagged message must not move")
	}
	if !m.FollowServerError("様式F 給湯") || m.Current() != StepHotWater {
		t.Fatalf("expected hot water step, got %d", m.Current())
	}
}

func TestPrefixesAreDisjoint(t *testing.T) {
	seen := map[string]int{}
	for _, step := range DefaultSteps() {
		for _, p := range step.FieldPrefixes {
			if prev, ok := seen[p]; ok {
				t.Fatalf("prefix %q owned by steps %d and %d", p, prev, step.ID)
			}
			seen[p] = step.ID
		}
	}
	if len(DefaultSteps()[len(DefaultSteps())-1].FieldPrefixes) != 0 {
		t.Fatalf("review step must be the catch-all")
	}
}

func TestNormalizeFieldPath(t *testing.T) {
	cases := map[string]string{
		"/official_input/windows/0/name": "windows.0.name",
		"$.payload.building.region":      "building.region",
		"windows[2].area":                "windows.2.area",
		"a~1b":                           "a/b",
		"  ":                             "",
	}
	for in, want := range cases {
		if got := NormalizeFieldPath(in); got != want {
			t.Errorf("NormalizeFieldPath(%q) = %q, want %q", in, got, want)
		}
	}
}
