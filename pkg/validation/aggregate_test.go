package validation

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-beiform/pkg/form"
	"github.com/goliatone/go-beiform/pkg/reference"
)

func validBuilding(area form.Value) form.Building {
	return form.Building{
		BuildingName:  "Test",
		Region:        "6地域",
		BuildingType:  "事務所モデル",
		CalcFloorArea: area,
	}
}

func TestValidateBlankBuildingName(t *testing.T) {
	snap := form.NewSnapshot()
	snap.Building = validBuilding("500")
	snap.Building.BuildingName = "  "

	res := NewAggregator().Validate(snap)
	if !res.Blocking {
		t.Fatalf("expected blocking result")
	}
	if diff := cmp.Diff(map[string]string{"building.building_name": "建物名称は必須です。"}, res.Errors); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
	if res.FirstPath != "building.building_name" {
		t.Fatalf("unexpected first path %q", res.FirstPath)
	}
	if res.Message() != RequiredInputMessage {
		t.Fatalf("unexpected summary %q", res.Message())
	}
}

func TestValidateWindowMissingType(t *testing.T) {
	snap := form.NewSnapshot()
	snap.Building = validBuilding("500")
	snap.Windows[0] = form.Window{Name: "W-1", Area: "2.4"}

	res := NewAggregator().Validate(snap)
	want := map[string]string{"windows.0.window_type": "建具の種類は必須です。"}
	if diff := cmp.Diff(want, res.Errors); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
	if !res.Blocking || res.FirstPath != "windows.0.window_type" {
		t.Fatalf("unexpected gate %v %q", res.Blocking, res.FirstPath)
	}
}

func TestValidateCleanSnapshot(t *testing.T) {
	snap := form.NewSnapshot()
	snap.Building = validBuilding("500")

	res := NewAggregator().Validate(snap)
	if res.Blocking || len(res.Errors) != 0 || res.FirstPath != "" || res.Message() != "" {
		t.Fatalf("expected clean result, got %+v", res)
	}
	if len(res.Warnings["building.calc_floor_area"]) != 1 {
		t.Fatalf("expected floor area info, got %+v", res.Warnings)
	}
}

func TestValidateFloorArea(t *testing.T) {
	cases := map[form.Value]string{
		"":    "計算対象床面積は必須です。",
		"abc": FloorAreaMessage,
		"0":   FloorAreaMessage,
		"-10": FloorAreaMessage,
	}
	for area, want := range cases {
		snap := form.NewSnapshot()
		snap.Building = validBuilding(area)
		res := NewAggregator().Validate(snap)
		if got := res.Errors["building.calc_floor_area"]; got != want {
			t.Errorf("area %q: got %q, want %q", area, got, want)
		}
		if len(res.Order) != 1 {
			t.Errorf("area %q: expected a single error, got %v", area, res.Order)
		}
	}
}

func TestValidateOrderFollowsWizard(t *testing.T) {
	snap := form.NewSnapshot()
	snap.Building = validBuilding("500")
	snap.Building.Region = ""
	snap.HotWaters[0] = form.HotWater{SystemName: "HW-1", Count: "1"}
	snap.Windows[0] = form.Window{Name: "W-1"}
	snap.SolarPVs[0] = form.SolarPV{SystemName: "PV"}

	res := NewAggregator().Validate(snap)
	want := []string{
		"building.region",
		"windows.0.window_type",
		"windows.0.area",
		"hot_waters.0.use_type",
		"solar_pvs.0.cell_type",
		"solar_pvs.0.capacity_kw",
	}
	if diff := cmp.Diff(want, res.Order); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
	if res.Errors["windows.0.area"] != WindowGeometryMessage {
		t.Fatalf("expected window geometry error")
	}
}

func TestValidateSmallBuildingSkipsExemptSections(t *testing.T) {
	snap := form.NewSnapshot()
	snap.Building = validBuilding("250")
	snap.Envelopes[0] = form.Envelope{Name: "北面"}
	snap.Elevators[0] = form.Elevator{Name: "EV-1"}
	snap.Cogenerations[0] = form.Cogeneration{Name: "CGS", Count: "1"}
	snap.Pumps[0] = form.Pump{Name: "P-1", Count: "2"}

	res := NewAggregator().Validate(snap)
	if res.Blocking {
		t.Fatalf("small building must skip exempt sections, got %v", res.Errors)
	}

	snap.Building.CalcFloorArea = "500"
	res = NewAggregator().Validate(snap)
	want := []string{
		"envelopes.0.direction",
		"envelopes.0.area",
		"elevators.0.control_type",
		"cogenerations.0.rated_output",
	}
	if diff := cmp.Diff(want, res.Order); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateTemplateRowsAreIgnored(t *testing.T) {
	snap := form.NewSnapshot()
	snap.Building = validBuilding("500")
	for _, info := range form.Sections() {
		if _, err := snap.AddRow(info.Name); err != nil {
			t.Fatalf("add row: %v", err)
		}
	}
	if res := NewAggregator().Validate(snap); res.Blocking {
		t.Fatalf("template rows must not block, got %v", res.Errors)
	}
}

func TestValidateDesignEnergyWarningsNeverBlock(t *testing.T) {
	snap := form.NewSnapshot()
	snap.Building = validBuilding("100")
	snap.DesignEnergy = map[reference.Category]form.Value{
		reference.Heating:  "30100",
		reference.Lighting: "-4",
	}
	snap.Performance.UAValue = "2.0"

	res := NewAggregator().Validate(snap)
	if res.Blocking {
		t.Fatalf("advisory findings must not block, got %v", res.Errors)
	}
	heating := res.Warnings["design_energy.heating"]
	if len(heating) != 1 || heating[0].Level != SeverityError {
		t.Fatalf("unexpected heating warnings %+v", heating)
	}
	if lighting := res.Warnings["design_energy.lighting"]; len(lighting) != 1 || lighting[0].Level != SeverityError {
		t.Fatalf("unexpected lighting warnings %+v", lighting)
	}
	if ua := res.Warnings["performance.ua_value"]; len(ua) != 1 || ua[0].Level != SeverityError {
		t.Fatalf("unexpected ua warnings %+v", ua)
	}
}

func TestValidateRebuildsFromScratch(t *testing.T) {
	agg := NewAggregator()
	snap := form.NewSnapshot()
	snap.Building = validBuilding("500")
	snap.Windows[0] = form.Window{Name: "W-1", Area: "1"}

	first := agg.Validate(snap)
	if _, ok := first.Errors["windows.0.window_type"]; !ok {
		t.Fatalf("expected window error")
	}
	snap.Windows[0].WindowType = "金属製(単板ガラス)"
	second := agg.Validate(snap)
	if second.Blocking || len(second.Errors) != 0 {
		t.Fatalf("corrected field must clear the error, got %v", second.Errors)
	}
}

func TestValidateNilSnapshot(t *testing.T) {
	res := NewAggregator().Validate(nil)
	want := []string{
		"building.building_name",
		"building.region",
		"building.building_type",
		"building.calc_floor_area",
	}
	if diff := cmp.Diff(want, res.Order); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateRows(t *testing.T) {
	rule, ok := RuleFor(form.SectionEnvelopes)
	if !ok {
		t.Fatalf("missing envelope rule")
	}
	rows := []form.Row{
		form.Envelope{},
		form.Envelope{Name: "南面", Direction: "南", Width: "10", Height: "3"},
		form.Envelope{Name: "北面", Direction: "北", Width: "10"},
		form.Envelope{Direction: "東", Area: "0"},
	}
	got := ValidateRows(form.SectionEnvelopes, rows, rule)
	want := map[string]Warning{
		"envelopes.2.area": {Level: SeverityError, Message: EnvelopeGeometryMessage},
		"envelopes.3.name": {Level: SeverityError, Message: "外皮名称は必須です。"},
		"envelopes.3.area": {Level: SeverityError, Message: EnvelopeGeometryMessage},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestSectionRulesCoverCatalog(t *testing.T) {
	rules := SectionRules()
	sections := form.Sections()
	if len(rules) != len(sections) {
		t.Fatalf("expected %d rules, got %d", len(sections), len(rules))
	}
	for i, info := range sections {
		if rules[i].Section != info.Name {
			t.Fatalf("rule %d is %s, want %s", i, rules[i].Section, info.Name)
		}
		for _, req := range rules[i].Required {
			row, _ := form.NewRow(info.Name)
			if !form.HasField(row, req.Key) {
				t.Fatalf("%s requires undeclared field %q", info.Name, req.Key)
			}
		}
	}
}
