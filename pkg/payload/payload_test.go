package payload

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-beiform/pkg/form"
	"github.com/goliatone/go-beiform/pkg/testsupport"
)

func sampleSnapshot(area form.Value) *form.Snapshot {
	snap := form.NewSnapshot()
	snap.Building = form.Building{
		BuildingName:  "Test",
		Region:        "6地域",
		BuildingType:  "事務所モデル",
		CalcFloorArea: area,
		FloorsAbove:   "3.0",
	}
	snap.Windows[0] = form.Window{Name: "W-1", Area: "2.5", WindowType: "金属製(単板ガラス)"}
	snap.Envelopes[0] = form.Envelope{Name: "北面", Direction: "北", Area: "30", WindowCount: "2"}
	snap.HeatSources[0] = form.HeatSource{Type: "ボイラ", Count: "", CapacityHeating: "abc"}
	snap.Pumps[0] = form.Pump{Name: "P-1", Count: "2"}
	snap.Fans[0] = form.Fan{Name: "F-1", Count: "1"}
	snap.Elevators[0] = form.Elevator{ControlType: "交流帰還制御等"}
	snap.Cogenerations[0] = form.Cogeneration{RatedOutput: "25", Count: "1"}
	return snap
}

func TestBuildIsIdempotent(t *testing.T) {
	snap := sampleSnapshot("500")
	first, err := Marshal(Build(snap))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	second, err := Marshal(Build(snap))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("payloads differ:\n%s\n%s", first, second)
	}
}

func TestBuildSmallBuildingOmitsExemptSections(t *testing.T) {
	generic, err := Generic(Build(sampleSnapshot("250")))
	if err != nil {
		t.Fatalf("generic: %v", err)
	}
	input := generic["official_input"].(map[string]any)
	for _, key := range []string{"envelopes", "pumps", "fans", "elevators", "cogenerations"} {
		if _, ok := input[key]; ok {
			t.Errorf("small payload must not contain %s", key)
		}
	}
	for _, key := range []string{"building", "windows", "insulations", "heat_sources", "outdoor_air", "ventilations", "lightings", "hot_waters", "solar_pvs"} {
		if _, ok := input[key]; !ok {
			t.Errorf("small payload must contain %s", key)
		}
	}
	if generic["building_area_m2"] != 250.0 {
		t.Fatalf("unexpected building area %v", generic["building_area_m2"])
	}
}

func TestBuildLargeBuildingKeepsAllSections(t *testing.T) {
	p := Build(sampleSnapshot("500"))
	if len(p.OfficialInput.Sections) != len(form.Sections()) {
		t.Fatalf("expected every section, got %d", len(p.OfficialInput.Sections))
	}
	pumps, ok := p.OfficialInput.Section(form.SectionPumps)
	if !ok || len(pumps) != 1 {
		t.Fatalf("expected one pump row, got %v", pumps)
	}
	fans, _ := p.OfficialInput.Section(form.SectionFans)
	if len(fans) != 1 {
		t.Fatalf("fan with name is significant, got %v", fans)
	}
	insulations, ok := p.OfficialInput.Section(form.SectionInsulations)
	if !ok || len(insulations) != 0 {
		t.Fatalf("template insulation row must be dropped, got %v", insulations)
	}
}

func TestCoercion(t *testing.T) {
	p := Build(sampleSnapshot("500"))

	wantBuilding := Record{
		{Key: "building_name", Value: "Test"},
		{Key: "region", Value: "6地域"},
		{Key: "building_type", Value: "事務所モデル"},
		{Key: "calc_floor_area", Value: 500.0},
		{Key: "floors_above", Value: 3},
	}
	if diff := cmp.Diff(wantBuilding, p.OfficialInput.Building); diff != "" {
		t.Fatalf("building mismatch (-want +got):\n%s", diff)
	}

	heat, _ := p.OfficialInput.Section(form.SectionHeatSources)
	wantHeat := []Record{{{Key: "type", Value: "ボイラ"}, {Key: "count", Value: 1}}}
	if diff := cmp.Diff(wantHeat, heat); diff != "" {
		t.Fatalf("heat source mismatch (-want +got):\n%s", diff)
	}

	envelopes, _ := p.OfficialInput.Section(form.SectionEnvelopes)
	if v, _ := envelopes[0].Get("window_count"); v != 2 {
		t.Fatalf("window_count should be an int, got %#v", v)
	}
	pumps, _ := p.OfficialInput.Section(form.SectionPumps)
	if v, _ := pumps[0].Get("count"); v != 2 {
		t.Fatalf("pump count should be 2, got %#v", v)
	}
}

func TestBuildingAreaFallback(t *testing.T) {
	for _, area := range []form.Value{"", "abc", "0"} {
		p := Build(sampleSnapshot(area))
		if p.BuildingAreaM2 != DefaultBuildingArea {
			t.Errorf("area %q: got %v", area, p.BuildingAreaM2)
		}
	}
	if Build(nil).BuildingAreaM2 != DefaultBuildingArea {
		t.Fatalf("nil snapshot should use the default area")
	}
}

func TestMarshalShape(t *testing.T) {
	snap := form.NewSnapshot()
	snap.Building.BuildingName = "A"
	snap.Building.CalcFloorArea = "1200"

	data, err := Marshal(Build(snap))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"building_area_m2":1200,"design_energy":[{"category":"lighting","value":1,"unit":"MJ"}],` +
		`"official_input":{"building":{"building_name":"A","calc_floor_area":1200},` +
		`"windows":[],"insulations":[],"envelopes":[],"heat_sources":[],"outdoor_air":[],"pumps":[],"fans":[],` +
		`"ventilations":[],"lightings":[],"hot_waters":[],"elevators":[],"solar_pvs":[],"cogenerations":[]}}`
	if string(data) != want {
		t.Fatalf("unexpected payload:\n%s\nwant:\n%s", data, want)
	}

	indented, err := MarshalIndent(Build(snap))
	if err != nil {
		t.Fatalf("indent: %v", err)
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, indented); err != nil {
		t.Fatalf("compact: %v", err)
	}
	if compact.String() != want {
		t.Fatalf("indented payload differs from compact form")
	}
}

func TestRecordKeys(t *testing.T) {
	rec := Coerce(form.SolarPV{CellType: "結晶系太陽電池", CapacityKW: "10", PanelAngle: " 30度 "})
	if diff := cmp.Diff([]string{"cell_type", "capacity_kw", "panel_angle"}, rec.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
	if v, _ := rec.Get("panel_angle"); v != "30度" {
		t.Fatalf("text should be trimmed, got %#v", v)
	}
	if _, ok := rec.Get("system_name"); ok {
		t.Fatalf("blank cells must be omitted")
	}
}

func TestOfficePayloadGolden(t *testing.T) {
	got, err := MarshalIndent(Build(testsupport.MustLoadSnapshot(t, testsupport.Office)))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got = append(got, '\n')

	path := filepath.Join("testdata", "office.golden.json")
	if testsupport.WriteMaybeGolden(t, path, got) {
		return
	}
	want := testsupport.MustReadGolden(t, path)
	if diff := testsupport.CompareGolden(string(want), string(got)); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}
