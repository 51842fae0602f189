package form

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-beiform/pkg/reference"
)

func TestIsSignificant(t *testing.T) {
	cases := []struct {
		name string
		row  Row
		want bool
	}{
		{"template count only", HeatSource{Count: "1"}, false},
		{"count with name", HeatSource{Count: "1", Name: "x"}, true},
		{"count two", HeatSource{Count: "2"}, true},
		{"count padded default", Pump{Count: " 1.0 "}, false},
		{"whitespace only", Window{Name: "   "}, false},
		{"empty row", Window{}, false},
		{"geometry only", Window{Width: "1.2"}, true},
		{"non numeric count", Fan{Count: "abc"}, true},
		{"no count field", Elevator{ControlType: "交流帰還制御等"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsSignificant(tc.row); got != tc.want {
				t.Fatalf("IsSignificant = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSignificantRows(t *testing.T) {
	rows := []Lighting{{Count: "1"}, {RoomName: "事務室"}, {}, {Count: "3"}}
	if diff := cmp.Diff([]int{1, 3}, SignificantRows(rows)); diff != "" {
		t.Fatalf("indexes mismatch (-want +got):\n%s", diff)
	}
}

func TestNewSnapshotSeedsTemplateRows(t *testing.T) {
	snap := NewSnapshot()
	for _, info := range Sections() {
		rows := snap.Rows(info.Name)
		if len(rows) != 1 {
			t.Fatalf("%s: expected one template row, got %d", info.Name, len(rows))
		}
		if IsSignificant(rows[0]) {
			t.Fatalf("%s: template row must not be significant", info.Name)
		}
	}
	if snap.HeatSources[0].Count != "1" || snap.Lightings[0].Count != "1" {
		t.Fatalf("expected count=1 on equipment template rows")
	}
}

func TestSnapshotSetAndGet(t *testing.T) {
	snap := NewSnapshot()
	mustSet := func(path string, v Value) {
		t.Helper()
		if err := snap.Set(path, v); err != nil {
			t.Fatalf("set %s: %v", path, err)
		}
	}
	mustSet("building.building_name", "Test")
	mustSet("windows.0.window_type", "金属製(単板ガラス)")
	mustSet("design_energy.lighting", "52000")

	if snap.Building.BuildingName != "Test" {
		t.Fatalf("building name not set")
	}
	got, err := snap.Get("windows.0.window_type")
	if err != nil || got != "金属製(単板ガラス)" {
		t.Fatalf("unexpected window type %q (%v)", got, err)
	}
	if snap.DesignEnergy[reference.Lighting] != "52000" {
		t.Fatalf("design energy not set")
	}

	cases := map[string]error{
		"building.nickname":   ErrUnknownField,
		"windows.0.colour":    ErrUnknownField,
		"windows.5.name":      ErrRowIndex,
		"garages.0.name":      ErrUnknownSection,
		"windows.x.name":      ErrInvalidPath,
		"building":            ErrInvalidPath,
		"design_energy.steam": ErrUnknownField,
		"windows..name":       ErrInvalidPath,
	}
	for path, want := range cases {
		if err := snap.Set(path, "v"); !errors.Is(err, want) {
			t.Errorf("Set(%q) error = %v, want %v", path, err, want)
		}
	}
}

func TestAddRemoveRow(t *testing.T) {
	snap := NewSnapshot()
	idx, err := snap.AddRow(SectionPumps)
	if err != nil || idx != 1 {
		t.Fatalf("AddRow = %d, %v", idx, err)
	}
	if err := snap.Set("pumps.1.name", "P-2"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := snap.RemoveRow(SectionPumps, 0); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if diff := cmp.Diff([]Pump{{Name: "P-2", Count: "1"}}, snap.Pumps); diff != "" {
		t.Fatalf("pumps mismatch (-want +got):\n%s", diff)
	}
	if err := snap.RemoveRow(SectionPumps, 3); !errors.Is(err, ErrRowIndex) {
		t.Fatalf("expected ErrRowIndex, got %v", err)
	}
	if _, err := snap.AddRow("garages"); !errors.Is(err, ErrUnknownSection) {
		t.Fatalf("expected ErrUnknownSection, got %v", err)
	}
}

func TestCloneIsDeep(t *testing.T) {
	snap := NewSnapshot()
	snap.Windows[0].Name = "W-1"
	snap.DesignEnergy = map[reference.Category]Value{reference.Heating: "10"}

	clone := snap.Clone()
	clone.Windows[0].Name = "changed"
	clone.DesignEnergy[reference.Heating] = "20"

	if snap.Windows[0].Name != "W-1" || snap.DesignEnergy[reference.Heating] != "10" {
		t.Fatalf("clone shares state with source")
	}
}

func TestIsSmall(t *testing.T) {
	cases := map[Value]bool{
		"250":   true,
		"299.9": true,
		"300":   false,
		"0":     false,
		"-5":    false,
		"":      false,
		"abc":   false,
		"500":   false,
	}
	for area, want := range cases {
		snap := &Snapshot{Building: Building{CalcFloorArea: area}}
		if got := snap.IsSmall(); got != want {
			t.Errorf("IsSmall(%q) = %v, want %v", area, got, want)
		}
	}
}

func TestValueParsing(t *testing.T) {
	if f, ok := Value(" 12.5 ").Float(); !ok || f != 12.5 {
		t.Fatalf("Float = %v %v", f, ok)
	}
	if _, ok := Value("NaN").Float(); ok {
		t.Fatalf("NaN must not parse")
	}
	if n, ok := Value("2.9").Int(); !ok || n != 2 {
		t.Fatalf("Int(2.9) = %v %v", n, ok)
	}
	if _, ok := Value("").Int(); ok {
		t.Fatalf("blank must not parse")
	}
	if Number(3.0) != "3" || Number(0.25) != "0.25" {
		t.Fatalf("unexpected Number formatting")
	}
}

func TestValueUnmarshalJSON(t *testing.T) {
	var row HeatSource
	if err := json.Unmarshal([]byte(`{"name":"PAC","count":2,"capacity_cooling":null,"power_cooling":12.5}`), &row); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := HeatSource{Name: "PAC", Count: "2", PowerCooling: "12.5"}
	if diff := cmp.Diff(want, row); diff != "" {
		t.Fatalf("row mismatch (-want +got):\n%s", diff)
	}
	if err := json.Unmarshal([]byte(`{"name":{"x":1}}`), &row); err == nil {
		t.Fatalf("expected error for object cell")
	}
}

func TestDecode(t *testing.T) {
	yamlDoc := []byte(`
building:
  building_name: Test
  calc_floor_area: 500
windows:
  - name: W-1
    area: 2.5
design_energy:
  lighting: 52000
`)
	snap, err := Decode(yamlDoc)
	if err != nil {
		t.Fatalf("decode yaml: %v", err)
	}
	if snap.Building.CalcFloorArea != "500" || snap.Windows[0].Area != "2.5" {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if snap.DesignEnergy[reference.Lighting] != "52000" {
		t.Fatalf("design energy not decoded")
	}

	jsonDoc := []byte(`{"building":{"building_name":"J"},"pumps":[{"name":"P","count":"1"}]}`)
	snap, err = Decode(jsonDoc)
	if err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if snap.Building.BuildingName != "J" || len(snap.Pumps) != 1 {
		t.Fatalf("unexpected json snapshot %+v", snap)
	}

	if _, err := Decode([]byte(`{"building":{"buildng_name":"typo"}}`)); err == nil {
		t.Fatalf("expected unknown json field error")
	}
	if _, err := Decode([]byte("windows:\n  - nmae: typo\n")); err == nil {
		t.Fatalf("expected unknown yaml field error")
	}
	if _, err := Decode([]byte("  ")); err == nil {
		t.Fatalf("expected empty document error")
	}
}

func TestFieldsOf(t *testing.T) {
	fields := FieldsOf(Elevator{})
	want := []Field{
		{Key: "name", Label: "昇降機名称", Kind: KindText},
		{Key: "control_type", Label: "速度制御方式", Kind: KindSelect, Options: Options("elevator_controls")},
	}
	if diff := cmp.Diff(want, fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
	building := FieldsOf(&Building{})
	if building[3].Key != "building_type" || len(building[3].Options) != 15 {
		t.Fatalf("building_type should offer the model names: %+v", building[3])
	}
}

func TestNewRow(t *testing.T) {
	row, err := NewRow(SectionCogenerations)
	if err != nil {
		t.Fatalf("NewRow: %v", err)
	}
	if diff := cmp.Diff(Cogeneration{Count: "1"}, row); diff != "" {
		t.Fatalf("template mismatch (-want +got):\n%s", diff)
	}
	if _, err := NewRow("x"); !errors.Is(err, ErrUnknownSection) {
		t.Fatalf("expected ErrUnknownSection, got %v", err)
	}
}
