package buildingtype

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		in   string
		want Type
	}{
		{"offices", Offices},
		{"office", Offices},
		{"  Office ", Offices},
		{"HOTEL", Hotels},
		{"hospitals", Hospitals},
		{"shop", Shops},
		{"shop_department", DepartmentStores},
		{"shop_supermarket", DepartmentStores},
		{"school_university", Schools},
		{"libraries", Schools},
		{"assembly_hall", AssemblyHalls},
		{"gyms", AssemblyHalls},
		{"factory", Factories},
		{"residential_collective", Offices},
		{"事務所モデル", Offices},
		{"シティホテルモデル", Hotels},
		{"クリニックモデル", Hospitals},
		{"小規模物販モデル", Shops},
		{"大規模物販モデル", DepartmentStores},
		{"幼稚園モデル", Schools},
		{"講堂モデル", AssemblyHalls},
		{"飲食店モデル", Restaurants},
		{"工場モデル", Factories},
		{"", Offices},
		{"   ", Offices},
		{"spaceport", Offices},
	}
	for _, tc := range cases {
		if got := Resolve(tc.in); got != tc.want {
			t.Errorf("Resolve(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestResolveIsTotal(t *testing.T) {
	inputs := append(ModelNames(), "", "?", "offices ", "学校", "\x00", "ｏｆｆｉｃｅ")
	for key := range aliases {
		inputs = append(inputs, key)
	}
	for _, in := range inputs {
		if got := Resolve(in); !Valid(got) {
			t.Fatalf("Resolve(%q) returned non-canonical %q", in, got)
		}
	}
}

func TestModelNamesAllKnown(t *testing.T) {
	for _, name := range ModelNames() {
		if !Known(name) {
			t.Errorf("model name %q missing from alias table", name)
		}
	}
	if Known("unknown-type") {
		t.Fatalf("expected unknown identifier to be reported as not known")
	}
}

func TestLabels(t *testing.T) {
	got := make([]string, 0, len(All()))
	for _, typ := range All() {
		got = append(got, Label(typ))
	}
	want := []string{"事務所", "ホテル", "病院", "物販店", "百貨店", "学校", "飲食店", "集会所", "工場"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}
	if Label("bogus") != "bogus" {
		t.Fatalf("expected raw key for unknown type")
	}
}
