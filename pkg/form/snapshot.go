package form

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/goliatone/go-beiform/pkg/reference"
)

// SmallBuildingThreshold is the calculation floor area (m²) below which a
// building uses the small-model input set.
const SmallBuildingThreshold = 300.0

// Snapshot is the complete wizard input. It is the unit of validation and
// payload construction.
type Snapshot struct {
	Building Building `json:"building" yaml:"building"`
	// DesignEnergy holds optional annual design consumption (MJ/年) per end
	// use. It feeds range warnings only and is not submitted.
	DesignEnergy map[reference.Category]Value `json:"design_energy,omitempty" yaml:"design_energy,omitempty"`
	Performance  Performance                  `json:"performance" yaml:"performance"`

	Windows       []Window       `json:"windows" yaml:"windows"`
	Insulations   []Insulation   `json:"insulations" yaml:"insulations"`
	Envelopes     []Envelope     `json:"envelopes" yaml:"envelopes"`
	HeatSources   []HeatSource   `json:"heat_sources" yaml:"heat_sources"`
	OutdoorAir    []OutdoorAir   `json:"outdoor_air" yaml:"outdoor_air"`
	Pumps         []Pump         `json:"pumps" yaml:"pumps"`
	Fans          []Fan          `json:"fans" yaml:"fans"`
	Ventilations  []Ventilation  `json:"ventilations" yaml:"ventilations"`
	Lightings     []Lighting     `json:"lightings" yaml:"lightings"`
	HotWaters     []HotWater     `json:"hot_waters" yaml:"hot_waters"`
	Elevators     []Elevator     `json:"elevators" yaml:"elevators"`
	SolarPVs      []SolarPV      `json:"solar_pvs" yaml:"solar_pvs"`
	Cogenerations []Cogeneration `json:"cogenerations" yaml:"cogenerations"`
}

var (
	sectionFieldsOnce sync.Once
	sectionFields     map[Section]int
)

func sectionFieldIndex(section Section) (int, bool) {
	sectionFieldsOnce.Do(func() {
		t := reflect.TypeOf(Snapshot{})
		sectionFields = make(map[Section]int, len(catalog))
		for i := 0; i < t.NumField(); i++ {
			key := t.Field(i).Tag.Get("yaml")
			if _, ok := LookupSection(key); ok {
				sectionFields[Section(key)] = i
			}
		}
	})
	idx, ok := sectionFields[section]
	return idx, ok
}

func (s *Snapshot) sectionSlice(section Section) (reflect.Value, error) {
	idx, ok := sectionFieldIndex(section)
	if !ok {
		return reflect.Value{}, fmt.Errorf("%w %q", ErrUnknownSection, section)
	}
	return reflect.ValueOf(s).Elem().Field(idx), nil
}

// NewSnapshot returns an empty snapshot with one template row per section.
// Template rows carry count=1 where the section has a count cell.
func NewSnapshot() *Snapshot {
	s := &Snapshot{}
	for _, info := range catalog {
		_, _ = s.AddRow(info.Name)
	}
	return s
}

// NewRow returns a template row for section.
func NewRow(section Section) (Row, error) {
	s := &Snapshot{}
	slice, err := s.sectionSlice(section)
	if err != nil {
		return nil, err
	}
	return templateRow(slice.Type().Elem()).Interface().(Row), nil
}

func templateRow(elem reflect.Type) reflect.Value {
	row := reflect.New(elem)
	if HasField(row.Interface(), CountKey) {
		_ = Set(row.Interface(), CountKey, "1")
	}
	return row.Elem()
}

// Rows returns the section's rows as Row values, in order.
func (s *Snapshot) Rows(section Section) []Row {
	slice, err := s.sectionSlice(section)
	if err != nil {
		return nil
	}
	out := make([]Row, slice.Len())
	for i := range out {
		out[i] = slice.Index(i).Interface().(Row)
	}
	return out
}

// RowCount returns the number of rows in section.
func (s *Snapshot) RowCount(section Section) int {
	slice, err := s.sectionSlice(section)
	if err != nil {
		return 0
	}
	return slice.Len()
}

// AddRow appends a template row and returns its index.
func (s *Snapshot) AddRow(section Section) (int, error) {
	slice, err := s.sectionSlice(section)
	if err != nil {
		return 0, err
	}
	slice.Set(reflect.Append(slice, templateRow(slice.Type().Elem())))
	return slice.Len() - 1, nil
}

// RemoveRow deletes the row at index. Later rows shift down, so paths
// referring to them change.
func (s *Snapshot) RemoveRow(section Section, index int) error {
	slice, err := s.sectionSlice(section)
	if err != nil {
		return err
	}
	if index < 0 || index >= slice.Len() {
		return fmt.Errorf("%w: %s[%d]", ErrRowIndex, section, index)
	}
	next := reflect.MakeSlice(slice.Type(), 0, slice.Len()-1)
	next = reflect.AppendSlice(next, slice.Slice(0, index))
	next = reflect.AppendSlice(next, slice.Slice(index+1, slice.Len()))
	slice.Set(next)
	return nil
}

// Get returns the raw value at path.
func (s *Snapshot) Get(path string) (Value, error) {
	p, err := ParsePath(path)
	if err != nil {
		return "", err
	}
	switch p.Scope {
	case BuildingScope:
		v, ok := Get(s.Building, p.Key)
		if !ok {
			return "", fmt.Errorf("%w %q on building", ErrUnknownField, p.Key)
		}
		return v, nil
	case DesignEnergyScope:
		cat, ok := reference.ParseCategory(p.Key)
		if !ok {
			return "", fmt.Errorf("%w %q on design_energy", ErrUnknownField, p.Key)
		}
		return s.DesignEnergy[cat], nil
	case PerformanceScope:
		v, ok := Get(s.Performance, p.Key)
		if !ok {
			return "", fmt.Errorf("%w %q on performance", ErrUnknownField, p.Key)
		}
		return v, nil
	}
	slice, err := s.sectionSlice(Section(p.Scope))
	if err != nil {
		return "", err
	}
	if p.Index >= slice.Len() {
		return "", fmt.Errorf("%w: %s", ErrRowIndex, path)
	}
	v, ok := Get(slice.Index(p.Index).Interface(), p.Key)
	if !ok {
		return "", fmt.Errorf("%w %q on %s", ErrUnknownField, p.Key, p.Scope)
	}
	return v, nil
}

// Set assigns value at path.
func (s *Snapshot) Set(path string, value Value) error {
	p, err := ParsePath(path)
	if err != nil {
		return err
	}
	switch p.Scope {
	case BuildingScope:
		return Set(&s.Building, p.Key, value)
	case DesignEnergyScope:
		cat, ok := reference.ParseCategory(p.Key)
		if !ok {
			return fmt.Errorf("%w %q on design_energy", ErrUnknownField, p.Key)
		}
		if s.DesignEnergy == nil {
			s.DesignEnergy = make(map[reference.Category]Value)
		}
		s.DesignEnergy[cat] = value
		return nil
	case PerformanceScope:
		return Set(&s.Performance, p.Key, value)
	}
	slice, err := s.sectionSlice(Section(p.Scope))
	if err != nil {
		return err
	}
	if p.Index >= slice.Len() {
		return fmt.Errorf("%w: %s", ErrRowIndex, path)
	}
	return Set(slice.Index(p.Index).Addr().Interface(), p.Key, value)
}

// FloorArea returns the parsed calculation floor area.
func (s *Snapshot) FloorArea() (float64, bool) {
	return s.Building.CalcFloorArea.Float()
}

// IsSmall reports whether the building is small-classified: a parseable
// floor area strictly between 0 and SmallBuildingThreshold.
func (s *Snapshot) IsSmall() bool {
	area, ok := s.FloorArea()
	return ok && area > 0 && area < SmallBuildingThreshold
}

// Clone returns a deep copy of s.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}
	out := &Snapshot{Building: s.Building, Performance: s.Performance}
	if s.DesignEnergy != nil {
		out.DesignEnergy = make(map[reference.Category]Value, len(s.DesignEnergy))
		for k, v := range s.DesignEnergy {
			out.DesignEnergy[k] = v
		}
	}
	for _, info := range catalog {
		src, _ := s.sectionSlice(info.Name)
		if src.IsNil() {
			continue
		}
		dst, _ := out.sectionSlice(info.Name)
		dst.Set(reflect.AppendSlice(reflect.MakeSlice(src.Type(), 0, src.Len()), src))
	}
	return out
}
