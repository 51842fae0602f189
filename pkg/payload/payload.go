package payload

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-beiform/pkg/form"
)

// DefaultBuildingArea is sent as building_area_m2 when the floor area cannot
// be parsed.
const DefaultBuildingArea = 1000.0

// LegacyEnergyItem is the placeholder design_energy entry older service
// versions still require. Its content is fixed.
type LegacyEnergyItem struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
	Unit     string  `json:"unit"`
}

func legacyDesignEnergy() []LegacyEnergyItem {
	return []LegacyEnergyItem{{Category: "lighting", Value: 1, Unit: "MJ"}}
}

// SectionRows is the coerced content of one section.
type SectionRows struct {
	Section form.Section
	Rows    []Record
}

// OfficialInput is the official_input object.
type OfficialInput struct {
	Building Record
	// Sections holds the included sections in wizard order. Sections
	// omitted for small buildings are absent.
	Sections []SectionRows
}

// Section returns the rows built for section. The second result is false
// when the section was omitted.
func (o OfficialInput) Section(section form.Section) ([]Record, bool) {
	for _, s := range o.Sections {
		if s.Section == section {
			return s.Rows, true
		}
	}
	return nil, false
}

// MarshalJSON implements json.Marshaler.
func (o OfficialInput) MarshalJSON() ([]byte, error) {
	rec := make(Record, 0, len(o.Sections)+1)
	rec = append(rec, Entry{Key: "building", Value: o.Building})
	for _, s := range o.Sections {
		rows := s.Rows
		if rows == nil {
			rows = []Record{}
		}
		rec = append(rec, Entry{Key: string(s.Section), Value: rows})
	}
	return rec.MarshalJSON()
}

// Payload is the compute/report request body.
type Payload struct {
	BuildingAreaM2 float64            `json:"building_area_m2"`
	DesignEnergy   []LegacyEnergyItem `json:"design_energy"`
	OfficialInput  OfficialInput      `json:"official_input"`
}

// Build converts snap. It does not validate; callers gate on
// validation.Result first.
func Build(snap *form.Snapshot) *Payload {
	if snap == nil {
		snap = &form.Snapshot{}
	}
	area, ok := snap.FloorArea()
	if !ok || area == 0 {
		area = DefaultBuildingArea
	}

	input := OfficialInput{Building: Coerce(snap.Building)}
	small := snap.IsSmall()
	for _, info := range form.Sections() {
		if small && info.SmallExempt {
			continue
		}
		rows := snap.Rows(info.Name)
		out := make([]Record, 0, len(rows))
		for _, row := range rows {
			if form.IsSignificant(row) {
				out = append(out, Coerce(row))
			}
		}
		input.Sections = append(input.Sections, SectionRows{Section: info.Name, Rows: out})
	}

	return &Payload{
		BuildingAreaM2: area,
		DesignEnergy:   legacyDesignEnergy(),
		OfficialInput:  input,
	}
}

// Coerce converts one record by field kind, dropping blank cells.
func Coerce(rec any) Record {
	fields := form.FieldsOf(rec)
	cells := form.CellsOf(rec)
	out := make(Record, 0, len(cells))
	for i, cell := range cells {
		if v, ok := coerceCell(fields[i].Kind, cell.Value); ok {
			out = append(out, Entry{Key: cell.Key, Value: v})
		}
	}
	return out
}

func coerceCell(kind form.Kind, v form.Value) (any, bool) {
	switch kind {
	case form.KindNumber:
		return v.Float()
	case form.KindInteger:
		return v.Int()
	case form.KindCount:
		if n, ok := v.Int(); ok && n != 0 {
			return n, true
		}
		return 1, true
	default:
		if text := v.Text(); text != "" {
			return text, true
		}
		return nil, false
	}
}

// Marshal encodes p as JSON.
func Marshal(p *Payload) ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("payload: marshal: %w", err)
	}
	return data, nil
}

// MarshalIndent encodes p as indented JSON for display.
func MarshalIndent(p *Payload) ([]byte, error) {
	data, err := Marshal(p)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return nil, fmt.Errorf("payload: indent: %w", err)
	}
	return buf.Bytes(), nil
}

// Generic decodes the marshalled payload into plain maps and slices, the
// shape consumed by schema validators.
func Generic(p *Payload) (map[string]any, error) {
	data, err := Marshal(p)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("payload: decode: %w", err)
	}
	return out, nil
}
