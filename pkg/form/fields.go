package form

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// Kind describes how a cell is entered and coerced.
type Kind string

const (
	KindText    Kind = "text"
	KindNumber  Kind = "number"
	KindInteger Kind = "integer"
	KindSelect  Kind = "select"
	// KindCount is an integer quantity that defaults to 1.
	KindCount Kind = "count"
)

// CountKey is the key of the unit-count cell carried by equipment sections.
const CountKey = "count"

// Field is the static description of one record cell.
type Field struct {
	Key     string
	Label   string
	Kind    Kind
	Unit    string
	Options []string
}

// Cell pairs a field key with its current raw value.
type Cell struct {
	Key   string
	Value Value
}

// Row is implemented by every repeated-section record.
type Row interface {
	Cells() []Cell
}

type recordInfo struct {
	fields []Field
	index  map[string]int // key -> struct field index
}

var recordCache sync.Map // reflect.Type -> *recordInfo

func describe(t reflect.Type) *recordInfo {
	if cached, ok := recordCache.Load(t); ok {
		return cached.(*recordInfo)
	}
	info := &recordInfo{index: make(map[string]int, t.NumField())}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Type != reflect.TypeOf(Value("")) {
			continue
		}
		key, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
		if key == "" || key == "-" {
			continue
		}
		field := Field{
			Key:   key,
			Label: sf.Tag.Get("label"),
			Kind:  Kind(sf.Tag.Get("kind")),
			Unit:  sf.Tag.Get("unit"),
		}
		if field.Kind == "" {
			field.Kind = KindText
		}
		if list := sf.Tag.Get("options"); list != "" {
			field.Options = Options(list)
		}
		info.fields = append(info.fields, field)
		info.index[key] = i
	}
	actual, _ := recordCache.LoadOrStore(t, info)
	return actual.(*recordInfo)
}

func recordValue(rec any) reflect.Value {
	rv := reflect.ValueOf(rec)
	for rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	return rv
}

// FieldsOf returns the field descriptions of rec in declaration order.
func FieldsOf(rec any) []Field {
	info := describe(recordValue(rec).Type())
	out := make([]Field, len(info.fields))
	copy(out, info.fields)
	return out
}

// CellsOf returns the cells of rec in declaration order.
func CellsOf(rec any) []Cell {
	rv := recordValue(rec)
	info := describe(rv.Type())
	cells := make([]Cell, 0, len(info.fields))
	for _, f := range info.fields {
		cells = append(cells, Cell{Key: f.Key, Value: rv.Field(info.index[f.Key]).Interface().(Value)})
	}
	return cells
}

// Get returns the value of key on rec.
func Get(rec any, key string) (Value, bool) {
	rv := recordValue(rec)
	idx, ok := describe(rv.Type()).index[key]
	if !ok {
		return "", false
	}
	return rv.Field(idx).Interface().(Value), true
}

// Set assigns key on the record pointed to by rec.
func Set(rec any, key string, value Value) error {
	rv := reflect.ValueOf(rec)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("form: set %q: record must be a non-nil pointer", key)
	}
	rv = rv.Elem()
	idx, ok := describe(rv.Type()).index[key]
	if !ok {
		return fmt.Errorf("%w %q on %s", ErrUnknownField, key, rv.Type().Name())
	}
	rv.Field(idx).Set(reflect.ValueOf(value))
	return nil
}

// HasField reports whether rec declares key.
func HasField(rec any, key string) bool {
	_, ok := describe(recordValue(rec).Type()).index[key]
	return ok
}

func (b Building) Cells() []Cell { return CellsOf(b) }
func (p Performance) Cells() []Cell { return CellsOf(p) }
func (r Window) Cells() []Cell { return CellsOf(r) }
func (r Insulation) Cells() []Cell { return CellsOf(r) }
func (r Envelope) Cells() []Cell { return CellsOf(r) }
func (r HeatSource) Cells() []Cell { return CellsOf(r) }
func (r OutdoorAir) Cells() []Cell { return CellsOf(r) }
func (r Pump) Cells() []Cell { return CellsOf(r) }
func (r Fan) Cells() []Cell { return CellsOf(r) }
func (r Ventilation) Cells() []Cell { return CellsOf(r) }
func (r Lighting) Cells() []Cell { return CellsOf(r) }
func (r HotWater) Cells() []Cell { return CellsOf(r) }
func (r Elevator) Cells() []Cell { return CellsOf(r) }
func (r SolarPV) Cells() []Cell { return CellsOf(r) }
func (r Cogeneration) Cells() []Cell { return CellsOf(r) }
