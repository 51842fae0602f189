package wizard

// Step identifiers.
const (
	StepBasic        = 1
	StepOpenings     = 2
	StepInsulation   = 3
	StepEnvelope     = 4
	StepAirCondition = 5
	StepVentilation  = 6
	StepLighting     = 7
	StepHotWater     = 8
	StepOther        = 9
	StepReview       = 10
)

// Step describes one wizard page.
type Step struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
	Short string `json:"short"`
	// FieldPrefixes are the FieldPath prefixes owned by the step. The review
	// step owns nothing and acts as the fallback.
	FieldPrefixes []string `json:"field_prefixes,omitempty"`
}

var defaultSteps = []Step{
	{ID: StepBasic, Label: "基本情報", Short: "A", FieldPrefixes: []string{"building.", "design_energy.", "performance."}},
	{ID: StepOpenings, Label: "開口部", Short: "B1", FieldPrefixes: []string{"windows."}},
	{ID: StepInsulation, Label: "断熱", Short: "B2", FieldPrefixes: []string{"insulations."}},
	{ID: StepEnvelope, Label: "外皮", Short: "B3", FieldPrefixes: []string{"envelopes."}},
	{ID: StepAirCondition, Label: "空調", Short: "C", FieldPrefixes: []string{"heat_sources.", "outdoor_air.", "pumps.", "fans."}},
	{ID: StepVentilation, Label: "換気", Short: "D", FieldPrefixes: []string{"ventilations."}},
	{ID: StepLighting, Label: "照明", Short: "E", FieldPrefixes: []string{"lightings."}},
	{ID: StepHotWater, Label: "給湯", Short: "F", FieldPrefixes: []string{"hot_waters."}},
	{ID: StepOther, Label: "昇降機・再エネ", Short: "G-I", FieldPrefixes: []string{"elevators.", "solar_pvs.", "cogenerations."}},
	{ID: StepReview, Label: "確認・出力", Short: "出力"},
}

// DefaultSteps returns the standard step table.
func DefaultSteps() []Step {
	out := make([]Step, len(defaultSteps))
	for i, s := range defaultSteps {
		s.FieldPrefixes = append([]string(nil), s.FieldPrefixes...)
		out[i] = s
	}
	return out
}

// Tag is a literal section marker the external service uses in error text.
type Tag struct {
	Marker string
	Step   int
}

// defaultTags pairs each sheet marker with its step. 様式C also covers the
// C1..C4 sub-sheets; the S-prefixed markers are the small-model sheets.
var defaultTags = []Tag{
	{"様式A", StepBasic},
	{"様式B1", StepOpenings},
	{"様式B2", StepInsulation},
	{"様式B3", StepEnvelope},
	{"様式C", StepAirCondition},
	{"様式D", StepVentilation},
	{"様式E", StepLighting},
	{"様式F", StepHotWater},
	{"様式G", StepOther},
	{"様式H", StepOther},
	{"様式I", StepOther},
	{"様式SA", StepBasic},
	{"様式SB1", StepOpenings},
	{"様式SB2", StepInsulation},
	{"様式SC", StepAirCondition},
	{"様式SD", StepVentilation},
	{"様式SE", StepLighting},
	{"様式SF", StepHotWater},
	{"様式SH", StepOther},
}

// DefaultTags returns the standard marker table.
func DefaultTags() []Tag {
	out := make([]Tag, len(defaultTags))
	copy(out, defaultTags)
	return out
}
