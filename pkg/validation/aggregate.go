package validation

import (
	"log/slog"

	"github.com/goliatone/go-beiform/pkg/form"
	"github.com/goliatone/go-beiform/pkg/reference"
)

// RequiredInputMessage is the summary shown when submission is refused.
const RequiredInputMessage = "入力内容に不足があります。必須項目を確認してください。"

// FloorAreaMessage is the blocking error for a non-positive floor area.
const FloorAreaMessage = "計算対象床面積は0より大きい数値を入力してください。"

var buildingRequired = []RequiredField{
	{"building_name", "建物名称"},
	{"region", "省エネ基準地域区分"},
	{"building_type", "建物用途"},
	{"calc_floor_area", "計算対象床面積"},
}

// Result is the outcome of one validation pass.
type Result struct {
	// Errors maps each failing FieldPath to its blocking message.
	Errors map[string]string `json:"errors"`
	// Order lists the failing paths in check order.
	Order []string `json:"order"`
	// Warnings holds the advisory findings per path.
	Warnings map[string][]Warning `json:"warnings,omitempty"`
	Blocking bool                 `json:"blocking"`
	// FirstPath is the earliest failing path, used for navigation.
	FirstPath string `json:"first_path,omitempty"`
}

// Message returns the refusal summary when the result blocks submission.
func (r Result) Message() string {
	if !r.Blocking {
		return ""
	}
	return RequiredInputMessage
}

func (r *Result) addError(path, message string) {
	if _, exists := r.Errors[path]; exists {
		return
	}
	r.Errors[path] = message
	r.Order = append(r.Order, path)
}

func (r *Result) addWarnings(path string, warnings []Warning) {
	if len(warnings) == 0 {
		return
	}
	r.Warnings[path] = append(r.Warnings[path], warnings...)
}

// Aggregator validates whole snapshots.
type Aggregator struct {
	fields *FieldValidator
	rules  []SectionRule
	logger *slog.Logger
}

// Option customises an Aggregator.
type Option func(*Aggregator)

// WithFieldValidator overrides the design energy classifier.
func WithFieldValidator(v *FieldValidator) Option {
	return func(a *Aggregator) {
		if v != nil {
			a.fields = v
		}
	}
}

// WithLogger routes debug output to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Aggregator) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// NewAggregator builds an Aggregator with the standard section rules.
func NewAggregator(opts ...Option) *Aggregator {
	a := &Aggregator{
		rules:  SectionRules(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	if a.fields == nil {
		a.fields = NewFieldValidator()
	}
	return a
}

// FieldValidator returns the design energy classifier, whose reference
// table is the one range warnings are computed against.
func (a *Aggregator) FieldValidator() *FieldValidator { return a.fields }

// Validate checks snap and returns a fresh Result. Checks run in wizard
// order: the building record, advisory figures, then each section. Sections
// exempt for small buildings are skipped entirely when snap is small.
func (a *Aggregator) Validate(snap *form.Snapshot) Result {
	if snap == nil {
		snap = &form.Snapshot{}
	}
	res := Result{
		Errors:   make(map[string]string),
		Warnings: make(map[string][]Warning),
	}

	a.validateBuilding(snap, &res)
	a.collectWarnings(snap, &res)

	small := snap.IsSmall()
	for _, rule := range a.rules {
		if small && rule.Section.SmallExempt() {
			continue
		}
		for _, f := range validateRows(rule.Section, snap.Rows(rule.Section), rule) {
			res.addError(f.path, f.warning.Message)
		}
	}

	res.Blocking = len(res.Order) > 0
	if res.Blocking {
		res.FirstPath = res.Order[0]
	}
	a.logger.Debug("validation finished",
		"errors", len(res.Order),
		"warning_paths", len(res.Warnings),
		"small", small,
	)
	return res
}

func (a *Aggregator) validateBuilding(snap *form.Snapshot, res *Result) {
	for _, req := range buildingRequired {
		v, _ := form.Get(snap.Building, req.Key)
		if v.Blank() {
			res.addError(form.BuildingPath(req.Key), RequiredMessage(req.Label))
		}
	}
	area := snap.Building.CalcFloorArea
	if !area.Blank() {
		if n, ok := area.Float(); !ok || n <= 0 {
			res.addError(form.BuildingPath("calc_floor_area"), FloorAreaMessage)
		}
	}
}

func (a *Aggregator) collectWarnings(snap *form.Snapshot, res *Result) {
	b := snap.Building
	res.addWarnings(form.BuildingPath("calc_floor_area"), ClassifyFloorArea(b.CalcFloorArea))

	var total float64
	for _, cat := range reference.Categories() {
		value, ok := snap.DesignEnergy[cat]
		if !ok {
			continue
		}
		if n, ok := value.Float(); ok && n > 0 {
			total += n
		}
		res.addWarnings(form.DesignEnergyPath(string(cat)),
			a.fields.Classify(string(b.BuildingType), cat, value, b.CalcFloorArea))
	}

	perf := snap.Performance
	res.addWarnings(form.PerformancePath("ua_value"), ClassifyUA(perf.UAValue, b.Region))
	res.addWarnings(form.PerformancePath("eta_ac_value"), ClassifyEtaAC(perf.EtaACValue, b.Region))
	res.addWarnings(form.PerformancePath("renewable_energy"), ClassifyRenewable(perf.RenewableEnergy, total))
}
