package summary

import (
	"sort"

	"github.com/goliatone/go-beiform/pkg/analysis"
	"github.com/goliatone/go-beiform/pkg/buildingtype"
	"github.com/goliatone/go-beiform/pkg/form"
	"github.com/goliatone/go-beiform/pkg/submit"
	"github.com/goliatone/go-beiform/pkg/validation"
	"github.com/goliatone/go-beiform/pkg/wizard"
)

// SectionCount is the number of rows entered for a section.
type SectionCount struct {
	Label   string `json:"label"`
	Sheet   string `json:"sheet"`
	Rows    int    `json:"rows"`
	Omitted bool   `json:"omitted"`
}

// Item is one error or warning line.
type Item struct {
	Path    string `json:"path"`
	Level   string `json:"level"`
	Message string `json:"message"`
}

// StepItems groups items under the step that owns them.
type StepItems struct {
	Step  int    `json:"step"`
	Label string `json:"label"`
	Items []Item `json:"items"`
}

// Compute summarises a compute outcome.
type Compute struct {
	Status   string          `json:"status"`
	BEI      string          `json:"bei,omitempty"`
	Rating   analysis.Rating `json:"rating"`
	HasBEI   bool            `json:"has_bei"`
	Warnings []string        `json:"warnings,omitempty"`
	Failure  string          `json:"failure,omitempty"`
}

// Summary is the data behind the review page.
type Summary struct {
	BuildingName string         `json:"building_name"`
	BuildingType string         `json:"building_type"`
	Region       string         `json:"region"`
	FloorArea    string         `json:"floor_area"`
	Small        bool           `json:"small"`
	Sections     []SectionCount `json:"sections"`
	Errors       []StepItems    `json:"errors,omitempty"`
	Warnings     []StepItems    `json:"warnings,omitempty"`
	Compute      *Compute       `json:"compute,omitempty"`
}

// Blocking reports whether the summary lists blocking errors.
func (s Summary) Blocking() bool { return len(s.Errors) > 0 }

// Build assembles a Summary. outcome may be nil when nothing was submitted
// yet; router defaults to the standard step table.
func Build(snap *form.Snapshot, result validation.Result, outcome *submit.Outcome, router *wizard.Router) Summary {
	if snap == nil {
		snap = form.NewSnapshot()
	}
	if router == nil {
		router = wizard.NewRouter()
	}
	s := Summary{
		BuildingName: snap.Building.BuildingName.Text(),
		BuildingType: buildingtype.Label(buildingtype.Resolve(snap.Building.BuildingType.Text())),
		Region:       snap.Building.Region.Text(),
		FloorArea:    snap.Building.CalcFloorArea.Text(),
		Small:        snap.IsSmall(),
	}

	for _, info := range form.Sections() {
		count := SectionCount{Label: info.Label, Sheet: info.Sheet}
		if s.Small && info.SmallExempt {
			count.Omitted = true
		} else {
			for _, row := range snap.Rows(info.Name) {
				if form.IsSignificant(row) {
					count.Rows++
				}
			}
		}
		s.Sections = append(s.Sections, count)
	}

	errorItems := make([]Item, 0, len(result.Order))
	for _, path := range result.Order {
		errorItems = append(errorItems, Item{Path: path, Level: string(validation.SeverityError), Message: result.Errors[path]})
	}
	s.Errors = groupByStep(router, errorItems)

	paths := make([]string, 0, len(result.Warnings))
	for path := range result.Warnings {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	var warningItems []Item
	for _, path := range paths {
		for _, w := range result.Warnings[path] {
			warningItems = append(warningItems, Item{Path: path, Level: string(w.Level), Message: w.Message})
		}
	}
	s.Warnings = groupByStep(router, warningItems)

	if outcome != nil && outcome.Kind == submit.KindCompute && outcome.Status != submit.StatusBlocked && !outcome.Stale() {
		s.Compute = computeSummary(outcome)
	}
	return s
}

func computeSummary(outcome *submit.Outcome) *Compute {
	c := &Compute{Status: string(outcome.Status)}
	if outcome.Status == submit.StatusFailed {
		c.Failure = outcome.Failure.Message
	}
	if r := outcome.Result; r != nil {
		if r.Status != "" {
			c.Status = r.Status
		}
		c.Warnings = r.WarningMessages()
		if r.BEI != nil {
			c.HasBEI = true
			c.BEI = analysis.FormatBEI(*r.BEI)
			c.Rating = analysis.AnalyzeBEI(*r.BEI)
		}
	}
	return c
}

func groupByStep(router *wizard.Router, items []Item) []StepItems {
	if len(items) == 0 {
		return nil
	}
	byStep := map[int][]Item{}
	for _, item := range items {
		step := router.StepForFieldPath(item.Path)
		byStep[step] = append(byStep[step], item)
	}
	var out []StepItems
	for _, step := range router.Steps() {
		if list, ok := byStep[step.ID]; ok {
			out = append(out, StepItems{Step: step.ID, Label: step.Label, Items: list})
		}
	}
	return out
}
