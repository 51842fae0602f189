package wizard

import (
	"sort"
	"strings"
)

// Router maps field paths and server messages to steps.
type Router struct {
	steps    []Step
	prefixes []prefixEntry // longest first
	tags     []Tag
	fallback int
}

type prefixEntry struct {
	prefix string
	step   int
}

// RouterOption customises a Router.
type RouterOption func(*Router)

// WithSteps replaces the step table. The last step becomes the fallback.
func WithSteps(steps []Step) RouterOption {
	return func(r *Router) {
		if len(steps) > 0 {
			r.steps = append([]Step(nil), steps...)
		}
	}
}

// WithTags replaces the server marker table.
func WithTags(tags []Tag) RouterOption {
	return func(r *Router) {
		if tags != nil {
			r.tags = append([]Tag(nil), tags...)
		}
	}
}

// NewRouter builds a Router over the default tables unless overridden.
func NewRouter(opts ...RouterOption) *Router {
	r := &Router{steps: DefaultSteps(), tags: DefaultTags()}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	r.fallback = r.steps[len(r.steps)-1].ID
	for _, step := range r.steps {
		for _, prefix := range step.FieldPrefixes {
			r.prefixes = append(r.prefixes, prefixEntry{prefix: prefix, step: step.ID})
		}
	}
	sort.SliceStable(r.prefixes, func(i, j int) bool {
		return len(r.prefixes[i].prefix) > len(r.prefixes[j].prefix)
	})
	return r
}

// Steps returns the step table.
func (r *Router) Steps() []Step {
	return append([]Step(nil), r.steps...)
}

// Step looks up a step by id.
func (r *Router) Step(id int) (Step, bool) {
	for _, s := range r.steps {
		if s.ID == id {
			return s, true
		}
	}
	return Step{}, false
}

// First returns the id of the first step.
func (r *Router) First() int { return r.steps[0].ID }

// Last returns the id of the final step, which is also the fallback.
func (r *Router) Last() int { return r.fallback }

// StepForFieldPath returns the step owning path by longest-prefix match.
// Pointer and bracket notations are normalised first. Unmatched paths land
// on the final step.
func (r *Router) StepForFieldPath(path string) int {
	normalized := NormalizeFieldPath(path)
	if normalized == "" {
		return r.fallback
	}
	normalized += "."
	for _, entry := range r.prefixes {
		if strings.HasPrefix(normalized, entry.prefix) {
			return entry.step
		}
	}
	return r.fallback
}

// StepForServerErrorTag scans message for a section marker. The marker that
// appears earliest wins; at equal positions the longer marker wins. The
// second result is false when no marker is present.
func (r *Router) StepForServerErrorTag(message string) (int, bool) {
	bestPos := -1
	var best Tag
	for _, tag := range r.tags {
		pos := strings.Index(message, tag.Marker)
		if pos < 0 {
			continue
		}
		if bestPos < 0 || pos < bestPos || (pos == bestPos && len(tag.Marker) > len(best.Marker)) {
			bestPos = pos
			best = tag
		}
	}
	if bestPos < 0 {
		return 0, false
	}
	return best.Step, true
}
