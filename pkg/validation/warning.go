package validation

// Severity is the level of a Warning.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Warning is a single finding. Suggestion and Recommendation are optional.
type Warning struct {
	Level          Severity `json:"level"`
	Message        string   `json:"message"`
	Suggestion     string   `json:"suggestion,omitempty"`
	Recommendation string   `json:"recommendation,omitempty"`
}

func errorWarning(message string) Warning {
	return Warning{Level: SeverityError, Message: message}
}

// MaxLevel returns the highest severity in warnings, or "" when empty.
func MaxLevel(warnings []Warning) Severity {
	var out Severity
	for _, w := range warnings {
		if rank(w.Level) > rank(out) {
			out = w.Level
		}
	}
	return out
}

func rank(s Severity) int {
	switch s {
	case SeverityInfo:
		return 1
	case SeverityWarning:
		return 2
	case SeverityError:
		return 3
	}
	return 0
}
