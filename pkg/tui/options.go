package tui

import (
	"log/slog"

	"github.com/goliatone/go-beiform/pkg/submit"
	"github.com/goliatone/go-beiform/pkg/summary"
	"github.com/goliatone/go-beiform/pkg/validation"
	"github.com/goliatone/go-beiform/pkg/wizard"
)

// Theme captures optional message prefixes.
type Theme struct {
	StepPrefix  string
	InfoPrefix  string
	ErrorPrefix string
}

// Option configures the Wizard.
type Option func(*Wizard)

// WithPromptDriver overrides the prompt driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(w *Wizard) {
		if driver != nil {
			w.driver = driver
		}
	}
}

// WithSession enables compute and report submissions from the review page.
func WithSession(session *submit.Session) Option {
	return func(w *Wizard) {
		w.session = session
	}
}

// WithRouter replaces the default step router.
func WithRouter(router *wizard.Router) Option {
	return func(w *Wizard) {
		if router != nil {
			w.router = router
		}
	}
}

// WithAggregator replaces the validation aggregator used by the review page.
func WithAggregator(a *validation.Aggregator) Option {
	return func(w *Wizard) {
		if a != nil {
			w.aggregator = a
		}
	}
}

// WithSummaryRenderer replaces the review summary renderer.
func WithSummaryRenderer(r *summary.Renderer) Option {
	return func(w *Wizard) {
		if r != nil {
			w.renderer = r
		}
	}
}

// WithReportPath enables the PDF report action; reports are written to path.
func WithReportPath(path string) Option {
	return func(w *Wizard) {
		w.reportPath = path
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(w *Wizard) {
		w.theme = theme
	}
}

// WithLogger attaches a logger.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Wizard) {
		if logger != nil {
			w.logger = logger
		}
	}
}
