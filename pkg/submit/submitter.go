package submit

import (
	"context"
	"log/slog"
	"strings"

	"github.com/goliatone/go-beiform/pkg/contract"
	"github.com/goliatone/go-beiform/pkg/form"
	"github.com/goliatone/go-beiform/pkg/payload"
	"github.com/goliatone/go-beiform/pkg/service"
	"github.com/goliatone/go-beiform/pkg/validation"
	"github.com/goliatone/go-beiform/pkg/wizard"
)

// Backend is the external service as seen by the pipeline.
// *service.Client satisfies it.
type Backend interface {
	Compute(ctx context.Context, p *payload.Payload) (*service.ComputeResult, error)
	Report(ctx context.Context, p *payload.Payload) ([]byte, error)
}

// Status classifies an Outcome.
type Status string

const (
	// StatusOK means the service accepted the submission.
	StatusOK Status = "ok"
	// StatusBlocked means local checks refused the submission; nothing was
	// sent.
	StatusBlocked Status = "blocked"
	// StatusFailed means the service call failed or the service rejected
	// the input.
	StatusFailed Status = "failed"
	// StatusStale means the submission was abandoned; its answer must be
	// ignored.
	StatusStale Status = "stale"
)

// Kind names the requested operation.
type Kind string

const (
	KindCompute Kind = "compute"
	KindReport  Kind = "report"
)

// Prepared is the local half of the pipeline.
type Prepared struct {
	Validation validation.Result `json:"validation"`
	Payload    *payload.Payload  `json:"payload,omitempty"`
	Contract   *contract.Result  `json:"contract,omitempty"`
}

// Blocked reports whether local checks refuse the submission.
func (p Prepared) Blocked() bool {
	return p.Validation.Blocking || (p.Contract != nil && !p.Contract.Valid)
}

// Outcome is the end state of one submission.
type Outcome struct {
	Ticket   string                 `json:"ticket,omitempty"`
	Kind     Kind                   `json:"kind"`
	Status   Status                 `json:"status"`
	Prepared Prepared               `json:"prepared"`
	Result   *service.ComputeResult `json:"result,omitempty"`
	Report   []byte                 `json:"-"`
	Failure  service.Failure        `json:"failure"`
	// Step is where the wizard should go next, 0 to stay put.
	Step int `json:"step,omitempty"`
}

// Stale reports whether the outcome belongs to an abandoned submission.
func (o Outcome) Stale() bool { return o.Status == StatusStale }

// Submitter wires the pipeline stages together.
type Submitter struct {
	backend    Backend
	aggregator *validation.Aggregator
	contract   *contract.Validator
	router     *wizard.Router
	normalizer *service.Normalizer
	logger     *slog.Logger
}

// Option customises a Submitter.
type Option func(*Submitter)

// WithAggregator replaces the default validation aggregator.
func WithAggregator(a *validation.Aggregator) Option {
	return func(s *Submitter) {
		if a != nil {
			s.aggregator = a
		}
	}
}

// WithContract enables the pre-send contract check.
func WithContract(v *contract.Validator) Option {
	return func(s *Submitter) {
		s.contract = v
	}
}

// WithRouter sets the step router for navigation and normalisation.
func WithRouter(r *wizard.Router) Option {
	return func(s *Submitter) {
		if r != nil {
			s.router = r
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Submitter) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSubmitter builds a Submitter calling backend.
func NewSubmitter(backend Backend, opts ...Option) *Submitter {
	s := &Submitter{backend: backend, logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.router == nil {
		s.router = wizard.NewRouter()
	}
	if s.aggregator == nil {
		s.aggregator = validation.NewAggregator(validation.WithLogger(s.logger))
	}
	s.normalizer = service.NewNormalizer(service.WithRouter(s.router))
	return s
}

// Aggregator returns the aggregator gating submissions.
func (s *Submitter) Aggregator() *validation.Aggregator { return s.aggregator }

// Router returns the step router.
func (s *Submitter) Router() *wizard.Router { return s.router }

// Prepare validates snap and, when it passes, builds and contract-checks the
// payload. No network traffic happens here.
func (s *Submitter) Prepare(snap *form.Snapshot) Prepared {
	prepared := Prepared{Validation: s.aggregator.Validate(snap)}
	if prepared.Validation.Blocking {
		return prepared
	}
	prepared.Payload = payload.Build(snap)
	if s.contract != nil {
		result, err := s.contract.ValidatePayload(prepared.Payload)
		if err != nil {
			s.logger.Warn("contract check skipped", "error", err)
		} else {
			prepared.Contract = &result
		}
	}
	return prepared
}

// Compute runs the pipeline against the compute operation.
func (s *Submitter) Compute(ctx context.Context, snap *form.Snapshot) Outcome {
	return s.run(ctx, KindCompute, snap)
}

// Report runs the pipeline against the report operation.
func (s *Submitter) Report(ctx context.Context, snap *form.Snapshot) Outcome {
	return s.run(ctx, KindReport, snap)
}

func (s *Submitter) run(ctx context.Context, kind Kind, snap *form.Snapshot) Outcome {
	out := Outcome{Kind: kind}
	if snap == nil {
		return s.fail(out, ErrNoSnapshot)
	}

	out.Prepared = s.Prepare(snap)
	if out.Prepared.Blocked() {
		return s.block(out)
	}
	if s.backend == nil {
		return s.fail(out, ErrNoBackend)
	}

	var err error
	switch kind {
	case KindReport:
		out.Report, err = s.backend.Report(ctx, out.Prepared.Payload)
	default:
		out.Result, err = s.backend.Compute(ctx, out.Prepared.Payload)
	}
	if err != nil {
		return s.fail(out, err)
	}
	out.Status = StatusOK
	out.Step = s.router.Last()
	s.logger.Info("submission accepted", "kind", kind)
	return out
}

func (s *Submitter) block(out Outcome) Outcome {
	out.Status = StatusBlocked
	v := out.Prepared.Validation
	if v.Blocking {
		out.Failure = service.Failure{Message: v.Message(), Path: v.FirstPath}
		out.Step = s.router.StepForFieldPath(v.FirstPath)
	} else if c := out.Prepared.Contract; c != nil && len(c.Issues) > 0 {
		lines := make([]string, 0, len(c.Issues))
		for _, issue := range c.Issues {
			lines = append(lines, issue.String())
		}
		first := c.Issues[0]
		out.Failure = service.Failure{Message: strings.Join(lines, " / "), Path: first.Path}
		out.Step = first.Step
	}
	if out.Step != 0 {
		out.Failure.Step = out.Step
		out.Failure.HasStep = true
	}
	s.logger.Debug("submission blocked", "kind", out.Kind, "path", out.Failure.Path, "step", out.Step)
	return out
}

func (s *Submitter) fail(out Outcome, err error) Outcome {
	out.Status = StatusFailed
	out.Failure = s.normalizer.Normalize(err)
	if out.Failure.HasStep {
		out.Step = out.Failure.Step
	}
	s.logger.Warn("submission failed", "kind", out.Kind, "status", out.Failure.Status, "error", err)
	return out
}
