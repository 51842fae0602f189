// Package beiform validates BEI building-energy wizard input, turns it into
// the official calculation request, and submits it to the calculation
// service. The root package wires the pkg/ components together for callers
// that just want the end-to-end flow.
package beiform

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/goliatone/go-beiform/pkg/contract"
	"github.com/goliatone/go-beiform/pkg/form"
	"github.com/goliatone/go-beiform/pkg/payload"
	"github.com/goliatone/go-beiform/pkg/service"
	"github.com/goliatone/go-beiform/pkg/submit"
	"github.com/goliatone/go-beiform/pkg/validation"
	"github.com/goliatone/go-beiform/pkg/wizard"
)

// Snapshot aliases form.Snapshot, the complete wizard input.
type Snapshot = form.Snapshot

// ValidationResult aliases validation.Result.
type ValidationResult = validation.Result

// Payload aliases payload.Payload, the compute request body.
type Payload = payload.Payload

// Outcome aliases submit.Outcome.
type Outcome = submit.Outcome

// Decode parses a JSON or YAML snapshot document.
func Decode(data []byte) (*Snapshot, error) {
	return form.Decode(data)
}

// Validate runs the local checks with the default aggregator.
func Validate(snap *Snapshot) ValidationResult {
	return validation.NewAggregator().Validate(snap)
}

// BuildPayload normalises snap into the request body.
func BuildPayload(snap *Snapshot) *Payload {
	return payload.Build(snap)
}

// Option configures NewSubmitter.
type Option func(*settings)

type settings struct {
	serviceOpts []service.Option
	contract    bool
	router      *wizard.Router
	aggregator  *validation.Aggregator
	logger      *slog.Logger
}

// WithServiceOptions forwards options to the service client.
func WithServiceOptions(opts ...service.Option) Option {
	return func(s *settings) {
		s.serviceOpts = append(s.serviceOpts, opts...)
	}
}

// WithContractCheck toggles the embedded pre-send contract check. It is on
// by default.
func WithContractCheck(enabled bool) Option {
	return func(s *settings) {
		s.contract = enabled
	}
}

// WithRouter replaces the default step router.
func WithRouter(r *wizard.Router) Option {
	return func(s *settings) {
		if r != nil {
			s.router = r
		}
	}
}

// WithAggregator replaces the default validation aggregator.
func WithAggregator(a *validation.Aggregator) Option {
	return func(s *settings) {
		if a != nil {
			s.aggregator = a
		}
	}
}

// WithLogger attaches a logger to the submitter and the client.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSubmitter builds a service client for baseURL and a submitter around
// it. The client is returned for the operations the submitter does not
// cover, such as Version and ReportFromWorkbook.
func NewSubmitter(ctx context.Context, baseURL string, opts ...Option) (*submit.Submitter, *service.Client, error) {
	s := &settings{
		contract: true,
		router:   wizard.NewRouter(),
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.aggregator == nil {
		s.aggregator = validation.NewAggregator(validation.WithLogger(s.logger))
	}

	clientOpts := append([]service.Option{service.WithLogger(s.logger)}, s.serviceOpts...)
	client, err := service.NewClient(baseURL, clientOpts...)
	if err != nil {
		return nil, nil, fmt.Errorf("beiform: %w", err)
	}

	subOpts := []submit.Option{
		submit.WithRouter(s.router),
		submit.WithAggregator(s.aggregator),
		submit.WithLogger(s.logger),
	}
	if s.contract {
		v, err := contract.New(ctx, contract.WithRouter(s.router))
		if err != nil {
			return nil, nil, fmt.Errorf("beiform: %w", err)
		}
		subOpts = append(subOpts, submit.WithContract(v))
	}
	return submit.NewSubmitter(client, subOpts...), client, nil
}

// Compute validates snap and, when nothing blocks, submits it to the
// compute operation at baseURL.
func Compute(ctx context.Context, baseURL string, snap *Snapshot, opts ...Option) (Outcome, error) {
	sub, _, err := NewSubmitter(ctx, baseURL, opts...)
	if err != nil {
		return Outcome{}, err
	}
	return sub.Compute(ctx, snap), nil
}
