// Package telemetry wires the OpenTelemetry trace pipeline used by the
// service client spans.
package telemetry

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/goliatone/go-beiform/internal/config"
)

// Provider owns the tracer provider and its shutdown.
type Provider struct {
	tp       trace.TracerProvider
	flush    func(context.Context) error
	shutdown func(context.Context) error
}

// Option customises New.
type Option func(*options)

type options struct {
	exporter sdktrace.SpanExporter
	global   bool
}

// WithExporter replaces the OTLP exporter, e.g. with an in-memory one.
func WithExporter(exp sdktrace.SpanExporter) Option {
	return func(o *options) {
		o.exporter = exp
	}
}

// WithGlobal installs the provider as the otel global.
func WithGlobal() Option {
	return func(o *options) {
		o.global = true
	}
}

// New builds a provider. Without an endpoint or exporter tracing is a no-op.
func New(ctx context.Context, cfg config.TelemetryConfig, opts ...Option) (*Provider, error) {
	o := &options{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	exp := o.exporter
	if exp == nil {
		if cfg.Endpoint == "" {
			return &Provider{
				tp:       noop.NewTracerProvider(),
				flush:    func(context.Context) error { return nil },
				shutdown: func(context.Context) error { return nil },
			}, nil
		}
		var err error
		exp, err = otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(cfg.Endpoint))
		if err != nil {
			return nil, fmt.Errorf("telemetry: otlp exporter: %w", err)
		}
	}

	name := cfg.ServiceName
	if name == "" {
		name = "beiform"
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(resource.NewSchemaless(attribute.String("service.name", name))),
	)
	if o.global {
		otel.SetTracerProvider(tp)
	}
	return &Provider{tp: tp, flush: tp.ForceFlush, shutdown: tp.Shutdown}, nil
}

// TracerProvider returns the provider for injection into clients.
func (p *Provider) TracerProvider() trace.TracerProvider { return p.tp }

// ForceFlush exports pending spans without stopping the provider.
func (p *Provider) ForceFlush(ctx context.Context) error {
	if p == nil || p.flush == nil {
		return nil
	}
	return p.flush(ctx)
}

// Shutdown flushes pending spans and stops the provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil || p.shutdown == nil {
		return nil
	}
	if err := p.shutdown(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("telemetry: shutdown: %w", err)
	}
	return nil
}
