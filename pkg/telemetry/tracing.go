// Package telemetry wires filepane's spans and metrics to the outside:
// a tracer provider exporting to a JSON lines file and a loopback HTTP
// endpoint serving Prometheus metrics.
package telemetry

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const serviceName = "filepane"

// TracerProvider owns the span pipeline and its output file.
type TracerProvider struct {
	provider *sdktrace.TracerProvider
	out      io.Closer
}

// TracingOptions configures NewTracerProvider.
type TracingOptions struct {
	Version   string
	SessionID string

	// Writer receives one JSON span per line. When nil, File is
	// opened for appending.
	Writer io.Writer
	File   string

	// Sync exports each span as it ends instead of batching. Tests use it.
	Sync bool
}

// NewTracerProvider builds a provider that writes spans as JSON and
// installs it as the global provider.
func NewTracerProvider(opts TracingOptions) (*TracerProvider, error) {
	w := opts.Writer
	var closer io.Closer
	if w == nil {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, fmt.Errorf("create trace directory: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open trace file: %w", err)
		}
		w, closer = f, f
	}

	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		if closer != nil {
			closer.Close()
		}
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	version := opts.Version
	if version == "" {
		version = "dev"
	}
	res, err := resource.New(
		context.Background(),
		resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName),
			semconv.ServiceVersionKey.String(version),
			attribute.String("session_id", opts.SessionID),
		),
	)
	if err != nil {
		if closer != nil {
			closer.Close()
		}
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	processor := sdktrace.WithBatcher(exporter)
	if opts.Sync {
		processor = sdktrace.WithSyncer(exporter)
	}
	provider := sdktrace.NewTracerProvider(
		processor,
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	otel.SetTracerProvider(provider)

	return &TracerProvider{provider: provider, out: closer}, nil
}

// Tracer returns a named tracer from this provider.
func (tp *TracerProvider) Tracer(name string) trace.Tracer {
	return tp.provider.Tracer(name)
}

// Shutdown flushes pending spans and closes the output file.
func (tp *TracerProvider) Shutdown(ctx context.Context) error {
	err := tp.provider.Shutdown(ctx)
	if tp.out != nil {
		if cerr := tp.out.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// NoopTracer is used when tracing is disabled.
func NoopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer(serviceName)
}
