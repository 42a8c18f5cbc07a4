package tracing

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/viant/licensor"

// Span attribute keys
const (
	KeyRunID      = "licensor.run.id"
	KeyPackage    = "licensor.package"
	KeyPackages   = "licensor.packages"
	KeyRules      = "licensor.rules"
	KeyViolations = "licensor.violations"
)

var setup struct {
	once sync.Once
	err  error
}

// Init exports spans with the stdout exporter to outputFile, or os.Stdout when empty.
// Only the first successful call installs a provider.
func Init(serviceName, serviceVersion, outputFile string) error {
	writer, err := openOutput(outputFile)
	if err != nil {
		return err
	}
	exporter, err := stdouttrace.New(stdouttrace.WithWriter(writer))
	if err != nil {
		return fmt.Errorf("failed to create stdout exporter: %w", err)
	}
	return InitWithExporter(serviceName, serviceVersion, exporter)
}

// InitWithExporter installs a global tracer provider exporting to exporter.
func InitWithExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) error {
	if exporter == nil {
		return nil
	}
	setup.once.Do(func() {
		setup.err = register(serviceName, serviceVersion, exporter)
	})
	return setup.err
}

func openOutput(outputFile string) (io.Writer, error) {
	if outputFile == "" {
		return os.Stdout, nil
	}
	f, err := os.Create(outputFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace output %s: %w", outputFile, err)
	}
	return f, nil
}

func register(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) error {
	res, err := resource.New(context.Background(), resource.WithAttributes(
		attribute.String("service.name", serviceName),
		attribute.String("service.version", serviceVersion),
	))
	if err != nil {
		return fmt.Errorf("failed to create trace resource: %w", err)
	}
	otel.SetTracerProvider(sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
		sdktrace.WithResource(res),
	))
	return nil
}

// Span is an evaluation span, a nil *Span is a valid no-op value.
type Span struct {
	span trace.Span
}

// SetString sets a string attribute
func (s *Span) SetString(key, value string) *Span {
	if s != nil {
		s.span.SetAttributes(attribute.String(key, value))
	}
	return s
}

// SetInt sets an integer attribute
func (s *Span) SetInt(key string, value int) *Span {
	if s != nil {
		s.span.SetAttributes(attribute.Int(key, value))
	}
	return s
}

// StartSpan starts an internal span using the global tracer provider.
func StartSpan(ctx context.Context, name string) (context.Context, *Span) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, name, trace.WithSpanKind(trace.SpanKindInternal))
	return ctx, &Span{span: span}
}

// EndSpan records err, or an OK status when nil, and ends the span.
func EndSpan(s *Span, err error) {
	if s == nil {
		return
	}
	if err != nil {
		s.span.RecordError(err)
		s.span.SetStatus(codes.Error, err.Error())
	} else {
		s.span.SetStatus(codes.Ok, "")
	}
	s.span.End()
}
