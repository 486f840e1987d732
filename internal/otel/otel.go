package otel

import (
	"context"
	"sync"

	compileid "github.com/quellgql/quell/internal/compileid"
	eventbus "github.com/quellgql/quell/internal/eventbus"
	events "github.com/quellgql/quell/internal/events"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
)

// Setup configures OpenTelemetry and attaches eventbus subscribers that turn
// compile and pass events into spans.
// If endpoint is empty, no telemetry is configured.
func Setup(endpoint, service string) (func(context.Context) error, error) {
	if endpoint == "" {
		return func(context.Context) error { return nil }, nil
	}
	exp, err := otlptracegrpc.New(context.Background(),
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithDialOption(grpc.WithInsecure()))
	if err != nil {
		return nil, err
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(service),
		)),
	)
	otel.SetTracerProvider(tp)

	sub := &subscriber{tracer: otel.Tracer("quell")}
	sub.register()

	return tp.Shutdown, nil
}

type spanEntry struct {
	ctx  context.Context
	span trace.Span
}

type subscriber struct {
	tracer       trace.Tracer
	compileSpans sync.Map // cid -> *spanEntry
	passSpans    sync.Map // cid+pass name -> trace.Span
}

func (s *subscriber) register() {
	eventbus.Subscribe(func(ctx context.Context, e events.CompileStart) {
		cid, _ := compileid.FromContext(ctx)
		spanCtx, span := s.tracer.Start(ctx, "compile")
		span.SetAttributes(attribute.Int("compile.documents", e.Documents))
		s.compileSpans.Store(cid, &spanEntry{ctx: spanCtx, span: span})
	})
	eventbus.Subscribe(func(ctx context.Context, e events.CompileFinish) {
		cid, _ := compileid.FromContext(ctx)
		if v, ok := s.compileSpans.LoadAndDelete(cid); ok {
			entry := v.(*spanEntry)
			entry.span.SetAttributes(
				attribute.Int("compile.diagnostics", e.Diagnostics),
				attribute.Bool("compile.fatal", e.Fatal),
			)
			entry.span.End()
		}
	})
	eventbus.Subscribe(func(ctx context.Context, e events.PassStart) {
		cid, _ := compileid.FromContext(ctx)
		parent := ctx
		if v, ok := s.compileSpans.Load(cid); ok {
			parent = v.(*spanEntry).ctx
		}
		_, span := s.tracer.Start(parent, "compile.pass")
		span.SetAttributes(attribute.String("pass.name", e.Name))
		s.passSpans.Store(passKey(cid, e.Name), span)
	})
	eventbus.Subscribe(func(ctx context.Context, e events.PassFinish) {
		cid, _ := compileid.FromContext(ctx)
		if v, ok := s.passSpans.LoadAndDelete(passKey(cid, e.Name)); ok {
			span := v.(trace.Span)
			span.SetAttributes(attribute.Int("pass.diagnostics", e.Diagnostics))
			span.End()
		}
	})
}

type passSpanKey struct {
	cid  int64
	name string
}

func passKey(cid int64, name string) passSpanKey {
	return passSpanKey{cid: cid, name: name}
}
