package infra

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.uber.org/fx"

	"github.com/ganeshsankaran/curve-surfer/internal/app/appconfig"
	"github.com/ganeshsankaran/curve-surfer/internal/constant"
	"github.com/ganeshsankaran/curve-surfer/internal/pkg/bininfo"
)

var ErrUnknownTracingExporter = errors.New("unknown tracing exporter")

func newSpanExporter(ctx context.Context, name string) (tracesdk.SpanExporter, error) {
	switch name {
	case "otlp":
		// endpoint and headers come from the OTEL_EXPORTER_OTLP_* environment variables
		return otlptracegrpc.New(ctx)
	case "jaeger":
		return jaeger.New(jaeger.WithCollectorEndpoint())
	case "stdout":
		return stdouttrace.New(stdouttrace.WithWriter(os.Stdout), stdouttrace.WithPrettyPrint())
	default:
		return nil, errors.Wrap(ErrUnknownTracingExporter, name)
	}
}

// TracerProvider registers the global OpenTelemetry tracer provider. It returns nil when
// tracing is disabled.
func TracerProvider(lc fx.Lifecycle, conf *appconfig.Config) (*tracesdk.TracerProvider, error) {
	if !conf.TracingEnabled {
		return nil, nil
	}

	opts := []tracesdk.TracerProviderOption{
		tracesdk.WithSampler(tracesdk.ParentBased(tracesdk.TraceIDRatioBased(conf.TracingSampleRate))),
		tracesdk.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(constant.ServiceName),
			semconv.ServiceVersionKey.String(bininfo.Version),
			attribute.Bool("dev_mode", conf.DevMode),
		)),
	}
	for _, name := range conf.TracingExporters {
		exporter, err := newSpanExporter(context.Background(), name)
		if err != nil {
			return nil, err
		}
		log.Info().Str("exporter", name).Msg("infra: tracing: exporter enabled")
		opts = append(opts, tracesdk.WithBatcher(exporter))
	}

	tp := tracesdk.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return tp.Shutdown(ctx)
		},
	})

	return tp, nil
}
