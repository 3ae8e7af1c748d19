package otel

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	serviceName    = "compass"
	serviceVersion = "1.0.0"
)

// Exporter pushes journaling activity metrics to an OTEL Collector.
type Exporter struct {
	provider      *sdkmetric.MeterProvider
	meter         metric.Meter
	logsSaved     metric.Int64Counter
	hoursLogged   metric.Float64Counter
	configsSaved  metric.Int64Counter
	eventsCreated metric.Int64Counter
}

// NewExporter creates a new OTEL metrics exporter.
func NewExporter(ctx context.Context, cfg Config) (*Exporter, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return nil, fmt.Errorf("OTEL exporter is disabled or endpoint not configured")
	}

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	logsSaved, err := meter.Int64Counter(
		"compass_logs_saved_total",
		metric.WithDescription("Total daily log documents written"),
		metric.WithUnit("{document}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating logs counter: %w", err)
	}

	hoursLogged, err := meter.Float64Counter(
		"compass_hours_logged_total",
		metric.WithDescription("Total hours logged across categories"),
		metric.WithUnit("h"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating hours counter: %w", err)
	}

	configsSaved, err := meter.Int64Counter(
		"compass_configs_saved_total",
		metric.WithDescription("Total user config documents written"),
		metric.WithUnit("{document}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating configs counter: %w", err)
	}

	eventsCreated, err := meter.Int64Counter(
		"compass_events_created_total",
		metric.WithDescription("Total calendar events created"),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating events counter: %w", err)
	}

	return &Exporter{
		provider:      provider,
		meter:         meter,
		logsSaved:     logsSaved,
		hoursLogged:   hoursLogged,
		configsSaved:  configsSaved,
		eventsCreated: eventsCreated,
	}, nil
}

func (e *Exporter) LogSaved(ctx context.Context, userID string, hours float64) {
	opt := metric.WithAttributes(attribute.String("user_id", userID))
	e.logsSaved.Add(ctx, 1, opt)
	if hours > 0 {
		e.hoursLogged.Add(ctx, hours, opt)
	}
}

func (e *Exporter) ConfigSaved(ctx context.Context, userID string) {
	e.configsSaved.Add(ctx, 1, metric.WithAttributes(attribute.String("user_id", userID)))
}

func (e *Exporter) EventsCreated(ctx context.Context, userID string, count int64) {
	e.eventsCreated.Add(ctx, count, metric.WithAttributes(attribute.String("user_id", userID)))
}

// Close shuts down the exporter and flushes any pending metrics.
func (e *Exporter) Close(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}
