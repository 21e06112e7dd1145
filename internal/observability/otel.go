// Package observability wires OpenTelemetry tracing and metrics for the
// scoring service: tracer/meter providers, console, OTLP and Prometheus
// exporters, and the custom metrics the engines report into.
package observability

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"cvision/internal/config"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Metrics holds all custom metrics for the scoring service
type Metrics struct {
	// Engine metrics
	ScoresComputed  metric.Int64Counter
	MatchesAnalyzed metric.Int64Counter

	// Score distributions
	ATSScoreDistribution   metric.Int64Histogram
	MatchScoreDistribution metric.Int64Histogram

	// AI collaborator metrics
	SuggestionsGenerated  metric.Int64Counter
	CoverLettersGenerated metric.Int64Counter
	FallbacksServed       metric.Int64Counter

	// Infrastructure metrics
	StoreReloads  metric.Int64Counter
	RateLimitHits metric.Int64Counter
}

// ObservabilityManager manages OpenTelemetry setup
type ObservabilityManager struct {
	config           config.ObservabilityConfig
	serviceVersion   string
	tracerProvider   *trace.TracerProvider
	meterProvider    *sdkmetric.MeterProvider
	metrics          *Metrics
	shutdownFuncs    []func(context.Context) error
	prometheusServer *http.ServeMux
}

// NewObservabilityManager creates a new observability manager. Version is the
// build version, used when the config leaves the service version blank.
func NewObservabilityManager(cfg config.ObservabilityConfig, version string) (*ObservabilityManager, error) {
	serviceVersion := cfg.ServiceVersion
	if serviceVersion == "" {
		serviceVersion = version
	}

	if !cfg.Enabled {
		return &ObservabilityManager{config: cfg, serviceVersion: serviceVersion}, nil
	}

	om := &ObservabilityManager{
		config:         cfg,
		serviceVersion: serviceVersion,
		shutdownFuncs:  make([]func(context.Context) error, 0),
	}

	if err := om.initTracing(); err != nil {
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}

	if err := om.initMetrics(); err != nil {
		return nil, fmt.Errorf("failed to initialize metrics: %w", err)
	}

	return om, nil
}

// createResource creates the OpenTelemetry resource
func (om *ObservabilityManager) createResource() (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(om.config.ServiceName),
			semconv.ServiceVersion(om.serviceVersion),
		),
	)
}

// initTracing sets up OpenTelemetry tracing
func (om *ObservabilityManager) initTracing() error {
	var exporter trace.SpanExporter
	var err error

	if om.config.ConsoleOutput {
		// Console exporter for development
		opts := []stdouttrace.Option{}
		if om.config.PrettyPrint {
			opts = append(opts, stdouttrace.WithPrettyPrint())
		}
		exporter, err = stdouttrace.New(opts...)
	} else if om.config.OTLP.Enabled {
		// OTLP exporter for production
		exporter, err = om.createOTLPExporter()
	} else {
		// No-op exporter when no production exporter is configured
		exporter = &noOpSpanExporter{}
	}

	if err != nil {
		return fmt.Errorf("failed to create trace exporter: %w", err)
	}

	res, err := om.createResource()
	if err != nil {
		return fmt.Errorf("failed to create resource: %w", err)
	}

	tp := trace.NewTracerProvider(
		trace.WithBatcher(exporter),
		trace.WithResource(res),
		trace.WithSampler(trace.TraceIDRatioBased(om.config.SampleRate)),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	om.tracerProvider = tp
	om.shutdownFuncs = append(om.shutdownFuncs, tp.Shutdown)

	return nil
}

// initMetrics sets up OpenTelemetry metrics
func (om *ObservabilityManager) initMetrics() error {
	readers, err := om.setupMetricReaders()
	if err != nil {
		return err
	}

	res, err := om.createResource()
	if err != nil {
		return fmt.Errorf("failed to create resource: %w", err)
	}

	meterProviderOptions := []sdkmetric.Option{
		sdkmetric.WithResource(res),
	}
	for _, reader := range readers {
		meterProviderOptions = append(meterProviderOptions, sdkmetric.WithReader(reader))
	}

	mp := sdkmetric.NewMeterProvider(meterProviderOptions...)

	otel.SetMeterProvider(mp)
	om.meterProvider = mp
	om.shutdownFuncs = append(om.shutdownFuncs, mp.Shutdown)

	return om.initCustomMetrics()
}

// setupMetricReaders sets up all metric readers based on configuration
func (om *ObservabilityManager) setupMetricReaders() ([]sdkmetric.Reader, error) {
	var readers []sdkmetric.Reader

	if om.config.ConsoleOutput {
		exporter, err := stdoutmetric.New()
		if err != nil {
			return nil, fmt.Errorf("failed to create console metric exporter: %w", err)
		}
		readers = append(readers, sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(15*time.Second)))
	}

	if om.config.OTLP.Enabled {
		otlpReader, err := om.createOTLPMetricsReader()
		if err != nil {
			return nil, fmt.Errorf("failed to create OTLP metrics reader: %w", err)
		}
		readers = append(readers, otlpReader)
	}

	if om.config.Prometheus.Enabled {
		prometheusReader, prometheusMux, err := SetupPrometheusExporter(om.config.Prometheus)
		if err != nil {
			return nil, fmt.Errorf("failed to create Prometheus exporter: %w", err)
		}
		if prometheusReader != nil {
			readers = append(readers, prometheusReader)
			om.prometheusServer = prometheusMux

			if err := StartPrometheusServer(prometheusMux, om.config.Prometheus.Port); err != nil {
				return nil, fmt.Errorf("failed to start Prometheus server: %w", err)
			}
		}
	}

	// If no readers configured, use manual reader as fallback
	if len(readers) == 0 {
		readers = append(readers, sdkmetric.NewManualReader())
	}

	return readers, nil
}

// initCustomMetrics creates all custom metrics
func (om *ObservabilityManager) initCustomMetrics() error {
	meter := om.meterProvider.Meter(om.config.ServiceName)
	om.metrics = &Metrics{}

	var err error

	om.metrics.ScoresComputed, err = meter.Int64Counter(
		"cvision_scores_computed_total",
		metric.WithDescription("Total number of ATS scores computed"),
	)
	if err != nil {
		return fmt.Errorf("failed to create scores computed metric: %w", err)
	}

	om.metrics.MatchesAnalyzed, err = meter.Int64Counter(
		"cvision_matches_analyzed_total",
		metric.WithDescription("Total number of job match analyses"),
	)
	if err != nil {
		return fmt.Errorf("failed to create matches analyzed metric: %w", err)
	}

	om.metrics.ATSScoreDistribution, err = meter.Int64Histogram(
		"cvision_ats_score",
		metric.WithDescription("Distribution of overall ATS scores"),
	)
	if err != nil {
		return fmt.Errorf("failed to create ATS score distribution metric: %w", err)
	}

	om.metrics.MatchScoreDistribution, err = meter.Int64Histogram(
		"cvision_match_score",
		metric.WithDescription("Distribution of job match scores"),
	)
	if err != nil {
		return fmt.Errorf("failed to create match score distribution metric: %w", err)
	}

	om.metrics.SuggestionsGenerated, err = meter.Int64Counter(
		"cvision_suggestions_generated_total",
		metric.WithDescription("Total number of suggestion requests served"),
	)
	if err != nil {
		return fmt.Errorf("failed to create suggestions generated metric: %w", err)
	}

	om.metrics.CoverLettersGenerated, err = meter.Int64Counter(
		"cvision_cover_letters_generated_total",
		metric.WithDescription("Total number of cover letter requests served"),
	)
	if err != nil {
		return fmt.Errorf("failed to create cover letters generated metric: %w", err)
	}

	om.metrics.FallbacksServed, err = meter.Int64Counter(
		"cvision_ai_fallbacks_total",
		metric.WithDescription("Total number of AI requests served by the local fallback"),
	)
	if err != nil {
		return fmt.Errorf("failed to create fallbacks served metric: %w", err)
	}

	om.metrics.StoreReloads, err = meter.Int64Counter(
		"cvision_store_reloads_total",
		metric.WithDescription("Total number of blob cache invalidations from file changes"),
	)
	if err != nil {
		return fmt.Errorf("failed to create store reloads metric: %w", err)
	}

	om.metrics.RateLimitHits, err = meter.Int64Counter(
		"cvision_rate_limit_hits_total",
		metric.WithDescription("Total number of rate limit hits"),
	)
	if err != nil {
		return fmt.Errorf("failed to create rate limit hits metric: %w", err)
	}

	return nil
}

// GetMetrics returns the metrics instance
func (om *ObservabilityManager) GetMetrics() *Metrics {
	if om.metrics == nil {
		return &Metrics{} // Return empty metrics if not initialized
	}
	return om.metrics
}

// HTTPMiddleware returns HTTP middleware with OpenTelemetry instrumentation
func (om *ObservabilityManager) HTTPMiddleware() func(http.Handler) http.Handler {
	if !om.config.Enabled {
		return func(h http.Handler) http.Handler { return h }
	}

	return otelhttp.NewMiddleware(
		om.config.ServiceName,
		otelhttp.WithTracerProvider(om.tracerProvider),
		otelhttp.WithMeterProvider(om.meterProvider),
	)
}

// Tracer returns a tracer for the service
func (om *ObservabilityManager) Tracer(name string) oteltrace.Tracer {
	if !om.config.Enabled {
		return noop.NewTracerProvider().Tracer(name)
	}
	return otel.Tracer(name)
}

// Shutdown gracefully shuts down all observability components
func (om *ObservabilityManager) Shutdown(ctx context.Context) error {
	for _, shutdown := range om.shutdownFuncs {
		if err := shutdown(ctx); err != nil {
			return err
		}
	}
	return nil
}

// RecordScore records a computed ATS score
func (m *Metrics) RecordScore(ctx context.Context, overall int, source string) {
	attrs := metric.WithAttributes(attribute.String("source", source))
	if m.ScoresComputed != nil {
		m.ScoresComputed.Add(ctx, 1, attrs)
	}
	if m.ATSScoreDistribution != nil {
		m.ATSScoreDistribution.Record(ctx, int64(overall), attrs)
	}
}

// RecordMatch records a job match analysis
func (m *Metrics) RecordMatch(ctx context.Context, score int, source string) {
	attrs := metric.WithAttributes(attribute.String("source", source))
	if m.MatchesAnalyzed != nil {
		m.MatchesAnalyzed.Add(ctx, 1, attrs)
	}
	if m.MatchScoreDistribution != nil {
		m.MatchScoreDistribution.Record(ctx, int64(score), attrs)
	}
}

// RecordSuggestion records a served suggestion request
func (m *Metrics) RecordSuggestion(ctx context.Context, fallback bool, source string) {
	attrs := metric.WithAttributes(
		attribute.String("source", source),
		attribute.Bool("fallback", fallback),
	)
	if m.SuggestionsGenerated != nil {
		m.SuggestionsGenerated.Add(ctx, 1, attrs)
	}
	if fallback && m.FallbacksServed != nil {
		m.FallbacksServed.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", "suggestions")))
	}
}

// RecordCoverLetter records a served cover letter request
func (m *Metrics) RecordCoverLetter(ctx context.Context, fallback bool, source string) {
	attrs := metric.WithAttributes(
		attribute.String("source", source),
		attribute.Bool("fallback", fallback),
	)
	if m.CoverLettersGenerated != nil {
		m.CoverLettersGenerated.Add(ctx, 1, attrs)
	}
	if fallback && m.FallbacksServed != nil {
		m.FallbacksServed.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", "cover_letter")))
	}
}

// RecordStoreReload records blob cache invalidations
func (m *Metrics) RecordStoreReload(ctx context.Context, keys []string) {
	if m.StoreReloads != nil {
		m.StoreReloads.Add(ctx, int64(len(keys)))
	}
}

// RecordRateLimitHit records a rejected request
func (m *Metrics) RecordRateLimitHit(ctx context.Context, key string) {
	if m.RateLimitHits != nil {
		m.RateLimitHits.Add(ctx, 1, metric.WithAttributes(attribute.String("limit_key", key)))
	}
}

// No-op exporter for when no span exporter is configured
type noOpSpanExporter struct{}

func (n *noOpSpanExporter) ExportSpans(ctx context.Context, spans []trace.ReadOnlySpan) error {
	return nil
}

func (n *noOpSpanExporter) Shutdown(ctx context.Context) error {
	return nil
}

// createOTLPExporter creates an OTLP HTTP trace exporter
func (om *ObservabilityManager) createOTLPExporter() (trace.SpanExporter, error) {
	otlpConfig := om.config.OTLP

	opts := []otlptracehttp.Option{
		otlptracehttp.WithEndpointURL(otlpConfig.Endpoint),
	}

	if otlpConfig.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}

	if len(otlpConfig.Headers) > 0 {
		opts = append(opts, otlptracehttp.WithHeaders(otlpConfig.Headers))
	}

	exporter, err := otlptracehttp.New(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP trace exporter: %w", err)
	}

	return exporter, nil
}

// createOTLPMetricsReader creates an OTLP HTTP metrics reader
func (om *ObservabilityManager) createOTLPMetricsReader() (sdkmetric.Reader, error) {
	otlpConfig := om.config.OTLP

	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpointURL(otlpConfig.Endpoint),
	}

	if otlpConfig.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	if len(otlpConfig.Headers) > 0 {
		opts = append(opts, otlpmetrichttp.WithHeaders(otlpConfig.Headers))
	}

	exporter, err := otlpmetrichttp.New(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP metrics exporter: %w", err)
	}

	return sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(15*time.Second)), nil
}
