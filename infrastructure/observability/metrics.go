package observability

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"raffler/config"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

// MetricsProvider manages OpenTelemetry metrics for the raffle service
type MetricsProvider struct {
	config        *config.Config
	meterProvider *sdkmetric.MeterProvider
	meter         metric.Meter
	initialized   bool
	mu            sync.RWMutex

	// Metric instruments
	httpRequestsCounter          metric.Int64Counter
	httpRequestDurationHist      metric.Float64Histogram
	numbersRegisteredCounter     metric.Int64Counter
	chatMessagesPostedCounter    metric.Int64Counter
	membershipChangesCounter     metric.Int64Counter
	raffleStateChangesCounter    metric.Int64Counter
	rafflesCreatedCounter        metric.Int64Counter
	natsMessagesPublishedCounter metric.Int64Counter
}

// NewMetricsProvider creates a new metrics provider
func NewMetricsProvider(cfg *config.Config) *MetricsProvider {
	return &MetricsProvider{
		config: cfg,
	}
}

// Initialize sets up the OpenTelemetry metrics provider
func (mp *MetricsProvider) Initialize(ctx context.Context) error {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	if mp.initialized {
		log.Debug("Metrics provider already initialized")
		return nil
	}

	if !mp.config.OTelEnabled {
		log.Info("OpenTelemetry metrics disabled")
		mp.initialized = true
		return nil
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(mp.config.OTelServiceName),
			attribute.String("environment", mp.config.Environment),
		),
	)
	if err != nil {
		return fmt.Errorf("failed to create resource: %w", err)
	}

	var exporter sdkmetric.Exporter
	switch mp.config.OTelExporterType {
	case "console":
		exporter, err = stdoutmetric.New()
		if err != nil {
			return fmt.Errorf("failed to create console exporter: %w", err)
		}
		log.Info("Using console metric exporter")

	case "otlp":
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		exporter, err = otlpmetricgrpc.New(ctx,
			otlpmetricgrpc.WithEndpoint(mp.config.OTelOTLPEndpoint),
			otlpmetricgrpc.WithInsecure(),
		)
		if err != nil {
			return fmt.Errorf("failed to create OTLP exporter: %w", err)
		}
		log.WithField("endpoint", mp.config.OTelOTLPEndpoint).Info("Using OTLP metric exporter")

	case "none":
		log.Info("Metrics export disabled (exporter_type='none')")
		mp.initialized = true
		return nil

	default:
		return fmt.Errorf("unknown exporter type: %s", mp.config.OTelExporterType)
	}

	mp.meterProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(
			sdkmetric.NewPeriodicReader(
				exporter,
				sdkmetric.WithInterval(time.Duration(mp.config.OTelExportIntervalMillis)*time.Millisecond),
			),
		),
	)

	otel.SetMeterProvider(mp.meterProvider)
	mp.meter = mp.meterProvider.Meter("raffler")

	if err := mp.createInstruments(); err != nil {
		return fmt.Errorf("failed to create instruments: %w", err)
	}

	mp.initialized = true
	log.Info("Metrics provider initialized successfully")
	return nil
}

// createInstruments creates all metric instruments
func (mp *MetricsProvider) createInstruments() error {
	var err error

	mp.httpRequestsCounter, err = mp.meter.Int64Counter(
		HTTPRequestsTotal,
		metric.WithDescription("Total number of HTTP requests served"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("failed to create HTTP requests counter: %w", err)
	}

	mp.httpRequestDurationHist, err = mp.meter.Float64Histogram(
		HTTPRequestDuration,
		metric.WithDescription("Duration of HTTP requests in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0),
	)
	if err != nil {
		return fmt.Errorf("failed to create HTTP request duration histogram: %w", err)
	}

	mp.numbersRegisteredCounter, err = mp.meter.Int64Counter(
		NumbersRegisteredTotal,
		metric.WithDescription("Total number of raffle numbers registered"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("failed to create numbers registered counter: %w", err)
	}

	mp.chatMessagesPostedCounter, err = mp.meter.Int64Counter(
		ChatMessagesPostedTotal,
		metric.WithDescription("Total number of chat messages posted"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("failed to create chat messages counter: %w", err)
	}

	mp.membershipChangesCounter, err = mp.meter.Int64Counter(
		MembershipChangesTotal,
		metric.WithDescription("Total number of membership assignments and removals"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("failed to create membership changes counter: %w", err)
	}

	mp.raffleStateChangesCounter, err = mp.meter.Int64Counter(
		RaffleStateChangesTotal,
		metric.WithDescription("Total number of raffle state transitions"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("failed to create raffle state changes counter: %w", err)
	}

	mp.rafflesCreatedCounter, err = mp.meter.Int64Counter(
		RafflesCreatedTotal,
		metric.WithDescription("Total number of raffles created"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("failed to create raffles created counter: %w", err)
	}

	mp.natsMessagesPublishedCounter, err = mp.meter.Int64Counter(
		NATSMessagesPublishedTotal,
		metric.WithDescription("Total number of NATS messages published"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("failed to create NATS messages published counter: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the metrics provider
func (mp *MetricsProvider) Shutdown(ctx context.Context) error {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	if mp.meterProvider != nil {
		return mp.meterProvider.Shutdown(ctx)
	}
	return nil
}

// RecordHTTPRequest records a served HTTP request with its duration
func (mp *MetricsProvider) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	if !mp.isEnabled() {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String(LabelMethod, method),
		attribute.String(LabelRoute, route),
		attribute.String(LabelStatus, strconv.Itoa(status)),
	)

	mp.httpRequestsCounter.Add(context.Background(), 1, attrs)
	mp.httpRequestDurationHist.Record(context.Background(), duration.Seconds(), attrs)
}

// RecordNumberRegistered records a number sold in a raffle
func (mp *MetricsProvider) RecordNumberRegistered() {
	if !mp.isEnabled() {
		return
	}

	mp.numbersRegisteredCounter.Add(context.Background(), 1)
}

// RecordChatMessagePosted records a chat message being posted
func (mp *MetricsProvider) RecordChatMessagePosted() {
	if !mp.isEnabled() {
		return
	}

	mp.chatMessagesPostedCounter.Add(context.Background(), 1)
}

// RecordMembershipChange records a membership assignment or removal
func (mp *MetricsProvider) RecordMembershipChange(changeType string) {
	if !mp.isEnabled() {
		return
	}

	mp.membershipChangesCounter.Add(context.Background(), 1,
		metric.WithAttributes(
			attribute.String(LabelType, changeType),
		),
	)
}

// RecordRaffleStateChange records a raffle moving to a new state
func (mp *MetricsProvider) RecordRaffleStateChange(newState string) {
	if !mp.isEnabled() {
		return
	}

	mp.raffleStateChangesCounter.Add(context.Background(), 1,
		metric.WithAttributes(
			attribute.String(LabelState, newState),
		),
	)
}

// RecordRaffleCreated records a new raffle
func (mp *MetricsProvider) RecordRaffleCreated() {
	if !mp.isEnabled() {
		return
	}

	mp.rafflesCreatedCounter.Add(context.Background(), 1)
}

// RecordEventPublished records a domain event published to NATS
func (mp *MetricsProvider) RecordEventPublished(eventType string) {
	if !mp.isEnabled() {
		return
	}

	mp.natsMessagesPublishedCounter.Add(context.Background(), 1,
		metric.WithAttributes(
			attribute.String(LabelEventType, eventType),
		),
	)
}

// isEnabled reports whether instruments exist to record into
func (mp *MetricsProvider) isEnabled() bool {
	if mp == nil {
		return false
	}
	mp.mu.RLock()
	defer mp.mu.RUnlock()
	return mp.initialized && mp.config.OTelEnabled && mp.meter != nil
}

// Global metrics provider instance
var (
	globalMetrics *MetricsProvider
	metricsOnce   sync.Once
)

// InitializeGlobalMetrics initializes the global metrics provider
func InitializeGlobalMetrics(ctx context.Context, cfg *config.Config) error {
	var err error
	metricsOnce.Do(func() {
		globalMetrics = NewMetricsProvider(cfg)
		err = globalMetrics.Initialize(ctx)
	})
	return err
}

// GetMetrics returns the global metrics provider. It may be nil, and every
// Record method is safe to call on a nil provider.
func GetMetrics() *MetricsProvider {
	return globalMetrics
}

// ShutdownGlobalMetrics shuts down the global metrics provider
func ShutdownGlobalMetrics(ctx context.Context) error {
	if globalMetrics != nil {
		return globalMetrics.Shutdown(ctx)
	}
	return nil
}
