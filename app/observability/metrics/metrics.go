package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
// Make fields public so they can be accessed from other packages.
type AppMetrics struct {
	RecommendationsTotal          metric.Int64Counter
	RecommendationDurationSeconds metric.Float64Histogram
	ChatRequestsTotal             metric.Int64Counter
	ChatFailuresTotal             metric.Int64Counter
	AICallDurationSeconds         metric.Float64Histogram
}

var (
	// Global instance of AppMetrics (initialized once)
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics initializes the global metrics instruments ONLY ONCE.
// It gets the Meter from the globally configured MeterProvider.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("ExplorAI")
		var err error
		m := &AppMetrics{}

		m.RecommendationsTotal, err = meter.Int64Counter(
			"recommendations_total",
			metric.WithDescription("Total number of recommendation scoring passes"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create recommendations_total: %v", err)
		}

		m.RecommendationDurationSeconds, err = meter.Float64Histogram(
			"recommendation_duration_seconds",
			metric.WithDescription("Duration of recommendation scoring passes in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create recommendation_duration_seconds: %v", err)
		}

		m.ChatRequestsTotal, err = meter.Int64Counter(
			"chat_requests_total",
			metric.WithDescription("Total number of chat messages processed"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create chat_requests_total: %v", err)
		}

		m.ChatFailuresTotal, err = meter.Int64Counter(
			"chat_failures_total",
			metric.WithDescription("Total number of chat requests resolved by a fallback reply"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create chat_failures_total: %v", err)
		}

		m.AICallDurationSeconds, err = meter.Float64Histogram(
			"ai_call_duration_seconds",
			metric.WithDescription("Duration of generative AI calls in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create ai_call_duration_seconds: %v", err)
		}

		appMetrics = m
	})
}

// Get returns the initialized metrics instance, or nil before InitAppMetrics.
func Get() *AppMetrics {
	return appMetrics
}
