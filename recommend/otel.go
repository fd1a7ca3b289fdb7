package recommend

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/metric"
)

// scorerMetrics holds the OpenTelemetry instruments for the recommendation
// path. Instruments are created once when WithMeterProvider is applied and
// reused for all calls.
type scorerMetrics struct {
	// duration records recommendation duration in milliseconds.
	duration metric.Float64Histogram

	// results records the size of each ranked result list.
	results metric.Int64Histogram

	// count increments per recommendation computed.
	count metric.Int64Counter
}

func newScorerMetrics(meter metric.Meter) (*scorerMetrics, error) {
	m := &scorerMetrics{}
	var err error

	m.duration, err = meter.Float64Histogram(
		"nexus.recommend.duration",
		metric.WithDescription("Recommendation duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("create recommend duration histogram: %w", err)
	}

	m.results, err = meter.Int64Histogram(
		"nexus.recommend.results",
		metric.WithDescription("Number of risks returned per recommendation"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create recommend results histogram: %w", err)
	}

	m.count, err = meter.Int64Counter(
		"nexus.recommend.count",
		metric.WithDescription("Number of recommendations computed"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create recommend counter: %w", err)
	}

	return m, nil
}

func (m *scorerMetrics) record(ctx context.Context, duration time.Duration, results int) {
	m.duration.Record(ctx, float64(duration.Milliseconds()))
	m.results.Record(ctx, int64(results))
	m.count.Add(ctx, 1)
}
