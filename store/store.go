package store

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/qube-ai/nexus/schema"
	"github.com/qube-ai/nexus/source"
)

// Store is the unified, immutable-after-load knowledge base.
//
// The zero value is not usable; construct with New. All methods are safe
// for concurrent use: Load and ClearCache take the write lock, every read
// accessor takes the read lock.
type Store struct {
	adapters []source.Adapter
	logger   *slog.Logger
	tracer   trace.Tracer
	metrics  *loadMetrics

	mu     sync.RWMutex
	loaded bool
	data   schema.Dataset
	report Report
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for load diagnostics. Defaults to
// slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithTracerProvider enables tracing of Load using the given provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Store) {
		if tp != nil {
			s.tracer = tp.Tracer("github.com/qube-ai/nexus/store")
		}
	}
}

// WithMeterProvider enables load metrics using the given provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(s *Store) {
		if mp == nil {
			return
		}
		m, err := newLoadMetrics(mp.Meter("github.com/qube-ai/nexus/store"))
		if err != nil {
			s.logger.Warn("failed to create load metrics", "error", err)
			return
		}
		s.metrics = m
	}
}

// New creates a Store over the given adapters. Nothing is read until the
// first call to Load.
func New(adapters []source.Adapter, opts ...Option) *Store {
	s := &Store{
		adapters: adapters,
		logger:   slog.Default(),
		tracer:   tracenoop.NewTracerProvider().Tracer("github.com/qube-ai/nexus/store"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load runs every adapter exactly once and memoizes the merged result.
// Load is idempotent: once a snapshot exists, subsequent calls return its
// report without re-reading any source. Concurrent first callers serialize
// on the store lock, so adapters never run twice for one snapshot.
//
// A failing adapter contributes zero entities and appears in the report;
// Load itself only returns an error when the context is cancelled.
func (s *Store) Load(ctx context.Context) (Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return s.report, nil
	}

	ctx, span := s.tracer.Start(ctx, "nexus.Load")
	defer span.End()

	started := time.Now()
	report := Report{
		ID:        uuid.NewString(),
		StartedAt: started,
	}

	var merged schema.Dataset
	for _, adapter := range s.adapters {
		if err := ctx.Err(); err != nil {
			return Report{}, fmt.Errorf("load cancelled: %w", err)
		}

		status := SourceStatus{Name: adapter.Name()}
		data, err := adapter.Parse(ctx)
		if err != nil {
			status.Error = err.Error()
			s.logger.Error("source failed to parse, skipping",
				"source", adapter.Name(),
				"error", err)
		} else {
			status.Counts = data.Counts()
			merged.Merge(data)
			s.logger.Info("source loaded",
				"source", adapter.Name(),
				"risks", status.Counts.Risks,
				"actions", status.Counts.Actions,
				"controls", status.Counts.Controls,
				"evaluations", status.Counts.Evaluations)
		}
		report.Sources = append(report.Sources, status)
	}

	report.Duration = time.Since(started)
	report.Totals = merged.Counts()

	s.data = merged
	s.report = report
	s.loaded = true

	failed := len(report.Failed())
	s.logger.Info("knowledge base loaded",
		"load_id", report.ID,
		"sources", len(report.Sources),
		"failed_sources", failed,
		"risks", report.Totals.Risks,
		"actions", report.Totals.Actions,
		"controls", report.Totals.Controls,
		"evaluations", report.Totals.Evaluations,
		"duration", report.Duration)

	span.SetAttributes(
		attribute.Int("nexus.load.sources", len(report.Sources)),
		attribute.Int("nexus.load.failed_sources", failed),
		attribute.Int("nexus.load.risks", report.Totals.Risks),
	)
	if s.metrics != nil {
		s.metrics.record(ctx, report)
	}

	return report, nil
}

// ClearCache discards the memoized snapshot so the next Load re-runs all
// adapters. Intended for test isolation and administrative reloads of the
// reference data.
func (s *Store) ClearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = false
	s.data = schema.Dataset{}
	s.report = Report{}
}

// Loaded reports whether a snapshot is present.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// LastReport returns the report of the most recent load, or the zero
// Report when no load has completed.
func (s *Store) LastReport() Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.report
}

// Taxonomies returns all taxonomies in insertion order.
func (s *Store) Taxonomies() []schema.Taxonomy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Taxonomies
}

// RiskGroups returns all risk groups in insertion order.
func (s *Store) RiskGroups() []schema.RiskGroup {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.RiskGroups
}

// Risks returns all risks in insertion order.
func (s *Store) Risks() []schema.Risk {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Risks
}

// Actions returns all actions in insertion order.
func (s *Store) Actions() []schema.Action {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Actions
}

// Controls returns all controls in insertion order. Controls lacking an id
// or name were discarded at load time and never appear here.
func (s *Store) Controls() []schema.Control {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Controls
}

// Evaluations returns all evaluations in insertion order.
func (s *Store) Evaluations() []schema.Evaluation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Evaluations
}

// BenchmarkCards returns all benchmark metadata cards in insertion order.
func (s *Store) BenchmarkCards() []schema.BenchmarkCard {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.BenchmarkCards
}

// Incidents returns all incidents in insertion order.
func (s *Store) Incidents() []schema.Incident {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Incidents
}

// TaxonomyByID returns the taxonomy with the given id.
func (s *Store) TaxonomyByID(id string) (schema.Taxonomy, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.data.Taxonomies {
		if t.ID == id {
			return t, true
		}
	}
	return schema.Taxonomy{}, false
}

// RiskGroupByID returns the risk group with the given id.
func (s *Store) RiskGroupByID(id string) (schema.RiskGroup, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, g := range s.data.RiskGroups {
		if g.ID == id {
			return g, true
		}
	}
	return schema.RiskGroup{}, false
}

// RiskByID returns the risk with the given id.
func (s *Store) RiskByID(id string) (schema.Risk, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.data.Risks {
		if r.ID == id {
			return r, true
		}
	}
	return schema.Risk{}, false
}

// RiskByTag returns the first risk with the given tag.
func (s *Store) RiskByTag(tag string) (schema.Risk, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.data.Risks {
		if r.Tag == tag {
			return r, true
		}
	}
	return schema.Risk{}, false
}

// ActionByID returns the action with the given id.
func (s *Store) ActionByID(id string) (schema.Action, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.data.Actions {
		if a.ID == id {
			return a, true
		}
	}
	return schema.Action{}, false
}

// ControlByID returns the control with the given id.
func (s *Store) ControlByID(id string) (schema.Control, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.data.Controls {
		if c.ID == id {
			return c, true
		}
	}
	return schema.Control{}, false
}

// EvaluationByID returns the evaluation with the given id.
func (s *Store) EvaluationByID(id string) (schema.Evaluation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.data.Evaluations {
		if e.ID == id {
			return e, true
		}
	}
	return schema.Evaluation{}, false
}

// IncidentByID returns the incident with the given id.
func (s *Store) IncidentByID(id string) (schema.Incident, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, i := range s.data.Incidents {
		if i.ID == id {
			return i, true
		}
	}
	return schema.Incident{}, false
}

// loadMetrics holds the OpenTelemetry instruments for the load path.
type loadMetrics struct {
	duration      metric.Float64Histogram
	failedSources metric.Int64Counter
	entities      metric.Int64Counter
}

func newLoadMetrics(meter metric.Meter) (*loadMetrics, error) {
	m := &loadMetrics{}
	var err error

	m.duration, err = meter.Float64Histogram(
		"nexus.load.duration",
		metric.WithDescription("Knowledge base load duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("create load duration histogram: %w", err)
	}

	m.failedSources, err = meter.Int64Counter(
		"nexus.load.failed_sources",
		metric.WithDescription("Number of sources that failed to parse"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create failed sources counter: %w", err)
	}

	m.entities, err = meter.Int64Counter(
		"nexus.load.entities",
		metric.WithDescription("Number of entities loaded into the knowledge base"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create entities counter: %w", err)
	}

	return m, nil
}

func (m *loadMetrics) record(ctx context.Context, report Report) {
	m.duration.Record(ctx, float64(report.Duration.Milliseconds()))
	m.failedSources.Add(ctx, int64(len(report.Failed())))
	m.entities.Add(ctx, int64(report.Totals.Total()))
}
