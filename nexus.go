package nexus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/qube-ai/nexus/enrich"
	"github.com/qube-ai/nexus/query"
	"github.com/qube-ai/nexus/recommend"
	"github.com/qube-ai/nexus/schema"
	"github.com/qube-ai/nexus/source"
	"github.com/qube-ai/nexus/stats"
	"github.com/qube-ai/nexus/store"
	"github.com/qube-ai/nexus/xref"
)

// Engine is the facade over the risk knowledge base: loading, filtered
// listings, enrichment, statistics and recommendations.
//
// Construct with New. All methods are safe for concurrent use; methods
// that may trigger the first load accept a context for that load's I/O.
type Engine struct {
	store      *store.Store
	queries    *query.Engine
	resolver   *xref.Resolver
	composer   *enrich.Composer
	aggregator *stats.Aggregator
	scorer     *recommend.Scorer
	logger     *slog.Logger
}

// New creates an Engine. Without options it reads the shipped source
// catalog from the default data directory; nothing is read until the
// first Load or read access.
func New(opts ...Option) *Engine {
	cfg := &engineConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	if cfg.adapters == nil {
		cfg.adapters = source.DefaultAdapters(cfg.dataDir)
	}

	storeOpts := []store.Option{store.WithLogger(cfg.logger)}
	if cfg.tracer != nil {
		storeOpts = append(storeOpts, store.WithTracerProvider(cfg.tracer))
	}
	if cfg.meter != nil {
		storeOpts = append(storeOpts, store.WithMeterProvider(cfg.meter))
	}
	st := store.New(cfg.adapters, storeOpts...)

	resolver := xref.NewResolver(st)
	composer := enrich.NewComposer(st, resolver)

	scorerOpts := []recommend.ScorerOption{recommend.WithLogger(cfg.logger)}
	if cfg.weights != nil {
		scorerOpts = append(scorerOpts, recommend.WithWeights(*cfg.weights))
	}
	if cfg.tracer != nil {
		scorerOpts = append(scorerOpts, recommend.WithTracerProvider(cfg.tracer))
	}
	if cfg.meter != nil {
		scorerOpts = append(scorerOpts, recommend.WithMeterProvider(cfg.meter))
	}

	return &Engine{
		store:      st,
		queries:    query.NewEngine(st),
		resolver:   resolver,
		composer:   composer,
		aggregator: stats.NewAggregator(st),
		scorer:     recommend.NewScorer(st, resolver, composer, scorerOpts...),
		logger:     cfg.logger,
	}
}

// Load builds the knowledge base by running every source adapter, and
// memoizes the result. Idempotent: a second call without ClearCache
// returns the existing report without re-reading any source. A failing
// source is reported and skipped, never fatal.
func (e *Engine) Load(ctx context.Context) (store.Report, error) {
	return e.store.Load(ctx)
}

// ClearCache discards the loaded knowledge base so the next access
// re-runs all source adapters. Administrative operation for reloads and
// test isolation.
func (e *Engine) ClearCache() {
	e.store.ClearCache()
}

// LoadReport returns the report of the most recent load.
func (e *Engine) LoadReport() store.Report {
	return e.store.LastReport()
}

// ensureLoaded triggers the initial load on first read access.
func (e *Engine) ensureLoaded(ctx context.Context) error {
	if e.store.Loaded() {
		return nil
	}
	if _, err := e.store.Load(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrLoadCancelled, err)
	}
	return nil
}

// ListRisks returns the risks matching the filter, in insertion order.
// A malformed filter expression returns a validation error.
func (e *Engine) ListRisks(ctx context.Context, filter query.RiskFilter) ([]schema.Risk, error) {
	if err := e.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	risks, err := e.queries.Risks(filter)
	if err != nil {
		return nil, newValidationError("Engine.ListRisks", errors.Join(ErrInvalidFilter, err))
	}
	return risks, nil
}

// ListActions returns the actions matching the filter.
func (e *Engine) ListActions(ctx context.Context, filter query.ActionFilter) ([]schema.Action, error) {
	if err := e.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return e.queries.Actions(filter), nil
}

// ListControls returns the controls matching the filter. Controls without
// an id or name were discarded at load time and never appear.
func (e *Engine) ListControls(ctx context.Context, filter query.ControlFilter) ([]schema.Control, error) {
	if err := e.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return e.queries.Controls(filter), nil
}

// ListEvaluations returns the evaluations matching the filter.
func (e *Engine) ListEvaluations(ctx context.Context, filter query.EvaluationFilter) ([]schema.Evaluation, error) {
	if err := e.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return e.queries.Evaluations(filter), nil
}

// Taxonomies returns all taxonomies.
func (e *Engine) Taxonomies(ctx context.Context) ([]schema.Taxonomy, error) {
	if err := e.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return e.store.Taxonomies(), nil
}

// RiskGroups returns all risk groups.
func (e *Engine) RiskGroups(ctx context.Context) ([]schema.RiskGroup, error) {
	if err := e.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return e.store.RiskGroups(), nil
}

// BenchmarkCards returns all benchmark metadata cards.
func (e *Engine) BenchmarkCards(ctx context.Context) ([]schema.BenchmarkCard, error) {
	if err := e.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return e.store.BenchmarkCards(), nil
}

// Incidents returns all incidents.
func (e *Engine) Incidents(ctx context.Context) ([]schema.Incident, error) {
	if err := e.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return e.store.Incidents(), nil
}

// RiskByID returns the risk with the given id.
func (e *Engine) RiskByID(ctx context.Context, id string) (schema.Risk, error) {
	if err := e.ensureLoaded(ctx); err != nil {
		return schema.Risk{}, err
	}
	risk, ok := e.store.RiskByID(id)
	if !ok {
		return schema.Risk{}, newNotFoundError("Engine.RiskByID", fmt.Errorf("%w: %s", ErrRiskNotFound, id))
	}
	return risk, nil
}

// EnrichedRisk denormalizes one risk: taxonomy and group display names
// plus the resolved related actions, controls and evaluations.
func (e *Engine) EnrichedRisk(ctx context.Context, risk schema.Risk) (enrich.EnrichedRisk, error) {
	if err := e.ensureLoaded(ctx); err != nil {
		return enrich.EnrichedRisk{}, err
	}
	return e.composer.EnrichRisk(risk), nil
}

// RelatedActions returns the actions that reference the given risk under
// the permissive matching rule. An empty result is a valid outcome.
func (e *Engine) RelatedActions(ctx context.Context, risk schema.Risk) ([]schema.Action, error) {
	if err := e.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return e.resolver.RelatedActions(risk), nil
}

// RelatedControls returns the controls that reference the given risk.
func (e *Engine) RelatedControls(ctx context.Context, risk schema.Risk) ([]schema.Control, error) {
	if err := e.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return e.resolver.RelatedControls(risk), nil
}

// RelatedEvaluations returns the evaluations that assess the given risk.
func (e *Engine) RelatedEvaluations(ctx context.Context, risk schema.Risk) ([]schema.Evaluation, error) {
	if err := e.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return e.resolver.RelatedEvaluations(risk), nil
}

// Statistics returns entity totals and per-taxonomy, per-group breakdowns.
func (e *Engine) Statistics(ctx context.Context) (stats.Statistics, error) {
	if err := e.ensureLoaded(ctx); err != nil {
		return stats.Statistics{}, err
	}
	return e.aggregator.Statistics(), nil
}

// Recommend scores every risk against the profile and returns the ranked,
// capped recommendation list with resolved mitigations, controls and
// evaluations attached.
func (e *Engine) Recommend(ctx context.Context, profile recommend.Profile) ([]recommend.Recommendation, error) {
	if err := e.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return e.scorer.Recommend(ctx, profile), nil
}
