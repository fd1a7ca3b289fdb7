package recommend

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/qube-ai/nexus/enrich"
	"github.com/qube-ai/nexus/schema"
	"github.com/qube-ai/nexus/store"
	"github.com/qube-ai/nexus/xref"
)

// Recommendation pairs an enriched risk with its relevance score and the
// resolved entities a caller acts on.
type Recommendation struct {
	// Risk is the enriched risk record.
	Risk enrich.EnrichedRisk `json:"risk"`

	// Score is the additive relevance score.
	Score int `json:"relevanceScore"`

	// Mitigations are the actions that reference this risk.
	Mitigations []schema.Action `json:"mitigations"`

	// Controls are the detection controls that reference this risk.
	Controls []schema.Control `json:"controls"`

	// Evaluations are the benchmarks that assess this risk.
	Evaluations []schema.Evaluation `json:"evaluations"`
}

// Scorer ranks knowledge base risks against a use-case profile.
type Scorer struct {
	store    *store.Store
	resolver *xref.Resolver
	composer *enrich.Composer
	weights  Weights
	logger   *slog.Logger
	tracer   trace.Tracer
	metrics  *scorerMetrics
}

// ScorerOption configures a Scorer.
type ScorerOption func(*Scorer)

// WithWeights overrides the default scoring configuration.
func WithWeights(w Weights) ScorerOption {
	return func(s *Scorer) {
		s.weights = w
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) ScorerOption {
	return func(s *Scorer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithTracerProvider enables tracing of Recommend.
func WithTracerProvider(tp trace.TracerProvider) ScorerOption {
	return func(s *Scorer) {
		if tp != nil {
			s.tracer = tp.Tracer("github.com/qube-ai/nexus/recommend")
		}
	}
}

// WithMeterProvider enables recommendation metrics.
func WithMeterProvider(mp metric.MeterProvider) ScorerOption {
	return func(s *Scorer) {
		if mp == nil {
			return
		}
		m, err := newScorerMetrics(mp.Meter("github.com/qube-ai/nexus/recommend"))
		if err != nil {
			s.logger.Warn("failed to create recommendation metrics", "error", err)
			return
		}
		s.metrics = m
	}
}

// NewScorer returns a Scorer over the given store, resolver and composer.
func NewScorer(st *store.Store, r *xref.Resolver, c *enrich.Composer, opts ...ScorerOption) *Scorer {
	s := &Scorer{
		store:    st,
		resolver: r,
		composer: c,
		weights:  DefaultWeights(),
		logger:   slog.Default(),
		tracer:   tracenoop.NewTracerProvider().Tracer("github.com/qube-ai/nexus/recommend"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Weights returns the scorer's active configuration.
func (s *Scorer) Weights() Weights {
	return s.weights
}

// Score computes the relevance score of one risk against a profile. It is
// a pure function of the risk text, the profile and the configured
// weights, so callers can reproduce any ranking decision.
func (s *Scorer) Score(risk schema.Risk, profile Profile) int {
	text := strings.ToLower(risk.Name + " " + risk.Description)
	w := s.weights
	score := 0

	if profile.GenAI && containsAny(text, genAIVocabulary) {
		score += w.GenAI
	}
	if profile.Agentic && containsAny(text, agenticVocabulary) {
		score += w.Agentic
	}
	if profile.RAG && containsAny(text, ragVocabulary) {
		score += w.RAG
	}
	if profile.Plugins && containsAny(text, pluginVocabulary) {
		score += w.Plugins
	}
	if profile.PublicFacing && containsAny(text, publicFacingVocabulary) {
		score += w.PublicFacing
	}
	if profile.HandlesSensitiveData() && containsAny(text, privacyVocabulary) {
		score += w.SensitiveData
	}

	// An empty keyword is a substring of any text and scores like any
	// other match; callers own the hygiene of their keyword lists.
	for _, keyword := range profile.Keywords {
		if strings.Contains(text, strings.ToLower(keyword)) {
			score += w.Keyword
		}
	}

	score += w.TaxonomyBonus[risk.Taxonomy]

	return score
}

// Recommend scores every risk in the store against the profile and returns
// the surviving risks ranked by descending score, capped at the configured
// maximum. Ties keep store insertion order, so rankings are deterministic
// across calls and reloads.
func (s *Scorer) Recommend(ctx context.Context, profile Profile) []Recommendation {
	ctx, span := s.tracer.Start(ctx, "nexus.Recommend")
	defer span.End()

	started := time.Now()

	var out []Recommendation
	for _, risk := range s.store.Risks() {
		score := s.Score(risk, profile)
		if score <= s.weights.MinScore {
			continue
		}
		out = append(out, Recommendation{Risk: s.composer.EnrichRisk(risk), Score: score})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if len(out) > s.weights.MaxResults {
		out = out[:s.weights.MaxResults]
	}

	// The enriched risk already carries the resolved entities; the
	// top-level fields repeat them so callers consuming only the
	// recommendation do not reach into the enrichment.
	for i := range out {
		out[i].Mitigations = out[i].Risk.RelatedActions
		out[i].Controls = out[i].Risk.RelatedControls
		out[i].Evaluations = out[i].Risk.RelatedEvaluations
	}

	duration := time.Since(started)
	s.logger.Debug("recommendation computed",
		"results", len(out),
		"gen_ai", profile.GenAI,
		"agentic", profile.Agentic,
		"rag", profile.RAG,
		"plugins", profile.Plugins,
		"public_facing", profile.PublicFacing,
		"data_types", len(profile.DataTypes),
		"keywords", len(profile.Keywords),
		"duration", duration)

	span.SetAttributes(
		attribute.Int("nexus.recommend.results", len(out)),
	)
	if s.metrics != nil {
		s.metrics.record(ctx, duration, len(out))
	}

	return out
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
