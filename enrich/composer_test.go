package enrich

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qube-ai/nexus/schema"
	"github.com/qube-ai/nexus/source"
	"github.com/qube-ai/nexus/store"
	"github.com/qube-ai/nexus/xref"
)

type fixedAdapter struct {
	data schema.Dataset
}

func (a fixedAdapter) Name() string { return "fixture" }

func (a fixedAdapter) Parse(ctx context.Context) (schema.Dataset, error) {
	return a.data, nil
}

func testComposer(t *testing.T) *Composer {
	t.Helper()
	data := schema.Dataset{
		Taxonomies: []schema.Taxonomy{
			{ID: "owasp-llm-2.0", Name: "OWASP Top 10 for LLM Applications"},
		},
		RiskGroups: []schema.RiskGroup{
			{ID: "injection-risks", Name: "Injection risks", Taxonomy: "owasp-llm-2.0"},
		},
		Risks: []schema.Risk{
			{ID: "llm01", Name: "Prompt Injection", Tag: "prompt-injection", Taxonomy: "owasp-llm-2.0", Group: "injection-risks"},
			{ID: "orphan", Name: "Unmapped risk", Tag: "unmapped", Taxonomy: "some-new-taxonomy", Group: "missing-group"},
		},
		Actions: []schema.Action{
			{ID: "act-filter", Name: "Input filtering", RelatedRisks: []string{"prompt-injection"}},
			{ID: "act-other", Name: "Unrelated action", RelatedRisks: []string{"hallucination"}},
		},
		Controls: []schema.Control{
			{ID: "ctl-guard", Name: "Prompt guard", DetectsRisks: []string{"prompt-injection"}},
		},
		Evaluations: []schema.Evaluation{
			{ID: "injectbench", Name: "InjectBench", AssessesRisks: []string{"llm01"}},
		},
	}
	s := store.New([]source.Adapter{fixedAdapter{data: data}})
	_, err := s.Load(context.Background())
	require.NoError(t, err)
	return NewComposer(s, xref.NewResolver(s))
}

func TestEnrichRisk(t *testing.T) {
	c := testComposer(t)

	risk, ok := c.store.RiskByID("llm01")
	require.True(t, ok)

	enriched := c.EnrichRisk(risk)
	assert.Equal(t, SourceOWASPLLM, enriched.Source)
	assert.Equal(t, "OWASP Top 10 for LLM Applications", enriched.TaxonomyName)
	assert.Equal(t, "Injection risks", enriched.GroupName)

	require.Len(t, enriched.RelatedActions, 1)
	assert.Equal(t, "act-filter", enriched.RelatedActions[0].ID)
	require.Len(t, enriched.RelatedControls, 1)
	assert.Equal(t, "ctl-guard", enriched.RelatedControls[0].ID)
	require.Len(t, enriched.RelatedEvaluations, 1)
	assert.Equal(t, "injectbench", enriched.RelatedEvaluations[0].ID)
}

func TestEnrichRiskMissingLookups(t *testing.T) {
	c := testComposer(t)

	risk, ok := c.store.RiskByID("orphan")
	require.True(t, ok)

	enriched := c.EnrichRisk(risk)
	assert.Equal(t, DefaultSource, enriched.Source)
	assert.Empty(t, enriched.TaxonomyName)
	assert.Empty(t, enriched.GroupName)
	assert.Empty(t, enriched.RelatedActions)
	assert.Empty(t, enriched.RelatedControls)
	assert.Empty(t, enriched.RelatedEvaluations)
}

func TestSourceForTaxonomy(t *testing.T) {
	tests := []struct {
		taxonomy string
		want     Source
	}{
		{"ibm-risk-atlas", SourceIBMRiskAtlas},
		{"ai-risk-taxonomy", SourceAIR2024},
		{"mit-ai-risk-repository", SourceMITAIRisk},
		{"mit-ai-risk-repository-causal", SourceMITAIRisk},
		{"shieldgemma-taxonomy", SourceShieldGemma},
		{"", DefaultSource},
		{"never-seen-before", DefaultSource},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SourceForTaxonomy(tt.taxonomy), "taxonomy %q", tt.taxonomy)
	}
}
