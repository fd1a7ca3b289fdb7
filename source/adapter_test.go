package source

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fsWith(path, content string) fstest.MapFS {
	return fstest.MapFS{
		path: &fstest.MapFile{Data: []byte(content)},
	}
}

func TestFileAdapterAtlas(t *testing.T) {
	fsys := fsWith("atlas.yaml", `
taxonomies:
  - id: ibm-risk-atlas
    name: IBM AI Risk Atlas
riskgroups:
  - id: output-risks
    name: Output risks
    isDefinedByTaxonomy: ibm-risk-atlas
risks:
  - id: atlas-hallucination
    name: Hallucination
    description: Generated content that is factually wrong.
    tag: hallucination
    isDefinedByTaxonomy: ibm-risk-atlas
    isPartOf: output-risks
  - id: atlas-toxicity
    name: Toxic output
    description: Generated content that is harmful.
    tag: toxic-output
    isDefinedByTaxonomy: ibm-risk-atlas
actions:
  - id: act-review
    name: Human review
    description: Review generated output.
    isDefinedByTaxonomy: ibm-risk-atlas
    hasRelatedRisk: [hallucination]
`)

	a := NewFileAdapter(fsys, Entry{Name: "atlas", Path: "atlas.yaml", Kind: KindAtlas})
	ds, err := a.Parse(context.Background())
	require.NoError(t, err)

	assert.Len(t, ds.Taxonomies, 1)
	assert.Len(t, ds.RiskGroups, 1)
	assert.Len(t, ds.Risks, 2)
	assert.Len(t, ds.Actions, 1)
}

func TestFileAdapterActionsOnlyKeepsActions(t *testing.T) {
	// An actions catalog must not inject entities from other sections.
	fsys := fsWith("actions.yaml", `
risks:
  - id: should-not-load
    name: Stray risk
    description: present in file, not authoritative
    isDefinedByTaxonomy: nist-ai-rmf
actions:
  - id: govern-1.1
    name: Legal requirements are understood
    description: Maintain awareness of applicable legal requirements.
    isDefinedByTaxonomy: nist-ai-rmf
    hasAiActorTask: [Governance]
`)

	a := NewFileAdapter(fsys, Entry{Name: "nist-actions", Path: "actions.yaml", Kind: KindActions})
	ds, err := a.Parse(context.Background())
	require.NoError(t, err)

	assert.Empty(t, ds.Risks)
	require.Len(t, ds.Actions, 1)
	assert.Equal(t, "govern-1.1", ds.Actions[0].ID)
}

func TestFileAdapterDimensions(t *testing.T) {
	fsys := fsWith("guardian.yaml", `
taxonomies:
  - id: ibm-granite-guardian
    name: Granite Guardian
risks:
  - id: gg-harm
    name: Harm
    description: Content considered universally harmful.
    isDefinedByTaxonomy: ibm-granite-guardian
  - id: gg-reference-only
    isDefinedByTaxonomy: ibm-granite-guardian
riskcontrols:
  - id: gg-harm-detector
    name: Harm detector
    detectsRiskConcept: [gg-harm]
  - id: gg-jailbreak-detector
    name: Jailbreak detector
    description: Flags jailbreak attempts.
    isDefinedByTaxonomy: ibm-granite-guardian
    detectsRisk: [gg-jailbreak]
  - name: missing id, dropped
`)

	a := NewFileAdapter(fsys, Entry{
		Name:     "granite-guardian",
		Path:     "guardian.yaml",
		Kind:     KindDimensions,
		Taxonomy: "granite-guardian",
	})
	ds, err := a.Parse(context.Background())
	require.NoError(t, err)

	// Reference rows without name and description are skipped.
	require.Len(t, ds.Risks, 1)
	assert.Equal(t, "gg-harm", ds.Risks[0].ID)

	require.Len(t, ds.Controls, 2)

	harm := ds.Controls[0]
	assert.Equal(t, "gg-harm-detector", harm.ID)
	assert.Equal(t, []string{"gg-harm"}, harm.DetectsRisks, "detectsRiskConcept is honored")
	assert.Equal(t, "Detection control for Harm detector", harm.Description)
	assert.Equal(t, "granite-guardian", harm.Taxonomy, "fallback taxonomy applied")

	jailbreak := ds.Controls[1]
	assert.Equal(t, "Flags jailbreak attempts.", jailbreak.Description)
	assert.Equal(t, "ibm-granite-guardian", jailbreak.Taxonomy)
}

func TestFileAdapterEvaluations(t *testing.T) {
	fsys := fsWith("evals.yaml", `
evaluations:
  - id: truthfulqa
    name: TruthfulQA
    assessesRisk: [hallucination]
benchmarkMetadataCards:
  - id: truthfulqa-card
    name: TruthfulQA Card
    tasks: [question-answering]
`)

	a := NewFileAdapter(fsys, Entry{Name: "evals", Path: "evals.yaml", Kind: KindEvaluations})
	ds, err := a.Parse(context.Background())
	require.NoError(t, err)

	require.Len(t, ds.Evaluations, 1)
	require.Len(t, ds.BenchmarkCards, 1)
	assert.Equal(t, []string{"question-answering"}, ds.BenchmarkCards[0].Tasks)
}

func TestFileAdapterIncidents(t *testing.T) {
	fsys := fsWith("incidents.yaml", `
incidents:
  - id: incident-1
    name: Chatbot data leak
    hasRealizingRisks: [atlas-data-leak]
`)

	a := NewFileAdapter(fsys, Entry{Name: "incidents", Path: "incidents.yaml", Kind: KindIncidents})
	ds, err := a.Parse(context.Background())
	require.NoError(t, err)

	require.Len(t, ds.Incidents, 1)
	assert.Equal(t, "incident-1", ds.Incidents[0].ID)
}

func TestFileAdapterLegacySkipsUnnamedRisks(t *testing.T) {
	fsys := fsWith("legacy.yaml", `
taxonomies:
  - id: legacy-ibm
    name: Legacy IBM Risks
risks:
  - id: legacy-1
    name: Membership inference attack
    description: Inferring training set membership.
    isDefinedByTaxonomy: legacy-ibm
  - id: legacy-2
    description: placeholder row without a name
`)

	a := NewFileAdapter(fsys, Entry{Name: "legacy-ibm", Path: "legacy.yaml", Kind: KindLegacy})
	ds, err := a.Parse(context.Background())
	require.NoError(t, err)

	require.Len(t, ds.Risks, 1)
	assert.Equal(t, "legacy-1", ds.Risks[0].ID)
	assert.Len(t, ds.Taxonomies, 1)
}

func TestFileAdapterAtlasKeepsDeclaredSections(t *testing.T) {
	// An atlas document owns taxonomies, groups, risks and actions;
	// evaluations, controls and incidents belong to their dedicated files.
	fsys := fsWith("atlas.yaml", `
taxonomies:
  - id: ibm-risk-atlas
    name: IBM AI Risk Atlas
risks:
  - id: atlas-hallucination
    name: Hallucination
    description: Generated content that is factually wrong.
    isDefinedByTaxonomy: ibm-risk-atlas
riskcontrols:
  - id: stray-control
    name: Stray control
    description: present in file, not authoritative
evaluations:
  - id: stray-eval
    name: Stray evaluation
incidents:
  - id: stray-incident
    name: Stray incident
`)

	a := NewFileAdapter(fsys, Entry{Name: "atlas", Path: "atlas.yaml", Kind: KindAtlas})
	ds, err := a.Parse(context.Background())
	require.NoError(t, err)

	assert.Len(t, ds.Taxonomies, 1)
	assert.Len(t, ds.Risks, 1)
	assert.Empty(t, ds.Controls)
	assert.Empty(t, ds.Evaluations)
	assert.Empty(t, ds.Incidents)
}

func TestFileAdapterMalformedDocument(t *testing.T) {
	fsys := fsWith("broken.yaml", "risks: [unclosed")

	a := NewFileAdapter(fsys, Entry{Name: "broken", Path: "broken.yaml", Kind: KindAtlas})
	_, err := a.Parse(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse YAML")
}

func TestFileAdapterMissingFile(t *testing.T) {
	a := NewFileAdapter(fstest.MapFS{}, Entry{Name: "gone", Path: "gone.yaml", Kind: KindAtlas})
	_, err := a.Parse(context.Background())
	require.Error(t, err)
}

func TestFileAdapterCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := NewFileAdapter(fsWith("a.yaml", "risks: []"), Entry{Name: "a", Path: "a.yaml", Kind: KindAtlas})
	_, err := a.Parse(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindAtlas, "atlas"},
		{KindActions, "actions"},
		{KindDimensions, "dimensions"},
		{KindEvaluations, "evaluations"},
		{KindIncidents, "incidents"},
		{KindLegacy, "legacy"},
		{Kind(42), "Kind(42)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}
}

func TestDefaultEntriesCatalog(t *testing.T) {
	entries := DefaultEntries()
	require.Len(t, entries, 14)

	names := make(map[string]bool, len(entries))
	for _, e := range entries {
		assert.NotEmpty(t, e.Name)
		assert.NotEmpty(t, e.Path)
		assert.False(t, names[e.Name], "duplicate source name %q", e.Name)
		names[e.Name] = true
	}

	// Dimensions entries must carry a fallback taxonomy.
	for _, e := range entries {
		if e.Kind == KindDimensions {
			assert.NotEmpty(t, e.Taxonomy, "entry %q", e.Name)
		}
	}
}
