package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestControlValid(t *testing.T) {
	tests := []struct {
		name    string
		control Control
		want    bool
	}{
		{
			name:    "id and name present",
			control: Control{ID: "gg-hap", Name: "Harm detection"},
			want:    true,
		},
		{
			name:    "missing name",
			control: Control{ID: "gg-hap"},
			want:    false,
		},
		{
			name:    "missing id",
			control: Control{Name: "Harm detection"},
			want:    false,
		},
		{
			name:    "empty",
			control: Control{},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.control.Valid())
		})
	}
}

func TestRiskSearchText(t *testing.T) {
	r := Risk{
		Name:        "Prompt Injection",
		Description: "Crafted input subverts the Model",
		Tag:         "prompt-injection",
	}
	text := r.SearchText()
	assert.Contains(t, text, "prompt injection")
	assert.Contains(t, text, "crafted input subverts the model")
	assert.Contains(t, text, "prompt-injection")
	assert.Equal(t, text, r.SearchText(), "deterministic")
}

func TestDatasetMergePreservesOrder(t *testing.T) {
	var merged Dataset
	merged.Merge(Dataset{
		Risks:      []Risk{{ID: "r1"}, {ID: "r2"}},
		Taxonomies: []Taxonomy{{ID: "t1"}},
	})
	merged.Merge(Dataset{
		Risks:   []Risk{{ID: "r3"}},
		Actions: []Action{{ID: "a1"}},
	})

	require.Len(t, merged.Risks, 3)
	assert.Equal(t, "r1", merged.Risks[0].ID)
	assert.Equal(t, "r2", merged.Risks[1].ID)
	assert.Equal(t, "r3", merged.Risks[2].ID)
	assert.Len(t, merged.Taxonomies, 1)
	assert.Len(t, merged.Actions, 1)
}

func TestDatasetCounts(t *testing.T) {
	d := Dataset{
		Taxonomies:  []Taxonomy{{ID: "t1"}},
		RiskGroups:  []RiskGroup{{ID: "g1"}, {ID: "g2"}},
		Risks:       []Risk{{ID: "r1"}, {ID: "r2"}, {ID: "r3"}},
		Actions:     []Action{{ID: "a1"}},
		Controls:    []Control{{ID: "c1", Name: "c"}},
		Evaluations: []Evaluation{{ID: "e1"}},
		Incidents:   []Incident{{ID: "i1"}},
	}

	counts := d.Counts()
	assert.Equal(t, 1, counts.Taxonomies)
	assert.Equal(t, 2, counts.RiskGroups)
	assert.Equal(t, 3, counts.Risks)
	assert.Equal(t, 1, counts.Actions)
	assert.Equal(t, 1, counts.Controls)
	assert.Equal(t, 1, counts.Evaluations)
	assert.Equal(t, 0, counts.BenchmarkCards)
	assert.Equal(t, 1, counts.Incidents)
	assert.Equal(t, 10, counts.Total())
}

func TestDatasetUnmarshalYAML(t *testing.T) {
	doc := `
taxonomies:
  - id: owasp-llm-2.0
    name: OWASP LLM Top 10
riskgroups:
  - id: owasp-llm-group
    name: LLM Applications
    isDefinedByTaxonomy: owasp-llm-2.0
risks:
  - id: llm01
    name: Prompt Injection
    description: Crafted inputs override system instructions.
    tag: prompt-injection
    isDefinedByTaxonomy: owasp-llm-2.0
    isPartOf: owasp-llm-group
actions:
  - id: act-1
    name: Input filtering
    description: Filter untrusted input.
    isDefinedByTaxonomy: nist-ai-rmf
    hasRelatedRisk:
      - llm01
riskcontrols:
  - id: gg-jailbreak
    name: Jailbreak detection
    description: Detects jailbreak attempts.
    isDefinedByTaxonomy: granite-guardian
    detectsRisk:
      - prompt-injection
evaluations:
  - id: eval-1
    name: InjectBench
    assessesRisk:
      - llm01
`

	var ds Dataset
	require.NoError(t, yaml.Unmarshal([]byte(doc), &ds))

	require.Len(t, ds.Risks, 1)
	risk := ds.Risks[0]
	assert.Equal(t, "llm01", risk.ID)
	assert.Equal(t, "owasp-llm-2.0", risk.Taxonomy)
	assert.Equal(t, "owasp-llm-group", risk.Group)
	assert.Equal(t, "prompt-injection", risk.Tag)

	require.Len(t, ds.Actions, 1)
	assert.Equal(t, []string{"llm01"}, ds.Actions[0].RelatedRisks)

	require.Len(t, ds.Controls, 1)
	assert.Equal(t, []string{"prompt-injection"}, ds.Controls[0].DetectsRisks)

	require.Len(t, ds.Evaluations, 1)
	assert.Equal(t, []string{"llm01"}, ds.Evaluations[0].AssessesRisks)
}
