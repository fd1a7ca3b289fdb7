package enrich

import (
	"github.com/qube-ai/nexus/schema"
	"github.com/qube-ai/nexus/store"
	"github.com/qube-ai/nexus/xref"
)

// EnrichedRisk extends a Risk with display context: the human-readable
// names of its taxonomy and group, the resolved related entities and a
// normalized source label.
type EnrichedRisk struct {
	schema.Risk

	// Source is the normalized origin label.
	Source Source `json:"source"`

	// TaxonomyName is the display name of the defining taxonomy, empty
	// when the taxonomy id is absent from the taxonomy collection.
	TaxonomyName string `json:"taxonomyName,omitempty"`

	// GroupName is the display name of the containing risk group, if any.
	GroupName string `json:"riskGroupName,omitempty"`

	// RelatedActions are the mitigations that reference this risk.
	RelatedActions []schema.Action `json:"relatedActions,omitempty"`

	// RelatedControls are the detection controls that reference this risk.
	RelatedControls []schema.Control `json:"relatedControls,omitempty"`

	// RelatedEvaluations are the benchmarks that assess this risk.
	RelatedEvaluations []schema.Evaluation `json:"relatedEvaluations,omitempty"`
}

// Composer builds enriched risk records from store lookups and resolved
// cross-references.
type Composer struct {
	store    *store.Store
	resolver *xref.Resolver
}

// NewComposer returns a Composer over the given store and resolver.
func NewComposer(s *store.Store, r *xref.Resolver) *Composer {
	return &Composer{store: s, resolver: r}
}

// EnrichRisk denormalizes one risk. Missing taxonomy or group records
// leave the corresponding name empty; they are display data, not
// integrity constraints.
func (c *Composer) EnrichRisk(risk schema.Risk) EnrichedRisk {
	enriched := EnrichedRisk{
		Risk:               risk,
		Source:             SourceForTaxonomy(risk.Taxonomy),
		RelatedActions:     c.resolver.RelatedActions(risk),
		RelatedControls:    c.resolver.RelatedControls(risk),
		RelatedEvaluations: c.resolver.RelatedEvaluations(risk),
	}

	if t, ok := c.store.TaxonomyByID(risk.Taxonomy); ok {
		enriched.TaxonomyName = t.Name
	}
	if risk.Group != "" {
		if g, ok := c.store.RiskGroupByID(risk.Group); ok {
			enriched.GroupName = g.Name
		}
	}

	return enriched
}
