// Package stats aggregates entity counts over the unified store.
package stats

import "github.com/qube-ai/nexus/store"

// Statistics holds scalar and grouped entity counts of the knowledge base.
type Statistics struct {
	TotalRisks       int `json:"totalRisks"`
	TotalActions     int `json:"totalActions"`
	TotalControls    int `json:"totalControls"`
	TotalEvaluations int `json:"totalEvaluations"`

	// RisksByTaxonomy counts risks per defining taxonomy id.
	RisksByTaxonomy map[string]int `json:"risksByTaxonomy"`

	// ActionsByTaxonomy counts actions per defining taxonomy id.
	ActionsByTaxonomy map[string]int `json:"actionsByTaxonomy"`

	// ControlsByTaxonomy counts controls per defining taxonomy id.
	ControlsByTaxonomy map[string]int `json:"controlsByTaxonomy"`

	// RisksByGroup counts risks per containing group id; risks without a
	// group are not counted here.
	RisksByGroup map[string]int `json:"risksByGroup"`
}

// Aggregator computes statistics over a store snapshot.
type Aggregator struct {
	store *store.Store
}

// NewAggregator returns an Aggregator over the given store.
func NewAggregator(s *store.Store) *Aggregator {
	return &Aggregator{store: s}
}

// Statistics recomputes all counts with a single linear pass per
// collection. There is no caching beyond the store's own memoization;
// recomputation is O(n) over the entity count.
func (a *Aggregator) Statistics() Statistics {
	stats := Statistics{
		RisksByTaxonomy:    make(map[string]int),
		ActionsByTaxonomy:  make(map[string]int),
		ControlsByTaxonomy: make(map[string]int),
		RisksByGroup:       make(map[string]int),
	}

	risks := a.store.Risks()
	stats.TotalRisks = len(risks)
	for _, r := range risks {
		stats.RisksByTaxonomy[r.Taxonomy]++
		if r.Group != "" {
			stats.RisksByGroup[r.Group]++
		}
	}

	actions := a.store.Actions()
	stats.TotalActions = len(actions)
	for _, act := range actions {
		stats.ActionsByTaxonomy[act.Taxonomy]++
	}

	controls := a.store.Controls()
	stats.TotalControls = len(controls)
	for _, c := range controls {
		stats.ControlsByTaxonomy[c.Taxonomy]++
	}

	stats.TotalEvaluations = len(a.store.Evaluations())

	return stats
}
