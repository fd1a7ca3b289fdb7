package source

import "os"

// DefaultDataDir is the data directory used by DefaultAdapters.
const DefaultDataDir = "data"

// DefaultEntries returns the catalog of shipped taxonomy documents. The
// order is load order, which fixes the insertion order of every listing.
func DefaultEntries() []Entry {
	return []Entry{
		{Name: "ibm-risk-atlas", Path: "risk_atlas_data.yaml", Kind: KindAtlas},
		{Name: "air-2024", Path: "air_2024_data.yaml", Kind: KindAtlas},
		{Name: "credo-ucf", Path: "credo.yaml", Kind: KindAtlas},
		{Name: "mit-ai-risk-repository", Path: "mit_ai_risk_repository_data.yaml", Kind: KindAtlas},
		{Name: "nist-ai-rmf", Path: "nist_ai_rmf_data.yaml", Kind: KindAtlas},
		{Name: "nist-ai-rmf-actions", Path: "nist_ai_rmf_actions_data.yaml", Kind: KindActions},
		{Name: "owasp-llm", Path: "owasp_llm_2.0_data.yaml", Kind: KindAtlas},
		{Name: "ailuminate", Path: "ailuminate.yaml", Kind: KindAtlas},
		{Name: "granite-guardian", Path: "granite_guardian_dimensions.yaml", Kind: KindDimensions, Taxonomy: "granite-guardian"},
		{Name: "shieldgemma", Path: "shieldgemma_dimensions.yaml", Kind: KindDimensions, Taxonomy: "shieldgemma"},
		{Name: "ai-evaluations", Path: "ai_eval_data.yaml", Kind: KindEvaluations},
		{Name: "incidents", Path: "risk_atlas_data_incidents.yaml", Kind: KindIncidents},
		{Name: "legacy-ibm", Path: "qube_legacy_ibm_risks.yaml", Kind: KindLegacy},
		{Name: "legacy-mit", Path: "qube_legacy_mit_risks.yaml", Kind: KindLegacy},
	}
}

// DefaultAdapters returns adapters for the shipped catalog rooted at dir.
// An empty dir uses DefaultDataDir.
func DefaultAdapters(dir string) []Adapter {
	if dir == "" {
		dir = DefaultDataDir
	}
	return Adapters(os.DirFS(dir), DefaultEntries())
}
