// Package enrich assembles denormalized risk records for consumption:
// the raw risk plus its taxonomy name, group name, resolved related
// entities and a normalized source label.
package enrich

// Source is the normalized label of the origin of a risk, mapped from the
// raw taxonomy identifier. The set is fixed; unrecognized taxonomy ids fall
// back to DefaultSource rather than failing.
type Source string

const (
	SourceIBMRiskAtlas    Source = "ibm-risk-atlas"
	SourceAIR2024         Source = "air-2024"
	SourceCredoUCF        Source = "credo-ucf"
	SourceMITAIRisk       Source = "mit-ai-risk"
	SourceNISTAIRMF       Source = "nist-ai-rmf"
	SourceOWASPLLM        Source = "owasp-llm"
	SourceAILuminate      Source = "ailuminate"
	SourceGraniteGuardian Source = "granite-guardian"
	SourceShieldGemma     Source = "shieldgemma"
)

// DefaultSource is assigned when a taxonomy id has no known mapping.
const DefaultSource = SourceIBMRiskAtlas

// taxonomySources maps raw taxonomy ids to normalized source labels.
// Several taxonomies collapse onto one label (the MIT repository ships two
// taxonomy ids).
var taxonomySources = map[string]Source{
	"ibm-risk-atlas":                  SourceIBMRiskAtlas,
	"ai-risk-taxonomy":                SourceAIR2024,
	"credo-ucf":                       SourceCredoUCF,
	"mit-ai-risk-repository":          SourceMITAIRisk,
	"mit-ai-risk-repository-causal":   SourceMITAIRisk,
	"nist-ai-rmf":                     SourceNISTAIRMF,
	"owasp-llm-2.0":                   SourceOWASPLLM,
	"ailuminate-v1.0":                 SourceAILuminate,
	"ibm-granite-guardian":            SourceGraniteGuardian,
	"shieldgemma-taxonomy":            SourceShieldGemma,
}

// SourceForTaxonomy returns the normalized source label for a raw taxonomy
// id, falling back to DefaultSource for unrecognized ids.
func SourceForTaxonomy(taxonomyID string) Source {
	if s, ok := taxonomySources[taxonomyID]; ok {
		return s
	}
	return DefaultSource
}
