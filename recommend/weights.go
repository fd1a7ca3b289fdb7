package recommend

// Weights holds the point values of the scoring signals. The defaults are
// hand-tuned against the shipped taxonomies; they are configuration, not
// constants baked into the matching logic.
type Weights struct {
	// GenAI is added when the profile flags generative AI and the risk
	// text contains generative-AI vocabulary.
	GenAI int

	// Agentic is added when the profile flags agentic systems and the
	// risk text contains autonomy vocabulary.
	Agentic int

	// RAG is added when the profile flags retrieval-augmented generation
	// and the risk text contains retrieval vocabulary.
	RAG int

	// Plugins is added when the profile flags external tools and the risk
	// text contains tool vocabulary.
	Plugins int

	// PublicFacing is added when the profile flags public exposure and
	// the risk text contains exposure vocabulary.
	PublicFacing int

	// SensitiveData is added when the profile handles a sensitive data
	// category and the risk text contains privacy vocabulary.
	SensitiveData int

	// Keyword is added once per caller-supplied keyword found in the risk
	// text.
	Keyword int

	// TaxonomyBonus awards a fixed bonus per defining-taxonomy id. The
	// default boosts the broad general-purpose taxonomies over narrow
	// specializations.
	TaxonomyBonus map[string]int

	// MinScore is the survival threshold; risks scoring at or below it
	// are discarded.
	MinScore int

	// MaxResults caps the ranked result list.
	MaxResults int
}

// DefaultWeights returns the standard scoring configuration.
func DefaultWeights() Weights {
	return Weights{
		GenAI:         30,
		Agentic:       30,
		RAG:           20,
		Plugins:       20,
		PublicFacing:  15,
		SensitiveData: 25,
		Keyword:       10,
		TaxonomyBonus: map[string]int{
			"ibm-risk-atlas": 5,
			"owasp-llm-2.0":  5,
			"nist-ai-rmf":    3,
		},
		MinScore:   10,
		MaxResults: 50,
	}
}

// Signal vocabularies. A signal fires when any of its terms appears in the
// lowercased risk text; stems ("generat", "autonom") deliberately match
// their inflections.
var (
	genAIVocabulary        = []string{"generat", "llm", "language model", "hallucin", "prompt"}
	agenticVocabulary      = []string{"agent", "autonom", "decision", "action"}
	ragVocabulary          = []string{"retriev", "ground", "context", "embed"}
	pluginVocabulary       = []string{"tool", "plugin", "integrat", "api"}
	publicFacingVocabulary = []string{"user", "public", "attack", "inject"}
	privacyVocabulary      = []string{"privacy", "data", "confidential"}
)
