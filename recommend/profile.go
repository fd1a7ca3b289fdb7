package recommend

import "strings"

// Profile describes the AI system a caller is assessing. All fields are
// optional; an empty profile matches nothing above the score threshold.
type Profile struct {
	// GenAI is true for generative-AI systems.
	GenAI bool `json:"isGenAI"`

	// Agentic is true for systems that plan or act autonomously.
	Agentic bool `json:"isAgenticAI"`

	// RAG is true for systems using retrieval-augmented generation.
	RAG bool `json:"hasRAG"`

	// Plugins is true for systems invoking external tools or plugins.
	Plugins bool `json:"hasPlugins"`

	// PublicFacing is true for systems exposed to external users.
	PublicFacing bool `json:"publicFacing"`

	// DataTypes lists the labels of data categories the system handles
	// (e.g. "PII", "Health Records").
	DataTypes []string `json:"dataTypes,omitempty"`

	// Keywords is a free-form list of caller-supplied terms; each term
	// found in a risk's text adds a small fixed score.
	Keywords []string `json:"keywords,omitempty"`
}

// sensitiveDataMarkers are the substrings that mark a data-type label as
// sensitive for scoring purposes.
var sensitiveDataMarkers = []string{"pii", "personal", "sensitive", "health", "financial"}

// HandlesSensitiveData reports whether any data-type label names a
// sensitive category such as personal, health or financial data.
func (p Profile) HandlesSensitiveData() bool {
	for _, dt := range p.DataTypes {
		lower := strings.ToLower(dt)
		for _, marker := range sensitiveDataMarkers {
			if strings.Contains(lower, marker) {
				return true
			}
		}
	}
	return false
}
