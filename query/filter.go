package query

// RiskFilter selects risks. Zero-valued fields impose no constraint.
type RiskFilter struct {
	// Taxonomy matches the defining taxonomy id exactly.
	Taxonomy string

	// Group matches the containing risk group id exactly.
	Group string

	// Tag matches the risk tag exactly.
	Tag string

	// Type matches the risk type exactly.
	Type string

	// Search is a case-insensitive substring match against the risk's
	// name, description and tag.
	Search string

	// Expr is an optional CEL expression evaluated with the variable
	// "risk" bound to the risk's fields. It must evaluate to a boolean.
	Expr string
}

// ActionFilter selects actions. Zero-valued fields impose no constraint.
type ActionFilter struct {
	// Taxonomy matches the defining taxonomy id exactly.
	Taxonomy string

	// RelatedRisk matches actions whose related-risk reference list
	// contains the value verbatim.
	RelatedRisk string

	// ActorTask matches actions whose actor-task list contains the value.
	ActorTask string

	// Search is a case-insensitive substring match against name and
	// description.
	Search string
}

// ControlFilter selects controls. Zero-valued fields impose no constraint.
type ControlFilter struct {
	// Taxonomy matches the defining taxonomy id exactly.
	Taxonomy string

	// DetectsRisk matches controls whose detected-risk reference list
	// contains the value verbatim.
	DetectsRisk string

	// Search is a case-insensitive substring match against name and
	// description.
	Search string
}

// EvaluationFilter selects evaluations. Zero-valued fields impose no
// constraint.
type EvaluationFilter struct {
	// AssessesRisk matches evaluations whose assessed-risk reference list
	// contains the value verbatim.
	AssessesRisk string

	// Search is a case-insensitive substring match against name and
	// description.
	Search string
}

func containsString(list []string, want string) bool {
	for _, v := range list {
		if v == want {
			return true
		}
	}
	return false
}
