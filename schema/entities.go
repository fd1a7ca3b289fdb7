package schema

import "strings"

// Taxonomy identifies one authoritative source of risk definitions, such as
// a published standard or framework. Taxonomies are created at load time and
// never mutated.
type Taxonomy struct {
	// ID is the stable identifier referenced by other entities.
	ID string `json:"id" yaml:"id"`

	// Name is the human-readable taxonomy name.
	Name string `json:"name" yaml:"name"`

	// Description summarizes the taxonomy (optional).
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// URL points at the authoritative publication (optional).
	URL string `json:"url,omitempty" yaml:"url,omitempty"`

	DateCreated  string `json:"dateCreated,omitempty" yaml:"dateCreated,omitempty"`
	DateModified string `json:"dateModified,omitempty" yaml:"dateModified,omitempty"`

	// HasDocumentation lists ids of related Document records.
	HasDocumentation []string `json:"hasDocumentation,omitempty" yaml:"hasDocumentation,omitempty"`
}

// RiskGroup is a named category within a taxonomy used to cluster risks.
type RiskGroup struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Taxonomy is the id of the defining taxonomy.
	Taxonomy string `json:"isDefinedByTaxonomy" yaml:"isDefinedByTaxonomy"`
}

// Risk is the central entity: a named, described potential harm or failure
// mode of an AI system, defined by exactly one taxonomy.
//
// Identity is the ID, but cross-references in other entities frequently use
// the short Tag or substrings of either. That ambiguity is inherited from
// the source taxonomies; see the xref package for the matching rule.
type Risk struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`

	// Tag is a short mnemonic (may be absent).
	Tag string `json:"tag,omitempty" yaml:"tag,omitempty"`

	// Type is an optional classification within the taxonomy.
	Type string `json:"type,omitempty" yaml:"type,omitempty"`

	// Taxonomy is the id of the defining taxonomy.
	Taxonomy string `json:"isDefinedByTaxonomy" yaml:"isDefinedByTaxonomy"`

	// Group is the id of the containing RiskGroup (optional).
	Group string `json:"isPartOf,omitempty" yaml:"isPartOf,omitempty"`

	URL          string   `json:"url,omitempty" yaml:"url,omitempty"`
	DateCreated  string   `json:"dateCreated,omitempty" yaml:"dateCreated,omitempty"`
	DateModified string   `json:"dateModified,omitempty" yaml:"dateModified,omitempty"`
	Descriptor   []string `json:"descriptor,omitempty" yaml:"descriptor,omitempty"`
	Concern      string   `json:"concern,omitempty" yaml:"concern,omitempty"`

	// SKOS-style cross-taxonomy mappings carried through from the sources.
	RelatedRisk  []string `json:"relatedRisk,omitempty" yaml:"relatedRisk,omitempty"`
	RelatedMatch []string `json:"relatedMatch,omitempty" yaml:"relatedMatch,omitempty"`
	NarrowMatch  []string `json:"narrowMatch,omitempty" yaml:"narrowMatch,omitempty"`
	BroadMatch   []string `json:"broadMatch,omitempty" yaml:"broadMatch,omitempty"`
	CloseMatch   []string `json:"closeMatch,omitempty" yaml:"closeMatch,omitempty"`
	ExactMatch   []string `json:"exactMatch,omitempty" yaml:"exactMatch,omitempty"`
}

// SearchText returns the lowercase concatenation of the risk's name,
// description and tag, used by free-text filtering and relevance scoring.
func (r Risk) SearchText() string {
	return strings.ToLower(r.Name + " " + r.Description + " " + r.Tag)
}

// Action is a recommended mitigation or remediation activity associated
// with one or more risks.
type Action struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`

	// Taxonomy is the id of the defining taxonomy.
	Taxonomy string `json:"isDefinedByTaxonomy" yaml:"isDefinedByTaxonomy"`

	// RelatedRisks holds loosely-typed references to the risks this action
	// mitigates. Entries may be full risk ids, short tags or prefixed codes.
	RelatedRisks []string `json:"hasRelatedRisk,omitempty" yaml:"hasRelatedRisk,omitempty"`

	// ActorTasks lists the AI actor tasks this action applies to (optional).
	ActorTasks []string `json:"hasAiActorTask,omitempty" yaml:"hasAiActorTask,omitempty"`

	HasDocumentation []string `json:"hasDocumentation,omitempty" yaml:"hasDocumentation,omitempty"`
	LifecyclePhases  []string `json:"aiLifecyclePhase,omitempty" yaml:"aiLifecyclePhase,omitempty"`
}

// Control is a detection mechanism, typically an automated classifier,
// associated with the risks it detects.
type Control struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`

	// Taxonomy is the id of the defining taxonomy.
	Taxonomy string `json:"isDefinedByTaxonomy" yaml:"isDefinedByTaxonomy"`

	// DetectsRisks holds loosely-typed references to the detected risks.
	DetectsRisks []string `json:"detectsRisk,omitempty" yaml:"detectsRisk,omitempty"`

	URL          string   `json:"url,omitempty" yaml:"url,omitempty"`
	Tag          string   `json:"tag,omitempty" yaml:"tag,omitempty"`
	Group        string   `json:"isPartOf,omitempty" yaml:"isPartOf,omitempty"`
	RelatedMatch []string `json:"relatedMatch,omitempty" yaml:"relatedMatch,omitempty"`
	BroadMatch   []string `json:"broadMatch,omitempty" yaml:"broadMatch,omitempty"`
	NarrowMatch  []string `json:"narrowMatch,omitempty" yaml:"narrowMatch,omitempty"`
}

// Valid reports whether the control carries the fields required for it to
// act as a cross-reference target. Source documents mix placeholder rows
// with real entries; invalid controls are discarded at load time.
func (c Control) Valid() bool {
	return c.ID != "" && c.Name != ""
}

// Evaluation is a named benchmark or test that assesses one or more risks.
type Evaluation struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// AssessesRisks holds loosely-typed references to the assessed risks.
	AssessesRisks []string `json:"assessesRisk,omitempty" yaml:"assessesRisk,omitempty"`

	URL           string `json:"url,omitempty" yaml:"url,omitempty"`
	DateCreated   string `json:"dateCreated,omitempty" yaml:"dateCreated,omitempty"`
	DateModified  string `json:"dateModified,omitempty" yaml:"dateModified,omitempty"`
	License       string `json:"hasLicense,omitempty" yaml:"hasLicense,omitempty"`
	BenchmarkCard string `json:"hasBenchmarkMetadataCard,omitempty" yaml:"hasBenchmarkMetadataCard,omitempty"`
}

// BenchmarkCard is a supplementary descriptive record for an Evaluation.
// Cards are carried through the store unchanged and are not cross-referenced.
type BenchmarkCard struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	URL         string   `json:"url,omitempty" yaml:"url,omitempty"`
	Tasks       []string `json:"tasks,omitempty" yaml:"tasks,omitempty"`
	Languages   []string `json:"languages,omitempty" yaml:"languages,omitempty"`
	Domains     []string `json:"domains,omitempty" yaml:"domains,omitempty"`
	Metrics     []string `json:"metrics,omitempty" yaml:"metrics,omitempty"`
	Modalities  []string `json:"modalities,omitempty" yaml:"modalities,omitempty"`
	Limitations string   `json:"limitations,omitempty" yaml:"limitations,omitempty"`
}

// Incident is a standalone record of a real-world AI event. Incidents are
// carried through the store unchanged and are not cross-referenced to risks.
type Incident struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	DateOccurred string `json:"dateOccurred,omitempty" yaml:"dateOccurred,omitempty"`
	URL          string `json:"url,omitempty" yaml:"url,omitempty"`

	// RealizedRisks lists ids of risks the incident realized.
	RealizedRisks []string `json:"hasRealizingRisks,omitempty" yaml:"hasRealizingRisks,omitempty"`

	Actors []string `json:"aiActors,omitempty" yaml:"aiActors,omitempty"`
}

// Document is a bibliographic record attached to a taxonomy.
type Document struct {
	ID           string `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	Description  string `json:"description,omitempty" yaml:"description,omitempty"`
	URL          string `json:"url,omitempty" yaml:"url,omitempty"`
	DateCreated  string `json:"dateCreated,omitempty" yaml:"dateCreated,omitempty"`
	DateModified string `json:"dateModified,omitempty" yaml:"dateModified,omitempty"`
	License      string `json:"hasLicense,omitempty" yaml:"hasLicense,omitempty"`
}
