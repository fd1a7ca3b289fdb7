package schema

// Dataset is the partial collection set contributed by one source document.
// Any field may be empty: absent sections in a source are treated as empty,
// not as an error.
type Dataset struct {
	Documents      []Document      `json:"documents,omitempty" yaml:"documents,omitempty"`
	Taxonomies     []Taxonomy      `json:"taxonomies,omitempty" yaml:"taxonomies,omitempty"`
	RiskGroups     []RiskGroup     `json:"riskgroups,omitempty" yaml:"riskgroups,omitempty"`
	Risks          []Risk          `json:"risks,omitempty" yaml:"risks,omitempty"`
	Actions        []Action        `json:"actions,omitempty" yaml:"actions,omitempty"`
	Controls       []Control       `json:"riskcontrols,omitempty" yaml:"riskcontrols,omitempty"`
	Evaluations    []Evaluation    `json:"evaluations,omitempty" yaml:"evaluations,omitempty"`
	BenchmarkCards []BenchmarkCard `json:"benchmarkMetadataCards,omitempty" yaml:"benchmarkMetadataCards,omitempty"`
	Incidents      []Incident      `json:"incidents,omitempty" yaml:"incidents,omitempty"`
}

// Merge appends every collection of other onto d, preserving insertion
// order. Sources are merged in catalog order so listings are stable across
// reloads of unchanged documents.
func (d *Dataset) Merge(other Dataset) {
	d.Documents = append(d.Documents, other.Documents...)
	d.Taxonomies = append(d.Taxonomies, other.Taxonomies...)
	d.RiskGroups = append(d.RiskGroups, other.RiskGroups...)
	d.Risks = append(d.Risks, other.Risks...)
	d.Actions = append(d.Actions, other.Actions...)
	d.Controls = append(d.Controls, other.Controls...)
	d.Evaluations = append(d.Evaluations, other.Evaluations...)
	d.BenchmarkCards = append(d.BenchmarkCards, other.BenchmarkCards...)
	d.Incidents = append(d.Incidents, other.Incidents...)
}

// Counts summarizes the entity counts of a dataset, used in load reports
// and log lines.
type Counts struct {
	Taxonomies     int `json:"taxonomies"`
	RiskGroups     int `json:"riskgroups"`
	Risks          int `json:"risks"`
	Actions        int `json:"actions"`
	Controls       int `json:"controls"`
	Evaluations    int `json:"evaluations"`
	BenchmarkCards int `json:"benchmark_cards"`
	Incidents      int `json:"incidents"`
}

// Counts returns the per-collection entity counts of d.
func (d Dataset) Counts() Counts {
	return Counts{
		Taxonomies:     len(d.Taxonomies),
		RiskGroups:     len(d.RiskGroups),
		Risks:          len(d.Risks),
		Actions:        len(d.Actions),
		Controls:       len(d.Controls),
		Evaluations:    len(d.Evaluations),
		BenchmarkCards: len(d.BenchmarkCards),
		Incidents:      len(d.Incidents),
	}
}

// Total returns the total number of entities across all collections.
func (c Counts) Total() int {
	return c.Taxonomies + c.RiskGroups + c.Risks + c.Actions +
		c.Controls + c.Evaluations + c.BenchmarkCards + c.Incidents
}
