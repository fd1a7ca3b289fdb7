package source

import (
	"context"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/qube-ai/nexus/schema"
)

// Adapter parses one source document into a partial Dataset.
//
// Adapters must be side-effect free: they return parsed collections and do
// not touch shared state. An adapter that fails contributes zero entities;
// the caller decides how to surface the error.
type Adapter interface {
	// Name returns the source name used in load reports and log lines.
	Name() string

	// Parse reads and parses the source document.
	Parse(ctx context.Context) (schema.Dataset, error)
}

// Kind selects the parsing rules for a source document. The upstream
// taxonomy files share the same section vocabulary but differ in which
// sections are authoritative and how malformed rows are handled.
type Kind int

const (
	// KindAtlas is a full taxonomy document: taxonomies, riskgroups,
	// risks and optionally actions.
	KindAtlas Kind = iota

	// KindActions is an actions-only document (mitigation catalogs that
	// reference risks defined elsewhere).
	KindActions

	// KindDimensions is a guard-model dimensions document. Risks without
	// both a name and a description are reference rows and are skipped;
	// riskcontrols may use the detectsRiskConcept key and omit description
	// and taxonomy.
	KindDimensions

	// KindEvaluations is a benchmark document: evaluations plus their
	// benchmark metadata cards.
	KindEvaluations

	// KindIncidents is an incidents-only document.
	KindIncidents

	// KindLegacy is a merged historical export: taxonomies plus risks,
	// where rows without a name are skipped.
	KindLegacy
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindAtlas:
		return "atlas"
	case KindActions:
		return "actions"
	case KindDimensions:
		return "dimensions"
	case KindEvaluations:
		return "evaluations"
	case KindIncidents:
		return "incidents"
	case KindLegacy:
		return "legacy"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Entry describes one document in a source catalog.
type Entry struct {
	// Name is the source name, unique within a catalog.
	Name string

	// Path is the document path within the catalog's file system.
	Path string

	// Kind selects the parsing rules.
	Kind Kind

	// Taxonomy is the fallback taxonomy id assigned to controls that omit
	// one (dimensions documents only).
	Taxonomy string
}

// FileAdapter parses one YAML document from a file system according to its
// catalog entry. It implements Adapter.
type FileAdapter struct {
	entry Entry
	fsys  fs.FS
}

// NewFileAdapter returns an adapter for the given catalog entry backed by
// fsys.
func NewFileAdapter(fsys fs.FS, entry Entry) *FileAdapter {
	return &FileAdapter{entry: entry, fsys: fsys}
}

// Adapters builds one FileAdapter per catalog entry, all backed by fsys.
func Adapters(fsys fs.FS, entries []Entry) []Adapter {
	adapters := make([]Adapter, 0, len(entries))
	for _, e := range entries {
		adapters = append(adapters, NewFileAdapter(fsys, e))
	}
	return adapters
}

// Name implements Adapter.
func (a *FileAdapter) Name() string {
	return a.entry.Name
}

// Parse implements Adapter. The returned dataset never contains controls
// lacking an id or a name, regardless of kind.
func (a *FileAdapter) Parse(ctx context.Context) (schema.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return schema.Dataset{}, err
	}

	data, err := fs.ReadFile(a.fsys, a.entry.Path)
	if err != nil {
		return schema.Dataset{}, fmt.Errorf("read %s: %w", a.entry.Path, err)
	}

	switch a.entry.Kind {
	case KindDimensions:
		return parseDimensions(data, a.entry.Taxonomy)
	case KindLegacy:
		return parseLegacy(data)
	default:
		return parseDataset(data, a.entry.Kind)
	}
}

// parseDataset handles the document kinds that unmarshal directly into a
// Dataset. The kind narrows which sections are kept so that, for example,
// an actions catalog cannot inject risks.
func parseDataset(data []byte, kind Kind) (schema.Dataset, error) {
	doc, err := unmarshalYAML[schema.Dataset](data)
	if err != nil {
		return schema.Dataset{}, err
	}

	switch kind {
	case KindActions:
		return schema.Dataset{Actions: doc.Actions}, nil
	case KindEvaluations:
		return schema.Dataset{
			Documents:      doc.Documents,
			Evaluations:    doc.Evaluations,
			BenchmarkCards: doc.BenchmarkCards,
		}, nil
	case KindIncidents:
		return schema.Dataset{Incidents: doc.Incidents}, nil
	default:
		// Atlas documents contribute taxonomies, groups, risks and
		// actions; evaluations, benchmark cards and incidents come only
		// from their dedicated files.
		return schema.Dataset{
			Taxonomies: doc.Taxonomies,
			RiskGroups: doc.RiskGroups,
			Risks:      doc.Risks,
			Actions:    doc.Actions,
		}, nil
	}
}

// dimensionsDoc is the raw shape of a guard-model dimensions document.
// Controls carry their detected risks under either detectsRisk or the
// older detectsRiskConcept key.
type dimensionsDoc struct {
	Taxonomies []schema.Taxonomy  `yaml:"taxonomies"`
	RiskGroups []schema.RiskGroup `yaml:"riskgroups"`
	Risks      []schema.Risk      `yaml:"risks"`
	Controls   []struct {
		ID                  string   `yaml:"id"`
		Name                string   `yaml:"name"`
		Description         string   `yaml:"description"`
		Taxonomy            string   `yaml:"isDefinedByTaxonomy"`
		DetectsRisks        []string `yaml:"detectsRisk"`
		DetectsRiskConcepts []string `yaml:"detectsRiskConcept"`
	} `yaml:"riskcontrols"`
}

func parseDimensions(data []byte, fallbackTaxonomy string) (schema.Dataset, error) {
	doc, err := unmarshalYAML[dimensionsDoc](data)
	if err != nil {
		return schema.Dataset{}, err
	}

	out := schema.Dataset{
		Taxonomies: doc.Taxonomies,
		RiskGroups: doc.RiskGroups,
	}

	// Dimensions files mix real risks with bare reference rows.
	for _, r := range doc.Risks {
		if r.Name == "" || r.Description == "" {
			continue
		}
		out.Risks = append(out.Risks, r)
	}

	for _, c := range doc.Controls {
		if c.ID == "" || c.Name == "" {
			continue
		}
		control := schema.Control{
			ID:           c.ID,
			Name:         c.Name,
			Description:  c.Description,
			Taxonomy:     c.Taxonomy,
			DetectsRisks: c.DetectsRisks,
		}
		if len(c.DetectsRiskConcepts) > 0 {
			control.DetectsRisks = c.DetectsRiskConcepts
		}
		if control.Description == "" {
			control.Description = "Detection control for " + c.Name
		}
		if control.Taxonomy == "" {
			control.Taxonomy = fallbackTaxonomy
		}
		out.Controls = append(out.Controls, control)
	}

	return out, nil
}

func parseLegacy(data []byte) (schema.Dataset, error) {
	doc, err := unmarshalYAML[schema.Dataset](data)
	if err != nil {
		return schema.Dataset{}, err
	}

	out := schema.Dataset{Taxonomies: doc.Taxonomies}

	// Legacy exports contain placeholder rows without names.
	for _, r := range doc.Risks {
		if r.Name == "" {
			continue
		}
		out.Risks = append(out.Risks, r)
	}

	return out, nil
}

// unmarshalYAML parses a YAML document into T using generics.
func unmarshalYAML[T any](data []byte) (*T, error) {
	var result T
	if err := yaml.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &result, nil
}
