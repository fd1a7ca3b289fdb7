// Package xref resolves cross-references from actions, controls and
// evaluations back to the risks they mention.
//
// Source taxonomies reference risks by full id, short tag or prefixed code
// with no canonical join key, so resolution is deliberately permissive: a
// reference matches a risk when it equals the risk's id, equals its tag,
// contains its tag, or contains its id. An exact-match policy would
// silently drop the majority of legitimate links; the cost is a nonzero
// false-positive rate on short or numeric tags, which is an accepted
// property of the source data rather than a defect here.
package xref

import (
	"strings"

	"github.com/qube-ai/nexus/schema"
	"github.com/qube-ai/nexus/store"
)

// Resolver computes the related entities of a risk by scanning the store's
// candidate collections. Resolution is lazy and linear per call; the
// knowledge base is reference data sized in the low thousands, so no index
// is kept.
type Resolver struct {
	store *store.Store
}

// NewResolver returns a Resolver over the given store.
func NewResolver(s *store.Store) *Resolver {
	return &Resolver{store: s}
}

// Matches reports whether the reference string refers to a risk with the
// given id and tag under the permissive matching rule. Only the id-contains
// condition requires a non-empty id; the tag-contains condition is
// unguarded, so a risk without a tag matches every non-empty reference.
// The source taxonomies rely on that breadth for their tagless rows.
func Matches(ref, id, tag string) bool {
	if ref == "" {
		return false
	}
	if ref == id || ref == tag {
		return true
	}
	if strings.Contains(ref, tag) {
		return true
	}
	if id != "" && strings.Contains(ref, id) {
		return true
	}
	return false
}

// matchesRisk reports whether any reference in refs resolves to risk.
func matchesRisk(refs []string, risk schema.Risk) bool {
	for _, ref := range refs {
		if Matches(ref, risk.ID, risk.Tag) {
			return true
		}
	}
	return false
}

// RelatedActions returns the actions whose related-risk references resolve
// to the given risk. An empty result is a valid, expected outcome.
func (r *Resolver) RelatedActions(risk schema.Risk) []schema.Action {
	var related []schema.Action
	for _, a := range r.store.Actions() {
		if matchesRisk(a.RelatedRisks, risk) {
			related = append(related, a)
		}
	}
	return related
}

// RelatedControls returns the controls whose detected-risk references
// resolve to the given risk.
func (r *Resolver) RelatedControls(risk schema.Risk) []schema.Control {
	var related []schema.Control
	for _, c := range r.store.Controls() {
		if matchesRisk(c.DetectsRisks, risk) {
			related = append(related, c)
		}
	}
	return related
}

// RelatedEvaluations returns the evaluations whose assessed-risk references
// resolve to the given risk.
func (r *Resolver) RelatedEvaluations(risk schema.Risk) []schema.Evaluation {
	var related []schema.Evaluation
	for _, e := range r.store.Evaluations() {
		if matchesRisk(e.AssessesRisks, risk) {
			related = append(related, e)
		}
	}
	return related
}
