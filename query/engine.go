package query

import (
	"fmt"
	"strings"

	"github.com/qube-ai/nexus/schema"
	"github.com/qube-ai/nexus/store"
)

// Engine answers filtered listing queries over a store snapshot.
type Engine struct {
	store *store.Store
	cel   *celFilter
}

// NewEngine returns an Engine over the given store.
func NewEngine(s *store.Store) *Engine {
	return &Engine{store: s, cel: newCELFilter()}
}

// Risks returns the risks matching every specified field of the filter, in
// insertion order. An invalid Expr returns an error immediately.
func (e *Engine) Risks(filter RiskFilter) ([]schema.Risk, error) {
	var prg *compiledExpr
	if filter.Expr != "" {
		var err error
		prg, err = e.cel.compile(filter.Expr)
		if err != nil {
			return nil, fmt.Errorf("invalid risk filter expression: %w", err)
		}
	}

	search := strings.ToLower(filter.Search)

	var out []schema.Risk
	for _, r := range e.store.Risks() {
		if filter.Taxonomy != "" && r.Taxonomy != filter.Taxonomy {
			continue
		}
		if filter.Group != "" && r.Group != filter.Group {
			continue
		}
		if filter.Tag != "" && r.Tag != filter.Tag {
			continue
		}
		if filter.Type != "" && r.Type != filter.Type {
			continue
		}
		if search != "" && !strings.Contains(r.SearchText(), search) {
			continue
		}
		if prg != nil {
			ok, err := prg.eval(r)
			if err != nil {
				return nil, fmt.Errorf("risk filter expression failed: %w", err)
			}
			if !ok {
				continue
			}
		}
		out = append(out, r)
	}
	return out, nil
}

// Actions returns the actions matching every specified field of the filter.
func (e *Engine) Actions(filter ActionFilter) []schema.Action {
	search := strings.ToLower(filter.Search)

	var out []schema.Action
	for _, a := range e.store.Actions() {
		if filter.Taxonomy != "" && a.Taxonomy != filter.Taxonomy {
			continue
		}
		if filter.RelatedRisk != "" && !containsString(a.RelatedRisks, filter.RelatedRisk) {
			continue
		}
		if filter.ActorTask != "" && !containsString(a.ActorTasks, filter.ActorTask) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(a.Name), search) &&
			!strings.Contains(strings.ToLower(a.Description), search) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// Controls returns the controls matching every specified field of the
// filter. Controls lacking an id or name are discarded at load time, so
// no filter ever lists them.
func (e *Engine) Controls(filter ControlFilter) []schema.Control {
	search := strings.ToLower(filter.Search)

	var out []schema.Control
	for _, c := range e.store.Controls() {
		if !c.Valid() {
			continue
		}
		if filter.Taxonomy != "" && c.Taxonomy != filter.Taxonomy {
			continue
		}
		if filter.DetectsRisk != "" && !containsString(c.DetectsRisks, filter.DetectsRisk) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(c.Name), search) &&
			!strings.Contains(strings.ToLower(c.Description), search) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Evaluations returns the evaluations matching every specified field of
// the filter.
func (e *Engine) Evaluations(filter EvaluationFilter) []schema.Evaluation {
	search := strings.ToLower(filter.Search)

	var out []schema.Evaluation
	for _, ev := range e.store.Evaluations() {
		if filter.AssessesRisk != "" && !containsString(ev.AssessesRisks, filter.AssessesRisk) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(ev.Name), search) &&
			!strings.Contains(strings.ToLower(ev.Description), search) {
			continue
		}
		out = append(out, ev)
	}
	return out
}
