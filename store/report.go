package store

import (
	"time"

	"github.com/qube-ai/nexus/schema"
)

// SourceStatus records the outcome of one source adapter during a load.
type SourceStatus struct {
	// Name is the adapter name.
	Name string `json:"name"`

	// Error is the parse failure, empty on success. A failed source
	// contributes zero entities but never aborts the load.
	Error string `json:"error,omitempty"`

	// Counts holds the entity counts contributed by this source.
	Counts schema.Counts `json:"counts"`
}

// OK reports whether the source parsed successfully.
func (s SourceStatus) OK() bool {
	return s.Error == ""
}

// Report describes one completed load: which sources succeeded, which
// failed and why. It is the operational-visibility replacement for
// per-source log-and-swallow error handling.
type Report struct {
	// ID uniquely identifies this load run.
	ID string `json:"id"`

	// StartedAt is when the load began.
	StartedAt time.Time `json:"started_at"`

	// Duration is the total load time.
	Duration time.Duration `json:"duration"`

	// Sources lists per-adapter outcomes in catalog order.
	Sources []SourceStatus `json:"sources"`

	// Totals holds the entity counts of the merged knowledge base.
	Totals schema.Counts `json:"totals"`
}

// Failed returns the statuses of sources that failed to parse.
func (r Report) Failed() []SourceStatus {
	var failed []SourceStatus
	for _, s := range r.Sources {
		if !s.OK() {
			failed = append(failed, s)
		}
	}
	return failed
}
