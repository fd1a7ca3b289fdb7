// Package recommend ranks knowledge base risks against a profile of an AI
// system under assessment.
//
// Scoring is an additive heuristic over the risk's text, not a trained
// model: every point in a score is attributable to a specific profile
// signal, which keeps "why was this risk recommended" answerable for a
// compliance audience. The signal weights and vocabularies are exposed as
// configuration so the weighting scheme can be tuned without touching the
// matching logic.
package recommend
