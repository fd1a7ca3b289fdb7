// Package store holds the unified, in-memory risk knowledge base.
//
// A Store runs every registered source adapter exactly once, concatenates
// their output in catalog order and memoizes the result. After Load returns,
// the knowledge base is immutable: every read accessor observes the same
// snapshot until ClearCache discards it. The store is an owned, injected
// object rather than package-level state, so each test can build its own.
package store
