// Package source parses taxonomy documents into knowledge base datasets.
//
// Each source document is handled by one Adapter. Adapters are independent:
// a malformed document makes its adapter return an error and contribute
// nothing, and the overall load proceeds with the remaining sources. The
// store package aggregates per-adapter results into a load report.
//
// The built-in adapters read YAML documents from an injected fs.FS, which
// is how tests substitute fixtures for the shipped data directory.
package source
