// Package query provides filtered read access over the unified store.
//
// Every filter field is independently optional and fields combine
// conjunctively: an entity is listed when it satisfies all specified
// fields. Results preserve the store's insertion order; ranking belongs to
// the recommend package.
//
// Risk listings additionally accept a CEL expression bound to the variable
// "risk". Expressions are compiled once and cached; a non-compiling
// expression is a caller contract violation and fails immediately.
package query
