// Package schema defines the entity types of the unified risk knowledge
// base: taxonomies, risk groups, risks, mitigating actions, detection
// controls, evaluations, benchmark metadata cards and incidents.
//
// The field names and YAML tags mirror the section and attribute names used
// by the upstream taxonomy documents (a LinkML-derived schema), so each
// source file unmarshals directly into a Dataset without a mapping layer.
// Entities are plain data: all behavior lives in the source, store, query
// and recommend packages.
package schema
