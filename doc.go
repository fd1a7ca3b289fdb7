// Package nexus is a risk knowledge integration and recommendation engine
// for AI governance tooling.
//
// The engine ingests independently authored risk taxonomies (IBM Risk
// Atlas, AIR 2024, Credo UCF, the MIT AI Risk Repository, NIST AI RMF,
// OWASP LLM Top 10, AILuminate, guard-model dimension catalogs and
// others), merges them into one addressable knowledge base of risks,
// mitigations, detection controls, evaluations and incidents, resolves the
// loose cross-references between those entity classes, and ranks risks for
// relevance against a profile of an AI system under assessment.
//
// # Architecture
//
//   - source: one adapter per taxonomy document; a failing source is
//     skipped, the load continues (partial-success semantics)
//   - store: the unified in-memory knowledge base, loaded once, immutable
//     until an explicit cache clear
//   - query: conjunctive filtered listings, with optional CEL expressions
//     on risk listings
//   - xref: permissive cross-reference resolution between risks and the
//     entities that mention them
//   - enrich: denormalized risk records with display names, resolved
//     references and a normalized source label
//   - stats: entity counts by taxonomy and group
//   - recommend: deterministic, explainable relevance ranking
//
// This package ties those components together behind the Engine facade.
// The engine is a library boundary: it defines no wire protocol, performs
// no authentication and persists nothing. The knowledge base is global,
// read-only reference data; tenant-specific assessment state belongs to
// the caller.
//
// # Getting Started
//
//	engine := nexus.New(nexus.WithDataDir("data"))
//	if _, err := engine.Load(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	recs, err := engine.Recommend(ctx, recommend.Profile{
//	    GenAI:        true,
//	    PublicFacing: true,
//	    DataTypes:    []string{"Health Records"},
//	})
//
// After the first Load all reads are pure in-memory computation and safe
// for unbounded concurrent callers.
package nexus
