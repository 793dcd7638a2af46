// Package skolem implements blank-node skolemisation: rewriting blank
// nodes in a named graph to IRIs under a per-graph skolem namespace so
// SPARQL queries are deterministic with respect to identity. The SHACL
// specification leaves the preprocessing pass itself external to the
// engine proper; this package is the reference implementation the module
// ships so its own fixtures and the W3C test harness have something
// deterministic to run against.
package skolem

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/shaclgo/shacl/store"
	"github.com/shaclgo/shacl/term"
)

// namespace is the UUID namespace this package derives per-graph
// skolemisation namespaces from. It is a fixed, arbitrary constant (not a
// secret): uuid.NewSHA1 only needs a stable namespace UUID to make its
// output a deterministic function of (namespace, name).
var namespace = uuid.MustParse("b76f9b7e-9c1e-4c9b-9f0b-0b2b9f7a9c1e")

// StableID returns a deterministic, graph-scoped identifier for a blank
// node label: the same (graphIRI, label) pair always yields the same ID,
// across processes and runs.
func StableID(graphIRI, blankNodeLabel string) string {
	return StableIDWithSeed(graphIRI, blankNodeLabel)
}

// StableIDWithSeed is StableID generalised over an arbitrary namespace
// seed instead of always the graph IRI, letting callers pin a namespace
// that outlives any one graph IRI (engine.WithSkolemNamespace).
func StableIDWithSeed(seed, blankNodeLabel string) string {
	seedNS := uuid.NewSHA1(namespace, []byte(seed))
	return uuid.NewSHA1(seedNS, []byte(blankNodeLabel)).String()
}

// Skolemize rewrites every blank node appearing in graphIRI's quads to an
// IRI of the form `<graphIRI>/.well-known/skolem/<stable-id>` and
// replaces the graph's contents in st with the rewritten quads. Safe to
// call twice; skolemising an already-skolemised graph is a no-op because
// no blank nodes remain.
func Skolemize(ctx context.Context, st store.Store, graphIRI string) error {
	return SkolemizeWithNamespace(ctx, st, graphIRI, graphIRI)
}

// SkolemizeWithNamespace is Skolemize with the stable-ID namespace seed
// decoupled from graphIRI, used when the caller wants skolem IRIs stable
// across a graph being reloaded under a different IRI.
func SkolemizeWithNamespace(ctx context.Context, st store.Store, graphIRI, namespaceSeed string) error {
	quads, err := st.Quads(ctx, graphIRI)
	if err != nil {
		return fmt.Errorf("skolem: %w", err)
	}

	rewrite := func(t term.Term) term.Term {
		if !t.IsBlankNode() {
			return t
		}
		return term.NewIRI(fmt.Sprintf("%s/.well-known/skolem/%s", graphIRI, StableIDWithSeed(namespaceSeed, t.Value())))
	}

	out := make([]store.Quad, len(quads))
	for i, q := range quads {
		out[i] = store.Quad{
			Subject:   rewrite(q.Subject),
			Predicate: q.Predicate,
			Object:    rewrite(q.Object),
			Graph:     q.Graph,
		}
	}
	return st.ReplaceGraph(ctx, graphIRI, out)
}
