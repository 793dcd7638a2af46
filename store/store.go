// Package store declares the external-collaborator contract for the RDF
// quad store / SPARQL engine this module treats as out of scope: quad
// iteration, named-graph addressing, SPARQL 1.1 execution with per-query
// variable substitution and dataset control, and property-path
// evaluation. The engine depends only on these interfaces; production
// callers plug in a real triple store, while this package also ships an
// in-memory reference implementation the test suite uses as a fixture.
package store

import (
	"context"
	"fmt"

	"github.com/shaclgo/shacl/path"
	"github.com/shaclgo/shacl/term"
)

// Quad is a single (subject, predicate, object, graph) statement.
type Quad struct {
	Subject   term.Term
	Predicate term.Term
	Object    term.Term
	Graph     string // named graph IRI, or "" for the default graph
}

// Solution is one row of variable bindings returned by a SPARQL SELECT.
type Solution map[string]term.Term

// Bindings is the set of pre-bound variables substituted into a query
// before execution: $this, $currentShape, $shapesGraph, plus
// per-component parameter and value bindings. Keys carry no leading '$'
// or '?'.
type Bindings map[string]term.Term

// Dataset addresses the graphs a query runs over: a default graph
// (typically the union of one or more named graphs) plus any named graphs
// visible via GRAPH clauses.
type Dataset struct {
	// Default is the set of named graph IRIs unioned as the default graph.
	Default []string
	// Named is the set of named graph IRIs visible to GRAPH clauses.
	Named []string
}

// UnionDataset returns a Dataset whose default graph is the union of the
// given named graphs — the data graph as union default graph.
func UnionDataset(graphs ...string) Dataset {
	return Dataset{Default: append([]string(nil), graphs...), Named: append([]string(nil), graphs...)}
}

// Store is the narrow SPARQL-engine contract the validation engine is
// built against. Implementations are free to be backed by any triple
// store; the engine never inspects quads directly except through these
// methods.
type Store interface {
	// AddGraph loads quads into the named graph, creating it if absent.
	AddGraph(ctx context.Context, graphIRI string, quads []Quad) error

	// ReplaceGraph discards any existing content of the named graph and
	// loads quads in its place. Used by skolemisation, which rewrites
	// every quad in a graph and must not retain the pre-rewrite originals.
	ReplaceGraph(ctx context.Context, graphIRI string, quads []Quad) error

	// Quads iterates every quad in the named graph in an implementation
	// defined but stable order.
	Quads(ctx context.Context, graphIRI string) ([]Quad, error)

	// Select runs a SPARQL 1.1 SELECT query over ds, with each key in
	// bindings pre-bound in place of the like-named variable wherever it
	// occurs in the query text, before execution. Solutions are returned
	// in the order the engine produces them.
	Select(ctx context.Context, ds Dataset, query string, bindings Bindings) ([]Solution, error)

	// Ask runs a SPARQL 1.1 ASK query with the same pre-binding contract
	// as Select.
	Ask(ctx context.Context, ds Dataset, query string, bindings Bindings) (bool, error)

	// EvaluatePath returns the ordered value nodes reached from focus by
	// following p over ds's default graph: the engine issues
	// `SELECT ?v WHERE { <focus> <path-render> ?v }` and does not implement
	// path semantics itself.
	EvaluatePath(ctx context.Context, ds Dataset, focus term.Term, p path.Path) ([]term.Term, error)
}

// ErrGraphNotFound is returned when an operation names a graph the store
// has not loaded.
type ErrGraphNotFound struct{ GraphIRI string }

func (e *ErrGraphNotFound) Error() string {
	return fmt.Sprintf("store: graph %q not found", e.GraphIRI)
}
