// Package shacl provides a SHACL Core (and SHACL-SPARQL) validation engine
// for Go applications.
//
// shacl validates an RDF data graph against an RDF shapes graph: a shapes
// parser resolves node shapes, property shapes, and constraint components
// from a store.Store; an optimiser prunes unreachable targets; a validation
// driver walks each shape's resolved targets and dispatches into one
// validator per constraint component family; and a report builder renders
// the accumulated results as a SHACL validation-report RDF graph, Turtle/
// N-Triples text, or a Graphviz DOT rendering of the shapes graph itself.
//
// # Architecture Overview
//
// The module is organized into layers with strict dependency ordering:
//
//	Foundation tier (no internal dependencies):
//	  - term: RDF term model (IRI, BlankNode, Literal)
//	  - ids: dense, reversible intern tables for shape/component handles
//	  - path: SHACL property-path variant tree, with SPARQL rendering
//
//	External-collaborator tier:
//	  - store: Store/Dataset contract for the RDF quad store and SPARQL
//	    engine this module treats as out of scope, plus an in-memory
//	    reference implementation used by the test suite
//
//	Core library tier:
//	  - shapes: NodeShape, PropertyShape, ComponentDescriptor, Target,
//	    Model, the SHACL-AF rules scaffold
//	  - shapes/parse: shapes-graph walk into a Model
//	  - optimize: unreachable-target pruning
//	  - sparql: prefix assembly and pre-binding helpers for the
//	    SPARQL-based constraint component and custom components
//	  - components: one validator per constraint-component family
//	  - validate: Context, Driver, the recursive validation loop
//	  - report: ReportBuilder, RDF report-graph assembly, Turtle/
//	    N-Triples serialisation, Graphviz rendering
//	  - skolem: deterministic blank-node skolemisation
//
//	Facade tier:
//	  - engine: Validator, Source, New/FromFiles/FromSources
//
// # Entry Points
//
// Validating a data graph against a shapes graph read from N-Triples files:
//
//	import "github.com/shaclgo/shacl/engine"
//
//	v, err := engine.FromFiles(ctx, "shapes.nt", "data.nt")
//	if err != nil {
//	    // malformed shapes graph, unreadable source, or internal error
//	}
//	report, err := v.Validate(ctx)
//	if err != nil {
//	    // internal error
//	}
//	if !report.Conforms() {
//	    fmt.Println(report.Dump())
//	}
//
// Validating against a shapes graph already loaded into a caller-supplied
// store.Store:
//
//	import "github.com/shaclgo/shacl/engine"
//
//	v, err := engine.New(ctx, myStore, "urn:shapes", "urn:data",
//	    engine.WithMaxIssues(100))
//
// # Subpackages
//
// See the individual package documentation for detailed usage:
//
//   - [github.com/shaclgo/shacl/term]: RDF term model
//   - [github.com/shaclgo/shacl/ids]: dense intern tables
//   - [github.com/shaclgo/shacl/path]: SHACL property paths
//   - [github.com/shaclgo/shacl/store]: quad store / SPARQL engine contract
//   - [github.com/shaclgo/shacl/shapes]: parsed shapes-graph model
//   - [github.com/shaclgo/shacl/shapes/parse]: shapes-graph parser
//   - [github.com/shaclgo/shacl/optimize]: target-reachability optimiser
//   - [github.com/shaclgo/shacl/components]: constraint component validators
//   - [github.com/shaclgo/shacl/validate]: the validation driver
//   - [github.com/shaclgo/shacl/report]: validation-report assembly
//   - [github.com/shaclgo/shacl/skolem]: blank-node skolemisation
//   - [github.com/shaclgo/shacl/engine]: the Validator facade
package shacl
