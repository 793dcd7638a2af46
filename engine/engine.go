// Package engine is the Validator facade: constructors that wire a
// shapes graph and data graph through shapes/parse, optimize, and
// validate into a Report, plus Graphviz rendering and heatmap helpers on
// top.
package engine

import (
	"context"
	"fmt"
	"os"

	"github.com/shaclgo/shacl/optimize"
	"github.com/shaclgo/shacl/report"
	"github.com/shaclgo/shacl/shapes"
	"github.com/shaclgo/shacl/shapes/complete"
	shapesparse "github.com/shaclgo/shacl/shapes/parse"
	"github.com/shaclgo/shacl/skolem"
	"github.com/shaclgo/shacl/store"
	"github.com/shaclgo/shacl/validate"
)

const (
	defaultShapesGraphIRI = "urn:shacl:shapes"
	defaultDataGraphIRI   = "urn:shacl:data"
)

// Validator is one compiled shapes graph, ready to validate any data
// graph loaded into its Store under DataGraphIRI.
type Validator struct {
	store          store.Store
	model          *shapes.Model
	shapesGraphIRI string
	dataGraphIRI   string
	cfg            *config
}

// New compiles an already-populated Store's shapes graph into a Validator,
// running the parser and optimiser pipeline with panic recovery at this
// API boundary.
func New(ctx context.Context, st store.Store, shapesGraphIRI, dataGraphIRI string, opts ...Option) (v *Validator, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &InternalError{Message: "panic while compiling shapes graph", Cause: fmt.Errorf("%v", r)}
		}
	}()

	cfg := defaultConfig()
	applyOptions(cfg, opts)

	namespaceSeed := cfg.skolemNamespace
	if namespaceSeed == "" {
		namespaceSeed = shapesGraphIRI
	}
	if err := skolem.SkolemizeWithNamespace(ctx, st, dataGraphIRI, namespaceSeed); err != nil {
		return nil, &ParseError{Kind: KindUnreadableSource, Message: "skolemising data graph", Cause: err}
	}

	parseOpts := []shapesparse.Option{}
	if cfg.logger != nil {
		parseOpts = append(parseOpts, shapesparse.WithLogger(cfg.logger))
	}
	model, err := shapesparse.Parse(ctx, st, shapesGraphIRI, dataGraphIRI, parseOpts...)
	if err != nil {
		return nil, &ParseError{Kind: KindMalformedShapesGraph, Message: "parsing shapes graph", Cause: err}
	}

	if !cfg.withoutOptimizer {
		if _, err := optimize.Run(ctx, st, model, cfg.logger); err != nil {
			return nil, &ParseError{Kind: KindMalformedShapesGraph, Message: "optimising shapes graph", Cause: err}
		}
	}

	if err := complete.Run(model); err != nil {
		return nil, &ParseError{Kind: KindFrozenModelInvariant, Message: "freezing shapes model", Cause: err}
	}

	return &Validator{
		store:          st,
		model:          model,
		shapesGraphIRI: shapesGraphIRI,
		dataGraphIRI:   dataGraphIRI,
		cfg:            cfg,
	}, nil
}

// FromFiles reads shapes and data as N-Triples files into a fresh
// in-memory Store and compiles a Validator from them.
func FromFiles(ctx context.Context, shapesPath, dataPath string, opts ...Option) (*Validator, error) {
	return FromSources(ctx, File(shapesPath), File(dataPath), opts...)
}

// FromSources is the general two-graph constructor, accepting either a
// File source or a Graph source for each side. It creates a fresh, empty
// store.Memory and loads each File source into it (shapes under
// urn:shacl:shapes, data under urn:shacl:data). A Graph source loads
// nothing: its IRI is passed to New as is, so it resolves only to a graph
// this call loaded from the other side's File source; any other graph IRI
// is absent from the fresh store and construction fails. New accepts a
// caller-populated Store.
func FromSources(ctx context.Context, shapesSrc, dataSrc Source, opts ...Option) (*Validator, error) {
	st := store.NewMemory()
	shapesIRI, err := loadSource(ctx, st, shapesSrc, defaultShapesGraphIRI)
	if err != nil {
		return nil, err
	}
	dataIRI, err := loadSource(ctx, st, dataSrc, defaultDataGraphIRI)
	if err != nil {
		return nil, err
	}
	return New(ctx, st, shapesIRI, dataIRI, opts...)
}

func loadSource(ctx context.Context, st store.Store, src Source, defaultGraphIRI string) (string, error) {
	switch src.Kind {
	case SourceGraph:
		return src.Value, nil
	case SourceFile:
		f, err := os.Open(src.Value)
		if err != nil {
			return "", &ParseError{Kind: KindUnreadableSource, Message: "opening " + src.Value, Cause: err}
		}
		defer f.Close()
		quads, err := store.ParseNTriples(f, defaultGraphIRI)
		if err != nil {
			return "", &ParseError{Kind: KindUnreadableSource, Message: "parsing " + src.Value, Cause: err}
		}
		if err := st.AddGraph(ctx, defaultGraphIRI, quads); err != nil {
			return "", &ParseError{Kind: KindUnreadableSource, Message: "loading " + src.Value, Cause: err}
		}
		return defaultGraphIRI, nil
	default:
		return "", &ParseError{Kind: KindUnreadableSource, Message: "unknown source kind"}
	}
}

// Validate runs every active shape against its resolved targets and
// returns the accumulated Report.
func (v *Validator) Validate(ctx context.Context) (*report.Report, error) {
	driver := validate.NewDriver(v.store, v.model, v.cfg.logger)
	results, err := driver.Validate(ctx)
	if err != nil {
		return nil, &InternalError{Message: "validation run failed", Cause: err}
	}
	if v.cfg.maxIssues > 0 && len(results) > v.cfg.maxIssues {
		results = results[:v.cfg.maxIssues]
	}
	return report.NewReport(results, v.model), nil
}

// ToGraphviz renders the compiled shapes graph's structure as DOT text.
func (v *Validator) ToGraphviz() string {
	return report.NewReport(nil, v.model).ToGraphviz()
}

// ToGraphvizHeatmap runs validation and renders the shapes graph coloured
// by failure frequency.
func (v *Validator) ToGraphvizHeatmap(ctx context.Context, includeAll bool) (string, error) {
	rep, err := v.Validate(ctx)
	if err != nil {
		return "", err
	}
	return rep.ToGraphvizHeatmap(includeAll), nil
}
