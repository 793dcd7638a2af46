package validate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shaclgo/shacl/components"
	"github.com/shaclgo/shacl/ids"
	"github.com/shaclgo/shacl/path"
	"github.com/shaclgo/shacl/shapes"
	"github.com/shaclgo/shacl/store"
	"github.com/shaclgo/shacl/term"
)

// Result is one recorded failure: the context it occurred in, the failure
// payload a component produced, and the severity of the shape that owns
// the failing component — sh:resultSeverity, defaulting to sh:Violation.
type Result struct {
	Context  shapes.Context
	Failure  shapes.Failure
	Severity shapes.Severity
}

// Driver runs every active shape against its resolved target set and
// dispatches into components.Dispatch for each constraint component. A
// Driver is used for exactly one validation run; it is not safe to reuse
// concurrently since recursive conformance checks are synchronous and
// share no mutable state beyond the read-only Model/Store.
type Driver struct {
	Store     store.Store
	Model     *shapes.Model
	DataGraph store.Dataset
	Logger    *slog.Logger
}

// NewDriver builds a Driver over an already-parsed, frozen model.
func NewDriver(st store.Store, model *shapes.Model, logger *slog.Logger) *Driver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Driver{
		Store:     st,
		Model:     model,
		DataGraph: store.UnionDataset(model.DataGraphIRI),
		Logger:    logger,
	}
}

// Validate runs every non-deactivated node shape against its resolved
// target set, in shape-declaration order; target sets are iterated in
// insertion order.
func (d *Driver) Validate(ctx context.Context) ([]Result, error) {
	var all []Result
	for _, id := range d.Model.NodeShapeIDsInOrder() {
		shape, ok := d.Model.NodeShape(id)
		if !ok || shape.Deactivated || len(shape.Targets) == 0 {
			continue
		}
		focusNodes, err := ResolveTargets(ctx, d.Store, d.DataGraph, shape.Targets)
		if err != nil {
			return nil, fmt.Errorf("resolving targets for shape %v: %w", id, err)
		}
		for _, focus := range focusNodes {
			results, err := d.validateNodeShape(ctx, focus, id)
			if err != nil {
				return nil, err
			}
			all = append(all, results...)
		}
	}
	return all, nil
}

// conforms implements the recursive conformance sub-check
// Node/Not/And/Or/Xone/QualifiedValueShape need: run shape's full
// validation against focus as the sole focus node, reporting whether it
// produced zero failures without surfacing anything into the caller's
// result list.
func (d *Driver) conforms(ctx context.Context, focus term.Term, shape ids.NodeShapeID) (bool, error) {
	results, err := d.validateNodeShape(ctx, focus, shape)
	if err != nil {
		return false, err
	}
	return len(results) == 0, nil
}

func (d *Driver) validateNodeShape(ctx context.Context, focus term.Term, shapeID ids.NodeShapeID) ([]Result, error) {
	shape, ok := d.Model.NodeShape(shapeID)
	if !ok {
		return nil, fmt.Errorf("validate: unknown node shape handle %v", shapeID)
	}
	if shape.Deactivated {
		return nil, nil
	}
	vctx := shapes.NewNodeContext(focus, shapeID)

	var results []Result
	for _, compID := range shape.Components {
		comp, ok := d.Model.Component(compID)
		if !ok {
			continue
		}
		fails, err := d.invokeComponent(ctx, vctx, comp)
		if err != nil {
			return nil, err
		}
		for _, f := range fails {
			results = append(results, d.toResult(f, shape.Severity, shape.Messages))
		}
	}
	for _, propID := range shape.PropertyShapes {
		propResults, err := d.validatePropertyShape(ctx, vctx, propID)
		if err != nil {
			return nil, err
		}
		results = append(results, propResults...)
	}
	return results, nil
}

func (d *Driver) validatePropertyShape(ctx context.Context, parent shapes.Context, propID ids.PropertyShapeID) ([]Result, error) {
	ps, ok := d.Model.PropertyShape(propID)
	if !ok {
		return nil, fmt.Errorf("validate: unknown property shape handle %v", propID)
	}
	if ps.Deactivated {
		return nil, nil
	}
	valueNodes, err := d.Store.EvaluatePath(ctx, d.DataGraph, parent.FocusNode, ps.Path)
	if err != nil {
		return nil, fmt.Errorf("evaluating path for property shape %v: %w", propID, err)
	}
	pctx := parent.Descend(propID, ps.Path, valueNodes)

	var results []Result
	for _, compID := range ps.Components {
		comp, ok := d.Model.Component(compID)
		if !ok {
			continue
		}
		fails, err := d.invokeComponent(ctx, pctx, comp)
		if err != nil {
			return nil, err
		}
		for _, f := range fails {
			results = append(results, d.toResult(f, ps.Severity, ps.Messages))
		}
	}
	return results, nil
}

// invokeComponent dispatches comp against vctx, converting a component-
// local error into a single recorded failure attached to the current
// context rather than aborting the run.
func (d *Driver) invokeComponent(ctx context.Context, vctx shapes.Context, comp *shapes.ComponentDescriptor) ([]shapes.ComponentValidationResult, error) {
	validator, ok := components.Dispatch[comp.Kind]
	if !ok {
		return nil, fmt.Errorf("validate: no validator registered for %s", comp.Kind)
	}
	env := d.envFor(vctx)
	results, err := validator(ctx, env, vctx, comp)
	if err != nil {
		return []shapes.ComponentValidationResult{
			shapes.Failed(vctx.WithComponent(comp.ID), shapes.Failure{Message: err.Error()}),
		}, nil
	}
	var fails []shapes.ComponentValidationResult
	for _, r := range results {
		if !r.Pass {
			fails = append(fails, r)
		}
	}
	return fails, nil
}

func (d *Driver) envFor(vctx shapes.Context) components.Env {
	return components.Env{
		Store:     d.Store,
		Model:     d.Model,
		DataGraph: d.DataGraph,
		Conforms:  d.conforms,
		ValidateProperty: func(ctx context.Context, parent shapes.Context, propShape ids.PropertyShapeID) ([]shapes.ComponentValidationResult, error) {
			results, err := d.validatePropertyShape(ctx, parent, propShape)
			if err != nil {
				return nil, err
			}
			if len(results) == 0 {
				return []shapes.ComponentValidationResult{shapes.Passed()}, nil
			}
			out := make([]shapes.ComponentValidationResult, len(results))
			for i, r := range results {
				out[i] = shapes.Failed(r.Context, r.Failure)
			}
			return out, nil
		},
		SiblingPropertyPaths: func(owner ids.NodeShapeID, exclude ids.PropertyShapeID) []string {
			ns, ok := d.Model.NodeShape(owner)
			if !ok {
				return nil
			}
			var out []string
			for _, pid := range ns.PropertyShapes {
				if pid == exclude {
					continue
				}
				sibling, ok := d.Model.PropertyShape(pid)
				if !ok {
					continue
				}
				if simple, ok := sibling.Path.(path.Simple); ok {
					out = append(out, simple.IRI)
				}
			}
			return out
		},
		QualifiedSiblingValueNodes: func(owner ids.PropertyShapeID, self ids.ComponentID) map[term.Term]bool {
			ps, ok := d.Model.PropertyShape(owner)
			if !ok {
				return nil
			}
			claimed := map[term.Term]bool{}
			for _, compID := range ps.Components {
				if compID == self {
					continue
				}
				sibling, ok := d.Model.Component(compID)
				if !ok || sibling.Kind != shapes.KindQualifiedValueShape {
					continue
				}
				for _, v := range vctx.ValueNodes {
					ok2, err := d.conforms(context.Background(), v, sibling.Shape)
					if err == nil && ok2 {
						claimed[v] = true
					}
				}
			}
			return claimed
		},
	}
}

// toResult resolves the shape-level severity and message override onto a
// failed component result. A shape's own sh:message takes precedence over
// the component's generated message when present.
func (d *Driver) toResult(r shapes.ComponentValidationResult, severity shapes.Severity, messages []term.Term) Result {
	f := r.Failure
	if len(messages) > 0 {
		f.Message = messages[0].Value()
	}
	return Result{Context: r.Context, Failure: f, Severity: severity}
}
