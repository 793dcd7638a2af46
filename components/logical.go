package components

import (
	"context"
	"fmt"

	"github.com/shaclgo/shacl/shapes"
	"github.com/shaclgo/shacl/store"
)

// ValidateNot passes iff the focus node does NOT conform to comp.Shape.
func ValidateNot(ctx context.Context, env Env, vctx shapes.Context, comp *shapes.ComponentDescriptor) ([]shapes.ComponentValidationResult, error) {
	ok, err := env.Conforms(ctx, vctx.FocusNode, comp.Shape)
	if err != nil {
		return nil, fmt.Errorf("sh:not: %w", err)
	}
	if ok {
		return []shapes.ComponentValidationResult{fail(vctx, comp, vctx.FocusNode, true, "value conforms to the negated shape")}, nil
	}
	return []shapes.ComponentValidationResult{shapes.Passed()}, nil
}

// ValidateAnd passes iff the focus node conforms to every shape in
// comp.Shapes.
func ValidateAnd(ctx context.Context, env Env, vctx shapes.Context, comp *shapes.ComponentDescriptor) ([]shapes.ComponentValidationResult, error) {
	for _, sh := range comp.Shapes {
		ok, err := env.Conforms(ctx, vctx.FocusNode, sh)
		if err != nil {
			return nil, fmt.Errorf("sh:and: %w", err)
		}
		if !ok {
			return []shapes.ComponentValidationResult{fail(vctx, comp, vctx.FocusNode, true, "value does not conform to every and-ed shape")}, nil
		}
	}
	return []shapes.ComponentValidationResult{shapes.Passed()}, nil
}

// ValidateOr passes iff the focus node conforms to at least one shape in
// comp.Shapes.
func ValidateOr(ctx context.Context, env Env, vctx shapes.Context, comp *shapes.ComponentDescriptor) ([]shapes.ComponentValidationResult, error) {
	for _, sh := range comp.Shapes {
		ok, err := env.Conforms(ctx, vctx.FocusNode, sh)
		if err != nil {
			return nil, fmt.Errorf("sh:or: %w", err)
		}
		if ok {
			return []shapes.ComponentValidationResult{shapes.Passed()}, nil
		}
	}
	return []shapes.ComponentValidationResult{fail(vctx, comp, vctx.FocusNode, true, "value does not conform to any or-ed shape")}, nil
}

// ValidateXone passes iff the focus node conforms to exactly one shape in
// comp.Shapes.
func ValidateXone(ctx context.Context, env Env, vctx shapes.Context, comp *shapes.ComponentDescriptor) ([]shapes.ComponentValidationResult, error) {
	count := 0
	for _, sh := range comp.Shapes {
		ok, err := env.Conforms(ctx, vctx.FocusNode, sh)
		if err != nil {
			return nil, fmt.Errorf("sh:xone: %w", err)
		}
		if ok {
			count++
		}
	}
	if count == 1 {
		return []shapes.ComponentValidationResult{shapes.Passed()}, nil
	}
	return []shapes.ComponentValidationResult{
		fail(vctx, comp, vctx.FocusNode, true, fmt.Sprintf("value conforms to %d of the xone-ed shapes, expected exactly 1", count)),
	}, nil
}

// ValidateNode requires every value node (not just the focus node) to
// conform to comp.Shape.
func ValidateNode(ctx context.Context, env Env, vctx shapes.Context, comp *shapes.ComponentDescriptor) ([]shapes.ComponentValidationResult, error) {
	var results []shapes.ComponentValidationResult
	for _, v := range vctx.ValueNodes {
		ok, err := env.Conforms(ctx, v, comp.Shape)
		if err != nil {
			return nil, fmt.Errorf("sh:node: %w", err)
		}
		if !ok {
			results = append(results, fail(vctx, comp, v, true, "value does not conform to the referenced node shape"))
			continue
		}
		results = append(results, shapes.Passed())
	}
	return orPass(results), nil
}

// ValidateProperty delegates to the property shape comp.PropertyShape,
// treated as rooted at the same value nodes.
func ValidateProperty(ctx context.Context, env Env, vctx shapes.Context, comp *shapes.ComponentDescriptor) ([]shapes.ComponentValidationResult, error) {
	results, err := env.ValidateProperty(ctx, vctx, comp.PropertyShape)
	if err != nil {
		return nil, fmt.Errorf("sh:property: %w", err)
	}
	return results, nil
}

// ValidateQualifiedValueShape counts the value nodes conforming to
// comp.Shape (excluding those already claimed by sibling qualified
// components when comp.Disjoint is set) and compares the count against
// comp.QMin/QMax.
func ValidateQualifiedValueShape(ctx context.Context, env Env, vctx shapes.Context, comp *shapes.ComponentDescriptor) ([]shapes.ComponentValidationResult, error) {
	var claimed map[string]bool
	if comp.Disjoint && env.QualifiedSiblingValueNodes != nil && !vctx.SourceIsNode {
		claimed = map[string]bool{}
		for t := range env.QualifiedSiblingValueNodes(vctx.SourceProp, comp.ID) {
			claimed[t.Value()] = true
		}
	}
	count := 0
	for _, v := range vctx.ValueNodes {
		if claimed != nil && claimed[v.Value()] {
			continue
		}
		ok, err := env.Conforms(ctx, v, comp.Shape)
		if err != nil {
			return nil, fmt.Errorf("sh:qualifiedValueShape: %w", err)
		}
		if ok {
			count++
		}
	}
	if comp.HasQMin && count < comp.QMin {
		return []shapes.ComponentValidationResult{
			fail(vctx, comp, vctx.FocusNode, true, fmt.Sprintf("only %d value node(s) conform to the qualified shape, expected at least %d", count, comp.QMin)),
		}, nil
	}
	if comp.HasQMax && count > comp.QMax {
		return []shapes.ComponentValidationResult{
			fail(vctx, comp, vctx.FocusNode, true, fmt.Sprintf("%d value node(s) conform to the qualified shape, expected at most %d", count, comp.QMax)),
		}, nil
	}
	return []shapes.ComponentValidationResult{shapes.Passed()}, nil
}

const closedQuery = `SELECT ?p ?o WHERE { $this ?p ?o . }`

// ValidateClosed requires every predicate used on the focus node to be
// either declared by a sibling property shape's sh:path or listed in
// comp.Ignored.
func ValidateClosed(ctx context.Context, env Env, vctx shapes.Context, comp *shapes.ComponentDescriptor) ([]shapes.ComponentValidationResult, error) {
	allowed := map[string]bool{}
	if env.SiblingPropertyPaths != nil {
		for _, p := range env.SiblingPropertyPaths(vctx.SourceNode, 0) {
			allowed[p] = true
		}
	}
	for _, ig := range comp.Ignored {
		allowed[ig.Value()] = true
	}

	solutions, err := env.Store.Select(ctx, env.DataGraph, closedQuery, store.Bindings{"this": vctx.FocusNode})
	if err != nil {
		return nil, fmt.Errorf("sh:closed: %w", err)
	}
	var results []shapes.ComponentValidationResult
	for _, sol := range solutions {
		p, ok := sol["p"]
		if !ok || allowed[p.Value()] {
			continue
		}
		o := sol["o"]
		results = append(results, fail(vctx, comp, o, true, fmt.Sprintf("predicate <%s> is not permitted by this closed shape", p.Value())))
	}
	return orPass(results), nil
}
