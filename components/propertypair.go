package components

import (
	"context"
	"fmt"

	"github.com/shaclgo/shacl/path"
	"github.com/shaclgo/shacl/shapes"
	"github.com/shaclgo/shacl/store"
	"github.com/shaclgo/shacl/term"
)

// predicateValues fetches every object reachable from focus over the
// property-pair component's predicate, via the same EvaluatePath contract
// used for sh:path (a single-predicate path is just path.Simple).
func predicateValues(ctx context.Context, env Env, ds store.Dataset, focus term.Term, predicate string) ([]term.Term, error) {
	return env.Store.EvaluatePath(ctx, ds, focus, path.Simple{IRI: predicate})
}

func contains(values []term.Term, v term.Term) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

// ValidateEquals requires value_nodes to equal, as a set, the values of
// comp.Predicate on the focus node.
func ValidateEquals(ctx context.Context, env Env, vctx shapes.Context, comp *shapes.ComponentDescriptor) ([]shapes.ComponentValidationResult, error) {
	other, err := predicateValues(ctx, env, env.DataGraph, vctx.FocusNode, comp.Predicate)
	if err != nil {
		return nil, fmt.Errorf("sh:equals: %w", err)
	}
	var results []shapes.ComponentValidationResult
	for _, v := range vctx.ValueNodes {
		if !contains(other, v) {
			results = append(results, fail(vctx, comp, v, true, fmt.Sprintf("value is not among the values of <%s>", comp.Predicate)))
		}
	}
	for _, o := range other {
		if !contains(vctx.ValueNodes, o) {
			results = append(results, fail(vctx, comp, o, true, fmt.Sprintf("value of <%s> is not among the value nodes", comp.Predicate)))
		}
	}
	return orPass(results), nil
}

// ValidateDisjoint requires that no value node is also a value of
// comp.Predicate on the focus node.
func ValidateDisjoint(ctx context.Context, env Env, vctx shapes.Context, comp *shapes.ComponentDescriptor) ([]shapes.ComponentValidationResult, error) {
	other, err := predicateValues(ctx, env, env.DataGraph, vctx.FocusNode, comp.Predicate)
	if err != nil {
		return nil, fmt.Errorf("sh:disjoint: %w", err)
	}
	var results []shapes.ComponentValidationResult
	for _, v := range vctx.ValueNodes {
		if contains(other, v) {
			results = append(results, fail(vctx, comp, v, true, fmt.Sprintf("value must be disjoint from the values of <%s>", comp.Predicate)))
			continue
		}
		results = append(results, shapes.Passed())
	}
	return orPass(results), nil
}

// comparablePair implements LessThan/LessThanOrEquals: every value node
// must compare as ordered against every value of comp.Predicate; an
// incomparable pair fails the value node.
func comparablePair(ctx context.Context, env Env, vctx shapes.Context, comp *shapes.ComponentDescriptor, orEqual bool) ([]shapes.ComponentValidationResult, error) {
	other, err := predicateValues(ctx, env, env.DataGraph, vctx.FocusNode, comp.Predicate)
	if err != nil {
		return nil, fmt.Errorf("sh:lessThan: %w", err)
	}
	var results []shapes.ComponentValidationResult
	for _, v := range vctx.ValueNodes {
		ok := true
		for _, o := range other {
			cmp, ordered := compare(v, o)
			if !ordered {
				ok = false
				break
			}
			if orEqual {
				if cmp > 0 {
					ok = false
					break
				}
			} else if cmp >= 0 {
				ok = false
				break
			}
		}
		if !ok {
			verb := "less than"
			if orEqual {
				verb = "less than or equal to"
			}
			results = append(results, fail(vctx, comp, v, true, fmt.Sprintf("value must be %s every value of <%s>", verb, comp.Predicate)))
			continue
		}
		results = append(results, shapes.Passed())
	}
	return orPass(results), nil
}

func ValidateLessThan(ctx context.Context, env Env, vctx shapes.Context, comp *shapes.ComponentDescriptor) ([]shapes.ComponentValidationResult, error) {
	return comparablePair(ctx, env, vctx, comp, false)
}

func ValidateLessThanOrEquals(ctx context.Context, env Env, vctx shapes.Context, comp *shapes.ComponentDescriptor) ([]shapes.ComponentValidationResult, error) {
	return comparablePair(ctx, env, vctx, comp, true)
}
