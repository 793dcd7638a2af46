package components

import (
	"context"
	"fmt"

	"github.com/shaclgo/shacl/shapes"
)

// rangeCheck is the shared shape of the four range components: every value
// node must satisfy op(value, bound) under XSD numeric/date ordering; a
// value node that isn't comparable to bound fails.
func rangeCheck(vctx shapes.Context, comp *shapes.ComponentDescriptor, op func(cmp int) bool, verb string) []shapes.ComponentValidationResult {
	var results []shapes.ComponentValidationResult
	for _, v := range vctx.ValueNodes {
		cmp, ok := compare(v, comp.Bound)
		if !ok || !op(cmp) {
			results = append(results, fail(vctx, comp, v, true,
				fmt.Sprintf("value must be %s %s", verb, comp.Bound.Value())))
			continue
		}
		results = append(results, shapes.Passed())
	}
	if len(results) == 0 {
		return []shapes.ComponentValidationResult{shapes.Passed()}
	}
	return results
}

func ValidateMinExclusive(_ context.Context, _ Env, vctx shapes.Context, comp *shapes.ComponentDescriptor) ([]shapes.ComponentValidationResult, error) {
	return rangeCheck(vctx, comp, func(cmp int) bool { return cmp > 0 }, "greater than"), nil
}

func ValidateMinInclusive(_ context.Context, _ Env, vctx shapes.Context, comp *shapes.ComponentDescriptor) ([]shapes.ComponentValidationResult, error) {
	return rangeCheck(vctx, comp, func(cmp int) bool { return cmp >= 0 }, "greater than or equal to"), nil
}

func ValidateMaxExclusive(_ context.Context, _ Env, vctx shapes.Context, comp *shapes.ComponentDescriptor) ([]shapes.ComponentValidationResult, error) {
	return rangeCheck(vctx, comp, func(cmp int) bool { return cmp < 0 }, "less than"), nil
}

func ValidateMaxInclusive(_ context.Context, _ Env, vctx shapes.Context, comp *shapes.ComponentDescriptor) ([]shapes.ComponentValidationResult, error) {
	return rangeCheck(vctx, comp, func(cmp int) bool { return cmp <= 0 }, "less than or equal to"), nil
}
