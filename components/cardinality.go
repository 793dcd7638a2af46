package components

import (
	"context"
	"fmt"

	"github.com/shaclgo/shacl/shapes"
)

// ValidateMinCount passes iff count(value_nodes) >= n. MinCount(0) always
// passes.
func ValidateMinCount(_ context.Context, _ Env, vctx shapes.Context, comp *shapes.ComponentDescriptor) ([]shapes.ComponentValidationResult, error) {
	if len(vctx.ValueNodes) >= comp.Count {
		return []shapes.ComponentValidationResult{shapes.Passed()}, nil
	}
	return []shapes.ComponentValidationResult{
		shapes.Failed(vctx.WithComponent(comp.ID), shapes.Failure{
			Message: fmt.Sprintf("expected at least %d value(s), got %d", comp.Count, len(vctx.ValueNodes)),
		}),
	}, nil
}

// ValidateMaxCount passes iff count(value_nodes) <= n. MaxCount(0) fails
// iff value_nodes is non-empty.
func ValidateMaxCount(_ context.Context, _ Env, vctx shapes.Context, comp *shapes.ComponentDescriptor) ([]shapes.ComponentValidationResult, error) {
	if len(vctx.ValueNodes) <= comp.Count {
		return []shapes.ComponentValidationResult{shapes.Passed()}, nil
	}
	return []shapes.ComponentValidationResult{
		shapes.Failed(vctx.WithComponent(comp.ID), shapes.Failure{
			Message: fmt.Sprintf("expected at most %d value(s), got %d", comp.Count, len(vctx.ValueNodes)),
		}),
	}, nil
}
