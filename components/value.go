package components

import (
	"context"
	"fmt"

	"github.com/shaclgo/shacl/shapes"
	"github.com/shaclgo/shacl/store"
	"github.com/shaclgo/shacl/term"
)

// ValidateHasValue passes iff comp.Value is among the value nodes.
func ValidateHasValue(_ context.Context, _ Env, vctx shapes.Context, comp *shapes.ComponentDescriptor) ([]shapes.ComponentValidationResult, error) {
	if contains(vctx.ValueNodes, comp.Value) {
		return []shapes.ComponentValidationResult{shapes.Passed()}, nil
	}
	return []shapes.ComponentValidationResult{
		fail(vctx, comp, term.Term{}, false, fmt.Sprintf("missing required value %s", comp.Value.Value())),
	}, nil
}

// ValidateIn requires every value node to be among comp.Values.
func ValidateIn(_ context.Context, _ Env, vctx shapes.Context, comp *shapes.ComponentDescriptor) ([]shapes.ComponentValidationResult, error) {
	var results []shapes.ComponentValidationResult
	for _, v := range vctx.ValueNodes {
		if !contains(comp.Values, v) {
			results = append(results, fail(vctx, comp, v, true, "value is not in the allowed list"))
			continue
		}
		results = append(results, shapes.Passed())
	}
	return orPass(results), nil
}

const classQuery = `SELECT DISTINCT ?type WHERE { $this rdf:type/rdfs:subClassOf* ?type . }`

// ValidateClass requires every value node to have comp.Class in its
// rdf:type/rdfs:subClassOf* closure. IRIs and blank nodes only; literals
// can never have rdf:type.
func ValidateClass(ctx context.Context, env Env, vctx shapes.Context, comp *shapes.ComponentDescriptor) ([]shapes.ComponentValidationResult, error) {
	var results []shapes.ComponentValidationResult
	for _, v := range vctx.ValueNodes {
		if v.IsLiteral() {
			results = append(results, fail(vctx, comp, v, true, fmt.Sprintf("value must be an instance of <%s>", comp.Class.Value())))
			continue
		}
		solutions, err := env.Store.Select(ctx, env.DataGraph, classQuery, store.Bindings{"this": v})
		if err != nil {
			return nil, fmt.Errorf("sh:class: %w", err)
		}
		found := false
		for _, sol := range solutions {
			if t, ok := sol["type"]; ok && t == comp.Class {
				found = true
				break
			}
		}
		if !found {
			results = append(results, fail(vctx, comp, v, true, fmt.Sprintf("value must be an instance of <%s>", comp.Class.Value())))
			continue
		}
		results = append(results, shapes.Passed())
	}
	return orPass(results), nil
}

// ValidateDatatype requires every value node to be a literal with exactly
// comp.Datatype as its datatype (language-tagged literals carry
// rdf:langString and only match sh:datatype rdf:langString).
func ValidateDatatype(_ context.Context, _ Env, vctx shapes.Context, comp *shapes.ComponentDescriptor) ([]shapes.ComponentValidationResult, error) {
	var results []shapes.ComponentValidationResult
	for _, v := range vctx.ValueNodes {
		if !v.IsLiteral() || v.Datatype() != comp.Datatype.Value() {
			results = append(results, fail(vctx, comp, v, true, fmt.Sprintf("value must be a literal of datatype <%s>", comp.Datatype.Value())))
			continue
		}
		results = append(results, shapes.Passed())
	}
	return orPass(results), nil
}

// ValidateNodeKind requires every value node's term kind to be allowed by
// comp.NodeKind's bitset.
func ValidateNodeKind(_ context.Context, _ Env, vctx shapes.Context, comp *shapes.ComponentDescriptor) ([]shapes.ComponentValidationResult, error) {
	var results []shapes.ComponentValidationResult
	for _, v := range vctx.ValueNodes {
		if !comp.NodeKind.Allows(v) {
			results = append(results, fail(vctx, comp, v, true, "value does not have the required node kind"))
			continue
		}
		results = append(results, shapes.Passed())
	}
	return orPass(results), nil
}
