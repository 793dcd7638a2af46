package components

import (
	"context"
	"fmt"
	"strings"

	"github.com/shaclgo/shacl/path"
	"github.com/shaclgo/shacl/shapes"
	"github.com/shaclgo/shacl/sparql"
	"github.com/shaclgo/shacl/store"
	"github.com/shaclgo/shacl/term"
)

// sourceShapeIRI resolves the shape in scope for $currentShape.
func sourceShapeIRI(env Env, vctx shapes.Context) term.Term {
	if vctx.SourceIsNode {
		t, _ := env.Model.TermOf(vctx.SourceNode)
		return t
	}
	t, _ := env.Model.PropertyTermOf(vctx.SourceProp)
	return t
}

// standardBindings builds the $this/$currentShape/$shapesGraph bindings
// every SPARQL-based component pre-binds.
func standardBindings(env Env, vctx shapes.Context) store.Bindings {
	return store.Bindings{
		"this":        vctx.FocusNode,
		"currentShape": sourceShapeIRI(env, vctx),
		"shapesGraph":  term.NewIRI(env.Model.ShapesGraphIRI),
	}
}

// substituteTemplate replaces {?var}/{$var} placeholders in a message
// template with the solution's bound value.
func substituteTemplate(tmpl string, sol store.Solution) string {
	out := tmpl
	for name, v := range sol {
		out = strings.ReplaceAll(out, "{?"+name+"}", v.Value())
		out = strings.ReplaceAll(out, "{$"+name+"}", v.Value())
	}
	return out
}

func assembleQuery(env Env, vctx shapes.Context, prefixes map[string]string, rawQuery string) (string, error) {
	q := rawQuery
	if !vctx.SourceIsNode {
		if vctx.Path != nil {
			q = sparql.SubstitutePath(q, vctx.Path.ToSparql())
		}
	}
	merged, err := sparql.AssemblePrefixes(prefixes)
	if err != nil {
		return "", err
	}
	return sparql.RenderPrefixes(merged) + q, nil
}

// ValidateSparql implements sh:SPARQLConstraint: runs comp.Query as a
// SELECT, pre-binding $this/$currentShape/$shapesGraph (only where
// mentioned), and treats every returned solution as a failure, honouring
// ?value/?path/?message overrides.
func ValidateSparql(ctx context.Context, env Env, vctx shapes.Context, comp *shapes.ComponentDescriptor) ([]shapes.ComponentValidationResult, error) {
	bound := standardBindings(env, vctx)
	required := make([]string, 0, len(bound))
	for k := range bound {
		required = append(required, k)
	}
	query, err := assembleQuery(env, vctx, nil, comp.Query)
	if err != nil {
		return nil, fmt.Errorf("sh:sparql: %w", err)
	}
	mentioned := sparql.Mentions(query, required)
	effective := store.Bindings{}
	for k, v := range bound {
		if mentioned[k] {
			effective[k] = v
		}
	}
	if err := sparql.CheckSafe(query, requiredMentioned(mentioned)); err != nil {
		return nil, fmt.Errorf("sh:sparql: %w", err)
	}

	solutions, err := env.Store.Select(ctx, env.DataGraph, query, effective)
	if err != nil {
		return nil, fmt.Errorf("sh:sparql: %w", err)
	}
	if len(solutions) == 0 {
		return []shapes.ComponentValidationResult{shapes.Passed()}, nil
	}
	results := make([]shapes.ComponentValidationResult, 0, len(solutions))
	for _, sol := range solutions {
		f := shapes.Failure{}
		if v, ok := sol["value"]; ok {
			f.FailedValueNode, f.HasValueNode = v, true
		}
		if p, ok := sol["path"]; ok {
			f.ResultPath = path.Simple{IRI: p.Value()}
		}
		msg := "SPARQL constraint failed"
		for _, m := range comp.Messages {
			msg = substituteTemplate(m.Value(), sol)
			break
		}
		if m, ok := sol["message"]; ok {
			msg = m.Value()
		}
		f.Message = msg
		results = append(results, shapes.Failed(vctx.WithComponent(comp.ID), f))
	}
	return results, nil
}

func requiredMentioned(mentioned map[string]bool) []string {
	var out []string
	for k, v := range mentioned {
		if v {
			out = append(out, k)
		}
	}
	return out
}

// ValidateCustom implements custom sh:ConstraintComponent instances:
// selects the validator body per SelectValidator's preference
// order, pre-binds $this/$currentShape/$shapesGraph/?value plus every
// declared parameter the query mentions, and for ASK validators fails the
// value node on a false result; for SELECT validators every solution is a
// failure, same as sh:SPARQLConstraint.
func ValidateCustom(ctx context.Context, env Env, vctx shapes.Context, comp *shapes.ComponentDescriptor) ([]shapes.ComponentValidationResult, error) {
	if comp.Custom == nil {
		return nil, fmt.Errorf("sh:ConstraintComponent: missing custom component definition")
	}
	v := comp.Custom.SelectValidator(!vctx.SourceIsNode)
	if v == nil {
		return nil, fmt.Errorf("custom component <%s>: no applicable validator body", comp.Custom.IRI)
	}

	query, err := assembleQuery(env, vctx, v.Prefixes, v.Query)
	if err != nil {
		return nil, fmt.Errorf("custom component <%s>: %w", comp.Custom.IRI, err)
	}

	base := standardBindings(env, vctx)
	for name, val := range comp.ParamBindings {
		base[name] = val
	}

	var results []shapes.ComponentValidationResult
	for _, val := range vctx.ValueNodes {
		bindings := store.Bindings{}
		for k, v2 := range base {
			bindings[k] = v2
		}
		bindings["value"] = val

		required := make([]string, 0, len(bindings))
		for k := range bindings {
			required = append(required, k)
		}
		mentioned := sparql.Mentions(query, required)
		effective := store.Bindings{}
		for k, v2 := range bindings {
			if mentioned[k] {
				effective[k] = v2
			}
		}
		if err := sparql.CheckSafe(query, requiredMentioned(mentioned)); err != nil {
			return nil, fmt.Errorf("custom component <%s>: %w", comp.Custom.IRI, err)
		}

		if v.IsAsk {
			ok, err := env.Store.Ask(ctx, env.DataGraph, query, effective)
			if err != nil {
				return nil, fmt.Errorf("custom component <%s>: %w", comp.Custom.IRI, err)
			}
			if !ok {
				msg := "custom constraint failed"
				for _, m := range v.Message {
					msg = m.Value()
					break
				}
				results = append(results, fail(vctx, comp, val, true, msg))
				continue
			}
			results = append(results, shapes.Passed())
			continue
		}

		solutions, err := env.Store.Select(ctx, env.DataGraph, query, effective)
		if err != nil {
			return nil, fmt.Errorf("custom component <%s>: %w", comp.Custom.IRI, err)
		}
		for _, sol := range solutions {
			f := shapes.Failure{FailedValueNode: val, HasValueNode: true}
			if p, ok := sol["path"]; ok {
				f.ResultPath = path.Simple{IRI: p.Value()}
			}
			msg := "custom constraint failed"
			for _, m := range v.Message {
				msg = substituteTemplate(m.Value(), sol)
				break
			}
			if m, ok := sol["message"]; ok {
				msg = m.Value()
			}
			f.Message = msg
			results = append(results, shapes.Failed(vctx.WithComponent(comp.ID), f))
		}
		if len(solutions) == 0 {
			results = append(results, shapes.Passed())
		}
	}
	return orPass(results), nil
}
