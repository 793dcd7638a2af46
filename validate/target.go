// Package validate implements the validation driver: resolving targets,
// walking each active shape's property shapes, and dispatching into
// components.Dispatch for every constraint component, collecting the
// (context, failure) pairs the report builder consumes.
package validate

import (
	"context"
	"fmt"

	"github.com/shaclgo/shacl/shapes"
	"github.com/shaclgo/shacl/store"
	"github.com/shaclgo/shacl/term"
)

const (
	classTargetQuery   = `SELECT DISTINCT ?inst WHERE { ?inst rdf:type/rdfs:subClassOf* $class . }`
	subjectsOfQueryFmt = `SELECT DISTINCT ?s WHERE { ?s $predicate ?o . }`
	objectsOfQueryFmt  = `SELECT DISTINCT ?target WHERE { ?subject $predicate ?target . }`
)

// ResolveTargets compiles each of shape's targets to a SPARQL query (or,
// for Node targets, no query at all) against the
// data-graph-as-union-default-graph dataset, and returns the union of
// focus nodes in target-declaration order, de-duplicated.
func ResolveTargets(ctx context.Context, st store.Store, ds store.Dataset, targets []shapes.Target) ([]term.Term, error) {
	seen := make(map[term.Term]bool)
	var out []term.Term
	add := func(t term.Term) {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	for _, target := range targets {
		switch target.Kind {
		case shapes.TargetNode:
			add(target.Term)
		case shapes.TargetClass:
			solutions, err := st.Select(ctx, ds, classTargetQuery, store.Bindings{"class": target.Term})
			if err != nil {
				return nil, fmt.Errorf("target Class(%s): %w", target.Term.Value(), err)
			}
			for _, sol := range solutions {
				if inst, ok := sol["inst"]; ok {
					add(inst)
				}
			}
		case shapes.TargetSubjectsOf:
			solutions, err := st.Select(ctx, ds, subjectsOfQueryFmt, store.Bindings{"predicate": target.Term})
			if err != nil {
				return nil, fmt.Errorf("target SubjectsOf(%s): %w", target.Term.Value(), err)
			}
			for _, sol := range solutions {
				if s, ok := sol["s"]; ok {
					add(s)
				}
			}
		case shapes.TargetObjectsOf:
			solutions, err := st.Select(ctx, ds, objectsOfQueryFmt, store.Bindings{"predicate": target.Term})
			if err != nil {
				return nil, fmt.Errorf("target ObjectsOf(%s): %w", target.Term.Value(), err)
			}
			for _, sol := range solutions {
				if t, ok := sol["target"]; ok {
					add(t)
				}
			}
		}
	}
	return out, nil
}
