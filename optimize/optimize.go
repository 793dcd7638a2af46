// Package optimize implements the single prune pass
// remove_unreachable_targets. Grounded on
// original_source/lib/src/optimize.rs's Optimizer/OptimizerStats, adapted
// to run over the store.Store interface instead of an in-process oxigraph
// handle.
package optimize

import (
	"context"
	"log/slog"

	"github.com/shaclgo/shacl/shapes"
	"github.com/shaclgo/shacl/store"
)

// Stats reports the effect of the optimiser's passes, matching
// original_source's OptimizerStats.
type Stats struct {
	UnreachableTargetsRemoved int
}

const typeQuery = `SELECT DISTINCT ?type WHERE { ?s rdf:type/rdfs:subClassOf* ?type . }`

// Run prunes every Class target whose class has no instances in the data
// graph, mutating model's node shapes in place, and returns the counts
// of what it removed.
func Run(ctx context.Context, st store.Store, model *shapes.Model, logger *slog.Logger) (Stats, error) {
	if logger == nil {
		logger = slog.Default()
	}
	ds := store.UnionDataset(model.DataGraphIRI)
	solutions, err := st.Select(ctx, ds, typeQuery, nil)
	if err != nil {
		return Stats{}, err
	}
	reachable := make(map[string]bool, len(solutions))
	for _, sol := range solutions {
		if t, ok := sol["type"]; ok {
			reachable[t.Value()] = true
		}
	}

	var stats Stats
	for _, id := range model.NodeShapeIDsInOrder() {
		ns, _ := model.NodeShape(id)
		kept := ns.Targets[:0:0]
		for _, target := range ns.Targets {
			if target.Kind == shapes.TargetClass && !reachable[target.Term.Value()] {
				stats.UnreachableTargetsRemoved++
				continue
			}
			kept = append(kept, target)
		}
		ns.Targets = kept
	}
	logger.Debug("optimize: remove_unreachable_targets complete",
		slog.Int("removed", stats.UnreachableTargetsRemoved))
	return stats, nil
}
