package report

import (
	"fmt"
	"strings"

	"github.com/shaclgo/shacl/ids"
)

// ToGraphviz renders the shapes graph structure (node shapes, their
// property shapes, and each shape's components) as Graphviz DOT text —
// DOT text assembly only, matching original_source's GraphvizOutput trait
// per component; invoking the `dot` binary itself is out of scope.
func (r *Report) ToGraphviz() string {
	var b strings.Builder
	b.WriteString("digraph shapes {\n  rankdir=LR;\n  node [shape=box];\n")
	for _, id := range r.model.NodeShapeIDsInOrder() {
		ns, ok := r.model.NodeShape(id)
		if !ok {
			continue
		}
		shapeTerm, _ := r.model.TermOf(id)
		shapeName := dotID("ns", uint32(id))
		fmt.Fprintf(&b, "  %s [label=%q];\n", shapeName, shapeTerm.String())
		for _, compID := range ns.Components {
			r.writeComponentNode(&b, shapeName, compID)
		}
		for _, propID := range ns.PropertyShapes {
			ps, ok := r.model.PropertyShape(propID)
			if !ok {
				continue
			}
			propName := dotID("ps", uint32(propID))
			fmt.Fprintf(&b, "  %s [label=%q, shape=ellipse];\n", propName, ps.Path.ToSparql())
			fmt.Fprintf(&b, "  %s -> %s;\n", shapeName, propName)
			for _, compID := range ps.Components {
				r.writeComponentNode(&b, propName, compID)
			}
		}
	}
	b.WriteString("}\n")
	return b.String()
}

func (r *Report) writeComponentNode(b *strings.Builder, parent string, compID ids.ComponentID) {
	comp, ok := r.model.Component(compID)
	if !ok {
		return
	}
	name := fmt.Sprintf("%s_comp_%d", parent, uint32(compID))
	fmt.Fprintf(b, "  %s [label=%q, shape=diamond];\n", name, comp.Kind.String())
	fmt.Fprintf(b, "  %s -> %s;\n", parent, name)
}

func dotID(prefix string, n uint32) string {
	return fmt.Sprintf("%s_%d", prefix, n)
}

// ToGraphvizHeatmap renders node shapes and their own components, as
// ToGraphviz does, colouring each component node by its recorded failure
// count from this report. Property shapes and their components are not
// drawn, and failures whose source shape is a property shape are not
// counted. When includeAll is false, node shapes and components with zero
// recorded failures are omitted.
func (r *Report) ToGraphvizHeatmap(includeAll bool) string {
	freq := r.GetComponentFrequencies()
	counts := make(map[string]int)
	for _, f := range freq {
		counts[fmt.Sprintf("%s|%s", f.Shape.Value(), f.Component)] += f.Count
	}

	var b strings.Builder
	b.WriteString("digraph heatmap {\n  rankdir=LR;\n  node [shape=box];\n")
	for _, id := range r.model.NodeShapeIDsInOrder() {
		ns, ok := r.model.NodeShape(id)
		if !ok {
			continue
		}
		shapeTerm, _ := r.model.TermOf(id)
		shapeTotal := 0
		for _, compID := range ns.Components {
			comp, ok := r.model.Component(compID)
			if !ok {
				continue
			}
			shapeTotal += counts[fmt.Sprintf("%s|%s", shapeTerm.Value(), comp.Kind)]
		}
		if shapeTotal == 0 && !includeAll {
			continue
		}
		shapeName := dotID("ns", uint32(id))
		fmt.Fprintf(&b, "  %s [label=%q, style=filled, fillcolor=%q];\n", shapeName, shapeTerm.String(), heatColor(shapeTotal))
		for _, compID := range ns.Components {
			comp, ok := r.model.Component(compID)
			if !ok {
				continue
			}
			n := counts[fmt.Sprintf("%s|%s", shapeTerm.Value(), comp.Kind)]
			if n == 0 && !includeAll {
				continue
			}
			compName := fmt.Sprintf("%s_comp_%d", shapeName, uint32(compID))
			fmt.Fprintf(&b, "  %s [label=%q, style=filled, fillcolor=%q];\n", compName, fmt.Sprintf("%s (%d)", comp.Kind, n), heatColor(n))
			fmt.Fprintf(&b, "  %s -> %s;\n", shapeName, compName)
		}
	}
	b.WriteString("}\n")
	return b.String()
}

// heatColor maps a failure count to a DOT fillcolor, from pale yellow
// (few failures) to red (many).
func heatColor(n int) string {
	switch {
	case n == 0:
		return "white"
	case n < 3:
		return "lightyellow"
	case n < 10:
		return "orange"
	default:
		return "red"
	}
}
