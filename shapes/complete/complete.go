// Package complete runs the cross-reference and cycle-tolerant invariant
// checks a parsed ShapesModel must satisfy, beyond the structural checks
// shapes.Model.Freeze already performs at the handle level (grounded on
// the teacher's schema/internal/complete package, which resolves
// TypeRef/alias references and detects cycles after an initial parse
// pass).
package complete

import (
	"fmt"

	"github.com/shaclgo/shacl/ids"
	"github.com/shaclgo/shacl/shapes"
)

// Run checks, beyond Freeze's handle-existence check, that every node
// shape's property-shape references resolve and that no Not/Node
// component references its own owning node shape, then freezes the model. It is idempotent; calling it twice is a no-op after
// the first success.
func Run(model *shapes.Model) error {
	if model.Frozen() {
		return nil
	}
	for _, id := range model.NodeShapeIDsInOrder() {
		ns, _ := model.NodeShape(id)
		for _, ref := range ns.PropertyShapes {
			if _, ok := model.PropertyShape(ref); !ok {
				return fmt.Errorf("shapes/complete: node shape %d: dangling property shape reference %d", id, ref)
			}
		}
	}
	if err := checkNoUnresolvableComponentCycles(model); err != nil {
		return err
	}
	return model.Freeze()
}

// checkNoUnresolvableComponentCycles only rejects a degenerate self-loop
// (a Not/Node component referencing its own owning node shape with
// nothing else in the cycle), which can never converge. General cycles
// through property shapes and sibling node shapes are legitimate SHACL and
// are left to the validator, which bounds recursion via the driver's
// trace rather than rejecting them here.
func checkNoUnresolvableComponentCycles(model *shapes.Model) error {
	for _, id := range model.NodeShapeIDsInOrder() {
		ns, _ := model.NodeShape(id)
		for _, compID := range ns.Components {
			c, ok := model.Component(compID)
			if !ok {
				continue
			}
			if selfReferential(c, id) {
				return fmt.Errorf("shapes/complete: node shape %d has a %s component referencing itself directly", id, c.Kind)
			}
		}
	}
	return nil
}

func selfReferential(c *shapes.ComponentDescriptor, owner ids.NodeShapeID) bool {
	switch c.Kind {
	case shapes.KindNot, shapes.KindNode:
		return c.Shape == owner
	default:
		return false
	}
}
