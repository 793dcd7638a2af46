// Package shapes holds the parsed, interned representation of a shapes
// graph: node shapes, property shapes, constraint-component descriptors,
// targets, custom component definitions, and the SHACL-AF rule scaffold,
// plus the ShapesModel arena that owns them all by handle, so recursive
// shape references can be represented without pointers.
package shapes

import (
	"fmt"

	"github.com/shaclgo/shacl/ids"
	"github.com/shaclgo/shacl/term"
)

// Model is the immutable (after parse+optimise) owner of every shape,
// component, and intern table produced by the shapes parser. References
// between shapes are handles into this arena, not pointers, so cyclic
// shape graphs (Node/QualifiedValueShape/logical components referencing
// shapes that reference them back) are representable without reference
// counting.
type Model struct {
	ShapesGraphIRI string
	DataGraphIRI   string

	NodeShapeIDs     *ids.Table[ids.NodeShapeID]
	PropertyShapeIDs *ids.Table[ids.PropertyShapeID]
	ComponentIDs     *ids.Table[ids.ComponentID]

	nodeShapes     map[ids.NodeShapeID]*NodeShape
	propertyShapes map[ids.PropertyShapeID]*PropertyShape
	components     map[ids.ComponentID]*ComponentDescriptor

	// CustomComponents indexes custom constraint component definitions by
	// their declaring IRI term, and ParameterOwners maps a declared
	// parameter path to the custom components that declare it, used
	// during discovery of custom component instances.
	CustomComponents map[string]*CustomComponent
	ParameterOwners  map[string][]*CustomComponent

	frozen bool
}

// NewModel creates an empty, writable Model for the given shapes/data
// graph pair.
func NewModel(shapesGraphIRI, dataGraphIRI string) *Model {
	return &Model{
		ShapesGraphIRI:   shapesGraphIRI,
		DataGraphIRI:     dataGraphIRI,
		NodeShapeIDs:     ids.NewTable[ids.NodeShapeID](),
		PropertyShapeIDs: ids.NewTable[ids.PropertyShapeID](),
		ComponentIDs:     ids.NewTable[ids.ComponentID](),
		nodeShapes:       make(map[ids.NodeShapeID]*NodeShape),
		propertyShapes:   make(map[ids.PropertyShapeID]*PropertyShape),
		components:       make(map[ids.ComponentID]*ComponentDescriptor),
		CustomComponents: make(map[string]*CustomComponent),
		ParameterOwners:  make(map[string][]*CustomComponent),
	}
}

// PutNodeShape registers a node shape's body under an already-interned
// handle.
func (m *Model) PutNodeShape(s *NodeShape) {
	m.nodeShapes[s.ID] = s
}

// PutPropertyShape registers a property shape's body under an
// already-interned handle.
func (m *Model) PutPropertyShape(s *PropertyShape) {
	m.propertyShapes[s.ID] = s
}

// PutComponent registers a component descriptor under an already-interned
// handle.
func (m *Model) PutComponent(c *ComponentDescriptor) {
	m.components[c.ID] = c
}

// NodeShape resolves a handle to its body.
func (m *Model) NodeShape(id ids.NodeShapeID) (*NodeShape, bool) {
	s, ok := m.nodeShapes[id]
	return s, ok
}

// PropertyShape resolves a handle to its body.
func (m *Model) PropertyShape(id ids.PropertyShapeID) (*PropertyShape, bool) {
	s, ok := m.propertyShapes[id]
	return s, ok
}

// Component resolves a handle to its descriptor.
func (m *Model) Component(id ids.ComponentID) (*ComponentDescriptor, bool) {
	c, ok := m.components[id]
	return c, ok
}

// NodeShapeIDsInOrder returns every interned node-shape handle in
// discovery order; target sets are iterated in insertion order.
func (m *Model) NodeShapeIDsInOrder() []ids.NodeShapeID {
	return m.NodeShapeIDs.IDs()
}

// TermOf resolves a node-shape handle back to the RDF term that
// identified it, required for reporting.
func (m *Model) TermOf(id ids.NodeShapeID) (term.Term, bool) {
	return m.NodeShapeIDs.Term(id)
}

// PropertyTermOf resolves a property-shape handle back to its RDF term.
func (m *Model) PropertyTermOf(id ids.PropertyShapeID) (term.Term, bool) {
	return m.PropertyShapeIDs.Term(id)
}

// Freeze marks the model read-only, checking that every referenced
// property shape and component exists in the model. Called once, at
// optimiser finish.
func (m *Model) Freeze() error {
	for id, ns := range m.nodeShapes {
		for _, ref := range ns.PropertyShapes {
			if _, ok := m.propertyShapes[ref]; !ok {
				return fmt.Errorf("shapes: node shape %d references unknown property shape %d", id, ref)
			}
		}
		for _, ref := range ns.Components {
			if _, ok := m.components[ref]; !ok {
				return fmt.Errorf("shapes: node shape %d references unknown component %d", id, ref)
			}
		}
	}
	for id, ps := range m.propertyShapes {
		for _, ref := range ps.Components {
			if _, ok := m.components[ref]; !ok {
				return fmt.Errorf("shapes: property shape %d references unknown component %d", id, ref)
			}
		}
	}
	for id, c := range m.components {
		if err := m.checkComponentRefs(id, c); err != nil {
			return err
		}
	}
	m.frozen = true
	return nil
}

func (m *Model) checkComponentRefs(id ids.ComponentID, c *ComponentDescriptor) error {
	checkNode := func(ref ids.NodeShapeID) error {
		if _, ok := m.nodeShapes[ref]; !ok {
			return fmt.Errorf("shapes: component %d references unknown node shape %d", id, ref)
		}
		return nil
	}
	if !c.Shape.IsZero() {
		if err := checkNode(c.Shape); err != nil {
			return err
		}
	}
	for _, ref := range c.Shapes {
		if err := checkNode(ref); err != nil {
			return err
		}
	}
	if !c.PropertyShape.IsZero() {
		if _, ok := m.propertyShapes[c.PropertyShape]; !ok {
			return fmt.Errorf("shapes: component %d references unknown property shape %d", id, c.PropertyShape)
		}
	}
	return nil
}

// Frozen reports whether Freeze has run successfully.
func (m *Model) Frozen() bool { return m.frozen }
