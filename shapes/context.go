package shapes

import (
	"github.com/shaclgo/shacl/ids"
	"github.com/shaclgo/shacl/path"
	"github.com/shaclgo/shacl/term"
)

// TraceItemKind identifies which handle space a TraceItem carries.
type TraceItemKind uint8

const (
	TraceNodeShape TraceItemKind = iota
	TracePropertyShape
	TraceComponent
)

// TraceItem is one frame of an append-only execution trace, recorded as a
// list of handles rather than pointers. Exactly one of the three handle
// fields is meaningful, selected by Kind; the others are zero.
type TraceItem struct {
	Kind            TraceItemKind
	NodeShapeID     ids.NodeShapeID
	PropertyShapeID ids.PropertyShapeID
	ComponentID     ids.ComponentID
}

func NodeShapeTrace(id ids.NodeShapeID) TraceItem {
	return TraceItem{Kind: TraceNodeShape, NodeShapeID: id}
}

func PropertyShapeTrace(id ids.PropertyShapeID) TraceItem {
	return TraceItem{Kind: TracePropertyShape, PropertyShapeID: id}
}

func ComponentTrace(id ids.ComponentID) TraceItem {
	return TraceItem{Kind: TraceComponent, ComponentID: id}
}

// Context is one validation frame: the focus node under test, the path
// that produced its value nodes (absent for a node-shape frame), the
// value nodes themselves, the shape in scope, and the trace accumulated
// descending to this point. Context is passed by value and extended via
// the With* methods, each of which clones the trace slice rather than
// mutating a shared one — cloning a context clones a small slice of
// integers, not graph structure.
type Context struct {
	FocusNode    term.Term
	Path         path.Path // nil for a node-shape frame
	ValueNodes   []term.Term
	SourceNode   ids.NodeShapeID     // zero unless SourceIsNode
	SourceProp   ids.PropertyShapeID // zero unless SourceIsNode is false
	SourceIsNode bool
	Trace        []TraceItem
}

// NewNodeContext starts a fresh frame for a node shape's target.
func NewNodeContext(focus term.Term, shape ids.NodeShapeID) Context {
	return Context{
		FocusNode:    focus,
		ValueNodes:   []term.Term{focus},
		SourceNode:   shape,
		SourceIsNode: true,
		Trace:        []TraceItem{NodeShapeTrace(shape)},
	}
}

// Descend clones the context into a property-shape frame for the given
// path and value nodes, reached from the same focus node.
func (c Context) Descend(shape ids.PropertyShapeID, p path.Path, valueNodes []term.Term) Context {
	return Context{
		FocusNode:    c.FocusNode,
		Path:         p,
		ValueNodes:   valueNodes,
		SourceProp:   shape,
		SourceIsNode: false,
		Trace:        append(cloneTrace(c.Trace), PropertyShapeTrace(shape)),
	}
}

// WithComponent clones the context with one more Component trace frame,
// for passing to a component validator.
func (c Context) WithComponent(id ids.ComponentID) Context {
	c.Trace = append(cloneTrace(c.Trace), ComponentTrace(id))
	return c
}

func cloneTrace(t []TraceItem) []TraceItem {
	return append([]TraceItem(nil), t...)
}

// InnermostShape returns the nearest NodeShape or PropertyShape trace
// frame (searching from the end), used to resolve sh:sourceShape from the
// execution trace.
func (c Context) InnermostShape() (TraceItem, bool) {
	for i := len(c.Trace) - 1; i >= 0; i-- {
		if c.Trace[i].Kind == TraceNodeShape || c.Trace[i].Kind == TracePropertyShape {
			return c.Trace[i], true
		}
	}
	return TraceItem{}, false
}

// InnermostComponent returns the nearest Component trace frame, used to
// resolve sh:sourceConstraintComponent.
func (c Context) InnermostComponent() (TraceItem, bool) {
	for i := len(c.Trace) - 1; i >= 0; i-- {
		if c.Trace[i].Kind == TraceComponent {
			return c.Trace[i], true
		}
	}
	return TraceItem{}, false
}

// Failure is the payload of a failing ComponentValidationResult: the
// failed value node (if any), a human-readable message, overriding
// result path, and source-constraint override.
type Failure struct {
	FailedValueNode term.Term // zero Term if not value-node-specific
	HasValueNode    bool
	Message         string
	ResultPath      path.Path // nil: use the scope's own path, if any
	SourceConstraint term.Term // zero Term: use the component kind's own IRI
}

// ComponentValidationResult is either Pass or Fail(ctx, failure).
type ComponentValidationResult struct {
	Pass    bool
	Context Context
	Failure Failure
}

func Passed() ComponentValidationResult { return ComponentValidationResult{Pass: true} }

func Failed(ctx Context, f Failure) ComponentValidationResult {
	return ComponentValidationResult{Pass: false, Context: ctx, Failure: f}
}
