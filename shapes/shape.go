package shapes

import (
	"github.com/shaclgo/shacl/ids"
	"github.com/shaclgo/shacl/path"
	"github.com/shaclgo/shacl/rules"
	"github.com/shaclgo/shacl/term"
)

// Severity mirrors sh:severity's three individuals plus the default of
// Violation when unset.
type Severity uint8

const (
	SeverityViolation Severity = iota
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityViolation:
		return "Violation"
	case SeverityWarning:
		return "Warning"
	case SeverityInfo:
		return "Info"
	default:
		return "Violation"
	}
}

// NodeShape is a shape targeted at whole focus nodes. Invariant: every
// handle in PropertyShapes/Components resolves within the owning
// ShapesModel.
type NodeShape struct {
	ID              ids.NodeShapeID
	Targets         []Target
	PropertyShapes  []ids.PropertyShapeID
	Components      []ids.ComponentID
	Deactivated     bool
	Severity        Severity
	Messages        []term.Term
	Rules           []rules.Rule
}

// PropertyShape is a shape reached via a property path from a focus node.
// Invariant: Path is well-formed (enforced at construction by
// path.NewSequence/path.NewAlternative).
type PropertyShape struct {
	ID          ids.PropertyShapeID
	Path        path.Path
	Components  []ids.ComponentID
	Deactivated bool
	Severity    Severity
	Messages    []term.Term
}
