package shapes

import (
	"fmt"

	"github.com/shaclgo/shacl/ids"
	"github.com/shaclgo/shacl/term"
)

// ComponentKind identifies which constraint a ComponentDescriptor carries.
type ComponentKind uint8

const (
	KindMinCount ComponentKind = iota
	KindMaxCount
	KindMinExclusive
	KindMinInclusive
	KindMaxExclusive
	KindMaxInclusive
	KindMinLength
	KindMaxLength
	KindPattern
	KindLanguageIn
	KindUniqueLang
	KindEquals
	KindDisjoint
	KindLessThan
	KindLessThanOrEquals
	KindHasValue
	KindIn
	KindClass
	KindDatatype
	KindNodeKind
	KindNot
	KindAnd
	KindOr
	KindXone
	KindNode
	KindProperty
	KindQualifiedValueShape
	KindClosed
	KindSparql
	KindCustom
)

func (k ComponentKind) String() string {
	names := [...]string{
		"MinCount", "MaxCount", "MinExclusive", "MinInclusive", "MaxExclusive",
		"MaxInclusive", "MinLength", "MaxLength", "Pattern", "LanguageIn",
		"UniqueLang", "Equals", "Disjoint", "LessThan", "LessThanOrEquals",
		"HasValue", "In", "Class", "Datatype", "NodeKind", "Not", "And", "Or",
		"Xone", "Node", "Property", "QualifiedValueShape", "Closed", "Sparql",
		"Custom",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return fmt.Sprintf("ComponentKind(%d)", k)
}

// NodeKindValue enumerates sh:nodeKind's individuals, as a bitset so unions
// (e.g. IRIOrLiteral) compose with bitwise OR.
type NodeKindValue uint8

const (
	NodeKindIRI NodeKindValue = 1 << iota
	NodeKindBlankNode
	NodeKindLiteral
)

// Allows reports whether t's term kind satisfies this NodeKind constraint.
func (nk NodeKindValue) Allows(t term.Term) bool {
	switch {
	case t.IsIRI():
		return nk&NodeKindIRI != 0
	case t.IsBlankNode():
		return nk&NodeKindBlankNode != 0
	case t.IsLiteral():
		return nk&NodeKindLiteral != 0
	default:
		return false
	}
}

// ComponentDescriptor is the tagged-variant enumeration of every
// constraint kind the shapes parser recognises. It is a closed,
// comparable-by-value struct rather than an interface: unlike
// Path, component payloads are small and homogeneous enough (scalars,
// term lists, shape-handle lists) that one struct with a discriminant and
// kind-specific fields is simpler than a dozen marker-interface types,
// while ids.ComponentID gives every instance a reversible handle for
// reporting regardless of representation.
type ComponentDescriptor struct {
	ID   ids.ComponentID
	Kind ComponentKind

	// Cardinality / numeric bound.
	Count int

	// Value-range / literal bound.
	Bound term.Term

	// String-based.
	Pattern string
	Flags   string
	Langs   []string
	Unique  bool

	// Property-pair.
	Predicate string

	// Value.
	Value    term.Term
	Values   []term.Term
	Class    term.Term
	Datatype term.Term
	NodeKind NodeKindValue

	// Logical / shape-based: referenced node-shape handles.
	Shapes []ids.NodeShapeID
	Shape  ids.NodeShapeID

	// Property: referenced property-shape handle.
	PropertyShape ids.PropertyShapeID

	// QualifiedValueShape.
	QMin     int
	HasQMin  bool
	QMax     int
	HasQMax  bool
	Disjoint bool

	// Closed.
	Ignored []term.Term

	// SPARQL-based.
	ConstraintNode term.Term
	Query          string // sh:select body, read off ConstraintNode at parse time
	Messages       []term.Term
	Custom         *CustomComponent
	ParamBindings  map[string]term.Term
}
