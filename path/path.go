// Package path implements the SHACL property-path variant tree and its
// canonical SPARQL 1.1 property-path rendering and parser.
//
// The sealed-interface-plus-marker-method shape mirrors schema.Constraint in
// the teacher repository: one interface, one unexported marker method per
// implementation, and small immutable value/slice-backed structs.
package path

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies which path variant a Path holds.
type Kind uint8

const (
	KindSimple Kind = iota
	KindInverse
	KindSequence
	KindAlternative
	KindZeroOrMore
	KindOneOrMore
	KindZeroOrOne
)

// String returns the name of the path kind.
func (k Kind) String() string {
	switch k {
	case KindSimple:
		return "Simple"
	case KindInverse:
		return "Inverse"
	case KindSequence:
		return "Sequence"
	case KindAlternative:
		return "Alternative"
	case KindZeroOrMore:
		return "ZeroOrMore"
	case KindOneOrMore:
		return "OneOrMore"
	case KindZeroOrOne:
		return "ZeroOrOne"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Path is a SHACL property path. All implementations are immutable value
// types. Use ToSparql to obtain the canonical SPARQL 1.1 rendering.
type Path interface {
	// Kind returns the path variant.
	Kind() Kind

	// ToSparql returns the canonical SPARQL 1.1 property-path rendering.
	// Sequence and Alternative are always parenthesised; any unary modifier
	// (Inverse, ZeroOrMore, OneOrMore, ZeroOrOne) wrapping another unary
	// modifier parenthesises its operand so the rendering round-trips
	// unambiguously through Parse.
	ToSparql() string

	// Equal reports whether two paths are structurally equal.
	Equal(other Path) bool

	// path is an unexported marker preventing external implementations.
	path()
}

// ErrDegenerateList is returned when a Sequence or Alternative is
// constructed with fewer than two members.
var ErrDegenerateList = errors.New("path: sequence/alternative requires at least two members")

// Simple is a single-IRI path segment (sh:path pointing directly at a
// predicate IRI).
type Simple struct {
	IRI string
}

func (Simple) Kind() Kind        { return KindSimple }
func (Simple) path()             {}
func (s Simple) ToSparql() string { return "<" + s.IRI + ">" }
func (s Simple) Equal(other Path) bool {
	o, ok := other.(Simple)
	return ok && o.IRI == s.IRI
}

// Inverse is sh:inversePath.
type Inverse struct {
	Inner Path
}

func (Inverse) Kind() Kind { return KindInverse }
func (Inverse) path()      {}
func (p Inverse) ToSparql() string {
	return "^" + renderOperand(p.Inner)
}
func (p Inverse) Equal(other Path) bool {
	o, ok := other.(Inverse)
	return ok && pathsEqual(p.Inner, o.Inner)
}

// Sequence is sh:sequencePath — a list of at least two member paths,
// traversed in order.
type Sequence struct {
	Members []Path
}

// NewSequence validates the non-degeneracy invariant: a sequence path
// must have at least two members.
func NewSequence(members []Path) (Sequence, error) {
	if len(members) < 2 {
		return Sequence{}, fmt.Errorf("%w: got %d", ErrDegenerateList, len(members))
	}
	return Sequence{Members: append([]Path(nil), members...)}, nil
}

func (Sequence) Kind() Kind { return KindSequence }
func (Sequence) path()      {}
func (p Sequence) ToSparql() string {
	parts := make([]string, len(p.Members))
	for i, m := range p.Members {
		parts[i] = m.ToSparql()
	}
	return "(" + strings.Join(parts, " / ") + ")"
}
func (p Sequence) Equal(other Path) bool {
	o, ok := other.(Sequence)
	return ok && pathListsEqual(p.Members, o.Members)
}

// Alternative is sh:alternativePath — a list of at least two member paths,
// any of which may match.
type Alternative struct {
	Members []Path
}

// NewAlternative validates the non-degeneracy invariant: an alternative
// path must have at least two members.
func NewAlternative(members []Path) (Alternative, error) {
	if len(members) < 2 {
		return Alternative{}, fmt.Errorf("%w: got %d", ErrDegenerateList, len(members))
	}
	return Alternative{Members: append([]Path(nil), members...)}, nil
}

func (Alternative) Kind() Kind { return KindAlternative }
func (Alternative) path()      {}
func (p Alternative) ToSparql() string {
	parts := make([]string, len(p.Members))
	for i, m := range p.Members {
		parts[i] = m.ToSparql()
	}
	return "(" + strings.Join(parts, " | ") + ")"
}
func (p Alternative) Equal(other Path) bool {
	o, ok := other.(Alternative)
	return ok && pathListsEqual(p.Members, o.Members)
}

// ZeroOrMore is sh:zeroOrMorePath.
type ZeroOrMore struct{ Inner Path }

func (ZeroOrMore) Kind() Kind          { return KindZeroOrMore }
func (ZeroOrMore) path()               {}
func (p ZeroOrMore) ToSparql() string  { return renderOperand(p.Inner) + "*" }
func (p ZeroOrMore) Equal(other Path) bool {
	o, ok := other.(ZeroOrMore)
	return ok && pathsEqual(p.Inner, o.Inner)
}

// OneOrMore is sh:oneOrMorePath.
type OneOrMore struct{ Inner Path }

func (OneOrMore) Kind() Kind         { return KindOneOrMore }
func (OneOrMore) path()              {}
func (p OneOrMore) ToSparql() string { return renderOperand(p.Inner) + "+" }
func (p OneOrMore) Equal(other Path) bool {
	o, ok := other.(OneOrMore)
	return ok && pathsEqual(p.Inner, o.Inner)
}

// ZeroOrOne is sh:zeroOrOnePath.
type ZeroOrOne struct{ Inner Path }

func (ZeroOrOne) Kind() Kind         { return KindZeroOrOne }
func (ZeroOrOne) path()              {}
func (p ZeroOrOne) ToSparql() string { return renderOperand(p.Inner) + "?" }
func (p ZeroOrOne) Equal(other Path) bool {
	o, ok := other.(ZeroOrOne)
	return ok && pathsEqual(p.Inner, o.Inner)
}

// renderOperand renders a path as the operand of a unary prefix/postfix
// operator, parenthesising it if it is itself a unary modifier (to keep the
// rendering an unambiguous right-inverse of Parse). Simple, Sequence, and
// Alternative are already self-delimiting and never need extra parens here.
func renderOperand(p Path) string {
	switch p.Kind() {
	case KindInverse, KindZeroOrMore, KindOneOrMore, KindZeroOrOne:
		return "(" + p.ToSparql() + ")"
	default:
		return p.ToSparql()
	}
}

func pathsEqual(a, b Path) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

func pathListsEqual(a, b []Path) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !pathsEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}
