package shapes

import "github.com/shaclgo/shacl/term"

// TargetKind identifies which target variant a Target holds.
type TargetKind uint8

const (
	TargetClass TargetKind = iota
	TargetNode
	TargetSubjectsOf
	TargetObjectsOf
)

func (k TargetKind) String() string {
	switch k {
	case TargetClass:
		return "Class"
	case TargetNode:
		return "Node"
	case TargetSubjectsOf:
		return "SubjectsOf"
	case TargetObjectsOf:
		return "ObjectsOf"
	default:
		return "Target(?)"
	}
}

// Target is one of the four SHACL target variants. Term carries the
// class/node term for Class/Node targets, or the predicate IRI for
// SubjectsOf/ObjectsOf.
type Target struct {
	Kind TargetKind
	Term term.Term
}

func NewClassTarget(class term.Term) Target  { return Target{Kind: TargetClass, Term: class} }
func NewNodeTarget(node term.Term) Target    { return Target{Kind: TargetNode, Term: node} }
func NewSubjectsOf(predicate string) Target {
	return Target{Kind: TargetSubjectsOf, Term: term.NewIRI(predicate)}
}
func NewObjectsOf(predicate string) Target {
	return Target{Kind: TargetObjectsOf, Term: term.NewIRI(predicate)}
}
