// Package ids provides the dense, reversible intern tables the shapes model
// is built from: NodeShapeID, PropertyShapeID, and ComponentID. Each handle
// is a small value type (cheap to carry in a trace, cheap to use as a map
// key) that can always be resolved back to the RDF term that produced
// it — required for reporting.
//
// The generic Table type plays the role location.SourceID/schema.Registry
// play in the teacher repository: an append-only, string(here: term)-keyed
// registry that hands out stable dense identities.
package ids

import "github.com/shaclgo/shacl/term"

// NodeShapeID identifies an interned node shape.
type NodeShapeID uint32

// IsZero reports whether the id is the zero (unset) value.
func (id NodeShapeID) IsZero() bool { return id == 0 }

// PropertyShapeID identifies an interned property shape.
type PropertyShapeID uint32

// IsZero reports whether the id is the zero (unset) value.
func (id PropertyShapeID) IsZero() bool { return id == 0 }

// ComponentID identifies an interned constraint component instance.
type ComponentID uint32

// IsZero reports whether the id is the zero (unset) value.
func (id ComponentID) IsZero() bool { return id == 0 }

// Table interns term.Term values into dense handles of type ID and reverses
// handles back to the term that produced them. The zero ID is never issued,
// so IsZero-style checks on the handle types work against a Table's output.
//
// Table is not safe for concurrent writes; it is built once during parsing
// and becomes read-only once the owning ShapesModel is frozen, at which
// point concurrent reads are safe.
type Table[ID ~uint32] struct {
	byTerm map[term.Term]ID
	terms  []term.Term // terms[i] is the term for handle ID(i+1)
}

// NewTable creates an empty intern table.
func NewTable[ID ~uint32]() *Table[ID] {
	return &Table[ID]{byTerm: make(map[term.Term]ID)}
}

// Intern returns the handle for t, assigning a fresh one if t has not been
// seen before. Interning the same term twice returns the same handle.
func (tbl *Table[ID]) Intern(t term.Term) ID {
	if id, ok := tbl.byTerm[t]; ok {
		return id
	}
	tbl.terms = append(tbl.terms, t)
	id := ID(len(tbl.terms))
	tbl.byTerm[t] = id
	return id
}

// Term resolves a handle back to the RDF term that produced it.
func (tbl *Table[ID]) Term(id ID) (term.Term, bool) {
	idx := int(id) - 1
	if idx < 0 || idx >= len(tbl.terms) {
		return term.Term{}, false
	}
	return tbl.terms[idx], true
}

// Lookup returns the handle already assigned to t, if any, without interning.
func (tbl *Table[ID]) Lookup(t term.Term) (ID, bool) {
	id, ok := tbl.byTerm[t]
	return id, ok
}

// Len returns the number of interned terms.
func (tbl *Table[ID]) Len() int { return len(tbl.terms) }

// IDs returns every handle issued so far, in assignment (insertion) order.
func (tbl *Table[ID]) IDs() []ID {
	out := make([]ID, len(tbl.terms))
	for i := range tbl.terms {
		out[i] = ID(i + 1)
	}
	return out
}
