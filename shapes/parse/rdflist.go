package parse

import (
	"fmt"

	"github.com/shaclgo/shacl/store"
	"github.com/shaclgo/shacl/term"
	"github.com/shaclgo/shacl/vocab"
)

// graphIndex is a lightweight lookup over one graph's quads, built once
// per parse; the shapes parser operates entirely over the shapes graph.
type graphIndex struct {
	bySubject   map[term.Term][]store.Quad
	byPredicate map[string][]store.Quad
}

func newGraphIndex(quads []store.Quad) *graphIndex {
	idx := &graphIndex{
		bySubject:   make(map[term.Term][]store.Quad),
		byPredicate: make(map[string][]store.Quad),
	}
	for _, q := range quads {
		idx.bySubject[q.Subject] = append(idx.bySubject[q.Subject], q)
		if q.Predicate.IsIRI() {
			idx.byPredicate[q.Predicate.Value()] = append(idx.byPredicate[q.Predicate.Value()], q)
		}
	}
	return idx
}

// objects returns every object of (subject, predicateIRI) triples.
func (idx *graphIndex) objects(subject term.Term, predicateIRI string) []term.Term {
	var out []term.Term
	for _, q := range idx.bySubject[subject] {
		if q.Predicate.IsIRI() && q.Predicate.Value() == predicateIRI {
			out = append(out, q.Object)
		}
	}
	return out
}

// object returns the single object of (subject, predicateIRI), if any.
func (idx *graphIndex) object(subject term.Term, predicateIRI string) (term.Term, bool) {
	objs := idx.objects(subject, predicateIRI)
	if len(objs) == 0 {
		return term.Term{}, false
	}
	return objs[0], true
}

// subjectsWithType returns every subject with rdf:type typeIRI.
func (idx *graphIndex) subjectsWithType(typeIRI string) []term.Term {
	var out []term.Term
	seen := make(map[term.Term]bool)
	for _, q := range idx.byPredicate[vocab.RDFType] {
		if q.Object.IsIRI() && q.Object.Value() == typeIRI && !seen[q.Subject] {
			seen[q.Subject] = true
			out = append(out, q.Subject)
		}
	}
	return out
}

// subjectsWithPredicate returns every distinct subject with at least one
// (subject, predicateIRI, _) triple.
func (idx *graphIndex) subjectsWithPredicate(predicateIRI string) []term.Term {
	seen := make(map[term.Term]bool)
	var out []term.Term
	for _, q := range idx.byPredicate[predicateIRI] {
		if !seen[q.Subject] {
			seen[q.Subject] = true
			out = append(out, q.Subject)
		}
	}
	return out
}

// rdfList walks an rdf:first/rdf:rest collection head to an ordered slice
// of members, failing on a malformed (non-nil-terminated or cyclic) list.
func (idx *graphIndex) rdfList(head term.Term) ([]term.Term, error) {
	var out []term.Term
	cur := head
	seen := make(map[term.Term]bool)
	for {
		if cur.IsIRI() && cur.Value() == vocab.RDFNil {
			return out, nil
		}
		if seen[cur] {
			return nil, fmt.Errorf("shapes/parse: cyclic rdf:List at %s", cur)
		}
		seen[cur] = true
		first, ok := idx.object(cur, vocab.RDFFirst)
		if !ok {
			return nil, fmt.Errorf("shapes/parse: malformed rdf:List at %s: missing rdf:first", cur)
		}
		out = append(out, first)
		rest, ok := idx.object(cur, vocab.RDFRest)
		if !ok {
			return nil, fmt.Errorf("shapes/parse: malformed rdf:List at %s: missing rdf:rest", cur)
		}
		cur = rest
	}
}
