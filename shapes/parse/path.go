package parse

import (
	"fmt"

	"github.com/shaclgo/shacl/path"
	"github.com/shaclgo/shacl/term"
	"github.com/shaclgo/shacl/vocab"
)

// parsePath recursively decodes an sh:path value into a path.Path. IRIs
// are Simple paths; blank nodes are inspected for the operator predicate
// they carry (sh:inversePath,
// sh:alternativePath, sh:zeroOrMorePath, sh:oneOrMorePath,
// sh:zeroOrOnePath); a node beginning an rdf:first/rdf:rest list is a
// Sequence.
func (idx *graphIndex) parsePath(t term.Term) (path.Path, error) {
	if t.IsIRI() {
		return path.Simple{IRI: t.Value()}, nil
	}
	if !t.IsBlankNode() {
		return nil, fmt.Errorf("shapes/parse: sh:path value %s is neither an IRI nor a blank node", t)
	}

	if _, ok := idx.object(t, vocab.RDFFirst); ok {
		members, err := idx.rdfList(t)
		if err != nil {
			return nil, fmt.Errorf("shapes/parse: sequence path: %w", err)
		}
		paths := make([]path.Path, len(members))
		for i, m := range members {
			p, err := idx.parsePath(m)
			if err != nil {
				return nil, err
			}
			paths[i] = p
		}
		seq, err := path.NewSequence(paths)
		if err != nil {
			return nil, fmt.Errorf("shapes/parse: %w", err)
		}
		return seq, nil
	}

	if inner, ok := idx.object(t, vocab.InversePath); ok {
		p, err := idx.parsePath(inner)
		if err != nil {
			return nil, err
		}
		return path.Inverse{Inner: p}, nil
	}

	if head, ok := idx.object(t, vocab.AlternativePath); ok {
		members, err := idx.rdfList(head)
		if err != nil {
			return nil, fmt.Errorf("shapes/parse: alternative path: %w", err)
		}
		paths := make([]path.Path, len(members))
		for i, m := range members {
			p, err := idx.parsePath(m)
			if err != nil {
				return nil, err
			}
			paths[i] = p
		}
		alt, err := path.NewAlternative(paths)
		if err != nil {
			return nil, fmt.Errorf("shapes/parse: %w", err)
		}
		return alt, nil
	}

	if inner, ok := idx.object(t, vocab.ZeroOrMorePath); ok {
		p, err := idx.parsePath(inner)
		if err != nil {
			return nil, err
		}
		return path.ZeroOrMore{Inner: p}, nil
	}

	if inner, ok := idx.object(t, vocab.OneOrMorePath); ok {
		p, err := idx.parsePath(inner)
		if err != nil {
			return nil, err
		}
		return path.OneOrMore{Inner: p}, nil
	}

	if inner, ok := idx.object(t, vocab.ZeroOrOnePath); ok {
		p, err := idx.parsePath(inner)
		if err != nil {
			return nil, err
		}
		return path.ZeroOrOne{Inner: p}, nil
	}

	return nil, fmt.Errorf("shapes/parse: blank node %s carries no recognised path operator", t)
}
