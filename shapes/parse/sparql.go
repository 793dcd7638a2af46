package parse

import (
	"github.com/shaclgo/shacl/shapes"
	"github.com/shaclgo/shacl/term"
	"github.com/shaclgo/shacl/vocab"
)

// scanSparqlComponents handles sh:sparql, the predicate linking a shape to
// an sh:SPARQLConstraint node carrying sh:select.
func (p *parser) scanSparqlComponents(shapeTerm term.Term, out *[]shapes.ComponentDescriptor) error {
	for i, constraintNode := range p.idx.objects(shapeTerm, vocab.Sparql) {
		c := p.newComponent(shapes.KindSparql, componentKey(shapeTerm, vocab.Sparql, i))
		c.ConstraintNode = constraintNode
		if sel, ok := p.idx.object(constraintNode, vocab.Select); ok {
			c.Query = sel.Value()
		}
		c.Messages = p.idx.objects(constraintNode, vocab.Message)
		*out = append(*out, *c)
	}
	return nil
}
