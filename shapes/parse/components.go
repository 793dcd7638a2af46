package parse

import (
	"fmt"

	"github.com/shaclgo/shacl/ids"
	"github.com/shaclgo/shacl/shapes"
	"github.com/shaclgo/shacl/term"
	"github.com/shaclgo/shacl/vocab"
)

// componentPredicates lists every literal-or-term-valued constraint
// predicate the parser recognises directly on a shape's subject, including
// the single-shape reference sh:node. scanComponentDescriptors handles the
// rest separately: the list-valued predicates and sh:not
// (scanListComponents), sh:property (scanPropertyComponent),
// sh:qualifiedValueShape (scanQualifiedValueShape), sh:sparql
// (scanSparqlComponents) and custom-component parameters
// (scanCustomComponentInstances).
var componentPredicates = map[string]shapes.ComponentKind{
	vocab.MinCount:          shapes.KindMinCount,
	vocab.MaxCount:          shapes.KindMaxCount,
	vocab.MinExclusive:      shapes.KindMinExclusive,
	vocab.MinInclusive:      shapes.KindMinInclusive,
	vocab.MaxExclusive:      shapes.KindMaxExclusive,
	vocab.MaxInclusive:      shapes.KindMaxInclusive,
	vocab.MinLength:         shapes.KindMinLength,
	vocab.MaxLength:         shapes.KindMaxLength,
	vocab.Pattern:           shapes.KindPattern,
	vocab.UniqueLang:        shapes.KindUniqueLang,
	vocab.Equals:            shapes.KindEquals,
	vocab.Disjoint:          shapes.KindDisjoint,
	vocab.LessThan:          shapes.KindLessThan,
	vocab.LessThanOrEquals:  shapes.KindLessThanOrEquals,
	vocab.HasValue:          shapes.KindHasValue,
	vocab.Class:             shapes.KindClass,
	vocab.Datatype:          shapes.KindDatatype,
	vocab.NodeKind:          shapes.KindNodeKind,
	vocab.Node:              shapes.KindNode,
	vocab.Closed:            shapes.KindClosed,
}

// scanComponents discovers every fixed and custom component instance for
// one shape subject, registering every resulting descriptor in the model
// and returning the handles NodeShape/PropertyShape.Components expects.
func (p *parser) scanComponents(shapeTerm term.Term, isPropertyContext bool) ([]ids.ComponentID, error) {
	descriptors, err := p.scanComponentDescriptors(shapeTerm, isPropertyContext)
	if err != nil {
		return nil, err
	}
	out := make([]ids.ComponentID, len(descriptors))
	for i := range descriptors {
		p.model.PutComponent(&descriptors[i])
		out[i] = descriptors[i].ID
	}
	return out, nil
}

func (p *parser) scanComponentDescriptors(shapeTerm term.Term, isPropertyContext bool) ([]shapes.ComponentDescriptor, error) {
	var out []shapes.ComponentDescriptor
	emit := func(c *shapes.ComponentDescriptor) {
		out = append(out, *c)
	}

	for predicate, kind := range componentPredicates {
		values := p.idx.objects(shapeTerm, predicate)
		for i, v := range values {
			key := componentKey(shapeTerm, predicate, i)
			c := p.newComponent(kind, key)
			if err := p.fillFixedComponent(c, kind, shapeTerm, v); err != nil {
				if err == errNotClosed {
					continue // sh:closed false: no component emitted
				}
				return nil, &ParseError{Subject: shapeTerm.String(), Predicate: predicate, Reason: err.Error()}
			}
			emit(c)
		}
	}

	if flags, ok := p.idx.object(shapeTerm, vocab.Flags); ok {
		for i := range out {
			if out[i].Kind == shapes.KindPattern {
				out[i].Flags = flags.Value()
			}
		}
	}

	if err := p.scanListComponents(shapeTerm, &out); err != nil {
		return nil, err
	}
	if err := p.scanPropertyComponent(shapeTerm, isPropertyContext, &out); err != nil {
		return nil, err
	}
	if err := p.scanQualifiedValueShape(shapeTerm, &out); err != nil {
		return nil, err
	}
	if err := p.scanSparqlComponents(shapeTerm, &out); err != nil {
		return nil, err
	}
	if err := p.scanCustomComponentInstances(shapeTerm, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func componentKey(shapeTerm term.Term, predicate string, index int) term.Term {
	return term.NewBlankNode(fmt.Sprintf("%s|%s|%d", shapeTerm.String(), predicate, index))
}

func (p *parser) fillFixedComponent(c *shapes.ComponentDescriptor, kind shapes.ComponentKind, shapeTerm, v term.Term) error {
	switch kind {
	case shapes.KindMinCount, shapes.KindMaxCount, shapes.KindMinLength, shapes.KindMaxLength:
		n, err := p.intLiteral(v)
		if err != nil {
			return err
		}
		c.Count = n
	case shapes.KindMinExclusive, shapes.KindMinInclusive, shapes.KindMaxExclusive, shapes.KindMaxInclusive:
		c.Bound = v
	case shapes.KindPattern:
		c.Pattern = v.Value()
	case shapes.KindUniqueLang:
		c.Unique = v.IsLiteral() && v.Value() == "true"
	case shapes.KindEquals, shapes.KindDisjoint, shapes.KindLessThan, shapes.KindLessThanOrEquals:
		if !v.IsIRI() {
			return fmt.Errorf("expected IRI predicate value, got %s", v)
		}
		c.Predicate = v.Value()
	case shapes.KindHasValue:
		c.Value = v
	case shapes.KindClass:
		c.Class = v
	case shapes.KindDatatype:
		c.Datatype = v
	case shapes.KindNodeKind:
		nk, err := nodeKindOf(v)
		if err != nil {
			return err
		}
		c.NodeKind = nk
	case shapes.KindNode:
		c.Shape = p.model.NodeShapeIDs.Intern(v)
	case shapes.KindClosed:
		if v.IsLiteral() && v.Value() == "true" {
			if ignored, ok := p.idx.object(shapeTerm, vocab.IgnoredProperties); ok {
				members, err := p.idx.rdfList(ignored)
				if err != nil {
					return fmt.Errorf("sh:ignoredProperties: %w", err)
				}
				c.Ignored = members
			}
		} else {
			return errNotClosed
		}
	}
	return nil
}

// errNotClosed signals sh:closed false, handled by the caller by dropping
// the component rather than treating it as a parse failure.
var errNotClosed = fmt.Errorf("sh:closed is false")

func nodeKindOf(v term.Term) (shapes.NodeKindValue, error) {
	if !v.IsIRI() {
		return 0, fmt.Errorf("sh:nodeKind value must be an IRI, got %s", v)
	}
	switch v.Value() {
	case vocab.IRI:
		return shapes.NodeKindIRI, nil
	case vocab.BlankNode:
		return shapes.NodeKindBlankNode, nil
	case vocab.Literal:
		return shapes.NodeKindLiteral, nil
	case vocab.BlankNodeOrIRI:
		return shapes.NodeKindBlankNode | shapes.NodeKindIRI, nil
	case vocab.BlankNodeOrLiteral:
		return shapes.NodeKindBlankNode | shapes.NodeKindLiteral, nil
	case vocab.IRIOrLiteral:
		return shapes.NodeKindIRI | shapes.NodeKindLiteral, nil
	default:
		return 0, fmt.Errorf("unrecognised sh:nodeKind value %s", v)
	}
}

// scanListComponents handles the list-valued descriptors: In, LanguageIn,
// And, Or, Xone, Not.
func (p *parser) scanListComponents(shapeTerm term.Term, out *[]shapes.ComponentDescriptor) error {
	if head, ok := p.idx.object(shapeTerm, vocab.In); ok {
		members, err := p.idx.rdfList(head)
		if err != nil {
			return &ParseError{Subject: shapeTerm.String(), Predicate: vocab.In, Reason: err.Error()}
		}
		c := p.newComponent(shapes.KindIn, componentKey(shapeTerm, vocab.In, 0))
		c.Values = members
		*out = append(*out, *c)
	}
	if head, ok := p.idx.object(shapeTerm, vocab.LanguageIn); ok {
		members, err := p.idx.rdfList(head)
		if err != nil {
			return &ParseError{Subject: shapeTerm.String(), Predicate: vocab.LanguageIn, Reason: err.Error()}
		}
		c := p.newComponent(shapes.KindLanguageIn, componentKey(shapeTerm, vocab.LanguageIn, 0))
		for _, m := range members {
			c.Langs = append(c.Langs, m.Value())
		}
		*out = append(*out, *c)
	}
	if shapeHead, ok := p.idx.object(shapeTerm, vocab.Not); ok {
		c := p.newComponent(shapes.KindNot, componentKey(shapeTerm, vocab.Not, 0))
		c.Shape = p.model.NodeShapeIDs.Intern(shapeHead)
		*out = append(*out, *c)
	}
	for _, pred := range []struct {
		iri  string
		kind shapes.ComponentKind
	}{
		{vocab.And, shapes.KindAnd},
		{vocab.Or, shapes.KindOr},
		{vocab.Xone, shapes.KindXone},
	} {
		if head, ok := p.idx.object(shapeTerm, pred.iri); ok {
			members, err := p.idx.rdfList(head)
			if err != nil {
				return &ParseError{Subject: shapeTerm.String(), Predicate: pred.iri, Reason: err.Error()}
			}
			c := p.newComponent(pred.kind, componentKey(shapeTerm, pred.iri, 0))
			for _, m := range members {
				c.Shapes = append(c.Shapes, p.model.NodeShapeIDs.Intern(m))
			}
			*out = append(*out, *c)
		}
	}
	return nil
}

// scanPropertyComponent records a KindProperty component when this shape
// itself carries a nested sh:property (legal on a property shape, whose
// own PropertyShape struct has no PropertyShapes field — see
// shapes/shape.go). Node-shape sh:property is handled by the primary
// traversal list in parseNodeShape, not duplicated here.
func (p *parser) scanPropertyComponent(shapeTerm term.Term, isPropertyContext bool, out *[]shapes.ComponentDescriptor) error {
	if !isPropertyContext {
		return nil
	}
	for i, propTerm := range p.idx.objects(shapeTerm, vocab.Property) {
		c := p.newComponent(shapes.KindProperty, componentKey(shapeTerm, vocab.Property, i))
		c.PropertyShape = p.model.PropertyShapeIDs.Intern(propTerm)
		*out = append(*out, *c)
	}
	return nil
}

func (p *parser) scanQualifiedValueShape(shapeTerm term.Term, out *[]shapes.ComponentDescriptor) error {
	qvs, ok := p.idx.object(shapeTerm, vocab.QualifiedValueShape)
	if !ok {
		return nil
	}
	c := p.newComponent(shapes.KindQualifiedValueShape, componentKey(shapeTerm, vocab.QualifiedValueShape, 0))
	c.Shape = p.model.NodeShapeIDs.Intern(qvs)
	if min, ok := p.idx.object(shapeTerm, vocab.QualifiedMinCount); ok {
		n, err := p.intLiteral(min)
		if err != nil {
			return &ParseError{Subject: shapeTerm.String(), Predicate: vocab.QualifiedMinCount, Reason: err.Error()}
		}
		c.QMin, c.HasQMin = n, true
	}
	if max, ok := p.idx.object(shapeTerm, vocab.QualifiedMaxCount); ok {
		n, err := p.intLiteral(max)
		if err != nil {
			return &ParseError{Subject: shapeTerm.String(), Predicate: vocab.QualifiedMaxCount, Reason: err.Error()}
		}
		c.QMax, c.HasQMax = n, true
	}
	if disjoint, ok := p.idx.object(shapeTerm, vocab.QualifiedValueShapesDisjoint); ok {
		c.Disjoint = disjoint.IsLiteral() && disjoint.Value() == "true"
	}
	*out = append(*out, *c)
	return nil
}
