// Package parse implements the shapes-graph walk that produces a
// shapes.Model from a populated store: shape/property-shape term
// discovery, sh:path decoding, constraint-predicate scanning into
// ComponentDescriptors, custom-component discovery, and interning. The
// cross-reference check is left to shapes.Model.Freeze, which
// complete.Run calls once the optimiser has run.
package parse

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/shaclgo/shacl/rules"
	"github.com/shaclgo/shacl/shapes"
	"github.com/shaclgo/shacl/store"
	"github.com/shaclgo/shacl/term"
	"github.com/shaclgo/shacl/vocab"
)

// ParseError is the fatal, aborting error kind for a malformed shapes
// graph. It names the offending subject and predicate.
type ParseError struct {
	Subject   string
	Predicate string
	Reason    string
}

func (e *ParseError) Error() string {
	if e.Predicate == "" {
		return fmt.Sprintf("shapes/parse: %s (subject %s)", e.Reason, e.Subject)
	}
	return fmt.Sprintf("shapes/parse: %s (subject %s, predicate %s)", e.Reason, e.Subject, e.Predicate)
}

// Option configures Parse.
type Option func(*config)

type config struct {
	logger *slog.Logger
}

// WithLogger attaches a structured logger for shape/target discovery
// trace-level detail.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// Parse walks the named shapes graph in st and returns a populated,
// not-yet-optimised shapes.Model.
func Parse(ctx context.Context, st store.Store, shapesGraphIRI, dataGraphIRI string, opts ...Option) (*shapes.Model, error) {
	cfg := config{logger: slog.Default()}
	for _, o := range opts {
		o(&cfg)
	}

	quads, err := st.Quads(ctx, shapesGraphIRI)
	if err != nil {
		return nil, fmt.Errorf("shapes/parse: loading shapes graph: %w", err)
	}
	idx := newGraphIndex(quads)
	model := shapes.NewModel(shapesGraphIRI, dataGraphIRI)

	p := &parser{idx: idx, model: model, logger: cfg.logger}
	if err := p.discoverCustomComponents(); err != nil {
		return nil, err
	}
	nodeShapeTerms := p.discoverNodeShapeTerms()
	propertyShapeTerms := p.discoverPropertyShapeTerms()

	cfg.logger.Debug("shapes/parse: discovery complete",
		slog.Int("node_shapes", len(nodeShapeTerms)),
		slog.Int("property_shapes", len(propertyShapeTerms)),
		slog.Int("custom_components", len(model.CustomComponents)),
	)

	for _, t := range propertyShapeTerms {
		if err := p.parsePropertyShape(t); err != nil {
			return nil, err
		}
	}
	for _, t := range nodeShapeTerms {
		if err := p.parseNodeShape(t); err != nil {
			return nil, err
		}
	}

	return model, nil
}

type parser struct {
	idx    *graphIndex
	model  *shapes.Model
	logger *slog.Logger
}

// discoverNodeShapeTerms finds every candidate node-shape subject: typed
// sh:NodeShape instances, shapes reachable via sh:node/sh:not, members of
// sh:and/sh:or/sh:xone lists, every target's subject, and any subject
// carrying a constraint predicate directly (a node shape need not declare
// rdf:type sh:NodeShape).
func (p *parser) discoverNodeShapeTerms() []term.Term {
	seen := make(map[term.Term]bool)
	var out []term.Term
	add := func(t term.Term) {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	for _, t := range p.idx.subjectsWithType(vocab.NodeShape) {
		add(t)
	}
	for _, pred := range []string{vocab.Node, vocab.Not} {
		for _, q := range p.idx.byPredicate[pred] {
			add(q.Object)
		}
	}
	for _, pred := range []string{vocab.And, vocab.Or, vocab.Xone} {
		for _, q := range p.idx.byPredicate[pred] {
			members, err := p.idx.rdfList(q.Object)
			if err != nil {
				continue
			}
			for _, m := range members {
				add(m)
			}
		}
	}
	for _, pred := range []string{vocab.TargetClass, vocab.TargetNode, vocab.TargetSubjectsOf, vocab.TargetObjectsOf} {
		for _, q := range p.idx.subjectsWithPredicate(pred) {
			add(q)
		}
	}
	// Subjects bearing constraint predicates directly at node-shape position
	// (a node shape need not declare rdf:type sh:NodeShape).
	for pred := range componentPredicates {
		for _, q := range p.idx.subjectsWithPredicate(pred) {
			if _, isPropShape := p.idx.object(q, vocab.Path); isPropShape {
				continue
			}
			add(q)
		}
	}
	return out
}

// discoverPropertyShapeTerms finds every candidate property-shape subject:
// the object of sh:property, and any subject carrying sh:path.
func (p *parser) discoverPropertyShapeTerms() []term.Term {
	seen := make(map[term.Term]bool)
	var out []term.Term
	add := func(t term.Term) {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	for _, q := range p.idx.byPredicate[vocab.Property] {
		add(q.Object)
	}
	for _, t := range p.idx.subjectsWithPredicate(vocab.Path) {
		add(t)
	}
	return out
}

func (p *parser) parsePropertyShape(t term.Term) error {
	pathTerm, ok := p.idx.object(t, vocab.Path)
	if !ok {
		return &ParseError{Subject: t.String(), Predicate: vocab.Path, Reason: "property shape missing sh:path"}
	}
	pp, err := p.idx.parsePath(pathTerm)
	if err != nil {
		return &ParseError{Subject: t.String(), Predicate: vocab.Path, Reason: err.Error()}
	}

	id := p.model.PropertyShapeIDs.Intern(t)
	ps := &shapes.PropertyShape{
		ID:          id,
		Path:        pp,
		Deactivated: p.boolOf(t, vocab.Deactivated),
		Severity:    p.severityOf(t),
		Messages:    p.idx.objects(t, vocab.Message),
	}
	comps, err := p.scanComponents(t, true)
	if err != nil {
		return err
	}
	ps.Components = comps
	p.model.PutPropertyShape(ps)
	return nil
}

func (p *parser) parseNodeShape(t term.Term) error {
	id := p.model.NodeShapeIDs.Intern(t)
	ns := &shapes.NodeShape{
		ID:          id,
		Targets:     p.targetsOf(t),
		Deactivated: p.boolOf(t, vocab.Deactivated),
		Severity:    p.severityOf(t),
		Messages:    p.idx.objects(t, vocab.Message),
		Rules:       p.rulesOf(t),
	}
	for _, propTerm := range p.idx.objects(t, vocab.Property) {
		ns.PropertyShapes = append(ns.PropertyShapes, p.model.PropertyShapeIDs.Intern(propTerm))
	}
	comps, err := p.scanComponents(t, false)
	if err != nil {
		return err
	}
	ns.Components = comps
	p.model.PutNodeShape(ns)
	return nil
}

func (p *parser) targetsOf(t term.Term) []shapes.Target {
	var out []shapes.Target
	for _, c := range p.idx.objects(t, vocab.TargetClass) {
		out = append(out, shapes.NewClassTarget(c))
	}
	for _, n := range p.idx.objects(t, vocab.TargetNode) {
		out = append(out, shapes.NewNodeTarget(n))
	}
	for _, pobj := range p.idx.objects(t, vocab.TargetSubjectsOf) {
		out = append(out, shapes.NewSubjectsOf(pobj.Value()))
	}
	for _, pobj := range p.idx.objects(t, vocab.TargetObjectsOf) {
		out = append(out, shapes.NewObjectsOf(pobj.Value()))
	}
	return out
}

func (p *parser) boolOf(t term.Term, predicate string) bool {
	v, ok := p.idx.object(t, predicate)
	return ok && v.IsLiteral() && v.Value() == "true"
}

func (p *parser) severityOf(t term.Term) shapes.Severity {
	v, ok := p.idx.object(t, vocab.Severity)
	if !ok || !v.IsIRI() {
		return shapes.SeverityViolation
	}
	switch v.Value() {
	case vocab.SeverityWarning:
		return shapes.SeverityWarning
	case vocab.SeverityInfo:
		return shapes.SeverityInfo
	default:
		return shapes.SeverityViolation
	}
}

func (p *parser) rulesOf(t term.Term) []rules.Rule {
	var out []rules.Rule
	for _, r := range p.idx.objects(t, vocab.Rule) {
		types := p.idx.objects(r, vocab.RDFType)
		for _, ty := range types {
			switch ty.Value() {
			case vocab.TripleRule:
				subj, _ := p.idx.object(r, vocab.Subject)
				pred, _ := p.idx.object(r, vocab.Predicate)
				obj, _ := p.idx.object(r, vocab.Object)
				out = append(out, rules.Rule{Kind: rules.KindTriple, Subject: subj, Predicate: pred, Object: obj})
			case vocab.SPARQLRule:
				construct, _ := p.idx.object(r, vocab.Construct)
				out = append(out, rules.Rule{Kind: rules.KindSPARQL, Construct: construct.Value()})
			}
		}
	}
	return out
}

func (p *parser) intLiteral(t term.Term) (int, error) {
	n, err := strconv.Atoi(t.Value())
	if err != nil {
		return 0, fmt.Errorf("invalid integer literal %q: %w", t.Value(), err)
	}
	return n, nil
}

func (p *parser) newComponent(kind shapes.ComponentKind, key term.Term) *shapes.ComponentDescriptor {
	id := p.model.ComponentIDs.Intern(key)
	return &shapes.ComponentDescriptor{ID: id, Kind: kind}
}
