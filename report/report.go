// Package report builds the SHACL validation report: an RDF graph rooted
// at a blank sh:ValidationReport node, one sh:ValidationResult per
// recorded validate.Result, plus the human-facing dump/frequency/trace
// helpers the facade adds on top (grounded on
// original_source/lib/src/report.rs's ValidationReportBuilder).
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/shaclgo/shacl/path"
	"github.com/shaclgo/shacl/shapes"
	"github.com/shaclgo/shacl/store"
	"github.com/shaclgo/shacl/term"
	"github.com/shaclgo/shacl/validate"
	"github.com/shaclgo/shacl/vocab"
)

// Report is the accumulated outcome of one validation run: the ordered
// list of recorded failures (of any severity — Info/Warning still make
// Conforms() false) plus the model needed to resolve shape/component
// handles back to RDF terms for reporting.
type Report struct {
	Results []validate.Result
	model   *shapes.Model
}

// NewReport wraps a Driver.Validate result for reporting.
func NewReport(results []validate.Result, model *shapes.Model) *Report {
	return &Report{Results: results, model: model}
}

// Conforms is true iff zero failures were recorded, regardless of
// severity.
func (r *Report) Conforms() bool {
	return len(r.Results) == 0
}

// componentIRI maps a ComponentKind to its sh:*ConstraintComponent IRI, the
// default for sh:sourceConstraintComponent when a Failure does not
// override it.
var componentIRI = map[shapes.ComponentKind]string{
	shapes.KindMinCount:             vocab.MinCountConstraintComponent,
	shapes.KindMaxCount:             vocab.MaxCountConstraintComponent,
	shapes.KindMinExclusive:         vocab.MinExclusiveConstraintComponent,
	shapes.KindMinInclusive:         vocab.MinInclusiveConstraintComponent,
	shapes.KindMaxExclusive:         vocab.MaxExclusiveConstraintComponent,
	shapes.KindMaxInclusive:         vocab.MaxInclusiveConstraintComponent,
	shapes.KindMinLength:            vocab.MinLengthConstraintComponent,
	shapes.KindMaxLength:            vocab.MaxLengthConstraintComponent,
	shapes.KindPattern:              vocab.PatternConstraintComponent,
	shapes.KindLanguageIn:           vocab.LanguageInConstraintComponent,
	shapes.KindUniqueLang:           vocab.UniqueLangConstraintComponent,
	shapes.KindEquals:               vocab.EqualsConstraintComponent,
	shapes.KindDisjoint:             vocab.DisjointConstraintComponent,
	shapes.KindLessThan:             vocab.LessThanConstraintComponent,
	shapes.KindLessThanOrEquals:     vocab.LessThanOrEqualsConstraintComponent,
	shapes.KindHasValue:             vocab.HasValueConstraintComponent,
	shapes.KindIn:                   vocab.InConstraintComponent,
	shapes.KindClass:                vocab.ClassConstraintComponent,
	shapes.KindDatatype:             vocab.DatatypeConstraintComponent,
	shapes.KindNodeKind:             vocab.NodeKindConstraintComponent,
	shapes.KindNot:                  vocab.NotConstraintComponent,
	shapes.KindAnd:                  vocab.AndConstraintComponent,
	shapes.KindOr:                   vocab.OrConstraintComponent,
	shapes.KindXone:                 vocab.XoneConstraintComponent,
	shapes.KindNode:                 vocab.NodeConstraintComponent,
	shapes.KindProperty:             vocab.PropertyConstraintComponent,
	shapes.KindQualifiedValueShape:  vocab.QualifiedValueShapeConstraintComponent,
	shapes.KindClosed:               vocab.ClosedConstraintComponent,
	shapes.KindSparql:               vocab.SPARQLConstraintComponent,
}

func severityTerm(s shapes.Severity) term.Term {
	switch s {
	case shapes.SeverityWarning:
		return term.NewIRI(vocab.SeverityWarning)
	case shapes.SeverityInfo:
		return term.NewIRI(vocab.SeverityInfo)
	default:
		return term.NewIRI(vocab.SeverityViolation)
	}
}

func blankNode() term.Term {
	return term.NewBlankNode(uuid.NewString())
}

// ToGraph assembles the report as a quad slice in the given named graph,
// returning the root sh:ValidationReport node.
func (r *Report) ToGraph(graphIRI string) ([]store.Quad, term.Term) {
	var quads []store.Quad
	add := func(s, p, o term.Term) {
		quads = append(quads, store.Quad{Subject: s, Predicate: p, Object: o, Graph: graphIRI})
	}

	reportNode := blankNode()
	add(reportNode, term.NewIRI(vocab.RDFType), term.NewIRI(vocab.ValidationReport))
	add(reportNode, term.NewIRI(vocab.Conforms), term.NewLiteral(fmt.Sprintf("%t", r.Conforms()), vocab.XSDBoolean))

	for _, res := range r.Results {
		resultNode := blankNode()
		add(reportNode, term.NewIRI(vocab.Result), resultNode)
		add(resultNode, term.NewIRI(vocab.RDFType), term.NewIRI(vocab.ValidationResult))
		add(resultNode, term.NewIRI(vocab.FocusNode), res.Context.FocusNode)

		message := res.Failure.Message
		if message == "" {
			message = "constraint violated"
		}
		add(resultNode, term.NewIRI(vocab.ResultMessage), term.NewLiteral(message, ""))
		add(resultNode, term.NewIRI(vocab.ResultSeverity), severityTerm(res.Severity))

		if res.Failure.HasValueNode {
			add(resultNode, term.NewIRI(vocab.Value), res.Failure.FailedValueNode)
		}

		if shapeTerm, ok := r.sourceShapeTerm(res.Context); ok {
			add(resultNode, term.NewIRI(vocab.SourceShape), shapeTerm)
		}

		resultPath := res.Failure.ResultPath
		if resultPath == nil {
			resultPath = res.Context.Path
		}
		if resultPath != nil {
			pathTerm := pathToRDF(resultPath, add)
			add(resultNode, term.NewIRI(vocab.ResultPath), pathTerm)
		}

		if !res.Failure.SourceConstraint.IsZero() {
			add(resultNode, term.NewIRI(vocab.SourceConstraintComponent), res.Failure.SourceConstraint)
		} else if item, ok := res.Context.InnermostComponent(); ok {
			if comp, ok := r.model.Component(item.ComponentID); ok {
				if iri, ok := componentIRI[comp.Kind]; ok {
					add(resultNode, term.NewIRI(vocab.SourceConstraintComponent), term.NewIRI(iri))
				}
			}
		}
	}
	return quads, reportNode
}

// sourceShapeTerm resolves sh:sourceShape from the innermost shape trace
// frame.
func (r *Report) sourceShapeTerm(ctx shapes.Context) (term.Term, bool) {
	item, ok := ctx.InnermostShape()
	if !ok {
		return term.Term{}, false
	}
	switch item.Kind {
	case shapes.TraceNodeShape:
		return r.model.TermOf(item.NodeShapeID)
	case shapes.TracePropertyShape:
		return r.model.PropertyTermOf(item.PropertyShapeID)
	default:
		return term.Term{}, false
	}
}

// pathToRDF serialises a property path back into RDF, mirroring
// path.ToSparql() in reverse: Simple is the bare predicate IRI, Sequence
// becomes an RDF list, every other operator becomes a blank node
// carrying the matching sh:*Path predicate.
func pathToRDF(p path.Path, add func(s, pr, o term.Term)) term.Term {
	switch p.Kind() {
	case path.KindSimple:
		return term.NewIRI(p.(path.Simple).IRI)
	case path.KindInverse:
		bn := blankNode()
		inner := pathToRDF(p.(path.Inverse).Inner, add)
		add(bn, term.NewIRI(vocab.InversePath), inner)
		return bn
	case path.KindSequence:
		members := p.(path.Sequence).Members
		items := make([]term.Term, len(members))
		for i, m := range members {
			items[i] = pathToRDF(m, add)
		}
		return buildRDFList(items, add)
	case path.KindAlternative:
		bn := blankNode()
		members := p.(path.Alternative).Members
		items := make([]term.Term, len(members))
		for i, m := range members {
			items[i] = pathToRDF(m, add)
		}
		add(bn, term.NewIRI(vocab.AlternativePath), buildRDFList(items, add))
		return bn
	case path.KindZeroOrMore:
		bn := blankNode()
		add(bn, term.NewIRI(vocab.ZeroOrMorePath), pathToRDF(p.(path.ZeroOrMore).Inner, add))
		return bn
	case path.KindOneOrMore:
		bn := blankNode()
		add(bn, term.NewIRI(vocab.OneOrMorePath), pathToRDF(p.(path.OneOrMore).Inner, add))
		return bn
	case path.KindZeroOrOne:
		bn := blankNode()
		add(bn, term.NewIRI(vocab.ZeroOrOnePath), pathToRDF(p.(path.ZeroOrOne).Inner, add))
		return bn
	default:
		return term.Term{}
	}
}

func buildRDFList(items []term.Term, add func(s, p, o term.Term)) term.Term {
	if len(items) == 0 {
		return term.NewIRI(vocab.RDFNil)
	}
	nodes := make([]term.Term, len(items))
	for i := range items {
		nodes[i] = blankNode()
	}
	for i, item := range items {
		add(nodes[i], term.NewIRI(vocab.RDFFirst), item)
		rest := term.NewIRI(vocab.RDFNil)
		if i+1 < len(nodes) {
			rest = nodes[i+1]
		}
		add(nodes[i], term.NewIRI(vocab.RDFRest), rest)
	}
	return nodes[0]
}

// Dump writes a human-readable report, grouped by focus node, grounded on
// original_source's ValidationReportBuilder::dump.
func (r *Report) Dump() string {
	var b strings.Builder
	if r.Conforms() {
		b.WriteString("Validation report: conforms, no errors found.\n")
		return b.String()
	}
	b.WriteString("Validation Report:\n------------------\n")

	grouped := make(map[term.Term][]validate.Result)
	var order []term.Term
	for _, res := range r.Results {
		if _, ok := grouped[res.Context.FocusNode]; !ok {
			order = append(order, res.Context.FocusNode)
		}
		grouped[res.Context.FocusNode] = append(grouped[res.Context.FocusNode], res)
	}
	for _, focus := range order {
		fmt.Fprintf(&b, "\nFocus Node: %s\n", focus.String())
		for _, res := range grouped[focus] {
			fmt.Fprintf(&b, "  - [%s] %s\n", res.Severity, res.Failure.Message)
			if shapeTerm, ok := r.sourceShapeTerm(res.Context); ok {
				fmt.Fprintf(&b, "    From shape: %s\n", shapeTerm.String())
			}
		}
	}
	b.WriteString("\n------------------\n")
	return b.String()
}

// ComponentFrequency is one entry of GetComponentFrequencies's tally.
type ComponentFrequency struct {
	Shape     term.Term
	Component shapes.ComponentKind
	Count     int
}

// GetComponentFrequencies tallies failures by (source shape, component
// kind), grounded on original_source's `(shape_id, shape_label, kind) ->
// count` map.
func (r *Report) GetComponentFrequencies() []ComponentFrequency {
	type key struct {
		shape term.Term
		kind  shapes.ComponentKind
	}
	counts := make(map[key]int)
	var order []key
	for _, res := range r.Results {
		shapeTerm, _ := r.sourceShapeTerm(res.Context)
		kind := shapes.ComponentKind(255)
		if item, ok := res.Context.InnermostComponent(); ok {
			if comp, ok := r.model.Component(item.ComponentID); ok {
				kind = comp.Kind
			}
		}
		k := key{shapeTerm, kind}
		if _, ok := counts[k]; !ok {
			order = append(order, k)
		}
		counts[k]++
	}
	out := make([]ComponentFrequency, len(order))
	for i, k := range order {
		out[i] = ComponentFrequency{Shape: k.shape, Component: k.kind, Count: counts[k]}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// PrintTraces renders the execution trace of every failure, resolving each
// handle back to its RDF term.
func (r *Report) PrintTraces() string {
	var b strings.Builder
	for i, res := range r.Results {
		fmt.Fprintf(&b, "Result %d (focus %s):\n", i, res.Context.FocusNode.String())
		for _, item := range res.Context.Trace {
			switch item.Kind {
			case shapes.TraceNodeShape:
				t, _ := r.model.TermOf(item.NodeShapeID)
				fmt.Fprintf(&b, "  NodeShape %s\n", t.String())
			case shapes.TracePropertyShape:
				t, _ := r.model.PropertyTermOf(item.PropertyShapeID)
				fmt.Fprintf(&b, "  PropertyShape %s\n", t.String())
			case shapes.TraceComponent:
				if comp, ok := r.model.Component(item.ComponentID); ok {
					fmt.Fprintf(&b, "  Component %s\n", comp.Kind)
				}
			}
		}
	}
	return b.String()
}
