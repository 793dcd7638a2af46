package store

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/shaclgo/shacl/path"
	"github.com/shaclgo/shacl/term"
	"github.com/shaclgo/shacl/vocab"
)

// Memory is an in-memory reference Store. It is not a general SPARQL
// engine: it understands exactly the query shapes this module itself
// generates (target-resolution templates, the single triple-pattern
// path-evaluation template, and simple conjunctive BGPs of the kind
// SPARQL-based constraint components issue) plus
// `rdf:type/rdfs:subClassOf*` traversal. It exists so the engine's own
// test suite has a store to run against without depending on a real
// triple-store binary; production use plugs in a real SPARQL engine
// behind the Store interface.
type Memory struct {
	graphs map[string][]Quad
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{graphs: make(map[string][]Quad)}
}

func (m *Memory) AddGraph(_ context.Context, graphIRI string, quads []Quad) error {
	m.graphs[graphIRI] = append(m.graphs[graphIRI], quads...)
	return nil
}

func (m *Memory) ReplaceGraph(_ context.Context, graphIRI string, quads []Quad) error {
	m.graphs[graphIRI] = append([]Quad(nil), quads...)
	return nil
}

func (m *Memory) Quads(_ context.Context, graphIRI string) ([]Quad, error) {
	qs, ok := m.graphs[graphIRI]
	if !ok {
		return nil, &ErrGraphNotFound{GraphIRI: graphIRI}
	}
	return append([]Quad(nil), qs...), nil
}

func (m *Memory) datasetQuads(ds Dataset) []Quad {
	seen := make(map[string]bool)
	var out []Quad
	graphs := ds.Default
	if len(graphs) == 0 {
		graphs = ds.Named
	}
	for _, g := range graphs {
		if seen[g] {
			continue
		}
		seen[g] = true
		out = append(out, m.graphs[g]...)
	}
	return out
}

// EvaluatePath implements the Path variants directly over in-memory quads,
// playing the role of the `SELECT ?v WHERE { <focus> <path-render> ?v }`
// template the engine issues. Results preserve first-seen order and
// de-duplicate repeated value nodes, matching a DISTINCT SELECT.
func (m *Memory) EvaluatePath(_ context.Context, ds Dataset, focus term.Term, p path.Path) ([]term.Term, error) {
	quads := m.datasetQuads(ds)
	results := evalPathStep(quads, []term.Term{focus}, p)
	return dedupTerms(results), nil
}

func evalPathStep(quads []Quad, from []term.Term, p path.Path) []term.Term {
	switch v := p.(type) {
	case path.Simple:
		var out []term.Term
		for _, f := range from {
			for _, q := range quads {
				if q.Subject == f && q.Predicate.Value() == v.IRI && q.Predicate.IsIRI() {
					out = append(out, q.Object)
				}
			}
		}
		return out
	case path.Inverse:
		var out []term.Term
		for _, f := range from {
			inner := v.Inner
			simple, ok := inner.(path.Simple)
			if !ok {
				// Inverse of a complex path: evaluate inner over every
				// candidate object-position node by brute force.
				for _, q := range quads {
					fwd := evalPathStep(quads, []term.Term{q.Subject}, inner)
					for _, t := range fwd {
						if t == f {
							out = append(out, q.Subject)
						}
					}
				}
				continue
			}
			for _, q := range quads {
				if q.Object == f && q.Predicate.IsIRI() && q.Predicate.Value() == simple.IRI {
					out = append(out, q.Subject)
				}
			}
		}
		return out
	case path.Sequence:
		cur := from
		for _, member := range v.Members {
			cur = dedupTerms(evalPathStep(quads, cur, member))
		}
		return cur
	case path.Alternative:
		var out []term.Term
		for _, member := range v.Members {
			out = append(out, evalPathStep(quads, from, member)...)
		}
		return out
	case path.ZeroOrMore:
		return closure(quads, from, v.Inner, true)
	case path.OneOrMore:
		return closure(quads, from, v.Inner, false)
	case path.ZeroOrOne:
		out := append([]term.Term(nil), from...)
		out = append(out, evalPathStep(quads, from, v.Inner)...)
		return out
	default:
		return nil
	}
}

// closure computes the reflexive-or-strict transitive closure of inner
// starting from the given frontier.
func closure(quads []Quad, from []term.Term, inner path.Path, includeSelf bool) []term.Term {
	seen := make(map[term.Term]bool)
	var out []term.Term
	if includeSelf {
		for _, f := range from {
			if !seen[f] {
				seen[f] = true
				out = append(out, f)
			}
		}
	}
	frontier := from
	for len(frontier) > 0 {
		next := evalPathStep(quads, frontier, inner)
		var fresh []term.Term
		for _, t := range next {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
				fresh = append(fresh, t)
			}
		}
		frontier = fresh
	}
	return out
}

func dedupTerms(ts []term.Term) []term.Term {
	seen := make(map[term.Term]bool, len(ts))
	out := make([]term.Term, 0, len(ts))
	for _, t := range ts {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}

// classClosurePredicate is the exact property path used throughout this
// engine for class-membership resolution.
const classClosurePredicate = "rdf:type/rdfs:subClassOf*"

// Select implements the small family of SELECT templates the engine
// issues: target-resolution queries, ad hoc BGPs of the form
// `{ <s-or-var> <p-or-var> <o-or-var> . ... }`, and the
// rdf:type/rdfs:subClassOf* traversal used by class-target and Class-
// component resolution.
func (m *Memory) Select(_ context.Context, ds Dataset, query string, bindings Bindings) ([]Solution, error) {
	quads := m.datasetQuads(ds)
	vars, patterns, err := parseSelect(query)
	if err != nil {
		return nil, err
	}
	rows := []Solution{{}}
	for _, pat := range patterns {
		rows = joinPattern(quads, rows, pat, bindings)
		if len(rows) == 0 {
			break
		}
	}
	out := make([]Solution, 0, len(rows))
	for _, row := range rows {
		sol := Solution{}
		for _, v := range vars {
			if t, ok := row[v]; ok {
				sol[v] = t
			}
		}
		out = append(out, sol)
	}
	return out, nil
}

// Ask runs query as a boolean existence check: true iff Select over the
// same BGP (with an empty projection) yields at least one solution.
func (m *Memory) Ask(ctx context.Context, ds Dataset, query string, bindings Bindings) (bool, error) {
	quads := m.datasetQuads(ds)
	_, patterns, err := parseAsk(query)
	if err != nil {
		return false, err
	}
	rows := []Solution{{}}
	for _, pat := range patterns {
		rows = joinPattern(quads, rows, pat, bindings)
		if len(rows) == 0 {
			return false, nil
		}
	}
	return len(rows) > 0, nil
}

type triplePattern struct {
	subject, predicate, object string // "?var", "$var", "<iri>", or classClosurePredicate
}

var selectHeaderRe = regexp.MustCompile(`(?is)^\s*SELECT\s+(DISTINCT\s+)?(.+?)\s+WHERE\s*\{(.*)\}\s*$`)
var askHeaderRe = regexp.MustCompile(`(?is)^\s*ASK\s*\{(.*)\}\s*$`)

func parseSelect(query string) (vars []string, patterns []triplePattern, err error) {
	m := selectHeaderRe.FindStringSubmatch(query)
	if m == nil {
		return nil, nil, fmt.Errorf("store: unsupported SELECT shape: %s", query)
	}
	for _, tok := range strings.Fields(m[2]) {
		vars = append(vars, strings.TrimLeft(tok, "?$"))
	}
	patterns, err = parseBGP(m[3])
	return vars, patterns, err
}

func parseAsk(query string) (vars []string, patterns []triplePattern, err error) {
	m := askHeaderRe.FindStringSubmatch(query)
	if m == nil {
		return nil, nil, fmt.Errorf("store: unsupported ASK shape: %s", query)
	}
	patterns, err = parseBGP(m[1])
	return nil, patterns, err
}

func parseBGP(body string) ([]triplePattern, error) {
	var patterns []triplePattern
	for _, stmt := range strings.Split(body, ".") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		toks := tokenizeTriple(stmt)
		if len(toks) == 3 {
			patterns = append(patterns, triplePattern{subject: toks[0], predicate: toks[1], object: toks[2]})
			continue
		}
		return nil, fmt.Errorf("store: unsupported BGP statement: %s", stmt)
	}
	return patterns, nil
}

func tokenizeTriple(stmt string) []string {
	if strings.Contains(stmt, classClosurePredicate) {
		parts := strings.SplitN(stmt, classClosurePredicate, 2)
		left := strings.TrimSpace(parts[0])
		right := strings.TrimSpace(parts[1])
		return []string{left, classClosurePredicate, right}
	}
	return strings.Fields(stmt)
}

func resolveToken(tok string, bindings Bindings) (term.Term, bool, string) {
	switch {
	case strings.HasPrefix(tok, "?") || strings.HasPrefix(tok, "$"):
		name := tok[1:]
		if t, ok := bindings[name]; ok {
			return t, true, ""
		}
		return term.Term{}, false, name
	case strings.HasPrefix(tok, "<") && strings.HasSuffix(tok, ">"):
		return term.NewIRI(tok[1 : len(tok)-1]), true, ""
	case tok == "rdf:type":
		return term.NewIRI(vocab.RDFType), true, ""
	default:
		return term.NewIRI(tok), true, ""
	}
}

func joinPattern(quads []Quad, rows []Solution, pat triplePattern, bindings Bindings) []Solution {
	if pat.predicate == classClosurePredicate {
		return joinClassPattern(quads, rows, pat, bindings)
	}
	var out []Solution
	for _, row := range rows {
		merged := mergeBindings(bindings, row)
		for _, q := range quads {
			nrow, ok := row.clone().tryBind(pat.subject, q.Subject, merged)
			if !ok {
				continue
			}
			nrow, ok = nrow.tryBind(pat.predicate, q.Predicate, merged)
			if !ok {
				continue
			}
			nrow, ok = nrow.tryBind(pat.object, q.Object, merged)
			if !ok {
				continue
			}
			out = append(out, nrow)
		}
	}
	return out
}

// joinClassPattern implements the rdf:type/rdfs:subClassOf* traversal: an
// instance matches ?c when it has rdf:type t and t = c or t is a
// (transitive) rdfs:subClassOf of c.
func joinClassPattern(quads []Quad, rows []Solution, pat triplePattern, bindings Bindings) []Solution {
	var out []Solution
	for _, row := range rows {
		merged := mergeBindings(bindings, row)
		for _, q := range quads {
			if !q.Predicate.IsIRI() || q.Predicate.Value() != vocab.RDFType {
				continue
			}
			for _, c := range classClosure(quads, q.Object) {
				nrow, ok := row.clone().tryBind(pat.subject, q.Subject, merged)
				if !ok {
					continue
				}
				nrow, ok = nrow.tryBind(pat.object, c, merged)
				if !ok {
					continue
				}
				out = append(out, nrow)
			}
		}
	}
	return out
}

func classClosure(quads []Quad, leaf term.Term) []term.Term {
	seen := map[term.Term]bool{leaf: true}
	out := []term.Term{leaf}
	frontier := []term.Term{leaf}
	for len(frontier) > 0 {
		var next []term.Term
		for _, f := range frontier {
			for _, q := range quads {
				if q.Subject == f && q.Predicate.IsIRI() && q.Predicate.Value() == vocab.RDFSSubClassOf && !seen[q.Object] {
					seen[q.Object] = true
					out = append(out, q.Object)
					next = append(next, q.Object)
				}
			}
		}
		frontier = next
	}
	return out
}

func mergeBindings(base Bindings, row Solution) Bindings {
	merged := make(Bindings, len(base)+len(row))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range row {
		merged[k] = v
	}
	return merged
}

func (s Solution) clone() Solution {
	out := make(Solution, len(s)+1)
	for k, v := range s {
		out[k] = v
	}
	return out
}

// tryBind attempts to unify tok (a variable token, IRI literal, or the
// class-closure pseudo-predicate) against candidate within row, returning
// the extended row and whether unification succeeded.
func (s Solution) tryBind(tok string, candidate term.Term, bindings Bindings) (Solution, bool) {
	t, resolved, varName := resolveToken(tok, bindings)
	if resolved {
		if t != candidate {
			return s, false
		}
		return s, true
	}
	if existing, ok := s[varName]; ok {
		return s, existing == candidate
	}
	next := s.clone()
	next[varName] = candidate
	return next, true
}
