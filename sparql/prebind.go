// Package sparql assembles the prefix declarations and pre-bound variable
// substitutions SPARQL-based constraint components need, and analyses a
// query's text for the safety properties the pre-binding contract
// requires before execution.
package sparql

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/shaclgo/shacl/term"
)

// termToSparql renders a term as a SPARQL term literal suitable for
// substitution into query text: <iri>, a quoted/escaped string literal
// (optionally typed or language-tagged), or a blank node label.
func termToSparql(t term.Term) string {
	switch t.Kind() {
	case term.KindIRI:
		return "<" + t.Value() + ">"
	case term.KindBlankNode:
		return "_:" + t.Value()
	default:
		lex := strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(t.Value())
		if t.HasLang() {
			return fmt.Sprintf("%q@%s", lex, t.Lang())
		}
		if t.Datatype() != "" {
			return fmt.Sprintf("%q^^<%s>", lex, t.Datatype())
		}
		return fmt.Sprintf("%q", lex)
	}
}

var varTokenRe = regexp.MustCompile(`[?$][A-Za-z_][A-Za-z0-9_]*`)

// Mentions reports which of bindings' variable names actually occur in
// query as a `?name` or `$name` token, independent of which sigil the
// declaration itself used.
func Mentions(query string, names []string) map[string]bool {
	present := make(map[string]bool)
	for _, m := range varTokenRe.FindAllString(query, -1) {
		present[m[1:]] = true
	}
	out := make(map[string]bool, len(names))
	for _, n := range names {
		out[n] = present[n]
	}
	return out
}

// PreBind substitutes each binding into query text wherever the
// corresponding `?name`/`$name` variable token occurs — but only for
// variables the query actually mentions. Substitution uses whole-token
// replacement so `$this` does not also match inside `$thisOther`.
func PreBind(query string, bindings map[string]term.Term) string {
	if len(bindings) == 0 {
		return query
	}
	return varTokenRe.ReplaceAllStringFunc(query, func(tok string) string {
		name := tok[1:]
		if t, ok := bindings[name]; ok {
			return termToSparql(t)
		}
		return tok
	})
}

// SubstitutePath replaces the literal token $PATH with the rendered
// SPARQL property path of the parent property shape.
func SubstitutePath(query, pathSparql string) string {
	return strings.ReplaceAll(query, "$PATH", pathSparql)
}

// AssemblePrefixes merges one or more prefix maps (validator-local
// sh:prefixes/sh:declare plus the ontology environment's namespace map),
// erroring if two sources disagree on the namespace for the same
// prefix: duplicate prefixes mapping to different namespaces are a hard
// error.
func AssemblePrefixes(sources ...map[string]string) (map[string]string, error) {
	merged := make(map[string]string)
	for _, src := range sources {
		for prefix, ns := range src {
			if existing, ok := merged[prefix]; ok && existing != ns {
				return nil, fmt.Errorf("sparql: prefix %q maps to both %q and %q", prefix, existing, ns)
			}
			merged[prefix] = ns
		}
	}
	return merged, nil
}

// RenderPrefixes returns the `PREFIX p: <ns>` header block for merged
// prefixes, in a stable (sorted) order so rendered queries are
// deterministic across runs.
func RenderPrefixes(prefixes map[string]string) string {
	names := make([]string, 0, len(prefixes))
	for p := range prefixes {
		names = append(names, p)
	}
	sort.Strings(names)
	var b strings.Builder
	for _, p := range names {
		fmt.Fprintf(&b, "PREFIX %s: <%s>\n", p, prefixes[p])
	}
	return b.String()
}
