// Package rules models the SHACL-AF rules vocabulary (sh:rule,
// sh:TripleRule, sh:SPARQLRule) so shapes graphs that declare rules parse
// without error. Rules execution is out of scope: a Rule is parsed and
// attached to its owning NodeShape and never invoked by the validator,
// grounded on original_source's lib/src/model/rules.rs
// scaffold-but-don't-execute treatment.
package rules

import "github.com/shaclgo/shacl/term"

// Kind identifies a rule's variant.
type Kind uint8

const (
	KindTriple Kind = iota
	KindSPARQL
)

func (k Kind) String() string {
	switch k {
	case KindTriple:
		return "TripleRule"
	case KindSPARQL:
		return "SPARQLRule"
	default:
		return "Rule(?)"
	}
}

// Rule is a single sh:rule entry. For a TripleRule, Subject/Predicate/
// Object hold the rule's template terms (any of which may be a variable
// term such as "this" or "?var", left uninterpreted since rules are never
// executed). For a SPARQLRule, Construct holds the CONSTRUCT query text.
type Rule struct {
	Kind      Kind
	Subject   term.Term
	Predicate term.Term
	Object    term.Term
	Construct string
}
