package sparql

import (
	"fmt"
	"regexp"
)

// UnsafeConstructError reports why a query was rejected by the
// pre-binding safety analyser.
type UnsafeConstructError struct {
	Reason string
}

func (e *UnsafeConstructError) Error() string {
	return "sparql: unsafe for pre-binding: " + e.Reason
}

var (
	forbiddenKeywordRe = regexp.MustCompile(`(?i)\b(VALUES|MINUS|SERVICE)\b`)
	nestedSelectRe     = regexp.MustCompile(`(?is)\bSELECT\b(.*?)\bWHERE\b\s*\{`)
)

// CheckSafe enforces the textual restrictions required before a query
// may be executed with pre-bound variables:
//
//   - no VALUES, MINUS, or SERVICE anywhere;
//   - no non-root Project (nested SELECT) omits a non-optional pre-bound
//     variable from its projection list.
//
// This is a textual approximation of a full SPARQL algebra walk — the
// real SPARQL parser/algebra lives in the external store — but it is
// sufficient to catch these constructs, the same way the
// constraint-component predicates are recognised by scanning triples
// rather than compiling a grammar.
func CheckSafe(query string, requiredPreBound []string) error {
	if m := forbiddenKeywordRe.FindString(query); m != "" {
		return &UnsafeConstructError{Reason: fmt.Sprintf("query contains %s, which may shadow a pre-bound variable", m)}
	}

	matches := nestedSelectRe.FindAllStringSubmatch(query, -1)
	if len(matches) <= 1 {
		// Zero or one SELECT: either an ASK-only body or the root SELECT
		// itself, neither of which is a "non-root Project".
		return nil
	}
	// matches[0] is the root SELECT; anything after is a nested sub-select.
	for _, m := range matches[1:] {
		projected := Mentions(m[1], requiredPreBound)
		for _, name := range requiredPreBound {
			if !projected[name] {
				return &UnsafeConstructError{
					Reason: fmt.Sprintf("nested SELECT does not project pre-bound variable ?%s, which would hide the pre-binding", name),
				}
			}
		}
	}
	return nil
}
