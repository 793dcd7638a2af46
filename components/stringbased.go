package components

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"

	"github.com/shaclgo/shacl/shapes"
	"github.com/shaclgo/shacl/term"
)

// stringLength measures the lexical form of a literal, or the IRI string of
// an IRI; a blank node has no length and always fails min/max length.
func stringLength(v term.Term) int {
	return utf8.RuneCountInString(v.Value())
}

func ValidateMinLength(_ context.Context, _ Env, vctx shapes.Context, comp *shapes.ComponentDescriptor) ([]shapes.ComponentValidationResult, error) {
	var results []shapes.ComponentValidationResult
	for _, v := range vctx.ValueNodes {
		if v.IsBlankNode() {
			results = append(results, fail(vctx, comp, v, true, "blank nodes have no length"))
			continue
		}
		n := stringLength(v)
		if n < comp.Count {
			results = append(results, fail(vctx, comp, v, true, fmt.Sprintf("length %d is less than minLength %d", n, comp.Count)))
			continue
		}
		results = append(results, shapes.Passed())
	}
	return orPass(results), nil
}

func ValidateMaxLength(_ context.Context, _ Env, vctx shapes.Context, comp *shapes.ComponentDescriptor) ([]shapes.ComponentValidationResult, error) {
	var results []shapes.ComponentValidationResult
	for _, v := range vctx.ValueNodes {
		if v.IsBlankNode() {
			results = append(results, fail(vctx, comp, v, true, "blank nodes have no length"))
			continue
		}
		n := stringLength(v)
		if n > comp.Count {
			results = append(results, fail(vctx, comp, v, true, fmt.Sprintf("length %d exceeds maxLength %d", n, comp.Count)))
			continue
		}
		results = append(results, shapes.Passed())
	}
	return orPass(results), nil
}

// translatePattern rewrites SHACL/XPath regex flags into Go's RE2 inline
// flag syntax. The "x" (extended, ignore unescaped whitespace) flag has no
// RE2 equivalent, so it is applied by stripping whitespace from the pattern
// itself before compiling.
func translatePattern(pattern, flags string) (string, error) {
	if strings.ContainsRune(flags, 'x') {
		var b strings.Builder
		for _, r := range pattern {
			if r == ' ' || r == '\t' || r == '\n' {
				continue
			}
			b.WriteRune(r)
		}
		pattern = b.String()
	}
	var inline strings.Builder
	for _, f := range flags {
		switch f {
		case 'i', 's', 'm':
			inline.WriteRune(f)
		}
	}
	if inline.Len() == 0 {
		return pattern, nil
	}
	return "(?" + inline.String() + ")" + pattern, nil
}

func ValidatePattern(_ context.Context, _ Env, vctx shapes.Context, comp *shapes.ComponentDescriptor) ([]shapes.ComponentValidationResult, error) {
	translated, err := translatePattern(comp.Pattern, comp.Flags)
	if err != nil {
		return nil, err
	}
	re, err := regexp.Compile(translated)
	if err != nil {
		return nil, fmt.Errorf("sh:pattern %q: %w", comp.Pattern, err)
	}
	var results []shapes.ComponentValidationResult
	for _, v := range vctx.ValueNodes {
		if v.IsBlankNode() {
			results = append(results, fail(vctx, comp, v, true, "pattern requires a literal or IRI value"))
			continue
		}
		if !re.MatchString(v.Value()) {
			results = append(results, fail(vctx, comp, v, true, fmt.Sprintf("value does not match pattern %q", comp.Pattern)))
			continue
		}
		results = append(results, shapes.Passed())
	}
	return orPass(results), nil
}

// langMatches reports whether tag satisfies range under SHACL's BCP47
// matching (an exact case-insensitive match, "*", or range is a prefix of
// tag followed by '-').
func langMatches(rangeTag, tag string) bool {
	if rangeTag == "*" {
		return true
	}
	rb, err1 := language.Parse(rangeTag)
	tb, err2 := language.Parse(tag)
	if err1 != nil || err2 != nil {
		return strings.EqualFold(rangeTag, tag)
	}
	rBase, _ := rb.Base()
	tBase, _ := tb.Base()
	if !strings.EqualFold(rBase.String(), tBase.String()) {
		return false
	}
	return strings.EqualFold(rangeTag, tag) || strings.HasPrefix(strings.ToLower(tag), strings.ToLower(rangeTag)+"-")
}

func ValidateLanguageIn(_ context.Context, _ Env, vctx shapes.Context, comp *shapes.ComponentDescriptor) ([]shapes.ComponentValidationResult, error) {
	var results []shapes.ComponentValidationResult
	for _, v := range vctx.ValueNodes {
		if !v.HasLang() {
			results = append(results, fail(vctx, comp, v, true, "value has no language tag"))
			continue
		}
		matched := false
		for _, rng := range comp.Langs {
			if langMatches(rng, v.Lang()) {
				matched = true
				break
			}
		}
		if !matched {
			results = append(results, fail(vctx, comp, v, true, fmt.Sprintf("language %q not in %v", v.Lang(), comp.Langs)))
			continue
		}
		results = append(results, shapes.Passed())
	}
	return orPass(results), nil
}

// ValidateUniqueLang fails once any language tag is shared by more than
// one value node; this is a whole-path constraint, not per-value-node.
func ValidateUniqueLang(_ context.Context, _ Env, vctx shapes.Context, comp *shapes.ComponentDescriptor) ([]shapes.ComponentValidationResult, error) {
	if !comp.Unique {
		return []shapes.ComponentValidationResult{shapes.Passed()}, nil
	}
	seen := map[string]int{}
	for _, v := range vctx.ValueNodes {
		if v.HasLang() {
			seen[strings.ToLower(v.Lang())]++
		}
	}
	var results []shapes.ComponentValidationResult
	for lang, count := range seen {
		if count > 1 {
			results = append(results, fail(vctx, comp, term.Term{}, false, fmt.Sprintf("language %q is used by %d value nodes", lang, count)))
		}
	}
	if len(results) == 0 {
		return []shapes.ComponentValidationResult{shapes.Passed()}, nil
	}
	return results, nil
}

// orPass normalises an empty per-value-node result slice (no value nodes at
// all) to a single Pass, since "for all value nodes" is vacuously true.
func orPass(results []shapes.ComponentValidationResult) []shapes.ComponentValidationResult {
	if len(results) == 0 {
		return []shapes.ComponentValidationResult{shapes.Passed()}
	}
	return results
}
