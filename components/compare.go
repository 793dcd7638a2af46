package components

import (
	"strconv"
	"time"

	"github.com/shaclgo/shacl/term"
	"github.com/shaclgo/shacl/vocab"
)

// compare orders two terms under XSD numeric/date ordering. ok is false
// when the terms cannot be compared (non-literal, or datatypes too unlike
// to order).
func compare(a, b term.Term) (cmp int, ok bool) {
	if !a.IsLiteral() || !b.IsLiteral() {
		return 0, false
	}
	if af, aok := asFloat(a); aok {
		if bf, bok := asFloat(b); bok {
			switch {
			case af < bf:
				return -1, true
			case af > bf:
				return 1, true
			default:
				return 0, true
			}
		}
	}
	if at, aok := asTime(a); aok {
		if bt, bok := asTime(b); bok {
			switch {
			case at.Before(bt):
				return -1, true
			case at.After(bt):
				return 1, true
			default:
				return 0, true
			}
		}
	}
	return 0, false
}

func isNumericDatatype(dt string) bool {
	switch dt {
	case vocab.XSDInteger, vocab.XSDDecimal, vocab.XSDDouble, vocab.XSDFloat:
		return true
	default:
		return false
	}
}

func asFloat(t term.Term) (float64, bool) {
	if !isNumericDatatype(t.Datatype()) {
		return 0, false
	}
	f, err := strconv.ParseFloat(t.Value(), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func asTime(t term.Term) (time.Time, bool) {
	switch t.Datatype() {
	case vocab.XSDDateTime:
		parsed, err := time.Parse(time.RFC3339, t.Value())
		if err != nil {
			return time.Time{}, false
		}
		return parsed, true
	case vocab.XSDDate:
		parsed, err := time.Parse("2006-01-02", t.Value())
		if err != nil {
			return time.Time{}, false
		}
		return parsed, true
	default:
		return time.Time{}, false
	}
}
