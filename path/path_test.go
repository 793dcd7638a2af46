package path_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaclgo/shacl/path"
)

func TestSimpleToSparql(t *testing.T) {
	p := path.Simple{IRI: "http://ex/knows"}
	assert.Equal(t, "<http://ex/knows>", p.ToSparql())
}

func TestNewSequenceRejectsDegenerate(t *testing.T) {
	_, err := path.NewSequence([]path.Path{path.Simple{IRI: "http://ex/a"}})
	assert.ErrorIs(t, err, path.ErrDegenerateList)

	_, err = path.NewSequence(nil)
	assert.ErrorIs(t, err, path.ErrDegenerateList)
}

func TestNewAlternativeRejectsDegenerate(t *testing.T) {
	_, err := path.NewAlternative([]path.Path{path.Simple{IRI: "http://ex/a"}})
	assert.ErrorIs(t, err, path.ErrDegenerateList)
}

func TestNestedUnaryModifiersAreParenthesized(t *testing.T) {
	p := path.ZeroOrMore{Inner: path.Inverse{Inner: path.Simple{IRI: "http://ex/p"}}}
	assert.Equal(t, "(^<http://ex/p>)*", p.ToSparql())
}

func TestRoundTripSimple(t *testing.T) {
	p := path.Simple{IRI: "http://ex/knows"}
	roundTrip(t, p)
}

func TestRoundTripInverse(t *testing.T) {
	p := path.Inverse{Inner: path.Simple{IRI: "http://ex/knows"}}
	roundTrip(t, p)
}

func TestRoundTripSequence(t *testing.T) {
	seq, err := path.NewSequence([]path.Path{
		path.Simple{IRI: "http://ex/a"},
		path.Simple{IRI: "http://ex/b"},
		path.Simple{IRI: "http://ex/c"},
	})
	require.NoError(t, err)
	roundTrip(t, seq)
}

func TestRoundTripAlternative(t *testing.T) {
	alt, err := path.NewAlternative([]path.Path{
		path.Simple{IRI: "http://ex/a"},
		path.Simple{IRI: "http://ex/b"},
	})
	require.NoError(t, err)
	roundTrip(t, alt)
}

func TestRoundTripZeroOrMore(t *testing.T) {
	roundTrip(t, path.ZeroOrMore{Inner: path.Simple{IRI: "http://ex/a"}})
}

func TestRoundTripOneOrMore(t *testing.T) {
	roundTrip(t, path.OneOrMore{Inner: path.Simple{IRI: "http://ex/a"}})
}

func TestRoundTripZeroOrOne(t *testing.T) {
	roundTrip(t, path.ZeroOrOne{Inner: path.Simple{IRI: "http://ex/a"}})
}

func TestRoundTripNestedUnaryModifiers(t *testing.T) {
	p := path.ZeroOrMore{Inner: path.Inverse{Inner: path.OneOrMore{Inner: path.Simple{IRI: "http://ex/p"}}}}
	roundTrip(t, p)
}

func TestRoundTripSequenceOfAlternatives(t *testing.T) {
	alt, err := path.NewAlternative([]path.Path{
		path.Simple{IRI: "http://ex/a"},
		path.Simple{IRI: "http://ex/b"},
	})
	require.NoError(t, err)
	seq, err := path.NewSequence([]path.Path{
		alt,
		path.Inverse{Inner: path.Simple{IRI: "http://ex/c"}},
	})
	require.NoError(t, err)
	roundTrip(t, seq)
}

func TestParseRejectsDegenerateSequenceParens(t *testing.T) {
	// A lone parenthesised IRI is legal SPARQL and should parse to the
	// unwrapped Simple, not fail or produce a single-member Sequence.
	p, err := path.Parse("(<http://ex/a>)")
	require.NoError(t, err)
	assert.True(t, p.Equal(path.Simple{IRI: "http://ex/a"}))
}

func TestParseUnterminatedIRI(t *testing.T) {
	_, err := path.Parse("<http://ex/a")
	assert.Error(t, err)
}

func TestParseTrailingGarbage(t *testing.T) {
	_, err := path.Parse("<http://ex/a> )")
	assert.Error(t, err)
}

func roundTrip(t *testing.T, p path.Path) {
	t.Helper()
	rendered := p.ToSparql()
	got, err := path.Parse(rendered)
	require.NoError(t, err, "parsing rendering %q", rendered)
	assert.True(t, p.Equal(got), "round trip mismatch: rendered %q, got %#v, want %#v", rendered, got, p)
	assert.Equal(t, rendered, got.ToSparql())
}
