package ids_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaclgo/shacl/ids"
	"github.com/shaclgo/shacl/term"
)

func TestInternIsIdempotent(t *testing.T) {
	tbl := ids.NewTable[ids.NodeShapeID]()
	a := term.NewIRI("http://ex/S")
	id1 := tbl.Intern(a)
	id2 := tbl.Intern(a)
	assert.Equal(t, id1, id2)
	assert.Equal(t, 1, tbl.Len())
}

func TestInternIsReversible(t *testing.T) {
	tbl := ids.NewTable[ids.ComponentID]()
	want := term.NewIRI("http://ex/S/minCount")
	id := tbl.Intern(want)
	got, ok := tbl.Term(id)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestDistinctTermsGetDistinctIDs(t *testing.T) {
	tbl := ids.NewTable[ids.PropertyShapeID]()
	id1 := tbl.Intern(term.NewIRI("http://ex/A"))
	id2 := tbl.Intern(term.NewIRI("http://ex/B"))
	assert.NotEqual(t, id1, id2)
}

func TestLookupWithoutInterning(t *testing.T) {
	tbl := ids.NewTable[ids.NodeShapeID]()
	_, ok := tbl.Lookup(term.NewIRI("http://ex/missing"))
	assert.False(t, ok)
}

func TestZeroIDIsNeverIssued(t *testing.T) {
	tbl := ids.NewTable[ids.NodeShapeID]()
	id := tbl.Intern(term.NewIRI("http://ex/S"))
	assert.False(t, id.IsZero())
	var zero ids.NodeShapeID
	assert.True(t, zero.IsZero())
}
