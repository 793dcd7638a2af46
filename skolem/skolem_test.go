package skolem_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaclgo/shacl/skolem"
	"github.com/shaclgo/shacl/store"
	"github.com/shaclgo/shacl/term"
)

func TestStableIDIsDeterministic(t *testing.T) {
	a := skolem.StableID("http://ex/g", "b0")
	b := skolem.StableID("http://ex/g", "b0")
	assert.Equal(t, a, b)
}

func TestStableIDDistinguishesGraphs(t *testing.T) {
	a := skolem.StableID("http://ex/g1", "b0")
	b := skolem.StableID("http://ex/g2", "b0")
	assert.NotEqual(t, a, b)
}

func TestSkolemizeRewritesBlankNodes(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	require.NoError(t, mem.AddGraph(ctx, "http://ex/g", []store.Quad{
		{Subject: term.NewBlankNode("b0"), Predicate: term.NewIRI("http://ex/p"), Object: term.NewLiteral("v", "")},
	}))

	require.NoError(t, skolem.Skolemize(ctx, mem, "http://ex/g"))

	quads, err := mem.Quads(ctx, "http://ex/g")
	require.NoError(t, err)
	require.Len(t, quads, 1)
	assert.True(t, quads[0].Subject.IsIRI())
	assert.Contains(t, quads[0].Subject.Value(), "http://ex/g/.well-known/skolem/")
}

func TestSkolemizeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	require.NoError(t, mem.AddGraph(ctx, "http://ex/g", []store.Quad{
		{Subject: term.NewBlankNode("b0"), Predicate: term.NewIRI("http://ex/p"), Object: term.NewLiteral("v", "")},
	}))
	require.NoError(t, skolem.Skolemize(ctx, mem, "http://ex/g"))
	first, _ := mem.Quads(ctx, "http://ex/g")
	require.NoError(t, skolem.Skolemize(ctx, mem, "http://ex/g"))
	second, _ := mem.Quads(ctx, "http://ex/g")
	assert.Equal(t, first, second)
}
