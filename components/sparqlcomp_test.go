package components_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaclgo/shacl/components"
	"github.com/shaclgo/shacl/shapes"
	"github.com/shaclgo/shacl/store"
	"github.com/shaclgo/shacl/term"
)

func TestValidateSparql(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	require.NoError(t, mem.AddGraph(ctx, "http://ex/data", []store.Quad{
		{Subject: term.NewIRI("http://ex/n0"), Predicate: term.NewIRI("http://ex/bad"), Object: term.NewLiteral("oops", "")},
	}))
	model := shapes.NewModel("http://ex/shapes", "http://ex/data")
	shapeTerm := term.NewIRI("http://ex/PersonShape")
	shapeID := model.NodeShapeIDs.Intern(shapeTerm)
	env := components.Env{
		Store: mem, Model: model, DataGraph: store.UnionDataset("http://ex/data"),
	}
	comp := &shapes.ComponentDescriptor{
		Kind:  shapes.KindSparql,
		Query: `SELECT ?value WHERE { $this <http://ex/bad> ?value . }`,
	}
	vctx := shapes.NewNodeContext(term.NewIRI("http://ex/n0"), shapeID)

	results, err := components.ValidateSparql(ctx, env, vctx, comp)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].Pass)
	assert.Equal(t, term.NewLiteral("oops", ""), results[0].Failure.FailedValueNode)
}

func TestValidateSparqlNoMatchesPasses(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	require.NoError(t, mem.AddGraph(ctx, "http://ex/data", nil))
	model := shapes.NewModel("http://ex/shapes", "http://ex/data")
	shapeID := model.NodeShapeIDs.Intern(term.NewIRI("http://ex/PersonShape"))
	env := components.Env{Store: mem, Model: model, DataGraph: store.UnionDataset("http://ex/data")}
	comp := &shapes.ComponentDescriptor{
		Kind:  shapes.KindSparql,
		Query: `SELECT ?value WHERE { $this <http://ex/bad> ?value . }`,
	}
	vctx := shapes.NewNodeContext(term.NewIRI("http://ex/n0"), shapeID)

	results, err := components.ValidateSparql(ctx, env, vctx, comp)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Pass)
}
