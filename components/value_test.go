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
	"github.com/shaclgo/shacl/vocab"
)

func TestValidateHasValue(t *testing.T) {
	comp := &shapes.ComponentDescriptor{Kind: shapes.KindHasValue, Value: term.NewIRI("http://ex/required")}

	results, err := components.ValidateHasValue(context.Background(), components.Env{}, nodeCtx(term.NewIRI("http://ex/required"), term.NewIRI("http://ex/other")), comp)
	require.NoError(t, err)
	assert.True(t, results[0].Pass)

	results, err = components.ValidateHasValue(context.Background(), components.Env{}, nodeCtx(term.NewIRI("http://ex/other")), comp)
	require.NoError(t, err)
	assert.False(t, results[0].Pass)
}

func TestValidateIn(t *testing.T) {
	comp := &shapes.ComponentDescriptor{Kind: shapes.KindIn, Values: []term.Term{term.NewLiteral("a", ""), term.NewLiteral("b", "")}}

	results, err := components.ValidateIn(context.Background(), components.Env{}, nodeCtx(term.NewLiteral("a", "")), comp)
	require.NoError(t, err)
	assert.True(t, results[0].Pass)

	results, err = components.ValidateIn(context.Background(), components.Env{}, nodeCtx(term.NewLiteral("c", "")), comp)
	require.NoError(t, err)
	assert.False(t, results[0].Pass)
}

func TestValidateDatatype(t *testing.T) {
	comp := &shapes.ComponentDescriptor{Kind: shapes.KindDatatype, Datatype: term.NewIRI(vocab.XSDInteger)}

	results, err := components.ValidateDatatype(context.Background(), components.Env{}, nodeCtx(intTerm("5")), comp)
	require.NoError(t, err)
	assert.True(t, results[0].Pass)

	results, err = components.ValidateDatatype(context.Background(), components.Env{}, nodeCtx(term.NewLiteral("5", vocab.XSDString)), comp)
	require.NoError(t, err)
	assert.False(t, results[0].Pass)
}

func TestValidateNodeKind(t *testing.T) {
	comp := &shapes.ComponentDescriptor{Kind: shapes.KindNodeKind, NodeKind: shapes.NodeKindIRI}

	results, err := components.ValidateNodeKind(context.Background(), components.Env{}, nodeCtx(term.NewIRI("http://ex/a")), comp)
	require.NoError(t, err)
	assert.True(t, results[0].Pass)

	results, err = components.ValidateNodeKind(context.Background(), components.Env{}, nodeCtx(term.NewBlankNode("b0")), comp)
	require.NoError(t, err)
	assert.False(t, results[0].Pass)
}

func TestValidateClass(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	require.NoError(t, mem.AddGraph(ctx, "http://ex/data", []store.Quad{
		{Subject: term.NewIRI("http://ex/alice"), Predicate: term.NewIRI(vocab.RDFType), Object: term.NewIRI("http://ex/Employee")},
		{Subject: term.NewIRI("http://ex/Employee"), Predicate: term.NewIRI(vocab.RDFSSubClassOf), Object: term.NewIRI("http://ex/Person")},
	}))
	env := components.Env{Store: mem, DataGraph: store.UnionDataset("http://ex/data")}
	comp := &shapes.ComponentDescriptor{Kind: shapes.KindClass, Class: term.NewIRI("http://ex/Person")}

	t.Run("transitive subclass membership passes", func(t *testing.T) {
		results, err := components.ValidateClass(ctx, env, nodeCtx(term.NewIRI("http://ex/alice")), comp)
		require.NoError(t, err)
		assert.True(t, results[0].Pass)
	})

	t.Run("literal value fails", func(t *testing.T) {
		results, err := components.ValidateClass(ctx, env, nodeCtx(term.NewLiteral("not a node", "")), comp)
		require.NoError(t, err)
		assert.False(t, results[0].Pass)
	})

	t.Run("unrelated instance fails", func(t *testing.T) {
		require.NoError(t, mem.AddGraph(ctx, "http://ex/data", []store.Quad{
			{Subject: term.NewIRI("http://ex/bob"), Predicate: term.NewIRI(vocab.RDFType), Object: term.NewIRI("http://ex/Robot")},
		}))
		results, err := components.ValidateClass(ctx, env, nodeCtx(term.NewIRI("http://ex/bob")), comp)
		require.NoError(t, err)
		assert.False(t, results[0].Pass)
	})
}
