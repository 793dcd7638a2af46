package components_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaclgo/shacl/components"
	"github.com/shaclgo/shacl/ids"
	"github.com/shaclgo/shacl/shapes"
	"github.com/shaclgo/shacl/store"
	"github.com/shaclgo/shacl/term"
)

func conformsTo(conforming ids.NodeShapeID) func(context.Context, term.Term, ids.NodeShapeID) (bool, error) {
	return func(_ context.Context, _ term.Term, shape ids.NodeShapeID) (bool, error) {
		return shape == conforming, nil
	}
}

func TestValidateNot(t *testing.T) {
	env := components.Env{Conforms: conformsTo(ids.NodeShapeID(1))}
	comp := &shapes.ComponentDescriptor{Kind: shapes.KindNot, Shape: ids.NodeShapeID(1)}

	results, err := components.ValidateNot(context.Background(), env, nodeCtx(), comp)
	require.NoError(t, err)
	assert.False(t, results[0].Pass)

	comp2 := &shapes.ComponentDescriptor{Kind: shapes.KindNot, Shape: ids.NodeShapeID(2)}
	results, err = components.ValidateNot(context.Background(), env, nodeCtx(), comp2)
	require.NoError(t, err)
	assert.True(t, results[0].Pass)
}

func TestValidateAndOrXone(t *testing.T) {
	env := components.Env{Conforms: conformsTo(ids.NodeShapeID(1))}

	and := &shapes.ComponentDescriptor{Kind: shapes.KindAnd, Shapes: []ids.NodeShapeID{1, 1}}
	results, err := components.ValidateAnd(context.Background(), env, nodeCtx(), and)
	require.NoError(t, err)
	assert.True(t, results[0].Pass)

	andFail := &shapes.ComponentDescriptor{Kind: shapes.KindAnd, Shapes: []ids.NodeShapeID{1, 2}}
	results, err = components.ValidateAnd(context.Background(), env, nodeCtx(), andFail)
	require.NoError(t, err)
	assert.False(t, results[0].Pass)

	or := &shapes.ComponentDescriptor{Kind: shapes.KindOr, Shapes: []ids.NodeShapeID{2, 1}}
	results, err = components.ValidateOr(context.Background(), env, nodeCtx(), or)
	require.NoError(t, err)
	assert.True(t, results[0].Pass)

	xone := &shapes.ComponentDescriptor{Kind: shapes.KindXone, Shapes: []ids.NodeShapeID{1, 2}}
	results, err = components.ValidateXone(context.Background(), env, nodeCtx(), xone)
	require.NoError(t, err)
	assert.True(t, results[0].Pass)

	xoneFail := &shapes.ComponentDescriptor{Kind: shapes.KindXone, Shapes: []ids.NodeShapeID{1, 1}}
	results, err = components.ValidateXone(context.Background(), env, nodeCtx(), xoneFail)
	require.NoError(t, err)
	assert.False(t, results[0].Pass)
}

func TestValidateNode(t *testing.T) {
	env := components.Env{Conforms: conformsTo(ids.NodeShapeID(1))}
	comp := &shapes.ComponentDescriptor{Kind: shapes.KindNode, Shape: ids.NodeShapeID(1)}

	results, err := components.ValidateNode(context.Background(), env, nodeCtx(term.NewLiteral("a", "")), comp)
	require.NoError(t, err)
	assert.True(t, results[0].Pass)
}

func TestValidateProperty(t *testing.T) {
	called := false
	env := components.Env{
		ValidateProperty: func(_ context.Context, _ shapes.Context, ps ids.PropertyShapeID) ([]shapes.ComponentValidationResult, error) {
			called = true
			assert.Equal(t, ids.PropertyShapeID(7), ps)
			return []shapes.ComponentValidationResult{shapes.Passed()}, nil
		},
	}
	comp := &shapes.ComponentDescriptor{Kind: shapes.KindProperty, PropertyShape: ids.PropertyShapeID(7)}
	results, err := components.ValidateProperty(context.Background(), env, nodeCtx(), comp)
	require.NoError(t, err)
	assert.True(t, called)
	assert.True(t, results[0].Pass)
}

func TestValidateQualifiedValueShape(t *testing.T) {
	env := components.Env{Conforms: conformsTo(ids.NodeShapeID(1))}
	comp := &shapes.ComponentDescriptor{
		Kind: shapes.KindQualifiedValueShape, Shape: ids.NodeShapeID(1),
		QMin: 1, HasQMin: true, QMax: 2, HasQMax: true,
	}
	results, err := components.ValidateQualifiedValueShape(context.Background(), env, nodeCtx(term.NewLiteral("a", ""), term.NewLiteral("b", "")), comp)
	require.NoError(t, err)
	assert.True(t, results[0].Pass)

	tooFew := &shapes.ComponentDescriptor{Kind: shapes.KindQualifiedValueShape, Shape: ids.NodeShapeID(2), QMin: 1, HasQMin: true}
	results, err = components.ValidateQualifiedValueShape(context.Background(), env, nodeCtx(term.NewLiteral("a", "")), tooFew)
	require.NoError(t, err)
	assert.False(t, results[0].Pass)
}

func TestValidateClosed(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	require.NoError(t, mem.AddGraph(ctx, "http://ex/data", []store.Quad{
		{Subject: term.NewIRI("http://ex/n0"), Predicate: term.NewIRI("http://ex/allowed"), Object: term.NewLiteral("a", "")},
		{Subject: term.NewIRI("http://ex/n0"), Predicate: term.NewIRI("http://ex/extra"), Object: term.NewLiteral("b", "")},
	}))
	env := components.Env{
		Store: mem, DataGraph: store.UnionDataset("http://ex/data"),
		SiblingPropertyPaths: func(_ ids.NodeShapeID, _ ids.PropertyShapeID) []string {
			return []string{"http://ex/allowed"}
		},
	}
	comp := &shapes.ComponentDescriptor{Kind: shapes.KindClosed}
	ctx2 := shapes.Context{FocusNode: term.NewIRI("http://ex/n0"), SourceIsNode: true}

	results, err := components.ValidateClosed(ctx, env, ctx2, comp)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].Pass)
	assert.Contains(t, results[0].Failure.Message, "http://ex/extra")
}
