package components_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaclgo/shacl/components"
	"github.com/shaclgo/shacl/shapes"
	"github.com/shaclgo/shacl/term"
	"github.com/shaclgo/shacl/vocab"
)

func intTerm(v string) term.Term { return term.NewLiteral(v, vocab.XSDInteger) }

func TestValidateMinInclusive(t *testing.T) {
	comp := &shapes.ComponentDescriptor{Kind: shapes.KindMinInclusive, Bound: intTerm("5")}

	t.Run("equal bound passes", func(t *testing.T) {
		results, err := components.ValidateMinInclusive(context.Background(), components.Env{}, nodeCtx(intTerm("5")), comp)
		require.NoError(t, err)
		assert.True(t, results[0].Pass)
	})

	t.Run("below bound fails", func(t *testing.T) {
		results, err := components.ValidateMinInclusive(context.Background(), components.Env{}, nodeCtx(intTerm("4")), comp)
		require.NoError(t, err)
		assert.False(t, results[0].Pass)
	})

	t.Run("non-comparable value fails", func(t *testing.T) {
		results, err := components.ValidateMinInclusive(context.Background(), components.Env{}, nodeCtx(term.NewLiteral("not a number", vocab.XSDString)), comp)
		require.NoError(t, err)
		assert.False(t, results[0].Pass)
	})
}

func TestValidateMaxExclusive(t *testing.T) {
	comp := &shapes.ComponentDescriptor{Kind: shapes.KindMaxExclusive, Bound: intTerm("5")}

	t.Run("strictly below passes", func(t *testing.T) {
		results, err := components.ValidateMaxExclusive(context.Background(), components.Env{}, nodeCtx(intTerm("4")), comp)
		require.NoError(t, err)
		assert.True(t, results[0].Pass)
	})

	t.Run("equal bound fails", func(t *testing.T) {
		results, err := components.ValidateMaxExclusive(context.Background(), components.Env{}, nodeCtx(intTerm("5")), comp)
		require.NoError(t, err)
		assert.False(t, results[0].Pass)
	})
}

func TestValidateMinExclusiveMaxInclusive(t *testing.T) {
	minExcl := &shapes.ComponentDescriptor{Kind: shapes.KindMinExclusive, Bound: intTerm("5")}
	results, err := components.ValidateMinExclusive(context.Background(), components.Env{}, nodeCtx(intTerm("5")), minExcl)
	require.NoError(t, err)
	assert.False(t, results[0].Pass)

	maxIncl := &shapes.ComponentDescriptor{Kind: shapes.KindMaxInclusive, Bound: intTerm("5")}
	results, err = components.ValidateMaxInclusive(context.Background(), components.Env{}, nodeCtx(intTerm("5")), maxIncl)
	require.NoError(t, err)
	assert.True(t, results[0].Pass)
}
