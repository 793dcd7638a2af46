package components_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaclgo/shacl/components"
	"github.com/shaclgo/shacl/shapes"
	"github.com/shaclgo/shacl/term"
)

func nodeCtx(values ...term.Term) shapes.Context {
	return shapes.Context{FocusNode: term.NewIRI("http://ex/n0"), ValueNodes: values}
}

func TestValidateMinCount(t *testing.T) {
	comp := &shapes.ComponentDescriptor{Kind: shapes.KindMinCount, Count: 2}

	t.Run("enough values passes", func(t *testing.T) {
		results, err := components.ValidateMinCount(context.Background(), components.Env{}, nodeCtx(term.NewLiteral("a", ""), term.NewLiteral("b", "")), comp)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.True(t, results[0].Pass)
	})

	t.Run("too few values fails", func(t *testing.T) {
		results, err := components.ValidateMinCount(context.Background(), components.Env{}, nodeCtx(term.NewLiteral("a", "")), comp)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.False(t, results[0].Pass)
	})

	t.Run("MinCount(0) always passes", func(t *testing.T) {
		zero := &shapes.ComponentDescriptor{Kind: shapes.KindMinCount, Count: 0}
		results, err := components.ValidateMinCount(context.Background(), components.Env{}, nodeCtx(), zero)
		require.NoError(t, err)
		assert.True(t, results[0].Pass)
	})
}

func TestValidateMaxCount(t *testing.T) {
	comp := &shapes.ComponentDescriptor{Kind: shapes.KindMaxCount, Count: 1}

	t.Run("within bound passes", func(t *testing.T) {
		results, err := components.ValidateMaxCount(context.Background(), components.Env{}, nodeCtx(term.NewLiteral("a", "")), comp)
		require.NoError(t, err)
		assert.True(t, results[0].Pass)
	})

	t.Run("exceeds bound fails", func(t *testing.T) {
		results, err := components.ValidateMaxCount(context.Background(), components.Env{}, nodeCtx(term.NewLiteral("a", ""), term.NewLiteral("b", "")), comp)
		require.NoError(t, err)
		assert.False(t, results[0].Pass)
	})

	t.Run("MaxCount(0) fails iff value nodes non-empty", func(t *testing.T) {
		zero := &shapes.ComponentDescriptor{Kind: shapes.KindMaxCount, Count: 0}
		results, err := components.ValidateMaxCount(context.Background(), components.Env{}, nodeCtx(), zero)
		require.NoError(t, err)
		assert.True(t, results[0].Pass)

		results, err = components.ValidateMaxCount(context.Background(), components.Env{}, nodeCtx(term.NewLiteral("a", "")), zero)
		require.NoError(t, err)
		assert.False(t, results[0].Pass)
	})
}
