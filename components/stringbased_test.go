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

func TestValidateMinMaxLength(t *testing.T) {
	minComp := &shapes.ComponentDescriptor{Kind: shapes.KindMinLength, Count: 3}
	results, err := components.ValidateMinLength(context.Background(), components.Env{}, nodeCtx(term.NewLiteral("ab", "")), minComp)
	require.NoError(t, err)
	assert.False(t, results[0].Pass)

	results, err = components.ValidateMinLength(context.Background(), components.Env{}, nodeCtx(term.NewLiteral("abc", "")), minComp)
	require.NoError(t, err)
	assert.True(t, results[0].Pass)

	t.Run("blank node has no length", func(t *testing.T) {
		results, err := components.ValidateMinLength(context.Background(), components.Env{}, nodeCtx(term.NewBlankNode("b0")), minComp)
		require.NoError(t, err)
		assert.False(t, results[0].Pass)
	})

	maxComp := &shapes.ComponentDescriptor{Kind: shapes.KindMaxLength, Count: 2}
	results, err = components.ValidateMaxLength(context.Background(), components.Env{}, nodeCtx(term.NewLiteral("abc", "")), maxComp)
	require.NoError(t, err)
	assert.False(t, results[0].Pass)
}

func TestValidatePattern(t *testing.T) {
	comp := &shapes.ComponentDescriptor{Kind: shapes.KindPattern, Pattern: `^[0-9]+$`}
	results, err := components.ValidatePattern(context.Background(), components.Env{}, nodeCtx(term.NewLiteral("123", "")), comp)
	require.NoError(t, err)
	assert.True(t, results[0].Pass)

	results, err = components.ValidatePattern(context.Background(), components.Env{}, nodeCtx(term.NewLiteral("12a", "")), comp)
	require.NoError(t, err)
	assert.False(t, results[0].Pass)

	t.Run("case-insensitive flag", func(t *testing.T) {
		ci := &shapes.ComponentDescriptor{Kind: shapes.KindPattern, Pattern: "^abc$", Flags: "i"}
		results, err := components.ValidatePattern(context.Background(), components.Env{}, nodeCtx(term.NewLiteral("ABC", "")), ci)
		require.NoError(t, err)
		assert.True(t, results[0].Pass)
	})
}

func TestValidateLanguageIn(t *testing.T) {
	comp := &shapes.ComponentDescriptor{Kind: shapes.KindLanguageIn, Langs: []string{"en"}}

	t.Run("exact match passes", func(t *testing.T) {
		results, err := components.ValidateLanguageIn(context.Background(), components.Env{}, nodeCtx(term.NewLangLiteral("hi", "en")), comp)
		require.NoError(t, err)
		assert.True(t, results[0].Pass)
	})

	t.Run("more specific tag passes", func(t *testing.T) {
		results, err := components.ValidateLanguageIn(context.Background(), components.Env{}, nodeCtx(term.NewLangLiteral("hi", "en-US")), comp)
		require.NoError(t, err)
		assert.True(t, results[0].Pass)
	})

	t.Run("unrelated tag fails", func(t *testing.T) {
		results, err := components.ValidateLanguageIn(context.Background(), components.Env{}, nodeCtx(term.NewLangLiteral("bonjour", "fr")), comp)
		require.NoError(t, err)
		assert.False(t, results[0].Pass)
	})

	t.Run("no language tag fails", func(t *testing.T) {
		results, err := components.ValidateLanguageIn(context.Background(), components.Env{}, nodeCtx(term.NewLiteral("hi", "")), comp)
		require.NoError(t, err)
		assert.False(t, results[0].Pass)
	})
}

func TestValidateUniqueLang(t *testing.T) {
	comp := &shapes.ComponentDescriptor{Kind: shapes.KindUniqueLang, Unique: true}

	t.Run("distinct languages pass", func(t *testing.T) {
		results, err := components.ValidateUniqueLang(context.Background(), components.Env{}, nodeCtx(term.NewLangLiteral("hi", "en"), term.NewLangLiteral("bonjour", "fr")), comp)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.True(t, results[0].Pass)
	})

	t.Run("duplicate language fails", func(t *testing.T) {
		results, err := components.ValidateUniqueLang(context.Background(), components.Env{}, nodeCtx(term.NewLangLiteral("hi", "en"), term.NewLangLiteral("hello", "en")), comp)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.False(t, results[0].Pass)
	})

	t.Run("not set always passes", func(t *testing.T) {
		off := &shapes.ComponentDescriptor{Kind: shapes.KindUniqueLang, Unique: false}
		results, err := components.ValidateUniqueLang(context.Background(), components.Env{}, nodeCtx(term.NewLangLiteral("hi", "en"), term.NewLangLiteral("hello", "en")), off)
		require.NoError(t, err)
		assert.True(t, results[0].Pass)
	})
}
