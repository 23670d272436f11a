package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAspectTags(t *testing.T) {
	keywords := []string{"service", "food", "parking"}

	t.Run("no match falls back to general", func(t *testing.T) {
		got := AspectTags("lovely weather today", keywords)
		assert.Equal(t, []string{"general"}, got)
	})

	t.Run("single match", func(t *testing.T) {
		got := AspectTags("the food was great", keywords)
		assert.Equal(t, []string{"food"}, got)
	})

	t.Run("case-insensitive match keeps canonical keyword", func(t *testing.T) {
		got := AspectTags("TERRIBLE SERVICE AND FOOD", keywords)
		assert.Equal(t, []string{"service", "food"}, got)
	})

	t.Run("matches keep configured order", func(t *testing.T) {
		got := AspectTags("parking was fine, food was not", keywords)
		assert.Equal(t, []string{"food", "parking"}, got)
	})

	t.Run("empty keyword list yields general", func(t *testing.T) {
		got := AspectTags("anything at all", nil)
		assert.Equal(t, []string{"general"}, got)
	})

	t.Run("deterministic", func(t *testing.T) {
		first := AspectTags("food and parking", keywords)
		second := AspectTags("food and parking", keywords)
		assert.Equal(t, first, second)
	})
}

func TestParseKeywords(t *testing.T) {
	got := ParseKeywords(" service, food ,,price ")
	assert.Equal(t, []string{"service", "food", "price"}, got)

	assert.Nil(t, ParseKeywords(""))
	assert.Nil(t, ParseKeywords(" , ,"))
}
