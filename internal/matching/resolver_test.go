package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testCatalog = []CatalogIngredient{
	{ID: 3, Name: "перец"},
	{ID: 7, Name: "болгарский перец"},
	{ID: 11, Name: "томат"},
	{ID: 12, Name: "свёкла"},
}

func TestResolveNumericTokens(t *testing.T) {
	ids := ResolveIngredients([]string{"7", " 11 ", "999"}, testCatalog)
	// Unknown ids pass through untouched; existence is checked downstream.
	assert.Equal(t, []uint{7, 11, 999}, ids)
}

func TestResolveContainmentBothDirections(t *testing.T) {
	// Abbreviated query matches the longer catalog name...
	ids := ResolveIngredients([]string{"перец"}, testCatalog)
	assert.Contains(t, ids, uint(7))
	// ...and the shorter catalog name matches a more specific query.
	assert.Contains(t, ids, uint(3))

	ids = ResolveIngredients([]string{"болгарский перец"}, testCatalog)
	assert.Contains(t, ids, uint(7))
	assert.Contains(t, ids, uint(3))
	assert.NotContains(t, ids, uint(11))
}

func TestResolveNormalizesVariants(t *testing.T) {
	ids := ResolveIngredients([]string{"  СВЕКЛА "}, testCatalog)
	assert.Equal(t, []uint{12}, ids)
}

func TestResolveEmptyTokenNeverMatches(t *testing.T) {
	assert.Empty(t, ResolveIngredients([]string{"", "   ", "\t"}, testCatalog))
}

func TestResolveDeduplicates(t *testing.T) {
	ids := ResolveIngredients([]string{"7", "болгарский перец", "перец"}, testCatalog)
	assert.Equal(t, []uint{3, 7}, ids)
}
