package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/WhyTonyGit/SmartCook/internal/models"
	"github.com/WhyTonyGit/SmartCook/internal/testhelpers"
)

func setupIngredientService(t *testing.T) (*IngredientService, *gorm.DB) {
	t.Helper()
	db := testhelpers.SetupTestDB(t)
	return NewIngredientService(db, nil, zap.NewNop()), db
}

func seedCatalog(t *testing.T, db *gorm.DB, names ...string) []models.Ingredient {
	t.Helper()
	out := make([]models.Ingredient, len(names))
	for i, n := range names {
		out[i] = models.Ingredient{Name: n}
		require.NoError(t, db.Create(&out[i]).Error)
	}
	return out
}

func TestIngredientService_Catalog(t *testing.T) {
	svc, db := setupIngredientService(t)
	seedCatalog(t, db, "мука", "яйца")

	catalog, err := svc.Catalog(context.Background())
	require.NoError(t, err)
	require.Len(t, catalog, 2)
	assert.Equal(t, "мука", catalog[0].Name)
}

func TestIngredientService_Search(t *testing.T) {
	svc, db := setupIngredientService(t)
	seedCatalog(t, db, "перец", "болгарский перец", "мука")

	results, err := svc.Search(context.Background(), "перец", 10)
	require.NoError(t, err)
	assert.Len(t, results, 2)

	results, err = svc.Search(context.Background(), "", 2)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestIngredientService_Resolve(t *testing.T) {
	svc, db := setupIngredientService(t)
	ings := seedCatalog(t, db, "перец", "болгарский перец", "мука")
	ctx := context.Background()

	// Free text resolves via mutual containment: "перец" matches both
	// entries, "болгарский" only the longer one.
	ids, err := svc.Resolve(ctx, []string{"перец"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{ings[0].ID, ings[1].ID}, ids)

	ids, err = svc.Resolve(ctx, []string{"болгарский"})
	require.NoError(t, err)
	assert.Equal(t, []uint{ings[1].ID}, ids)

	// Numeric tokens pass through as ids.
	ids, err = svc.Resolve(ctx, []string{"42"})
	require.NoError(t, err)
	assert.Equal(t, []uint{42}, ids)

	ids, err = svc.Resolve(ctx, []string{"шоколад"})
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestIngredientService_CreateRejectsNormalizedDuplicate(t *testing.T) {
	svc, _ := setupIngredientService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "Свёкла", "")
	require.NoError(t, err)

	_, err = svc.Create(ctx, "  свекла ", "")
	assert.True(t, IsValidation(err))

	_, err = svc.Create(ctx, "   ", "")
	assert.True(t, IsValidation(err))
}

func TestIngredientService_GetAndDelete(t *testing.T) {
	svc, db := setupIngredientService(t)
	ings := seedCatalog(t, db, "мука")
	ctx := context.Background()

	got, err := svc.Get(ctx, ings[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "мука", got.Name)

	_, err = svc.Get(ctx, 9999)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.Delete(ctx, ings[0].ID))
	assert.ErrorIs(t, svc.Delete(ctx, ings[0].ID), ErrNotFound)
}
