package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/WhyTonyGit/SmartCook/internal/models"
	"github.com/WhyTonyGit/SmartCook/internal/testhelpers"
)

type recipeFixture struct {
	db          *gorm.DB
	svc         *RecipeService
	ingredients []models.Ingredient
	categories  []models.Category
	recipes     []models.Recipe
	consumer    models.Consumer
}

func setupRecipeFixture(t *testing.T) *recipeFixture {
	t.Helper()
	db := testhelpers.SetupTestDB(t)

	f := &recipeFixture{db: db, svc: NewRecipeService(db, zap.NewNop())}

	names := []string{"мука", "яйца", "молоко", "сахар", "орехи"}
	for _, n := range names {
		ing := models.Ingredient{Name: n}
		require.NoError(t, db.Create(&ing).Error)
		f.ingredients = append(f.ingredients, ing)
	}
	for _, n := range []string{"Завтраки", "Десерты"} {
		cat := models.Category{Name: n}
		require.NoError(t, db.Create(&cat).Error)
		f.categories = append(f.categories, cat)
	}

	ing := func(i ...int) []models.Ingredient {
		var out []models.Ingredient
		for _, idx := range i {
			out = append(out, f.ingredients[idx])
		}
		return out
	}
	recipes := []models.Recipe{
		{
			Title: "Блины", CookingTime: 30, Difficulty: models.DifficultyEasy,
			Ingredients: ing(0, 1, 2),
			Categories:  []models.Category{f.categories[0]},
		},
		{
			Title: "Ореховый десерт", CookingTime: 20, Difficulty: models.DifficultyMedium,
			Ingredients: ing(3, 4),
			Categories:  []models.Category{f.categories[1]},
		},
		{
			Title: "Омлет", CookingTime: 10, Difficulty: models.DifficultyEasy,
			Ingredients: ing(1, 2),
			Categories:  []models.Category{f.categories[0]},
		},
	}
	for i := range recipes {
		require.NoError(t, db.Create(&recipes[i]).Error)
		f.recipes = append(f.recipes, recipes[i])
	}

	f.consumer = models.Consumer{Username: "alice", Email: "alice@example.com", PasswordHash: "x", Role: models.RoleUser}
	require.NoError(t, db.Create(&f.consumer).Error)
	return f
}

func (f *recipeFixture) ingredientID(i int) uint { return f.ingredients[i].ID }

func TestRecipeService_SearchComputesMatch(t *testing.T) {
	f := setupRecipeFixture(t)
	ctx := context.Background()

	results, err := f.svc.Search(ctx, SearchParams{
		HasIngredients:    true,
		UserIngredientIDs: []uint{f.ingredientID(0), f.ingredientID(1)},
		Sort:              "match",
	})
	require.NoError(t, err)
	require.Len(t, results, 3)

	byTitle := make(map[string]RecipeResult)
	for _, r := range results {
		byTitle[r.Title] = r
	}

	bliny := byTitle["Блины"]
	require.NotNil(t, bliny.MatchPercent)
	assert.InDelta(t, 2.0/3.0, *bliny.MatchPercent, 1e-9)
	require.Len(t, bliny.MissingIngredients, 1)
	assert.Equal(t, "молоко", bliny.MissingIngredients[0].Name)

	// Best match first.
	assert.Equal(t, "Блины", results[0].Title)
}

func TestRecipeService_SearchMinMatch(t *testing.T) {
	f := setupRecipeFixture(t)

	results, err := f.svc.Search(context.Background(), SearchParams{
		HasIngredients:    true,
		UserIngredientIDs: []uint{f.ingredientID(0), f.ingredientID(1)},
		MinMatch:          0.6,
		Sort:              "match",
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Блины", results[0].Title)
}

func TestRecipeService_SearchForbiddenExcludes(t *testing.T) {
	f := setupRecipeFixture(t)

	results, err := f.svc.Search(context.Background(), SearchParams{
		ForbiddenIDs: []uint{f.ingredientID(4)},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.NotEqual(t, "Ореховый десерт", r.Title)
	}
}

func TestRecipeService_SearchWithoutIngredientsHasNilMatch(t *testing.T) {
	f := setupRecipeFixture(t)

	results, err := f.svc.Search(context.Background(), SearchParams{})
	require.NoError(t, err)
	require.Len(t, results, 3)
	for _, r := range results {
		assert.Nil(t, r.MatchPercent)
	}
	// Default ordering is newest first.
	assert.Equal(t, "Омлет", results[0].Title)
	assert.Equal(t, "Блины", results[2].Title)
}

func TestRecipeService_SearchFilters(t *testing.T) {
	f := setupRecipeFixture(t)
	ctx := context.Background()

	results, err := f.svc.Search(ctx, SearchParams{MaxTime: 15})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Омлет", results[0].Title)

	results, err = f.svc.Search(ctx, SearchParams{CategoryID: f.categories[1].ID})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Ореховый десерт", results[0].Title)

	results, err = f.svc.Search(ctx, SearchParams{Query: "омлет"})
	require.NoError(t, err)
	require.Len(t, results, 1)

	// Unknown difficulty is ignored rather than rejected.
	results, err = f.svc.Search(ctx, SearchParams{Difficulty: "impossible"})
	require.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestRecipeService_GetIncludesOrderedSteps(t *testing.T) {
	f := setupRecipeFixture(t)
	ctx := context.Background()

	// Steps are stored out of order; the detail response must sort them
	// by number.
	learning := models.Learning{
		Title:    "Как приготовить блины",
		RecipeID: f.recipes[0].ID,
		Steps: []models.LearningStep{
			{Title: "Подача", Description: "Подавайте тёплыми.", Number: 3},
			{Title: "Подготовка", Description: "Смешайте ингредиенты.", Number: 1},
			{Title: "Готовка", Description: "Обжарьте с двух сторон.", Number: 2},
		},
	}
	require.NoError(t, f.db.Create(&learning).Error)

	result, err := f.svc.Get(ctx, f.recipes[0].ID, nil, false)
	require.NoError(t, err)
	require.Len(t, result.Steps, 3)
	assert.Equal(t, "Подготовка", result.Steps[0].Title)
	assert.Equal(t, "Готовка", result.Steps[1].Title)
	assert.Equal(t, "Подача", result.Steps[2].Title)

	// A recipe without a walkthrough simply has no steps.
	result, err = f.svc.Get(ctx, f.recipes[1].ID, nil, false)
	require.NoError(t, err)
	assert.Empty(t, result.Steps)

	// Search listings never carry the walkthrough.
	listed, err := f.svc.Search(ctx, SearchParams{})
	require.NoError(t, err)
	for _, r := range listed {
		assert.Empty(t, r.Steps)
	}
}

func TestRecipeService_MissingIngredients(t *testing.T) {
	f := setupRecipeFixture(t)

	missing, err := f.svc.MissingIngredients(context.Background(), f.recipes[0].ID, []uint{f.ingredientID(0)})
	require.NoError(t, err)
	require.Len(t, missing, 2)

	_, err = f.svc.MissingIngredients(context.Background(), 9999, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecipeService_CreateValidation(t *testing.T) {
	f := setupRecipeFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, &models.Recipe{CookingTime: 10, Difficulty: models.DifficultyEasy}, []uint{f.ingredientID(0)}, nil)
	assert.True(t, IsValidation(err))

	_, err = f.svc.Create(ctx, &models.Recipe{Title: "Кекс", CookingTime: 10, Difficulty: "brutal"}, []uint{f.ingredientID(0)}, nil)
	assert.True(t, IsValidation(err))

	_, err = f.svc.Create(ctx, &models.Recipe{Title: "Кекс", CookingTime: 10, Difficulty: models.DifficultyEasy}, nil, nil)
	assert.True(t, IsValidation(err))

	created, err := f.svc.Create(ctx, &models.Recipe{Title: "Кекс", CookingTime: 40, Difficulty: models.DifficultyEasy},
		[]uint{f.ingredientID(0), f.ingredientID(3)}, []uint{f.categories[1].ID})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Len(t, created.Ingredients, 2)
}

func TestRecipeService_UpdateReplacesAssociations(t *testing.T) {
	f := setupRecipeFixture(t)
	ctx := context.Background()

	updated, err := f.svc.Update(ctx, f.recipes[2].ID,
		&models.Recipe{Title: "Омлет с сыром"},
		[]uint{f.ingredientID(1)}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Омлет с сыром", updated.Title)
	require.Len(t, updated.Ingredients, 1)
	assert.Equal(t, f.ingredientID(1), updated.Ingredients[0].ID)

	_, err = f.svc.Update(ctx, 9999, &models.Recipe{Title: "x"}, nil, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecipeService_FavoritesFlow(t *testing.T) {
	f := setupRecipeFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.AddFavorite(ctx, f.consumer.ID, f.recipes[0].ID))

	favs, err := f.svc.Favorites(ctx, f.consumer.ID)
	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.Equal(t, "Блины", favs[0].Title)
	assert.Equal(t, 1, favs[0].FavoritesCount)

	require.NoError(t, f.svc.RemoveFavorite(ctx, f.consumer.ID, f.recipes[0].ID))
	favs, err = f.svc.Favorites(ctx, f.consumer.ID)
	require.NoError(t, err)
	assert.Empty(t, favs)

	assert.ErrorIs(t, f.svc.AddFavorite(ctx, f.consumer.ID, 9999), ErrNotFound)
}

func TestRecipeService_HistoryOrderAndUpsert(t *testing.T) {
	f := setupRecipeFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.AddToHistory(ctx, f.consumer.ID, f.recipes[0].ID))
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, f.svc.AddToHistory(ctx, f.consumer.ID, f.recipes[1].ID))
	time.Sleep(10 * time.Millisecond)
	// Re-view bumps the first recipe back to the top.
	require.NoError(t, f.svc.AddToHistory(ctx, f.consumer.ID, f.recipes[0].ID))

	history, err := f.svc.History(ctx, f.consumer.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, f.recipes[0].ID, history[0].ID)
	assert.Equal(t, f.recipes[1].ID, history[1].ID)
}

func TestRecipeService_Recommendations(t *testing.T) {
	f := setupRecipeFixture(t)
	ctx := context.Background()

	// Viewing "Блины" (category Завтраки) should suggest the other
	// breakfast recipe but never the viewed one.
	require.NoError(t, f.svc.AddToHistory(ctx, f.consumer.ID, f.recipes[0].ID))

	recs, err := f.svc.Recommendations(ctx, f.consumer.ID)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Омлет", recs[0].Title)
}

func TestRecipeService_RecommendationsWithoutHistory(t *testing.T) {
	f := setupRecipeFixture(t)

	// Most favorited recipe comes first when there is no history.
	other := models.Consumer{Username: "bob", Email: "bob@example.com", PasswordHash: "x", Role: models.RoleUser}
	require.NoError(t, f.db.Create(&other).Error)
	require.NoError(t, f.svc.AddFavorite(context.Background(), other.ID, f.recipes[1].ID))

	recs, err := f.svc.Recommendations(context.Background(), f.consumer.ID)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, "Ореховый десерт", recs[0].Title)
}

func TestRecipeService_RecommendationsRespectForbidden(t *testing.T) {
	f := setupRecipeFixture(t)
	ctx := context.Background()

	require.NoError(t, f.db.Model(&f.consumer).Association("ForbiddenIngredients").Append(&f.ingredients[4]))

	recs, err := f.svc.Recommendations(ctx, f.consumer.ID)
	require.NoError(t, err)
	for _, r := range recs {
		assert.NotEqual(t, "Ореховый десерт", r.Title)
	}
}
