package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/WhyTonyGit/SmartCook/internal/models"
	"github.com/WhyTonyGit/SmartCook/internal/service"
	"github.com/WhyTonyGit/SmartCook/internal/testhelpers"
)

// TestSearchPipelineOnPostgres runs the full account/catalog/search flow
// against a real PostgreSQL instance.
func TestSearchPipelineOnPostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-based test in short mode")
	}
	db := testhelpers.SetupPostgresDB(t)
	logger := zap.NewNop()
	ctx := context.Background()

	authService := service.NewAuthService(db, "integration-secret")
	ingredientService := service.NewIngredientService(db, nil, logger)
	recipeService := service.NewRecipeService(db, logger)
	consumerService := service.NewConsumerService(db)

	token, err := authService.Register(ctx, "alice", "alice@example.com", "", "secret1")
	require.NoError(t, err)
	claims, err := authService.ValidateToken(token)
	require.NoError(t, err)

	var ingredients []models.Ingredient
	for _, name := range []string{"мука", "яйца", "молоко", "орехи"} {
		ing, err := ingredientService.Create(ctx, name, "")
		require.NoError(t, err)
		ingredients = append(ingredients, *ing)
	}

	bliny, err := recipeService.Create(ctx, &models.Recipe{
		Title: "Блины", CookingTime: 30, Difficulty: models.DifficultyEasy,
	}, []uint{ingredients[0].ID, ingredients[1].ID, ingredients[2].ID}, nil)
	require.NoError(t, err)
	dessert, err := recipeService.Create(ctx, &models.Recipe{
		Title: "Ореховый десерт", CookingTime: 20, Difficulty: models.DifficultyMedium,
	}, []uint{ingredients[3].ID}, nil)
	require.NoError(t, err)

	// Free-text resolution feeds the match pipeline.
	ids, err := ingredientService.Resolve(ctx, []string{"мука", "яйца"})
	require.NoError(t, err)
	require.Len(t, ids, 2)

	results, err := recipeService.Search(ctx, service.SearchParams{
		HasIngredients:    true,
		UserIngredientIDs: ids,
		Sort:              "match",
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, bliny.ID, results[0].ID)
	require.NotNil(t, results[0].MatchPercent)
	assert.InDelta(t, 2.0/3.0, *results[0].MatchPercent, 1e-9)

	// Forbidden ingredients veto recipes for the consumer.
	_, err = consumerService.SetForbiddenIngredients(ctx, claims.ConsumerID, []uint{ingredients[3].ID})
	require.NoError(t, err)
	consumer, err := authService.GetConsumer(ctx, claims.ConsumerID)
	require.NoError(t, err)
	require.Len(t, consumer.ForbiddenIngredients, 1)

	results, err = recipeService.Search(ctx, service.SearchParams{
		ForbiddenIDs: []uint{ingredients[3].ID},
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, bliny.ID, results[0].ID)

	// History drives recommendations; viewed recipes never come back.
	require.NoError(t, recipeService.AddToHistory(ctx, claims.ConsumerID, bliny.ID))
	recs, err := recipeService.Recommendations(ctx, claims.ConsumerID)
	require.NoError(t, err)
	for _, r := range recs {
		assert.NotEqual(t, bliny.ID, r.ID)
		assert.NotEqual(t, dessert.ID, r.ID)
	}
}
