package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/WhyTonyGit/SmartCook/internal/matching"
	"github.com/WhyTonyGit/SmartCook/internal/models"
)

// historyWindow is how many recent views the recommender samples.
const historyWindow = 5

// recommendationLimit caps the recommendation result list.
const recommendationLimit = 10

// SearchParams carries one recipe search request. HasIngredients is true
// when the caller supplied an ingredient set, even one that resolved to
// nothing; only then are match fractions computed and MinMatch applied.
type SearchParams struct {
	UserIngredientIDs []uint
	HasIngredients    bool
	ForbiddenIDs      []uint
	Query             string
	MaxTime           int
	Difficulty        string
	CategoryID        uint
	MinMatch          float64
	Sort              string
}

// RecipeResult is a recipe annotated with match and aggregate data.
// MatchPercent is null in JSON when no ingredient set was supplied.
// Steps carries the ordered cooking walkthrough and is only populated on
// the detail path, never in search listings.
type RecipeResult struct {
	models.Recipe
	MatchPercent       *float64              `json:"match_percent"`
	MissingIngredients []models.Ingredient   `json:"missing_ingredients"`
	AvgRating          float64               `json:"avg_rating"`
	CommentsCount      int                   `json:"comments_count"`
	FavoritesCount     int                   `json:"favorites_count"`
	Steps              []models.LearningStep `json:"steps,omitempty"`
}

// RecipeService runs the search/match/rank pipeline over the catalog and
// manages recipes, favorites and view history.
type RecipeService struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewRecipeService creates a new RecipeService instance.
func NewRecipeService(db *gorm.DB, logger *zap.Logger) *RecipeService {
	return &RecipeService{db: db, logger: logger}
}

// Search loads a candidate snapshot and runs the matching pipeline over it.
func (s *RecipeService) Search(ctx context.Context, params SearchParams) ([]RecipeResult, error) {
	var recipes []models.Recipe
	if err := s.db.WithContext(ctx).
		Preload("Ingredients").
		Preload("Categories").
		Preload("Marks").
		Preload("Comments").
		Find(&recipes).Error; err != nil {
		return nil, err
	}

	favCounts, err := s.favoriteCounts(ctx)
	if err != nil {
		return nil, err
	}

	candidates := make([]matching.Candidate, len(recipes))
	byID := make(map[uint]*models.Recipe, len(recipes))
	for i := range recipes {
		r := &recipes[i]
		byID[r.ID] = r
		candidates[i] = candidateFor(r, favCounts[r.ID])
	}

	ranked := matching.Search(candidates, matching.Query{
		HasIngredients: params.HasIngredients,
		IngredientIDs:  params.UserIngredientIDs,
		ForbiddenIDs:   params.ForbiddenIDs,
		Text:           params.Query,
		MaxTime:        params.MaxTime,
		Difficulty:     params.Difficulty,
		CategoryID:     params.CategoryID,
		MinMatch:       params.MinMatch,
		Sort:           matching.SortPolicy(params.Sort),
	})

	results := make([]RecipeResult, 0, len(ranked))
	for _, hit := range ranked {
		results = append(results, resultFor(byID[hit.ID], hit))
	}
	return results, nil
}

// Get retrieves one recipe, annotated with match info when an ingredient
// set was supplied.
func (s *RecipeService) Get(ctx context.Context, id uint, userIngredientIDs []uint, hasIngredients bool) (*RecipeResult, error) {
	recipe, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	favCounts, err := s.favoriteCounts(ctx)
	if err != nil {
		return nil, err
	}

	hit := matching.Result{Candidate: candidateFor(recipe, favCounts[recipe.ID])}
	if hasIngredients {
		percent, missing := matching.ComputeMatch(hit.IngredientIDs, userIngredientIDs)
		hit.MatchPercent = &percent
		hit.MissingIDs = missing
	}
	result := resultFor(recipe, hit)
	return &result, nil
}

// MissingIngredients returns the required ingredients of a recipe that are
// absent from the supplied set.
func (s *RecipeService) MissingIngredients(ctx context.Context, recipeID uint, userIngredientIDs []uint) ([]models.Ingredient, error) {
	recipe, err := s.load(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	required := ingredientIDs(recipe.Ingredients)
	_, missingIDs := matching.ComputeMatch(required, userIngredientIDs)
	return pickIngredients(recipe.Ingredients, missingIDs), nil
}

// Create validates and stores a new recipe with its associations.
func (s *RecipeService) Create(ctx context.Context, recipe *models.Recipe, ingredientIDs, categoryIDs []uint) (*models.Recipe, error) {
	if err := validateRecipe(recipe); err != nil {
		return nil, err
	}
	if len(ingredientIDs) == 0 {
		return nil, validation("ingredients", "at least one ingredient is required")
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ingredients []models.Ingredient
		if err := tx.Find(&ingredients, ingredientIDs).Error; err != nil {
			return err
		}
		recipe.Ingredients = ingredients

		if len(categoryIDs) > 0 {
			var categories []models.Category
			if err := tx.Find(&categories, categoryIDs).Error; err != nil {
				return err
			}
			recipe.Categories = categories
		}
		return tx.Create(recipe).Error
	})
	if err != nil {
		return nil, err
	}
	return recipe, nil
}

// Update applies changed fields and, when ids are given, replaces the
// ingredient/category associations.
func (s *RecipeService) Update(ctx context.Context, id uint, updates *models.Recipe, ingredientIDs, categoryIDs []uint) (*models.Recipe, error) {
	recipe, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if updates.Title != "" {
		recipe.Title = updates.Title
	}
	if updates.Description != "" {
		recipe.Description = updates.Description
	}
	if updates.CookingTime != 0 {
		recipe.CookingTime = updates.CookingTime
	}
	if updates.Difficulty != "" {
		recipe.Difficulty = updates.Difficulty
	}
	if updates.ImageURL != "" {
		recipe.ImageURL = updates.ImageURL
	}
	if err := validateRecipe(recipe); err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Ingredients", "Categories", "Learning").Save(recipe).Error; err != nil {
			return err
		}
		if ingredientIDs != nil {
			var ingredients []models.Ingredient
			if err := tx.Find(&ingredients, ingredientIDs).Error; err != nil {
				return err
			}
			if err := tx.Model(recipe).Association("Ingredients").Replace(ingredients); err != nil {
				return err
			}
		}
		if categoryIDs != nil {
			var categories []models.Category
			if err := tx.Find(&categories, categoryIDs).Error; err != nil {
				return err
			}
			if err := tx.Model(recipe).Association("Categories").Replace(categories); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.load(ctx, id)
}

// Delete removes a recipe.
func (s *RecipeService) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Recipe{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// AddFavorite marks a recipe as a consumer favorite.
func (s *RecipeService) AddFavorite(ctx context.Context, consumerID, recipeID uint) error {
	consumer, recipe, err := s.loadConsumerAndRecipe(ctx, consumerID, recipeID)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Model(consumer).Association("FavoriteRecipes").Append(recipe)
}

// RemoveFavorite removes a recipe from a consumer's favorites.
func (s *RecipeService) RemoveFavorite(ctx context.Context, consumerID, recipeID uint) error {
	consumer, recipe, err := s.loadConsumerAndRecipe(ctx, consumerID, recipeID)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Model(consumer).Association("FavoriteRecipes").Delete(recipe)
}

// Favorites lists a consumer's favorite recipes with aggregates.
func (s *RecipeService) Favorites(ctx context.Context, consumerID uint) ([]RecipeResult, error) {
	var consumer models.Consumer
	err := s.db.WithContext(ctx).
		Preload("FavoriteRecipes.Ingredients").
		Preload("FavoriteRecipes.Categories").
		Preload("FavoriteRecipes.Marks").
		Preload("FavoriteRecipes.Comments").
		First(&consumer, consumerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.annotate(ctx, consumer.FavoriteRecipes)
}

// AddToHistory records a recipe view, bumping viewed_at on re-views.
func (s *RecipeService) AddToHistory(ctx context.Context, consumerID, recipeID uint) error {
	if _, _, err := s.loadConsumerAndRecipe(ctx, consumerID, recipeID); err != nil {
		return err
	}
	view := models.RecipeView{ConsumerID: consumerID, RecipeID: recipeID, ViewedAt: time.Now().UTC()}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "consumer_id"}, {Name: "recipe_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"viewed_at"}),
	}).Create(&view).Error
}

// History lists viewed recipes, most recent first.
func (s *RecipeService) History(ctx context.Context, consumerID uint) ([]RecipeResult, error) {
	recipes, err := s.historyRecipes(ctx, consumerID)
	if err != nil {
		return nil, err
	}
	return s.annotate(ctx, recipes)
}

// Recommendations derives a filter from the consumer's recent views and
// returns the most popular recipes it yields: the last viewed recipes
// contribute their category and ingredient sets, already-viewed recipes are
// excluded and the list is capped. Without history it falls back to global
// popularity. Forbidden ingredients always apply.
func (s *RecipeService) Recommendations(ctx context.Context, consumerID uint) ([]RecipeResult, error) {
	var consumer models.Consumer
	if err := s.db.WithContext(ctx).Preload("ForbiddenIngredients").First(&consumer, consumerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	forbiddenIDs := ingredientIDs(consumer.ForbiddenIngredients)

	history, err := s.historyRecipes(ctx, consumerID)
	if err != nil {
		return nil, err
	}

	params := SearchParams{ForbiddenIDs: forbiddenIDs, Sort: string(matching.SortByPopular)}
	viewed := make(map[uint]struct{}, len(history))
	for _, r := range history {
		viewed[r.ID] = struct{}{}
	}

	if len(history) > 0 {
		recent := history
		if len(recent) > historyWindow {
			recent = recent[:historyWindow]
		}
		// Union of category and ingredient ids over the recent views,
		// kept in first-encountered order so the chosen category is
		// deterministic.
		var catIDs, ingIDs []uint
		seenCat := make(map[uint]struct{})
		seenIng := make(map[uint]struct{})
		for _, r := range recent {
			for _, c := range r.Categories {
				if _, ok := seenCat[c.ID]; !ok {
					seenCat[c.ID] = struct{}{}
					catIDs = append(catIDs, c.ID)
				}
			}
			for _, ing := range r.Ingredients {
				if _, ok := seenIng[ing.ID]; !ok {
					seenIng[ing.ID] = struct{}{}
					ingIDs = append(ingIDs, ing.ID)
				}
			}
		}
		if len(catIDs) > 0 {
			params.CategoryID = catIDs[0]
		}
		if len(ingIDs) > 0 {
			params.UserIngredientIDs = ingIDs
			params.HasIngredients = true
		}
	}

	results, err := s.Search(ctx, params)
	if err != nil {
		return nil, err
	}

	recommended := make([]RecipeResult, 0, recommendationLimit)
	for _, r := range results {
		if _, ok := viewed[r.ID]; ok {
			continue
		}
		recommended = append(recommended, r)
		if len(recommended) == recommendationLimit {
			break
		}
	}
	return recommended, nil
}

func (s *RecipeService) load(ctx context.Context, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.WithContext(ctx).
		Preload("Ingredients").
		Preload("Categories").
		Preload("Marks").
		Preload("Comments").
		Preload("Learning.Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("number ASC")
		}).
		First(&recipe, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

func (s *RecipeService) loadConsumerAndRecipe(ctx context.Context, consumerID, recipeID uint) (*models.Consumer, *models.Recipe, error) {
	var consumer models.Consumer
	if err := s.db.WithContext(ctx).First(&consumer, consumerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	return &consumer, &recipe, nil
}

// historyRecipes returns viewed recipes ordered by viewed_at descending.
func (s *RecipeService) historyRecipes(ctx context.Context, consumerID uint) ([]models.Recipe, error) {
	var views []models.RecipeView
	if err := s.db.WithContext(ctx).
		Where("consumer_id = ?", consumerID).
		Order("viewed_at DESC").
		Find(&views).Error; err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, nil
	}

	ids := make([]uint, len(views))
	for i, v := range views {
		ids[i] = v.RecipeID
	}

	var recipes []models.Recipe
	if err := s.db.WithContext(ctx).
		Preload("Ingredients").
		Preload("Categories").
		Preload("Marks").
		Preload("Comments").
		Find(&recipes, ids).Error; err != nil {
		return nil, err
	}

	// Restore recency order.
	byID := make(map[uint]models.Recipe, len(recipes))
	for _, r := range recipes {
		byID[r.ID] = r
	}
	ordered := make([]models.Recipe, 0, len(ids))
	for _, id := range ids {
		if r, ok := byID[id]; ok {
			ordered = append(ordered, r)
		}
	}
	return ordered, nil
}

// annotate wraps plain recipes in RecipeResults with aggregates and no
// match information, preserving the input order.
func (s *RecipeService) annotate(ctx context.Context, recipes []models.Recipe) ([]RecipeResult, error) {
	favCounts, err := s.favoriteCounts(ctx)
	if err != nil {
		return nil, err
	}
	results := make([]RecipeResult, 0, len(recipes))
	for i := range recipes {
		r := &recipes[i]
		results = append(results, resultFor(r, matching.Result{Candidate: candidateFor(r, favCounts[r.ID])}))
	}
	return results, nil
}

func (s *RecipeService) favoriteCounts(ctx context.Context) (map[uint]int, error) {
	var rows []struct {
		RecipeID uint
		N        int
	}
	err := s.db.WithContext(ctx).
		Table("consumer_recipe_fav").
		Select("recipe_id, COUNT(*) AS n").
		Group("recipe_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[uint]int, len(rows))
	for _, row := range rows {
		counts[row.RecipeID] = row.N
	}
	return counts, nil
}

func candidateFor(r *models.Recipe, favorites int) matching.Candidate {
	return matching.Candidate{
		ID:            r.ID,
		Title:         r.Title,
		CookingTime:   r.CookingTime,
		Difficulty:    matching.Difficulty(r.Difficulty),
		IngredientIDs: ingredientIDs(r.Ingredients),
		CategoryIDs:   categoryIDs(r.Categories),
		AvgRating:     avgRating(r.Marks),
		FavoriteCount: favorites,
	}
}

func resultFor(r *models.Recipe, hit matching.Result) RecipeResult {
	result := RecipeResult{
		Recipe:             *r,
		MatchPercent:       hit.MatchPercent,
		MissingIngredients: pickIngredients(r.Ingredients, hit.MissingIDs),
		AvgRating:          hit.AvgRating,
		CommentsCount:      len(r.Comments),
		FavoritesCount:     hit.FavoriteCount,
	}
	if r.Learning != nil {
		result.Steps = r.Learning.Steps
	}
	return result
}

func validateRecipe(r *models.Recipe) error {
	if r.Title == "" {
		return validation("title", "title is required")
	}
	if r.CookingTime <= 0 {
		return validation("cooking_time", "cooking time must be a positive number of minutes")
	}
	if _, ok := matching.ParseDifficulty(r.Difficulty); !ok {
		return validation("difficulty", "difficulty must be easy, medium or hard")
	}
	return nil
}

func ingredientIDs(ingredients []models.Ingredient) []uint {
	ids := make([]uint, len(ingredients))
	for i, ing := range ingredients {
		ids[i] = ing.ID
	}
	return ids
}

func categoryIDs(categories []models.Category) []uint {
	ids := make([]uint, len(categories))
	for i, c := range categories {
		ids[i] = c.ID
	}
	return ids
}

func pickIngredients(ingredients []models.Ingredient, ids []uint) []models.Ingredient {
	if len(ids) == 0 {
		return []models.Ingredient{}
	}
	want := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	picked := make([]models.Ingredient, 0, len(ids))
	for _, ing := range ingredients {
		if _, ok := want[ing.ID]; ok {
			picked = append(picked, ing)
		}
	}
	return picked
}

func avgRating(marks []models.Mark) float64 {
	if len(marks) == 0 {
		return 0.0
	}
	sum := 0
	for _, m := range marks {
		sum += m.Value
	}
	return float64(sum) / float64(len(marks))
}
