package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/WhyTonyGit/SmartCook/internal/middleware"
	"github.com/WhyTonyGit/SmartCook/internal/models"
	"github.com/WhyTonyGit/SmartCook/internal/service"
)

type RecipeHandler struct {
	recipes     *service.RecipeService
	ingredients *service.IngredientService
	authService *service.AuthService
}

func NewRecipeHandler(recipes *service.RecipeService, ingredients *service.IngredientService, authService *service.AuthService) *RecipeHandler {
	return &RecipeHandler{
		recipes:     recipes,
		ingredients: ingredients,
		authService: authService,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	optional := middleware.OptionalAuthMiddleware(h.authService)
	authed := middleware.AuthMiddleware(h.authService)
	admin := middleware.RequireAdmin()

	recipes := router.Group("/recipes")
	{
		recipes.GET("", optional, h.Search)
		recipes.GET("/:id", optional, h.Get)
		recipes.GET("/:id/missing", h.Missing)
		recipes.POST("", authed, admin, h.Create)
		recipes.PUT("/:id", authed, admin, h.Update)
		recipes.DELETE("/:id", authed, admin, h.Delete)
	}

	router.GET("/favourites", authed, h.Favorites)
	router.POST("/favourites", authed, h.AddFavorite)
	router.DELETE("/favourites/:id", authed, h.RemoveFavorite)

	router.GET("/history", authed, h.History)
	router.POST("/history", authed, h.AddToHistory)

	router.GET("/recommendations", authed, h.Recommendations)
}

// Search filters and ranks the catalog by the request criteria. A valid
// bearer token, when present, contributes the consumer's forbidden
// ingredients; the endpoint itself is public.
func (h *RecipeHandler) Search(c *gin.Context) {
	params := service.SearchParams{
		Query:      c.Query("q"),
		Difficulty: c.Query("difficulty"),
		Sort:       c.DefaultQuery("sort", "match"),
	}

	if v := c.Query("minMatch"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid minMatch"})
			return
		}
		params.MinMatch = f
	}
	if v := c.Query("maxTime"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid maxTime"})
			return
		}
		params.MaxTime = n
	}
	if v := c.Query("categoryId"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid categoryId"})
			return
		}
		params.CategoryID = uint(n)
	}

	// A present ingredients parameter means "score against this set" even
	// when nothing in it resolves to a known ingredient.
	if raw := c.Query("ingredients"); raw != "" {
		ids, err := h.ingredients.Resolve(c.Request.Context(), splitTokens(raw))
		if err != nil {
			handleServiceError(c, err)
			return
		}
		params.UserIngredientIDs = ids
		params.HasIngredients = true
	}

	if id, ok := consumerID(c); ok {
		consumer, err := h.authService.GetConsumer(c.Request.Context(), id)
		if err == nil {
			for _, ing := range consumer.ForbiddenIngredients {
				params.ForbiddenIDs = append(params.ForbiddenIDs, ing.ID)
			}
		}
	}

	results, err := h.recipes.Search(c.Request.Context(), params)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": results})
}

func (h *RecipeHandler) Get(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var userIDs []uint
	hasIngredients := false
	if raw := c.Query("ingredients"); raw != "" {
		resolved, err := h.ingredients.Resolve(c.Request.Context(), splitTokens(raw))
		if err != nil {
			handleServiceError(c, err)
			return
		}
		userIDs = resolved
		hasIngredients = true
	}

	result, err := h.recipes.Get(c.Request.Context(), id, userIDs, hasIngredients)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Missing reports which of a recipe's ingredients the caller is lacking.
func (h *RecipeHandler) Missing(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	raw := c.Query("ingredients")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ingredients parameter is required"})
		return
	}

	userIDs, err := h.ingredients.Resolve(c.Request.Context(), splitTokens(raw))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	missing, err := h.recipes.MissingIngredients(c.Request.Context(), id, userIDs)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"missing_ingredients": missing})
}

func (h *RecipeHandler) Create(c *gin.Context) {
	var req RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe := models.Recipe{
		Title:       req.Title,
		Description: req.Description,
		CookingTime: req.CookingTime,
		Difficulty:  req.Difficulty,
		ImageURL:    req.ImageURL,
	}
	created, err := h.recipes.Create(c.Request.Context(), &recipe, req.IngredientIDs, req.CategoryIDs)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *RecipeHandler) Update(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := models.Recipe{
		Title:       req.Title,
		Description: req.Description,
		CookingTime: req.CookingTime,
		Difficulty:  req.Difficulty,
		ImageURL:    req.ImageURL,
	}
	updated, err := h.recipes.Update(c.Request.Context(), id, &updates, req.IngredientIDs, req.CategoryIDs)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *RecipeHandler) Delete(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if err := h.recipes.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "recipe deleted"})
}

func (h *RecipeHandler) Favorites(c *gin.Context) {
	id, _ := consumerID(c)
	results, err := h.recipes.Favorites(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": results})
}

func (h *RecipeHandler) AddFavorite(c *gin.Context) {
	var req RecipeRefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id, _ := consumerID(c)
	if err := h.recipes.AddFavorite(c.Request.Context(), id, req.RecipeID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "added to favorites"})
}

func (h *RecipeHandler) RemoveFavorite(c *gin.Context) {
	recipeID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	id, _ := consumerID(c)
	if err := h.recipes.RemoveFavorite(c.Request.Context(), id, recipeID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "removed from favorites"})
}

func (h *RecipeHandler) History(c *gin.Context) {
	id, _ := consumerID(c)
	results, err := h.recipes.History(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": results})
}

func (h *RecipeHandler) AddToHistory(c *gin.Context) {
	var req RecipeRefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id, _ := consumerID(c)
	if err := h.recipes.AddToHistory(c.Request.Context(), id, req.RecipeID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "added to history"})
}

func (h *RecipeHandler) Recommendations(c *gin.Context) {
	id, _ := consumerID(c)
	results, err := h.recipes.Recommendations(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": results})
}
