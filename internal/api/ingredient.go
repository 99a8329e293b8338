package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/WhyTonyGit/SmartCook/internal/middleware"
	"github.com/WhyTonyGit/SmartCook/internal/service"
)

type IngredientHandler struct {
	ingredients *service.IngredientService
	authService *service.AuthService
}

func NewIngredientHandler(ingredients *service.IngredientService, authService *service.AuthService) *IngredientHandler {
	return &IngredientHandler{ingredients: ingredients, authService: authService}
}

func (h *IngredientHandler) RegisterRoutes(router *gin.RouterGroup) {
	authed := middleware.AuthMiddleware(h.authService)
	admin := middleware.RequireAdmin()

	ingredients := router.Group("/ingredients")
	{
		ingredients.GET("", h.List)
		ingredients.GET("/:id", h.Get)
		ingredients.POST("", authed, admin, h.Create)
		ingredients.DELETE("/:id", authed, admin, h.Delete)
	}
}

// List returns the catalog, optionally narrowed by a name query.
func (h *IngredientHandler) List(c *gin.Context) {
	if q := c.Query("q"); q != "" {
		limit := 20
		if v := c.Query("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
				return
			}
			limit = n
		}
		results, err := h.ingredients.Search(c.Request.Context(), q, limit)
		if err != nil {
			handleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ingredients": results})
		return
	}

	catalog, err := h.ingredients.Catalog(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ingredients": catalog})
}

func (h *IngredientHandler) Get(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	ingredient, err := h.ingredients.Get(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ingredient)
}

func (h *IngredientHandler) Create(c *gin.Context) {
	var req IngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ingredient, err := h.ingredients.Create(c.Request.Context(), req.Name, req.ImageURL)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ingredient)
}

func (h *IngredientHandler) Delete(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if err := h.ingredients.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ingredient deleted"})
}
