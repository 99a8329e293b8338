package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/WhyTonyGit/SmartCook/internal/middleware"
	"github.com/WhyTonyGit/SmartCook/internal/service"
)

type CategoryHandler struct {
	categories  *service.CategoryService
	authService *service.AuthService
}

func NewCategoryHandler(categories *service.CategoryService, authService *service.AuthService) *CategoryHandler {
	return &CategoryHandler{categories: categories, authService: authService}
}

func (h *CategoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	authed := middleware.AuthMiddleware(h.authService)
	admin := middleware.RequireAdmin()

	categories := router.Group("/categories")
	{
		categories.GET("", h.List)
		categories.POST("", authed, admin, h.Create)
		categories.DELETE("/:id", authed, admin, h.Delete)
	}
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categories.List(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.categories.Create(c.Request.Context(), req.Name)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if err := h.categories.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
}
