package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/WhyTonyGit/SmartCook/internal/middleware"
	"github.com/WhyTonyGit/SmartCook/internal/models"
	"github.com/WhyTonyGit/SmartCook/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
	consumers   *service.ConsumerService
}

func NewAuthHandler(authService *service.AuthService, consumers *service.ConsumerService) *AuthHandler {
	return &AuthHandler{authService: authService, consumers: consumers}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}

	authed := middleware.AuthMiddleware(h.authService)
	router.GET("/profile", authed, h.Profile)
	router.GET("/profile/forbidden", authed, h.Forbidden)
	router.PUT("/profile/forbidden", authed, h.SetForbidden)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.authService.Register(c.Request.Context(), req.Username, req.Email, req.Phone, req.Password)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"token": token})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *AuthHandler) Profile(c *gin.Context) {
	id, _ := consumerID(c)
	consumer, err := h.consumers.Profile(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, consumer)
}

// Forbidden lists the consumer's forbidden ingredients.
func (h *AuthHandler) Forbidden(c *gin.Context) {
	id, _ := consumerID(c)
	consumer, err := h.consumers.Profile(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	ingredients := consumer.ForbiddenIngredients
	if ingredients == nil {
		ingredients = []models.Ingredient{}
	}
	c.JSON(http.StatusOK, gin.H{"forbidden_ingredients": ingredients})
}

// SetForbidden replaces the consumer's forbidden ingredient set.
func (h *AuthHandler) SetForbidden(c *gin.Context) {
	var req ForbiddenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, _ := consumerID(c)
	consumer, err := h.consumers.SetForbiddenIngredients(c.Request.Context(), id, req.IngredientIDs)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, consumer)
}
