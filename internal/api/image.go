package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/WhyTonyGit/SmartCook/internal/middleware"
	"github.com/WhyTonyGit/SmartCook/internal/service"
)

type ImageHandler struct {
	images      *service.ImageService
	authService *service.AuthService
}

func NewImageHandler(images *service.ImageService, authService *service.AuthService) *ImageHandler {
	return &ImageHandler{images: images, authService: authService}
}

func (h *ImageHandler) RegisterRoutes(router *gin.RouterGroup) {
	authed := middleware.AuthMiddleware(h.authService)
	admin := middleware.RequireAdmin()

	router.POST("/images", authed, admin, h.Upload)
	router.GET("/images/url", authed, h.PresignedURL)
}

// Upload stores a multipart image and returns its public URL.
func (h *ImageHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	defer file.Close()

	url, err := h.images.Upload(c.Request.Context(), file, header.Header.Get("Content-Type"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url})
}

// PresignedURL returns a short-lived download link for a stored object.
func (h *ImageHandler) PresignedURL(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "key parameter is required"})
		return
	}
	url, err := h.images.DownloadURL(c.Request.Context(), key)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
