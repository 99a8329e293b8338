package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/WhyTonyGit/SmartCook/internal/middleware"
	"github.com/WhyTonyGit/SmartCook/internal/service"
)

// FeedbackHandler serves recipe ratings and comments.
type FeedbackHandler struct {
	marks       *service.MarkService
	comments    *service.CommentService
	authService *service.AuthService
}

func NewFeedbackHandler(marks *service.MarkService, comments *service.CommentService, authService *service.AuthService) *FeedbackHandler {
	return &FeedbackHandler{marks: marks, comments: comments, authService: authService}
}

func (h *FeedbackHandler) RegisterRoutes(router *gin.RouterGroup) {
	authed := middleware.AuthMiddleware(h.authService)

	router.GET("/recipes/:id/marks", h.ListMarks)
	router.POST("/recipes/:id/marks", authed, h.SetMark)
	router.GET("/recipes/:id/comments", h.ListComments)
	router.POST("/recipes/:id/comments", authed, h.AddComment)
	router.DELETE("/comments/:id", authed, h.DeleteComment)
}

func (h *FeedbackHandler) ListMarks(c *gin.Context) {
	recipeID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	marks, err := h.marks.ForRecipe(c.Request.Context(), recipeID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"marks": marks})
}

// SetMark creates or replaces the caller's rating for a recipe.
func (h *FeedbackHandler) SetMark(c *gin.Context) {
	recipeID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req MarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, _ := consumerID(c)
	mark, err := h.marks.Set(c.Request.Context(), id, recipeID, req.Value)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, mark)
}

func (h *FeedbackHandler) ListComments(c *gin.Context) {
	recipeID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	comments, err := h.comments.ForRecipe(c.Request.Context(), recipeID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

func (h *FeedbackHandler) AddComment(c *gin.Context) {
	recipeID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, _ := consumerID(c)
	comment, err := h.comments.Add(c.Request.Context(), id, recipeID, req.Text)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// DeleteComment removes a comment. Authors may delete their own comments,
// admins may delete any.
func (h *FeedbackHandler) DeleteComment(c *gin.Context) {
	commentID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	id, _ := consumerID(c)
	if err := h.comments.Delete(c.Request.Context(), commentID, id, isAdmin(c)); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "comment deleted"})
}
