package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/WhyTonyGit/SmartCook/internal/models"
)

type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

// Add stores a comment on a recipe.
func (s *CommentService) Add(ctx context.Context, consumerID, recipeID uint, text string) (*models.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, validation("text", "comment text is required")
	}
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	comment := models.Comment{ConsumerID: consumerID, RecipeID: recipeID, Text: text}
	if err := s.db.WithContext(ctx).Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// ForRecipe lists a recipe's comments, oldest first.
func (s *CommentService) ForRecipe(ctx context.Context, recipeID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.WithContext(ctx).
		Preload("Consumer").
		Where("recipe_id = ?", recipeID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// Delete removes a comment; only its author or an admin may do so.
func (s *CommentService) Delete(ctx context.Context, commentID, consumerID uint, isAdmin bool) error {
	var comment models.Comment
	if err := s.db.WithContext(ctx).First(&comment, commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !isAdmin && comment.ConsumerID != consumerID {
		return ErrNotFound
	}
	return s.db.WithContext(ctx).Delete(&comment).Error
}
