package service

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/WhyTonyGit/SmartCook/internal/models"
)

// MarkService manages recipe ratings. One mark per consumer and recipe;
// rating again overwrites the previous value.
type MarkService struct {
	db *gorm.DB
}

func NewMarkService(db *gorm.DB) *MarkService {
	return &MarkService{db: db}
}

// Set stores or updates a consumer's mark for a recipe.
func (s *MarkService) Set(ctx context.Context, consumerID, recipeID uint, value int) (*models.Mark, error) {
	if value < 1 || value > 5 {
		return nil, validation("value", "mark must be between 1 and 5")
	}
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	mark := models.Mark{ConsumerID: consumerID, RecipeID: recipeID, Value: value}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "consumer_id"}, {Name: "recipe_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&mark).Error
	if err != nil {
		return nil, err
	}
	return &mark, nil
}

// ForRecipe lists all marks of a recipe.
func (s *MarkService) ForRecipe(ctx context.Context, recipeID uint) ([]models.Mark, error) {
	var marks []models.Mark
	if err := s.db.WithContext(ctx).Where("recipe_id = ?", recipeID).Order("id").Find(&marks).Error; err != nil {
		return nil, err
	}
	return marks, nil
}
