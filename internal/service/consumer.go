package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/WhyTonyGit/SmartCook/internal/models"
)

// ConsumerService manages the consumer profile, most importantly the
// forbidden-ingredient set that vetoes recipes in every search.
type ConsumerService struct {
	db *gorm.DB
}

func NewConsumerService(db *gorm.DB) *ConsumerService {
	return &ConsumerService{db: db}
}

// Profile loads a consumer with their forbidden ingredients.
func (s *ConsumerService) Profile(ctx context.Context, id uint) (*models.Consumer, error) {
	var consumer models.Consumer
	if err := s.db.WithContext(ctx).Preload("ForbiddenIngredients").First(&consumer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &consumer, nil
}

// SetForbiddenIngredients replaces the consumer's forbidden set with the
// given ingredient ids. Ids that do not exist are dropped silently.
func (s *ConsumerService) SetForbiddenIngredients(ctx context.Context, consumerID uint, ingredientIDs []uint) (*models.Consumer, error) {
	consumer, err := s.Profile(ctx, consumerID)
	if err != nil {
		return nil, err
	}

	var ingredients []models.Ingredient
	if len(ingredientIDs) > 0 {
		if err := s.db.WithContext(ctx).Find(&ingredients, ingredientIDs).Error; err != nil {
			return nil, err
		}
	}
	if err := s.db.WithContext(ctx).Model(consumer).Association("ForbiddenIngredients").Replace(ingredients); err != nil {
		return nil, err
	}
	return s.Profile(ctx, consumerID)
}
