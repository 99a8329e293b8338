package service

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/WhyTonyGit/SmartCook/internal/matching"
	"github.com/WhyTonyGit/SmartCook/internal/models"
)

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// List returns all categories in insertion order.
func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.WithContext(ctx).Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Create adds a category, rejecting names that normalize to an existing one.
func (s *CategoryService) Create(ctx context.Context, name string) (*models.Category, error) {
	norm := matching.Normalize(name)
	if norm == "" {
		return nil, validation("name", "name is required")
	}

	existing, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range existing {
		if matching.Normalize(c.Name) == norm {
			return nil, validation("name", "category already exists")
		}
	}

	category := models.Category{Name: strings.TrimSpace(name)}
	if err := s.db.WithContext(ctx).Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// Delete removes a category by id.
func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Category{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
