package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/WhyTonyGit/SmartCook/internal/matching"
	"github.com/WhyTonyGit/SmartCook/internal/models"
)

const (
	catalogCacheKey = "smartcook:ingredient_catalog"
	catalogCacheTTL = 5 * time.Minute
)

// IngredientService handles catalog lookups and name resolution. The full
// catalog snapshot is cached in Redis because the resolver walks it on every
// ingredient search request.
type IngredientService struct {
	db     *gorm.DB
	cache  *redis.Client
	logger *zap.Logger
}

// NewIngredientService creates a new IngredientService. cache may be nil;
// every read then goes straight to the database.
func NewIngredientService(db *gorm.DB, cache *redis.Client, logger *zap.Logger) *IngredientService {
	return &IngredientService{db: db, cache: cache, logger: logger}
}

// Catalog returns the full ingredient list, served from cache when possible.
func (s *IngredientService) Catalog(ctx context.Context) ([]models.Ingredient, error) {
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, catalogCacheKey).Bytes(); err == nil {
			var cached []models.Ingredient
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil
			}
			// Corrupt cache entry; fall through to the database.
			s.cache.Del(ctx, catalogCacheKey)
		}
	}

	var ingredients []models.Ingredient
	if err := s.db.WithContext(ctx).Order("id").Find(&ingredients).Error; err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(ingredients); err == nil {
			if err := s.cache.Set(ctx, catalogCacheKey, data, catalogCacheTTL).Err(); err != nil {
				s.logger.Warn("failed to cache ingredient catalog", zap.Error(err))
			}
		}
	}
	return ingredients, nil
}

// Search returns ingredients whose name contains the query, limited to at
// most limit entries.
func (s *IngredientService) Search(ctx context.Context, query string, limit int) ([]models.Ingredient, error) {
	if limit <= 0 {
		limit = 100
	}
	q := s.db.WithContext(ctx).Order("id").Limit(limit)
	if query != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query)+"%")
	}
	var ingredients []models.Ingredient
	if err := q.Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

// Get retrieves a single ingredient by id.
func (s *IngredientService) Get(ctx context.Context, id uint) (*models.Ingredient, error) {
	var ing models.Ingredient
	if err := s.db.WithContext(ctx).First(&ing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ing, nil
}

// Resolve maps raw tokens (numeric ids or free-text names) to a
// deduplicated set of ingredient ids using the cached catalog.
func (s *IngredientService) Resolve(ctx context.Context, tokens []string) ([]uint, error) {
	catalog, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]matching.CatalogIngredient, len(catalog))
	for i, ing := range catalog {
		entries[i] = matching.CatalogIngredient{ID: ing.ID, Name: ing.Name}
	}
	return matching.ResolveIngredients(tokens, entries), nil
}

// Create adds an ingredient. Uniqueness is checked against the normalized
// name so "Свёкла" and "свекла" cannot coexist.
func (s *IngredientService) Create(ctx context.Context, name, imageURL string) (*models.Ingredient, error) {
	norm := matching.Normalize(name)
	if norm == "" {
		return nil, validation("name", "name is required")
	}

	catalog, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	for _, existing := range catalog {
		if matching.Normalize(existing.Name) == norm {
			return nil, validation("name", "ingredient already exists")
		}
	}

	ing := models.Ingredient{Name: strings.TrimSpace(name), ImageURL: imageURL}
	if err := s.db.WithContext(ctx).Create(&ing).Error; err != nil {
		return nil, err
	}
	s.invalidateCatalog(ctx)
	return &ing, nil
}

// Delete removes an ingredient by id.
func (s *IngredientService) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Ingredient{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	s.invalidateCatalog(ctx)
	return nil
}

func (s *IngredientService) invalidateCatalog(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, catalogCacheKey).Err(); err != nil {
		s.logger.Warn("failed to invalidate ingredient catalog cache", zap.Error(err))
	}
}
