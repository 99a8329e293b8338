package models

import "time"

// RecipeView records that a consumer opened a recipe. Re-viewing bumps
// ViewedAt instead of inserting a second row, so ordering by ViewedAt
// descending yields the recency-ordered history the recommender consumes.
type RecipeView struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	ConsumerID uint      `gorm:"not null;uniqueIndex:idx_consumer_recipe_view" json:"consumer_id"`
	RecipeID   uint      `gorm:"not null;uniqueIndex:idx_consumer_recipe_view" json:"recipe_id"`
	ViewedAt   time.Time `gorm:"not null;index" json:"viewed_at"`
}

func (RecipeView) TableName() string {
	return "consumer_recipe_history"
}
