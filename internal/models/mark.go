package models

import "time"

// Mark is a 1..5 rating; one per consumer and recipe, re-rating updates it.
type Mark struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	Value      int       `gorm:"not null" json:"value"`
	ConsumerID uint      `gorm:"not null;uniqueIndex:idx_consumer_recipe_mark" json:"consumer_id"`
	RecipeID   uint      `gorm:"not null;uniqueIndex:idx_consumer_recipe_mark" json:"recipe_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"-"`
}

func (Mark) TableName() string {
	return "mark"
}
