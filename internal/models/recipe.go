package models

import (
	"time"

	"gorm.io/gorm"
)

// Recipe difficulty levels as stored in the database.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

type Recipe struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Title       string         `gorm:"size:200;not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	CookingTime int            `gorm:"not null" json:"cooking_time"`
	Difficulty  string         `gorm:"size:16;not null;default:'medium'" json:"difficulty"`
	ImageURL    string         `gorm:"size:255" json:"image_url,omitempty"`

	Ingredients []Ingredient `gorm:"many2many:recipe_ingredient" json:"ingredients,omitempty"`
	Categories  []Category   `gorm:"many2many:recipe_category" json:"categories,omitempty"`
	Marks       []Mark       `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Comments    []Comment    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Learning    *Learning    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (Recipe) TableName() string {
	return "recipe"
}
