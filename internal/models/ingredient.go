package models

import "time"

// Ingredient is a catalog entry. Uniqueness is enforced on the normalized
// name by the service layer; the raw column keeps the display spelling.
type Ingredient struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	ImageURL  string    `gorm:"size:255" json:"image_url,omitempty"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (Ingredient) TableName() string {
	return "ingredient"
}
