package models

import (
	"time"

	"gorm.io/gorm"
)

// Consumer roles. The seeded admin account manages the catalog; everyone
// else registers as a regular user.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type Consumer struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"-"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Username     string         `gorm:"size:80;not null" json:"username"`
	Email        string         `gorm:"size:120;uniqueIndex;not null" json:"email"`
	Phone        string         `gorm:"size:20" json:"phone,omitempty"`
	PasswordHash string         `gorm:"size:255;not null" json:"-"`
	Role         string         `gorm:"size:20;not null;default:'user'" json:"role"`
	AvatarURL    string         `gorm:"size:255" json:"avatar_url,omitempty"`

	ForbiddenIngredients []Ingredient `gorm:"many2many:consumer_ingredient" json:"forbidden_ingredients,omitempty"`
	FavoriteRecipes      []Recipe     `gorm:"many2many:consumer_recipe_fav" json:"-"`
}

func (Consumer) TableName() string {
	return "consumer"
}
