package models

import "time"

type Comment struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	Text       string    `gorm:"type:text;not null" json:"text"`
	ConsumerID uint      `gorm:"not null;index" json:"consumer_id"`
	RecipeID   uint      `gorm:"not null;index" json:"recipe_id"`
	CreatedAt  time.Time `json:"created_at"`

	Consumer Consumer `json:"-"`
}

func (Comment) TableName() string {
	return "comment"
}
