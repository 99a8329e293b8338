package models

// Learning is the cooking walkthrough attached to a recipe: a title plus
// ordered steps. At most one per recipe.
type Learning struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	Title    string `gorm:"size:200;not null" json:"title"`
	RecipeID uint   `gorm:"not null;uniqueIndex" json:"recipe_id"`

	Steps []LearningStep `gorm:"constraint:OnDelete:CASCADE" json:"steps"`
}

func (Learning) TableName() string {
	return "learning"
}

// LearningStep is one numbered step of a walkthrough. Number defines the
// presentation order.
type LearningStep struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	ImageURL    string `gorm:"size:255" json:"image_url,omitempty"`
	Number      int    `gorm:"not null" json:"number"`
	LearningID  uint   `gorm:"not null;index" json:"learning_id"`
}

func (LearningStep) TableName() string {
	return "step_learning"
}
