package api

// RegisterRequest is the payload for account registration.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest is the payload for authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RecipeRequest is the payload for recipe create/update.
type RecipeRequest struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	CookingTime   int    `json:"cooking_time"`
	Difficulty    string `json:"difficulty"`
	ImageURL      string `json:"image_url"`
	IngredientIDs []uint `json:"ingredient_ids"`
	CategoryIDs   []uint `json:"category_ids"`
}

// IngredientRequest is the payload for ingredient creation.
type IngredientRequest struct {
	Name     string `json:"name" binding:"required"`
	ImageURL string `json:"image_url"`
}

// CategoryRequest is the payload for category creation.
type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// RecipeRefRequest carries a recipe reference for favorites and history.
type RecipeRefRequest struct {
	RecipeID uint `json:"recipe_id" binding:"required"`
}

// MarkRequest is the payload for rating a recipe.
type MarkRequest struct {
	Value int `json:"value" binding:"required"`
}

// CommentRequest is the payload for commenting on a recipe.
type CommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// ForbiddenRequest replaces the consumer's forbidden-ingredient set.
type ForbiddenRequest struct {
	IngredientIDs []uint `json:"ingredient_ids"`
}
