package matching

// Difficulty is the cooking difficulty level of a recipe.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty maps a request token to a known difficulty level.
// The second return value reports whether the token was recognized;
// unrecognized tokens make the difficulty filter a no-op.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch Difficulty(Normalize(s)) {
	case DifficultyEasy:
		return DifficultyEasy, true
	case DifficultyMedium:
		return DifficultyMedium, true
	case DifficultyHard:
		return DifficultyHard, true
	}
	return "", false
}

// SortPolicy selects the ranking rule applied to search results.
type SortPolicy string

const (
	SortByMatch   SortPolicy = "match"
	SortByRating  SortPolicy = "rating"
	SortByTime    SortPolicy = "time"
	SortByPopular SortPolicy = "popular"
)

// CatalogIngredient is the slice of an ingredient the resolver needs.
type CatalogIngredient struct {
	ID   uint
	Name string
}

// Candidate is one recipe in the snapshot handed to the engine, together
// with the aggregates the rating and popularity sorts need. The engine
// never loads data itself; the caller supplies a consistent snapshot.
type Candidate struct {
	ID            uint
	Title         string
	CookingTime   int
	Difficulty    Difficulty
	IngredientIDs []uint
	CategoryIDs   []uint
	AvgRating     float64
	FavoriteCount int
}

// Result is a candidate annotated with match information. MatchPercent is
// nil when the caller supplied no available-ingredient set; a recipe the
// user owns nothing for scores 0.0, which is a different signal.
type Result struct {
	Candidate
	MatchPercent *float64
	MissingIDs   []uint
}

// Query carries one search request through the filter pipeline.
// HasIngredients distinguishes "no ingredient set supplied" from a supplied
// set that happens to be empty: only the former suppresses match scoring.
type Query struct {
	HasIngredients bool
	IngredientIDs  []uint

	ForbiddenIDs []uint
	Text         string
	MaxTime      int
	Difficulty   string
	CategoryID   uint
	MinMatch     float64
	Sort         SortPolicy
}
