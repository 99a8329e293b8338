package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/WhyTonyGit/SmartCook/config"
	"github.com/WhyTonyGit/SmartCook/internal/database"
	"github.com/WhyTonyGit/SmartCook/internal/matching"
	"github.com/WhyTonyGit/SmartCook/internal/models"
)

var ingredientNames = []string{
	"курица", "индейка", "говядина", "свинина", "рыба", "лосось", "тунец",
	"креветки", "кальмар", "картофель", "батат", "морковь", "лук", "чеснок",
	"помидоры", "черри", "огурцы", "перец", "баклажаны", "кабачки",
	"капуста", "цветная капуста", "брокколи", "грибы", "шампиньоны",
	"рис", "гречка", "пшено", "овсянка", "макароны", "паста", "мука",
	"яйца", "молоко", "сливки", "сыр", "творог", "йогурт", "масло",
	"оливковое масло", "соль", "сахар", "мёд", "лимон", "лайм", "яблоко",
	"банан", "груша", "клубника", "черника", "малина", "изюм", "орехи",
	"миндаль", "грецкие орехи", "кунжут", "зелень", "петрушка", "укроп",
	"кинза", "базилик", "тимьян", "розмарин", "орегано", "паприка",
	"корица", "ваниль", "соевый соус", "томатная паста", "сметана",
	"горчица", "майонез", "перловка", "фасоль", "нут", "горох", "кукуруза",
	"горчица зернистая", "авокадо", "шпинат", "листовой салат", "руккола",
	"болгарский перец", "тыква", "какао", "шоколад",
}

var categoryNames = []string{
	"Завтраки", "Обеды", "Ужины", "Десерты", "Салаты",
	"Супы", "Выпечка", "Напитки", "Закуски", "Вегетарианские",
	"Мясо", "Паста", "Все блюда",
}

type demoRecipe struct {
	title       string
	description string
	cookingTime int
	difficulty  string
	ingredients []string
	categories  []string
}

var demoRecipes = []demoRecipe{
	{
		title:       "Куриный суп с овощами",
		description: "Лёгкий суп на курином бульоне с морковью и картофелем.",
		cookingTime: 45,
		difficulty:  models.DifficultyEasy,
		ingredients: []string{"курица", "картофель", "морковь", "лук", "зелень", "соль"},
		categories:  []string{"Супы", "Обеды"},
	},
	{
		title:       "Паста с томатным соусом",
		description: "Паста с соусом из томатной пасты, чеснока и базилика.",
		cookingTime: 25,
		difficulty:  models.DifficultyEasy,
		ingredients: []string{"паста", "томатная паста", "чеснок", "базилик", "оливковое масло", "соль"},
		categories:  []string{"Паста", "Ужины"},
	},
	{
		title:       "Тёплый салат с лососем",
		description: "Салат из рукколы и черри с обжаренным лососем.",
		cookingTime: 20,
		difficulty:  models.DifficultyMedium,
		ingredients: []string{"лосось", "руккола", "черри", "оливковое масло", "лимон", "соль"},
		categories:  []string{"Салаты", "Ужины"},
	},
	{
		title:       "Овсяная каша с ягодами",
		description: "Овсянка на молоке с клубникой и черникой.",
		cookingTime: 15,
		difficulty:  models.DifficultyEasy,
		ingredients: []string{"овсянка", "молоко", "клубника", "черника", "мёд"},
		categories:  []string{"Завтраки"},
	},
	{
		title:       "Говяжий гуляш",
		description: "Тушёная говядина с болгарским перцем и паприкой.",
		cookingTime: 90,
		difficulty:  models.DifficultyHard,
		ingredients: []string{"говядина", "лук", "болгарский перец", "паприка", "томатная паста", "соль"},
		categories:  []string{"Мясо", "Обеды"},
	},
	{
		title:       "Сырники со сметаной",
		description: "Творожные сырники, обжаренные до золотистой корочки.",
		cookingTime: 30,
		difficulty:  models.DifficultyMedium,
		ingredients: []string{"творог", "яйца", "мука", "сахар", "сметана"},
		categories:  []string{"Десерты", "Завтраки"},
	},
	{
		title:       "Овощное рагу с кабачками",
		description: "Рагу из сезонных овощей с чесноком и зеленью.",
		cookingTime: 40,
		difficulty:  models.DifficultyEasy,
		ingredients: []string{"кабачки", "баклажаны", "помидоры", "лук", "чеснок", "зелень"},
		categories:  []string{"Вегетарианские", "Ужины"},
	},
	{
		title:       "Банановый смузи",
		description: "Смузи из банана и йогурта с мёдом.",
		cookingTime: 5,
		difficulty:  models.DifficultyEasy,
		ingredients: []string{"банан", "йогурт", "молоко", "мёд"},
		categories:  []string{"Напитки", "Завтраки"},
	},
}

func main() {
	reset := flag.Bool("reset", false, "Clear seeded data before loading")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	if *reset {
		for _, table := range []string{
			"consumer_recipe_history", "comment", "mark", "step_learning",
			"learning", "consumer_recipe_fav", "recipe_ingredient",
			"recipe_category",
		} {
			if err := db.Exec("DELETE FROM " + table).Error; err != nil {
				logger.Fatal("failed to clear table", zap.String("table", table), zap.Error(err))
			}
		}
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(&models.Recipe{}).Error; err != nil {
			logger.Fatal("failed to clear recipes", zap.Error(err))
		}
		logger.Info("cleared seeded data")
	}

	if err := seedAdmin(db); err != nil {
		logger.Fatal("failed to seed admin", zap.Error(err))
	}
	ingredients, err := seedIngredients(db)
	if err != nil {
		logger.Fatal("failed to seed ingredients", zap.Error(err))
	}
	categories, err := seedCategories(db)
	if err != nil {
		logger.Fatal("failed to seed categories", zap.Error(err))
	}
	added, err := seedRecipes(db, ingredients, categories)
	if err != nil {
		logger.Fatal("failed to seed recipes", zap.Error(err))
	}

	logger.Info("seeding complete",
		zap.Int("ingredients", len(ingredients)),
		zap.Int("categories", len(categories)),
		zap.Int("recipes_added", added))
}

// walkthroughFor builds the default three-step cooking walkthrough every
// seeded recipe starts with.
func walkthroughFor(title string) *models.Learning {
	return &models.Learning{
		Title: "Как приготовить " + strings.ToLower(title),
		Steps: []models.LearningStep{
			{Title: "Подготовка", Description: "Подготовьте ингредиенты и посуду.", Number: 1},
			{Title: "Готовка", Description: "Готовьте на среднем огне до готовности.", Number: 2},
			{Title: "Подача", Description: "Подавайте блюдо тёплым.", Number: 3},
		},
	}
}

func seedAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Consumer{}).Where("email = ?", "admin@example.com").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("Admin123!"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return db.Create(&models.Consumer{
		Username:     "admin",
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}).Error
}

// seedIngredients upserts the catalog by normalized name and returns the
// full catalog keyed the same way.
func seedIngredients(db *gorm.DB) (map[string]models.Ingredient, error) {
	var existing []models.Ingredient
	if err := db.Find(&existing).Error; err != nil {
		return nil, err
	}
	byNorm := make(map[string]models.Ingredient, len(existing))
	for _, ing := range existing {
		byNorm[matching.Normalize(ing.Name)] = ing
	}

	for i, name := range ingredientNames {
		norm := matching.Normalize(name)
		if norm == "" {
			continue
		}
		if _, ok := byNorm[norm]; ok {
			continue
		}
		ing := models.Ingredient{
			Name:     name,
			ImageURL: fmt.Sprintf("/static/img/ingredients/ingredient-%02d.svg", (i%24)+1),
		}
		if err := db.Create(&ing).Error; err != nil {
			return nil, err
		}
		byNorm[norm] = ing
	}
	return byNorm, nil
}

func seedCategories(db *gorm.DB) (map[string]models.Category, error) {
	var existing []models.Category
	if err := db.Find(&existing).Error; err != nil {
		return nil, err
	}
	byNorm := make(map[string]models.Category, len(existing))
	for _, cat := range existing {
		byNorm[matching.Normalize(cat.Name)] = cat
	}

	for _, name := range categoryNames {
		norm := matching.Normalize(name)
		if _, ok := byNorm[norm]; ok {
			continue
		}
		cat := models.Category{Name: name}
		if err := db.Create(&cat).Error; err != nil {
			return nil, err
		}
		byNorm[norm] = cat
	}
	return byNorm, nil
}

func seedRecipes(db *gorm.DB, ingredients map[string]models.Ingredient, categories map[string]models.Category) (int, error) {
	var existing []models.Recipe
	if err := db.Find(&existing).Error; err != nil {
		return 0, err
	}
	seen := make(map[string]bool, len(existing))
	for _, r := range existing {
		seen[matching.Normalize(r.Title)] = true
	}

	added := 0
	for i, demo := range demoRecipes {
		if seen[matching.Normalize(demo.title)] {
			continue
		}

		recipe := models.Recipe{
			Title:       demo.title,
			Description: demo.description,
			CookingTime: demo.cookingTime,
			Difficulty:  demo.difficulty,
			ImageURL:    fmt.Sprintf("/static/img/recipes/recipe-%02d.svg", (i%24)+1),
		}
		for _, name := range demo.ingredients {
			if ing, ok := ingredients[matching.Normalize(name)]; ok {
				recipe.Ingredients = append(recipe.Ingredients, ing)
			}
		}
		for _, name := range demo.categories {
			if cat, ok := categories[matching.Normalize(name)]; ok {
				recipe.Categories = append(recipe.Categories, cat)
			}
		}
		recipe.Learning = walkthroughFor(demo.title)
		if err := db.Create(&recipe).Error; err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}
