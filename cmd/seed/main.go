package main

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/nutriquery/backend/config"
	"github.com/nutriquery/backend/internal/models"
)

// Seeds the catalog with a small set of dietary restrictions,
// ingredients and recipes. Safe to rerun: an already-populated catalog
// is left untouched.

type restrictionSeed struct {
	name        string
	description string
}

type ingredientSeed struct {
	name     string
	category string
	unit     string
}

type lineSeed struct {
	ingredient string
	quantity   float64
	unit       string
	notes      string
}

type recipeSeed struct {
	name         string
	description  string
	cuisine      string
	mealType     string
	prepTime     int
	servings     int
	restrictions []string
	lines        []lineSeed
}

var restrictionSeeds = []restrictionSeed{
	{"vegetarian", "No meat or fish"},
	{"vegan", "No animal products"},
	{"gluten-free", "No gluten"},
	{"dairy-free", "No dairy products"},
}

var ingredientSeeds = []ingredientSeed{
	{"black beans", "pantry", "cup"},
	{"rice", "pantry", "cup"},
	{"onion", "produce", "count"},
	{"garlic", "produce", "clove"},
	{"bell pepper", "produce", "count"},
	{"tomato", "produce", "count"},
	{"tortilla", "bakery", "count"},
	{"avocado", "produce", "count"},
	{"lime", "produce", "count"},
	{"cilantro", "produce", "bunch"},
	{"cumin", "spices", "tsp"},
	{"chili powder", "spices", "tsp"},
	{"olive oil", "pantry", "tbsp"},
	{"salt", "pantry", "tsp"},
	{"black pepper", "pantry", "tsp"},
}

var recipeSeeds = []recipeSeed{
	{
		name:         "Black Bean Tacos",
		description:  "Simple and delicious vegetarian tacos",
		cuisine:      "Mexican",
		mealType:     "dinner",
		prepTime:     20,
		servings:     4,
		restrictions: []string{"vegetarian"},
		lines: []lineSeed{
			{"black beans", 2, "cup", "cooked"},
			{"onion", 1, "count", "diced"},
			{"garlic", 2, "clove", "minced"},
			{"cumin", 1, "tsp", ""},
			{"chili powder", 1, "tsp", ""},
			{"tortilla", 8, "count", ""},
			{"avocado", 1, "count", "sliced"},
			{"lime", 1, "count", ""},
		},
	},
	{
		name:         "Vegetarian Burrito Bowl",
		description:  "Healthy and filling burrito bowl",
		cuisine:      "Mexican",
		mealType:     "dinner",
		prepTime:     25,
		servings:     4,
		restrictions: []string{"vegetarian"},
		lines: []lineSeed{
			{"rice", 2, "cup", "cooked"},
			{"black beans", 2, "cup", "cooked"},
			{"bell pepper", 2, "count", "diced"},
			{"onion", 1, "count", "diced"},
			{"tomato", 2, "count", "diced"},
			{"avocado", 2, "count", "sliced"},
			{"lime", 2, "count", ""},
			{"cilantro", 0.25, "bunch", ""},
		},
	},
	{
		name:         "Simple Rice and Beans",
		description:  "Classic rice and beans dish",
		cuisine:      "Latin",
		mealType:     "dinner",
		prepTime:     15,
		servings:     4,
		restrictions: []string{"vegetarian", "vegan", "gluten-free", "dairy-free"},
		lines: []lineSeed{
			{"rice", 2, "cup", "cooked"},
			{"black beans", 2, "cup", "cooked"},
			{"onion", 1, "count", "diced"},
			{"garlic", 3, "clove", "minced"},
			{"cumin", 1, "tsp", ""},
			{"olive oil", 2, "tbsp", ""},
			{"salt", 1, "tsp", ""},
			{"black pepper", 0.5, "tsp", ""},
		},
	},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed(db); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}

func seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Recipe{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to inspect catalog: %w", err)
	}
	if count > 0 {
		log.Printf("Catalog already has %d recipes, nothing to do", count)
		return nil
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		restrictions := make(map[string]models.DietaryRestriction)
		for _, r := range restrictionSeeds {
			rec := models.DietaryRestriction{Name: r.name, Description: r.description}
			if err := tx.Where("name = ?", r.name).FirstOrCreate(&rec).Error; err != nil {
				return fmt.Errorf("failed to seed restriction %s: %w", r.name, err)
			}
			restrictions[r.name] = rec
		}

		ingredients := make(map[string]models.Ingredient)
		for _, i := range ingredientSeeds {
			rec := models.Ingredient{Name: i.name, Category: i.category, Unit: i.unit}
			if err := tx.Where("name = ?", i.name).FirstOrCreate(&rec).Error; err != nil {
				return fmt.Errorf("failed to seed ingredient %s: %w", i.name, err)
			}
			ingredients[i.name] = rec
		}

		for _, r := range recipeSeeds {
			recipe := models.Recipe{
				Name:            r.name,
				Description:     r.description,
				Cuisine:         r.cuisine,
				MealType:        r.mealType,
				PrepTimeMinutes: r.prepTime,
				Servings:        r.servings,
			}
			for _, tag := range r.restrictions {
				recipe.DietaryRestrictions = append(recipe.DietaryRestrictions, restrictions[tag])
			}
			for _, line := range r.lines {
				ing, ok := ingredients[line.ingredient]
				if !ok {
					return fmt.Errorf("recipe %s references unknown ingredient %s", r.name, line.ingredient)
				}
				recipe.Ingredients = append(recipe.Ingredients, models.RecipeIngredient{
					IngredientID: ing.ID,
					Quantity:     line.quantity,
					Unit:         line.unit,
					Notes:        line.notes,
				})
			}
			if err := tx.Create(&recipe).Error; err != nil {
				return fmt.Errorf("failed to seed recipe %s: %w", r.name, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Printf("Seeded %d dietary restrictions, %d ingredients, %d recipes",
		len(restrictionSeeds), len(ingredientSeeds), len(recipeSeeds))
	return nil
}
