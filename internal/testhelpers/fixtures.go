package testhelpers

import (
	"testing"

	"gorm.io/gorm"

	"github.com/nutriquery/backend/internal/models"
)

// SeedTestCatalog populates db with a small catalog used across tests:
// five recipes spanning two meal types, three cuisines and four dietary
// restrictions. "Chicken Stir Fry" carries no restriction tags at all.
func SeedTestCatalog(t *testing.T, db *gorm.DB) {
	restrictions := map[string]*models.DietaryRestriction{}
	for _, name := range []string{"vegetarian", "vegan", "gluten-free", "dairy-free"} {
		r := &models.DietaryRestriction{Name: name}
		if err := db.Create(r).Error; err != nil {
			t.Fatalf("failed to create restriction %s: %v", name, err)
		}
		restrictions[name] = r
	}

	ingredients := map[string]*models.Ingredient{}
	for _, ing := range []models.Ingredient{
		{Name: "black beans", Category: "pantry", Unit: "cup"},
		{Name: "rice", Category: "pantry", Unit: "cup"},
		{Name: "onion", Category: "produce", Unit: "count"},
		{Name: "garlic", Category: "produce", Unit: "clove"},
		{Name: "tortilla", Category: "bakery", Unit: "count"},
		{Name: "avocado", Category: "produce", Unit: "count"},
		{Name: "eggs", Category: "dairy", Unit: "count"},
		{Name: "chicken breast", Category: "meat", Unit: "lb"},
	} {
		ing := ing
		if err := db.Create(&ing).Error; err != nil {
			t.Fatalf("failed to create ingredient %s: %v", ing.Name, err)
		}
		ingredients[ing.Name] = &ing
	}

	line := func(name string, quantity float64, unit, notes string) models.RecipeIngredient {
		ing, ok := ingredients[name]
		if !ok {
			t.Fatalf("fixture references unknown ingredient %q", name)
		}
		return models.RecipeIngredient{IngredientID: ing.ID, Quantity: quantity, Unit: unit, Notes: notes}
	}

	tag := func(names ...string) []models.DietaryRestriction {
		tags := make([]models.DietaryRestriction, 0, len(names))
		for _, name := range names {
			tags = append(tags, *restrictions[name])
		}
		return tags
	}

	recipes := []models.Recipe{
		{
			Name:                "Black Bean Tacos",
			Description:         "Simple vegetarian tacos",
			Cuisine:             "Mexican",
			MealType:            "dinner",
			PrepTimeMinutes:     20,
			Servings:            4,
			DietaryRestrictions: tag("vegetarian"),
			Ingredients: []models.RecipeIngredient{
				line("black beans", 1, "cup", "cooked"),
				line("tortilla", 8, "count", ""),
				line("onion", 1, "count", "diced"),
				line("avocado", 1, "count", "sliced"),
			},
		},
		{
			Name:                "Burrito Bowl",
			Description:         "Filling burrito bowl",
			Cuisine:             "Mexican",
			MealType:            "dinner",
			PrepTimeMinutes:     25,
			Servings:            4,
			DietaryRestrictions: tag("vegetarian"),
			Ingredients: []models.RecipeIngredient{
				line("rice", 2, "cup", "cooked"),
				line("black beans", 1, "cup", "cooked"),
				line("onion", 1, "count", "diced"),
			},
		},
		{
			Name:                "Rice and Beans",
			Description:         "Classic rice and beans",
			Cuisine:             "Latin",
			MealType:            "dinner",
			PrepTimeMinutes:     15,
			Servings:            4,
			DietaryRestrictions: tag("vegetarian", "vegan", "gluten-free", "dairy-free"),
			Ingredients: []models.RecipeIngredient{
				line("rice", 2, "cup", "cooked"),
				line("black beans", 2, "cup", "cooked"),
				line("garlic", 3, "clove", "minced"),
			},
		},
		{
			Name:            "Chicken Stir Fry",
			Description:     "Quick weeknight stir fry",
			Cuisine:         "Asian",
			MealType:        "dinner",
			PrepTimeMinutes: 30,
			Servings:        4,
			Ingredients: []models.RecipeIngredient{
				line("chicken breast", 1, "lb", "sliced"),
				line("rice", 1, "cup", "cooked"),
			},
		},
		{
			Name:                "Veggie Omelette",
			Description:         "Three-egg omelette",
			Cuisine:             "American",
			MealType:            "breakfast",
			PrepTimeMinutes:     10,
			Servings:            1,
			DietaryRestrictions: tag("vegetarian", "gluten-free"),
			Ingredients: []models.RecipeIngredient{
				line("eggs", 3, "count", ""),
				line("onion", 0.5, "count", "diced"),
			},
		},
	}

	for i := range recipes {
		if err := db.Create(&recipes[i]).Error; err != nil {
			t.Fatalf("failed to create recipe %s: %v", recipes[i].Name, err)
		}
	}
}
