package types

// RecipeView is the wire representation of a catalog recipe.
type RecipeView struct {
	ID                  uint                   `json:"id"`
	Name                string                 `json:"name"`
	Description         string                 `json:"description"`
	Cuisine             string                 `json:"cuisine"`
	MealType            string                 `json:"meal_type"`
	PrepTimeMinutes     int                    `json:"prep_time_minutes"`
	Servings            int                    `json:"servings"`
	DietaryRestrictions []string               `json:"dietary_restrictions"`
	Ingredients         []RecipeIngredientView `json:"ingredients"`
}

// RecipeIngredientView is one ingredient line of a recipe as served over
// the wire.
type RecipeIngredientView struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Category string  `json:"category"`
	Notes    string  `json:"notes,omitempty"`
}
