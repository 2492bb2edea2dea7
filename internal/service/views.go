package service

import (
	"github.com/nutriquery/backend/internal/models"
	"github.com/nutriquery/backend/internal/types"
)

// RecipeToView flattens a catalog recipe into its wire representation.
func RecipeToView(r models.Recipe) types.RecipeView {
	view := types.RecipeView{
		ID:                  r.ID,
		Name:                r.Name,
		Description:         r.Description,
		Cuisine:             r.Cuisine,
		MealType:            r.MealType,
		PrepTimeMinutes:     r.PrepTimeMinutes,
		Servings:            r.Servings,
		DietaryRestrictions: make([]string, 0, len(r.DietaryRestrictions)),
		Ingredients:         make([]types.RecipeIngredientView, 0, len(r.Ingredients)),
	}
	for _, tag := range r.DietaryRestrictions {
		view.DietaryRestrictions = append(view.DietaryRestrictions, tag.Name)
	}
	for _, line := range r.Ingredients {
		view.Ingredients = append(view.Ingredients, types.RecipeIngredientView{
			Name:     line.Ingredient.Name,
			Quantity: line.Quantity,
			Unit:     line.Unit,
			Category: line.Ingredient.Category,
			Notes:    line.Notes,
		})
	}
	return view
}

// RecipesToViews converts a slice of catalog recipes, preserving order.
func RecipesToViews(recipes []models.Recipe) []types.RecipeView {
	views := make([]types.RecipeView, 0, len(recipes))
	for _, r := range recipes {
		views = append(views, RecipeToView(r))
	}
	return views
}
