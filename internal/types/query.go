package types

// QueryRequest is the body of POST /api/v1/query.
type QueryRequest struct {
	Query string `json:"query" binding:"required"`
}

// ParsedQuery is the structured interpretation of a free-text meal request.
// List fields are always non-nil and MealCount is at least 1, regardless of
// what the language model returned.
type ParsedQuery struct {
	DietaryRestrictions []string `json:"dietary_restrictions"`
	MealTypes           []string `json:"meal_types"`
	MealCount           int      `json:"meal_count"`
	OwnedIngredients    []string `json:"owned_ingredients"`
	RequiredIngredients []string `json:"required_ingredients"`
	CuisinePreferences  []string `json:"cuisine_preferences"`
	ProteinRequirement  *int     `json:"protein_requirement"`
	OtherRequirements   string   `json:"other_requirements,omitempty"`
}

// GroceryListItem is one aggregated line of a generated grocery list.
// Quantities are summed per (ingredient, unit) pair; no unit conversion
// is attempted.
type GroceryListItem struct {
	IngredientName string   `json:"ingredient_name"`
	TotalQuantity  float64  `json:"total_quantity"`
	Unit           string   `json:"unit"`
	Category       string   `json:"category"`
	RecipesUsedIn  []string `json:"recipes_used_in"`
	AlreadyOwned   bool     `json:"already_owned"`
}

// QueryResult is the assembled outcome of one meal-planning request.
// TotalEstimatedCost is reserved for future pricing support and is
// always null today.
type QueryResult struct {
	ParsedQuery        ParsedQuery       `json:"parsed_query"`
	SuggestedRecipes   []RecipeView      `json:"suggested_recipes"`
	GroceryList        []GroceryListItem `json:"grocery_list"`
	TotalEstimatedCost *float64          `json:"total_estimated_cost"`
	PlanID             string            `json:"plan_id,omitempty"`
}
