package service

import (
	"fmt"

	"github.com/nutriquery/backend/internal/models"
	"github.com/nutriquery/backend/internal/types"
)

// Generate flattens the ingredient lines of the matched recipes into an
// aggregated grocery list. Lines group by (normalized name, normalized
// unit) with no unit conversion; quantities within a group are summed
// exactly. Items appear in first-seen order and record the contributing
// recipe names in order, de-duplicated. An item is already owned when
// its name appears in owned, regardless of quantities on either side.
func Generate(recipes []models.Recipe, owned []string) ([]types.GroceryListItem, error) {
	ownedSet := make(map[string]bool, len(owned))
	for _, name := range owned {
		ownedSet[models.NormalizeName(name)] = true
	}

	type groupKey struct {
		name string
		unit string
	}
	index := make(map[groupKey]int)
	usedIn := make(map[groupKey]map[string]bool)
	items := []types.GroceryListItem{}

	for _, recipe := range recipes {
		for _, line := range recipe.Ingredients {
			if line.Quantity <= 0 {
				return nil, fmt.Errorf("%w: recipe %q has non-positive quantity for %q",
					ErrAggregation, recipe.Name, line.Ingredient.Name)
			}

			key := groupKey{
				name: models.NormalizeName(line.Ingredient.Name),
				unit: models.NormalizeName(line.Unit),
			}
			i, ok := index[key]
			if !ok {
				i = len(items)
				index[key] = i
				usedIn[key] = make(map[string]bool)
				items = append(items, types.GroceryListItem{
					IngredientName: key.name,
					Unit:           key.unit,
					Category:       line.Ingredient.Category,
					RecipesUsedIn:  []string{},
					AlreadyOwned:   ownedSet[key.name],
				})
			}

			items[i].TotalQuantity += line.Quantity
			if !usedIn[key][recipe.Name] {
				usedIn[key][recipe.Name] = true
				items[i].RecipesUsedIn = append(items[i].RecipesUsedIn, recipe.Name)
			}
		}
	}
	return items, nil
}

// FilterOwned drops items already owned, leaving only what needs to be
// bought.
func FilterOwned(items []types.GroceryListItem) []types.GroceryListItem {
	needed := []types.GroceryListItem{}
	for _, item := range items {
		if !item.AlreadyOwned {
			needed = append(needed, item)
		}
	}
	return needed
}

// EstimateCost is a placeholder for future pricing support. It reports
// no estimate, which the API surfaces as a null total.
func EstimateCost(items []types.GroceryListItem) *float64 {
	return nil
}
