package service

import (
	"sort"

	"github.com/nutriquery/backend/internal/models"
	"github.com/nutriquery/backend/internal/types"
)

// Match ranks hard-filtered candidates and truncates to the requested
// meal count. Cuisine preferences are soft: recipes in a preferred
// cuisine sort ahead of the rest, and ties keep catalog order (the sort
// is stable). Fewer candidates than requested is not an error; the
// short list is returned as-is.
func Match(query types.ParsedQuery, candidates []models.Recipe) []models.Recipe {
	matched := make([]models.Recipe, len(candidates))
	copy(matched, candidates)

	if len(query.CuisinePreferences) > 0 {
		preferred := make(map[string]bool, len(query.CuisinePreferences))
		for _, cuisine := range query.CuisinePreferences {
			preferred[models.NormalizeName(cuisine)] = true
		}
		sort.SliceStable(matched, func(i, j int) bool {
			return preferred[models.NormalizeName(matched[i].Cuisine)] &&
				!preferred[models.NormalizeName(matched[j].Cuisine)]
		})
	}

	if len(matched) > query.MealCount {
		matched = matched[:query.MealCount]
	}
	return matched
}
