package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/nutriquery/backend/internal/models"
)

// CatalogService reads the seeded recipe catalog.
type CatalogService struct {
	db *gorm.DB
}

// NewCatalogService creates a new CatalogService instance.
func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// recipeQuery preloads ingredient lines (in line order) and dietary tags.
func (s *CatalogService) recipeQuery(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("recipe_ingredients.id")
		}).
		Preload("Ingredients.Ingredient").
		Preload("DietaryRestrictions")
}

// ListRecipes returns every catalog recipe in insertion order.
func (s *CatalogService) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := s.recipeQuery(ctx).Order("recipes.id").Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return recipes, nil
}

// GetRecipe retrieves one recipe by id.
func (s *CatalogService) GetRecipe(ctx context.Context, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.recipeQuery(ctx).First(&recipe, "recipes.id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	return &recipe, nil
}

// FindCandidates returns recipes passing the hard filters: meal type
// membership (when any meal types were requested) and a dietary tag set
// covering every requested restriction. Results keep catalog order. A
// restriction name the catalog has never seen matches no recipe at all.
func (s *CatalogService) FindCandidates(ctx context.Context, mealTypes, restrictions []string) ([]models.Recipe, error) {
	q := s.db.WithContext(ctx).Model(&models.Recipe{})
	if len(mealTypes) > 0 {
		q = q.Where("recipes.meal_type IN ?", mealTypes)
	}
	if len(restrictions) > 0 {
		q = q.
			Joins("JOIN recipe_dietary_restrictions rdr ON rdr.recipe_id = recipes.id").
			Joins("JOIN dietary_restrictions dr ON dr.id = rdr.dietary_restriction_id").
			Where("dr.name IN ?", restrictions).
			Group("recipes.id").
			Having("COUNT(DISTINCT dr.name) = ?", len(restrictions))
	}

	// Resolve ids first: GROUP BY plus Preload does not mix well, and
	// selecting only ids keeps the grouped query valid on both postgres
	// and sqlite.
	var ids []uint
	if err := q.Order("recipes.id").Pluck("recipes.id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to find candidate recipes: %w", err)
	}
	if len(ids) == 0 {
		return []models.Recipe{}, nil
	}

	var recipes []models.Recipe
	if err := s.recipeQuery(ctx).Where("recipes.id IN ?", ids).Order("recipes.id").Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("failed to load candidate recipes: %w", err)
	}
	return recipes, nil
}
