package models

import (
	"time"
)

// Recipe is a seeded catalog recipe. Recipes are immutable once seeded;
// integer primary keys make "catalog order" a plain ORDER BY id.
type Recipe struct {
	ID                  uint                 `gorm:"primaryKey" json:"id"`
	CreatedAt           time.Time            `json:"created_at"`
	UpdatedAt           time.Time            `json:"updated_at"`
	Name                string               `gorm:"size:200;not null" json:"name"`
	Description         string               `gorm:"type:text" json:"description"`
	Cuisine             string               `gorm:"size:50" json:"cuisine"`
	MealType            string               `gorm:"size:20;not null;index" json:"meal_type"`
	PrepTimeMinutes     int                  `json:"prep_time_minutes"`
	Servings            int                  `gorm:"default:4" json:"servings"`
	Ingredients         []RecipeIngredient   `gorm:"constraint:OnDelete:CASCADE" json:"ingredients"`
	DietaryRestrictions []DietaryRestriction `gorm:"many2many:recipe_dietary_restrictions" json:"dietary_restrictions"`
}

func (Recipe) TableName() string {
	return "recipes"
}

// RecipeIngredient is one ingredient line of a recipe. Quantity must be
// positive; Unit may differ from the ingredient's default unit.
type RecipeIngredient struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	RecipeID     uint       `gorm:"not null;index" json:"recipe_id"`
	IngredientID uint       `gorm:"not null" json:"ingredient_id"`
	Ingredient   Ingredient `json:"ingredient"`
	Quantity     float64    `gorm:"not null" json:"quantity"`
	Unit         string     `gorm:"size:20;not null" json:"unit"`
	Notes        string     `gorm:"size:200" json:"notes"`
}

func (RecipeIngredient) TableName() string {
	return "recipe_ingredients"
}
