package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nutriquery/backend/internal/models"
	"github.com/nutriquery/backend/internal/testhelpers"
)

func TestRunMigrationsSQLite(t *testing.T) {
	db := testhelpers.SetupTestDB(t)

	require.NoError(t, RunMigrations(db, "../../migrations", zap.NewNop()))

	for _, table := range []string{"dietary_restrictions", "ingredients", "recipes", "recipe_ingredients", "recipe_dietary_restrictions"} {
		assert.True(t, db.Migrator().HasTable(table), "missing table %s", table)
	}
}

func TestRunMigrationsPostgres(t *testing.T) {
	db := testhelpers.SetupPostgresContainer(t)
	logger := zap.NewNop()

	require.NoError(t, RunMigrations(db, "../../migrations", logger))

	for _, table := range []string{"dietary_restrictions", "ingredients", "recipes", "recipe_ingredients", "recipe_dietary_restrictions"} {
		assert.True(t, db.Migrator().HasTable(table), "missing table %s", table)
	}

	var applied int64
	require.NoError(t, db.Table("migrations").Count(&applied).Error)
	assert.Equal(t, int64(1), applied)

	// Reruns are no-ops.
	require.NoError(t, RunMigrations(db, "../../migrations", logger))
	require.NoError(t, db.Table("migrations").Count(&applied).Error)
	assert.Equal(t, int64(1), applied)

	// The migrated schema accepts the models.
	restriction := models.DietaryRestriction{Name: "vegan"}
	require.NoError(t, db.Create(&restriction).Error)
	ingredient := models.Ingredient{Name: "rice", Category: "pantry", Unit: "cup"}
	require.NoError(t, db.Create(&ingredient).Error)
	recipe := models.Recipe{
		Name:                "Rice Bowl",
		MealType:            "dinner",
		Servings:            2,
		DietaryRestrictions: []models.DietaryRestriction{restriction},
		Ingredients: []models.RecipeIngredient{
			{IngredientID: ingredient.ID, Quantity: 1.5, Unit: "cup"},
		},
	}
	require.NoError(t, db.Create(&recipe).Error)

	var loaded models.Recipe
	require.NoError(t, db.Preload("Ingredients").Preload("DietaryRestrictions").First(&loaded, recipe.ID).Error)
	assert.Len(t, loaded.Ingredients, 1)
	assert.Len(t, loaded.DietaryRestrictions, 1)
}
