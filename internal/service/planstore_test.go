package service

import (
	"context"
	"net"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutriquery/backend/internal/types"
)

// planStoreClient connects to a local Redis, skipping the test when none
// is reachable.
func planStoreClient(t *testing.T) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = net.JoinHostPort("localhost", "6379")
	}

	client := redis.NewClient(&redis.Options{Addr: addr, DB: 1})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("redis not reachable at %s, skipping: %v", addr, err)
	}

	t.Cleanup(func() {
		client.FlushDB(context.Background())
		client.Close()
	})
	return client
}

func samplePlan() *types.QueryResult {
	return &types.QueryResult{
		ParsedQuery: types.ParsedQuery{
			DietaryRestrictions: []string{"vegetarian"},
			MealTypes:           []string{"dinner"},
			MealCount:           2,
			OwnedIngredients:    []string{"rice"},
			RequiredIngredients: []string{},
			CuisinePreferences:  []string{},
		},
		SuggestedRecipes: []types.RecipeView{
			{ID: 1, Name: "Black Bean Tacos", MealType: "dinner"},
		},
		GroceryList: []types.GroceryListItem{
			{IngredientName: "black beans", TotalQuantity: 2.0, Unit: "cup", RecipesUsedIn: []string{"Black Bean Tacos"}},
		},
	}
}

func TestPlanStore(t *testing.T) {
	store := NewPlanStore(planStoreClient(t))
	ctx := context.Background()

	t.Run("should save and retrieve a plan", func(t *testing.T) {
		id, err := store.SavePlan(ctx, samplePlan())
		require.NoError(t, err)
		require.NotEmpty(t, id)

		retrieved, err := store.GetPlan(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, id, retrieved.PlanID)
		assert.Equal(t, []string{"vegetarian"}, retrieved.ParsedQuery.DietaryRestrictions)
		require.Len(t, retrieved.SuggestedRecipes, 1)
		assert.Equal(t, "Black Bean Tacos", retrieved.SuggestedRecipes[0].Name)
		require.Len(t, retrieved.GroceryList, 1)
		assert.Equal(t, 2.0, retrieved.GroceryList[0].TotalQuantity)
	})

	t.Run("should not mutate the result being saved", func(t *testing.T) {
		plan := samplePlan()

		_, err := store.SavePlan(ctx, plan)

		require.NoError(t, err)
		assert.Empty(t, plan.PlanID)
	})

	t.Run("should report unknown plan ids as not found", func(t *testing.T) {
		_, err := store.GetPlan(ctx, "does-not-exist")

		assert.ErrorIs(t, err, ErrPlanNotFound)
	})

	t.Run("should delete a stored plan", func(t *testing.T) {
		id, err := store.SavePlan(ctx, samplePlan())
		require.NoError(t, err)

		require.NoError(t, store.DeletePlan(ctx, id))

		_, err = store.GetPlan(ctx, id)
		assert.ErrorIs(t, err, ErrPlanNotFound)

		assert.ErrorIs(t, store.DeletePlan(ctx, id), ErrPlanNotFound)
	})
}
