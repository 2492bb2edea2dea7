package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nutriquery/backend/internal/service"
)

// RecipeHandler serves read access to the recipe catalog.
type RecipeHandler struct {
	catalog service.ICatalogService
}

// NewRecipeHandler creates a new RecipeHandler instance.
func NewRecipeHandler(catalog service.ICatalogService) *RecipeHandler {
	return &RecipeHandler{catalog: catalog}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
	}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.catalog.ListRecipes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recipes": service.RecipesToViews(recipes),
	})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	// Non-numeric ids cannot exist in the catalog, so they read as
	// not found rather than bad requests.
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	recipe, err := h.catalog.GetRecipe(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipe"})
		return
	}

	c.JSON(http.StatusOK, service.RecipeToView(*recipe))
}
