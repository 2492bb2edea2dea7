package service

import (
	"context"

	"github.com/nutriquery/backend/internal/models"
	"github.com/nutriquery/backend/internal/types"
)

// IInterpreterService defines the interface for free-text query
// interpretation.
type IInterpreterService interface {
	Interpret(ctx context.Context, query string) (types.ParsedQuery, error)
}

// ICatalogService defines the interface for recipe catalog reads.
type ICatalogService interface {
	ListRecipes(ctx context.Context) ([]models.Recipe, error)
	GetRecipe(ctx context.Context, id uint) (*models.Recipe, error)
	FindCandidates(ctx context.Context, mealTypes, restrictions []string) ([]models.Recipe, error)
}

// IPlanStore defines the interface for transient meal plan persistence.
type IPlanStore interface {
	SavePlan(ctx context.Context, result *types.QueryResult) (string, error)
	GetPlan(ctx context.Context, id string) (*types.QueryResult, error)
	DeletePlan(ctx context.Context, id string) error
}

// IPlannerService defines the interface for the end-to-end query
// pipeline.
type IPlannerService interface {
	Process(ctx context.Context, query string) (*types.QueryResult, error)
}
