package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/nutriquery/backend/internal/types"
)

// PlannerService orchestrates one meal-planning request end to end:
// interpret the free text, look up candidate recipes, rank and truncate
// them, then aggregate the grocery list.
type PlannerService struct {
	interpreter IInterpreterService
	catalog     ICatalogService
	plans       IPlanStore
	logger      *zap.Logger
}

// NewPlannerService creates a new PlannerService instance. plans may be
// nil when no Redis is configured.
func NewPlannerService(interpreter IInterpreterService, catalog ICatalogService, plans IPlanStore, logger *zap.Logger) *PlannerService {
	return &PlannerService{
		interpreter: interpreter,
		catalog:     catalog,
		plans:       plans,
		logger:      logger,
	}
}

// Process runs the pipeline. The first failing step aborts the request
// with its tagged error; an empty match or grocery list is a success
// with empty collections. Plan persistence is best-effort: a store
// failure is logged and the response simply carries no plan id.
func (s *PlannerService) Process(ctx context.Context, query string) (*types.QueryResult, error) {
	parsed, err := s.interpreter.Interpret(ctx, query)
	if err != nil {
		return nil, err
	}

	candidates, err := s.catalog.FindCandidates(ctx, parsed.MealTypes, parsed.DietaryRestrictions)
	if err != nil {
		return nil, err
	}

	matched := Match(parsed, candidates)

	groceries, err := Generate(matched, parsed.OwnedIngredients)
	if err != nil {
		return nil, err
	}

	result := &types.QueryResult{
		ParsedQuery:        parsed,
		SuggestedRecipes:   RecipesToViews(matched),
		GroceryList:        groceries,
		TotalEstimatedCost: EstimateCost(groceries),
	}

	if s.plans != nil {
		id, err := s.plans.SavePlan(ctx, result)
		if err != nil {
			s.logger.Warn("failed to persist plan", zap.Error(err))
		} else {
			result.PlanID = id
		}
	}

	return result, nil
}
