package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/nutriquery/backend/internal/types"
)

// planTTL bounds how long a generated plan stays retrievable.
const planTTL = 24 * time.Hour

// PlanStore keeps generated meal plans in Redis so clients can fetch
// them again by id. The store is optional; without Redis the service
// still answers queries, the plans are just not retrievable later.
type PlanStore struct {
	redis *redis.Client
}

// NewPlanStore creates a new PlanStore instance.
func NewPlanStore(client *redis.Client) *PlanStore {
	return &PlanStore{redis: client}
}

// SavePlan stores the result under a fresh plan id and returns the id.
// The id is embedded in the stored payload so a later GET returns the
// same body the original query response carried.
func (s *PlanStore) SavePlan(ctx context.Context, result *types.QueryResult) (string, error) {
	id := uuid.New().String()
	stored := *result
	stored.PlanID = id

	data, err := json.Marshal(&stored)
	if err != nil {
		return "", fmt.Errorf("failed to marshal plan: %w", err)
	}
	if err := s.redis.Set(ctx, planKey(id), data, planTTL).Err(); err != nil {
		return "", fmt.Errorf("failed to save plan to Redis: %w", err)
	}
	return id, nil
}

// GetPlan retrieves a stored plan. Unknown and expired ids return
// ErrPlanNotFound.
func (s *PlanStore) GetPlan(ctx context.Context, id string) (*types.QueryResult, error) {
	data, err := s.redis.Get(ctx, planKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get plan from Redis: %w", err)
	}

	var result types.QueryResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal plan: %w", err)
	}
	return &result, nil
}

// DeletePlan removes a stored plan.
func (s *PlanStore) DeletePlan(ctx context.Context, id string) error {
	deleted, err := s.redis.Del(ctx, planKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete plan from Redis: %w", err)
	}
	if deleted == 0 {
		return ErrPlanNotFound
	}
	return nil
}

func planKey(id string) string {
	return "meal:plan:" + id
}
