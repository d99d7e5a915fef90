// Package services holds the pieces between the record stores and the
// HTTP surface: the deal stage engine, the derived dashboard metrics
// and the avatar upload service.
package services

import (
	"context"

	"pipelinepro-server/models"
	"pipelinepro-server/store"
)

// StageEngine owns the relationship between a deal's pipeline stage and
// its win probability. Moving a deal between stages goes through
// Transition; direct field edits stay unconstrained and may set any
// probability.
type StageEngine struct {
	deals store.DealStore
}

func NewStageEngine(deals store.DealStore) *StageEngine {
	return &StageEngine{deals: deals}
}

// Transition moves a deal to newStage and applies the probability table
// for that stage. Any stage may be reached from any stage. A stage
// missing from the table keeps the deal's current probability; the
// fixed stage set makes that fallback unreachable in practice.
func (e *StageEngine) Transition(ctx context.Context, dealID int, newStage string) (models.Deal, error) {
	deal, err := e.deals.Get(ctx, dealID)
	if err != nil {
		return models.Deal{}, err
	}

	probability, ok := models.StageProbability[newStage]
	if !ok {
		probability = deal.Probability
	}

	return e.deals.Update(ctx, dealID, map[string]any{
		"stage":       newStage,
		"probability": probability,
	})
}
