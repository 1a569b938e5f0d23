package services

import (
	"context"
	"fmt"
	"time"

	"tripplanner/internal/domain/models"
	"tripplanner/internal/llm"
	"tripplanner/internal/utils"
)

// PlanLogger records an audit summary of a reconciled plan.
type PlanLogger interface {
	Insert(ctx context.Context, s models.PlanSummary) error
}

// PlannerService runs the single-shot flow: model draft, reconcile, audit.
type PlannerService struct {
	Generator llm.Generator
	Log       PlanLogger
	RequestID string
	Now       func() time.Time
}

// Plan rejects an out-of-bounds request before the model is called.
func (s PlannerService) Plan(ctx context.Context, req models.TripRequest) (models.ReconciledItinerary, error) {
	if err := ValidateRequest(req); err != nil {
		utils.LogEvent(s.RequestID, "planner", "request_rejected", err.Error())
		return models.ReconciledItinerary{}, err
	}
	draft, err := llm.Draft(ctx, s.Generator, req)
	if err != nil {
		utils.LogEvent(s.RequestID, "planner", "draft_failed", err.Error())
		return models.ReconciledItinerary{}, err
	}
	utils.LogEvent(s.RequestID, "planner", "draft_received", fmt.Sprintf("days=%d", len(draft.Days)))
	return s.ReconcileDraft(ctx, req, draft)
}

// ReconcileDraft reconciles a draft the user already has, without calling
// the model again.
func (s PlannerService) ReconcileDraft(ctx context.Context, req models.TripRequest, draft models.ItineraryDraft) (models.ReconciledItinerary, error) {
	plan, err := Reconcile(req, draft)
	if err != nil {
		utils.LogEvent(s.RequestID, "planner", "reconcile_failed", err.Error())
		return models.ReconciledItinerary{}, err
	}
	utils.LogEvent(s.RequestID, "planner", "reconciled", fmt.Sprintf("total=%s ceiling=%s within_budget=%t",
		plan.TotalCost.StringFixed(2), plan.BudgetCeiling.StringFixed(2), plan.WithinBudget))

	if s.Log != nil {
		if err := s.Log.Insert(ctx, models.SummaryOf(s.RequestID, plan, s.now())); err != nil {
			utils.LogEvent(s.RequestID, "planner", "audit_failed", err.Error())
		}
	}
	return plan, nil
}

func (s PlannerService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowUTC()
}
