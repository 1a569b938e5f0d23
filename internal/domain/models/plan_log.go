package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlanSummary is the audit row written for every reconciled plan. The
// itinerary itself is never stored.
type PlanSummary struct {
	ID            int64           `json:"id"`
	RequestID     string          `json:"request_id"`
	Destination   string          `json:"destination"`
	Travelers     int             `json:"travelers"`
	BudgetCeiling decimal.Decimal `json:"budget_ceiling"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	WithinBudget  bool            `json:"within_budget"`
	Overage       decimal.Decimal `json:"overage"`
	DayCount      int             `json:"day_count"`
	CreatedAt     time.Time       `json:"created_at"`
}

// SummaryOf condenses a reconciled plan into its audit row.
func SummaryOf(requestID string, p ReconciledItinerary, at time.Time) PlanSummary {
	return PlanSummary{
		RequestID:     requestID,
		Destination:   p.Destination,
		Travelers:     p.Travelers,
		BudgetCeiling: p.BudgetCeiling,
		TotalCost:     p.TotalCost,
		WithinBudget:  p.WithinBudget,
		Overage:       p.Overage,
		DayCount:      len(p.Days),
		CreatedAt:     at,
	}
}
