package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Activity is one proposed item of a model-generated day. EstimatedCost
// is kept raw; it is only trusted after reconciliation.
type Activity struct {
	Name          string      `json:"name"`
	EstimatedCost json.Number `json:"estimated_cost"`
	TimeSlot      string      `json:"time_slot,omitempty"`
}

type DayPlan struct {
	Day        int        `json:"day"`
	City       string     `json:"city,omitempty"`
	Title      string     `json:"title,omitempty"`
	Activities []Activity `json:"activities"`
}

// ItineraryDraft is the unvalidated day-by-day plan produced by the model.
type ItineraryDraft struct {
	Days []DayPlan `json:"days"`
}

type ReconciledActivity struct {
	Name     string          `json:"name"`
	Cost     decimal.Decimal `json:"cost"`
	TimeSlot string          `json:"time_slot,omitempty"`
}

type ReconciledDay struct {
	Day        int                  `json:"day"`
	City       string               `json:"city,omitempty"`
	Title      string               `json:"title,omitempty"`
	Activities []ReconciledActivity `json:"activities"`
	Subtotal   decimal.Decimal      `json:"subtotal"`
}

// BudgetLine is one category of the suggested budget split.
type BudgetLine struct {
	Category string          `json:"category"`
	Share    decimal.Decimal `json:"share"`
	Amount   decimal.Decimal `json:"amount"`
}

// ReconciledItinerary is a validated, budget-annotated itinerary ready for
// rendering. Overage is zero when WithinBudget is true.
type ReconciledItinerary struct {
	Destination   string          `json:"destination"`
	Cities        []string        `json:"cities"`
	StartDate     time.Time       `json:"start_date"`
	EndDate       time.Time       `json:"end_date"`
	Travelers     int             `json:"travelers"`
	Interests     []string        `json:"interests,omitempty"`
	Currency      string          `json:"currency"`
	Days          []ReconciledDay `json:"days"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	BudgetCeiling decimal.Decimal `json:"budget_ceiling"`
	WithinBudget  bool            `json:"within_budget"`
	Overage       decimal.Decimal `json:"overage"`
	PerPersonCost decimal.Decimal `json:"per_person_cost"`
	Allocation    []BudgetLine    `json:"allocation"`
}

// Remaining is the unspent part of the ceiling, zero when over budget.
func (p ReconciledItinerary) Remaining() decimal.Decimal {
	if !p.WithinBudget {
		return decimal.Zero
	}
	return p.BudgetCeiling.Sub(p.TotalCost)
}

// TripDays is the inclusive calendar length of the trip.
func (p ReconciledItinerary) TripDays() int {
	return TripRequest{StartDate: p.StartDate, EndDate: p.EndDate}.Days()
}
