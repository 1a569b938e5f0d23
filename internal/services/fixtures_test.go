package services

import (
	"testing"
	"time"

	"tripplanner/internal/domain/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func sampleRequest(budget string) models.TripRequest {
	return models.TripRequest{
		Destination:   "Rome, Italy\nFlorence, Italy",
		StartDate:     time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC),
		BudgetCeiling: decimal.RequireFromString(budget),
		Travelers:     2,
		Interests:     []string{"Museums", "Food & Cuisine"},
		Currency:      "USD",
	}
}

func sampleDraft() models.ItineraryDraft {
	return models.ItineraryDraft{Days: []models.DayPlan{
		{
			Day:   1,
			City:  "Rome, Italy",
			Title: "Ancient Rome",
			Activities: []models.Activity{
				{Name: "Colosseum tour", EstimatedCost: "200.00", TimeSlot: "Morning"},
				{Name: "Trastevere food walk", EstimatedCost: "150.00", TimeSlot: "Afternoon"},
			},
		},
		{
			Day:  2,
			City: "Florence, Italy",
			Activities: []models.Activity{
				{Name: "Uffizi Gallery", EstimatedCost: "300.00", TimeSlot: "Morning"},
				{Name: "Ponte Vecchio sunset", EstimatedCost: "300.00"},
			},
		},
	}}
}

func samplePlan(t *testing.T, budget string) models.ReconciledItinerary {
	t.Helper()
	plan, err := Reconcile(sampleRequest(budget), sampleDraft())
	require.NoError(t, err)
	return plan
}
