package handlers

import (
	"tripplanner/internal/domain/models"
	"tripplanner/internal/utils"
)

// Amounts are rendered as fixed two-decimal strings so clients never see
// float artifacts.

type activityView struct {
	Name     string `json:"name"`
	Cost     string `json:"cost"`
	TimeSlot string `json:"time_slot,omitempty"`
}

type dayView struct {
	Day        int            `json:"day"`
	City       string         `json:"city,omitempty"`
	Title      string         `json:"title,omitempty"`
	Activities []activityView `json:"activities"`
	Subtotal   string         `json:"subtotal"`
}

type allocationView struct {
	Category string `json:"category"`
	Percent  string `json:"percent"`
	Amount   string `json:"amount"`
}

type planView struct {
	Destination   string           `json:"destination"`
	Cities        []string         `json:"cities"`
	StartDate     string           `json:"start_date,omitempty"`
	EndDate       string           `json:"end_date,omitempty"`
	Travelers     int              `json:"travelers"`
	Interests     []string         `json:"interests"`
	Currency      string           `json:"currency"`
	Days          []dayView        `json:"days"`
	TotalCost     string           `json:"total_cost"`
	BudgetCeiling string           `json:"budget_ceiling"`
	WithinBudget  bool             `json:"within_budget"`
	Overage       string           `json:"overage"`
	Remaining     string           `json:"remaining"`
	PerPersonCost string           `json:"per_person_cost"`
	Allocation    []allocationView `json:"allocation"`
}

type summaryView struct {
	ID            int64  `json:"id"`
	RequestID     string `json:"request_id"`
	Destination   string `json:"destination"`
	Travelers     int    `json:"travelers"`
	BudgetCeiling string `json:"budget_ceiling"`
	TotalCost     string `json:"total_cost"`
	WithinBudget  bool   `json:"within_budget"`
	Overage       string `json:"overage"`
	DayCount      int    `json:"day_count"`
	CreatedAt     string `json:"created_at"`
}

func newPlanView(p models.ReconciledItinerary) planView {
	v := planView{
		Destination:   p.Destination,
		Cities:        p.Cities,
		StartDate:     utils.FormatDate(p.StartDate),
		EndDate:       utils.FormatDate(p.EndDate),
		Travelers:     p.Travelers,
		Interests:     p.Interests,
		Currency:      p.Currency,
		Days:          make([]dayView, 0, len(p.Days)),
		TotalCost:     p.TotalCost.StringFixed(2),
		BudgetCeiling: p.BudgetCeiling.StringFixed(2),
		WithinBudget:  p.WithinBudget,
		Overage:       p.Overage.StringFixed(2),
		Remaining:     p.Remaining().StringFixed(2),
		PerPersonCost: p.PerPersonCost.StringFixed(2),
		Allocation:    make([]allocationView, 0, len(p.Allocation)),
	}
	if v.Cities == nil {
		v.Cities = []string{}
	}
	if v.Interests == nil {
		v.Interests = []string{}
	}
	for _, d := range p.Days {
		dv := dayView{
			Day:        d.Day,
			City:       d.City,
			Title:      d.Title,
			Activities: make([]activityView, 0, len(d.Activities)),
			Subtotal:   d.Subtotal.StringFixed(2),
		}
		for _, a := range d.Activities {
			dv.Activities = append(dv.Activities, activityView{Name: a.Name, Cost: a.Cost.StringFixed(2), TimeSlot: a.TimeSlot})
		}
		v.Days = append(v.Days, dv)
	}
	for _, l := range p.Allocation {
		v.Allocation = append(v.Allocation, allocationView{
			Category: l.Category,
			Percent:  utils.FormatPercent(l.Share),
			Amount:   l.Amount.StringFixed(2),
		})
	}
	return v
}

func newSummaryView(s models.PlanSummary) summaryView {
	return summaryView{
		ID:            s.ID,
		RequestID:     s.RequestID,
		Destination:   s.Destination,
		Travelers:     s.Travelers,
		BudgetCeiling: s.BudgetCeiling.StringFixed(2),
		TotalCost:     s.TotalCost.StringFixed(2),
		WithinBudget:  s.WithinBudget,
		Overage:       s.Overage.StringFixed(2),
		DayCount:      s.DayCount,
		CreatedAt:     utils.FormatDateTime(s.CreatedAt),
	}
}
