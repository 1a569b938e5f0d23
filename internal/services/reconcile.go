package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"
	"tripplanner/internal/utils"

	"github.com/shopspring/decimal"
)

// Bounds on a single activity cost as written in the draft.
const (
	maxCostLen      = 64
	minCostExponent = -10
	maxCostExponent = 12
	maxCostDigits   = 20
)

// budgetSplit is the suggested share of the ceiling per spending category.
var budgetSplit = []struct {
	category string
	share    decimal.Decimal
}{
	{"Accommodation", decimal.RequireFromString("0.40")},
	{"Food", decimal.RequireFromString("0.25")},
	{"Transport", decimal.RequireFromString("0.15")},
	{"Activities", decimal.RequireFromString("0.20")},
}

// Reconcile validates a model draft against the trip request and computes
// per-day subtotals, the total and the budget status. It never trims or
// reorders the proposed activities and does not touch its inputs.
func Reconcile(req models.TripRequest, draft models.ItineraryDraft) (models.ReconciledItinerary, error) {
	if err := ValidateRequest(req); err != nil {
		return models.ReconciledItinerary{}, err
	}

	days := make([]models.ReconciledDay, 0, len(draft.Days))
	total := decimal.Zero
	for i, d := range draft.Days {
		dayNo := d.Day
		if dayNo <= 0 {
			dayNo = i + 1
		}

		activities := make([]models.ReconciledActivity, 0, len(d.Activities))
		subtotal := decimal.Zero
		for j, a := range d.Activities {
			cost, err := parseCost(a.EstimatedCost)
			if err != nil {
				return models.ReconciledItinerary{}, domain.MalformedDraftError{
					Day:      dayNo,
					Activity: activityLabel(a, j),
					Msg:      err.Error(),
				}
			}
			subtotal = subtotal.Add(cost)
			activities = append(activities, models.ReconciledActivity{
				Name:     strings.TrimSpace(a.Name),
				Cost:     cost,
				TimeSlot: strings.TrimSpace(a.TimeSlot),
			})
		}
		total = total.Add(subtotal)

		days = append(days, models.ReconciledDay{
			Day:        dayNo,
			City:       strings.TrimSpace(d.City),
			Title:      strings.TrimSpace(d.Title),
			Activities: activities,
			Subtotal:   utils.RoundMoney(subtotal),
		})
	}
	total = utils.RoundMoney(total)

	plan := models.ReconciledItinerary{
		Destination:   req.Destination,
		Cities:        req.Cities(),
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Travelers:     req.Travelers,
		Interests:     append([]string(nil), req.Interests...),
		Currency:      currencyOrDefault(req.Currency),
		Days:          days,
		TotalCost:     total,
		BudgetCeiling: req.BudgetCeiling,
		WithinBudget:  total.LessThanOrEqual(req.BudgetCeiling),
		Overage:       decimal.Zero,
		PerPersonCost: utils.RoundMoney(total.Div(decimal.NewFromInt(int64(req.Travelers)))),
		Allocation:    AllocateBudget(req.BudgetCeiling),
	}
	if !plan.WithinBudget {
		plan.Overage = utils.RoundMoney(total.Sub(req.BudgetCeiling))
	}
	return plan, nil
}

// AllocateBudget splits a ceiling into the suggested spending categories.
func AllocateBudget(ceiling decimal.Decimal) []models.BudgetLine {
	out := make([]models.BudgetLine, 0, len(budgetSplit))
	for _, s := range budgetSplit {
		out = append(out, models.BudgetLine{
			Category: s.category,
			Share:    s.share,
			Amount:   utils.RoundMoney(ceiling.Mul(s.share)),
		})
	}
	return out
}

// ValidateRequest checks the budget ceiling and traveler count bounds.
func ValidateRequest(req models.TripRequest) error {
	if req.BudgetCeiling.Sign() <= 0 {
		return domain.InvalidRequestError{Field: "budget_ceiling", Msg: "must be greater than zero"}
	}
	if req.Travelers < 1 {
		return domain.InvalidRequestError{Field: "travelers", Msg: "must be at least 1"}
	}
	return nil
}

func parseCost(raw json.Number) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw.String())
	if s == "" {
		return decimal.Zero, errors.New("cost is missing")
	}
	if len(s) > maxCostLen {
		return decimal.Zero, fmt.Errorf("cost %.20q... is too long", s)
	}
	cost, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("cost %q is not numeric", s)
	}
	// Arithmetic and comparison rescale both operands, so a huge exponent
	// must be rejected before the cost touches anything else.
	if exp := cost.Exponent(); exp < minCostExponent || exp > maxCostExponent || cost.NumDigits() > maxCostDigits {
		return decimal.Zero, fmt.Errorf("cost %s is out of range", s)
	}
	if cost.IsNegative() {
		return decimal.Zero, fmt.Errorf("cost %s must not be negative", s)
	}
	return cost, nil
}

func activityLabel(a models.Activity, idx int) string {
	if name := strings.TrimSpace(a.Name); name != "" {
		return name
	}
	return fmt.Sprintf("#%d", idx+1)
}

func currencyOrDefault(code string) string {
	if code = strings.ToUpper(strings.TrimSpace(code)); code != "" {
		return code
	}
	return models.DefaultCurrency
}
