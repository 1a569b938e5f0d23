package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TripRequest carries the user's trip constraints. Built once from a
// TripForm and treated as read-only afterwards.
type TripRequest struct {
	Destination   string          `json:"destination"`
	StartDate     time.Time       `json:"start_date"`
	EndDate       time.Time       `json:"end_date"`
	BudgetCeiling decimal.Decimal `json:"budget_ceiling"`
	Travelers     int             `json:"travelers"`
	Interests     []string        `json:"interests,omitempty"`
	Ages          []int           `json:"ages,omitempty"`
	Guardrails    string          `json:"guardrails,omitempty"`
	Currency      string          `json:"currency,omitempty"`
}

// Cities splits the destination into one entry per non-empty line.
func (r TripRequest) Cities() []string {
	out := []string{}
	for _, line := range strings.Split(r.Destination, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// Days returns the inclusive number of calendar days of the trip, or 0
// when the dates are not set.
func (r TripRequest) Days() int {
	if r.StartDate.IsZero() || r.EndDate.IsZero() || r.EndDate.Before(r.StartDate) {
		return 0
	}
	return int(r.EndDate.Sub(r.StartDate).Hours()/24) + 1
}
