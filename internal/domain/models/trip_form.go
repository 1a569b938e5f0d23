package models

import (
	"strings"

	"tripplanner/internal/domain"
	"tripplanner/internal/utils"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

const DefaultCurrency = "USD"

// TripForm is the raw form submission, bound from JSON request bodies or
// YAML/JSON request files.
type TripForm struct {
	Destination string   `json:"destination" yaml:"destination" binding:"required"`
	StartDate   string   `json:"start_date" yaml:"start_date" binding:"required"`
	EndDate     string   `json:"end_date" yaml:"end_date" binding:"required"`
	Budget      float64  `json:"budget_ceiling" yaml:"budget_ceiling"`
	Travelers   int      `json:"travelers" yaml:"travelers"`
	Interests   []string `json:"interests" yaml:"interests" binding:"max=10,dive,max=60"`
	Ages        []int    `json:"ages" yaml:"ages" binding:"max=20"`
	Guardrails  string   `json:"guardrails" yaml:"guardrails" binding:"max=500"`
	Currency    string   `json:"currency" yaml:"currency"`
}

// ToRequest normalizes the form into a TripRequest. Budget ceiling and
// traveler count bounds are checked by the reconciler, not here.
func (f TripForm) ToRequest() (TripRequest, error) {
	var req TripRequest

	lines := []string{}
	for _, line := range strings.Split(f.Destination, "\n") {
		if line = utils.NormalizeSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return req, domain.InvalidRequestError{Field: "destination", Msg: "at least one city is required"}
	}

	start, err := utils.ParseDate(f.StartDate)
	if err != nil {
		return req, domain.InvalidRequestError{Field: "start_date", Msg: "expected YYYY-MM-DD", Err: err}
	}
	end, err := utils.ParseDate(f.EndDate)
	if err != nil {
		return req, domain.InvalidRequestError{Field: "end_date", Msg: "expected YYYY-MM-DD", Err: err}
	}
	if end.Before(start) {
		return req, domain.InvalidRequestError{Field: "end_date", Msg: "must not be before start_date"}
	}

	for _, age := range f.Ages {
		if age < 0 || age > 120 {
			return req, domain.InvalidRequestError{Field: "ages", Msg: "each age must be between 0 and 120"}
		}
	}

	code := strings.ToUpper(utils.TrimOrEmpty(f.Currency))
	if code == "" {
		code = DefaultCurrency
	}
	if _, err := currency.ParseISO(code); err != nil {
		return req, domain.InvalidRequestError{Field: "currency", Msg: "unknown ISO 4217 code", Err: err}
	}

	req = TripRequest{
		Destination:   strings.Join(lines, "\n"),
		StartDate:     start,
		EndDate:       end,
		BudgetCeiling: decimal.NewFromFloat(f.Budget),
		Travelers:     f.Travelers,
		Interests:     utils.UniqueFold(f.Interests),
		Ages:          append([]int(nil), f.Ages...),
		Guardrails:    utils.TrimOrEmpty(f.Guardrails),
		Currency:      code,
	}
	return req, nil
}
