package cli

import (
	"fmt"
	"strings"

	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"
	"tripplanner/internal/services"
	"tripplanner/internal/utils"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// AllocationResult is the JSON payload of the allocate command.
type AllocationResult struct {
	Currency string              `json:"currency"`
	Budget   decimal.Decimal     `json:"budget"`
	Lines    []models.BudgetLine `json:"lines"`
}

// NewAllocateCommand prints the suggested split of a budget ceiling.
func NewAllocateCommand(rootOpts *RootOptions) *cobra.Command {
	var budget, currency string

	cmd := &cobra.Command{
		Use:           "allocate",
		Short:         "Show the suggested category split of a budget",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(cmd, rootOpts)

			amount, err := decimal.NewFromString(strings.TrimSpace(budget))
			if err != nil || amount.Sign() <= 0 {
				return f.Fail(ExitFailure, domain.InvalidRequestError{Field: "budget", Msg: "must be a positive amount", Err: err})
			}
			code := strings.ToUpper(strings.TrimSpace(currency))

			res := AllocationResult{Currency: code, Budget: amount, Lines: services.AllocateBudget(amount)}
			return f.Success(res, renderAllocation(res))
		},
	}

	cmd.Flags().StringVar(&budget, "budget", "", "budget ceiling, e.g. 2500 or 1999.99")
	cmd.Flags().StringVar(&currency, "currency", models.DefaultCurrency, "ISO 4217 display currency")
	_ = cmd.MarkFlagRequired("budget")

	return cmd
}

func renderAllocation(res AllocationResult) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Budget allocation for " + utils.FormatMoney(res.Currency, res.Budget)))
	b.WriteString("\n")
	for _, l := range res.Lines {
		fmt.Fprintf(&b, "%-14s %5s %s\n", l.Category, utils.FormatPercent(l.Share),
			amountStyle.Render(utils.FormatMoney(res.Currency, l.Amount)))
	}
	return strings.TrimRight(b.String(), "\n")
}
