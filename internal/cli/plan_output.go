package cli

import (
	"fmt"
	"os"
	"strings"

	"tripplanner/internal/domain/models"
	"tripplanner/internal/services"
	"tripplanner/internal/utils"

	"github.com/spf13/cobra"
)

type planResult struct {
	Plan     models.ReconciledItinerary `json:"plan"`
	Markdown string                     `json:"markdown"`
	PDF      string                     `json:"pdf,omitempty"`
}

// writePlan prints a reconciled plan and optionally saves its PDF.
func writePlan(f *OutputFormatter, plan models.ReconciledItinerary, pdfPath string) error {
	res := planResult{Plan: plan, Markdown: services.RenderMarkdown(plan)}

	if pdfPath != "" {
		pdfBytes, _, err := services.DocsService{}.GeneratePlanPDF(plan)
		if err != nil {
			return f.Fail(ExitFailure, err)
		}
		if err := os.WriteFile(pdfPath, pdfBytes, 0o644); err != nil {
			return f.Fail(ExitCommandError, fmt.Errorf("write %s: %w", pdfPath, err))
		}
		res.PDF = pdfPath
	}

	var b strings.Builder
	b.WriteString(res.Markdown)
	b.WriteString("\n")
	b.WriteString(statusLine(plan))
	if res.PDF != "" {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("PDF saved to " + res.PDF))
	}
	return f.Success(res, b.String())
}

func statusLine(plan models.ReconciledItinerary) string {
	total := utils.FormatMoney(plan.Currency, plan.TotalCost)
	ceiling := utils.FormatMoney(plan.Currency, plan.BudgetCeiling)
	if plan.WithinBudget {
		return okStyle.Render(fmt.Sprintf("WITHIN BUDGET  %s of %s", total, ceiling))
	}
	return overStyle.Render(fmt.Sprintf("OVER BUDGET  %s of %s, over by %s", total, ceiling,
		utils.FormatMoney(plan.Currency, plan.Overage)))
}

func newFormatter(cmd *cobra.Command, opts *RootOptions) *OutputFormatter {
	return &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
}
