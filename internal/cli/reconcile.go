package cli

import (
	"tripplanner/internal/services"

	"github.com/spf13/cobra"
)

// NewReconcileCommand reconciles a saved draft against a trip request.
func NewReconcileCommand(rootOpts *RootOptions) *cobra.Command {
	var requestPath, draftPath, pdfPath string

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Reconcile a saved itinerary draft against a trip request",
		Long: `Compute per-day subtotals, the trip total and the budget status for an
itinerary draft that was produced earlier, without calling the model.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(cmd, rootOpts)

			req, err := loadRequest(requestPath)
			if err != nil {
				return f.Fail(GetExitCode(err), err)
			}
			draft, err := loadDraft(draftPath)
			if err != nil {
				return f.Fail(GetExitCode(err), err)
			}

			plan, err := services.PlannerService{}.ReconcileDraft(cmd.Context(), req, draft)
			if err != nil {
				return f.Fail(ExitFailure, err)
			}
			return writePlan(f, plan, pdfPath)
		},
	}

	cmd.Flags().StringVar(&requestPath, "request", "", "trip request file (.json, .yaml)")
	cmd.Flags().StringVar(&draftPath, "draft", "", "itinerary draft file (JSON)")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "also write the plan as PDF to this path")
	_ = cmd.MarkFlagRequired("request")
	_ = cmd.MarkFlagRequired("draft")

	return cmd
}
