package cli

import (
	intconfig "tripplanner/internal/config"
	"tripplanner/internal/llm"
	"tripplanner/internal/services"

	"github.com/spf13/cobra"
)

// NewGenerateCommand drafts an itinerary with the model and reconciles it.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	var requestPath, pdfPath string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Draft an itinerary with the model and reconcile it",
		Long: `Ask the configured model for a day-by-day itinerary, then reconcile it
against the budget ceiling. Reads OPENAI_API_KEY and related settings
from the environment, .env or TRIPPLAN_CONFIG.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(cmd, rootOpts)

			req, err := loadRequest(requestPath)
			if err != nil {
				return f.Fail(GetExitCode(err), err)
			}

			newGen := rootOpts.NewGenerator
			if newGen == nil {
				newGen = generatorFromEnv
			}
			gen, err := newGen()
			if err != nil {
				return f.Fail(ExitFailure, err)
			}

			plan, err := services.PlannerService{Generator: gen}.Plan(cmd.Context(), req)
			if err != nil {
				return f.Fail(ExitFailure, err)
			}
			return writePlan(f, plan, pdfPath)
		},
	}

	cmd.Flags().StringVar(&requestPath, "request", "", "trip request file (.json, .yaml)")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "also write the plan as PDF to this path")
	_ = cmd.MarkFlagRequired("request")

	return cmd
}

func generatorFromEnv() (llm.Generator, error) {
	env := intconfig.LoadEnv()
	gen, err := llm.NewOpenAIGenerator(llm.OpenAIConfig{
		APIKey:    env.OpenAIAPIKey,
		Model:     env.OpenAIModel,
		BaseURL:   env.OpenAIBaseURL,
		MaxTokens: env.LLMMaxTokens,
		Timeout:   env.LLMTimeout,
	})
	if err != nil {
		return nil, err
	}
	return gen, nil
}
