package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"tripplanner/internal/domain/models"
	"tripplanner/internal/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const requestYAML = `destination: Rome, Italy
start_date: "2026-05-01"
end_date: "2026-05-02"
budget_ceiling: 1000
travelers: 2
interests: [Museums, Food]
`

const overDraft = `Here is your plan:
{"days":[
 {"day":1,"activities":[{"name":"Colosseum","estimated_cost":200.00},{"name":"Food walk","estimated_cost":150.00}]},
 {"day":2,"activities":[{"name":"Vatican","estimated_cost":300.00},{"name":"Opera","estimated_cost":400.00}]}
]}`

type stubGenerator string

func (s stubGenerator) GenerateItinerary(context.Context, models.TripRequest) (string, error) {
	return string(s), nil
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, opts *RootOptions, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := newRootCommand(opts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestReconcileText(t *testing.T) {
	req := writeFile(t, "trip.yaml", requestYAML)
	draft := writeFile(t, "draft.txt", overDraft)

	out, err := run(t, &RootOptions{}, "reconcile", "--request", req, "--draft", draft)
	require.NoError(t, err)
	assert.Contains(t, out, "OVER BUDGET")
	assert.Contains(t, out, "over by $50.00")
	assert.Contains(t, out, "Over budget by $50.00")
}

func TestReconcileJSONWithPDF(t *testing.T) {
	req := writeFile(t, "trip.json", `{"destination":"Rome","start_date":"2026-05-01","end_date":"2026-05-02","budget_ceiling":1000,"travelers":2}`)
	draft := writeFile(t, "draft.json", `{"days":[{"day":1,"activities":[{"name":"a","estimated_cost":200},{"name":"b","estimated_cost":150}]},{"day":2,"activities":[{"name":"c","estimated_cost":300},{"name":"d","estimated_cost":300}]}]}`)
	pdfPath := filepath.Join(t.TempDir(), "plan.pdf")

	out, err := run(t, &RootOptions{}, "--format", "json", "reconcile", "--request", req, "--draft", draft, "--pdf", pdfPath)
	require.NoError(t, err)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Plan models.ReconciledItinerary `json:"plan"`
			PDF  string                     `json:"pdf"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.True(t, resp.Data.Plan.WithinBudget)
	assert.Equal(t, "950", resp.Data.Plan.TotalCost.String())
	assert.Equal(t, pdfPath, resp.Data.PDF)

	pdfBytes, err := os.ReadFile(pdfPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdfBytes, []byte("%PDF-")))
}

func TestReconcileFailures(t *testing.T) {
	req := writeFile(t, "trip.yaml", requestYAML)

	t.Run("negative cost", func(t *testing.T) {
		draft := writeFile(t, "draft.json", `{"days":[{"day":1,"activities":[{"name":"a","estimated_cost":-1}]}]}`)
		out, err := run(t, &RootOptions{}, "--format", "json", "reconcile", "--request", req, "--draft", draft)
		require.Error(t, err)
		assert.Equal(t, ExitFailure, GetExitCode(err))

		var resp CLIResponse
		require.NoError(t, json.Unmarshal([]byte(out), &resp))
		require.NotNil(t, resp.Error)
		assert.Equal(t, "malformed_draft", resp.Error.Code)
	})

	t.Run("zero budget", func(t *testing.T) {
		zero := writeFile(t, "zero.yaml", "destination: Rome\nstart_date: \"2026-05-01\"\nend_date: \"2026-05-01\"\nbudget_ceiling: 0\ntravelers: 1\n")
		draft := writeFile(t, "draft.json", `{"days":[]}`)
		out, err := run(t, &RootOptions{}, "reconcile", "--request", zero, "--draft", draft)
		require.Error(t, err)
		assert.Contains(t, out, "invalid_request")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := run(t, &RootOptions{}, "reconcile", "--request", filepath.Join(t.TempDir(), "nope.yaml"), "--draft", "x")
		require.Error(t, err)
		assert.Equal(t, ExitCommandError, GetExitCode(err))
	})

	t.Run("bad format flag", func(t *testing.T) {
		_, err := run(t, &RootOptions{}, "--format", "xml", "allocate", "--budget", "100")
		require.Error(t, err)
		assert.Equal(t, ExitCommandError, GetExitCode(err))
	})
}

func TestGenerate(t *testing.T) {
	req := writeFile(t, "trip.yaml", requestYAML)

	opts := &RootOptions{NewGenerator: func() (llm.Generator, error) { return stubGenerator(overDraft), nil }}
	out, err := run(t, opts, "generate", "--request", req)
	require.NoError(t, err)
	assert.Contains(t, out, "OVER BUDGET")

	opts = &RootOptions{NewGenerator: func() (llm.Generator, error) { return nil, llm.ErrNotConfigured }}
	out, err = run(t, opts, "--format", "json", "generate", "--request", req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, llm.ErrNotConfigured))
	assert.Contains(t, out, `"code":"llm_unavailable"`)
}

func TestAllocate(t *testing.T) {
	out, err := run(t, &RootOptions{}, "allocate", "--budget", "1000")
	require.NoError(t, err)
	assert.Contains(t, out, "Accommodation")
	assert.Contains(t, out, "$400.00")
	assert.Contains(t, out, "$150.00")

	out, err = run(t, &RootOptions{}, "--format", "json", "allocate", "--budget", "2000", "--currency", "eur")
	require.NoError(t, err)
	var resp struct {
		Data AllocationResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "EUR", resp.Data.Currency)
	require.Len(t, resp.Data.Lines, 4)
	assert.Equal(t, "800", resp.Data.Lines[0].Amount.String())

	_, err = run(t, &RootOptions{}, "allocate", "--budget", "-5")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}
