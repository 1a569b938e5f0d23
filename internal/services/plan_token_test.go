package services

import (
	"strings"
	"testing"
	"time"

	"tripplanner/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanTokensRoundTrip(t *testing.T) {
	tokens := PlanTokens{Secret: []byte("test-secret"), TTL: time.Hour}
	plan := samplePlan(t, "900")

	signed, err := tokens.Sign(plan)
	require.NoError(t, err)

	got, err := tokens.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, plan.Destination, got.Destination)
	assert.True(t, plan.TotalCost.Equal(got.TotalCost))
	assert.True(t, plan.Overage.Equal(got.Overage))
	assert.Equal(t, plan.WithinBudget, got.WithinBudget)
	require.Len(t, got.Days, 2)
	assert.Equal(t, "Uffizi Gallery", got.Days[1].Activities[0].Name)
	assert.Equal(t, RenderMarkdown(plan), RenderMarkdown(got))
}

func TestPlanTokensRejectTampering(t *testing.T) {
	tokens := PlanTokens{Secret: []byte("test-secret")}
	signed, err := tokens.Sign(samplePlan(t, "900"))
	require.NoError(t, err)

	parts := strings.Split(signed, ".")
	require.Len(t, parts, 3)
	forged := parts[0] + "." + parts[1] + "x." + parts[2]

	_, err = tokens.Verify(forged)
	assert.True(t, domain.IsInvalidRequest(err))

	_, err = PlanTokens{Secret: []byte("other-secret")}.Verify(signed)
	assert.True(t, domain.IsInvalidRequest(err))
}

func TestPlanTokensExpire(t *testing.T) {
	issued := time.Now()
	tokens := PlanTokens{Secret: []byte("test-secret"), TTL: time.Minute, Now: func() time.Time { return issued }}
	signed, err := tokens.Sign(samplePlan(t, "900"))
	require.NoError(t, err)

	later := PlanTokens{Secret: []byte("test-secret"), Now: func() time.Time { return issued.Add(2 * time.Minute) }}
	_, err = later.Verify(signed)
	assert.True(t, domain.IsInvalidRequest(err))
}

func TestPlanTokensNeedSecret(t *testing.T) {
	_, err := PlanTokens{}.Sign(samplePlan(t, "900"))
	assert.True(t, domain.IsInternal(err))
}

func TestNewPlanSecret(t *testing.T) {
	a, err := NewPlanSecret()
	require.NoError(t, err)
	b, err := NewPlanSecret()
	require.NoError(t, err)

	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)

	tokens := PlanTokens{Secret: a, TTL: time.Hour}
	signed, err := tokens.Sign(samplePlan(t, "900"))
	require.NoError(t, err)
	_, err = PlanTokens{Secret: b, TTL: time.Hour}.Verify(signed)
	assert.True(t, domain.IsInvalidRequest(err))
}
