package status

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlvx/limitwatch/internal/application"
	"github.com/mlvx/limitwatch/internal/domain"
)

func TestRenderEmpty(t *testing.T) {
	rendered, err := Render(nil, RenderOptions{Now: time.Now()})
	require.NoError(t, err)
	assert.Contains(t, rendered, "limitwatch accounts")
	assert.Contains(t, rendered, "accounts: 0")
	assert.Contains(t, rendered, "No accounts stored.")
}

func TestRenderBadges(t *testing.T) {
	now := time.Date(2024, 1, 1, 15, 0, 0, 0, time.UTC)
	availableAt := now.Add(65 * time.Minute)

	statuses := []application.Status{
		{
			Account: domain.Account{ID: "1", Name: "Work", Key: "sk-work-0001-abcdefghij"},
			Active:  true,
		},
		{
			Account: domain.Account{ID: "2", Name: "Personal", Key: "sk-pers", AvailableAt: &availableAt},
		},
	}

	rendered, err := Render(statuses, RenderOptions{Now: now})
	require.NoError(t, err)
	assert.Contains(t, rendered, "accounts: 2")
	assert.Contains(t, rendered, "Work (1)")
	assert.Contains(t, rendered, "[active]")
	assert.Contains(t, rendered, "Personal (2)")
	assert.Contains(t, rendered, "[cooling 1h 5m]")
	assert.Contains(t, rendered, "sk-work-0001...efghij")
	assert.NotContains(t, rendered, "sk-work-0001-abcdefghij")
}

func TestRenderUnnamedAccount(t *testing.T) {
	statuses := []application.Status{
		{Account: domain.Account{ID: "1", Name: "  ", Key: "sk"}},
	}

	rendered, err := Render(statuses, RenderOptions{Now: time.Now()})
	require.NoError(t, err)
	assert.Contains(t, rendered, "unnamed (1)")
}
