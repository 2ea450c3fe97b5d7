package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDashboardShowsSeededTotals(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seeded, err := env.Svc.Seed(ctx, "admin")
	require.NoError(t, err)
	require.True(t, seeded)

	revenue, err := env.Svc.Repo.TotalRevenue(ctx)
	require.NoError(t, err)
	orders, err := env.Svc.Repo.CountOrders(ctx)
	require.NoError(t, err)

	rec, c := env.doFormRequest(http.MethodGet, "/dashboard", nil)
	require.NoError(t, env.Dashboard.Dashboard(c))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, fmt.Sprintf("%.2f", revenue))
	require.Contains(t, body, fmt.Sprintf("<span class=\"kpi-value\">%d</span>", orders))
	require.Contains(t, body, "Database initialized with sample data.")
}

func TestDashboardOnEmptyDatabase(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doFormRequest(http.MethodGet, "/dashboard", nil)
	require.NoError(t, env.Dashboard.Dashboard(c))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "No activity yet.")
}
