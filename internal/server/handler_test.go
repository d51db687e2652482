package server

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/sasusim/remuneration-simulator/internal/calculation"
	"github.com/sasusim/remuneration-simulator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() http.Handler {
	cfg := RouterConfig{Env: "test", Version: "test", LogOutput: io.Discard, LogLevel: slog.LevelError}
	return NewRouter(cfg, NewHandler(calculation.NewCalculationEngine()))
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestSimulateEndpoint(t *testing.T) {
	h := newTestRouter()
	rec := do(t, h, http.MethodPost, "/api/v1/simulations",
		`{"monthly_revenue": 12000, "monthly_expenses": 500, "target_net_monthly": 1700}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp SimulationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	_, err := uuid.Parse(resp.ID)
	assert.NoError(t, err)
	require.NotNil(t, resp.Result)
	assert.Equal(t, "1", resp.Result.Input.FiscalShares.String(), "missing shares default to one")
	assert.True(t, resp.Result.MonthlyAverage.GreaterThan(resp.Result.Input.TargetNetMonthly))
	assert.Len(t, resp.Result.Composition, 2)
}

func TestSimulateEndpointWithVehicle(t *testing.T) {
	h := newTestRouter()
	body := `{"monthly_revenue": "10000", "monthly_expenses": "0", "target_net_monthly": "2500", "fiscal_shares": "2",
		"vehicle": {"enabled": true, "monthly_lease": "500", "duration_months": 36, "initial_contribution": "3600", "monthly_benefit_in_kind": "150"}}`
	rec := do(t, h, http.MethodPost, "/api/v1/simulations", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp SimulationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "7200", resp.Result.Vehicle.Annual.String())
	assert.Equal(t, domain.VehicleModeSmoothed, resp.Result.Input.Vehicle.Mode)
}

func TestSimulateEndpointRejectsBadInput(t *testing.T) {
	h := newTestRouter()
	cases := []struct {
		name string
		body string
	}{
		{"malformed json", `{"monthly_revenue": `},
		{"unknown field", `{"revenue": 1000}`},
		{"negative revenue", `{"monthly_revenue": -1, "target_net_monthly": 1000}`},
		{"odd shares", `{"monthly_revenue": 1000, "fiscal_shares": 1.3}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/v1/simulations", tc.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, http.StatusBadRequest, resp.Status)
			assert.NotEmpty(t, resp.Message)
		})
	}
}

func TestOptimizeEndpoint(t *testing.T) {
	h := newTestRouter()
	body := `{"input": {"monthly_revenue": 10000, "monthly_expenses": 1000}, "min": 0, "max": 3000, "step": 500}`
	rec := do(t, h, http.MethodPost, "/api/v1/optimizations", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp OptimizationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Result.Points, 7)
	for _, p := range resp.Result.Points {
		assert.True(t, resp.Result.Best.MonthlyAverage.GreaterThanOrEqual(p.MonthlyAverage))
	}
}

func TestOptimizeEndpointInvalidSweep(t *testing.T) {
	h := newTestRouter()
	body := `{"input": {"monthly_revenue": 10000}, "min": 3000, "max": 0, "step": 500}`
	rec := do(t, h, http.MethodPost, "/api/v1/optimizations", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid optimization sweep")
}

func TestRulesEndpoint(t *testing.T) {
	h := newTestRouter()
	rec := do(t, h, http.MethodGet, "/api/v1/rules", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var rules domain.FiscalRules
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rules))
	assert.Equal(t, 2024, rules.Year)
	assert.Len(t, rules.IncomeTax.Brackets, 5)
	assert.Equal(t, "0.3", rules.Dividends.FlatTaxRate.String())
}

func TestHealthAndNotFound(t *testing.T) {
	h := newTestRouter()
	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/health", "").Code)

	rec := do(t, h, http.MethodGet, "/api/v1/unknown", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":404`)
}
