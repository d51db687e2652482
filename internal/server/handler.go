package server

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/sasusim/remuneration-simulator/internal/calculation"
	"github.com/sasusim/remuneration-simulator/internal/config"
	"github.com/sasusim/remuneration-simulator/internal/domain"
	"github.com/shopspring/decimal"
)

const maxBodyBytes = 1 << 20

// SimulationResponse wraps a result with a request-scoped identifier.
type SimulationResponse struct {
	ID     string                   `json:"id"`
	Result *domain.SimulationResult `json:"result"`
}

// OptimizationRequest is the body of POST /api/v1/optimizations.
type OptimizationRequest struct {
	Input domain.SimulationInput `json:"input"`
	Min   decimal.Decimal        `json:"min"`
	Max   decimal.Decimal        `json:"max"`
	Step  decimal.Decimal        `json:"step"`
}

// OptimizationResponse wraps a sweep with a request-scoped identifier.
type OptimizationResponse struct {
	ID     string                     `json:"id"`
	Result *domain.OptimizationResult `json:"result"`
}

// Handler serves the simulation endpoints. One engine is shared by all requests.
type Handler struct {
	engine *calculation.CalculationEngine
	parser *config.InputParser
}

func NewHandler(engine *calculation.CalculationEngine) *Handler {
	return &Handler{engine: engine, parser: config.NewInputParser()}
}

// Rules returns the fiscal rules the engine was built with.
func (h *Handler) Rules(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.engine.Rules)
}

func (h *Handler) Simulate(w http.ResponseWriter, r *http.Request) {
	var in domain.SimulationInput
	if !h.decode(w, r, &in) {
		return
	}
	config.ApplyInputDefaults(&in)
	if err := h.parser.ValidateSimulationInput(&in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.engine.RunSimulation(r.Context(), in)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, SimulationResponse{ID: uuid.NewString(), Result: result})
}

func (h *Handler) Optimize(w http.ResponseWriter, r *http.Request) {
	var req OptimizationRequest
	if !h.decode(w, r, &req) {
		return
	}
	config.ApplyInputDefaults(&req.Input)
	if err := h.parser.ValidateSimulationInput(&req.Input); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.engine.Optimize(r.Context(), req.Input, calculation.OptimizeOptions{Min: req.Min, Max: req.Max, Step: req.Step})
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, OptimizationResponse{ID: uuid.NewString(), Result: result})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, calculation.ErrInvalidSweep):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.engine.Logger.Errorf("request failed: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
