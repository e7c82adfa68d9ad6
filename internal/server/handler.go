package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/proforma-dev/proforma/internal/render"
	"github.com/proforma-dev/proforma/internal/statement"
)

// Handler wires the evaluation endpoints.
type Handler struct {
	logger    *slog.Logger
	evaluator *statement.Evaluator
	validate  *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, evaluator *statement.Evaluator) *Handler {
	return &Handler{
		logger:    logger,
		evaluator: evaluator,
		validate:  newValidate(),
	}
}

// MountRoutes registers routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/healthz", h.health)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/statements", h.statements)
		r.Post("/compare", h.compare)
	})
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

type statementsResponse struct {
	ID string `json:"id"`
	render.EvaluationJSON
}

func (h *Handler) statements(w http.ResponseWriter, r *http.Request) {
	var req evaluateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondProblem(w, http.StatusBadRequest, "Malformed JSON", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondProblem(w, http.StatusBadRequest, "Validation Failed", validationDetail(err))
		return
	}

	ev, err := h.evaluator.Evaluate(req.Inputs.toInputs(), req.Openings.toOpening())
	if err != nil {
		h.logger.Warn("evaluation failed", slog.Any("error", err))
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, statementsResponse{
		ID:             uuid.NewString(),
		EvaluationJSON: render.NewEvaluationJSON(ev),
	})
}

type compareResponse struct {
	ID string `json:"id"`
	render.ComparisonJSON
}

func (h *Handler) compare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := decodeJSON(r, &req); err != nil {
		respondProblem(w, http.StatusBadRequest, "Malformed JSON", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondProblem(w, http.StatusBadRequest, "Validation Failed", validationDetail(err))
		return
	}

	var thresholds statement.Thresholds
	if req.ThresholdAmount != nil {
		a := decimal.NewFromFloat(*req.ThresholdAmount)
		thresholds.Amount = &a
	}
	if req.ThresholdPercent != nil {
		p := decimal.NewFromFloat(*req.ThresholdPercent)
		thresholds.Percent = &p
	}

	cmp, err := h.evaluator.Compare(req.Before.toInputs(), req.After.toInputs(), req.Openings.toOpening(), thresholds)
	if err != nil {
		h.logger.Warn("comparison failed", slog.Any("error", err))
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, compareResponse{
		ID:             uuid.NewString(),
		ComparisonJSON: render.NewComparisonJSON(cmp),
	})
}
