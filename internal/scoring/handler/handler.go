package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"leadscore_backend/internal/scoring/service"
	"leadscore_backend/internal/scoring/transport"
	"leadscore_backend/platform/httpkit"
	"leadscore_backend/platform/validator"
)

// Handler handles HTTP requests for scoring runs and results.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new scoring handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Score runs the scoring pipeline for one offer against all leads.
// POST /api/score
func (h *Handler) Score(c *gin.Context) {
	var req transport.ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "offer_id is required", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "offer_id is required", nil)
		return
	}

	offerID, err := uuid.Parse(req.OfferID)
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid offer_id", nil)
		return
	}

	result, err := h.svc.Run(c.Request.Context(), offerID)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// Results returns filtered scoring results ordered by total score descending.
// GET /api/results
func (h *Handler) Results(c *gin.Context) {
	var q transport.ResultsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid query parameters", nil)
		return
	}

	results, err := h.svc.Results(c.Request.Context(), q)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, results)
}

// Export returns the filtered results as a CSV attachment.
// GET /api/results/export
func (h *Handler) Export(c *gin.Context) {
	var q transport.ResultsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid query parameters", nil)
		return
	}

	csvData, err := h.svc.Export(c.Request.Context(), q)
	if httpkit.HandleError(c, err) {
		return
	}

	c.Header("Content-Disposition", "attachment; filename=lead_scores.csv")
	c.Data(http.StatusOK, "text/csv", csvData)
}
