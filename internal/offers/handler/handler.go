package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"leadscore_backend/internal/offers/service"
	"leadscore_backend/internal/offers/transport"
	"leadscore_backend/platform/httpkit"
	"leadscore_backend/platform/validator"
)

// Handler handles HTTP requests for offers.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new offers handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Create creates a new offer.
// POST /api/offer
func (h *Handler) Create(c *gin.Context) {
	var req transport.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "Offer name is required", nil)
		return
	}

	offer, err := h.svc.Create(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, transport.CreateOfferResponse{
		Success: true,
		Offer:   offer,
	})
}

// List retrieves all offers, newest first.
// GET /api/offers
func (h *Handler) List(c *gin.Context) {
	offers, err := h.svc.List(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.ListOffersResponse{
		Success: true,
		Offers:  offers,
	})
}
