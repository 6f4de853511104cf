package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"leadscore_backend/internal/leads/service"
	"leadscore_backend/platform/httpkit"
)

// Handler handles HTTP requests for leads.
type Handler struct {
	svc *service.Service
}

// New creates a new leads handler.
func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Upload ingests leads from a multipart CSV upload.
// POST /api/leads/upload
func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "No CSV file uploaded", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "Failed to read uploaded file", err.Error())
		return
	}
	defer file.Close()

	result, err := h.svc.Upload(c.Request.Context(), file)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// List retrieves all leads, newest first.
// GET /api/leads
func (h *Handler) List(c *gin.Context) {
	result, err := h.svc.List(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}
