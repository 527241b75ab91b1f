package carrier

import (
	"log/slog"
	"net/http"

	"carrierid/internal/common"

	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for the carrier identification domain.
type Handler struct {
	service *Service
}

// NewHandler creates a new carrier handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Identify handles POST /api/v1/identify
// Runs a single tracking number through the registry and returns the ranked
// candidate carriers. An unrecognized number is a 200 with empty candidates.
func (h *Handler) Identify(c *gin.Context) {
	var req IdentifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Error(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	resp, err := h.service.Identify(c.Request.Context(), &req)
	if err != nil {
		common.HandleError(c, err)
		return
	}

	common.Success(c, http.StatusOK, resp)
}

// IdentifyBatch handles POST /api/v1/identify/batch
// Enqueues a batch identification job and returns 202 Accepted.
func (h *Handler) IdentifyBatch(c *gin.Context) {
	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Error(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	resp, err := h.service.EnqueueBatch(c.Request.Context(), c.GetHeader("X-API-Key"), &req)
	if err != nil {
		slog.Error("enqueue batch failed", "error", err, "items", len(req.Items))
		common.HandleError(c, err)
		return
	}

	common.Success(c, http.StatusAccepted, resp)
}

// GetBatch handles GET /api/v1/batches/:id
func (h *Handler) GetBatch(c *gin.Context) {
	job, err := h.service.GetBatch(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.HandleError(c, err)
		return
	}

	common.Success(c, http.StatusOK, job)
}

// ListCarriers handles GET /api/v1/carriers
func (h *Handler) ListCarriers(c *gin.Context) {
	common.Success(c, http.StatusOK, h.service.Carriers())
}

// GetCarrier handles GET /api/v1/carriers/:key
func (h *Handler) GetCarrier(c *gin.Context) {
	info, err := h.service.Carrier(c.Param("key"))
	if err != nil {
		common.HandleError(c, err)
		return
	}

	common.Success(c, http.StatusOK, info)
}

// RegisterRoutes registers carrier identification routes to the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/identify", h.Identify)
	rg.POST("/identify/batch", h.IdentifyBatch)
	rg.GET("/batches/:id", h.GetBatch)
	rg.GET("/carriers", h.ListCarriers)
	rg.GET("/carriers/:key", h.GetCarrier)
}
