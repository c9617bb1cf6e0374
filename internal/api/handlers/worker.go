package handlers

import (
	"net/http"
	"strconv"
	"time"

	"maintenance-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkerHandler handles HTTP requests for the worker directory
type WorkerHandler struct {
	workers *service.WorkerService
}

// NewWorkerHandler creates a new worker handler
func NewWorkerHandler(workers *service.WorkerService) *WorkerHandler {
	return &WorkerHandler{workers: workers}
}

// ListWorkers handles GET /api/v1/workers
// @Summary List workers
// @Description List the worker directory for the supervisor's assignment form
// @Tags workers
// @Produce json
// @Param limit query int false "Page size (default 100)"
// @Param offset query int false "Offset"
// @Success 200 {object} map[string]interface{} "Workers with total"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /workers [get]
func (h *WorkerHandler) ListWorkers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	workers, total, err := h.workers.ListWorkers(limit, offset)
	if err != nil {
		respondError(c, err, "Failed to list workers")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"workers": workers,
		"total":   total,
	})
}

// Availability handles GET /api/v1/workers/availability
// @Summary Check worker availability
// @Description List workers with each one flagged busy when a scheduled assignment overlaps the given window
// @Tags workers
// @Produce json
// @Param start query string true "Window start (RFC3339)"
// @Param end query string true "Window end (RFC3339)"
// @Success 200 {array} service.WorkerResponse "Workers with busy flags"
// @Failure 400 {object} map[string]interface{} "Invalid window"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /workers/availability [get]
func (h *WorkerHandler) Availability(c *gin.Context) {
	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start: must be RFC3339"})
		return
	}
	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end: must be RFC3339"})
		return
	}

	workers, err := h.workers.Availability(start, end)
	if err != nil {
		respondError(c, err, "Failed to check availability")
		return
	}

	c.JSON(http.StatusOK, workers)
}
