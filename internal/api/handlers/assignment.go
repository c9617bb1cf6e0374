package handlers

import (
	"net/http"
	"strconv"

	"maintenance-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AssignmentHandler handles HTTP requests for a worker's own assignments
type AssignmentHandler struct {
	assignments *service.AssignmentService
	visits      *service.VisitService
}

// NewAssignmentHandler creates a new assignment handler
func NewAssignmentHandler(assignments *service.AssignmentService, visits *service.VisitService) *AssignmentHandler {
	return &AssignmentHandler{assignments: assignments, visits: visits}
}

// GetMine handles GET /api/v1/assignments/mine
// @Summary List the calling worker's assignments
// @Description List assignments bound to the authenticated worker, newest first
// @Tags assignments
// @Produce json
// @Param limit query int false "Page size (default 50)"
// @Param offset query int false "Offset"
// @Success 200 {object} map[string]interface{} "Assignments with total"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /assignments/mine [get]
func (h *AssignmentHandler) GetMine(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	assignments, total, err := h.assignments.GetMine(actor, limit, offset)
	if err != nil {
		respondError(c, err, "Failed to list assignments")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"assignments": assignments,
		"total":       total,
		"limit":       limit,
		"offset":      offset,
	})
}

// UpdateStatus handles PATCH /api/v1/assignments/:id/status
// @Summary Drive an assignment's lifecycle
// @Description Apply one of the actions start, mark_done, approve or reopen. A leader's mark_done reconciles every teammate's work sessions against the leader's latest visit window.
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID (UUID)"
// @Param action body service.UpdateStatusRequest true "Action and optional session overrides"
// @Success 200 {object} service.StatusResponse "New assignment and complaint status"
// @Failure 400 {object} map[string]interface{} "Invalid action or incomplete visit window"
// @Failure 403 {object} map[string]interface{} "Caller may not perform this action"
// @Failure 404 {object} map[string]interface{} "Assignment not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /assignments/{id}/status [patch]
func (h *AssignmentHandler) UpdateStatus(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assignment ID: invalid UUID format"})
		return
	}

	var req service.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	response, err := h.assignments.UpdateStatus(actor, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update status")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetDetail handles GET /api/v1/assignments/:id/detail
// @Summary Get an assignment's full detail
// @Description Get the assignment with its latest visit, visit history and reconciled work sessions
// @Tags assignments
// @Produce json
// @Param id path string true "Assignment ID (UUID)"
// @Success 200 {object} service.AssignmentDetailResponse "Assignment detail"
// @Failure 403 {object} map[string]interface{} "Caller may not view this assignment"
// @Failure 404 {object} map[string]interface{} "Assignment not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /assignments/{id}/detail [get]
func (h *AssignmentHandler) GetDetail(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assignment ID: invalid UUID format"})
		return
	}

	detail, err := h.visits.GetDetail(actor, id)
	if err != nil {
		respondError(c, err, "Failed to load assignment detail")
		return
	}

	c.JSON(http.StatusOK, detail)
}

// UpdateDetail handles PUT /api/v1/assignments/:id/detail
// @Summary Update an assignment's visit detail
// @Description Upsert the worker's visit detail: store, time window, materials, note and revisit flag. Writes land on the open visit or open a new one.
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID (UUID)"
// @Param detail body service.UpdateDetailRequest true "Visit detail"
// @Success 200 {object} service.VisitDetailResponse "Current visit detail"
// @Failure 400 {object} map[string]interface{} "Invalid request or inverted time window"
// @Failure 403 {object} map[string]interface{} "Caller is not the assigned worker"
// @Failure 404 {object} map[string]interface{} "Assignment not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /assignments/{id}/detail [put]
func (h *AssignmentHandler) UpdateDetail(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assignment ID: invalid UUID format"})
		return
	}

	var req service.UpdateDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	detail, err := h.visits.UpdateDetail(actor, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update visit detail")
		return
	}

	c.JSON(http.StatusOK, detail)
}
