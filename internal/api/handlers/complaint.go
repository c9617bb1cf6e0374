package handlers

import (
	"net/http"
	"strconv"

	"maintenance-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ComplaintHandler handles HTTP requests for complaints and their teams
type ComplaintHandler struct {
	complaints  *service.ComplaintService
	assignments *service.AssignmentService
}

// NewComplaintHandler creates a new complaint handler
func NewComplaintHandler(complaints *service.ComplaintService, assignments *service.AssignmentService) *ComplaintHandler {
	return &ComplaintHandler{complaints: complaints, assignments: assignments}
}

// CreateComplaint handles POST /api/v1/complaints
// @Summary File a new complaint
// @Description File a maintenance complaint on behalf of the calling tenant
// @Tags complaints
// @Accept json
// @Produce json
// @Param complaint body service.CreateComplaintRequest true "Complaint data"
// @Success 201 {object} service.ComplaintResponse "Successfully filed complaint"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Complaint type not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /complaints [post]
func (h *ComplaintHandler) CreateComplaint(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	complaint, err := h.complaints.CreateComplaint(actor, &req)
	if err != nil {
		respondError(c, err, "Failed to create complaint")
		return
	}

	c.JSON(http.StatusCreated, complaint)
}

// GetMyComplaints handles GET /api/v1/complaints/mine
// @Summary List the calling tenant's complaints
// @Description List complaints filed by the authenticated tenant, newest first
// @Tags complaints
// @Produce json
// @Success 200 {array} service.ComplaintResponse "Complaints"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /complaints/mine [get]
func (h *ComplaintHandler) GetMyComplaints(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	complaints, err := h.complaints.GetMyComplaints(actor)
	if err != nil {
		respondError(c, err, "Failed to list complaints")
		return
	}

	c.JSON(http.StatusOK, complaints)
}

// GetAllComplaints handles GET /api/v1/complaints
// @Summary List all complaints
// @Description List all complaints for the supervisor board with pagination
// @Tags complaints
// @Produce json
// @Param limit query int false "Page size (default 50, max 100)"
// @Param offset query int false "Offset"
// @Success 200 {object} service.ComplaintListResponse "Complaints"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /complaints [get]
func (h *ComplaintHandler) GetAllComplaints(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	complaints, err := h.complaints.GetAllComplaints(limit, offset)
	if err != nil {
		respondError(c, err, "Failed to list complaints")
		return
	}

	c.JSON(http.StatusOK, complaints)
}

// GetComplaint handles GET /api/v1/complaints/:id
// @Summary Get complaint by ID
// @Description Get a specific complaint; tenants only see their own
// @Tags complaints
// @Produce json
// @Param id path string true "Complaint ID (UUID)"
// @Success 200 {object} service.ComplaintResponse "Complaint"
// @Failure 400 {object} map[string]interface{} "Invalid complaint ID"
// @Failure 404 {object} map[string]interface{} "Complaint not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /complaints/{id} [get]
func (h *ComplaintHandler) GetComplaint(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid complaint ID: invalid UUID format"})
		return
	}

	complaint, err := h.complaints.GetComplaint(actor, id)
	if err != nil {
		respondError(c, err, "Failed to get complaint")
		return
	}

	c.JSON(http.StatusOK, complaint)
}

// UpdateComplaint handles PATCH /api/v1/complaints/:id
// @Summary Update a complaint
// @Description Update a complaint's priority; status is derived from assignments and cannot be set
// @Tags complaints
// @Accept json
// @Produce json
// @Param id path string true "Complaint ID (UUID)"
// @Param complaint body service.UpdateComplaintRequest true "Fields to update"
// @Success 200 {object} service.ComplaintResponse "Updated complaint"
// @Failure 400 {object} map[string]interface{} "Invalid request or attempt to set status"
// @Failure 404 {object} map[string]interface{} "Complaint not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /complaints/{id} [patch]
func (h *ComplaintHandler) UpdateComplaint(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid complaint ID: invalid UUID format"})
		return
	}

	var req service.UpdateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	complaint, err := h.complaints.UpdateComplaint(id, &req)
	if err != nil {
		respondError(c, err, "Failed to update complaint")
		return
	}

	c.JSON(http.StatusOK, complaint)
}

// GetComplaintTeam handles GET /api/v1/complaints/:id/assignments
// @Summary Get a complaint's team roster
// @Description List the complaint's assignments with each worker's latest visit detail
// @Tags assignments
// @Produce json
// @Param id path string true "Complaint ID (UUID)"
// @Success 200 {array} service.RosterEntry "Team roster"
// @Failure 400 {object} map[string]interface{} "Invalid complaint ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /complaints/{id}/assignments [get]
func (h *ComplaintHandler) GetComplaintTeam(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid complaint ID: invalid UUID format"})
		return
	}

	roster, err := h.assignments.GetTeamRoster(id)
	if err != nil {
		respondError(c, err, "Failed to load team roster")
		return
	}

	c.JSON(http.StatusOK, roster)
}

// AssignWorkers handles POST /api/v1/complaints/:id/assign
// @Summary Assign workers to a complaint
// @Description Assign a batch of workers; the first batch must designate a leader from among the batch
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Complaint ID (UUID)"
// @Param assignment body service.AssignWorkersRequest true "Workers to assign"
// @Success 201 {array} service.AssignmentResponse "Created assignments"
// @Failure 400 {object} map[string]interface{} "Invalid request or leader rule violation"
// @Failure 404 {object} map[string]interface{} "Complaint not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /complaints/{id}/assign [post]
func (h *ComplaintHandler) AssignWorkers(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid complaint ID: invalid UUID format"})
		return
	}

	var req service.AssignWorkersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	assignments, err := h.assignments.AssignWorkers(actor, id, &req)
	if err != nil {
		respondError(c, err, "Failed to assign workers")
		return
	}

	c.JSON(http.StatusCreated, assignments)
}

// UpdateAssignments handles PATCH /api/v1/complaints/:id/assignments
// @Summary Manage a complaint's team
// @Description Remove assignments and/or reassign the leader; a leader must remain whenever any assignment remains
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Complaint ID (UUID)"
// @Param changes body service.UpdateAssignmentsRequest true "Team changes"
// @Success 200 {object} map[string]interface{} "Team updated"
// @Failure 400 {object} map[string]interface{} "Invalid request or leader rule violation"
// @Failure 404 {object} map[string]interface{} "Leader assignment not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /complaints/{id}/assignments [patch]
func (h *ComplaintHandler) UpdateAssignments(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid complaint ID: invalid UUID format"})
		return
	}

	var req service.UpdateAssignmentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.assignments.UpdateAssignments(actor, id, &req); err != nil {
		respondError(c, err, "Failed to update assignments")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Assignments updated"})
}
