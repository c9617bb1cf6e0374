package handlers

import (
	"net/http"

	"maintenance-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LookupHandler handles HTTP requests for reference data
type LookupHandler struct {
	lookups *service.LookupService
}

// NewLookupHandler creates a new lookup handler
func NewLookupHandler(lookups *service.LookupService) *LookupHandler {
	return &LookupHandler{lookups: lookups}
}

// GetStores handles GET /api/v1/stores
// @Summary List stores
// @Tags lookups
// @Produce json
// @Success 200 {array} models.Store "Stores"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /stores [get]
func (h *LookupHandler) GetStores(c *gin.Context) {
	stores, err := h.lookups.GetStores()
	if err != nil {
		respondError(c, err, "Failed to list stores")
		return
	}
	c.JSON(http.StatusOK, stores)
}

// GetMaterials handles GET /api/v1/materials
// @Summary List materials
// @Tags lookups
// @Produce json
// @Success 200 {array} models.Material "Materials"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /materials [get]
func (h *LookupHandler) GetMaterials(c *gin.Context) {
	materials, err := h.lookups.GetMaterials()
	if err != nil {
		respondError(c, err, "Failed to list materials")
		return
	}
	c.JSON(http.StatusOK, materials)
}

// GetBuildings handles GET /api/v1/buildings
// @Summary List buildings
// @Tags lookups
// @Produce json
// @Success 200 {array} models.Building "Buildings"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /buildings [get]
func (h *LookupHandler) GetBuildings(c *gin.Context) {
	buildings, err := h.lookups.GetBuildings()
	if err != nil {
		respondError(c, err, "Failed to list buildings")
		return
	}
	c.JSON(http.StatusOK, buildings)
}

// GetRooms handles GET /api/v1/buildings/:id/rooms
// @Summary List rooms of a building
// @Tags lookups
// @Produce json
// @Param id path string true "Building ID (UUID)"
// @Success 200 {array} models.Room "Rooms"
// @Failure 400 {object} map[string]interface{} "Invalid building ID"
// @Failure 404 {object} map[string]interface{} "Building not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /buildings/{id}/rooms [get]
func (h *LookupHandler) GetRooms(c *gin.Context) {
	buildingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid building ID: invalid UUID format"})
		return
	}

	rooms, err := h.lookups.GetRoomsByBuilding(buildingID)
	if err != nil {
		respondError(c, err, "Failed to list rooms")
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GetComplaintTypes handles GET /api/v1/complaint-types
// @Summary List complaint types
// @Tags lookups
// @Produce json
// @Success 200 {array} models.ComplaintType "Complaint types"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /complaint-types [get]
func (h *LookupHandler) GetComplaintTypes(c *gin.Context) {
	types, err := h.lookups.GetComplaintTypes()
	if err != nil {
		respondError(c, err, "Failed to list complaint types")
		return
	}
	c.JSON(http.StatusOK, types)
}
