package handlers

import (
	"errors"
	"net/http"

	"maintenance-portal-backend/internal/auth"
	apperrors "maintenance-portal-backend/internal/errors"
	"maintenance-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// businessErrors are rule violations that map to 400 without carrying a typed error
var businessErrors = []error{
	apperrors.ErrInvalidAction,
	apperrors.ErrInvalidStatus,
	apperrors.ErrInvalidTimeRange,
	apperrors.ErrInvalidScheduleRange,
	apperrors.ErrAssignmentTerminal,
	apperrors.ErrVisitWindowIncomplete,
	apperrors.ErrLeaderRequired,
	apperrors.ErrLeaderConflict,
	apperrors.ErrLeaderMustRemain,
	apperrors.ErrLeaderNotAmongRemaining,
	apperrors.ErrWorkerIDsRequired,
	apperrors.ErrComplaintStatusDerived,
	apperrors.ErrNoFieldsToUpdate,
}

// currentActor builds the service actor from the authenticated request context
func currentActor(c *gin.Context) (service.Actor, bool) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return service.Actor{}, false
	}
	email, _ := auth.GetUserEmail(c)
	role, ok := auth.GetUserRole(c)
	if !ok {
		return service.Actor{}, false
	}
	return service.Actor{ID: userID, Email: email, Role: role}, true
}

// respondError maps service errors onto HTTP status codes
func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case isBusinessError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback, "details": err.Error()})
	}
}

func isBusinessError(err error) bool {
	for _, business := range businessErrors {
		if errors.Is(err, business) {
			return true
		}
	}
	return false
}
