package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mavpath/advisor-backend/internal/middleware"
	"github.com/mavpath/advisor-backend/internal/model"
	"github.com/mavpath/advisor-backend/internal/repository"
	"github.com/mavpath/advisor-backend/internal/response"
	"github.com/mavpath/advisor-backend/internal/service"
	"github.com/mavpath/advisor-backend/internal/validator"
)

// PreferenceHandler handles the setup-stage preference endpoints.
type PreferenceHandler struct {
	preferenceService *service.PreferenceService
}

// NewPreferenceHandler creates a new PreferenceHandler.
func NewPreferenceHandler(preferenceService *service.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{preferenceService: preferenceService}
}

// Get godoc
// GET /api/v1/student/preferences
// Returns the stored preference profile, or an empty profile when the
// student has not completed any setup stage yet.
func (h *PreferenceHandler) Get(c *gin.Context) {
	claims := middleware.GetClaims(c)

	profile, err := h.preferenceService.GetByStudentID(c.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrPreferencesNotFound) {
			response.Success(c, http.StatusOK, gin.H{"preferences": model.PreferenceProfile{}})
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"preferences": profile})
}

// Update godoc
// PUT /api/v1/student/preferences
// Saves the setup stages. A time block whose start is not strictly before
// its end is rejected with a field-level message; nothing is persisted.
func (h *PreferenceHandler) Update(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.UpdatePreferencesRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	profile, fields, err := h.preferenceService.Save(c.Request.Context(), claims.UserID, &req)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrInvalidTimeRange, fields)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"preferences": profile})
}
