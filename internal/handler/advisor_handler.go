package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mavpath/advisor-backend/internal/middleware"
	"github.com/mavpath/advisor-backend/internal/model"
	"github.com/mavpath/advisor-backend/internal/response"
	"github.com/mavpath/advisor-backend/internal/service"
	"github.com/mavpath/advisor-backend/internal/validator"
)

// AdvisorHandler handles advisor query endpoints.
type AdvisorHandler struct {
	advisorService *service.AdvisorService
}

// NewAdvisorHandler creates a new AdvisorHandler.
func NewAdvisorHandler(advisorService *service.AdvisorService) *AdvisorHandler {
	return &AdvisorHandler{advisorService: advisorService}
}

// Query godoc
// POST /api/v1/student/advisor/query
// Forwards the student's question (with setup and knowledge context) to the
// advisor and returns the reply plus the laid-out calendar for any suggested
// schedule.
func (h *AdvisorHandler) Query(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.QueryRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	resp := h.advisorService.Query(c.Request.Context(), claims.UserID, &req)
	response.Success(c, http.StatusOK, resp)
}
