package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mavpath/advisor-backend/internal/response"
	"github.com/mavpath/advisor-backend/internal/service"
)

// HealthHandler reports service status and knowledge fixture counts.
type HealthHandler struct {
	knowledgeService *service.KnowledgeService
	advisorService   *service.AdvisorService
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(knowledgeService *service.KnowledgeService, advisorService *service.AdvisorService) *HealthHandler {
	return &HealthHandler{
		knowledgeService: knowledgeService,
		advisorService:   advisorService,
	}
}

// Health godoc
// GET /health
// Quick check that the fixtures loaded and whether the remote advisor is on.
func (h *HealthHandler) Health(c *gin.Context) {
	counts := h.knowledgeService.Counts()

	response.Success(c, http.StatusOK, gin.H{
		"status":            "ok",
		"degreeCourses":     counts.DegreeCourses,
		"scheduleSections":  counts.ScheduleSections,
		"professors":        counts.Professors,
		"advisorConfigured": h.advisorService.Remote(),
	})
}
