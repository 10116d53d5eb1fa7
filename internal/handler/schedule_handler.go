package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mavpath/advisor-backend/internal/middleware"
	"github.com/mavpath/advisor-backend/internal/model"
	"github.com/mavpath/advisor-backend/internal/response"
	"github.com/mavpath/advisor-backend/internal/service"
	"github.com/mavpath/advisor-backend/internal/validator"
)

// ScheduleHandler exposes the calendar core directly: layout of an arbitrary
// weekly payload and ICS export of the latest suggestion.
type ScheduleHandler struct {
	scheduleService *service.ScheduleService
}

// NewScheduleHandler creates a new ScheduleHandler.
func NewScheduleHandler(scheduleService *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

// Layout godoc
// POST /api/v1/student/schedule/layout
// Validates a wire-format week and returns the annotated calendar grid.
// Malformed entries are omitted, not errors; the response reports how many
// were dropped.
func (h *ScheduleHandler) Layout(c *gin.Context) {
	var req model.LayoutRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	resp := h.scheduleService.LayoutWeek(req.Schedule)
	response.Success(c, http.StatusOK, resp)
}

// ExportICS godoc
// GET /api/v1/student/schedule/export.ics
// Downloads the student's latest suggested schedule as an iCalendar file.
func (h *ScheduleHandler) ExportICS(c *gin.Context) {
	claims := middleware.GetClaims(c)

	payload, err := h.scheduleService.ExportICS(c.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, service.ErrNoSuggestedSchedule) {
			response.Fail(c, http.StatusNotFound, response.ErrNoSchedule)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="schedule.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(payload))
}
