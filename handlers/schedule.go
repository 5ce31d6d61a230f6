package handlers

import (
	"errors"
	"net/http"
	"time"

	"stagelink/models"
	"stagelink/services/schedule"
	"stagelink/utils"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler exposes the scheduling core over HTTP.
type ScheduleHandler struct {
	Svc schedule.ScheduleService
}

func NewScheduleHandler(svc schedule.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Svc: svc}
}

// scheduleStatus maps a schedule error code onto an HTTP status.
func scheduleStatus(err error) int {
	var se *schedule.ScheduleError
	if errors.As(err, &se) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// CheckConflictsHandler runs a buffered conflict query before an event or
// gig schedule is saved. Conflicts are informational, not blocking.
func (h *ScheduleHandler) CheckConflictsHandler(c *gin.Context) {
	var input struct {
		Date      string `json:"date" binding:"required"`
		Start     int    `json:"start"`
		End       int    `json:"end"`
		ExcludeID string `json:"excludeId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	musicianID := c.GetString("accountID")

	result, err := h.Svc.CheckConflicts(c.Request.Context(), musicianID, input.Date, input.Start, input.End, input.ExcludeID)
	if err != nil {
		utils.JSONError(c, scheduleStatus(err), "conflict check failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

// CreateEventHandler confirms a committed event, returning conflicts as a
// warning alongside the created record.
func (h *ScheduleHandler) CreateEventHandler(c *gin.Context) {
	var input struct {
		Date  string `json:"date" binding:"required"`
		Start int    `json:"start"`
		End   int    `json:"end"`
		GigID string `json:"gigId"`
		Title string `json:"title"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	interval := models.CommittedInterval{
		MusicianID: c.GetString("accountID"),
		Date:       input.Date,
		Start:      input.Start,
		End:        input.End,
		GigID:      input.GigID,
		Title:      input.Title,
		Kind:       models.IntervalKindEvent,
	}
	created, conflicts, err := h.Svc.CreateEvent(c.Request.Context(), interval)
	if err != nil {
		utils.JSONError(c, scheduleStatus(err), "failed to create event", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"event":           created,
		"conflictWarning": conflicts,
	})
}

// CancelIntervalHandler cancels a committed event or availability slot.
func (h *ScheduleHandler) CancelIntervalHandler(c *gin.Context) {
	intervalID := c.Param("intervalID")
	musicianID := c.GetString("accountID")

	if err := h.Svc.CancelInterval(c.Request.Context(), musicianID, intervalID); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to cancel interval", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": intervalID})
}

// BulkAvailabilityHandler expands a weekly pattern into availability slots,
// tolerating per-date failures and reporting both counts.
func (h *ScheduleHandler) BulkAvailabilityHandler(c *gin.Context) {
	var input struct {
		Rule  models.RecurrenceRule `json:"rule" binding:"required"`
		Start int                   `json:"start"`
		End   int                   `json:"end"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	musicianID := c.GetString("accountID")
	today := time.Now().Format(utils.DateLayout)

	result, err := h.Svc.BulkCreateAvailability(c.Request.Context(), musicianID, input.Rule, input.Start, input.End, today)
	if err != nil {
		utils.JSONError(c, scheduleStatus(err), "bulk availability failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListCalendarHandler returns the musician's committed intervals in a range.
func (h *ScheduleHandler) ListCalendarHandler(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "from and to query parameters are required")
		return
	}
	musicianID := c.GetString("accountID")

	intervals, err := h.Svc.ListCalendar(c.Request.Context(), musicianID, from, to)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list calendar", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"intervals": intervals})
}
