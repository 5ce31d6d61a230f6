package handlers

import (
	"errors"
	"net/http"

	"stagelink/models"
	"stagelink/services/gig"
	"stagelink/utils"

	"github.com/gin-gonic/gin"
)

// GigHandler exposes the gig life cycle and hiring arbitration over HTTP.
type GigHandler struct {
	Svc gig.GigService
}

func NewGigHandler(svc gig.GigService) *GigHandler {
	return &GigHandler{Svc: svc}
}

// gigStatus maps an arbitration error code onto an HTTP status so the caller
// can distinguish budget, fee and schedule failures.
func gigStatus(err error) int {
	var ge *gig.GigError
	if !errors.As(err, &ge) {
		return http.StatusInternalServerError
	}
	switch ge.Code {
	case gig.CodeBudgetExceeded, gig.CodeFeeRequired, gig.CodeScheduleRequired:
		return http.StatusUnprocessableEntity
	case gig.CodeInvalidSelection, gig.CodeInvalidTransition:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// CreateGigHandler posts a new gig.
func (h *GigHandler) CreateGigHandler(c *gin.Context) {
	var input struct {
		Title       string   `json:"title" binding:"required"`
		Venue       string   `json:"venue"`
		Budget      *float64 `json:"budget"`
		EventDate   string   `json:"eventDate"`
		StartMinute *int     `json:"startMinute"`
		EndMinute   *int     `json:"endMinute"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	g := models.Gig{
		CompanyID:   c.GetString("accountID"),
		Title:       input.Title,
		Venue:       input.Venue,
		Budget:      input.Budget,
		EventDate:   input.EventDate,
		StartMinute: input.StartMinute,
		EndMinute:   input.EndMinute,
	}
	created, err := h.Svc.CreateGig(c.Request.Context(), g)
	if err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "failed to create gig", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetGigHandler returns a gig with its applications.
func (h *GigHandler) GetGigHandler(c *gin.Context) {
	g, apps, err := h.Svc.GetGig(c.Request.Context(), c.Param("gigID"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "gig not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"gig": g, "applications": apps})
}

// ApplyHandler creates a musician's application on a gig.
func (h *GigHandler) ApplyHandler(c *gin.Context) {
	var input struct {
		Fee     *float64 `json:"fee"`
		Message string   `json:"message"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	musicianID := c.GetString("accountID")

	app, err := h.Svc.ApplyToGig(c.Request.Context(), c.Param("gigID"), musicianID, input.Fee, input.Message)
	if err != nil {
		utils.JSONError(c, gigStatus(err), "failed to apply", err.Error())
		return
	}
	c.JSON(http.StatusCreated, app)
}

// HireHandler validates and commits a hire decision for selected applications.
func (h *GigHandler) HireHandler(c *gin.Context) {
	var input struct {
		ApplicationIDs []string `json:"applicationIds" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := h.Svc.EvaluateHire(c.Request.Context(), c.Param("gigID"), input.ApplicationIDs)
	if err != nil {
		utils.JSONError(c, gigStatus(err), "hire failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

// CloseGigHandler closes a gig, rejecting every pending application.
func (h *GigHandler) CloseGigHandler(c *gin.Context) {
	if err := h.Svc.CloseGig(c.Request.Context(), c.Param("gigID"), models.GigStatusClosed); err != nil {
		utils.JSONError(c, gigStatus(err), "failed to close gig", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": models.GigStatusClosed})
}

// CancelGigHandler cancels a gig, rejecting every pending application.
func (h *GigHandler) CancelGigHandler(c *gin.Context) {
	if err := h.Svc.CloseGig(c.Request.Context(), c.Param("gigID"), models.GigStatusCancelled); err != nil {
		utils.JSONError(c, gigStatus(err), "failed to cancel gig", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": models.GigStatusCancelled})
}

// BrowseOpenGigsHandler lists the gigs musicians can currently apply to.
func (h *GigHandler) BrowseOpenGigsHandler(c *gin.Context) {
	gigs, err := h.Svc.BrowseOpenGigs(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to browse gigs", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"gigs": gigs})
}

// ListGigsHandler partitions the company's gigs into active, recent history,
// or everything, based on the view query parameter.
func (h *GigHandler) ListGigsHandler(c *gin.Context) {
	view := c.DefaultQuery("view", gig.ViewActive)
	companyID := c.GetString("accountID")

	gigs, err := h.Svc.ListGigs(c.Request.Context(), companyID, view)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list gigs", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"gigs": gigs, "view": view})
}
