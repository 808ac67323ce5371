package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/William-datamaster/table-tennis/internal/models"
	appErrors "github.com/William-datamaster/table-tennis/pkg/errors"
	"github.com/William-datamaster/table-tennis/pkg/response"
)

type rosterService interface {
	Load(ctx context.Context) error
	Status() models.RosterStatus
	Students() []models.Student
	Teachers() []models.Teacher
}

// RosterHandler exposes the read-only reference rosters.
type RosterHandler struct {
	rosters rosterService
}

// NewRosterHandler constructs RosterHandler.
func NewRosterHandler(rosters rosterService) *RosterHandler {
	return &RosterHandler{rosters: rosters}
}

// Students godoc
// @Summary List the student roster
// @Tags Roster
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /roster/students [get]
func (h *RosterHandler) Students(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.rosters.Students())
}

// Teachers godoc
// @Summary List the teacher roster
// @Tags Roster
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /roster/teachers [get]
func (h *RosterHandler) Teachers(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.rosters.Teachers())
}

// Status godoc
// @Summary Report roster load state
// @Tags Roster
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /roster/status [get]
func (h *RosterHandler) Status(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.rosters.Status())
}

// Reload godoc
// @Summary Re-run the roster load
// @Tags Roster
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /roster/reload [post]
func (h *RosterHandler) Reload(c *gin.Context) {
	if err := h.rosters.Load(c.Request.Context()); err != nil {
		response.Error(c,
			appErrors.Wrap(err, appErrors.ErrRosterUnavailable.Code, appErrors.ErrRosterUnavailable.Status, appErrors.ErrRosterUnavailable.Message),
			gin.H{"notice": models.NoticeRosterLoadFailed})
		return
	}
	response.JSON(c, http.StatusOK, h.rosters.Status())
}
