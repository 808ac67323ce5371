package handler

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/William-datamaster/table-tennis/internal/models"
	"github.com/William-datamaster/table-tennis/internal/service"
	appErrors "github.com/William-datamaster/table-tennis/pkg/errors"
	"github.com/William-datamaster/table-tennis/pkg/response"
)

type lessonService interface {
	Add(ctx context.Context, req service.CreateLessonRequest) (*models.LessonRecord, error)
	Remove(ctx context.Context, id string)
	Filter(criteria models.FilterCriteria) []models.LessonRecord
}

type exportService interface {
	Export(criteria models.FilterCriteria, format string) (*service.ExportArtifact, error)
}

// LessonHandler exposes lesson ledger endpoints.
type LessonHandler struct {
	lessons lessonService
	exports exportService
}

// NewLessonHandler constructs LessonHandler.
func NewLessonHandler(lessons lessonService, exports exportService) *LessonHandler {
	return &LessonHandler{lessons: lessons, exports: exports}
}

type lessonView struct {
	ID          string `json:"id"`
	StudentName string `json:"student_name"`
	TeacherName string `json:"teacher_name"`
	Hours       int    `json:"hours"`
	Minutes     int    `json:"minutes"`
	Duration    string `json:"duration"`
	Date        string `json:"date"`
}

func viewOf(r models.LessonRecord) lessonView {
	return lessonView{
		ID:          r.ID,
		StudentName: r.StudentName,
		TeacherName: r.TeacherName,
		Hours:       r.Hours,
		Minutes:     r.Minutes,
		Duration:    r.DurationLabel(),
		Date:        r.Date.Format(models.DateLayout),
	}
}

func criteriaFromQuery(c *gin.Context) (models.FilterCriteria, error) {
	return service.BuildCriteria(
		strings.TrimSpace(c.Query("student")),
		strings.TrimSpace(c.Query("teacher")),
		strings.TrimSpace(c.Query("date")),
	)
}

// List godoc
// @Summary List lesson records matching the active filter
// @Tags Lessons
// @Produce json
// @Param student query string false "Student name or _all"
// @Param teacher query string false "Teacher name or _all"
// @Param date query string false "Day filter, yyyy-MM-dd"
// @Success 200 {object} response.Envelope
// @Router /lessons [get]
func (h *LessonHandler) List(c *gin.Context) {
	criteria, err := criteriaFromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	records := h.lessons.Filter(criteria)
	views := make([]lessonView, 0, len(records))
	for _, r := range records {
		views = append(views, viewOf(r))
	}
	response.JSON(c, http.StatusOK, views)
}

// Create godoc
// @Summary Record a lesson
// @Tags Lessons
// @Accept json
// @Produce json
// @Param payload body service.CreateLessonRequest true "Lesson payload"
// @Success 201 {object} response.Envelope
// @Router /lessons [post]
func (h *LessonHandler) Create(c *gin.Context) {
	var req service.CreateLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c,
			appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"),
			gin.H{"notice": models.NoticeValidationFailed})
		return
	}
	record, err := h.lessons.Add(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err, gin.H{"notice": models.NoticeValidationFailed})
		return
	}
	response.Created(c, viewOf(*record), gin.H{"notice": models.NoticeLessonAdded})
}

// Delete godoc
// @Summary Delete a lesson record
// @Tags Lessons
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} response.Envelope
// @Router /lessons/{id} [delete]
func (h *LessonHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	h.lessons.Remove(c.Request.Context(), id)
	response.JSON(c, http.StatusOK, gin.H{"id": id}, gin.H{"notice": models.NoticeLessonDeleted})
}

// Export godoc
// @Summary Download the filtered ledger as CSV or PDF
// @Tags Lessons
// @Produce text/csv
// @Param format query string false "csv (default) or pdf"
// @Param student query string false "Student name or _all"
// @Param teacher query string false "Teacher name or _all"
// @Param date query string false "Day filter, yyyy-MM-dd"
// @Success 200 {file} file
// @Router /lessons/export [get]
func (h *LessonHandler) Export(c *gin.Context) {
	criteria, err := criteriaFromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	artifact, err := h.exports.Export(criteria, strings.TrimSpace(c.Query("format")))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", contentDisposition(artifact.Filename))
	c.Data(http.StatusOK, artifact.ContentType, artifact.Payload)
}

// contentDisposition encodes the non-ASCII filename per RFC 5987, with
// a plain ASCII fallback for older clients.
func contentDisposition(filename string) string {
	fallback := "export"
	if dot := strings.LastIndex(filename, "."); dot >= 0 {
		fallback += filename[dot:]
	}
	return `attachment; filename="` + fallback + `"; filename*=UTF-8''` + url.PathEscape(filename)
}
