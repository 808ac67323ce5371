package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/William-datamaster/table-tennis/internal/models"
)

type rosterServiceMock struct {
	loadErr  error
	loads    int
	status   models.RosterStatus
	students []models.Student
	teachers []models.Teacher
}

func (m *rosterServiceMock) Load(ctx context.Context) error {
	m.loads++
	return m.loadErr
}

func (m *rosterServiceMock) Status() models.RosterStatus { return m.status }

func (m *rosterServiceMock) Students() []models.Student { return m.students }

func (m *rosterServiceMock) Teachers() []models.Teacher { return m.teachers }

func TestRosterHandlerStudents(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewRosterHandler(&rosterServiceMock{students: []models.Student{
		{Seq: "1", Name: "王小明", Class: "三年二班", Email: "ming@example.com"},
	}})

	c, w := newGinContext(http.MethodGet, "/roster/students", nil)
	h.Students(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "王小明")
	assert.Contains(t, w.Body.String(), "三年二班")
}

func TestRosterHandlerTeachers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewRosterHandler(&rosterServiceMock{teachers: []models.Teacher{
		{Seq: "1", Name: "陳教練", HourlyRate: "800"},
	}})

	c, w := newGinContext(http.MethodGet, "/roster/teachers", nil)
	h.Teachers(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "陳教練")
}

func TestRosterHandlerStatusCarriesFailureNotice(t *testing.T) {
	gin.SetMode(gin.TestMode)
	notice := models.NoticeRosterLoadFailed
	h := NewRosterHandler(&rosterServiceMock{status: models.RosterStatus{
		State:  models.RosterStateFailed,
		Notice: &notice,
	}})

	c, w := newGinContext(http.MethodGet, "/roster/status", nil)
	h.Status(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "failed")
	assert.Contains(t, w.Body.String(), "無法載入學生或教練資料")
}

func TestRosterHandlerReload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &rosterServiceMock{status: models.RosterStatus{State: models.RosterStateReady}}
	h := NewRosterHandler(mock)

	c, w := newGinContext(http.MethodPost, "/roster/reload", nil)
	h.Reload(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, mock.loads)
}

func TestRosterHandlerReloadFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewRosterHandler(&rosterServiceMock{loadErr: errors.New("fetch failed")})

	c, w := newGinContext(http.MethodPost, "/roster/reload", nil)
	h.Reload(c)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "ROSTER_UNAVAILABLE")
}
