package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/William-datamaster/table-tennis/internal/models"
)

func TestRosterStoreStartsLoading(t *testing.T) {
	store := NewRosterStore()
	assert.Equal(t, models.RosterStateLoading, store.State())
	assert.Empty(t, store.Students())
	assert.Empty(t, store.Teachers())
}

func TestRosterStorePublish(t *testing.T) {
	store := NewRosterStore()
	store.Publish(
		[]models.Student{{Seq: "1", Name: "王小明", Class: "三年二班", Email: "ming@example.com"}},
		[]models.Teacher{{Seq: "1", Name: "陳教練", HourlyRate: "800"}},
	)

	assert.Equal(t, models.RosterStateReady, store.State())

	student, ok := store.FindStudent("王小明")
	require.True(t, ok)
	assert.Equal(t, "ming@example.com", student.Email)

	_, ok = store.FindStudent("不存在")
	assert.False(t, ok)

	teacher, ok := store.FindTeacher("陳教練")
	require.True(t, ok)
	assert.Equal(t, "800", teacher.HourlyRate)

	status := store.Status()
	assert.Equal(t, 1, status.Students)
	assert.Equal(t, 1, status.Teachers)
	assert.Nil(t, status.Notice)
}

func TestRosterStoreFailLeavesBothEmpty(t *testing.T) {
	store := NewRosterStore()
	store.Fail(models.NoticeRosterLoadFailed)

	assert.Equal(t, models.RosterStateFailed, store.State())
	assert.Empty(t, store.Students())
	assert.Empty(t, store.Teachers())

	status := store.Status()
	require.NotNil(t, status.Notice)
	assert.Equal(t, models.SeverityDestructive, status.Notice.Severity)
}

func TestRosterStoreResetClearsNotice(t *testing.T) {
	store := NewRosterStore()
	store.Fail(models.NoticeRosterLoadFailed)
	store.Reset()

	assert.Equal(t, models.RosterStateLoading, store.State())
	assert.Nil(t, store.Status().Notice)
}
