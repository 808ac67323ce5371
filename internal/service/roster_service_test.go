package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/William-datamaster/table-tennis/internal/models"
	"github.com/William-datamaster/table-tennis/internal/repository"
	"github.com/William-datamaster/table-tennis/pkg/config"
)

const (
	studentsCSV = "序號,姓名,班級,email\n1,王小明,三年二班,ming@example.com\n2,李小華,五年一班,hua@example.com\n"
	teachersCSV = "序號,姓名,時薪\n1,陳教練,800\n"
)

func csvServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func failingServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRosterLoadSuccess(t *testing.T) {
	store := repository.NewRosterStore()
	svc := NewRosterService(store, config.RosterConfig{
		StudentsURL: csvServer(t, studentsCSV).URL,
		TeachersURL: csvServer(t, teachersCSV).URL,
	}, nil, zap.NewNop())

	require.NoError(t, svc.Load(context.Background()))

	assert.Equal(t, models.RosterStateReady, store.State())
	students := svc.Students()
	require.Len(t, students, 2)
	assert.Equal(t, "王小明", students[0].Name)
	assert.Equal(t, "三年二班", students[0].Class)
	assert.Equal(t, "hua@example.com", students[1].Email)

	teachers := svc.Teachers()
	require.Len(t, teachers, 1)
	assert.Equal(t, "800", teachers[0].HourlyRate)
}

func TestRosterLoadBothFailing(t *testing.T) {
	store := repository.NewRosterStore()
	svc := NewRosterService(store, config.RosterConfig{
		StudentsURL: failingServer(t).URL,
		TeachersURL: failingServer(t).URL,
	}, nil, zap.NewNop())

	require.Error(t, svc.Load(context.Background()))

	status := svc.Status()
	assert.Equal(t, models.RosterStateFailed, status.State)
	assert.Zero(t, status.Students)
	assert.Zero(t, status.Teachers)
	require.NotNil(t, status.Notice)
	assert.Equal(t, models.SeverityDestructive, status.Notice.Severity)
}

func TestRosterLoadPartialFailureIsTotal(t *testing.T) {
	store := repository.NewRosterStore()
	svc := NewRosterService(store, config.RosterConfig{
		StudentsURL: csvServer(t, studentsCSV).URL,
		TeachersURL: failingServer(t).URL,
	}, nil, zap.NewNop())

	require.Error(t, svc.Load(context.Background()))
	assert.Empty(t, store.Students())
	assert.Empty(t, store.Teachers())
	assert.Equal(t, models.RosterStateFailed, store.State())
}

func TestRosterLoadMissingURL(t *testing.T) {
	store := repository.NewRosterStore()
	svc := NewRosterService(store, config.RosterConfig{}, nil, zap.NewNop())

	require.Error(t, svc.Load(context.Background()))
	assert.Equal(t, models.RosterStateFailed, store.State())
}

type sequencingStore struct {
	*repository.RosterStore

	mu     sync.Mutex
	events []string
}

func (s *sequencingStore) record(event string) {
	s.mu.Lock()
	s.events = append(s.events, event)
	s.mu.Unlock()
}

func (s *sequencingStore) Reset() {
	s.record("reset")
	s.RosterStore.Reset()
}

func (s *sequencingStore) Publish(students []models.Student, teachers []models.Teacher) {
	s.record("publish")
	s.RosterStore.Publish(students, teachers)
}

func (s *sequencingStore) Fail(notice models.Notice) {
	s.record("fail")
	s.RosterStore.Fail(notice)
}

func TestRosterLoadSerialized(t *testing.T) {
	store := &sequencingStore{RosterStore: repository.NewRosterStore()}
	svc := NewRosterService(store, config.RosterConfig{
		StudentsURL: csvServer(t, studentsCSV).URL,
		TeachersURL: csvServer(t, teachersCSV).URL,
	}, nil, zap.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = svc.Load(context.Background())
		}()
	}
	wg.Wait()

	// Each load must complete its reset/publish pair before the next
	// starts, so a concurrent reload can never clobber a fresh result.
	require.Len(t, store.events, 8)
	for i := 0; i < len(store.events); i += 2 {
		assert.Equal(t, "reset", store.events[i])
		assert.Equal(t, "publish", store.events[i+1])
	}
	assert.Equal(t, models.RosterStateReady, store.State())
	assert.Len(t, store.Students(), 2)
}

func TestRosterLoadEmptyBodyYieldsEmptyRosters(t *testing.T) {
	store := repository.NewRosterStore()
	svc := NewRosterService(store, config.RosterConfig{
		StudentsURL: csvServer(t, "").URL,
		TeachersURL: csvServer(t, teachersCSV).URL,
	}, nil, zap.NewNop())

	// An empty document parses to an empty roster rather than failing.
	require.NoError(t, svc.Load(context.Background()))
	assert.Equal(t, models.RosterStateReady, store.State())
	assert.Empty(t, svc.Students())
	assert.Len(t, svc.Teachers(), 1)
}
