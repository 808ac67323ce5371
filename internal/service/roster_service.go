package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/William-datamaster/table-tennis/internal/models"
	"github.com/William-datamaster/table-tennis/pkg/config"
	"github.com/William-datamaster/table-tennis/pkg/csvutil"
)

// Column names in the remote roster documents.
const (
	colSeq        = "序號"
	colName       = "姓名"
	colClass      = "班級"
	colEmail      = "email"
	colHourlyRate = "時薪"
)

type rosterStore interface {
	Publish(students []models.Student, teachers []models.Teacher)
	Fail(notice models.Notice)
	Reset()
	Status() models.RosterStatus
	Students() []models.Student
	Teachers() []models.Teacher
}

// RosterService performs the one-shot load of the student and teacher
// reference rosters from their remote CSV documents.
type RosterService struct {
	store   rosterStore
	client  *http.Client
	cfg     config.RosterConfig
	metrics *MetricsService
	logger  *zap.Logger

	loadMu sync.Mutex
}

// NewRosterService constructs the roster loader.
func NewRosterService(store rosterStore, cfg config.RosterConfig, metrics *MetricsService, logger *zap.Logger) *RosterService {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.FetchTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &RosterService{
		store:   store,
		client:  &http.Client{Timeout: timeout},
		cfg:     cfg,
		metrics: metrics,
		logger:  logger,
	}
}

// Load fetches both rosters concurrently and publishes them atomically.
// Any failure leaves both lists empty: partial availability is treated
// as total failure, matching the all-or-nothing contract. Loads are
// serialized so a reload cannot interleave with the startup load.
func (s *RosterService) Load(ctx context.Context) error {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	s.store.Reset()

	var (
		wg           sync.WaitGroup
		studentsText string
		teachersText string
		studentsErr  error
		teachersErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		studentsText, studentsErr = s.fetch(ctx, "students", s.cfg.StudentsURL)
	}()
	go func() {
		defer wg.Done()
		teachersText, teachersErr = s.fetch(ctx, "teachers", s.cfg.TeachersURL)
	}()
	wg.Wait()

	if studentsErr != nil || teachersErr != nil {
		s.store.Fail(models.NoticeRosterLoadFailed)
		s.metrics.RosterLoadFailed()
		err := studentsErr
		if err == nil {
			err = teachersErr
		}
		s.logger.Error("roster load failed",
			zap.NamedError("students_error", studentsErr),
			zap.NamedError("teachers_error", teachersErr))
		return fmt.Errorf("load rosters: %w", err)
	}

	students := parseStudents(studentsText)
	teachers := parseTeachers(teachersText)
	s.store.Publish(students, teachers)
	s.logger.Info("rosters loaded",
		zap.Int("students", len(students)),
		zap.Int("teachers", len(teachers)))
	return nil
}

// Status reports current load progress.
func (s *RosterService) Status() models.RosterStatus {
	return s.store.Status()
}

// Students lists the loaded student roster.
func (s *RosterService) Students() []models.Student {
	return s.store.Students()
}

// Teachers lists the loaded teacher roster.
func (s *RosterService) Teachers() []models.Teacher {
	return s.store.Teachers()
}

func (s *RosterService) fetch(ctx context.Context, roster, url string) (string, error) {
	if url == "" {
		return "", fmt.Errorf("%s roster url not configured", roster)
	}

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build %s request: %w", roster, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s roster: %w", roster, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("fetch %s roster: unexpected status %d", roster, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read %s roster body: %w", roster, err)
	}

	s.metrics.ObserveRosterFetch(roster, time.Since(start))
	return string(body), nil
}

func parseStudents(text string) []models.Student {
	rows := csvutil.Parse(text)
	students := make([]models.Student, 0, len(rows))
	for _, row := range rows {
		students = append(students, models.Student{
			Seq:   row[colSeq],
			Name:  row[colName],
			Class: row[colClass],
			Email: row[colEmail],
		})
	}
	return students
}

func parseTeachers(text string) []models.Teacher {
	rows := csvutil.Parse(text)
	teachers := make([]models.Teacher, 0, len(rows))
	for _, row := range rows {
		teachers = append(teachers, models.Teacher{
			Seq:        row[colSeq],
			Name:       row[colName],
			HourlyRate: row[colHourlyRate],
		})
	}
	return teachers
}
