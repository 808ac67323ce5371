package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/William-datamaster/table-tennis/internal/models"
	appErrors "github.com/William-datamaster/table-tennis/pkg/errors"
)

type lessonLedger interface {
	Append(record models.LessonRecord)
	Remove(id string) (models.LessonRecord, bool)
	Snapshot() []models.LessonRecord
	Len() int
}

type lessonRoster interface {
	FindStudent(name string) (models.Student, bool)
	FindTeacher(name string) (models.Teacher, bool)
}

type notifier interface {
	Notify(studentName, action string)
}

// CreateLessonRequest holds payload for recording a lesson.
type CreateLessonRequest struct {
	StudentName string `json:"student_name" validate:"required"`
	TeacherName string `json:"teacher_name" validate:"required"`
	Hours       int    `json:"hours" validate:"min=0"`
	Minutes     int    `json:"minutes" validate:"min=0,max=59"`
	Date        string `json:"date" validate:"required"`
}

// LessonService handles ledger use-cases.
type LessonService struct {
	ledger    lessonLedger
	roster    lessonRoster
	notify    notifier
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewLessonService constructs the lesson service.
func NewLessonService(ledger lessonLedger, roster lessonRoster, notify notifier, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *LessonService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LessonService{
		ledger:    ledger,
		roster:    roster,
		notify:    notify,
		validator: validate,
		metrics:   metrics,
		logger:    logger,
	}
}

// Add validates and appends a new lesson record. The ledger stays
// untouched on any validation failure.
func (s *LessonService) Add(ctx context.Context, req CreateLessonRequest) (*models.LessonRecord, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid lesson payload")
	}
	if req.Hours == 0 && req.Minutes == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "duration must be positive")
	}

	date, err := time.Parse(models.DateLayout, req.Date)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "date must be formatted yyyy-MM-dd")
	}

	if _, ok := s.roster.FindStudent(req.StudentName); !ok {
		return nil, appErrors.Clone(appErrors.ErrUnknownName, "student not found in roster")
	}
	if _, ok := s.roster.FindTeacher(req.TeacherName); !ok {
		return nil, appErrors.Clone(appErrors.ErrUnknownName, "teacher not found in roster")
	}

	record := models.LessonRecord{
		ID:          uuid.NewString(),
		StudentName: req.StudentName,
		TeacherName: req.TeacherName,
		Hours:       req.Hours,
		Minutes:     req.Minutes,
		Date:        date.UTC(),
		CreatedAt:   time.Now().UTC(),
	}
	s.ledger.Append(record)
	s.metrics.LessonCreated()

	if s.notify != nil {
		s.notify.Notify(record.StudentName, ActionAdd)
	}

	s.logger.Info("lesson recorded",
		zap.String("id", record.ID),
		zap.String("student", record.StudentName),
		zap.String("teacher", record.TeacherName))
	return &record, nil
}

// Remove deletes the record with the given id. A missing id is a silent
// no-op; the caller only ever removes ids it currently displays.
func (s *LessonService) Remove(ctx context.Context, id string) {
	removed, ok := s.ledger.Remove(id)
	if !ok {
		return
	}
	s.metrics.LessonDeleted()
	if s.notify != nil {
		s.notify.Notify(removed.StudentName, ActionDelete)
	}
	s.logger.Info("lesson removed", zap.String("id", id), zap.String("student", removed.StudentName))
}

// Filter returns the matching records in insertion order. Pure read,
// recomputed from the current ledger on every call.
func (s *LessonService) Filter(criteria models.FilterCriteria) []models.LessonRecord {
	snapshot := s.ledger.Snapshot()
	out := make([]models.LessonRecord, 0, len(snapshot))
	for _, record := range snapshot {
		if criteria.Matches(record) {
			out = append(out, record)
		}
	}
	return out
}

// BuildCriteria assembles filter criteria from raw query values.
func BuildCriteria(student, teacher, date string) (models.FilterCriteria, error) {
	criteria := models.FilterCriteria{Student: student, Teacher: teacher}
	if date != "" {
		parsed, err := time.Parse(models.DateLayout, date)
		if err != nil {
			return models.FilterCriteria{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "filter date must be formatted yyyy-MM-dd")
		}
		parsed = parsed.UTC()
		criteria.Date = &parsed
	}
	return criteria, nil
}
