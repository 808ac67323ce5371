package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"

	"github.com/William-datamaster/table-tennis/internal/models"
	"github.com/William-datamaster/table-tennis/pkg/config"
	"github.com/William-datamaster/table-tennis/pkg/jobs"
)

// Ledger mutation actions announced to students.
const (
	ActionAdd    = "add"
	ActionDelete = "delete"
)

type notificationRoster interface {
	FindStudent(name string) (models.Student, bool)
}

// MailSender delivers a single notification mail.
type MailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// ResendSender sends notification mails through the Resend API.
type ResendSender struct {
	client *resend.Client
	from   string
}

// NewResendSender builds a Resend-backed mail sender.
func NewResendSender(apiKey, from string) *ResendSender {
	return &ResendSender{client: resend.NewClient(apiKey), from: from}
}

// Send delivers one mail.
func (s *ResendSender) Send(ctx context.Context, to, subject, body string) error {
	_, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: subject,
		Text:    body,
	})
	if err != nil {
		return fmt.Errorf("resend send: %w", err)
	}
	return nil
}

type notificationPayload struct {
	StudentName string
	Action      string
}

// NotificationService announces ledger mutations to the affected
// student, best-effort. Delivery runs on a background queue so the
// triggering mutation never blocks on it and never observes a failure.
// Without a configured sender it degrades to a log statement.
type NotificationService struct {
	roster  notificationRoster
	sender  MailSender
	metrics *MetricsService
	logger  *zap.Logger
	queue   *jobs.Queue
}

// NewNotificationService constructs the notifier. sender may be nil.
func NewNotificationService(roster notificationRoster, sender MailSender, cfg config.NotifyConfig, metrics *MetricsService, logger *zap.Logger) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	svc := &NotificationService{
		roster:  roster,
		sender:  sender,
		metrics: metrics,
		logger:  logger,
	}
	svc.queue = jobs.NewQueue("notifications", svc.handle, jobs.QueueConfig{
		Workers:    cfg.Workers,
		MaxRetries: cfg.MaxRetries,
		RetryDelay: cfg.RetryDelay,
		Logger:     logger,
	})
	return svc
}

// Start launches the delivery workers.
func (s *NotificationService) Start(ctx context.Context) {
	s.queue.Start(ctx)
}

// Stop drains the delivery workers.
func (s *NotificationService) Stop() {
	s.queue.Stop()
}

// Notify enqueues a notice for the named student. Fire-and-forget: an
// enqueue failure is logged, never returned.
func (s *NotificationService) Notify(studentName, action string) {
	err := s.queue.Enqueue(jobs.Job{
		ID:      uuid.NewString(),
		Type:    action,
		Payload: notificationPayload{StudentName: studentName, Action: action},
	})
	if err != nil {
		s.logger.Warn("notification enqueue failed", zap.String("student", studentName), zap.Error(err))
	}
}

func (s *NotificationService) handle(ctx context.Context, job jobs.Job) error {
	payload, ok := job.Payload.(notificationPayload)
	if !ok {
		return fmt.Errorf("unexpected payload %T", job.Payload)
	}

	student, found := s.roster.FindStudent(payload.StudentName)
	if !found || student.Email == "" {
		// Free-typed or pre-roster names simply go unannounced.
		s.metrics.NotificationOutcome("skipped")
		s.logger.Debug("notification skipped, student not in roster", zap.String("student", payload.StudentName))
		return nil
	}

	subject, body := composeNotification(student.Name, payload.Action)

	if s.sender == nil {
		s.metrics.NotificationOutcome("sent")
		s.logger.Info("notification (log only)",
			zap.String("to", student.Email),
			zap.String("action", payload.Action))
		return nil
	}

	if err := s.sender.Send(ctx, student.Email, subject, body); err != nil {
		s.metrics.NotificationOutcome("failed")
		return err
	}
	s.metrics.NotificationOutcome("sent")
	return nil
}

func composeNotification(name, action string) (subject, body string) {
	subject = "桌球課程通知"
	switch action {
	case ActionDelete:
		body = fmt.Sprintf("%s 您好：您的課程記錄已刪除。", name)
	default:
		body = fmt.Sprintf("%s 您好：您的課程記錄已新增。", name)
	}
	return subject, body
}
