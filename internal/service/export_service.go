package service

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/William-datamaster/table-tennis/internal/models"
	"github.com/William-datamaster/table-tennis/pkg/config"
	appErrors "github.com/William-datamaster/table-tennis/pkg/errors"
	"github.com/William-datamaster/table-tennis/pkg/export"
)

// Export formats offered for download.
const (
	FormatCSV = "csv"
	FormatPDF = "pdf"
)

type recordSource interface {
	Filter(criteria models.FilterCriteria) []models.LessonRecord
}

type csvRenderer interface {
	RenderWithBOM(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportArtifact is a rendered download.
type ExportArtifact struct {
	Filename    string
	ContentType string
	Payload     []byte
}

// ExportService renders the filtered ledger view into download files.
type ExportService struct {
	records recordSource
	csv     csvRenderer
	pdf     pdfRenderer
	cfg     config.ExportConfig
	metrics *MetricsService
	logger  *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(records recordSource, cfg config.ExportConfig, metrics *MetricsService, logger *zap.Logger, csv csvRenderer, pdf pdfRenderer) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Filename == "" {
		cfg.Filename = "桌球課程記錄"
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{
		records: records,
		csv:     csv,
		pdf:     pdf,
		cfg:     cfg,
		metrics: metrics,
		logger:  logger,
	}
}

// Export renders the records matching criteria in the requested format.
func (s *ExportService) Export(criteria models.FilterCriteria, format string) (*ExportArtifact, error) {
	records := s.records.Filter(criteria)

	var (
		payload  []byte
		err      error
		artifact ExportArtifact
	)
	switch format {
	case FormatCSV, "":
		payload, err = s.csv.RenderWithBOM(csvDataset(records))
		artifact = ExportArtifact{Filename: s.cfg.Filename + ".csv", ContentType: "text/csv; charset=utf-8"}
	case FormatPDF:
		payload, err = s.pdf.Render(pdfDataset(records), "Lesson Records")
		artifact = ExportArtifact{Filename: s.cfg.Filename + ".pdf", ContentType: "application/pdf"}
	default:
		return nil, appErrors.Clone(appErrors.ErrExportFormat, fmt.Sprintf("unsupported export format %q", format))
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}

	artifact.Payload = payload
	if format == "" {
		format = FormatCSV
	}
	s.metrics.ExportRendered(format)
	s.logger.Info("export rendered", zap.String("format", format), zap.Int("records", len(records)))
	return &artifact, nil
}

// csvDataset lays records out with the spreadsheet's Chinese labels.
func csvDataset(records []models.LessonRecord) export.Dataset {
	data := export.Dataset{Headers: []string{"日期", "學生", "教練", "時數"}}
	for _, r := range records {
		data.Rows = append(data.Rows, map[string]string{
			"日期": r.Date.Format(models.DateLayout),
			"學生": r.StudentName,
			"教練": r.TeacherName,
			"時數": r.DurationLabel(),
		})
	}
	return data
}

// pdfDataset uses ASCII labels; the PDF renderer's base fonts are
// Latin-only.
func pdfDataset(records []models.LessonRecord) export.Dataset {
	data := export.Dataset{Headers: []string{"Date", "Student", "Teacher", "Duration"}}
	for _, r := range records {
		data.Rows = append(data.Rows, map[string]string{
			"Date":     r.Date.Format(models.DateLayout),
			"Student":  r.StudentName,
			"Teacher":  r.TeacherName,
			"Duration": fmt.Sprintf("%dh%02dm", r.Hours, r.Minutes),
		})
	}
	return data
}
