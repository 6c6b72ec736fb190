package service

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/theater-scheduler/internal/dto"
	"github.com/noah-isme/theater-scheduler/internal/models"
	appErrors "github.com/noah-isme/theater-scheduler/pkg/errors"
	"github.com/noah-isme/theater-scheduler/pkg/export"
	"github.com/noah-isme/theater-scheduler/pkg/storage"
)

// scheduleProvider is the narrow read surface ExportService needs from the
// scenario orchestrator to build a schedule export.
type scheduleProvider interface {
	GetSchedule(ctx context.Context, scenarioID string) (dto.ScheduleResponse, error)
}

type fileStorage interface {
	Save(filename string, data []byte) (string, error)
	Open(filename string) (*os.File, error)
	Delete(filename string) error
	CleanupOlderThan(ttl time.Duration) ([]string, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportServiceConfig tunes export behaviour.
type ExportServiceConfig struct {
	APIPrefix string
	ResultTTL time.Duration
}

// ExportDownload aggregates resolved download data for a validated token.
type ExportDownload struct {
	File      *os.File
	Filename  string
	Format    models.ExportFormat
	ExpiresAt time.Time
}

// ExportService renders a solved scenario's schedule/assignments as a
// downloadable CSV or PDF file, storing it locally and handing back a
// signed, time-limited download URL.
type ExportService struct {
	schedules scheduleProvider
	storage   fileStorage
	csv       csvRenderer
	pdf       pdfRenderer
	signer    *storage.SignedURLSigner
	logger    *zap.Logger
	cfg       ExportServiceConfig
}

// NewExportService constructs an ExportService.
func NewExportService(schedules scheduleProvider, store fileStorage, signer *storage.SignedURLSigner, cfg ExportServiceConfig, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ResultTTL <= 0 {
		cfg.ResultTTL = 24 * time.Hour
	}
	return &ExportService{
		schedules: schedules,
		storage:   store,
		csv:       export.NewCSVExporter(),
		pdf:       export.NewPDFExporter(),
		signer:    signer,
		logger:    logger,
		cfg:       cfg,
	}
}

// Render builds the schedule dataset for a scenario and writes the rendered
// file to storage, returning a signed download URL. Called from the job
// queue worker, never inline with a solve request.
func (s *ExportService) Render(ctx context.Context, job *models.ExportJob) (string, time.Time, error) {
	schedule, err := s.schedules.GetSchedule(ctx, job.ScenarioID)
	if err != nil {
		return "", time.Time{}, err
	}
	dataset := buildScheduleDataset(schedule)
	title := fmt.Sprintf("Schedule %s", job.ScenarioID)

	var payload []byte
	switch job.Format {
	case models.ExportFormatCSV:
		payload, err = s.csv.Render(dataset)
	case models.ExportFormatPDF:
		payload, err = s.pdf.Render(dataset, title)
	default:
		err = fmt.Errorf("unsupported export format %s", job.Format)
	}
	if err != nil {
		return "", time.Time{}, err
	}

	filename := fmt.Sprintf("%s_%s.%s", sanitizeFilename(job.ScenarioID), time.Now().UTC().Format("20060102_150405"), job.Format)
	relPath, err := s.storage.Save(filename, payload)
	if err != nil {
		return "", time.Time{}, err
	}

	token, expiresAt, err := s.signer.Generate(job.ID, relPath)
	if err != nil {
		return "", time.Time{}, err
	}
	prefix := strings.TrimRight(s.cfg.APIPrefix, "/")
	if prefix == "" {
		prefix = "/api/v1"
	}
	return fmt.Sprintf("%s/export/%s", prefix, token), expiresAt, nil
}

// ResolveDownload validates a signed download token and opens the
// referenced file for streaming.
func (s *ExportService) ResolveDownload(ctx context.Context, token string) (*ExportDownload, error) {
	_, relPath, expiresAt, err := s.signer.Parse(token, false)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrNotFound.Code, appErrors.ErrNotFound.Status, "export link invalid or expired")
	}
	file, err := s.storage.Open(relPath)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrNotFound.Code, appErrors.ErrNotFound.Status, "export file not found")
	}
	format := models.ExportFormatCSV
	if strings.HasSuffix(relPath, ".pdf") {
		format = models.ExportFormatPDF
	}
	return &ExportDownload{File: file, Filename: relPath, Format: format, ExpiresAt: expiresAt}, nil
}

// Cleanup removes files older than ttl (defaults to the configured ResultTTL).
func (s *ExportService) Cleanup(ttl time.Duration) ([]string, error) {
	if ttl <= 0 {
		ttl = s.cfg.ResultTTL
	}
	return s.storage.CleanupOlderThan(ttl)
}

func buildScheduleDataset(schedule dto.ScheduleResponse) export.Dataset {
	assignmentsByItem := make(map[string][]dto.AssignmentOut)
	for _, a := range schedule.Assignments {
		assignmentsByItem[a.ScheduleItemID] = append(assignmentsByItem[a.ScheduleItemID], a)
	}

	rows := make([]map[string]string, 0, len(schedule.Schedule))
	for _, item := range schedule.Schedule {
		itemID := models.ScheduleItemID(item.ProductionID, item.StageID, item.TimeslotID)
		assignments := assignmentsByItem[itemID]
		if len(assignments) == 0 {
			rows = append(rows, map[string]string{
				"Stage": item.StageID, "Production": item.ProductionID, "Timeslot": item.TimeslotID,
				"Person": "", "Role": "",
			})
			continue
		}
		for _, a := range assignments {
			rows = append(rows, map[string]string{
				"Stage": item.StageID, "Production": item.ProductionID, "Timeslot": item.TimeslotID,
				"Person": a.PersonID, "Role": a.RoleID,
			})
		}
	}

	return export.Dataset{
		Headers: []string{"Stage", "Production", "Timeslot", "Person", "Role"},
		Rows:    rows,
	}
}

func sanitizeFilename(raw string) string {
	if raw == "" {
		return "na"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-", ":", "-")
	result := replacer.Replace(raw)
	if len(result) > 100 {
		return result[:100]
	}
	return result
}
