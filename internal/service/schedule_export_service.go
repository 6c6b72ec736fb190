package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/theater-scheduler/internal/models"
	appErrors "github.com/noah-isme/theater-scheduler/pkg/errors"
	"github.com/noah-isme/theater-scheduler/pkg/jobs"
)

type exportJobStore interface {
	Save(job *models.ExportJob)
	Get(id string) (*models.ExportJob, bool)
}

type jobDispatcher interface {
	Enqueue(job jobs.Job) error
}

// ScheduleExportService queues schedule export requests and reports their
// progress; rendering itself happens off the request path, on the job
// queue worker built around ExportService.Render.
type ScheduleExportService struct {
	repo     exportJobStore
	queue    jobDispatcher
	exporter *ExportService
	logger   *zap.Logger
}

// NewScheduleExportService constructs the orchestrator. The queue may be
// nil at construction time and attached later with SetQueue, since the
// queue's own handler function is this service's Handle method.
func NewScheduleExportService(repo exportJobStore, queue jobDispatcher, exporter *ExportService, logger *zap.Logger) *ScheduleExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleExportService{repo: repo, queue: queue, exporter: exporter, logger: logger}
}

// SetQueue attaches the job queue once it has been constructed around
// Handle, breaking the construction cycle between the two.
func (s *ScheduleExportService) SetQueue(queue jobDispatcher) {
	s.queue = queue
}

// RequestExport enqueues a render job for a solved scenario's schedule.
func (s *ScheduleExportService) RequestExport(ctx context.Context, scenarioID string, format models.ExportFormat) (*models.ExportJob, error) {
	job := &models.ExportJob{
		ID:         uuid.NewString(),
		ScenarioID: scenarioID,
		Format:     format,
		Status:     models.ExportJobPending,
		CreatedAt:  time.Now().UTC(),
	}
	s.repo.Save(job)

	if err := s.queue.Enqueue(jobs.Job{ID: job.ID, Type: "schedule_export", Payload: job}); err != nil {
		job.Status = models.ExportJobFailed
		job.Error = "failed to enqueue export job"
		s.repo.Save(job)
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to enqueue export job")
	}
	return job, nil
}

// Status returns the current state of a queued or completed export.
func (s *ScheduleExportService) Status(ctx context.Context, jobID string) (*models.ExportJob, error) {
	job, ok := s.repo.Get(jobID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "export job not found")
	}
	return job, nil
}

// Handle is the jobs.Handler invoked by the queue worker for each export job.
func (s *ScheduleExportService) Handle(ctx context.Context, j jobs.Job) error {
	job, ok := j.Payload.(*models.ExportJob)
	if !ok {
		return appErrors.ErrInternal
	}
	job.Status = models.ExportJobRunning
	s.repo.Save(job)

	url, _, err := s.exporter.Render(ctx, job)
	now := time.Now().UTC()
	if err != nil {
		job.Status = models.ExportJobFailed
		job.Error = err.Error()
		job.CompletedAt = &now
		s.repo.Save(job)
		s.logger.Sugar().Warnw("export render failed", "job_id", job.ID, "scenario_id", job.ScenarioID, "error", err)
		return err
	}

	job.Status = models.ExportJobDone
	job.DownloadURL = url
	job.CompletedAt = &now
	s.repo.Save(job)
	return nil
}
