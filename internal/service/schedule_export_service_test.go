package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/theater-scheduler/internal/models"
	"github.com/noah-isme/theater-scheduler/pkg/jobs"
)

type fakeExportJobStore struct {
	jobs map[string]*models.ExportJob
}

func newFakeExportJobStore() *fakeExportJobStore {
	return &fakeExportJobStore{jobs: make(map[string]*models.ExportJob)}
}

func (f *fakeExportJobStore) Save(job *models.ExportJob) { f.jobs[job.ID] = job }
func (f *fakeExportJobStore) Get(id string) (*models.ExportJob, bool) {
	job, ok := f.jobs[id]
	return job, ok
}

type fakeJobDispatcher struct {
	enqueued []jobs.Job
	err      error
}

func (f *fakeJobDispatcher) Enqueue(job jobs.Job) error {
	if f.err != nil {
		return f.err
	}
	f.enqueued = append(f.enqueued, job)
	return nil
}

func TestScheduleExportServiceRequestExportEnqueuesJob(t *testing.T) {
	repo := newFakeExportJobStore()
	dispatcher := &fakeJobDispatcher{}
	svc := NewScheduleExportService(repo, dispatcher, nil, zap.NewNop())

	job, err := svc.RequestExport(context.Background(), "scenario-1", models.ExportFormatCSV)
	require.NoError(t, err)
	assert.Equal(t, models.ExportJobPending, job.Status)
	require.Len(t, dispatcher.enqueued, 1)

	stored, ok := repo.Get(job.ID)
	require.True(t, ok)
	assert.Equal(t, "scenario-1", stored.ScenarioID)
}

func TestScheduleExportServiceRequestExportMarksFailedOnEnqueueError(t *testing.T) {
	repo := newFakeExportJobStore()
	dispatcher := &fakeJobDispatcher{err: assert.AnError}
	svc := NewScheduleExportService(repo, dispatcher, nil, zap.NewNop())

	_, err := svc.RequestExport(context.Background(), "scenario-1", models.ExportFormatCSV)
	assert.Error(t, err)

	for _, job := range repo.jobs {
		assert.Equal(t, models.ExportJobFailed, job.Status)
	}
}

func TestScheduleExportServiceStatusUnknownJob(t *testing.T) {
	svc := NewScheduleExportService(newFakeExportJobStore(), &fakeJobDispatcher{}, nil, zap.NewNop())
	_, err := svc.Status(context.Background(), "missing")
	assert.Error(t, err)
}

func TestScheduleExportServiceHandleRendersAndMarksDone(t *testing.T) {
	repo := newFakeExportJobStore()
	exportSvc, _ := newExportServiceFixture(t)
	svc := NewScheduleExportService(repo, &fakeJobDispatcher{}, exportSvc, zap.NewNop())

	job := &models.ExportJob{ID: "job-1", ScenarioID: "scenario-1", Format: models.ExportFormatCSV, CreatedAt: time.Now()}
	repo.Save(job)

	err := svc.Handle(context.Background(), jobs.Job{ID: job.ID, Type: "schedule_export", Payload: job})
	require.NoError(t, err)

	stored, ok := repo.Get(job.ID)
	require.True(t, ok)
	assert.Equal(t, models.ExportJobDone, stored.Status)
	assert.NotEmpty(t, stored.DownloadURL)
	require.NotNil(t, stored.CompletedAt)
}

func TestScheduleExportServiceHandleMarksFailedOnRenderError(t *testing.T) {
	repo := newFakeExportJobStore()
	exportSvc, provider := newExportServiceFixture(t)
	provider.err = assert.AnError
	svc := NewScheduleExportService(repo, &fakeJobDispatcher{}, exportSvc, zap.NewNop())

	job := &models.ExportJob{ID: "job-2", ScenarioID: "scenario-1", Format: models.ExportFormatCSV, CreatedAt: time.Now()}
	repo.Save(job)

	err := svc.Handle(context.Background(), jobs.Job{ID: job.ID, Type: "schedule_export", Payload: job})
	assert.Error(t, err)

	stored, ok := repo.Get(job.ID)
	require.True(t, ok)
	assert.Equal(t, models.ExportJobFailed, stored.Status)
}
