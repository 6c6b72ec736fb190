package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/theater-scheduler/internal/dto"
	"github.com/noah-isme/theater-scheduler/internal/models"
	"github.com/noah-isme/theater-scheduler/pkg/storage"
)

type fakeScheduleProvider struct {
	resp dto.ScheduleResponse
	err  error
}

func (f *fakeScheduleProvider) GetSchedule(ctx context.Context, scenarioID string) (dto.ScheduleResponse, error) {
	return f.resp, f.err
}

func sampleScheduleResponse() dto.ScheduleResponse {
	return dto.ScheduleResponse{
		Schedule: []dto.ScheduleItemOut{
			{ProductionID: "prod-1", StageID: "stage-1", TimeslotID: "slot-1", Revenue: 1000},
		},
		Assignments: []dto.AssignmentOut{
			{
				ScheduleItemID: models.ScheduleItemID("prod-1", "stage-1", "slot-1"),
				ProductionID:   "prod-1", StageID: "stage-1", TimeslotID: "slot-1",
				PersonID: "person-1", RoleID: "role-1", IsConductor: true,
			},
		},
	}
}

func newExportServiceFixture(t *testing.T) (*ExportService, *fakeScheduleProvider) {
	t.Helper()
	provider := &fakeScheduleProvider{resp: sampleScheduleResponse()}
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	signer := storage.NewSignedURLSigner("test-secret", time.Hour)
	svc := NewExportService(provider, store, signer, ExportServiceConfig{APIPrefix: "/api/v1", ResultTTL: time.Hour}, nil)
	return svc, provider
}

func TestExportServiceRenderCSVProducesDownloadableToken(t *testing.T) {
	svc, _ := newExportServiceFixture(t)
	job := &models.ExportJob{ID: "job-1", ScenarioID: "scenario-1", Format: models.ExportFormatCSV}

	url, expiresAt, err := svc.Render(context.Background(), job)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/api/v1/export/"))
	assert.True(t, expiresAt.After(time.Now()))
}

func TestExportServiceRenderPDFProducesDownloadableToken(t *testing.T) {
	svc, _ := newExportServiceFixture(t)
	job := &models.ExportJob{ID: "job-2", ScenarioID: "scenario-1", Format: models.ExportFormatPDF}

	url, _, err := svc.Render(context.Background(), job)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/api/v1/export/"))
}

func TestExportServiceRenderPropagatesScheduleError(t *testing.T) {
	svc, provider := newExportServiceFixture(t)
	provider.err = assert.AnError
	job := &models.ExportJob{ID: "job-3", ScenarioID: "scenario-1", Format: models.ExportFormatCSV}

	_, _, err := svc.Render(context.Background(), job)
	assert.Error(t, err)
}

func TestExportServiceResolveDownloadRoundTrips(t *testing.T) {
	svc, _ := newExportServiceFixture(t)
	job := &models.ExportJob{ID: "job-4", ScenarioID: "scenario-1", Format: models.ExportFormatCSV}
	url, _, err := svc.Render(context.Background(), job)
	require.NoError(t, err)

	token := strings.TrimPrefix(url, "/api/v1/export/")
	download, err := svc.ResolveDownload(context.Background(), token)
	require.NoError(t, err)
	defer download.File.Close()
	assert.Equal(t, models.ExportFormatCSV, download.Format)
}

func TestExportServiceResolveDownloadRejectsInvalidToken(t *testing.T) {
	svc, _ := newExportServiceFixture(t)
	_, err := svc.ResolveDownload(context.Background(), "not-a-real-token")
	assert.Error(t, err)
}
