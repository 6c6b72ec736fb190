package models

import "time"

// ExportFormat enumerates the supported rendered output formats.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

// ExportJobStatus tracks the lifecycle of an asynchronously rendered export.
type ExportJobStatus string

const (
	ExportJobPending ExportJobStatus = "pending"
	ExportJobRunning ExportJobStatus = "running"
	ExportJobDone    ExportJobStatus = "done"
	ExportJobFailed  ExportJobStatus = "failed"
)

// ExportJob tracks one request to render a solved scenario's schedule as a
// downloadable file. Rendering runs on the async job queue; solving never
// does.
type ExportJob struct {
	ID           string          `json:"id"`
	ScenarioID   string          `json:"scenario_id"`
	Format       ExportFormat    `json:"format"`
	Status       ExportJobStatus `json:"status"`
	DownloadURL  string          `json:"download_url,omitempty"`
	Error        string          `json:"error,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	CompletedAt  *time.Time      `json:"completed_at,omitempty"`
}
