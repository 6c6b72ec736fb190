package repository

import (
	"sync"

	"github.com/noah-isme/theater-scheduler/internal/models"
)

// ExportJobRepository is an in-memory, mutex-guarded store of export job
// state, mirroring ScenarioRepository's shape for a second small aggregate.
type ExportJobRepository struct {
	mu   sync.RWMutex
	jobs map[string]*models.ExportJob
}

// NewExportJobRepository constructs an empty repository.
func NewExportJobRepository() *ExportJobRepository {
	return &ExportJobRepository{jobs: make(map[string]*models.ExportJob)}
}

// Save inserts or overwrites a job.
func (r *ExportJobRepository) Save(job *models.ExportJob) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[job.ID] = job
}

// Get returns a job by id.
func (r *ExportJobRepository) Get(id string) (*models.ExportJob, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	job, ok := r.jobs[id]
	return job, ok
}
