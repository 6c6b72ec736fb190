package repository

import (
	"sync"

	"github.com/noah-isme/theater-scheduler/internal/models"
)

// ScenarioRepository is an in-process mapping scenario_id -> Scenario and
// scenario_id -> ScenarioResult. It has no durability guarantees: the
// store is process-local and last-writer-wins per key. Callers are
// responsible for serializing concurrent writers of the same scenario_id
// (spec mandates mutual exclusion per key, not a global serialization of
// unrelated scenarios); a single RWMutex guarding both sub-maps is the
// accepted coarse-grained realization of that requirement.
type ScenarioRepository struct {
	mu        sync.RWMutex
	scenarios map[string]*models.Scenario
	results   map[string]*models.ScenarioResult
}

// NewScenarioRepository constructs an empty repository.
func NewScenarioRepository() *ScenarioRepository {
	return &ScenarioRepository{
		scenarios: make(map[string]*models.Scenario),
		results:   make(map[string]*models.ScenarioResult),
	}
}

// SaveScenario stores (or replaces) a scenario by id.
func (r *ScenarioRepository) SaveScenario(s *models.Scenario) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scenarios[s.ID] = s
}

// GetScenario returns the scenario for id, or false if absent.
func (r *ScenarioRepository) GetScenario(id string) (*models.Scenario, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.scenarios[id]
	return s, ok
}

// SaveResult stores (or replaces) a scenario result by scenario id.
func (r *ScenarioRepository) SaveResult(res *models.ScenarioResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results[res.ScenarioID] = res
}

// GetResult returns the result for scenario id, or false if absent.
func (r *ScenarioRepository) GetResult(scenarioID string) (*models.ScenarioResult, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.results[scenarioID]
	return res, ok
}
