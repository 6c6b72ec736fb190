package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/theater-scheduler/internal/dto"
	"github.com/noah-isme/theater-scheduler/internal/models"
	"github.com/noah-isme/theater-scheduler/internal/roleassign"
	"github.com/noah-isme/theater-scheduler/internal/solver"
)

type fakeScenarioRepo struct {
	scenarios map[string]*models.Scenario
	results   map[string]*models.ScenarioResult
}

func newFakeScenarioRepo() *fakeScenarioRepo {
	return &fakeScenarioRepo{
		scenarios: make(map[string]*models.Scenario),
		results:   make(map[string]*models.ScenarioResult),
	}
}

func (r *fakeScenarioRepo) SaveScenario(s *models.Scenario)          { r.scenarios[s.ID] = s }
func (r *fakeScenarioRepo) GetScenario(id string) (*models.Scenario, bool) {
	s, ok := r.scenarios[id]
	return s, ok
}
func (r *fakeScenarioRepo) SaveResult(res *models.ScenarioResult) { r.results[res.ScenarioID] = res }
func (r *fakeScenarioRepo) GetResult(scenarioID string) (*models.ScenarioResult, bool) {
	res, ok := r.results[scenarioID]
	return res, ok
}

func newScenarioServiceFixture(t *testing.T) (*ScenarioService, *fakeScenarioRepo) {
	t.Helper()
	repo := newFakeScenarioRepo()
	sched := solver.NewScheduleSolver(solver.NewBackend(), 2)
	svc := NewScenarioService(repo, sched, roleassign.New(), nil, nil, zap.NewNop())
	return svc, repo
}

func oneStageOneShowRequest() dto.ScenarioCreateRequest {
	return dto.ScenarioCreateRequest{
		Stages:    []dto.StageIn{{ID: "stage-1", Name: "Main Hall"}},
		Productions: []dto.ProductionIn{
			{ID: "prod-1", Title: "Carmen", StageID: "stage-1", MaxShows: 1},
		},
		Timeslots: []dto.TimeslotIn{
			{ID: "slot-1", StageID: "stage-1", Date: "2026-08-04", DayOfWeek: 1, StartTime: "19:00"},
		},
		People: []dto.PersonIn{{ID: "person-1", Name: "Alex"}},
		Roles: []dto.RoleIn{
			{ID: "role-1", Name: "Conductor", ProductionID: "prod-1", IsConductor: true, RequiredCount: 1},
		},
		PersonProductionRoles: []dto.PersonProductionRoleIn{
			{PersonID: "person-1", ProductionID: "prod-1", RoleID: "role-1", CanPlay: true},
		},
	}
}

func TestScenarioServiceCreateScenario(t *testing.T) {
	svc, repo := newScenarioServiceFixture(t)

	scenario, err := svc.CreateScenario(context.Background(), oneStageOneShowRequest())
	require.NoError(t, err)
	assert.Equal(t, models.ScenarioCreated, scenario.Status)
	assert.NotEmpty(t, scenario.ID)

	stored, ok := repo.GetScenario(scenario.ID)
	require.True(t, ok)
	assert.Len(t, stored.Productions, 1)
}

func TestScenarioServiceSolveProducesScheduleAndAssignments(t *testing.T) {
	svc, _ := newScenarioServiceFixture(t)
	scenario, err := svc.CreateScenario(context.Background(), oneStageOneShowRequest())
	require.NoError(t, err)

	result, err := svc.Solve(context.Background(), scenario.ID, nil)
	require.NoError(t, err)
	assert.NotEqual(t, models.ResultInfeasible, result.Status)
	require.Len(t, result.Schedule, 1)
	require.Len(t, result.Assignments, 1)
	assert.Equal(t, "person-1", result.Assignments[0].PersonID)

	status, err := svc.GetStatus(context.Background(), scenario.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.ScenarioSolved), status.Status)
	require.NotNil(t, status.ObjectiveValue)
}

func TestScenarioServiceSolveUnknownScenario(t *testing.T) {
	svc, _ := newScenarioServiceFixture(t)
	_, err := svc.Solve(context.Background(), "missing", nil)
	assert.Error(t, err)
}

func TestScenarioServiceOverrideAssignmentReplacesExisting(t *testing.T) {
	svc, _ := newScenarioServiceFixture(t)
	scenario, err := svc.CreateScenario(context.Background(), oneStageOneShowRequest())
	require.NoError(t, err)

	err = svc.AddPerson(context.Background(), scenario.ID, dto.PersonIn{ID: "person-2", Name: "Sam"})
	require.NoError(t, err)

	result, err := svc.Solve(context.Background(), scenario.ID, nil)
	require.NoError(t, err)
	require.Len(t, result.Assignments, 1)
	itemID := result.Assignments[0].ScheduleItemID

	err = svc.OverrideAssignment(context.Background(), scenario.ID, dto.AssignmentsOverrideRequest{
		ScheduleItemID: itemID,
		PersonID:       "person-2",
		RoleID:         "role-1",
	})
	require.NoError(t, err)

	updated, err := svc.GetAssignments(context.Background(), scenario.ID)
	require.NoError(t, err)
	require.Len(t, updated, 1)
	assert.Equal(t, "person-2", updated[0].PersonID)
}

func TestScenarioServiceAddPersonRejectsDuplicate(t *testing.T) {
	svc, _ := newScenarioServiceFixture(t)
	scenario, err := svc.CreateScenario(context.Background(), oneStageOneShowRequest())
	require.NoError(t, err)

	err = svc.AddPerson(context.Background(), scenario.ID, dto.PersonIn{ID: "person-1", Name: "Dup"})
	assert.Error(t, err)
}

func TestScenarioServiceAutoGenerateRolesSkipsExisting(t *testing.T) {
	svc, _ := newScenarioServiceFixture(t)
	scenario, err := svc.CreateScenario(context.Background(), oneStageOneShowRequest())
	require.NoError(t, err)

	generated, err := svc.AutoGenerateRoles(context.Background(), scenario.ID)
	require.NoError(t, err)
	require.NotEmpty(t, generated)
	for _, r := range generated {
		assert.NotEqual(t, "role-1", r.ID)
	}

	again, err := svc.AutoGenerateRoles(context.Background(), scenario.ID)
	require.NoError(t, err)
	assert.Empty(t, again)
}

func TestScenarioServiceRemovePersonCascadesPersonProductionRoles(t *testing.T) {
	svc, _ := newScenarioServiceFixture(t)
	scenario, err := svc.CreateScenario(context.Background(), oneStageOneShowRequest())
	require.NoError(t, err)

	require.NoError(t, svc.RemovePerson(context.Background(), scenario.ID, "person-1"))

	edges, err := svc.ListPersonProductionRoles(context.Background(), scenario.ID)
	require.NoError(t, err)
	assert.Empty(t, edges)
}
