package solver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/theater-scheduler/internal/models"
)

func baseScenario() *models.Scenario {
	return &models.Scenario{
		ID:     "scenario-1",
		Stages: []models.Stage{{ID: "stage-1", Name: "Main Hall"}},
		Productions: []models.Production{
			{ID: "prod-1", Title: "Carmen", StageID: "stage-1", MaxShows: 1},
		},
		Timeslots: []models.Timeslot{
			{ID: "slot-1", StageID: "stage-1", Date: "2026-08-03", DayOfWeek: 0, StartTime: "19:00"},
			{ID: "slot-2", StageID: "stage-1", Date: "2026-08-04", DayOfWeek: 1, StartTime: "19:00"},
		},
		Params: models.DefaultScenarioParams(),
	}
}

func TestScheduleSolverSingleProductionSingleSlot(t *testing.T) {
	s := NewScheduleSolver(NewBackend(), 2)
	scenario := baseScenario()
	scenario.Productions[0].MaxShows = 1

	items, _, status, err := s.Solve(context.Background(), scenario)
	require.NoError(t, err)
	assert.NotEqual(t, models.ResultInfeasible, status)
	require.Len(t, items, 1)
	assert.Equal(t, "prod-1", items[0].ProductionID)
}

func TestScheduleSolverRespectsFixedAssignment(t *testing.T) {
	s := NewScheduleSolver(NewBackend(), 2)
	scenario := baseScenario()
	scenario.FixedAssignments = []models.FixedAssignment{
		{ProductionID: "prod-1", TimeslotID: "slot-2", StageID: "stage-1", Date: "2026-08-04", StartTime: "19:00"},
	}

	items, _, status, err := s.Solve(context.Background(), scenario)
	require.NoError(t, err)
	assert.NotEqual(t, models.ResultInfeasible, status)
	require.Len(t, items, 1)
	assert.Equal(t, "slot-2", items[0].TimeslotID)
}

func TestScheduleSolverInfeasibleWhenMaxShowsExceedsCapacity(t *testing.T) {
	s := NewScheduleSolver(NewBackend(), 2)
	scenario := baseScenario()
	scenario.Productions[0].MaxShows = 3 // only two timeslots on the stage

	_, _, status, err := s.Solve(context.Background(), scenario)
	require.NoError(t, err)
	assert.Equal(t, models.ResultInfeasible, status)
}

func TestScheduleSolverMultiStageIsBlockDiagonal(t *testing.T) {
	s := NewScheduleSolver(NewBackend(), 2)
	scenario := baseScenario()
	scenario.Stages = append(scenario.Stages, models.Stage{ID: "stage-2", Name: "Studio"})
	scenario.Productions = append(scenario.Productions, models.Production{
		ID: "prod-2", Title: "Faust", StageID: "stage-2", MaxShows: 1,
	})
	scenario.Timeslots = append(scenario.Timeslots, models.Timeslot{
		ID: "slot-3", StageID: "stage-2", Date: "2026-08-04", DayOfWeek: 1, StartTime: "19:00",
	})

	items, _, status, err := s.Solve(context.Background(), scenario)
	require.NoError(t, err)
	assert.NotEqual(t, models.ResultInfeasible, status)
	assert.Len(t, items, 2)
}
