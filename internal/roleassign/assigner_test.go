package roleassign

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/theater-scheduler/internal/models"
)

func scenarioWithTwoEligiblePeople() *models.Scenario {
	return &models.Scenario{
		ID:     "scenario-1",
		People: []models.Person{{ID: "alex"}, {ID: "sam"}},
		Roles: []models.Role{
			{ID: "role-1", Name: "Conductor", ProductionID: "prod-1", IsConductor: true, RequiredCount: 1},
		},
		PersonProductionRoles: []models.PersonProductionRole{
			{PersonID: "alex", ProductionID: "prod-1", RoleID: "role-1", CanPlay: true},
			{PersonID: "sam", ProductionID: "prod-1", RoleID: "role-1", CanPlay: true},
		},
	}
}

func TestAssignerLoadBalancesAcrossShows(t *testing.T) {
	scenario := scenarioWithTwoEligiblePeople()
	schedule := []models.ScheduleItem{
		{ProductionID: "prod-1", StageID: "stage-1", TimeslotID: "slot-1"},
		{ProductionID: "prod-1", StageID: "stage-1", TimeslotID: "slot-2"},
	}

	assignments := New().Assign(scenario, schedule)
	require.Len(t, assignments, 2)

	load := map[string]int{}
	for _, a := range assignments {
		load[a.PersonID]++
	}
	assert.Equal(t, 1, load["alex"])
	assert.Equal(t, 1, load["sam"])
}

func TestAssignerSkipsRoleWithNoEligiblePeople(t *testing.T) {
	scenario := &models.Scenario{
		ID:     "scenario-1",
		People: []models.Person{{ID: "alex"}},
		Roles: []models.Role{
			{ID: "role-1", ProductionID: "prod-1", RequiredCount: 1},
		},
	}
	schedule := []models.ScheduleItem{{ProductionID: "prod-1", StageID: "stage-1", TimeslotID: "slot-1"}}

	assignments := New().Assign(scenario, schedule)
	assert.Empty(t, assignments)
}

func TestAssignerRequiredCountFillsMultiplePeoplePerShow(t *testing.T) {
	scenario := scenarioWithTwoEligiblePeople()
	scenario.Roles[0].RequiredCount = 2
	schedule := []models.ScheduleItem{
		{ProductionID: "prod-1", StageID: "stage-1", TimeslotID: "slot-1"},
	}

	assignments := New().Assign(scenario, schedule)
	require.Len(t, assignments, 2)
	people := map[string]bool{assignments[0].PersonID: true, assignments[1].PersonID: true}
	assert.True(t, people["alex"])
	assert.True(t, people["sam"])
}

func TestAssignerPreservesProductionAppendOrder(t *testing.T) {
	scenario := scenarioWithTwoEligiblePeople()
	scenario.Roles = append(scenario.Roles, models.Role{
		ID: "role-2", ProductionID: "prod-2", RequiredCount: 1,
	})
	scenario.PersonProductionRoles = append(scenario.PersonProductionRoles, models.PersonProductionRole{
		PersonID: "alex", ProductionID: "prod-2", RoleID: "role-2", CanPlay: true,
	})
	schedule := []models.ScheduleItem{
		{ProductionID: "prod-2", StageID: "stage-1", TimeslotID: "slot-2"},
		{ProductionID: "prod-1", StageID: "stage-1", TimeslotID: "slot-1"},
	}

	assignments := New().Assign(scenario, schedule)
	require.Len(t, assignments, 2)
	assert.Equal(t, "prod-2", assignments[0].ProductionID)
	assert.Equal(t, "prod-1", assignments[1].ProductionID)
}
