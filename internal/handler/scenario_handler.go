package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/theater-scheduler/internal/dto"
	"github.com/noah-isme/theater-scheduler/internal/models"
	appErrors "github.com/noah-isme/theater-scheduler/pkg/errors"
	"github.com/noah-isme/theater-scheduler/pkg/response"
)

// scenarioOrchestrator is the surface ScenarioHandler depends on.
type scenarioOrchestrator interface {
	CreateScenario(ctx context.Context, req dto.ScenarioCreateRequest) (*models.Scenario, error)
	Solve(ctx context.Context, scenarioID string, override *dto.ConstraintsIn) (*models.ScenarioResult, error)
	GetStatus(ctx context.Context, scenarioID string) (dto.StatusResponse, error)
	GetSchedule(ctx context.Context, scenarioID string) (dto.ScheduleResponse, error)
	GetAssignments(ctx context.Context, scenarioID string) ([]dto.AssignmentOut, error)
	Gantt(ctx context.Context, scenarioID string) (dto.GanttResponse, error)
	AutoGenerateRoles(ctx context.Context, scenarioID string) ([]dto.RoleOut, error)
	OverrideAssignment(ctx context.Context, scenarioID string, req dto.AssignmentsOverrideRequest) error
	AddPerson(ctx context.Context, scenarioID string, in dto.PersonIn) error
	ListPeople(ctx context.Context, scenarioID string) ([]dto.PersonOut, error)
	RemovePerson(ctx context.Context, scenarioID, personID string) error
	AddRole(ctx context.Context, scenarioID string, in dto.RoleIn) error
	ListRoles(ctx context.Context, scenarioID, productionID string) ([]dto.RoleOut, error)
	RemoveRole(ctx context.Context, scenarioID, roleID string) error
	UpsertPersonProductionRole(ctx context.Context, scenarioID string, in dto.PersonProductionRoleIn) error
	ListPersonProductionRoles(ctx context.Context, scenarioID string) ([]dto.PersonProductionRoleOut, error)
}

// ScenarioHandler exposes the scheduling scenario endpoints.
type ScenarioHandler struct {
	service scenarioOrchestrator
}

// NewScenarioHandler constructs the handler.
func NewScenarioHandler(svc scenarioOrchestrator) *ScenarioHandler {
	return &ScenarioHandler{service: svc}
}

// Create godoc
// @Summary Create a scheduling scenario
// @Tags Scenarios
// @Accept json
// @Produce json
// @Param payload body dto.ScenarioCreateRequest true "Scenario definition"
// @Success 201 {object} response.Envelope
// @Router /scenarios [post]
func (h *ScenarioHandler) Create(c *gin.Context) {
	var req dto.ScenarioCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid scenario payload"))
		return
	}
	scenario, err := h.service.CreateScenario(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.ScenarioCreateResponse{ScenarioID: scenario.ID, Status: string(scenario.Status)})
}

// Solve godoc
// @Summary Solve a scenario's schedule and role assignments
// @Tags Scenarios
// @Accept json
// @Produce json
// @Param id path string true "Scenario ID"
// @Param payload body dto.SolveRequest false "Constraint overrides"
// @Success 200 {object} response.Envelope
// @Router /scenarios/{id}/solve [post]
func (h *ScenarioHandler) Solve(c *gin.Context) {
	var req dto.SolveRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid solve payload"))
			return
		}
	}
	result, err := h.service.Solve(c.Request.Context(), c.Param("id"), req.Constraints)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.SolveResponse{
		ScenarioID:     result.ScenarioID,
		Status:         string(result.Status),
		ObjectiveValue: result.ObjectiveValue,
	}, nil)
}

// Status godoc
// @Summary Get a scenario's lifecycle status
// @Tags Scenarios
// @Produce json
// @Param id path string true "Scenario ID"
// @Success 200 {object} response.Envelope
// @Router /scenarios/{id}/status [get]
func (h *ScenarioHandler) Status(c *gin.Context) {
	status, err := h.service.GetStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, status, nil)
}

// Schedule godoc
// @Summary Get a solved scenario's schedule and assignments
// @Tags Scenarios
// @Produce json
// @Param id path string true "Scenario ID"
// @Success 200 {object} response.Envelope
// @Router /scenarios/{id}/schedule [get]
func (h *ScenarioHandler) Schedule(c *gin.Context) {
	schedule, err := h.service.GetSchedule(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, schedule, nil)
}

// Assignments godoc
// @Summary Get a solved scenario's role assignments
// @Tags Scenarios
// @Produce json
// @Param id path string true "Scenario ID"
// @Success 200 {object} response.Envelope
// @Router /scenarios/{id}/assignments [get]
func (h *ScenarioHandler) Assignments(c *gin.Context) {
	assignments, err := h.service.GetAssignments(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, assignments, nil)
}

// Gantt godoc
// @Summary Get a Europe/Moscow-localized Gantt projection of the schedule
// @Tags Scenarios
// @Produce json
// @Param id path string true "Scenario ID"
// @Success 200 {object} response.Envelope
// @Router /scenarios/{id}/gantt [get]
func (h *ScenarioHandler) Gantt(c *gin.Context) {
	gantt, err := h.service.Gantt(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gantt, nil)
}

// OverrideAssignment godoc
// @Summary Manually override a role assignment
// @Tags Scenarios
// @Accept json
// @Produce json
// @Param id path string true "Scenario ID"
// @Param payload body dto.AssignmentsOverrideRequest true "Override"
// @Success 204
// @Router /scenarios/{id}/assignments [put]
func (h *ScenarioHandler) OverrideAssignment(c *gin.Context) {
	var req dto.AssignmentsOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid override payload"))
		return
	}
	if err := h.service.OverrideAssignment(c.Request.Context(), c.Param("id"), req); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// AutoGenerateRoles godoc
// @Summary Generate the default role set for every production in the scenario
// @Tags Scenarios
// @Produce json
// @Param id path string true "Scenario ID"
// @Success 200 {object} response.Envelope
// @Router /scenarios/{id}/roles/auto-generate [post]
func (h *ScenarioHandler) AutoGenerateRoles(c *gin.Context) {
	generated, err := h.service.AutoGenerateRoles(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.AutoGenerateRolesResponse{Generated: generated, Count: len(generated)}, nil)
}

// AddPerson godoc
// @Summary Add a person to a scenario
// @Tags Scenarios
// @Accept json
// @Produce json
// @Param id path string true "Scenario ID"
// @Param payload body dto.PersonIn true "Person"
// @Success 201 {object} response.Envelope
// @Router /scenarios/{id}/people [post]
func (h *ScenarioHandler) AddPerson(c *gin.Context) {
	var in dto.PersonIn
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid person payload"))
		return
	}
	if err := h.service.AddPerson(c.Request.Context(), c.Param("id"), in); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, in)
}

// ListPeople godoc
// @Summary List people on a scenario
// @Tags Scenarios
// @Produce json
// @Param id path string true "Scenario ID"
// @Success 200 {object} response.Envelope
// @Router /scenarios/{id}/people [get]
func (h *ScenarioHandler) ListPeople(c *gin.Context) {
	people, err := h.service.ListPeople(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, people, nil)
}

// RemovePerson godoc
// @Summary Remove a person from a scenario
// @Tags Scenarios
// @Param id path string true "Scenario ID"
// @Param personId path string true "Person ID"
// @Success 204
// @Router /scenarios/{id}/people/{personId} [delete]
func (h *ScenarioHandler) RemovePerson(c *gin.Context) {
	if err := h.service.RemovePerson(c.Request.Context(), c.Param("id"), c.Param("personId")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// AddRole godoc
// @Summary Add a role to a scenario
// @Tags Scenarios
// @Accept json
// @Produce json
// @Param id path string true "Scenario ID"
// @Param payload body dto.RoleIn true "Role"
// @Success 201 {object} response.Envelope
// @Router /scenarios/{id}/roles [post]
func (h *ScenarioHandler) AddRole(c *gin.Context) {
	var in dto.RoleIn
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid role payload"))
		return
	}
	if err := h.service.AddRole(c.Request.Context(), c.Param("id"), in); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, in)
}

// ListRoles godoc
// @Summary List roles on a scenario, optionally filtered by production
// @Tags Scenarios
// @Produce json
// @Param id path string true "Scenario ID"
// @Param productionId query string false "Production ID"
// @Success 200 {object} response.Envelope
// @Router /scenarios/{id}/roles [get]
func (h *ScenarioHandler) ListRoles(c *gin.Context) {
	roles, err := h.service.ListRoles(c.Request.Context(), c.Param("id"), c.Query("productionId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, roles, nil)
}

// RemoveRole godoc
// @Summary Remove a role from a scenario
// @Tags Scenarios
// @Param id path string true "Scenario ID"
// @Param roleId path string true "Role ID"
// @Success 204
// @Router /scenarios/{id}/roles/{roleId} [delete]
func (h *ScenarioHandler) RemoveRole(c *gin.Context) {
	if err := h.service.RemoveRole(c.Request.Context(), c.Param("id"), c.Param("roleId")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// UpsertPersonProductionRole godoc
// @Summary Upsert a person's eligibility for a production's role
// @Tags Scenarios
// @Accept json
// @Produce json
// @Param id path string true "Scenario ID"
// @Param payload body dto.PersonProductionRoleIn true "Eligibility edge"
// @Success 200 {object} response.Envelope
// @Router /scenarios/{id}/person-production-roles [put]
func (h *ScenarioHandler) UpsertPersonProductionRole(c *gin.Context) {
	var in dto.PersonProductionRoleIn
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid eligibility payload"))
		return
	}
	if err := h.service.UpsertPersonProductionRole(c.Request.Context(), c.Param("id"), in); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, in, nil)
}

// ListPersonProductionRoles godoc
// @Summary List eligibility edges on a scenario
// @Tags Scenarios
// @Produce json
// @Param id path string true "Scenario ID"
// @Success 200 {object} response.Envelope
// @Router /scenarios/{id}/person-production-roles [get]
func (h *ScenarioHandler) ListPersonProductionRoles(c *gin.Context) {
	edges, err := h.service.ListPersonProductionRoles(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, edges, nil)
}
