package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/theater-scheduler/internal/calendar"
	"github.com/noah-isme/theater-scheduler/internal/dto"
	"github.com/noah-isme/theater-scheduler/internal/models"
	"github.com/noah-isme/theater-scheduler/internal/roleassign"
	"github.com/noah-isme/theater-scheduler/internal/roletemplate"
	"github.com/noah-isme/theater-scheduler/internal/solver"
	appErrors "github.com/noah-isme/theater-scheduler/pkg/errors"
)

// scenarioRepository is the narrow interface ScenarioService depends on,
// declared locally per the teacher's convention of scoping repository
// access to exactly what a service needs.
type scenarioRepository interface {
	SaveScenario(*models.Scenario)
	GetScenario(id string) (*models.Scenario, bool)
	SaveResult(*models.ScenarioResult)
	GetResult(scenarioID string) (*models.ScenarioResult, bool)
}

// ScenarioService is the scenario orchestrator (C6): it converts transport
// DTOs into domain values, drives the solver and role assigner, and
// maintains the scenario status lifecycle. It additionally owns the
// people/role/PPR CRUD and Gantt projection operations that
// original_source/theater_sched/api/main.py exposed alongside the core
// scheduling endpoints.
type ScenarioService struct {
	repo    scenarioRepository
	solver  *solver.ScheduleSolver
	roles   *roleassign.Assigner
	cache   *CacheService
	metrics *MetricsService
	logger  *zap.Logger

	validate *validator.Validate

	// writeLocks enforces the single-writer-per-scenario-id requirement
	// of spec.md §5 without serializing unrelated scenarios against each
	// other.
	writeLocks   map[string]*sync.Mutex
	writeLocksMu sync.Mutex
}

// NewScenarioService constructs the orchestrator.
func NewScenarioService(repo scenarioRepository, sched *solver.ScheduleSolver, roles *roleassign.Assigner, cache *CacheService, metrics *MetricsService, logger *zap.Logger) *ScenarioService {
	if roles == nil {
		roles = roleassign.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScenarioService{
		repo:       repo,
		solver:     sched,
		roles:      roles,
		cache:      cache,
		metrics:    metrics,
		logger:     logger,
		validate:   validator.New(),
		writeLocks: make(map[string]*sync.Mutex),
	}
}

func (s *ScenarioService) lockFor(scenarioID string) *sync.Mutex {
	s.writeLocksMu.Lock()
	defer s.writeLocksMu.Unlock()
	l, ok := s.writeLocks[scenarioID]
	if !ok {
		l = &sync.Mutex{}
		s.writeLocks[scenarioID] = l
	}
	return l
}

// CreateScenario deep-copies the request into domain values and persists a
// freshly-ided scenario with status "created". No semantic validation
// beyond structural typing is performed, per spec.md §4.1.
func (s *ScenarioService) CreateScenario(ctx context.Context, req dto.ScenarioCreateRequest) (*models.Scenario, error) {
	scenario := &models.Scenario{
		ID:                    uuid.NewString(),
		Revenue:               req.Revenue,
		FixedAssignments:      make([]models.FixedAssignment, 0, len(req.FixedAssignments)),
		Status:                models.ScenarioCreated,
	}

	for _, p := range req.Productions {
		scenario.Productions = append(scenario.Productions, models.Production{
			ID: p.ID, Title: p.Title, StageID: p.StageID, MaxShows: p.MaxShows, WeekendPriority: p.WeekendPriority,
		})
	}
	for _, st := range req.Stages {
		scenario.Stages = append(scenario.Stages, models.Stage{ID: st.ID, Name: st.Name})
	}
	for _, t := range req.Timeslots {
		scenario.Timeslots = append(scenario.Timeslots, models.Timeslot{
			ID: t.ID, StageID: t.StageID, Date: t.Date, DayOfWeek: t.DayOfWeek, StartTime: t.StartTime,
		})
	}
	for _, fa := range req.FixedAssignments {
		scenario.FixedAssignments = append(scenario.FixedAssignments, models.FixedAssignment{
			ProductionID: fa.ProductionID, TimeslotID: fa.TimeslotID, StageID: fa.StageID, Date: fa.Date, StartTime: fa.StartTime,
		})
	}
	for _, p := range req.People {
		scenario.People = append(scenario.People, models.Person{ID: p.ID, Name: p.Name, Email: p.Email})
	}
	for _, r := range req.Roles {
		scenario.Roles = append(scenario.Roles, models.Role{
			ID: r.ID, Name: r.Name, ProductionID: r.ProductionID, IsConductor: r.IsConductor, RequiredCount: r.RequiredCount,
		})
	}
	for _, ppr := range req.PersonProductionRoles {
		scenario.PersonProductionRoles = append(scenario.PersonProductionRoles, models.PersonProductionRole{
			PersonID: ppr.PersonID, ProductionID: ppr.ProductionID, RoleID: ppr.RoleID, CanPlay: ppr.CanPlay,
		})
	}

	scenario.Params = models.DefaultScenarioParams()
	if req.Params != nil {
		if req.Params.ObjectiveWeights != nil {
			scenario.Params.ObjectiveWeights = req.Params.ObjectiveWeights
		}
		if req.Params.TimeLimitSeconds > 0 {
			scenario.Params.TimeLimitSeconds = req.Params.TimeLimitSeconds
		}
		if req.Params.Constraints != nil {
			applyConstraintsOverride(&scenario.Params.Constraints, req.Params.Constraints)
		}
	}

	s.repo.SaveScenario(scenario)
	return scenario, nil
}

// Solve fetches the scenario, runs the solver then (on feasible/optimal)
// the role assigner, persists the result, and updates scenario status.
func (s *ScenarioService) Solve(ctx context.Context, scenarioID string, override *dto.ConstraintsIn) (*models.ScenarioResult, error) {
	lock := s.lockFor(scenarioID)
	lock.Lock()
	defer lock.Unlock()

	scenario, ok := s.repo.GetScenario(scenarioID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "scenario not found")
	}

	if override != nil {
		applyConstraintsOverride(&scenario.Params.Constraints, override)
	}

	scenario.Status = models.ScenarioSolving
	s.repo.SaveScenario(scenario)

	start := time.Now()
	schedule, objective, status, err := s.solver.Solve(ctx, scenario)
	duration := time.Since(start)
	if s.metrics != nil {
		s.metrics.ObserveSolve(duration, status, objective)
	}
	if err != nil {
		scenario.Status = models.ScenarioFailed
		s.repo.SaveScenario(scenario)
		return nil, err
	}

	result := &models.ScenarioResult{
		ScenarioID:     scenarioID,
		Schedule:       schedule,
		ObjectiveValue: objective,
		Status:         status,
	}

	if status != models.ResultInfeasible {
		result.Assignments = s.roles.Assign(scenario, schedule)
		if s.metrics != nil {
			s.metrics.ObserveRoleLoadSpread(loadSpread(result.Assignments))
		}
	}

	s.repo.SaveResult(result)

	if status == models.ResultInfeasible {
		scenario.Status = models.ScenarioFailed
	} else {
		scenario.Status = models.ScenarioSolved
	}
	s.repo.SaveScenario(scenario)

	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, "scenario:"+scenarioID+":*")
	}

	return result, nil
}

// GetStatus returns the scenario's current lifecycle status and, once
// solved, its objective value.
func (s *ScenarioService) GetStatus(ctx context.Context, scenarioID string) (dto.StatusResponse, error) {
	scenario, ok := s.repo.GetScenario(scenarioID)
	if !ok {
		return dto.StatusResponse{}, appErrors.Clone(appErrors.ErrNotFound, "scenario not found")
	}
	resp := dto.StatusResponse{ScenarioID: scenarioID, Status: string(scenario.Status)}
	if res, ok := s.repo.GetResult(scenarioID); ok {
		obj := res.ObjectiveValue
		resp.ObjectiveValue = &obj
	}
	return resp, nil
}

// GetSchedule returns the solved schedule and its role assignments.
func (s *ScenarioService) GetSchedule(ctx context.Context, scenarioID string) (dto.ScheduleResponse, error) {
	if _, ok := s.repo.GetScenario(scenarioID); !ok {
		return dto.ScheduleResponse{}, appErrors.Clone(appErrors.ErrNotFound, "scenario not found")
	}
	res, ok := s.repo.GetResult(scenarioID)
	if !ok {
		return dto.ScheduleResponse{}, appErrors.Clone(appErrors.ErrNotFound, "scenario has not been solved")
	}
	return toScheduleResponse(res), nil
}

// GetAssignments returns only the role assignments of a solved scenario.
func (s *ScenarioService) GetAssignments(ctx context.Context, scenarioID string) ([]dto.AssignmentOut, error) {
	res, ok := s.repo.GetResult(scenarioID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "scenario has not been solved")
	}
	return toAssignmentsOut(res.Assignments), nil
}

// Gantt builds the Europe/Moscow-localized visualization tasks for a
// solved scenario, per spec.md §6's gantt row.
func (s *ScenarioService) Gantt(ctx context.Context, scenarioID string) (dto.GanttResponse, error) {
	scenario, ok := s.repo.GetScenario(scenarioID)
	if !ok {
		return dto.GanttResponse{}, appErrors.Clone(appErrors.ErrNotFound, "scenario not found")
	}
	res, ok := s.repo.GetResult(scenarioID)
	if !ok {
		return dto.GanttResponse{}, appErrors.Clone(appErrors.ErrNotFound, "scenario has not been solved")
	}

	tasks := make([]dto.GanttTaskOut, 0, len(res.Schedule))
	for _, item := range res.Schedule {
		ts, okT := scenario.TimeslotByID(item.TimeslotID)
		if !okT {
			continue
		}
		start, err := calendar.Localize(ts.Date, ts.StartTime)
		if err != nil {
			continue
		}
		end := start.Add(calendar.ShowDuration)

		resource := item.StageID
		if st, okS := scenario.StageByID(item.StageID); okS && st.Name != "" {
			resource = st.Name
		}

		tasks = append(tasks, dto.GanttTaskOut{
			ID:       item.ID(),
			Resource: resource,
			Title:    item.ProductionID,
			Start:    start.Format(time.RFC3339),
			End:      end.Format(time.RFC3339),
		})
	}

	return dto.GanttResponse{Tasks: tasks}, nil
}

// AutoGenerateRoles generates a role set per production via
// internal/roletemplate, skipping any role id already present on the
// scenario, and returns only the newly created roles.
func (s *ScenarioService) AutoGenerateRoles(ctx context.Context, scenarioID string) ([]dto.RoleOut, error) {
	lock := s.lockFor(scenarioID)
	lock.Lock()
	defer lock.Unlock()

	scenario, ok := s.repo.GetScenario(scenarioID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "scenario not found")
	}

	existing := make(map[string]bool, len(scenario.Roles))
	for _, r := range scenario.Roles {
		existing[r.ID] = true
	}

	var created []models.Role
	for _, p := range scenario.Productions {
		for _, r := range roletemplate.Generate(p) {
			if existing[r.ID] {
				continue
			}
			existing[r.ID] = true
			created = append(created, r)
		}
	}

	scenario.Roles = append(scenario.Roles, created...)
	s.repo.SaveScenario(scenario)

	out := make([]dto.RoleOut, 0, len(created))
	for _, r := range created {
		out = append(out, dto.RoleOut{ID: r.ID, Name: r.Name, ProductionID: r.ProductionID, IsConductor: r.IsConductor, RequiredCount: r.RequiredCount})
	}
	return out, nil
}

// OverrideAssignment replaces the person on an existing (schedule_item_id,
// role_id) assignment, or appends a new Assignment when none exists yet,
// per spec.md §4.1 and SPEC_FULL.md's recovered semantics.
func (s *ScenarioService) OverrideAssignment(ctx context.Context, scenarioID string, req dto.AssignmentsOverrideRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid override payload")
	}

	lock := s.lockFor(scenarioID)
	lock.Lock()
	defer lock.Unlock()

	scenario, ok := s.repo.GetScenario(scenarioID)
	if !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "scenario not found")
	}
	result, ok := s.repo.GetResult(scenarioID)
	if !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "scenario has not been solved")
	}

	for i, a := range result.Assignments {
		if a.ScheduleItemID == req.ScheduleItemID && a.RoleID == req.RoleID {
			result.Assignments[i].PersonID = req.PersonID
			s.repo.SaveResult(result)
			if s.cache != nil {
				_ = s.cache.Invalidate(ctx, "scenario:"+scenarioID+":*")
			}
			return nil
		}
	}

	var item *models.ScheduleItem
	for i := range result.Schedule {
		if result.Schedule[i].ID() == req.ScheduleItemID {
			item = &result.Schedule[i]
			break
		}
	}
	if item == nil {
		return appErrors.Clone(appErrors.ErrBadRequest, "schedule item not found")
	}
	role, ok := scenario.RoleByID(req.RoleID)
	if !ok {
		return appErrors.Clone(appErrors.ErrBadRequest, "role not found")
	}

	result.Assignments = append(result.Assignments, models.Assignment{
		ScenarioID:     scenarioID,
		ScheduleItemID: item.ID(),
		ProductionID:   item.ProductionID,
		TimeslotID:     item.TimeslotID,
		StageID:        item.StageID,
		PersonID:       req.PersonID,
		RoleID:         role.ID,
		IsConductor:    role.IsConductor,
	})
	s.repo.SaveResult(result)
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, "scenario:"+scenarioID+":*")
	}
	return nil
}

// AddPerson appends a person, failing with Conflict on a duplicate id.
func (s *ScenarioService) AddPerson(ctx context.Context, scenarioID string, in dto.PersonIn) error {
	if err := s.validate.Struct(in); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid person payload")
	}

	lock := s.lockFor(scenarioID)
	lock.Lock()
	defer lock.Unlock()

	scenario, ok := s.repo.GetScenario(scenarioID)
	if !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "scenario not found")
	}
	if _, exists := scenario.PersonByID(in.ID); exists {
		return appErrors.Clone(appErrors.ErrConflict, fmt.Sprintf("person %s already exists", in.ID))
	}
	scenario.People = append(scenario.People, models.Person{ID: in.ID, Name: in.Name, Email: in.Email})
	s.repo.SaveScenario(scenario)
	return nil
}

// ListPeople returns every person on the scenario.
func (s *ScenarioService) ListPeople(ctx context.Context, scenarioID string) ([]dto.PersonOut, error) {
	scenario, ok := s.repo.GetScenario(scenarioID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "scenario not found")
	}
	out := make([]dto.PersonOut, 0, len(scenario.People))
	for _, p := range scenario.People {
		out = append(out, dto.PersonOut{ID: p.ID, Name: p.Name, Email: p.Email})
	}
	return out, nil
}

// RemovePerson deletes a person and cascades deletion of their
// PersonProductionRole edges.
func (s *ScenarioService) RemovePerson(ctx context.Context, scenarioID, personID string) error {
	lock := s.lockFor(scenarioID)
	lock.Lock()
	defer lock.Unlock()

	scenario, ok := s.repo.GetScenario(scenarioID)
	if !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "scenario not found")
	}
	found := false
	people := scenario.People[:0]
	for _, p := range scenario.People {
		if p.ID == personID {
			found = true
			continue
		}
		people = append(people, p)
	}
	if !found {
		return appErrors.Clone(appErrors.ErrNotFound, "person not found")
	}
	scenario.People = people

	ppr := scenario.PersonProductionRoles[:0]
	for _, edge := range scenario.PersonProductionRoles {
		if edge.PersonID == personID {
			continue
		}
		ppr = append(ppr, edge)
	}
	scenario.PersonProductionRoles = ppr

	s.repo.SaveScenario(scenario)
	return nil
}

// AddRole appends a role, failing with BadRequest on an unknown production
// or Conflict on a duplicate id.
func (s *ScenarioService) AddRole(ctx context.Context, scenarioID string, in dto.RoleIn) error {
	if err := s.validate.Struct(in); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid role payload")
	}

	lock := s.lockFor(scenarioID)
	lock.Lock()
	defer lock.Unlock()

	scenario, ok := s.repo.GetScenario(scenarioID)
	if !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "scenario not found")
	}
	if _, exists := scenario.ProductionByID(in.ProductionID); !exists {
		return appErrors.Clone(appErrors.ErrBadRequest, fmt.Sprintf("production %s not found", in.ProductionID))
	}
	for _, r := range scenario.Roles {
		if r.ID == in.ID {
			return appErrors.Clone(appErrors.ErrConflict, fmt.Sprintf("role %s already exists", in.ID))
		}
	}
	scenario.Roles = append(scenario.Roles, models.Role{
		ID: in.ID, Name: in.Name, ProductionID: in.ProductionID, IsConductor: in.IsConductor, RequiredCount: in.RequiredCount,
	})
	s.repo.SaveScenario(scenario)
	return nil
}

// ListRoles returns every role on the scenario, optionally filtered by
// production id.
func (s *ScenarioService) ListRoles(ctx context.Context, scenarioID, productionID string) ([]dto.RoleOut, error) {
	scenario, ok := s.repo.GetScenario(scenarioID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "scenario not found")
	}
	out := make([]dto.RoleOut, 0, len(scenario.Roles))
	for _, r := range scenario.Roles {
		if productionID != "" && r.ProductionID != productionID {
			continue
		}
		out = append(out, dto.RoleOut{ID: r.ID, Name: r.Name, ProductionID: r.ProductionID, IsConductor: r.IsConductor, RequiredCount: r.RequiredCount})
	}
	return out, nil
}

// RemoveRole deletes a role and cascades deletion of its
// PersonProductionRole edges.
func (s *ScenarioService) RemoveRole(ctx context.Context, scenarioID, roleID string) error {
	lock := s.lockFor(scenarioID)
	lock.Lock()
	defer lock.Unlock()

	scenario, ok := s.repo.GetScenario(scenarioID)
	if !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "scenario not found")
	}
	found := false
	roles := scenario.Roles[:0]
	for _, r := range scenario.Roles {
		if r.ID == roleID {
			found = true
			continue
		}
		roles = append(roles, r)
	}
	if !found {
		return appErrors.Clone(appErrors.ErrNotFound, "role not found")
	}
	scenario.Roles = roles

	ppr := scenario.PersonProductionRoles[:0]
	for _, edge := range scenario.PersonProductionRoles {
		if edge.RoleID == roleID {
			continue
		}
		ppr = append(ppr, edge)
	}
	scenario.PersonProductionRoles = ppr

	s.repo.SaveScenario(scenario)
	return nil
}

// UpsertPersonProductionRole removes any existing edge matching the same
// (person_id, production_id, role_id) triple, then appends the new one.
func (s *ScenarioService) UpsertPersonProductionRole(ctx context.Context, scenarioID string, in dto.PersonProductionRoleIn) error {
	if err := s.validate.Struct(in); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid person-production-role payload")
	}

	lock := s.lockFor(scenarioID)
	lock.Lock()
	defer lock.Unlock()

	scenario, ok := s.repo.GetScenario(scenarioID)
	if !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "scenario not found")
	}
	if _, exists := scenario.PersonByID(in.PersonID); !exists {
		return appErrors.Clone(appErrors.ErrBadRequest, fmt.Sprintf("person %s not found", in.PersonID))
	}
	if _, exists := scenario.ProductionByID(in.ProductionID); !exists {
		return appErrors.Clone(appErrors.ErrBadRequest, fmt.Sprintf("production %s not found", in.ProductionID))
	}
	if _, exists := scenario.RoleByID(in.RoleID); !exists {
		return appErrors.Clone(appErrors.ErrBadRequest, fmt.Sprintf("role %s not found", in.RoleID))
	}

	edges := scenario.PersonProductionRoles[:0]
	for _, edge := range scenario.PersonProductionRoles {
		if edge.PersonID == in.PersonID && edge.ProductionID == in.ProductionID && edge.RoleID == in.RoleID {
			continue
		}
		edges = append(edges, edge)
	}
	edges = append(edges, models.PersonProductionRole{
		PersonID: in.PersonID, ProductionID: in.ProductionID, RoleID: in.RoleID, CanPlay: in.CanPlay,
	})
	scenario.PersonProductionRoles = edges

	s.repo.SaveScenario(scenario)
	return nil
}

// ListPersonProductionRoles returns every eligibility edge on the scenario.
func (s *ScenarioService) ListPersonProductionRoles(ctx context.Context, scenarioID string) ([]dto.PersonProductionRoleOut, error) {
	scenario, ok := s.repo.GetScenario(scenarioID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "scenario not found")
	}
	out := make([]dto.PersonProductionRoleOut, 0, len(scenario.PersonProductionRoles))
	for _, edge := range scenario.PersonProductionRoles {
		out = append(out, dto.PersonProductionRoleOut{
			PersonID: edge.PersonID, ProductionID: edge.ProductionID, RoleID: edge.RoleID, CanPlay: edge.CanPlay,
		})
	}
	return out, nil
}

func applyConstraintsOverride(dst *models.Constraints, in *dto.ConstraintsIn) {
	if in.OneProductionPerTimeslot != nil {
		dst.OneProductionPerTimeslot = *in.OneProductionPerTimeslot
	}
	if in.ExactShowsCount != nil {
		dst.ExactShowsCount = *in.ExactShowsCount
	}
	if in.ConsecutiveShows != nil {
		dst.ConsecutiveShows = *in.ConsecutiveShows
	}
	if in.MondayOff != nil {
		dst.MondayOff = *in.MondayOff
	}
	if in.WeekendAlwaysShow != nil {
		dst.WeekendAlwaysShow = *in.WeekendAlwaysShow
	}
	if in.SameShowWeekend != nil {
		dst.SameShowWeekend = *in.SameShowWeekend
	}
	if in.BreakBetweenDifferentShows != nil {
		dst.BreakBetweenDifferentShows = *in.BreakBetweenDifferentShows
	}
	if in.WeekendPriorityBonus != nil {
		dst.WeekendPriorityBonus = *in.WeekendPriorityBonus
	}
}

func toScheduleResponse(res *models.ScenarioResult) dto.ScheduleResponse {
	items := make([]dto.ScheduleItemOut, 0, len(res.Schedule))
	for _, item := range res.Schedule {
		items = append(items, dto.ScheduleItemOut{
			ProductionID: item.ProductionID, StageID: item.StageID, TimeslotID: item.TimeslotID, Revenue: item.Revenue,
		})
	}
	return dto.ScheduleResponse{Schedule: items, Assignments: toAssignmentsOut(res.Assignments)}
}

// loadSpread returns the gap between the busiest and idlest person's
// assignment count, or 0 when there are no assignments.
func loadSpread(assignments []models.Assignment) int {
	load := make(map[string]int)
	for _, a := range assignments {
		load[a.PersonID]++
	}
	if len(load) == 0 {
		return 0
	}
	min, max := -1, 0
	for _, n := range load {
		if min == -1 || n < min {
			min = n
		}
		if n > max {
			max = n
		}
	}
	return max - min
}

func toAssignmentsOut(assignments []models.Assignment) []dto.AssignmentOut {
	out := make([]dto.AssignmentOut, 0, len(assignments))
	for _, a := range assignments {
		out = append(out, dto.AssignmentOut{
			ScheduleItemID: a.ScheduleItemID, ProductionID: a.ProductionID, TimeslotID: a.TimeslotID,
			StageID: a.StageID, PersonID: a.PersonID, RoleID: a.RoleID, IsConductor: a.IsConductor,
		})
	}
	return out
}
