// Package dto holds the transport-boundary request/response shapes.
// These are intentionally loosely constrained compared to internal/models:
// the orchestrator (internal/service) is responsible for projecting a
// validated DTO into a total domain value.
package dto

// ProductionIn is the transport shape for a Production.
type ProductionIn struct {
	ID              string `json:"id" validate:"required"`
	Title           string `json:"title" validate:"required"`
	StageID         string `json:"stage_id" validate:"required"`
	MaxShows        int    `json:"max_shows" validate:"required,min=1"`
	WeekendPriority bool   `json:"weekend_priority"`
}

// StageIn is the transport shape for a Stage.
type StageIn struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name"`
}

// TimeslotIn is the transport shape for a Timeslot.
type TimeslotIn struct {
	ID        string `json:"id" validate:"required"`
	StageID   string `json:"stage_id" validate:"required"`
	Date      string `json:"date" validate:"required"`
	DayOfWeek int    `json:"day_of_week" validate:"min=0,max=6"`
	StartTime string `json:"start_time" validate:"required"`
}

// FixedAssignmentIn is the transport shape for a FixedAssignment.
type FixedAssignmentIn struct {
	ProductionID string `json:"production_id" validate:"required"`
	TimeslotID   string `json:"timeslot_id" validate:"required"`
	StageID      string `json:"stage_id"`
	Date         string `json:"date"`
	StartTime    string `json:"start_time"`
}

// ConstraintsIn is the transport shape for the Constraints toggle set. A
// zero-value (unsent) field is treated by the orchestrator as "use the
// default" only during create_scenario; an explicit solve-time override
// (SolveRequest.Constraints) is applied as given.
type ConstraintsIn struct {
	OneProductionPerTimeslot   *bool `json:"one_production_per_timeslot"`
	ExactShowsCount            *bool `json:"exact_shows_count"`
	ConsecutiveShows           *bool `json:"consecutive_shows"`
	MondayOff                  *bool `json:"monday_off"`
	WeekendAlwaysShow          *bool `json:"weekend_always_show"`
	SameShowWeekend            *bool `json:"same_show_weekend"`
	BreakBetweenDifferentShows *bool `json:"break_between_different_shows"`
	WeekendPriorityBonus       *bool `json:"weekend_priority_bonus"`
}

// ParamsIn is the transport shape for ScenarioParams.
type ParamsIn struct {
	ObjectiveWeights map[string]float64 `json:"objective_weights"`
	TimeLimitSeconds float64            `json:"time_limit_seconds"`
	Constraints      *ConstraintsIn     `json:"constraints"`
}

// PersonIn is the transport shape for a Person.
type PersonIn struct {
	ID    string `json:"id" validate:"required"`
	Name  string `json:"name" validate:"required"`
	Email string `json:"email"`
}

// RoleIn is the transport shape for a Role.
type RoleIn struct {
	ID            string `json:"id" validate:"required"`
	Name          string `json:"name" validate:"required"`
	ProductionID  string `json:"production_id" validate:"required"`
	IsConductor   bool   `json:"is_conductor"`
	RequiredCount int    `json:"required_count" validate:"min=0"`
}

// PersonProductionRoleIn is the transport shape for a PersonProductionRole.
type PersonProductionRoleIn struct {
	PersonID     string `json:"person_id" validate:"required"`
	ProductionID string `json:"production_id" validate:"required"`
	RoleID       string `json:"role_id" validate:"required"`
	CanPlay      bool   `json:"can_play"`
}

// ScenarioCreateRequest is the body of create_scenario.
type ScenarioCreateRequest struct {
	Productions      []ProductionIn           `json:"productions"`
	Stages           []StageIn                `json:"stages"`
	Timeslots        []TimeslotIn             `json:"timeslots"`
	Revenue          map[string]float64       `json:"revenue"`
	Params           *ParamsIn                `json:"params"`
	FixedAssignments []FixedAssignmentIn      `json:"fixed_assignments"`
	People           []PersonIn               `json:"people"`
	Roles            []RoleIn                 `json:"roles"`
	PersonProductionRoles []PersonProductionRoleIn `json:"person_production_roles"`
}

// ScenarioCreateResponse is the response of create_scenario.
type ScenarioCreateResponse struct {
	ScenarioID string `json:"scenario_id"`
	Status     string `json:"status"`
}

// SolveRequest is the optional body of solve(scenario_id).
type SolveRequest struct {
	Constraints *ConstraintsIn `json:"constraints"`
}

// SolveResponse is the response of solve(scenario_id).
type SolveResponse struct {
	ScenarioID     string  `json:"scenario_id"`
	Status         string  `json:"status"`
	ObjectiveValue float64 `json:"objective_value"`
}

// StatusResponse is the response of status(scenario_id).
type StatusResponse struct {
	ScenarioID     string   `json:"scenario_id"`
	Status         string   `json:"status"`
	ObjectiveValue *float64 `json:"objective_value,omitempty"`
}

// ScheduleItemOut is one emitted schedule decision.
type ScheduleItemOut struct {
	ProductionID string  `json:"production_id"`
	StageID      string  `json:"stage_id"`
	TimeslotID   string  `json:"timeslot_id"`
	Revenue      float64 `json:"revenue"`
}

// AssignmentOut is one emitted personnel placement.
type AssignmentOut struct {
	ScheduleItemID string `json:"schedule_item_id"`
	ProductionID   string `json:"production_id"`
	TimeslotID     string `json:"timeslot_id"`
	StageID        string `json:"stage_id"`
	PersonID       string `json:"person_id"`
	RoleID         string `json:"role_id"`
	IsConductor    bool   `json:"is_conductor"`
}

// ScheduleResponse is the response of schedule(scenario_id).
type ScheduleResponse struct {
	Schedule    []ScheduleItemOut `json:"schedule"`
	Assignments []AssignmentOut   `json:"assignments"`
}

// AssignmentsOverrideRequest is the body of the manual assignment override.
type AssignmentsOverrideRequest struct {
	ScheduleItemID string `json:"schedule_item_id" validate:"required"`
	PersonID       string `json:"person_id" validate:"required"`
	RoleID         string `json:"role_id" validate:"required"`
}

// GanttTaskOut is one task in the Gantt projection.
type GanttTaskOut struct {
	ID       string `json:"id"`
	Resource string `json:"resource"`
	Title    string `json:"title"`
	Start    string `json:"start"`
	End      string `json:"end"`
}

// GanttResponse is the response of gantt(scenario_id).
type GanttResponse struct {
	Tasks []GanttTaskOut `json:"tasks"`
}

// AutoGenerateRolesResponse is the response of auto_generate_roles.
type AutoGenerateRolesResponse struct {
	Generated []RoleOut `json:"generated"`
	Count     int       `json:"count"`
}

// RoleOut is the transport shape for a Role in responses.
type RoleOut struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ProductionID  string `json:"production_id"`
	IsConductor   bool   `json:"is_conductor"`
	RequiredCount int    `json:"required_count"`
}

// PersonOut is the transport shape for a Person in responses.
type PersonOut struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// PersonProductionRoleOut is the transport shape for a PersonProductionRole
// in responses.
type PersonProductionRoleOut struct {
	PersonID     string `json:"person_id"`
	ProductionID string `json:"production_id"`
	RoleID       string `json:"role_id"`
	CanPlay      bool   `json:"can_play"`
}
