package models

// ScenarioStatus enumerates the lifecycle of a Scenario.
type ScenarioStatus string

const (
	ScenarioCreated ScenarioStatus = "created"
	ScenarioSolving ScenarioStatus = "solving"
	ScenarioSolved  ScenarioStatus = "solved"
	ScenarioFailed  ScenarioStatus = "failed"
)

// Scenario exclusively owns the entities that make up one scheduling
// problem instance: its productions, stages, timeslots, fixed pins, and
// personnel tables. A Scenario's lifetime is independent of any
// ScenarioResult computed from it.
type Scenario struct {
	ID               string                 `json:"id"`
	Productions      []Production           `json:"productions"`
	Stages           []Stage                `json:"stages"`
	Timeslots        []Timeslot             `json:"timeslots"`
	Revenue          map[string]float64     `json:"revenue"`
	Params           ScenarioParams         `json:"params"`
	FixedAssignments []FixedAssignment      `json:"fixed_assignments"`
	Status           ScenarioStatus         `json:"status"`
	People           []Person               `json:"people"`
	Roles            []Role                 `json:"roles"`
	PersonProductionRoles []PersonProductionRole `json:"person_production_roles"`
}

// StageByID returns the stage with the given id, if present.
func (s *Scenario) StageByID(id string) (Stage, bool) {
	for _, st := range s.Stages {
		if st.ID == id {
			return st, true
		}
	}
	return Stage{}, false
}

// ProductionByID returns the production with the given id, if present.
func (s *Scenario) ProductionByID(id string) (Production, bool) {
	for _, p := range s.Productions {
		if p.ID == id {
			return p, true
		}
	}
	return Production{}, false
}

// TimeslotByID returns the timeslot with the given id, if present.
func (s *Scenario) TimeslotByID(id string) (Timeslot, bool) {
	for _, t := range s.Timeslots {
		if t.ID == id {
			return t, true
		}
	}
	return Timeslot{}, false
}

// RoleByID returns the role with the given id, if present.
func (s *Scenario) RoleByID(id string) (Role, bool) {
	for _, r := range s.Roles {
		if r.ID == id {
			return r, true
		}
	}
	return Role{}, false
}

// PersonByID returns the person with the given id, if present.
func (s *Scenario) PersonByID(id string) (Person, bool) {
	for _, p := range s.People {
		if p.ID == id {
			return p, true
		}
	}
	return Person{}, false
}
