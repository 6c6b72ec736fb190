package models

// Role is a named position required by a production's shows, e.g. a
// conductor or a named character.
type Role struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ProductionID  string `json:"production_id"`
	IsConductor   bool   `json:"is_conductor"`
	RequiredCount int    `json:"required_count"`
}

// PersonProductionRole is an eligibility edge: CanPlay=true means Person
// may fill Role for Production. Keyed by the (PersonID, ProductionID,
// RoleID) triple; absence of an edge is equivalent to CanPlay=false.
type PersonProductionRole struct {
	PersonID     string `json:"person_id"`
	ProductionID string `json:"production_id"`
	RoleID       string `json:"role_id"`
	CanPlay      bool   `json:"can_play"`
}
