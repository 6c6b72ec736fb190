package models

// Stage is an opaque venue identifier within the theater. A Production is
// pinned to exactly one Stage for its entire lifetime in a Scenario.
type Stage struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
