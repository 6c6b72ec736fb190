package models

// FixedAssignment is an operator-pinned (production, timeslot) pair the
// solver must honor. StageID/Date/StartTime are carried for convenience at
// the transport boundary but StageID must match both the production's and
// the timeslot's stage for the pin to be meaningful.
type FixedAssignment struct {
	ProductionID string `json:"production_id"`
	TimeslotID   string `json:"timeslot_id"`
	StageID      string `json:"stage_id"`
	Date         string `json:"date"`
	StartTime    string `json:"start_time"`
}
