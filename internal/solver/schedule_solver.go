package solver

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/noah-isme/theater-scheduler/internal/models"
	appErrors "github.com/noah-isme/theater-scheduler/pkg/errors"
)

// Weights for the soft objective terms, fixed per spec.md §4.4.
const (
	weightWeekendPriority = 100
	weightWeekendEmpty    = -1
	weightAdjacency       = -50
)

// ScheduleSolver builds the boolean model for a Scenario and reads the
// schedule back from a Backend's solution. The problem is block-diagonal
// by stage (no variable, constraint, or objective term ever couples two
// different stages — production/timeslot pairs across stages never share
// a variable), so each stage is modeled and solved independently and the
// per-stage results are concatenated; this is an exact decomposition, not
// an approximation.
type ScheduleSolver struct {
	backend Backend
	workers int
}

// NewScheduleSolver constructs a solver using the given backend and
// worker count (spec.md §4.4's "parallel search permitted, e.g. 8
// workers").
func NewScheduleSolver(backend Backend, workers int) *ScheduleSolver {
	if backend == nil {
		backend = NewBackend()
	}
	if workers <= 0 {
		workers = 8
	}
	return &ScheduleSolver{backend: backend, workers: workers}
}

type stageVar struct {
	production models.Production
	timeslot   models.Timeslot
	v          *BoolVar
}

// Solve builds and solves the model for scenario, returning the schedule
// sorted by (timeslot_id, stage_id, production_id) and the status/
// objective a spec.md §4.4-compliant backend would report. Returns
// appErrors.ErrInconsistentInput (wrapped) when a FixedAssignment pins a
// variable that cannot exist, or a production has zero candidate slots
// but max_shows ≥ 1.
func (s *ScheduleSolver) Solve(ctx context.Context, scenario *models.Scenario) ([]models.ScheduleItem, float64, models.ResultStatus, error) {
	timeLimit := time.Duration(maxFloat(1, scenario.Params.TimeLimitSeconds) * float64(time.Second))

	stageIDs := distinctStageIDs(scenario)

	var allItems []models.ScheduleItem
	totalObjective := 0.0
	overallStatus := models.ResultOptimal

	for _, stageID := range stageIDs {
		items, objective, status, err := s.solveStage(ctx, scenario, stageID, timeLimit)
		if err != nil {
			return nil, 0, "", err
		}
		if status == models.ResultInfeasible {
			return nil, 0, models.ResultInfeasible, nil
		}
		if status == models.ResultFeasible {
			overallStatus = models.ResultFeasible
		}
		allItems = append(allItems, items...)
		totalObjective += objective
	}

	sort.Slice(allItems, func(i, j int) bool {
		a, b := allItems[i], allItems[j]
		if a.TimeslotID != b.TimeslotID {
			return a.TimeslotID < b.TimeslotID
		}
		if a.StageID != b.StageID {
			return a.StageID < b.StageID
		}
		return a.ProductionID < b.ProductionID
	})

	return allItems, totalObjective, overallStatus, nil
}

func (s *ScheduleSolver) solveStage(ctx context.Context, scenario *models.Scenario, stageID string, timeLimit time.Duration) ([]models.ScheduleItem, float64, models.ResultStatus, error) {
	productions := productionsForStage(scenario, stageID)
	slots := timeslotsForStage(scenario, stageID)
	sort.Slice(slots, func(i, j int) bool {
		if slots[i].Date != slots[j].Date {
			return slots[i].Date < slots[j].Date
		}
		return slots[i].StartTime < slots[j].StartTime
	})

	if len(productions) == 0 || len(slots) == 0 {
		for _, p := range productions {
			if p.MaxShows >= 1 {
				return nil, 0, "", appErrors.Wrap(
					fmt.Errorf("production %s has zero candidate slots on stage %s", p.ID, stageID),
					appErrors.ErrInconsistentInput.Code, appErrors.ErrInconsistentInput.Status,
					fmt.Sprintf("production %s has no timeslots on its stage", p.ID))
			}
		}
		return nil, 0, models.ResultOptimal, nil
	}

	m := NewModel()

	vars := make(map[string]map[string]*stageVar, len(productions))
	for _, p := range productions {
		vars[p.ID] = make(map[string]*stageVar, len(slots))
		for _, t := range slots {
			bv := m.NewBoolVar(fmt.Sprintf("x[%s,%s]", p.ID, t.ID))
			vars[p.ID][t.ID] = &stageVar{production: p, timeslot: t, v: bv}
		}
	}

	constraints := scenario.Params.Constraints

	// Fixed pins.
	for _, fa := range scenario.FixedAssignments {
		prod, okP := scenario.ProductionByID(fa.ProductionID)
		ts, okT := scenario.TimeslotByID(fa.TimeslotID)
		if !okP || !okT || prod.StageID != ts.StageID {
			return nil, 0, "", appErrors.Wrap(
				fmt.Errorf("fixed assignment %s/%s is inconsistent", fa.ProductionID, fa.TimeslotID),
				appErrors.ErrInconsistentInput.Code, appErrors.ErrInconsistentInput.Status,
				"fixed assignment references an unknown or stage-mismatched production/timeslot")
		}
		if prod.StageID != stageID {
			continue
		}
		sv, ok := vars[prod.ID][ts.ID]
		if !ok {
			return nil, 0, "", appErrors.Wrap(
				fmt.Errorf("fixed assignment %s/%s has no matching decision variable", fa.ProductionID, fa.TimeslotID),
				appErrors.ErrInconsistentInput.Code, appErrors.ErrInconsistentInput.Status,
				"fixed assignment pins a variable that does not exist")
		}
		m.Fix(sv.v, 1)
	}

	// Slot uniqueness: always enforced.
	for _, t := range slots {
		terms := make(map[*BoolVar]int, len(productions))
		for _, p := range productions {
			terms[vars[p.ID][t.ID].v] = 1
		}
		m.AddLessOrEqual(terms, 1)
	}

	// Monday off.
	if constraints.MondayOff {
		for _, t := range slots {
			if t.DayOfWeek == models.Monday {
				for _, p := range productions {
					m.Fix(vars[p.ID][t.ID].v, 0)
				}
			}
		}
	}

	// Exact show count / consecutive-run.
	for _, p := range productions {
		prodVars := make([]*BoolVar, len(slots))
		for i, t := range slots {
			prodVars[i] = vars[p.ID][t.ID].v
		}

		exact := make(map[*BoolVar]int, len(prodVars))
		for _, v := range prodVars {
			exact[v] = 1
		}
		m.AddEqual(exact, p.MaxShows)

		if p.MaxShows == 0 {
			for _, v := range prodVars {
				m.Fix(v, 0)
			}
			continue
		}

		if constraints.ConsecutiveShows {
			addConsecutiveRun(m, prodVars, p.MaxShows)
		}
	}

	// Soft terms.
	for _, p := range productions {
		if p.WeekendPriority && constraints.WeekendPriorityBonus {
			for _, t := range slots {
				if models.IsWeekend(t.DayOfWeek) {
					m.AddObjectiveTerm(vars[p.ID][t.ID].v, weightWeekendPriority)
				}
			}
		}
	}

	weekendEmptyConstant := 0
	if constraints.WeekendAlwaysShow {
		for _, t := range slots {
			if !models.IsWeekend(t.DayOfWeek) {
				continue
			}
			// weekend_empty_penalty(t) = weightWeekendEmpty * (1 - Σ_p x[p,t]).
			// The Σx part is a normal objective term; the constant part
			// is accumulated here and folded into the stage objective
			// once the backend returns, since Model carries no constant
			// offset.
			weekendEmptyConstant += weightWeekendEmpty
			for _, p := range productions {
				m.AddObjectiveTerm(vars[p.ID][t.ID].v, -weightWeekendEmpty)
			}
		}
	}

	if constraints.BreakBetweenDifferentShows {
		addAdjacencyPenalty(m, productions, slots, vars)
	}

	backendResult := s.backend.Solve(ctx, m, timeLimit, s.workers)

	switch backendResult.Status {
	case StatusInfeasible, StatusUnknown:
		return nil, 0, models.ResultInfeasible, nil
	}

	var items []models.ScheduleItem
	for _, p := range productions {
		for _, t := range slots {
			sv := vars[p.ID][t.ID]
			if backendResult.Values[sv.v.index] == 1 {
				items = append(items, models.ScheduleItem{
					ScenarioID:   scenario.ID,
					ProductionID: p.ID,
					StageID:      stageID,
					TimeslotID:   t.ID,
					Revenue:      0.0,
				})
			}
		}
	}

	status := models.ResultFeasible
	if backendResult.Status == StatusOptimal {
		status = models.ResultOptimal
	}

	return items, float64(backendResult.Objective + weekendEmptyConstant), status, nil
}

// addConsecutiveRun introduces start_{i} booleans for every legal window
// start and forces exactly one window of length maxShows to be chosen,
// per spec.md §4.4 constraint 6.
func addConsecutiveRun(m *Model, prodVars []*BoolVar, maxShows int) {
	n := len(prodVars)
	if maxShows > n {
		// No legal window exists; the exact-count equality constraint
		// added by the caller already makes this branch of the model
		// unsatisfiable, which the backend will correctly report as
		// INFEASIBLE rather than this function raising an error.
		return
	}
	var starts []*BoolVar
	for i := 0; i+maxShows <= n; i++ {
		start := m.NewBoolVar(fmt.Sprintf("start_%d", i))
		starts = append(starts, start)
		for j := 0; j < maxShows; j++ {
			m.AddImplication(start, prodVars[i+j])
		}
	}
	if len(starts) == 0 {
		return
	}
	sumStarts := make(map[*BoolVar]int, len(starts))
	for _, st := range starts {
		sumStarts[st] = 1
	}
	m.AddEqual(sumStarts, 1)
}

// addAdjacencyPenalty linearizes the break-between-different-shows penalty
// for every pair of chronologically adjacent slots on one stage, per
// spec.md §4.4's both_assigned/same_production encoding.
func addAdjacencyPenalty(m *Model, productions []models.Production, slots []models.Timeslot, vars map[string]map[string]*stageVar) {
	for i := 0; i+1 < len(slots); i++ {
		t1, t2 := slots[i], slots[i+1]

		aSum := make(map[*BoolVar]int, len(productions))
		bSum := make(map[*BoolVar]int, len(productions))
		for _, p := range productions {
			aSum[vars[p.ID][t1.ID].v] = 1
			bSum[vars[p.ID][t2.ID].v] = 1
		}
		a := m.NewBoolVar(fmt.Sprintf("slotA_%d", i))
		b := m.NewBoolVar(fmt.Sprintf("slotB_%d", i))
		m.AddEqual(addSelf(aSum, a, -1), 0)
		m.AddEqual(addSelf(bSum, b, -1), 0)

		z := m.NewBoolVar(fmt.Sprintf("both_assigned_%d", i))
		m.AddBoolAnd(z, a, b)
		m.AddObjectiveTerm(z, weightAdjacency)

		for _, p := range productions {
			y := m.NewBoolVar(fmt.Sprintf("same_production_%s_%d", p.ID, i))
			m.AddBoolAnd(y, vars[p.ID][t1.ID].v, vars[p.ID][t2.ID].v)
			m.AddObjectiveTerm(y, -weightAdjacency)
		}
	}
}

func addSelf(terms map[*BoolVar]int, v *BoolVar, coeff int) map[*BoolVar]int {
	terms[v] = coeff
	return terms
}

func distinctStageIDs(scenario *models.Scenario) []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, st := range scenario.Stages {
		if _, ok := seen[st.ID]; !ok {
			seen[st.ID] = struct{}{}
			ids = append(ids, st.ID)
		}
	}
	for _, p := range scenario.Productions {
		if _, ok := seen[p.StageID]; !ok {
			seen[p.StageID] = struct{}{}
			ids = append(ids, p.StageID)
		}
	}
	return ids
}

func productionsForStage(scenario *models.Scenario, stageID string) []models.Production {
	var out []models.Production
	for _, p := range scenario.Productions {
		if p.StageID == stageID {
			out = append(out, p)
		}
	}
	return out
}

func timeslotsForStage(scenario *models.Scenario, stageID string) []models.Timeslot {
	var out []models.Timeslot
	for _, t := range scenario.Timeslots {
		if t.StageID == stageID {
			out = append(out, t)
		}
	}
	return out
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
