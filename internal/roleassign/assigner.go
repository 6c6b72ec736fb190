// Package roleassign implements the deterministic, load-balanced
// distribution of eligible people across the roles required by each
// scheduled show (spec.md §4.5). It is a greedy round-robin pass, not a
// solver: there is no backtracking and no attempt to avoid placing one
// person in two roles of the same show (spec.md §9 flags that as an
// accepted limitation).
package roleassign

import (
	"sort"

	"github.com/noah-isme/theater-scheduler/internal/models"
)

// Assigner distributes people to roles for a solved schedule.
type Assigner struct{}

// New constructs a role Assigner.
func New() *Assigner {
	return &Assigner{}
}

// Assign implements spec.md §4.5 steps 1-5 against scenario and the
// ordered schedule produced by the solver. Output preserves append order;
// no per-show role-clash check is performed.
func (a *Assigner) Assign(scenario *models.Scenario, schedule []models.ScheduleItem) []models.Assignment {
	rolesByProduction := make(map[string][]models.Role)
	for _, r := range scenario.Roles {
		rolesByProduction[r.ProductionID] = append(rolesByProduction[r.ProductionID], r)
	}

	canPlay := make(map[string]bool, len(scenario.PersonProductionRoles))
	for _, ppr := range scenario.PersonProductionRoles {
		if ppr.CanPlay {
			canPlay[ppr.PersonID+"|"+ppr.ProductionID+"|"+ppr.RoleID] = true
		}
	}

	load := make(map[string]int, len(scenario.People))
	for _, p := range scenario.People {
		load[p.ID] = 0
	}

	itemsByProduction := make(map[string][]models.ScheduleItem)
	var productionOrder []string
	seenProduction := make(map[string]bool)
	for _, item := range schedule {
		itemsByProduction[item.ProductionID] = append(itemsByProduction[item.ProductionID], item)
		if !seenProduction[item.ProductionID] {
			seenProduction[item.ProductionID] = true
			productionOrder = append(productionOrder, item.ProductionID)
		}
	}

	var assignments []models.Assignment

	for _, productionID := range productionOrder {
		items := itemsByProduction[productionID]
		for _, role := range rolesByProduction[productionID] {
			eligible := eligiblePeople(scenario.People, canPlay, productionID, role.ID)
			if len(eligible) == 0 {
				continue
			}
			sortByLoad(eligible, load)

			idx := 0
			for _, item := range items {
				for c := 0; c < role.RequiredCount; c++ {
					person := eligible[idx%len(eligible)]
					assignments = append(assignments, models.Assignment{
						ScenarioID:     scenario.ID,
						ScheduleItemID: item.ID(),
						ProductionID:   item.ProductionID,
						TimeslotID:     item.TimeslotID,
						StageID:        item.StageID,
						PersonID:       person.ID,
						RoleID:         role.ID,
						IsConductor:    role.IsConductor,
					})
					load[person.ID]++
					idx++
				}
			}

			// Re-sort so the next role (not the current one already
			// emitted above) sees updated load, per spec.md §4.5 step 5d.
			sortByLoad(eligible, load)
		}
	}

	return assignments
}

func eligiblePeople(people []models.Person, canPlay map[string]bool, productionID, roleID string) []models.Person {
	var eligible []models.Person
	for _, p := range people {
		if canPlay[p.ID+"|"+productionID+"|"+roleID] {
			eligible = append(eligible, p)
		}
	}
	return eligible
}

// sortByLoad performs a stable ascending sort of eligible by current load,
// preserving scenario.People iteration order as the tiebreak (stable sort
// over a slice already in that order achieves this).
func sortByLoad(eligible []models.Person, load map[string]int) {
	sort.SliceStable(eligible, func(i, j int) bool {
		return load[eligible[i].ID] < load[eligible[j].ID]
	})
}
