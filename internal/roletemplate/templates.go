// Package roletemplate generates a production's default role set from its
// title. spec.md §9 is explicit that this belongs in a systems language as
// a static lookup table, not a branch chain; the table and the known
// titles are recovered from original_source/theater_sched/services/
// role_generator.py.
package roletemplate

import (
	"strings"

	"github.com/noah-isme/theater-scheduler/internal/models"
)

// roleTemplate is one named, non-conductor character role a known
// production contributes, keyed by normalized title substring.
type roleTemplate struct {
	idSuffix string
	name     string
}

var titleRoleTemplates = map[string][]roleTemplate{
	"nutcracker": {
		{idSuffix: "clara", name: "Clara"},
		{idSuffix: "nutcracker_prince", name: "Nutcracker Prince"},
		{idSuffix: "mouse_king", name: "Mouse King"},
		{idSuffix: "drosselmeyer", name: "Drosselmeyer"},
	},
	"aida": {
		{idSuffix: "aida", name: "Aida"},
		{idSuffix: "radames", name: "Radames"},
		{idSuffix: "amneris", name: "Amneris"},
		{idSuffix: "amonasro", name: "Amonasro"},
	},
	"swan lake": {
		{idSuffix: "odette_odile", name: "Odette/Odile"},
		{idSuffix: "prince_siegfried", name: "Prince Siegfried"},
		{idSuffix: "von_rothbart", name: "Von Rothbart"},
	},
	"onegin": {
		{idSuffix: "onegin", name: "Eugene Onegin"},
		{idSuffix: "tatyana", name: "Tatyana"},
		{idSuffix: "lensky", name: "Lensky"},
		{idSuffix: "olga", name: "Olga"},
	},
	"carmen": {
		{idSuffix: "carmen", name: "Carmen"},
		{idSuffix: "don_jose", name: "Don Jose"},
		{idSuffix: "escamillo", name: "Escamillo"},
		{idSuffix: "micaela", name: "Micaela"},
	},
	"sleeping beauty": {
		{idSuffix: "aurora", name: "Princess Aurora"},
		{idSuffix: "prince_desire", name: "Prince Desire"},
		{idSuffix: "carabosse", name: "Carabosse"},
		{idSuffix: "lilac_fairy", name: "Lilac Fairy"},
	},
}

// Generate builds the default role set for a production: a conductor role
// always comes first, followed by any named character roles the
// production's title matches in titleRoleTemplates. Matching is by
// lowercased substring, same as the original lookup.
func Generate(production models.Production) []models.Role {
	roles := []models.Role{
		{
			ID:            production.ID + "_conductor",
			Name:          "Conductor",
			ProductionID:  production.ID,
			IsConductor:   true,
			RequiredCount: 1,
		},
	}

	title := strings.ToLower(production.Title)
	for substr, templates := range titleRoleTemplates {
		if !strings.Contains(title, substr) {
			continue
		}
		for _, t := range templates {
			roles = append(roles, models.Role{
				ID:            production.ID + "_" + t.idSuffix,
				Name:          t.name,
				ProductionID:  production.ID,
				IsConductor:   false,
				RequiredCount: 1,
			})
		}
	}

	return roles
}
