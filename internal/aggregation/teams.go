package aggregation

import (
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/salesboard/pkg/enums"
	"github.com/angelmondragon/salesboard/pkg/models"
)

// TeamMember is a supervised salesperson with their own numbers.
type TeamMember struct {
	SalespersonID string          `json:"salespersonId"`
	Name          string          `json:"name"`
	Revenue       decimal.Decimal `json:"revenue"`
	Count         int             `json:"count"`
}

// Team groups the salespeople reporting to one supervisor.
type Team struct {
	SupervisorID string          `json:"supervisorId"`
	Name         string          `json:"name"`
	Members      []TeamMember    `json:"members"`
	Revenue      decimal.Decimal `json:"revenue"`
	Count        int             `json:"count"`
}

// SupervisorTeams returns one team per Supervisor, in salespeople-table
// order. Members are listed in table order too.
func SupervisorTeams(sales []models.Sale, people []models.Salesperson) []Team {
	totals := make(map[string]decimal.Decimal, len(people))
	counts := make(map[string]int, len(people))
	for _, s := range sales {
		totals[s.SalespersonID] = totals[s.SalespersonID].Add(s.Amount)
		counts[s.SalespersonID]++
	}

	teams := make([]Team, 0)
	for _, sup := range people {
		if sup.Role != enums.StaffRoleSupervisor {
			continue
		}
		team := Team{SupervisorID: sup.ID, Name: sup.Name, Members: []TeamMember{}, Revenue: decimal.Zero}
		for _, p := range people {
			if !p.SupervisedBy(sup.ID) {
				continue
			}
			team.Members = append(team.Members, TeamMember{
				SalespersonID: p.ID,
				Name:          p.Name,
				Revenue:       totals[p.ID],
				Count:         counts[p.ID],
			})
			team.Revenue = team.Revenue.Add(totals[p.ID])
			team.Count += counts[p.ID]
		}
		teams = append(teams, team)
	}
	return teams
}
