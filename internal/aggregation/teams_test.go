package aggregation

import (
	"testing"

	"github.com/angelmondragon/salesboard/internal/seed"
)

func TestSupervisorTeams(t *testing.T) {
	people := seed.Salespeople()
	supervisor := "4"
	people[0].SupervisorID = &supervisor
	people[1].SupervisorID = &supervisor

	teams := SupervisorTeams(seed.Sales(), people)
	if len(teams) != 1 {
		t.Fatalf("expected one supervisor, got %d", len(teams))
	}
	team := teams[0]
	if team.SupervisorID != "4" || len(team.Members) != 2 {
		t.Fatalf("unexpected team: %+v", team)
	}
	if team.Members[0].SalespersonID != "1" || team.Members[1].SalespersonID != "2" {
		t.Fatal("members should keep table order")
	}
	if !team.Revenue.Equal(amount(5800)) || team.Count != 4 {
		t.Fatalf("expected 5800 over 4 sales, got %s over %d", team.Revenue, team.Count)
	}
}

func TestSupervisorTeamsWithoutMembers(t *testing.T) {
	teams := SupervisorTeams(seed.Sales(), seed.Salespeople())
	if len(teams) != 1 || len(teams[0].Members) != 0 || !teams[0].Revenue.IsZero() {
		t.Fatalf("seed supervisor has an empty team, got %+v", teams)
	}
}
