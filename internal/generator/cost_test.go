package generator

import "testing"

func TestTeamCostFullyLoaded(t *testing.T) {
	team := []ConsultantView{
		{ConsultantID: 1, TitleID: 6, Salary: 180000},
		{ConsultantID: 2, TitleID: 3, Salary: 90000},
		{ConsultantID: 3, TitleID: 3, Salary: 90000},
	}

	monthly, hourly := TeamCost(team)
	if monthly != 39000 {
		t.Fatalf("monthly cost = %v, want 39000", monthly)
	}
	if hourly != 243.75 {
		t.Fatalf("hourly cost = %v, want 243.75", hourly)
	}
}

func TestTeamCostEmptyTeam(t *testing.T) {
	monthly, hourly := TeamCost(nil)
	if monthly != 0 || hourly != 0 {
		t.Fatalf("empty team cost = %v/%v, want 0/0", monthly, hourly)
	}
}

func TestTeamCostSkipsUnresolvedTitle(t *testing.T) {
	team := []ConsultantView{
		{ConsultantID: 1, TitleID: 0, Salary: 120000},
		{ConsultantID: 2, TitleID: 2, Salary: 60000},
	}

	monthly, _ := TeamCost(team)
	want := 60000.0 / 12 * 1.30
	if monthly != want {
		t.Fatalf("monthly cost = %v, want %v", monthly, want)
	}
}
