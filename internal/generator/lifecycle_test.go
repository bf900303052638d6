package generator

import (
	"testing"
	"time"

	"github.com/putti/consultfirm-datagen/internal/model"
)

func TestSetProjectDatesInvariants(t *testing.T) {
	g := testGenerator(10)

	for i := 0; i < 1000; i++ {
		p := &model.Project{Type: model.ProjectTypeFixed}
		if i%2 == 1 {
			p.Type = model.ProjectTypeTimeAndMaterial
		}

		months := g.setProjectDates(p, 2022)
		if !p.PlannedEndDate.After(p.PlannedStartDate) {
			t.Fatalf("planned end %v not after planned start %v", p.PlannedEndDate, p.PlannedStartDate)
		}
		if !p.ActualStartDate.Equal(p.PlannedStartDate) {
			t.Fatalf("actual start %v drifted from planned start %v", p.ActualStartDate, p.PlannedStartDate)
		}
		if p.PlannedStartDate.Year() != 2022 {
			t.Fatalf("start year = %d, want 2022", p.PlannedStartDate.Year())
		}
		if day := p.PlannedStartDate.Day(); day < 1 || day > 28 {
			t.Fatalf("start day = %d, want 1..28", day)
		}

		switch p.Type {
		case model.ProjectTypeFixed:
			if months < 3 || months > 24 {
				t.Fatalf("fixed duration %d months, want 3..24", months)
			}
		case model.ProjectTypeTimeAndMaterial:
			if months < 1 || months > 36 {
				t.Fatalf("t&m duration %d months, want 1..36", months)
			}
		}
		if got := daysBetween(p.PlannedStartDate, p.PlannedEndDate); got != months*30 {
			t.Fatalf("planned span %d days, want %d", got, months*30)
		}
	}
}

func TestUpdateStatusAndProgressCoupling(t *testing.T) {
	g := testGenerator(11)
	asOf := dateOf(2022, time.December, 31)

	for i := 0; i < 1000; i++ {
		p := &model.Project{Type: model.ProjectTypeTimeAndMaterial, Status: model.ProjectStatusNotStarted}
		g.setProjectDates(p, 2022)
		g.updateStatusAndProgress(p, asOf)

		completed := p.Status == model.ProjectStatusCompleted
		if completed != (p.Progress == 100) {
			t.Fatalf("status %s with progress %d", p.Status, p.Progress)
		}
		if completed {
			if p.ActualEndDate == nil {
				t.Fatalf("completed project without actual end")
			}
			if p.ActualEndDate.After(asOf) {
				t.Fatalf("actual end %v after as-of %v", p.ActualEndDate, asOf)
			}
			if p.ActualEndDate.After(p.PlannedEndDate) {
				t.Fatalf("actual end %v after planned end %v", p.ActualEndDate, p.PlannedEndDate)
			}
		} else {
			if p.ActualEndDate != nil {
				t.Fatalf("%s project carries actual end %v", p.Status, p.ActualEndDate)
			}
			if p.Progress < 0 || p.Progress > 99 {
				t.Fatalf("incomplete project progress = %d", p.Progress)
			}
		}
		if p.Status == model.ProjectStatusNotStarted && p.Progress != 0 {
			t.Fatalf("not started but progress %d", p.Progress)
		}
	}
}

func TestDetermineCompletionZeroProgress(t *testing.T) {
	g := testGenerator(12)
	p := &model.Project{
		Type:             model.ProjectTypeFixed,
		PlannedStartDate: dateOf(2022, time.March, 1),
		PlannedEndDate:   dateOf(2022, time.September, 1),
		Progress:         0,
	}

	for i := 0; i < 200; i++ {
		if g.determineCompletion(p, dateOf(2022, time.December, 31)) {
			t.Fatal("zero-progress project sampled as completed")
		}
	}
}

func TestUpdateStatusBeforeStart(t *testing.T) {
	g := testGenerator(13)
	p := &model.Project{
		Type:             model.ProjectTypeFixed,
		PlannedStartDate: dateOf(2023, time.June, 1),
		PlannedEndDate:   dateOf(2023, time.December, 1),
	}

	g.updateStatusAndProgress(p, dateOf(2022, time.December, 31))
	if p.Status != model.ProjectStatusNotStarted {
		t.Fatalf("status = %s, want Not Started", p.Status)
	}
	if p.Progress != 0 {
		t.Fatalf("progress = %d, want 0", p.Progress)
	}
	if p.ActualEndDate != nil {
		t.Fatalf("unexpected actual end %v", p.ActualEndDate)
	}
}

func TestNewProjectIdentity(t *testing.T) {
	g := testGenerator(14)
	clients := []int64{11, 12, 13}
	units := []int64{21, 22}

	sawTM, sawFixed := false, false
	for i := 0; i < 200; i++ {
		p := g.newProject(clients, units, 2021)
		if p.ClientID < 11 || p.ClientID > 13 {
			t.Fatalf("client id %d not from directory", p.ClientID)
		}
		if p.UnitID != 21 && p.UnitID != 22 {
			t.Fatalf("unit id %d not from directory", p.UnitID)
		}
		if p.Status != model.ProjectStatusNotStarted {
			t.Fatalf("new project status = %s", p.Status)
		}
		switch p.Type {
		case model.ProjectTypeTimeAndMaterial:
			sawTM = true
		case model.ProjectTypeFixed:
			sawFixed = true
		}
	}
	if !sawTM || !sawFixed {
		t.Fatalf("project type sampling degenerate: tm=%v fixed=%v", sawTM, sawFixed)
	}
}
