package generator

import (
	"testing"
	"time"

	"github.com/putti/consultfirm-datagen/internal/model"
)

func sampleProject(g *Generator, year int) *model.Project {
	p := &model.Project{Type: model.ProjectTypeTimeAndMaterial}
	if g.rng.Intn(2) == 0 {
		p.Type = model.ProjectTypeFixed
	}
	months := g.setProjectDates(p, year)
	g.setFinancials(p, 30000, months)
	return p
}

func TestBuildDeliverablesInvariants(t *testing.T) {
	g := testGenerator(30)

	for i := 0; i < 500; i++ {
		p := sampleProject(g, 2021)
		deliverables := g.buildDeliverables(p)

		if len(deliverables) < 3 || len(deliverables) > 7 {
			t.Fatalf("got %d deliverables, want 3..7", len(deliverables))
		}

		hourSum := 0
		for j, d := range deliverables {
			hourSum += d.PlannedHours
			if d.PlannedHours <= 0 {
				t.Fatalf("deliverable %d has %d planned hours", j, d.PlannedHours)
			}
			if !d.ActualStartDate.Equal(d.PlannedStartDate) {
				t.Fatalf("deliverable %d actual start drifted", j)
			}
			if d.DueDate.Before(d.PlannedStartDate) {
				t.Fatalf("deliverable %d due %v before start %v", j, d.DueDate, d.PlannedStartDate)
			}
			if j == 0 {
				if !d.PlannedStartDate.Equal(p.PlannedStartDate) {
					t.Fatalf("first deliverable starts %v, project starts %v", d.PlannedStartDate, p.PlannedStartDate)
				}
				continue
			}
			wantStart := deliverables[j-1].DueDate.AddDate(0, 0, 1)
			if !d.PlannedStartDate.Equal(wantStart) {
				t.Fatalf("deliverable %d starts %v, want previous due + 1 day = %v", j, d.PlannedStartDate, wantStart)
			}
		}

		if hourSum != p.PlannedHours {
			t.Fatalf("deliverable hours sum %d, project planned %d", hourSum, p.PlannedHours)
		}
		last := deliverables[len(deliverables)-1]
		if !last.DueDate.Equal(p.PlannedEndDate) {
			t.Fatalf("last due %v, want project end %v", last.DueDate, p.PlannedEndDate)
		}
	}
}

func TestLayoutDeliverablesFrontLoadedHours(t *testing.T) {
	p := &model.Project{
		Type:             model.ProjectTypeTimeAndMaterial,
		PlannedStartDate: dateOf(2021, time.April, 1),
		PlannedEndDate:   dateOf(2021, time.May, 1),
		PlannedHours:     160,
	}

	// Minimum-duration project at the maximum deliverable count, with
	// the hour mass piled onto late deliverables so the chained starts
	// press against the project end.
	cases := [][]int{
		{16, 16, 16, 16, 76, 10, 10},
		{100, 10, 10, 10, 10, 10, 10},
		{10, 10, 10, 10, 10, 100, 10},
		{10, 10, 10, 10, 10, 10, 100},
	}
	for _, hours := range cases {
		deliverables := layoutDeliverables(p, hours)

		for i, d := range deliverables {
			if d.DueDate.Before(d.PlannedStartDate) {
				t.Fatalf("hours %v: deliverable %d due %v before start %v",
					hours, i+1, d.DueDate, d.PlannedStartDate)
			}
			if i == 0 {
				if !d.PlannedStartDate.Equal(p.PlannedStartDate) {
					t.Fatalf("hours %v: first deliverable starts %v, project starts %v",
						hours, d.PlannedStartDate, p.PlannedStartDate)
				}
				continue
			}
			wantStart := deliverables[i-1].DueDate.AddDate(0, 0, 1)
			if !d.PlannedStartDate.Equal(wantStart) {
				t.Fatalf("hours %v: deliverable %d starts %v, want previous due + 1 day = %v",
					hours, i+1, d.PlannedStartDate, wantStart)
			}
		}

		last := deliverables[len(deliverables)-1]
		if !last.DueDate.Equal(p.PlannedEndDate) {
			t.Fatalf("hours %v: last due %v, want project end %v", hours, last.DueDate, p.PlannedEndDate)
		}
	}
}

func TestBuildDeliverablesShortProject(t *testing.T) {
	g := testGenerator(31)
	p := &model.Project{
		Type:             model.ProjectTypeTimeAndMaterial,
		PlannedStartDate: dateOf(2021, time.April, 10),
		PlannedEndDate:   dateOf(2021, time.May, 10),
		PlannedHours:     160,
	}

	for i := 0; i < 200; i++ {
		deliverables := g.buildDeliverables(p)
		sum := 0
		for _, d := range deliverables {
			sum += d.PlannedHours
		}
		if sum != 160 {
			t.Fatalf("hours sum %d, want 160", sum)
		}
		if !deliverables[len(deliverables)-1].DueDate.Equal(p.PlannedEndDate) {
			t.Fatalf("last deliverable misses project end")
		}
	}
}
