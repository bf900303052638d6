package generator

import (
	"testing"

	"github.com/putti/consultfirm-datagen/internal/model"
)

func TestBuildWorkEntriesConservation(t *testing.T) {
	g := testGenerator(40)
	team := makePool(map[int]int{2: 2, 3: 2, 5: 1})

	for i := 0; i < 300; i++ {
		p := sampleProject(g, 2022)
		deliverables := g.buildDeliverables(p)
		for j, d := range deliverables {
			d.DeliverableID = int64(j + 1)
		}

		entries := g.buildWorkEntries(deliverables, team)

		byDeliverable := map[int64]int{}
		for _, entry := range entries {
			byDeliverable[entry.DeliverableID] += entry.Hours

			if entry.Hours < 1 || entry.Hours > 8 {
				t.Fatalf("entry hours = %d, want 1..8", entry.Hours)
			}
			var d *model.Deliverable
			for _, candidate := range deliverables {
				if candidate.DeliverableID == entry.DeliverableID {
					d = candidate
				}
			}
			if d == nil {
				t.Fatalf("entry references unknown deliverable %d", entry.DeliverableID)
			}
			if entry.Date.Before(d.PlannedStartDate) || entry.Date.After(d.DueDate) {
				t.Fatalf("entry date %v outside [%v, %v]", entry.Date, d.PlannedStartDate, d.DueDate)
			}
			found := false
			for _, member := range team {
				if member.ConsultantID == entry.ConsultantID {
					found = true
				}
			}
			if !found {
				t.Fatalf("entry consultant %d not on team", entry.ConsultantID)
			}
		}

		for _, d := range deliverables {
			if byDeliverable[d.DeliverableID] != d.PlannedHours {
				t.Fatalf("deliverable %d booked %d hours, planned %d",
					d.DeliverableID, byDeliverable[d.DeliverableID], d.PlannedHours)
			}
		}
	}
}

func TestBuildWorkEntriesEmptyTeam(t *testing.T) {
	g := testGenerator(41)
	p := sampleProject(g, 2022)
	deliverables := g.buildDeliverables(p)

	if entries := g.buildWorkEntries(deliverables, nil); len(entries) != 0 {
		t.Fatalf("empty team produced %d entries", len(entries))
	}
}

func TestBuildExpensesProperties(t *testing.T) {
	g := testGenerator(42)

	for i := 0; i < 300; i++ {
		p := sampleProject(g, 2023)
		deliverables := g.buildDeliverables(p)
		for j, d := range deliverables {
			d.DeliverableID = int64(j + 1)
		}

		expenses := g.buildExpenses(p, deliverables)
		if len(expenses) < 5 || len(expenses) > 15 {
			t.Fatalf("got %d expenses, want 5..15", len(expenses))
		}

		for _, expense := range expenses {
			if expense.Date.Before(p.PlannedStartDate) || expense.Date.After(p.PlannedEndDate) {
				t.Fatalf("expense date %v outside project span [%v, %v]",
					expense.Date, p.PlannedStartDate, p.PlannedEndDate)
			}
			if expense.DeliverableID < 1 || expense.DeliverableID > int64(len(deliverables)) {
				t.Fatalf("expense references unknown deliverable %d", expense.DeliverableID)
			}

			var min, max float64
			switch expense.Category {
			case model.ExpenseCategoryTravel, model.ExpenseCategoryEquipment:
				min, max = 500, 5000
			case model.ExpenseCategorySoftwareLicenses, model.ExpenseCategoryTraining:
				min, max = 100, 2000
			case model.ExpenseCategoryMiscellaneous:
				min, max = 50, 1000
			default:
				t.Fatalf("unknown category %q", expense.Category)
			}
			if expense.Amount < min || expense.Amount > max {
				t.Fatalf("%s amount %v outside [%v, %v]", expense.Category, expense.Amount, min, max)
			}
		}
	}
}

func TestBuildExpensesNoDeliverables(t *testing.T) {
	g := testGenerator(43)
	p := sampleProject(g, 2023)

	if expenses := g.buildExpenses(p, nil); expenses != nil {
		t.Fatalf("expected no expenses without deliverables, got %d", len(expenses))
	}
}
