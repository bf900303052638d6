package generator

import (
	"fmt"
	"math"

	"github.com/putti/consultfirm-datagen/internal/model"
)

const (
	minExpensesPerProject = 5
	maxExpensesPerProject = 15
	maxDailyHours         = 8
)

// buildWorkEntries distributes each deliverable's planned hours across
// 1-3 consultants picked from the team, in 1-8h chunks on random dates
// inside the deliverable window. Entries for one deliverable sum exactly
// to its planned hours. An empty team leaves the deliverable unstaffed.
func (g *Generator) buildWorkEntries(deliverables []*model.Deliverable, team []ConsultantView) []model.ConsultantDeliverable {
	var entries []model.ConsultantDeliverable
	for _, d := range deliverables {
		if len(team) == 0 {
			continue
		}

		n := g.intBetween(1, 3)
		if n > len(team) {
			n = len(team)
		}
		selected := g.sample(team, n)

		remaining := d.PlannedHours
		dateRange := daysBetween(d.PlannedStartDate, d.DueDate)
		if dateRange < 0 {
			dateRange = 0
		}

		for remaining > 0 {
			for _, member := range selected {
				if remaining <= 0 {
					break
				}
				hours := g.intBetween(1, maxDailyHours)
				if hours > remaining {
					hours = remaining
				}
				workDate := d.PlannedStartDate
				if dateRange > 0 {
					workDate = d.PlannedStartDate.AddDate(0, 0, g.rng.Intn(dateRange+1))
				}
				entries = append(entries, model.ConsultantDeliverable{
					ConsultantID:  member.ConsultantID,
					DeliverableID: d.DeliverableID,
					Date:          workDate,
					Hours:         hours,
				})
				remaining -= hours
			}
		}
	}
	return entries
}

type expensePolicy struct {
	category     model.ExpenseCategory
	billableOdds float64
	minAmount    float64
	maxAmount    float64
}

var expensePolicies = []expensePolicy{
	{model.ExpenseCategoryTravel, 0.8, 500, 5000},
	{model.ExpenseCategoryEquipment, 0.6, 500, 5000},
	{model.ExpenseCategorySoftwareLicenses, 0.7, 100, 2000},
	{model.ExpenseCategoryTraining, 0.5, 100, 2000},
	{model.ExpenseCategoryMiscellaneous, 0.3, 50, 1000},
}

// buildExpenses generates 5-15 category-tagged expenses dated inside the
// project's planned span. The deliverable reference is attribution only.
func (g *Generator) buildExpenses(p *model.Project, deliverables []*model.Deliverable) []model.ProjectExpense {
	if len(deliverables) == 0 {
		return nil
	}

	count := g.intBetween(minExpensesPerProject, maxExpensesPerProject)
	duration := daysBetween(p.PlannedStartDate, p.PlannedEndDate)
	if duration < 1 {
		duration = 1
	}

	expenses := make([]model.ProjectExpense, 0, count)
	for i := 0; i < count; i++ {
		policy := expensePolicies[g.rng.Intn(len(expensePolicies))]
		billable := g.rng.Float64() < policy.billableOdds
		d := deliverables[g.rng.Intn(len(deliverables))]

		amount := math.Round(g.uniform(policy.minAmount, policy.maxAmount)*100) / 100
		expenseDate := p.PlannedStartDate.AddDate(0, 0, g.rng.Intn(duration))

		expenses = append(expenses, model.ProjectExpense{
			ProjectID:     p.ProjectID,
			DeliverableID: d.DeliverableID,
			Date:          expenseDate,
			Amount:        amount,
			Description:   fmt.Sprintf("%s expense for %s", policy.category, d.Name),
			Category:      policy.category,
			IsBillable:    billable,
		})
	}
	return expenses
}
