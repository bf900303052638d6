package generator

import (
	"fmt"
	"math"
	"time"

	"github.com/putti/consultfirm-datagen/internal/model"
)

const (
	minFixedDurationMonths = 3
	maxFixedDurationMonths = 24
	minTMDurationMonths    = 1
	maxTMDurationMonths    = 36

	baseCompletionChance = 0.5
	maxCompletionChance  = 0.95
)

// newProject builds a project's identity: client, unit, name and type.
func (g *Generator) newProject(clientIDs, unitIDs []int64, year int) *model.Project {
	return &model.Project{
		ClientID: clientIDs[g.rng.Intn(len(clientIDs))],
		UnitID:   unitIDs[g.rng.Intn(len(unitIDs))],
		Name:     fmt.Sprintf("Project_%d_%d", year, g.intBetween(1000, 9999)),
		Type:     g.projectType(),
		Status:   model.ProjectStatusNotStarted,
	}
}

func (g *Generator) projectType() model.ProjectType {
	if g.rng.Float64() < 0.6 {
		return model.ProjectTypeTimeAndMaterial
	}
	return model.ProjectTypeFixed
}

// setProjectDates samples the duration and start, derives the planned end
// from a fixed 30-day month, and returns the duration in months. The
// planned span is never degenerate: the end is forced at least one day
// past the start.
func (g *Generator) setProjectDates(p *model.Project, year int) int {
	var durationMonths int
	if p.Type == model.ProjectTypeFixed {
		durationMonths = g.intBetween(minFixedDurationMonths, maxFixedDurationMonths)
	} else {
		durationMonths = g.intBetween(minTMDurationMonths, maxTMDurationMonths)
	}

	startMonth := g.intBetween(1, 12)
	startDay := g.intBetween(1, 28) // avoid month-length edge cases

	p.PlannedStartDate = dateOf(year, time.Month(startMonth), startDay)
	p.PlannedEndDate = p.PlannedStartDate.AddDate(0, 0, durationMonths*30)
	p.ActualStartDate = p.PlannedStartDate

	if !p.PlannedEndDate.After(p.PlannedStartDate) {
		p.PlannedEndDate = p.PlannedStartDate.AddDate(0, 0, 1)
	}
	return durationMonths
}

// determineCompletion samples whether the project finished by asOf.
// Overdue projects get a linearly growing chance capped at 95%; projects
// still inside their span scale the base chance by elapsed share. The
// chance is then multiplied by progress/100, so zero progress can never
// complete.
func (g *Generator) determineCompletion(p *model.Project, asOf time.Time) bool {
	daysOverdue := daysBetween(p.PlannedEndDate, asOf)

	var chance float64
	if daysOverdue > 0 {
		chance = math.Min(baseCompletionChance+float64(daysOverdue)/365, maxCompletionChance)
	} else {
		totalPlanned := daysBetween(p.PlannedStartDate, p.PlannedEndDate)
		if totalPlanned > 0 {
			elapsed := daysBetween(p.PlannedStartDate, asOf)
			chance = baseCompletionChance * float64(elapsed) / float64(totalPlanned)
		}
	}

	if p.Progress > 0 {
		chance *= float64(p.Progress) / 100
	} else {
		chance = 0
	}
	return g.rng.Float64() < chance
}

// updateStatusAndProgress evaluates a project at the simulated as-of date.
// The ordering matters: elapsed-share progress is computed first, the
// completion sample uses it, and only then is progress overwritten to 100
// or jittered for in-progress work.
func (g *Generator) updateStatusAndProgress(p *model.Project, asOf time.Time) {
	started := !asOf.Before(p.PlannedStartDate)
	if started {
		duration := daysBetween(p.PlannedStartDate, p.PlannedEndDate)
		elapsed := daysBetween(p.PlannedStartDate, asOf)
		p.Progress = int(float64(elapsed) / float64(duration) * 100)
		if p.Progress > 99 {
			p.Progress = 99
		}
	} else {
		p.Progress = 0
	}

	if g.determineCompletion(p, asOf) {
		p.Status = model.ProjectStatusCompleted
		actualEnd := asOf
		if p.PlannedEndDate.Before(actualEnd) {
			actualEnd = p.PlannedEndDate
		}
		p.ActualEndDate = &actualEnd
		p.Progress = 100
		return
	}

	if started {
		p.Status = model.ProjectStatusInProgress
	} else {
		p.Status = model.ProjectStatusNotStarted
	}
	p.ActualEndDate = nil

	if p.Status == model.ProjectStatusInProgress {
		jittered := int(float64(p.Progress) * g.uniform(0.8, 1.2))
		if jittered > 99 {
			jittered = 99
		}
		if jittered < 0 {
			jittered = 0
		}
		p.Progress = jittered
	}
}
