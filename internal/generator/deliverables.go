package generator

import (
	"fmt"
	"time"

	"github.com/putti/consultfirm-datagen/internal/model"
)

const (
	minDeliverables     = 3
	maxDeliverables     = 7
	minDeliverableHours = 10
)

// buildDeliverables partitions the project's planned hours into 3-7
// contiguous deliverables. Sizing reserves a 10-hour floor for every
// deliverable still to come; the last one absorbs the remainder.
func (g *Generator) buildDeliverables(p *model.Project) []*model.Deliverable {
	count := g.intBetween(minDeliverables, maxDeliverables)

	hours := make([]int, count)
	remainingHours := p.PlannedHours
	for i := 0; i < count; i++ {
		if i == count-1 {
			hours[i] = remainingHours
			break
		}
		maxHours := remainingHours - (count-i-1)*minDeliverableHours
		if maxHours < minDeliverableHours {
			maxHours = minDeliverableHours
		}
		if maxHours > minDeliverableHours {
			hours[i] = g.intBetween(minDeliverableHours, maxHours)
		} else {
			hours[i] = minDeliverableHours
		}
		remainingHours -= hours[i]
	}
	return layoutDeliverables(p, hours)
}

// layoutDeliverables places the sized deliverables on the project span:
// each starts the day after the previous due date, spans scale with the
// hour share, and the last due date lands exactly on the planned end.
// Every non-final deliverable still to come needs its one-day minimum
// span plus the one-day gap before it, so two days are reserved per
// remaining non-final; the chain then stays inside the span even when
// the hour draws are front-loaded.
func layoutDeliverables(p *model.Project, hours []int) []*model.Deliverable {
	count := len(hours)
	deliverables := make([]*model.Deliverable, 0, count)

	projectDuration := daysBetween(p.PlannedStartDate, p.PlannedEndDate)
	if projectDuration < 1 {
		projectDuration = 1
	}

	for i, plannedHours := range hours {
		last := i == count-1

		start := p.PlannedStartDate
		if i > 0 {
			start = deliverables[i-1].DueDate.AddDate(0, 0, 1)
		}

		var due time.Time
		if last {
			due = p.PlannedEndDate
		} else {
			maxSpan := daysBetween(start, p.PlannedEndDate) - 2*(count-i-2) - 1
			if maxSpan < 1 {
				maxSpan = 1
			}
			span := int(float64(plannedHours) / float64(p.PlannedHours) * float64(projectDuration))
			if span < 1 {
				span = 1
			}
			if span > maxSpan {
				span = maxSpan
			}
			due = start.AddDate(0, 0, span)
		}

		deliverables = append(deliverables, &model.Deliverable{
			ProjectID:        p.ProjectID,
			Name:             fmt.Sprintf("Deliverable %d", i+1),
			PlannedStartDate: start,
			ActualStartDate:  start,
			DueDate:          due,
			Status:           model.ProjectStatusNotStarted,
			PlannedHours:     plannedHours,
		})
	}
	return deliverables
}
