package generator

import (
	"math"

	"github.com/putti/consultfirm-datagen/internal/model"
)

const (
	minProfitMargin = 0.15
	maxProfitMargin = 0.30
)

// Base hourly billing rate per title tier, adjusted per project.
var baseBillingRates = map[int]float64{
	1: 100, 2: 150, 3: 200,
	4: 250, 5: 300, 6: 400,
}

// setFinancials derives planned hours from the duration and, for
// fixed-price work, a price with a randomized margin on top of the team
// cost. Time-and-material projects carry no price.
func (g *Generator) setFinancials(p *model.Project, monthlyCost float64, durationMonths int) {
	if p.Type == model.ProjectTypeFixed {
		totalCost := monthlyCost * float64(durationMonths)
		price := totalCost * (1 + g.uniform(minProfitMargin, maxProfitMargin))
		p.Price = &price
	} else {
		p.Price = nil
	}

	hours := float64(durationMonths * monthlyWorkingHours)
	p.PlannedHours = int(math.Round(hours/10) * 10) // nearest multiple of ten
}

// billingRates produces one adjusted rate per distinct title tier staffed
// on a time-and-material project. Fixed-price projects get none.
func (g *Generator) billingRates(p *model.Project, team []ConsultantView) []model.ProjectBillingRate {
	if p.Type != model.ProjectTypeTimeAndMaterial {
		return nil
	}

	var rates []model.ProjectBillingRate
	assigned := make(map[int]bool, len(team))
	for _, member := range team {
		base, ok := baseBillingRates[member.TitleID]
		if !ok || assigned[member.TitleID] {
			continue
		}
		rate := base * g.uniform(1.0, 1.2)
		rate = math.Round(rate/5) * 5

		rates = append(rates, model.ProjectBillingRate{
			ProjectID: p.ProjectID,
			TitleID:   member.TitleID,
			Rate:      rate,
		})
		assigned[member.TitleID] = true
	}
	return rates
}
