package generator

import (
	"testing"

	"github.com/putti/consultfirm-datagen/internal/model"
)

func TestSetFinancialsFixedPrice(t *testing.T) {
	g := testGenerator(20)

	for i := 0; i < 500; i++ {
		p := &model.Project{Type: model.ProjectTypeFixed}
		g.setFinancials(p, 39000, 6)

		if p.PlannedHours != 960 {
			t.Fatalf("planned hours = %d, want 960", p.PlannedHours)
		}
		if p.Price == nil {
			t.Fatal("fixed project without price")
		}
		if *p.Price < 269100 || *p.Price > 304200 {
			t.Fatalf("price %v outside [269100, 304200]", *p.Price)
		}
	}
}

func TestSetFinancialsTimeAndMaterial(t *testing.T) {
	g := testGenerator(21)

	p := &model.Project{Type: model.ProjectTypeTimeAndMaterial}
	g.setFinancials(p, 39000, 12)

	if p.Price != nil {
		t.Fatalf("t&m project carries price %v", *p.Price)
	}
	if p.PlannedHours != 12*160 {
		t.Fatalf("planned hours = %d, want %d", p.PlannedHours, 12*160)
	}
	if p.PlannedHours%10 != 0 {
		t.Fatalf("planned hours %d not a multiple of 10", p.PlannedHours)
	}
}

func TestBillingRatesTimeAndMaterialOnly(t *testing.T) {
	g := testGenerator(22)
	team := []ConsultantView{
		{ConsultantID: 1, TitleID: 6, Salary: 180000},
		{ConsultantID: 2, TitleID: 3, Salary: 90000},
		{ConsultantID: 3, TitleID: 3, Salary: 90000},
	}

	fixed := &model.Project{ProjectID: 1, Type: model.ProjectTypeFixed}
	if rates := g.billingRates(fixed, team); rates != nil {
		t.Fatalf("fixed project produced billing rates %v", rates)
	}

	tm := &model.Project{ProjectID: 2, Type: model.ProjectTypeTimeAndMaterial}
	rates := g.billingRates(tm, team)
	if len(rates) != 2 {
		t.Fatalf("got %d rates for 2 distinct tiers, want 2", len(rates))
	}
	for _, rate := range rates {
		base := baseBillingRates[rate.TitleID]
		if rate.Rate < base || rate.Rate > base*1.2+2.5 {
			t.Fatalf("tier %d rate %v outside adjusted band of base %v", rate.TitleID, rate.Rate, base)
		}
		if int(rate.Rate)%5 != 0 {
			t.Fatalf("tier %d rate %v not a multiple of 5", rate.TitleID, rate.Rate)
		}
	}
}

func TestBillingRatesDistinctTiers(t *testing.T) {
	g := testGenerator(23)
	team := []ConsultantView{
		{ConsultantID: 1, TitleID: 5, Salary: 150000},
		{ConsultantID: 2, TitleID: 5, Salary: 150000},
		{ConsultantID: 3, TitleID: 5, Salary: 150000},
	}

	p := &model.Project{ProjectID: 3, Type: model.ProjectTypeTimeAndMaterial}
	rates := g.billingRates(p, team)
	if len(rates) != 1 {
		t.Fatalf("duplicate tiers produced %d rate rows, want 1", len(rates))
	}
}
