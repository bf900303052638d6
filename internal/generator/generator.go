package generator

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/putti/consultfirm-datagen/internal/model"
)

// A consultant can hold at most this many projects within one simulated
// year.
const maxProjectsPerConsultant = 2

// Generator runs the multi-year project simulation against a Directory
// read model and a transactional Sink. All randomness is drawn from the
// single injected source, so a fixed seed reproduces the dataset exactly.
type Generator struct {
	dir    Directory
	growth GrowthProvider
	store  Store
	rng    *rand.Rand
	log    zerolog.Logger
}

func New(dir Directory, growth GrowthProvider, store Store, rng *rand.Rand, log zerolog.Logger) *Generator {
	return &Generator{
		dir:    dir,
		growth: growth,
		store:  store,
		rng:    rng,
		log:    log,
	}
}

// Run generates projects for every year in [startYear, endYear] inside
// one unit of work. Any failure rolls back everything staged across all
// years; nothing is persisted partially.
func (g *Generator) Run(ctx context.Context, startYear, endYear int) error {
	if startYear > endYear {
		return fmt.Errorf("%w: %d..%d", ErrInvalidYearRange, startYear, endYear)
	}

	log := g.log.With().Str("run_id", uuid.New().String()).Logger()

	clientIDs, err := g.dir.ClientIDs(ctx)
	if err != nil {
		return fmt.Errorf("list clients: %w", err)
	}
	unitIDs, err := g.dir.BusinessUnitIDs(ctx)
	if err != nil {
		return fmt.Errorf("list business units: %w", err)
	}
	if len(clientIDs) == 0 || len(unitIDs) == 0 {
		return ErrEmptyDirectory
	}

	sink, err := g.store.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin unit of work: %w", err)
	}

	if err := g.generateYears(ctx, sink, log, clientIDs, unitIDs, startYear, endYear); err != nil {
		if rbErr := sink.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Msg("rollback failed")
		}
		log.Error().Err(err).Msg("generation aborted, staged entities discarded")
		return err
	}

	if err := sink.Commit(); err != nil {
		log.Error().Err(err).Msg("commit failed")
		return fmt.Errorf("commit unit of work: %w", err)
	}
	log.Info().Int("start_year", startYear).Int("end_year", endYear).Msg("generation complete")
	return nil
}

func (g *Generator) generateYears(
	ctx context.Context,
	sink Sink,
	log zerolog.Logger,
	clientIDs, unitIDs []int64,
	startYear, endYear int,
) error {
	for year := startYear; year <= endYear; year++ {
		pool, err := g.dir.AvailableConsultants(ctx, year)
		if err != nil {
			return fmt.Errorf("resolve availability for %d: %w", year, err)
		}
		if len(pool) == 0 {
			log.Info().Int("year", year).Msg("no available consultants, skipping year")
			continue
		}

		// Fresh workload counters at the start of every year.
		counts := make(map[int64]int, len(pool))

		growthRate := g.growth.GrowthRate(year)
		numProjects := g.projectCount(len(pool), growthRate)

		for i := 0; i < numProjects; i++ {
			team, err := g.generateProject(ctx, sink, clientIDs, unitIDs, year, pool)
			if err != nil {
				return fmt.Errorf("year %d project %d: %w", year, i+1, err)
			}

			for _, member := range team {
				counts[member.ConsultantID]++
			}
			pool = filterPool(pool, counts)
		}

		log.Info().Int("year", year).Int("projects", numProjects).Msg("generated projects")
	}
	return nil
}

// projectCount sizes a year's portfolio from the pool and growth signal,
// with a floor of five projects.
func (g *Generator) projectCount(poolSize int, growthRate float64) int {
	base := poolSize / g.intBetween(3, 5)
	adjusted := int(float64(base) * (1 + growthRate))
	if adjusted < 5 {
		return 5
	}
	return adjusted
}

// generateProject runs the full per-project pipeline in persist order and
// returns the staffed team.
func (g *Generator) generateProject(
	ctx context.Context,
	sink Sink,
	clientIDs, unitIDs []int64,
	year int,
	pool []ConsultantView,
) ([]ConsultantView, error) {
	project := g.newProject(clientIDs, unitIDs, year)
	team := g.assignTeam(pool)

	monthlyCost, _ := TeamCost(team)
	durationMonths := g.setProjectDates(project, year)
	g.setFinancials(project, monthlyCost, durationMonths)

	if err := sink.InsertProject(ctx, project); err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}
	if err := sink.InsertTeam(ctx, project.ProjectID, consultantIDs(team)); err != nil {
		return nil, fmt.Errorf("insert team: %w", err)
	}

	deliverables := g.buildDeliverables(project)
	if err := sink.InsertDeliverables(ctx, deliverables); err != nil {
		return nil, fmt.Errorf("insert deliverables: %w", err)
	}

	entries := g.buildWorkEntries(deliverables, team)
	if err := sink.InsertConsultantDeliverables(ctx, entries); err != nil {
		return nil, fmt.Errorf("insert work entries: %w", err)
	}

	expenses := g.buildExpenses(project, deliverables)
	if err := sink.InsertExpenses(ctx, expenses); err != nil {
		return nil, fmt.Errorf("insert expenses: %w", err)
	}
	total := 0.0
	for _, expense := range expenses {
		total += expense.Amount
	}
	project.TotalExpenses = total

	if project.Type == model.ProjectTypeTimeAndMaterial {
		if err := sink.InsertBillingRates(ctx, g.billingRates(project, team)); err != nil {
			return nil, fmt.Errorf("insert billing rates: %w", err)
		}
	}

	asOf := dateOf(year, time.December, 31)
	g.updateStatusAndProgress(project, asOf)

	if err := sink.UpdateProject(ctx, project); err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	return team, nil
}

func consultantIDs(team []ConsultantView) []int64 {
	ids := make([]int64, 0, len(team))
	for _, member := range team {
		ids = append(ids, member.ConsultantID)
	}
	return ids
}

func filterPool(pool []ConsultantView, counts map[int64]int) []ConsultantView {
	kept := pool[:0]
	for _, c := range pool {
		if counts[c.ConsultantID] < maxProjectsPerConsultant {
			kept = append(kept, c)
		}
	}
	return kept
}
