package generator

import (
	"context"

	"github.com/putti/consultfirm-datagen/internal/model"
)

// ConsultantView is the eager per-year read model of a consultant: the
// current title and salary are resolved once when the year's pool is built,
// never re-queried during the pipeline. TitleID 0 means no title history
// row could be resolved.
type ConsultantView struct {
	ConsultantID int64
	TitleID      int
	Salary       float64
}

// Directory is the read side: flat identifier lookups and the per-year
// availability pool.
type Directory interface {
	ClientIDs(ctx context.Context) ([]int64, error)
	BusinessUnitIDs(ctx context.Context) ([]int64, error)
	AvailableConsultants(ctx context.Context, year int) ([]ConsultantView, error)
}

// GrowthProvider supplies the externally computed economic growth signal
// used to scale the per-year project count.
type GrowthProvider interface {
	GrowthRate(year int) float64
}

// Store opens one unit of work per generation run.
type Store interface {
	Begin(ctx context.Context) (Sink, error)
}

// Sink stages generated entities inside a single transactional scope.
// Inserts assign generated identifiers on the passed records; nothing is
// durable until Commit.
type Sink interface {
	InsertProject(ctx context.Context, project *model.Project) error
	InsertTeam(ctx context.Context, projectID int64, consultantIDs []int64) error
	InsertDeliverables(ctx context.Context, deliverables []*model.Deliverable) error
	InsertConsultantDeliverables(ctx context.Context, entries []model.ConsultantDeliverable) error
	InsertExpenses(ctx context.Context, expenses []model.ProjectExpense) error
	InsertBillingRates(ctx context.Context, rates []model.ProjectBillingRate) error
	UpdateProject(ctx context.Context, project *model.Project) error
	Commit() error
	Rollback() error
}
