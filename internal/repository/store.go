package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/putti/consultfirm-datagen/internal/generator"
	"github.com/putti/consultfirm-datagen/internal/model"
)

// Store opens one database transaction per generation run; the open
// transaction is the staging area of the unit of work.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Begin(ctx context.Context) (generator.Sink, error) {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &txSink{tx: tx}, nil
}

type txSink struct {
	tx *gorm.DB
}

func (s *txSink) InsertProject(ctx context.Context, project *model.Project) error {
	return s.tx.WithContext(ctx).Create(project).Error
}

func (s *txSink) InsertTeam(ctx context.Context, projectID int64, consultantIDs []int64) error {
	if len(consultantIDs) == 0 {
		return nil
	}
	members := make([]model.ProjectTeamMember, 0, len(consultantIDs))
	for _, consultantID := range consultantIDs {
		members = append(members, model.ProjectTeamMember{
			ProjectID:    projectID,
			ConsultantID: consultantID,
		})
	}
	return s.tx.WithContext(ctx).Create(&members).Error
}

func (s *txSink) InsertDeliverables(ctx context.Context, deliverables []*model.Deliverable) error {
	if len(deliverables) == 0 {
		return nil
	}
	return s.tx.WithContext(ctx).Create(deliverables).Error
}

func (s *txSink) InsertConsultantDeliverables(ctx context.Context, entries []model.ConsultantDeliverable) error {
	if len(entries) == 0 {
		return nil
	}
	return s.tx.WithContext(ctx).Create(&entries).Error
}

func (s *txSink) InsertExpenses(ctx context.Context, expenses []model.ProjectExpense) error {
	if len(expenses) == 0 {
		return nil
	}
	return s.tx.WithContext(ctx).Create(&expenses).Error
}

func (s *txSink) InsertBillingRates(ctx context.Context, rates []model.ProjectBillingRate) error {
	if len(rates) == 0 {
		return nil
	}
	return s.tx.WithContext(ctx).Create(&rates).Error
}

func (s *txSink) UpdateProject(ctx context.Context, project *model.Project) error {
	return s.tx.WithContext(ctx).Save(project).Error
}

func (s *txSink) Commit() error {
	return s.tx.Commit().Error
}

func (s *txSink) Rollback() error {
	return s.tx.Rollback().Error
}
