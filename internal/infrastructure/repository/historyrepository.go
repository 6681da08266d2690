package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/domus-inc/domus/internal/domain/ticket"
	"github.com/domus-inc/domus/internal/infrastructure/persistence/mappers"
	"github.com/domus-inc/domus/internal/infrastructure/persistence/models"
	"github.com/domus-inc/domus/internal/shared/db"
)

type HistoryRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *HistoryRepository) Save(ctx context.Context, entry *ticket.HistoryEntry) error {
	model := r.mapper.HistoryToModel(entry)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save history entry: %w", err)
	}

	if err := entry.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *HistoryRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.HistoryEntry, error) {
	var historyModels []models.HistoryModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&historyModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find history entries: %w", err)
	}

	entries := make([]*ticket.HistoryEntry, len(historyModels))
	for i, model := range historyModels {
		h, err := r.mapper.HistoryToDomain(&model)
		if err != nil {
			return nil, err
		}
		entries[i] = h
	}

	return entries, nil
}
