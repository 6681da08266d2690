package usecases

import (
	"context"

	"github.com/domus-inc/domus/internal/application/ticket/dto"
	"github.com/domus-inc/domus/internal/domain/ticket"
	"github.com/domus-inc/domus/internal/shared/errors"
	"github.com/domus-inc/domus/internal/shared/logger"
)

type GetHistoryQuery struct {
	TicketID uint
}

type GetHistoryResult struct {
	Entries []dto.HistoryEntryDTO
}

// GetHistoryUseCase returns a ticket's change log oldest first. Route-level
// allow-lists restrict this to staff.
type GetHistoryUseCase struct {
	ticketRepo  ticket.TicketRepository
	historyRepo ticket.HistoryRepository
	logger      logger.Interface
}

func NewGetHistoryUseCase(
	ticketRepo ticket.TicketRepository,
	historyRepo ticket.HistoryRepository,
	logger logger.Interface,
) *GetHistoryUseCase {
	return &GetHistoryUseCase{
		ticketRepo:  ticketRepo,
		historyRepo: historyRepo,
		logger:      logger,
	}
}

func (uc *GetHistoryUseCase) Execute(ctx context.Context, query GetHistoryQuery) (*GetHistoryResult, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	if _, err := uc.ticketRepo.GetByID(ctx, query.TicketID); err != nil {
		return nil, err
	}

	entries, err := uc.historyRepo.GetByTicketID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket history", "ticket_id", query.TicketID, "error", err)
		return nil, err
	}

	result := make([]dto.HistoryEntryDTO, 0, len(entries))
	for _, entry := range entries {
		result = append(result, dto.ToHistoryEntryDTO(entry))
	}

	return &GetHistoryResult{Entries: result}, nil
}
