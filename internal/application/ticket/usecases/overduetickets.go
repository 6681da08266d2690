package usecases

import (
	"context"
	"time"

	"github.com/domus-inc/domus/internal/application/ticket/dto"
	"github.com/domus-inc/domus/internal/domain/ticket"
	"github.com/domus-inc/domus/internal/shared/logger"
)

type OverdueTicketsResult struct {
	Tickets []dto.TicketListItemDTO
	Total   int64
}

// OverdueTicketsUseCase lists every open ticket past its SLA deadline,
// oldest breach first. This backs the staff operations view, so there is
// no per-caller scoping.
type OverdueTicketsUseCase struct {
	ticketRepo   ticket.TicketRepository
	atRiskWindow time.Duration
	logger       logger.Interface
}

func NewOverdueTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	atRiskWindow time.Duration,
	logger logger.Interface,
) *OverdueTicketsUseCase {
	return &OverdueTicketsUseCase{
		ticketRepo:   ticketRepo,
		atRiskWindow: atRiskWindow,
		logger:       logger,
	}
}

func (uc *OverdueTicketsUseCase) Execute(ctx context.Context) (*OverdueTicketsResult, error) {
	now := time.Now().UTC()

	tickets, err := uc.ticketRepo.GetOverdueTickets(ctx, now)
	if err != nil {
		uc.logger.Errorw("failed to list overdue tickets", "error", err)
		return nil, err
	}

	return &OverdueTicketsResult{
		Tickets: dto.ToTicketListItemDTOs(tickets, now, uc.atRiskWindow),
		Total:   int64(len(tickets)),
	}, nil
}
