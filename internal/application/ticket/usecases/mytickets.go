package usecases

import (
	"context"
	"time"

	"github.com/domus-inc/domus/internal/application/ticket/dto"
	"github.com/domus-inc/domus/internal/domain/ticket"
	"github.com/domus-inc/domus/internal/shared/errors"
	"github.com/domus-inc/domus/internal/shared/logger"
)

type MyTicketsQuery struct {
	UserID  uint
	Filters ticket.TicketFilter
}

type MyTicketsResult struct {
	Tickets []dto.TicketListItemDTO
	Total   int64
}

// MyTicketsUseCase lists the tickets the caller reported, regardless of role.
type MyTicketsUseCase struct {
	ticketRepo   ticket.TicketRepository
	atRiskWindow time.Duration
	logger       logger.Interface
}

func NewMyTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	atRiskWindow time.Duration,
	logger logger.Interface,
) *MyTicketsUseCase {
	return &MyTicketsUseCase{
		ticketRepo:   ticketRepo,
		atRiskWindow: atRiskWindow,
		logger:       logger,
	}
}

func (uc *MyTicketsUseCase) Execute(ctx context.Context, query MyTicketsQuery) (*MyTicketsResult, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	tickets, total, err := uc.ticketRepo.GetReportedTickets(ctx, query.UserID, query.Filters)
	if err != nil {
		uc.logger.Errorw("failed to list reported tickets", "user_id", query.UserID, "error", err)
		return nil, err
	}

	return &MyTicketsResult{
		Tickets: dto.ToTicketListItemDTOs(tickets, time.Now().UTC(), uc.atRiskWindow),
		Total:   total,
	}, nil
}
