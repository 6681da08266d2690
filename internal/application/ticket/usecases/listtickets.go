package usecases

import (
	"context"
	"time"

	"github.com/domus-inc/domus/internal/application/ticket/dto"
	"github.com/domus-inc/domus/internal/domain/property"
	"github.com/domus-inc/domus/internal/domain/ticket"
	"github.com/domus-inc/domus/internal/shared/authorization"
	"github.com/domus-inc/domus/internal/shared/errors"
	"github.com/domus-inc/domus/internal/shared/logger"
)

type ListTicketsQuery struct {
	UserID  uint
	Role    authorization.UserRole
	Filters ticket.TicketFilter
}

type ListTicketsResult struct {
	Tickets []dto.TicketListItemDTO
	Total   int64
}

// ListTicketsUseCase dispatches the listing query by role: admins and
// managers see everything, owners see tickets for their properties, agents
// and service staff see their assignments. Any other role gets an empty
// result rather than an error.
type ListTicketsUseCase struct {
	ticketRepo   ticket.TicketRepository
	propertyRepo property.PropertyRepository
	atRiskWindow time.Duration
	logger       logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	propertyRepo property.PropertyRepository,
	atRiskWindow time.Duration,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo:   ticketRepo,
		propertyRepo: propertyRepo,
		atRiskWindow: atRiskWindow,
		logger:       logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	tickets, total, err := uc.dispatch(ctx, query)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "user_id", query.UserID, "role", query.Role.String(), "error", err)
		return nil, err
	}

	return &ListTicketsResult{
		Tickets: dto.ToTicketListItemDTOs(tickets, time.Now().UTC(), uc.atRiskWindow),
		Total:   total,
	}, nil
}

func (uc *ListTicketsUseCase) dispatch(ctx context.Context, query ListTicketsQuery) ([]*ticket.Ticket, int64, error) {
	switch query.Role {
	case authorization.RoleAdmin, authorization.RoleManager:
		return uc.ticketRepo.List(ctx, query.Filters)

	case authorization.RoleOwner:
		propertyIDs, err := uc.propertyRepo.GetIDsByOwnerID(ctx, query.UserID)
		if err != nil {
			return nil, 0, err
		}
		if len(propertyIDs) == 0 {
			return []*ticket.Ticket{}, 0, nil
		}
		return uc.ticketRepo.GetTicketsForProperties(ctx, propertyIDs, query.Filters)

	case authorization.RoleAgent, authorization.RoleService:
		return uc.ticketRepo.GetAssignedTickets(ctx, query.UserID, query.Filters)

	default:
		return []*ticket.Ticket{}, 0, nil
	}
}
