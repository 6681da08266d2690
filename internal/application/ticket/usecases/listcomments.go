package usecases

import (
	"context"

	"github.com/domus-inc/domus/internal/application/ticket/dto"
	"github.com/domus-inc/domus/internal/domain/property"
	"github.com/domus-inc/domus/internal/domain/ticket"
	"github.com/domus-inc/domus/internal/shared/authorization"
	"github.com/domus-inc/domus/internal/shared/errors"
	"github.com/domus-inc/domus/internal/shared/logger"
)

type ListCommentsQuery struct {
	TicketID uint
	UserID   uint
	Role     authorization.UserRole
}

type ListCommentsResult struct {
	Comments []dto.CommentDTO
}

// ListCommentsUseCase returns a ticket's comments oldest first. Internal
// comments are visible to staff only.
type ListCommentsUseCase struct {
	ticketRepo   ticket.TicketRepository
	commentRepo  ticket.CommentRepository
	propertyRepo property.PropertyRepository
	logger       logger.Interface
}

func NewListCommentsUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	propertyRepo property.PropertyRepository,
	logger logger.Interface,
) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		ticketRepo:   ticketRepo,
		commentRepo:  commentRepo,
		propertyRepo: propertyRepo,
		logger:       logger,
	}
}

func (uc *ListCommentsUseCase) Execute(ctx context.Context, query ListCommentsQuery) (*ListCommentsResult, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}

	if err := uc.authorize(ctx, t, query); err != nil {
		return nil, err
	}

	comments, err := uc.commentRepo.GetByTicketID(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to list ticket comments", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	isStaff := query.Role.IsStaff()
	result := make([]dto.CommentDTO, 0, len(comments))
	for _, c := range comments {
		if c.IsInternal() && !isStaff {
			continue
		}
		result = append(result, dto.ToCommentDTO(c))
	}

	return &ListCommentsResult{Comments: result}, nil
}

func (uc *ListCommentsUseCase) authorize(ctx context.Context, t *ticket.Ticket, query ListCommentsQuery) error {
	if t.CanBeViewedBy(query.UserID, query.Role) {
		return nil
	}

	if query.Role == authorization.RoleOwner && t.PropertyID() != nil {
		prop, err := uc.propertyRepo.GetByID(ctx, *t.PropertyID())
		if err == nil && prop.OwnerID() == query.UserID {
			return nil
		}
	}

	return errors.NewForbiddenError("you do not have access to this ticket")
}
