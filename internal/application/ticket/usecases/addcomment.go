package usecases

import (
	"context"
	"time"

	"github.com/domus-inc/domus/internal/domain/property"
	"github.com/domus-inc/domus/internal/domain/shared/events"
	"github.com/domus-inc/domus/internal/domain/ticket"
	"github.com/domus-inc/domus/internal/shared/authorization"
	"github.com/domus-inc/domus/internal/shared/errors"
	"github.com/domus-inc/domus/internal/shared/logger"
	"github.com/domus-inc/domus/internal/shared/services/sanitize"
)

type AddCommentCommand struct {
	TicketID   uint
	AuthorID   uint
	Role       authorization.UserRole
	Content    string
	IsInternal bool
}

type AddCommentResult struct {
	CommentID uint
	TicketID  uint
	CreatedAt time.Time
}

type AddCommentUseCase struct {
	ticketRepo   ticket.TicketRepository
	commentRepo  ticket.CommentRepository
	propertyRepo property.PropertyRepository
	publisher    events.EventPublisher
	logger       logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	propertyRepo property.PropertyRepository,
	publisher events.EventPublisher,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:   ticketRepo,
		commentRepo:  commentRepo,
		propertyRepo: propertyRepo,
		publisher:    publisher,
		logger:       logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
	uc.logger.Infow("executing add comment use case", "ticket_id", cmd.TicketID, "author_id", cmd.AuthorID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.AuthorID == 0 {
		return nil, errors.NewValidationError("author ID is required")
	}

	content := sanitize.Text(cmd.Content)
	if len(content) == 0 {
		return nil, errors.NewValidationError("content cannot be empty")
	}

	if cmd.IsInternal && !cmd.Role.IsStaff() {
		return nil, errors.NewForbiddenError("internal comments are restricted to staff")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if err := uc.authorize(ctx, t, cmd); err != nil {
		return nil, err
	}

	if t.Status().IsClosed() {
		return nil, errors.NewValidationError("cannot comment on a closed ticket")
	}

	comment, err := ticket.NewComment(t.ID(), cmd.AuthorID, content, cmd.IsInternal)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Save(ctx, comment); err != nil {
		uc.logger.Errorw("failed to save comment", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	uc.publishCommentAddedEvent(t, comment)

	uc.logger.Infow("comment added", "ticket_id", t.ID(), "comment_id", comment.ID())

	return &AddCommentResult{
		CommentID: comment.ID(),
		TicketID:  t.ID(),
		CreatedAt: comment.CreatedAt(),
	}, nil
}

func (uc *AddCommentUseCase) authorize(ctx context.Context, t *ticket.Ticket, cmd AddCommentCommand) error {
	if t.CanBeViewedBy(cmd.AuthorID, cmd.Role) {
		return nil
	}

	if cmd.Role == authorization.RoleOwner && t.PropertyID() != nil {
		prop, err := uc.propertyRepo.GetByID(ctx, *t.PropertyID())
		if err == nil && prop.OwnerID() == cmd.AuthorID {
			return nil
		}
	}

	return errors.NewForbiddenError("you do not have access to this ticket")
}

func (uc *AddCommentUseCase) publishCommentAddedEvent(t *ticket.Ticket, comment *ticket.Comment) {
	event := ticket.NewCommentAddedEvent(
		t.ID(),
		comment.ID(),
		comment.AuthorID(),
		t.ReporterID(),
		comment.IsInternal(),
		comment.CreatedAt(),
	)
	if err := uc.publisher.Publish(event); err != nil {
		uc.logger.Warnw("failed to publish comment added event", "ticket_id", t.ID(), "error", err)
	}
}
