package usecases

import (
	"context"
	"time"

	"github.com/domus-inc/domus/internal/domain/property"
	"github.com/domus-inc/domus/internal/domain/shared/events"
	"github.com/domus-inc/domus/internal/domain/ticket"
	vo "github.com/domus-inc/domus/internal/domain/ticket/valueobjects"
	"github.com/domus-inc/domus/internal/shared/errors"
	"github.com/domus-inc/domus/internal/shared/logger"
	"github.com/domus-inc/domus/internal/shared/services/sanitize"
)

type CreateTicketCommand struct {
	Title       string
	Description string
	Priority    string
	PropertyID  uint
	ReporterID  uint
}

type CreateTicketResult struct {
	TicketID    uint
	Status      string
	Priority    string
	SLADeadline time.Time
	CreatedAt   time.Time
}

type CreateTicketUseCase struct {
	ticketRepo   ticket.TicketRepository
	propertyRepo property.PropertyRepository
	publisher    events.EventPublisher
	logger       logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	propertyRepo property.PropertyRepository,
	publisher events.EventPublisher,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:   ticketRepo,
		propertyRepo: propertyRepo,
		publisher:    publisher,
		logger:       logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "title", cmd.Title, "reporter_id", cmd.ReporterID)

	if cmd.ReporterID == 0 {
		return nil, errors.NewValidationError("reporter ID is required")
	}

	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.PropertyID == 0 {
		return nil, errors.NewValidationError("property ID is required")
	}
	if _, err := uc.propertyRepo.GetByID(ctx, cmd.PropertyID); err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewValidationError("property does not exist")
		}
		return nil, err
	}

	title := sanitize.Text(cmd.Title)
	description := sanitize.Text(cmd.Description)

	newTicket, err := ticket.NewTicket(title, description, priority, cmd.ReporterID, cmd.PropertyID)
	if err != nil {
		uc.logger.Warnw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	uc.publishCreatedEvent(newTicket)

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID(), "status", newTicket.Status().String())

	return &CreateTicketResult{
		TicketID:    newTicket.ID(),
		Status:      newTicket.Status().String(),
		Priority:    newTicket.Priority().String(),
		SLADeadline: newTicket.SLADeadline(),
		CreatedAt:   newTicket.CreatedAt(),
	}, nil
}

// publishCreatedEvent hands the event to the dispatcher. Notification
// delivery is best-effort and must never fail the mutation.
func (uc *CreateTicketUseCase) publishCreatedEvent(t *ticket.Ticket) {
	event := ticket.NewTicketCreatedEvent(
		t.ID(),
		t.Title(),
		t.ReporterID(),
		t.Priority().String(),
		t.CreatedAt(),
	)
	if err := uc.publisher.Publish(event); err != nil {
		uc.logger.Warnw("failed to publish ticket created event", "ticket_id", t.ID(), "error", err)
	}
}
