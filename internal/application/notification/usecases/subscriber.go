package usecases

import (
	"context"
	"fmt"

	"github.com/domus-inc/domus/internal/domain/notification"
	vo "github.com/domus-inc/domus/internal/domain/notification/valueobjects"
	"github.com/domus-inc/domus/internal/domain/profile"
	"github.com/domus-inc/domus/internal/domain/shared/events"
	"github.com/domus-inc/domus/internal/domain/ticket"
	"github.com/domus-inc/domus/internal/infrastructure/email"
	"github.com/domus-inc/domus/internal/shared/logger"
)

// TicketEventSubscriber materializes ticket domain events into notification
// rows. Delivery is best-effort: a failed write is logged and dropped, it
// never reaches the publishing use case. The email sender is an optional
// second channel; a nil sender disables it.
type TicketEventSubscriber struct {
	notificationRepo notification.NotificationRepository
	profileRepo      profile.ProfileRepository
	emailSender      email.Sender
	logger           logger.Interface
}

func NewTicketEventSubscriber(
	notificationRepo notification.NotificationRepository,
	profileRepo profile.ProfileRepository,
	emailSender email.Sender,
	logger logger.Interface,
) *TicketEventSubscriber {
	return &TicketEventSubscriber{
		notificationRepo: notificationRepo,
		profileRepo:      profileRepo,
		emailSender:      emailSender,
		logger:           logger,
	}
}

// Register subscribes the handler for every ticket event type it consumes.
func (s *TicketEventSubscriber) Register(subscriber events.EventSubscriber) error {
	for _, eventType := range []string{
		ticket.EventTicketCreated,
		ticket.EventTicketStatusChanged,
		ticket.EventTicketAssigned,
		ticket.EventCommentAdded,
	} {
		if err := subscriber.Subscribe(eventType, s); err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", eventType, err)
		}
	}
	return nil
}

func (s *TicketEventSubscriber) CanHandle(eventType string) bool {
	switch eventType {
	case ticket.EventTicketCreated, ticket.EventTicketStatusChanged, ticket.EventTicketAssigned, ticket.EventCommentAdded:
		return true
	}
	return false
}

func (s *TicketEventSubscriber) Handle(event events.DomainEvent) error {
	ctx := context.Background()

	switch e := event.(type) {
	case ticket.TicketCreatedEvent:
		return s.handleTicketCreated(ctx, e)
	case ticket.TicketStatusChangedEvent:
		return s.handleStatusChanged(ctx, e)
	case ticket.TicketAssignedEvent:
		return s.handleAssigned(ctx, e)
	case ticket.CommentAddedEvent:
		return s.handleCommentAdded(ctx, e)
	default:
		s.logger.Warnw("unexpected event type", "event_type", event.GetEventType())
		return nil
	}
}

func (s *TicketEventSubscriber) handleTicketCreated(ctx context.Context, e ticket.TicketCreatedEvent) error {
	title := "Ticket opened"
	message := fmt.Sprintf("Your ticket %q has been opened with %s priority.", e.Title, e.Priority)

	if err := s.deliver(ctx, e.ReporterID, vo.SeverityInfo, title, message, e.TicketID); err != nil {
		return err
	}

	s.sendEmail(ctx, e.ReporterID, func(to string) error {
		return s.emailSender.SendTicketCreatedEmail(to, e.Title, e.TicketID)
	})
	return nil
}

func (s *TicketEventSubscriber) handleStatusChanged(ctx context.Context, e ticket.TicketStatusChangedEvent) error {
	severity := vo.SeverityInfo
	if e.NewStatus == "resolved" || e.NewStatus == "closed" {
		severity = vo.SeveritySuccess
	}

	title := "Ticket status updated"
	message := fmt.Sprintf("Your ticket %q is now %s.", e.Title, e.NewStatus)

	if err := s.deliver(ctx, e.ReporterID, severity, title, message, e.TicketID); err != nil {
		return err
	}

	s.sendEmail(ctx, e.ReporterID, func(to string) error {
		return s.emailSender.SendTicketStatusChangedEmail(to, e.Title, e.TicketID, e.NewStatus)
	})
	return nil
}

func (s *TicketEventSubscriber) handleAssigned(ctx context.Context, e ticket.TicketAssignedEvent) error {
	title := "Ticket assigned to you"
	message := fmt.Sprintf("Ticket %q has been assigned to you.", e.Title)

	if err := s.deliver(ctx, e.AssigneeID, vo.SeverityInfo, title, message, e.TicketID); err != nil {
		return err
	}

	s.sendEmail(ctx, e.AssigneeID, func(to string) error {
		return s.emailSender.SendTicketAssignedEmail(to, e.Title, e.TicketID)
	})
	return nil
}

func (s *TicketEventSubscriber) handleCommentAdded(ctx context.Context, e ticket.CommentAddedEvent) error {
	// Internal comments stay inside the staff wall, and nobody needs a
	// notification about their own comment.
	if e.IsInternal || e.AuthorID == e.ReporterID {
		return nil
	}

	title := "New comment on your ticket"
	message := "A new comment has been added to your ticket."

	return s.deliver(ctx, e.ReporterID, vo.SeverityInfo, title, message, e.TicketID)
}

func (s *TicketEventSubscriber) deliver(
	ctx context.Context,
	recipientID uint,
	severity vo.Severity,
	title string,
	message string,
	ticketID uint,
) error {
	n, err := notification.NewNotification(recipientID, severity, title, message, &ticketID)
	if err != nil {
		s.logger.Errorw("failed to build notification", "recipient_id", recipientID, "ticket_id", ticketID, "error", err)
		return err
	}

	if err := s.notificationRepo.Create(ctx, n); err != nil {
		s.logger.Errorw("failed to persist notification", "recipient_id", recipientID, "ticket_id", ticketID, "error", err)
		return err
	}

	return nil
}

func (s *TicketEventSubscriber) sendEmail(ctx context.Context, recipientID uint, send func(to string) error) {
	if s.emailSender == nil {
		return
	}

	recipient, err := s.profileRepo.GetByID(ctx, recipientID)
	if err != nil {
		s.logger.Warnw("failed to load recipient profile for email", "recipient_id", recipientID, "error", err)
		return
	}

	if err := send(recipient.Email()); err != nil {
		s.logger.Warnw("failed to send notification email", "recipient_id", recipientID, "error", err)
	}
}
