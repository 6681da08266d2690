package usecases

import (
	"context"
	"time"

	"github.com/domus-inc/domus/internal/domain/property"
	"github.com/domus-inc/domus/internal/domain/shared/events"
	"github.com/domus-inc/domus/internal/domain/ticket"
	vo "github.com/domus-inc/domus/internal/domain/ticket/valueobjects"
	"github.com/domus-inc/domus/internal/shared/authorization"
	"github.com/domus-inc/domus/internal/shared/errors"
	"github.com/domus-inc/domus/internal/shared/logger"
)

type ChangeStatusCommand struct {
	TicketID  uint
	NewStatus string
	UserID    uint
	Role      authorization.UserRole
}

type ChangeStatusResult struct {
	TicketID  uint
	OldStatus string
	NewStatus string
	UpdatedAt time.Time
}

type ChangeStatusUseCase struct {
	ticketRepo   ticket.TicketRepository
	historyRepo  ticket.HistoryRepository
	propertyRepo property.PropertyRepository
	txManager    TransactionManager
	publisher    events.EventPublisher
	logger       logger.Interface
}

func NewChangeStatusUseCase(
	ticketRepo ticket.TicketRepository,
	historyRepo ticket.HistoryRepository,
	propertyRepo property.PropertyRepository,
	txManager TransactionManager,
	publisher events.EventPublisher,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		ticketRepo:   ticketRepo,
		historyRepo:  historyRepo,
		propertyRepo: propertyRepo,
		txManager:    txManager,
		publisher:    publisher,
		logger:       logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	uc.logger.Infow("executing change status use case",
		"ticket_id", cmd.TicketID, "new_status", cmd.NewStatus, "user_id", cmd.UserID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	newStatus, err := vo.NewTicketStatus(cmd.NewStatus)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if err := authorizeTicketMutation(ctx, t, cmd.UserID, cmd.Role, uc.propertyRepo); err != nil {
		return nil, err
	}

	oldStatus := t.Status()
	if oldStatus == newStatus {
		return &ChangeStatusResult{
			TicketID:  t.ID(),
			OldStatus: oldStatus.String(),
			NewStatus: newStatus.String(),
			UpdatedAt: t.UpdatedAt(),
		}, nil
	}

	if err := t.ChangeStatus(newStatus, cmd.UserID); err != nil {
		uc.logger.Warnw("status transition rejected",
			"ticket_id", t.ID(), "from", oldStatus.String(), "to", newStatus.String())
		return nil, errors.NewValidationError(err.Error())
	}

	entry, err := ticket.NewHistoryEntry(
		t.ID(),
		cmd.UserID,
		ticket.ChangeTypeStatus,
		oldStatus.String(),
		newStatus.String(),
	)
	if err != nil {
		return nil, errors.NewInternalError("failed to build history entry", err.Error())
	}

	// The ticket row and its history entry commit together.
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}
		return uc.historyRepo.Save(txCtx, entry)
	})
	if err != nil {
		uc.logger.Errorw("failed to persist status change", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	uc.publishStatusChangedEvent(t, oldStatus.String(), cmd.UserID)

	uc.logger.Infow("ticket status changed",
		"ticket_id", t.ID(), "from", oldStatus.String(), "to", newStatus.String())

	return &ChangeStatusResult{
		TicketID:  t.ID(),
		OldStatus: oldStatus.String(),
		NewStatus: newStatus.String(),
		UpdatedAt: t.UpdatedAt(),
	}, nil
}

func (uc *ChangeStatusUseCase) publishStatusChangedEvent(t *ticket.Ticket, oldStatus string, changedBy uint) {
	event := ticket.NewTicketStatusChangedEvent(
		t.ID(),
		t.Title(),
		t.ReporterID(),
		oldStatus,
		t.Status().String(),
		changedBy,
		t.UpdatedAt(),
	)
	if err := uc.publisher.Publish(event); err != nil {
		uc.logger.Warnw("failed to publish status changed event", "ticket_id", t.ID(), "error", err)
	}
}

// authorizeTicketMutation applies the mutation visibility rules shared by the
// status, priority, and update use cases. Admins and managers may touch any
// ticket, agents only tickets assigned to them, owners only tickets raised
// against their own properties.
func authorizeTicketMutation(
	ctx context.Context,
	t *ticket.Ticket,
	userID uint,
	role authorization.UserRole,
	propertyRepo property.PropertyRepository,
) error {
	switch role {
	case authorization.RoleAdmin, authorization.RoleManager:
		return nil
	case authorization.RoleAgent, authorization.RoleService:
		if t.AssigneeID() != nil && *t.AssigneeID() == userID {
			return nil
		}
	case authorization.RoleOwner:
		if t.PropertyID() != nil {
			prop, err := propertyRepo.GetByID(ctx, *t.PropertyID())
			if err == nil && prop.OwnerID() == userID {
				return nil
			}
		}
		if t.ReporterID() == userID {
			return nil
		}
	}

	return errors.NewForbiddenError("you do not have access to this ticket")
}
