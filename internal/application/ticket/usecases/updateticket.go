package usecases

import (
	"context"
	"time"

	"github.com/domus-inc/domus/internal/domain/property"
	"github.com/domus-inc/domus/internal/domain/ticket"
	vo "github.com/domus-inc/domus/internal/domain/ticket/valueobjects"
	"github.com/domus-inc/domus/internal/shared/authorization"
	"github.com/domus-inc/domus/internal/shared/errors"
	"github.com/domus-inc/domus/internal/shared/logger"
	"github.com/domus-inc/domus/internal/shared/services/sanitize"
)

// UpdateTicketCommand carries the partial update. Nil fields are left
// untouched.
type UpdateTicketCommand struct {
	TicketID    uint
	Title       *string
	Description *string
	Priority    *string
	UserID      uint
	Role        authorization.UserRole
}

type UpdateTicketResult struct {
	TicketID  uint
	Priority  string
	Status    string
	UpdatedAt time.Time
}

type UpdateTicketUseCase struct {
	ticketRepo   ticket.TicketRepository
	historyRepo  ticket.HistoryRepository
	propertyRepo property.PropertyRepository
	txManager    TransactionManager
	logger       logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	historyRepo ticket.HistoryRepository,
	propertyRepo property.PropertyRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo:   ticketRepo,
		historyRepo:  historyRepo,
		propertyRepo: propertyRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID, "user_id", cmd.UserID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.Title == nil && cmd.Description == nil && cmd.Priority == nil {
		return nil, errors.NewValidationError("no fields to update")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if err := authorizeTicketMutation(ctx, t, cmd.UserID, cmd.Role, uc.propertyRepo); err != nil {
		return nil, err
	}
	if t.Status().IsTerminal() {
		return nil, errors.NewValidationError("cannot update a closed ticket")
	}

	if cmd.Title != nil {
		if err := t.UpdateTitle(sanitize.Text(*cmd.Title)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Description != nil {
		if err := t.UpdateDescription(sanitize.Text(*cmd.Description)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	var historyEntry *ticket.HistoryEntry
	if cmd.Priority != nil {
		newPriority, err := vo.NewPriority(*cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}

		oldPriority := t.Priority()
		if oldPriority != newPriority {
			if err := t.ChangePriority(newPriority, cmd.UserID); err != nil {
				return nil, errors.NewValidationError(err.Error())
			}
			historyEntry, err = ticket.NewHistoryEntry(
				t.ID(),
				cmd.UserID,
				ticket.ChangeTypePriority,
				oldPriority.String(),
				newPriority.String(),
			)
			if err != nil {
				return nil, errors.NewInternalError("failed to build history entry", err.Error())
			}
		}
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}
		if historyEntry != nil {
			return uc.historyRepo.Save(txCtx, historyEntry)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to persist ticket update", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket updated", "ticket_id", t.ID())

	return &UpdateTicketResult{
		TicketID:  t.ID(),
		Priority:  t.Priority().String(),
		Status:    t.Status().String(),
		UpdatedAt: t.UpdatedAt(),
	}, nil
}
