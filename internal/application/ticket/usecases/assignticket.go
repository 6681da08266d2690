package usecases

import (
	"context"
	"strconv"
	"time"

	"github.com/domus-inc/domus/internal/domain/profile"
	"github.com/domus-inc/domus/internal/domain/shared/events"
	"github.com/domus-inc/domus/internal/domain/ticket"
	"github.com/domus-inc/domus/internal/shared/errors"
	"github.com/domus-inc/domus/internal/shared/logger"
)

type AssignTicketCommand struct {
	TicketID   uint
	AssigneeID uint
	AssignedBy uint
}

type AssignTicketResult struct {
	TicketID   uint
	AssigneeID uint
	Status     string
	UpdatedAt  time.Time
}

type AssignTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	historyRepo ticket.HistoryRepository
	profileRepo profile.ProfileRepository
	txManager   TransactionManager
	publisher   events.EventPublisher
	logger      logger.Interface
}

func NewAssignTicketUseCase(
	ticketRepo ticket.TicketRepository,
	historyRepo ticket.HistoryRepository,
	profileRepo profile.ProfileRepository,
	txManager TransactionManager,
	publisher events.EventPublisher,
	logger logger.Interface,
) *AssignTicketUseCase {
	return &AssignTicketUseCase{
		ticketRepo:  ticketRepo,
		historyRepo: historyRepo,
		profileRepo: profileRepo,
		txManager:   txManager,
		publisher:   publisher,
		logger:      logger,
	}
}

func (uc *AssignTicketUseCase) Execute(ctx context.Context, cmd AssignTicketCommand) (*AssignTicketResult, error) {
	uc.logger.Infow("executing assign ticket use case",
		"ticket_id", cmd.TicketID, "assignee_id", cmd.AssigneeID, "assigned_by", cmd.AssignedBy)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.AssigneeID == 0 {
		return nil, errors.NewValidationError("assignee ID is required")
	}

	assignee, err := uc.profileRepo.GetByID(ctx, cmd.AssigneeID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewValidationError("assignee does not exist")
		}
		return nil, err
	}
	if !assignee.Role().IsStaff() {
		return nil, errors.NewValidationError("assignee must be a staff member")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	oldAssignee := ""
	if t.AssigneeID() != nil {
		if *t.AssigneeID() == cmd.AssigneeID {
			return &AssignTicketResult{
				TicketID:   t.ID(),
				AssigneeID: cmd.AssigneeID,
				Status:     t.Status().String(),
				UpdatedAt:  t.UpdatedAt(),
			}, nil
		}
		oldAssignee = strconv.FormatUint(uint64(*t.AssigneeID()), 10)
	}
	oldStatus := t.Status()

	if err := t.AssignTo(cmd.AssigneeID, cmd.AssignedBy); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	entries, err := uc.buildHistoryEntries(t, oldAssignee, oldStatus.String(), cmd)
	if err != nil {
		return nil, err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}
		for _, entry := range entries {
			if err := uc.historyRepo.Save(txCtx, entry); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to persist assignment", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	uc.publishAssignedEvent(t, cmd.AssignedBy)

	uc.logger.Infow("ticket assigned",
		"ticket_id", t.ID(), "assignee_id", cmd.AssigneeID, "status", t.Status().String())

	return &AssignTicketResult{
		TicketID:   t.ID(),
		AssigneeID: cmd.AssigneeID,
		Status:     t.Status().String(),
		UpdatedAt:  t.UpdatedAt(),
	}, nil
}

// buildHistoryEntries records the assignment itself and, when triage moved
// the ticket to assigned, the implied status change.
func (uc *AssignTicketUseCase) buildHistoryEntries(
	t *ticket.Ticket,
	oldAssignee string,
	oldStatus string,
	cmd AssignTicketCommand,
) ([]*ticket.HistoryEntry, error) {
	newAssignee := strconv.FormatUint(uint64(cmd.AssigneeID), 10)

	assignment, err := ticket.NewHistoryEntry(t.ID(), cmd.AssignedBy, ticket.ChangeTypeAssignment, oldAssignee, newAssignee)
	if err != nil {
		return nil, errors.NewInternalError("failed to build history entry", err.Error())
	}

	entries := []*ticket.HistoryEntry{assignment}

	if t.Status().String() != oldStatus {
		statusEntry, err := ticket.NewHistoryEntry(t.ID(), cmd.AssignedBy, ticket.ChangeTypeStatus, oldStatus, t.Status().String())
		if err != nil {
			return nil, errors.NewInternalError("failed to build history entry", err.Error())
		}
		entries = append(entries, statusEntry)
	}

	return entries, nil
}

func (uc *AssignTicketUseCase) publishAssignedEvent(t *ticket.Ticket, assignedBy uint) {
	if t.AssigneeID() == nil {
		return
	}
	event := ticket.NewTicketAssignedEvent(
		t.ID(),
		t.Title(),
		*t.AssigneeID(),
		assignedBy,
		t.UpdatedAt(),
	)
	if err := uc.publisher.Publish(event); err != nil {
		uc.logger.Warnw("failed to publish ticket assigned event", "ticket_id", t.ID(), "error", err)
	}
}
