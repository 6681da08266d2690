package mappers

import (
	"time"

	"github.com/domus-inc/domus/internal/domain/ticket"
	vo "github.com/domus-inc/domus/internal/domain/ticket/valueobjects"
	"github.com/domus-inc/domus/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model.
	ToModel(t *ticket.Ticket) *models.TicketModel

	// ToDomain converts a ticket persistence model to a domain entity.
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)

	// CommentToModel converts a comment domain entity to a persistence model.
	CommentToModel(c *ticket.Comment) *models.CommentModel

	// CommentToDomain converts a comment persistence model to a domain entity.
	CommentToDomain(model *models.CommentModel) (*ticket.Comment, error)

	// HistoryToModel converts a history entry domain entity to a persistence model.
	HistoryToModel(h *ticket.HistoryEntry) *models.HistoryModel

	// HistoryToDomain converts a history persistence model to a domain entity.
	HistoryToDomain(model *models.HistoryModel) (*ticket.HistoryEntry, error)
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

// ToModel converts a ticket domain entity to a persistence model.
func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	model := &models.TicketModel{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Priority:    t.Priority().String(),
		Status:      t.Status().String(),
		ReporterID:  t.ReporterID(),
		PropertyID:  t.PropertyID(),
		AssigneeID:  t.AssigneeID(),
		SLADeadline: t.SLADeadline().UnixMilli(),
		Version:     t.Version(),
		CreatedAt:   t.CreatedAt().UnixMilli(),
		UpdatedAt:   t.UpdatedAt().UnixMilli(),
	}

	if t.ResolvedAt() != nil {
		resolved := t.ResolvedAt().UnixMilli()
		model.ResolvedAt = &resolved
	}

	if t.ClosedAt() != nil {
		closed := t.ClosedAt().UnixMilli()
		model.ClosedAt = &closed
	}

	return model
}

// ToDomain converts a ticket persistence model to a domain entity.
// Comments must be loaded separately by the repository.
func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, err
	}
	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, err
	}

	createdAt := millisToTime(model.CreatedAt)
	updatedAt := millisToTime(model.UpdatedAt)
	slaDeadline := millisToTime(model.SLADeadline)

	var resolvedAt, closedAt *time.Time
	if model.ResolvedAt != nil {
		t := millisToTime(*model.ResolvedAt)
		resolvedAt = &t
	}
	if model.ClosedAt != nil {
		t := millisToTime(*model.ClosedAt)
		closedAt = &t
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Title,
		model.Description,
		priority,
		status,
		model.ReporterID,
		model.PropertyID,
		model.AssigneeID,
		slaDeadline,
		resolvedAt,
		closedAt,
		model.Version,
		createdAt,
		updatedAt,
	)
}

// CommentToModel converts a comment domain entity to a persistence model.
func (m *TicketMapperImpl) CommentToModel(c *ticket.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:         c.ID(),
		TicketID:   c.TicketID(),
		AuthorID:   c.AuthorID(),
		Content:    c.Content(),
		IsInternal: c.IsInternal(),
		CreatedAt:  c.CreatedAt().UnixMilli(),
		UpdatedAt:  c.UpdatedAt().UnixMilli(),
	}
}

// CommentToDomain converts a comment persistence model to a domain entity.
func (m *TicketMapperImpl) CommentToDomain(model *models.CommentModel) (*ticket.Comment, error) {
	createdAt := millisToTime(model.CreatedAt)
	updatedAt := millisToTime(model.UpdatedAt)

	return ticket.ReconstructComment(
		model.ID,
		model.TicketID,
		model.AuthorID,
		model.Content,
		model.IsInternal,
		createdAt,
		updatedAt,
	)
}

// HistoryToModel converts a history entry domain entity to a persistence model.
func (m *TicketMapperImpl) HistoryToModel(h *ticket.HistoryEntry) *models.HistoryModel {
	return &models.HistoryModel{
		ID:         h.ID(),
		TicketID:   h.TicketID(),
		ChangedBy:  h.ChangedBy(),
		ChangeType: string(h.ChangeType()),
		OldValue:   h.OldValue(),
		NewValue:   h.NewValue(),
		CreatedAt:  h.CreatedAt().UnixMilli(),
	}
}

// HistoryToDomain converts a history persistence model to a domain entity.
func (m *TicketMapperImpl) HistoryToDomain(model *models.HistoryModel) (*ticket.HistoryEntry, error) {
	return ticket.ReconstructHistoryEntry(
		model.ID,
		model.TicketID,
		model.ChangedBy,
		ticket.ChangeType(model.ChangeType),
		model.OldValue,
		model.NewValue,
		millisToTime(model.CreatedAt),
	)
}

func millisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond)).UTC()
}
