package dto

import (
	"time"

	"github.com/domus-inc/domus/internal/domain/ticket"
)

type TicketDTO struct {
	ID            uint         `json:"id"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	Priority      string       `json:"priority"`
	Status        string       `json:"status"`
	ReporterID    uint         `json:"reporter_id"`
	ReporterName  string       `json:"reporter_name,omitempty"`
	ReporterEmail string       `json:"reporter_email,omitempty"`
	PropertyID    *uint        `json:"property_id"`
	PropertyTitle string       `json:"property_title,omitempty"`
	AssigneeID    *uint        `json:"assignee_id"`
	SLADeadline   time.Time    `json:"sla_deadline"`
	SLAState      string       `json:"sla_state"`
	ResolvedAt    *time.Time   `json:"resolved_at"`
	ClosedAt      *time.Time   `json:"closed_at"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
	Comments      []CommentDTO `json:"comments"`
}

type CommentDTO struct {
	ID         uint      `json:"id"`
	TicketID   uint      `json:"ticket_id"`
	AuthorID   uint      `json:"author_id"`
	Content    string    `json:"content"`
	IsInternal bool      `json:"is_internal"`
	CreatedAt  time.Time `json:"created_at"`
}

type TicketListItemDTO struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	ReporterID  uint      `json:"reporter_id"`
	PropertyID  *uint     `json:"property_id"`
	AssigneeID  *uint     `json:"assignee_id"`
	SLADeadline time.Time `json:"sla_deadline"`
	SLAState    string    `json:"sla_state"`
	IsOverdue   bool      `json:"is_overdue"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type HistoryEntryDTO struct {
	ID         uint      `json:"id"`
	TicketID   uint      `json:"ticket_id"`
	ChangedBy  uint      `json:"changed_by"`
	ChangeType string    `json:"change_type"`
	OldValue   string    `json:"old_value,omitempty"`
	NewValue   string    `json:"new_value"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToTicketDTO builds the detail view. Internal comments are dropped for
// readers that are not staff.
func ToTicketDTO(t *ticket.Ticket, comments []*ticket.Comment, isStaff bool, now time.Time, atRiskWindow time.Duration) *TicketDTO {
	if t == nil {
		return nil
	}

	commentDTOs := make([]CommentDTO, 0)
	for _, c := range comments {
		if c.IsInternal() && !isStaff {
			continue
		}
		commentDTOs = append(commentDTOs, ToCommentDTO(c))
	}

	return &TicketDTO{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Priority:    t.Priority().String(),
		Status:      t.Status().String(),
		ReporterID:  t.ReporterID(),
		PropertyID:  t.PropertyID(),
		AssigneeID:  t.AssigneeID(),
		SLADeadline: t.SLADeadline(),
		SLAState:    t.SLAState(now, atRiskWindow).String(),
		ResolvedAt:  t.ResolvedAt(),
		ClosedAt:    t.ClosedAt(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
		Comments:    commentDTOs,
	}
}

func ToCommentDTO(c *ticket.Comment) CommentDTO {
	return CommentDTO{
		ID:         c.ID(),
		TicketID:   c.TicketID(),
		AuthorID:   c.AuthorID(),
		Content:    c.Content(),
		IsInternal: c.IsInternal(),
		CreatedAt:  c.CreatedAt(),
	}
}

func ToTicketListItemDTO(t *ticket.Ticket, now time.Time, atRiskWindow time.Duration) TicketListItemDTO {
	return TicketListItemDTO{
		ID:          t.ID(),
		Title:       t.Title(),
		Priority:    t.Priority().String(),
		Status:      t.Status().String(),
		ReporterID:  t.ReporterID(),
		PropertyID:  t.PropertyID(),
		AssigneeID:  t.AssigneeID(),
		SLADeadline: t.SLADeadline(),
		SLAState:    t.SLAState(now, atRiskWindow).String(),
		IsOverdue:   t.IsOverdue(now),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

func ToTicketListItemDTOs(tickets []*ticket.Ticket, now time.Time, atRiskWindow time.Duration) []TicketListItemDTO {
	items := make([]TicketListItemDTO, 0, len(tickets))
	for _, t := range tickets {
		items = append(items, ToTicketListItemDTO(t, now, atRiskWindow))
	}
	return items
}

func ToHistoryEntryDTO(h *ticket.HistoryEntry) HistoryEntryDTO {
	return HistoryEntryDTO{
		ID:         h.ID(),
		TicketID:   h.TicketID(),
		ChangedBy:  h.ChangedBy(),
		ChangeType: string(h.ChangeType()),
		OldValue:   h.OldValue(),
		NewValue:   h.NewValue(),
		CreatedAt:  h.CreatedAt(),
	}
}
