package ticket

import (
	"fmt"
	"time"

	vo "github.com/domus-inc/domus/internal/domain/ticket/valueobjects"
	"github.com/domus-inc/domus/internal/shared/authorization"
)

type Ticket struct {
	id          uint
	title       string
	description string
	priority    vo.Priority
	status      vo.TicketStatus
	reporterID  uint
	propertyID  *uint
	assigneeID  *uint
	slaDeadline time.Time
	resolvedAt  *time.Time
	closedAt    *time.Time
	version     int
	createdAt   time.Time
	updatedAt   time.Time
	comments    []*Comment
}

func NewTicket(
	title string,
	description string,
	priority vo.Priority,
	reporterID uint,
	propertyID uint,
) (*Ticket, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if reporterID == 0 {
		return nil, fmt.Errorf("reporter ID is required")
	}
	if propertyID == 0 {
		return nil, fmt.Errorf("property ID is required")
	}

	now := time.Now().UTC()
	slaDeadline := now.Add(time.Duration(priority.GetSLAHours()) * time.Hour)

	t := &Ticket{
		title:       title,
		description: description,
		priority:    priority,
		status:      vo.StatusNew,
		reporterID:  reporterID,
		propertyID:  &propertyID,
		slaDeadline: slaDeadline,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
		comments:    []*Comment{},
	}

	return t, nil
}

func ReconstructTicket(
	id uint,
	title string,
	description string,
	priority vo.Priority,
	status vo.TicketStatus,
	reporterID uint,
	propertyID *uint,
	assigneeID *uint,
	slaDeadline time.Time,
	resolvedAt *time.Time,
	closedAt *time.Time,
	version int,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if slaDeadline.IsZero() {
		return nil, fmt.Errorf("sla deadline is required")
	}

	return &Ticket{
		id:          id,
		title:       title,
		description: description,
		priority:    priority,
		status:      status,
		reporterID:  reporterID,
		propertyID:  propertyID,
		assigneeID:  assigneeID,
		slaDeadline: slaDeadline,
		resolvedAt:  resolvedAt,
		closedAt:    closedAt,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		comments:    []*Comment{},
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) ReporterID() uint {
	return t.reporterID
}

func (t *Ticket) PropertyID() *uint {
	return t.propertyID
}

func (t *Ticket) AssigneeID() *uint {
	return t.assigneeID
}

func (t *Ticket) SLADeadline() time.Time {
	return t.slaDeadline
}

func (t *Ticket) ResolvedAt() *time.Time {
	return t.resolvedAt
}

func (t *Ticket) ClosedAt() *time.Time {
	return t.closedAt
}

func (t *Ticket) Version() int {
	return t.version
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) Comments() []*Comment {
	commentsCopy := make([]*Comment, len(t.comments))
	copy(commentsCopy, t.comments)
	return commentsCopy
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// AssignTo assigns the ticket to a user. A ticket that has not progressed
// past triage moves to assigned.
func (t *Ticket) AssignTo(assigneeID uint, assignedBy uint) error {
	if assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}
	if t.status.IsClosed() {
		return fmt.Errorf("cannot assign a closed ticket")
	}

	t.assigneeID = &assigneeID
	t.updatedAt = time.Now().UTC()
	t.version++

	if t.status.CanTransitionTo(vo.StatusAssigned) {
		t.status = vo.StatusAssigned
	}

	return nil
}

// ChangeStatus moves the ticket along the lifecycle. Illegal transitions are
// rejected; a no-op change returns nil without touching the version.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus, changedBy uint) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if t.status == newStatus {
		return nil
	}

	if !t.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", t.status, newStatus)
	}

	now := time.Now().UTC()
	t.status = newStatus
	t.updatedAt = now
	t.version++

	if newStatus.IsResolved() && t.resolvedAt == nil {
		t.resolvedAt = &now
	}

	if newStatus.IsClosed() && t.closedAt == nil {
		t.closedAt = &now
	}

	return nil
}

// ChangePriority updates the priority and recomputes the SLA deadline from
// the original creation time.
func (t *Ticket) ChangePriority(newPriority vo.Priority, changedBy uint) error {
	if !newPriority.IsValid() {
		return fmt.Errorf("invalid priority: %s", newPriority)
	}

	if t.priority == newPriority {
		return nil
	}

	t.priority = newPriority
	t.updatedAt = time.Now().UTC()
	t.version++

	if !t.createdAt.IsZero() {
		t.slaDeadline = t.createdAt.Add(time.Duration(newPriority.GetSLAHours()) * time.Hour)
	}

	return nil
}

func (t *Ticket) UpdateTitle(title string) error {
	if len(title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	t.title = title
	t.updatedAt = time.Now().UTC()
	t.version++
	return nil
}

func (t *Ticket) UpdateDescription(description string) error {
	if len(description) == 0 {
		return fmt.Errorf("description is required")
	}
	if len(description) > 5000 {
		return fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	t.description = description
	t.updatedAt = time.Now().UTC()
	t.version++
	return nil
}

func (t *Ticket) AddComment(comment *Comment) error {
	if comment == nil {
		return fmt.Errorf("comment cannot be nil")
	}

	if comment.TicketID() != t.id {
		return fmt.Errorf("comment ticket ID mismatch")
	}

	t.comments = append(t.comments, comment)
	t.updatedAt = time.Now().UTC()

	return nil
}

// SLAState classifies the ticket against its deadline at the given instant.
func (t *Ticket) SLAState(now time.Time, atRiskWindow time.Duration) vo.SLAState {
	resolvedAt := t.resolvedAt
	if resolvedAt == nil && t.closedAt != nil {
		resolvedAt = t.closedAt
	}
	return vo.ClassifySLA(t.slaDeadline, resolvedAt, now, atRiskWindow)
}

// IsOverdue reports whether an unresolved ticket has passed its deadline.
func (t *Ticket) IsOverdue(now time.Time) bool {
	if t.status.IsResolved() || t.status.IsClosed() {
		return false
	}
	return now.After(t.slaDeadline)
}

// CanBeViewedBy applies per-ticket visibility for roles whose scope is not
// already enforced by the query layer.
func (t *Ticket) CanBeViewedBy(userID uint, role authorization.UserRole) bool {
	switch role {
	case authorization.RoleAdmin, authorization.RoleManager:
		return true
	}

	if t.reporterID == userID {
		return true
	}

	if t.assigneeID != nil && *t.assigneeID == userID {
		return true
	}

	return false
}

func (t *Ticket) Validate() error {
	if len(t.title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(t.description) == 0 {
		return fmt.Errorf("description is required")
	}
	if !t.priority.IsValid() {
		return fmt.Errorf("invalid priority")
	}
	if !t.status.IsValid() {
		return fmt.Errorf("invalid status")
	}
	if t.reporterID == 0 {
		return fmt.Errorf("reporter ID is required")
	}
	return nil
}
