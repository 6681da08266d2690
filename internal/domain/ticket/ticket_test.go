package ticket

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/domus-inc/domus/internal/domain/ticket/valueobjects"
	"github.com/domus-inc/domus/internal/shared/authorization"
)

func TestNewTicket_Valid(t *testing.T) {
	tk, err := NewTicket("Leaking tap", "Kitchen tap drips constantly", vo.PriorityHigh, 7, 3)

	require.NoError(t, err)
	require.NotNil(t, tk)
	assert.Equal(t, uint(0), tk.ID(), "new ticket should have zero ID")
	assert.Equal(t, "Leaking tap", tk.Title())
	assert.Equal(t, vo.StatusNew, tk.Status())
	assert.Equal(t, vo.PriorityHigh, tk.Priority())
	assert.Equal(t, uint(7), tk.ReporterID())
	require.NotNil(t, tk.PropertyID())
	assert.Equal(t, uint(3), *tk.PropertyID())
	assert.Nil(t, tk.AssigneeID())
	assert.Nil(t, tk.ResolvedAt())
	assert.Nil(t, tk.ClosedAt())
	assert.Equal(t, 1, tk.Version())
}

// TestNewTicket_SLADeadlineFromPriority verifies the deadline is creation
// time plus the priority's resolution window.
func TestNewTicket_SLADeadlineFromPriority(t *testing.T) {
	tests := []struct {
		priority vo.Priority
		hours    int
	}{
		{vo.PriorityUrgent, 24},
		{vo.PriorityHigh, 48},
		{vo.PriorityMedium, 72},
		{vo.PriorityLow, 168},
	}

	for _, tt := range tests {
		t.Run(tt.priority.String(), func(t *testing.T) {
			tk, err := NewTicket("Title", "Description", tt.priority, 1, 3)
			require.NoError(t, err)

			expected := tk.CreatedAt().Add(time.Duration(tt.hours) * time.Hour)
			assert.Equal(t, expected, tk.SLADeadline())
		})
	}
}

func TestNewTicket_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		priority    vo.Priority
		reporterID  uint
		propertyID  uint
	}{
		{"empty title", "", "desc", vo.PriorityLow, 1, 3},
		{"title too long", strings.Repeat("x", 201), "desc", vo.PriorityLow, 1, 3},
		{"empty description", "title", "", vo.PriorityLow, 1, 3},
		{"description too long", "title", strings.Repeat("x", 5001), vo.PriorityLow, 1, 3},
		{"invalid priority", "title", "desc", vo.Priority("bogus"), 1, 3},
		{"zero reporter", "title", "desc", vo.PriorityLow, 0, 3},
		{"missing property", "title", "desc", vo.PriorityLow, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTicket(tt.title, tt.description, tt.priority, tt.reporterID, tt.propertyID)
			assert.Error(t, err)
		})
	}
}

func TestChangeStatus_LegalTransition(t *testing.T) {
	tk := mustNewTicket(t)

	err := tk.ChangeStatus(vo.StatusClassified, 2)
	require.NoError(t, err)
	assert.Equal(t, vo.StatusClassified, tk.Status())
	assert.Equal(t, 2, tk.Version())
}

func TestChangeStatus_DirectResolveFromNew(t *testing.T) {
	tk := mustNewTicket(t)

	err := tk.ChangeStatus(vo.StatusResolved, 2)
	require.NoError(t, err)
	assert.Equal(t, vo.StatusResolved, tk.Status())
	require.NotNil(t, tk.ResolvedAt())
}

func TestChangeStatus_IllegalTransitionRejected(t *testing.T) {
	tk := mustNewTicket(t)

	err := tk.ChangeStatus(vo.StatusClosed, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot transition")
	assert.Equal(t, vo.StatusNew, tk.Status())
	assert.Equal(t, 1, tk.Version(), "failed transition must not bump version")
}

func TestChangeStatus_ResolvedThenClosed(t *testing.T) {
	tk := mustNewTicket(t)

	require.NoError(t, tk.ChangeStatus(vo.StatusResolved, 2))
	require.NoError(t, tk.ChangeStatus(vo.StatusClosed, 2))

	assert.Equal(t, vo.StatusClosed, tk.Status())
	require.NotNil(t, tk.ClosedAt())
	require.NotNil(t, tk.ResolvedAt())
}

func TestChangeStatus_ClosedIsTerminal(t *testing.T) {
	tk := mustNewTicket(t)
	require.NoError(t, tk.ChangeStatus(vo.StatusResolved, 2))
	require.NoError(t, tk.ChangeStatus(vo.StatusClosed, 2))

	for _, target := range []vo.TicketStatus{vo.StatusNew, vo.StatusClassified, vo.StatusAssigned, vo.StatusInProgress, vo.StatusResolved} {
		assert.Error(t, tk.ChangeStatus(target, 2))
	}
}

func TestChangeStatus_SameStatusIsNoOp(t *testing.T) {
	tk := mustNewTicket(t)

	err := tk.ChangeStatus(vo.StatusNew, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, tk.Version())
}

func TestAssignTo_MovesNewTicketToAssigned(t *testing.T) {
	tk := mustNewTicket(t)

	err := tk.AssignTo(9, 2)
	require.NoError(t, err)
	require.NotNil(t, tk.AssigneeID())
	assert.Equal(t, uint(9), *tk.AssigneeID())
	assert.Equal(t, vo.StatusAssigned, tk.Status())
}

func TestAssignTo_DoesNotRegressWorkedTicket(t *testing.T) {
	tk := mustNewTicket(t)
	require.NoError(t, tk.ChangeStatus(vo.StatusInProgress, 2))

	err := tk.AssignTo(9, 2)
	require.NoError(t, err)
	assert.Equal(t, vo.StatusInProgress, tk.Status())
}

func TestAssignTo_ClosedTicketRejected(t *testing.T) {
	tk := mustNewTicket(t)
	require.NoError(t, tk.ChangeStatus(vo.StatusResolved, 2))
	require.NoError(t, tk.ChangeStatus(vo.StatusClosed, 2))

	assert.Error(t, tk.AssignTo(9, 2))
}

func TestChangePriority_RecomputesDeadlineFromCreation(t *testing.T) {
	tk := mustNewTicket(t)

	err := tk.ChangePriority(vo.PriorityUrgent, 2)
	require.NoError(t, err)
	assert.Equal(t, tk.CreatedAt().Add(24*time.Hour), tk.SLADeadline())
}

func TestSLAState_ResolvedTicketIsMetOrMissed(t *testing.T) {
	tk := mustNewTicket(t)
	require.NoError(t, tk.ChangeStatus(vo.StatusResolved, 2))

	state := tk.SLAState(time.Now().UTC(), 0)
	assert.Equal(t, vo.SLAMet, state)
}

func TestSLAState_OpenTicketPastDeadlineIsOverdue(t *testing.T) {
	tk := mustNewTicket(t)

	future := tk.SLADeadline().Add(time.Minute)
	assert.Equal(t, vo.SLAOverdue, tk.SLAState(future, 0))
	assert.True(t, tk.IsOverdue(future))
}

func TestIsOverdue_ResolvedTicketNeverOverdue(t *testing.T) {
	tk := mustNewTicket(t)
	require.NoError(t, tk.ChangeStatus(vo.StatusResolved, 2))

	future := tk.SLADeadline().Add(time.Hour)
	assert.False(t, tk.IsOverdue(future))
}

func TestCanBeViewedBy(t *testing.T) {
	tk := mustNewTicket(t)
	require.NoError(t, tk.AssignTo(9, 2))

	assert.True(t, tk.CanBeViewedBy(100, authorization.RoleAdmin))
	assert.True(t, tk.CanBeViewedBy(100, authorization.RoleManager))
	assert.True(t, tk.CanBeViewedBy(7, authorization.RoleTenant), "reporter can view own ticket")
	assert.True(t, tk.CanBeViewedBy(9, authorization.RoleAgent), "assignee can view ticket")
	assert.False(t, tk.CanBeViewedBy(100, authorization.RoleTenant))
	assert.False(t, tk.CanBeViewedBy(100, authorization.RoleAgent))
	assert.False(t, tk.CanBeViewedBy(100, authorization.UserRole("superuser")),
		"unrecognized role gets no blanket visibility")
}

func TestAddComment(t *testing.T) {
	tk := mustNewTicket(t)
	require.NoError(t, tk.SetID(5))

	c, err := NewComment(5, 7, "Any update on this?", false)
	require.NoError(t, err)

	require.NoError(t, tk.AddComment(c))
	assert.Len(t, tk.Comments(), 1)
}

func TestAddComment_TicketIDMismatch(t *testing.T) {
	tk := mustNewTicket(t)
	require.NoError(t, tk.SetID(5))

	c, err := NewComment(6, 7, "wrong ticket", false)
	require.NoError(t, err)

	assert.Error(t, tk.AddComment(c))
}

func TestSetID_Guards(t *testing.T) {
	tk := mustNewTicket(t)

	assert.Error(t, tk.SetID(0))
	require.NoError(t, tk.SetID(3))
	assert.Error(t, tk.SetID(4))
}

func mustNewTicket(t *testing.T) *Ticket {
	t.Helper()
	tk, err := NewTicket("Leaking tap", "Kitchen tap drips constantly", vo.PriorityHigh, 7, 3)
	require.NoError(t, err)
	return tk
}
