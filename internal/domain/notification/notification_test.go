package notification

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/domus-inc/domus/internal/domain/notification/valueobjects"
)

func TestNewNotification_Valid(t *testing.T) {
	ticketID := uint(42)
	n, err := NewNotification(1, vo.SeverityInfo, "Ticket received", "We have logged your request", &ticketID)

	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, uint(0), n.ID(), "new notification should have zero ID")
	assert.Equal(t, uint(1), n.RecipientID())
	assert.Equal(t, vo.SeverityInfo, n.Severity())
	assert.Equal(t, "Ticket received", n.Title())
	assert.Equal(t, "We have logged your request", n.Message())
	require.NotNil(t, n.TicketID())
	assert.Equal(t, uint(42), *n.TicketID())
	assert.False(t, n.IsRead())
	assert.WithinDuration(t, time.Now().UTC(), n.CreatedAt(), 2*time.Second)
}

func TestNewNotification_AllSeverities(t *testing.T) {
	for _, sev := range []vo.Severity{vo.SeverityInfo, vo.SeveritySuccess, vo.SeverityWarning, vo.SeverityError} {
		t.Run(sev.String(), func(t *testing.T) {
			n, err := NewNotification(1, sev, "Title", "Message", nil)
			require.NoError(t, err)
			assert.Equal(t, sev, n.Severity())
		})
	}
}

func TestNewNotification_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		recipientID uint
		severity    vo.Severity
		title       string
		message     string
	}{
		{"zero recipient", 0, vo.SeverityInfo, "Title", "Message"},
		{"bad severity", 1, vo.Severity("fatal"), "Title", "Message"},
		{"empty title", 1, vo.SeverityInfo, "", "Message"},
		{"title too long", 1, vo.SeverityInfo, strings.Repeat("x", 201), "Message"},
		{"empty message", 1, vo.SeverityInfo, "Title", ""},
		{"message too long", 1, vo.SeverityInfo, "Title", strings.Repeat("x", 5001)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewNotification(tt.recipientID, tt.severity, tt.title, tt.message, nil)
			assert.Error(t, err)
		})
	}
}

func TestMarkAsRead_Idempotent(t *testing.T) {
	n, err := NewNotification(1, vo.SeveritySuccess, "Resolved", "Your ticket was resolved", nil)
	require.NoError(t, err)

	require.NoError(t, n.MarkAsRead())
	assert.True(t, n.IsRead())
	versionAfterFirst := n.Version()

	require.NoError(t, n.MarkAsRead())
	assert.Equal(t, versionAfterFirst, n.Version(), "second mark must be a no-op")
}

func TestReconstructNotification(t *testing.T) {
	now := time.Now().UTC()
	n, err := ReconstructNotification(5, 1, vo.SeverityWarning, "SLA at risk", "Deadline approaching", nil, true, 2, now, now)

	require.NoError(t, err)
	assert.Equal(t, uint(5), n.ID())
	assert.True(t, n.IsRead())
	assert.Equal(t, 2, n.Version())

	_, err = ReconstructNotification(0, 1, vo.SeverityWarning, "t", "m", nil, false, 1, now, now)
	assert.Error(t, err)
}
