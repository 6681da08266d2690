package ticket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHistoryEntry_Valid(t *testing.T) {
	h, err := NewHistoryEntry(1, 2, ChangeTypeStatus, "new", "classified")

	require.NoError(t, err)
	assert.Equal(t, uint(1), h.TicketID())
	assert.Equal(t, uint(2), h.ChangedBy())
	assert.Equal(t, ChangeTypeStatus, h.ChangeType())
	assert.Equal(t, "new", h.OldValue())
	assert.Equal(t, "classified", h.NewValue())
	assert.False(t, h.CreatedAt().IsZero())
}

func TestNewHistoryEntry_EmptyOldValueAllowed(t *testing.T) {
	// First assignment has no previous assignee.
	h, err := NewHistoryEntry(1, 2, ChangeTypeAssignment, "", "9")
	require.NoError(t, err)
	assert.Equal(t, "", h.OldValue())
}

func TestNewHistoryEntry_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		ticketID   uint
		changedBy  uint
		changeType ChangeType
		newValue   string
	}{
		{"zero ticket", 0, 2, ChangeTypeStatus, "classified"},
		{"zero changed-by", 1, 0, ChangeTypeStatus, "classified"},
		{"bad change type", 1, 2, ChangeType("rename"), "x"},
		{"empty new value", 1, 2, ChangeTypeStatus, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHistoryEntry(tt.ticketID, tt.changedBy, tt.changeType, "old", tt.newValue)
			assert.Error(t, err)
		})
	}
}
