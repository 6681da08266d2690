package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriority_SLAHours(t *testing.T) {
	tests := []struct {
		priority Priority
		hours    int
	}{
		{PriorityUrgent, 24},
		{PriorityHigh, 48},
		{PriorityMedium, 72},
		{PriorityLow, 168},
	}

	for _, tt := range tests {
		t.Run(tt.priority.String(), func(t *testing.T) {
			assert.Equal(t, tt.hours, tt.priority.GetSLAHours())
		})
	}
}

func TestPriority_SLAHoursUnknownFallsBackToWidest(t *testing.T) {
	assert.Equal(t, 168, Priority("bogus").GetSLAHours())
}

func TestNewPriority_ValidValues(t *testing.T) {
	for _, s := range []string{"low", "medium", "high", "urgent"} {
		t.Run(s, func(t *testing.T) {
			p, err := NewPriority(s)
			require.NoError(t, err)
			assert.Equal(t, s, p.String())
		})
	}
}

// TestNewPriority_CriticalAlias verifies the legacy "critical" tier maps to
// urgent rather than being rejected.
func TestNewPriority_CriticalAlias(t *testing.T) {
	p, err := NewPriority("critical")
	require.NoError(t, err)
	assert.Equal(t, PriorityUrgent, p)
}

// TestNewPriority_EmptyDefaultsToMedium verifies an omitted priority
// falls back to the medium tier instead of being rejected.
func TestNewPriority_EmptyDefaultsToMedium(t *testing.T) {
	p, err := NewPriority("")
	require.NoError(t, err)
	assert.Equal(t, PriorityMedium, p)
}

func TestNewPriority_Invalid(t *testing.T) {
	for _, s := range []string{"URGENT", "severe", "p1"} {
		t.Run(s, func(t *testing.T) {
			_, err := NewPriority(s)
			assert.Error(t, err)
		})
	}
}
