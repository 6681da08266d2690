package valueobjects

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassifySLA_ResolvedBeforeDeadlineIsMet(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	deadline := now.Add(24 * time.Hour)
	resolvedAt := now.Add(-time.Hour)

	state := ClassifySLA(deadline, &resolvedAt, now, DefaultAtRiskWindow)
	assert.Equal(t, SLAMet, state)
}

func TestClassifySLA_ResolvedAfterDeadlineIsStillMet(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	deadline := now.Add(-48 * time.Hour)
	resolvedAt := now.Add(-time.Hour)

	state := ClassifySLA(deadline, &resolvedAt, now, DefaultAtRiskWindow)
	assert.Equal(t, SLAMet, state)
}

func TestClassifySLA_PastDeadlineIsOverdue(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	deadline := now.Add(-time.Minute)

	state := ClassifySLA(deadline, nil, now, DefaultAtRiskWindow)
	assert.Equal(t, SLAOverdue, state)
}

func TestClassifySLA_InsideWarningWindowIsAtRisk(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		deadline time.Time
	}{
		{"one minute left", now.Add(time.Minute)},
		{"exactly at window edge", now.Add(4 * time.Hour)},
		{"half the window left", now.Add(2 * time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := ClassifySLA(tt.deadline, nil, now, DefaultAtRiskWindow)
			assert.Equal(t, SLAAtRisk, state)
		})
	}
}

func TestClassifySLA_WellBeforeDeadlineIsOnTrack(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	deadline := now.Add(4*time.Hour + time.Second)

	state := ClassifySLA(deadline, nil, now, DefaultAtRiskWindow)
	assert.Equal(t, SLAOnTrack, state)
}

func TestClassifySLA_ZeroWindowUsesDefault(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	deadline := now.Add(3 * time.Hour)

	state := ClassifySLA(deadline, nil, now, 0)
	assert.Equal(t, SLAAtRisk, state)
}

func TestClassifySLA_CustomWindow(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	deadline := now.Add(3 * time.Hour)

	state := ClassifySLA(deadline, nil, now, time.Hour)
	assert.Equal(t, SLAOnTrack, state)
}
