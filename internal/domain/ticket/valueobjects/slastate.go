package valueobjects

import "time"

// SLAState describes where a ticket stands against its resolution deadline.
type SLAState string

const (
	SLAOnTrack SLAState = "on_track"
	SLAAtRisk  SLAState = "at_risk"
	SLAOverdue SLAState = "overdue"
	SLAMet     SLAState = "met"
)

// DefaultAtRiskWindow is how close to the deadline an open ticket must be
// before it is flagged at risk.
const DefaultAtRiskWindow = 4 * time.Hour

func (s SLAState) String() string {
	return string(s)
}

func (s SLAState) IsValid() bool {
	switch s {
	case SLAOnTrack, SLAAtRisk, SLAOverdue, SLAMet:
		return true
	}
	return false
}

// ClassifySLA evaluates a ticket's SLA standing.
//
// A resolved ticket is met unconditionally; the deadline only matters while
// the ticket is still open. Open tickets move from on_track to at_risk inside
// the atRiskWindow before the deadline, and to overdue once the deadline has
// passed.
func ClassifySLA(deadline time.Time, resolvedAt *time.Time, now time.Time, atRiskWindow time.Duration) SLAState {
	if atRiskWindow <= 0 {
		atRiskWindow = DefaultAtRiskWindow
	}

	if resolvedAt != nil {
		return SLAMet
	}

	if now.After(deadline) {
		return SLAOverdue
	}
	if deadline.Sub(now) <= atRiskWindow {
		return SLAAtRisk
	}
	return SLAOnTrack
}
