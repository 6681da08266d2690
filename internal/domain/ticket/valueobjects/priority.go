package valueobjects

import "fmt"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

var validPriorities = map[Priority]bool{
	PriorityLow:    true,
	PriorityMedium: true,
	PriorityHigh:   true,
	PriorityUrgent: true,
}

var prioritySLAHours = map[Priority]int{
	PriorityLow:    168,
	PriorityMedium: 72,
	PriorityHigh:   48,
	PriorityUrgent: 24,
}

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	return validPriorities[p]
}

// GetSLAHours returns the resolution window for the priority. Unknown
// priorities get the widest window rather than failing.
func (p Priority) GetSLAHours() int {
	hours, ok := prioritySLAHours[p]
	if !ok {
		return 168
	}
	return hours
}

// NewPriority parses a client-supplied priority. An empty value defaults
// to medium so callers can omit the field entirely.
func NewPriority(s string) (Priority, error) {
	if s == "" {
		return PriorityMedium, nil
	}
	p := Priority(normalizePriority(s))
	if !p.IsValid() {
		return "", fmt.Errorf("invalid priority: %s", s)
	}
	return p, nil
}

// normalizePriority maps legacy client vocabulary onto the canonical set.
// Older clients send "critical" for the most severe tier.
func normalizePriority(s string) string {
	if s == "critical" {
		return string(PriorityUrgent)
	}
	return s
}

func (p Priority) IsLow() bool {
	return p == PriorityLow
}

func (p Priority) IsMedium() bool {
	return p == PriorityMedium
}

func (p Priority) IsHigh() bool {
	return p == PriorityHigh
}

func (p Priority) IsUrgent() bool {
	return p == PriorityUrgent
}
