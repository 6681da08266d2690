package valueobjects

import "fmt"

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

var validSeverities = map[Severity]bool{
	SeverityInfo:    true,
	SeveritySuccess: true,
	SeverityWarning: true,
	SeverityError:   true,
}

func (s Severity) String() string {
	return string(s)
}

func (s Severity) IsValid() bool {
	return validSeverities[s]
}

func (s Severity) IsInfo() bool {
	return s == SeverityInfo
}

func (s Severity) IsSuccess() bool {
	return s == SeveritySuccess
}

func (s Severity) IsWarning() bool {
	return s == SeverityWarning
}

func (s Severity) IsError() bool {
	return s == SeverityError
}

func NewSeverity(s string) (Severity, error) {
	sev := Severity(s)
	if !sev.IsValid() {
		return "", fmt.Errorf("invalid severity: %s", s)
	}
	return sev, nil
}
