// Package sanitize strips markup from user-supplied free text before it is
// stored. Ticket titles, descriptions and comments all pass through here.
package sanitize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

type Service struct {
	policy *bluemonday.Policy
}

var (
	instance *Service
	once     sync.Once
)

// GetService returns the singleton sanitizer.
func GetService() *Service {
	once.Do(func() {
		instance = &Service{
			policy: bluemonday.StrictPolicy(),
		}
	})
	return instance
}

// Text removes all HTML from the input and trims surrounding whitespace.
func (s *Service) Text(input string) string {
	return strings.TrimSpace(s.policy.Sanitize(input))
}

// Text is a convenience wrapper around the singleton service.
func Text(input string) string {
	return GetService().Text(input)
}
