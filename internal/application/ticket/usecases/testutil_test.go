package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/domus-inc/domus/internal/domain/ticket"
	vo "github.com/domus-inc/domus/internal/domain/ticket/valueobjects"
	"github.com/domus-inc/domus/internal/shared/logger"
)

func newTestLogger() logger.Interface {
	return logger.NewLogger()
}

type ticketFixture struct {
	id         uint
	status     vo.TicketStatus
	priority   vo.Priority
	reporterID uint
	propertyID *uint
	assigneeID *uint
	resolvedAt *time.Time
	closedAt   *time.Time
}

func reconstructTicket(t *testing.T, f ticketFixture) *ticket.Ticket {
	t.Helper()

	if f.id == 0 {
		f.id = 1
	}
	if f.status == "" {
		f.status = vo.StatusNew
	}
	if f.priority == "" {
		f.priority = vo.PriorityMedium
	}
	if f.reporterID == 0 {
		f.reporterID = 10
	}

	createdAt := time.Now().UTC().Add(-2 * time.Hour)
	deadline := createdAt.Add(time.Duration(f.priority.GetSLAHours()) * time.Hour)

	tk, err := ticket.ReconstructTicket(
		f.id,
		"Leaking kitchen tap",
		"Water pooling under the sink since Monday",
		f.priority,
		f.status,
		f.reporterID,
		f.propertyID,
		f.assigneeID,
		deadline,
		f.resolvedAt,
		f.closedAt,
		1,
		createdAt,
		createdAt,
	)
	require.NoError(t, err)
	return tk
}

func timeNow() time.Time {
	return time.Now().UTC()
}

func uintPtr(v uint) *uint {
	return &v
}

func strPtr(s string) *string {
	return &s
}
