package usecases

import (
	"context"

	"github.com/domus-inc/domus/internal/application/ticket/dto"
)

// TransactionManager is the slice of shared/db.TransactionManager the ticket
// use cases need.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error)
}

type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error)
}

type AssignTicketExecutor interface {
	Execute(ctx context.Context, cmd AssignTicketCommand) (*AssignTicketResult, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error)
}

type ListCommentsExecutor interface {
	Execute(ctx context.Context, query ListCommentsQuery) (*ListCommentsResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type MyTicketsExecutor interface {
	Execute(ctx context.Context, query MyTicketsQuery) (*MyTicketsResult, error)
}

type OverdueTicketsExecutor interface {
	Execute(ctx context.Context) (*OverdueTicketsResult, error)
}

type GetHistoryExecutor interface {
	Execute(ctx context.Context, query GetHistoryQuery) (*GetHistoryResult, error)
}
