package usecases

import (
	"context"

	"github.com/domus-inc/domus/internal/application/property/dto"
)

type CreatePropertyExecutor interface {
	Execute(ctx context.Context, cmd CreatePropertyCommand) (*dto.PropertyDTO, error)
}

type ListPropertiesExecutor interface {
	Execute(ctx context.Context, query ListPropertiesQuery) (*ListPropertiesResult, error)
}

type GetPropertyExecutor interface {
	Execute(ctx context.Context, query GetPropertyQuery) (*dto.PropertyDTO, error)
}
