package usecases

import (
	"context"

	"github.com/domus-inc/domus/internal/application/property/dto"
	"github.com/domus-inc/domus/internal/domain/property"
	"github.com/domus-inc/domus/internal/shared/errors"
	"github.com/domus-inc/domus/internal/shared/logger"
	"github.com/domus-inc/domus/internal/shared/utils"
)

type ListPropertiesQuery struct {
	// OwnerID scopes the listing to one owner's portfolio; zero lists all.
	OwnerID    uint
	Pagination utils.Pagination
}

type ListPropertiesResult struct {
	Properties []dto.PropertyDTO
	Total      int64
}

type ListPropertiesUseCase struct {
	propertyRepo property.PropertyRepository
	logger       logger.Interface
}

func NewListPropertiesUseCase(
	propertyRepo property.PropertyRepository,
	logger logger.Interface,
) *ListPropertiesUseCase {
	return &ListPropertiesUseCase{
		propertyRepo: propertyRepo,
		logger:       logger,
	}
}

func (uc *ListPropertiesUseCase) Execute(ctx context.Context, query ListPropertiesQuery) (*ListPropertiesResult, error) {
	pagination := utils.ValidatePagination(query.Pagination.Page, query.Pagination.PageSize)

	var (
		properties []*property.Property
		total      int64
		err        error
	)
	if query.OwnerID != 0 {
		properties, total, err = uc.propertyRepo.ListByOwnerID(ctx, query.OwnerID, pagination.PageSize, pagination.Offset())
	} else {
		properties, total, err = uc.propertyRepo.List(ctx, pagination.PageSize, pagination.Offset())
	}
	if err != nil {
		uc.logger.Errorw("failed to list properties", "owner_id", query.OwnerID, "error", err)
		return nil, err
	}

	return &ListPropertiesResult{
		Properties: dto.ToPropertyDTOs(properties),
		Total:      total,
	}, nil
}

type GetPropertyQuery struct {
	PropertyID uint
	// RequireOwnerID restricts the read to the given owner; zero skips the
	// check (staff paths).
	RequireOwnerID uint
}

type GetPropertyUseCase struct {
	propertyRepo property.PropertyRepository
	logger       logger.Interface
}

func NewGetPropertyUseCase(
	propertyRepo property.PropertyRepository,
	logger logger.Interface,
) *GetPropertyUseCase {
	return &GetPropertyUseCase{
		propertyRepo: propertyRepo,
		logger:       logger,
	}
}

func (uc *GetPropertyUseCase) Execute(ctx context.Context, query GetPropertyQuery) (*dto.PropertyDTO, error) {
	if query.PropertyID == 0 {
		return nil, errors.NewValidationError("property ID is required")
	}

	p, err := uc.propertyRepo.GetByID(ctx, query.PropertyID)
	if err != nil {
		return nil, err
	}

	if query.RequireOwnerID != 0 && p.OwnerID() != query.RequireOwnerID {
		return nil, errors.NewForbiddenError("you do not have access to this property")
	}

	result := dto.ToPropertyDTO(p)
	return &result, nil
}
