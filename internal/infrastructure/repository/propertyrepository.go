package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/domus-inc/domus/internal/domain/property"
	"github.com/domus-inc/domus/internal/infrastructure/persistence/mappers"
	"github.com/domus-inc/domus/internal/infrastructure/persistence/models"
	"github.com/domus-inc/domus/internal/shared/db"
	"github.com/domus-inc/domus/internal/shared/errors"
)

type PropertyRepository struct {
	db     *gorm.DB
	mapper mappers.PropertyMapper
}

func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{
		db:     db,
		mapper: mappers.NewPropertyMapper(),
	}
}

func (r *PropertyRepository) Save(ctx context.Context, p *property.Property) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save property: %w", err)
	}

	if err := p.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *PropertyRepository) Update(ctx context.Context, p *property.Property) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.PropertyModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":      model.Title,
			"address":    model.Address,
			"version":    model.Version,
			"updated_at": model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update property: %w", result.Error)
	}

	return nil
}

func (r *PropertyRepository) GetByID(ctx context.Context, id uint) (*property.Property, error) {
	var model models.PropertyModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("property not found")
		}
		return nil, fmt.Errorf("failed to find property: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *PropertyRepository) List(ctx context.Context, limit, offset int) ([]*property.Property, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.PropertyModel{})

	return r.listWithQuery(query, limit, offset)
}

func (r *PropertyRepository) ListByOwnerID(
	ctx context.Context,
	ownerID uint,
	limit, offset int,
) ([]*property.Property, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.PropertyModel{}).Where("owner_id = ?", ownerID)

	return r.listWithQuery(query, limit, offset)
}

func (r *PropertyRepository) GetIDsByOwnerID(ctx context.Context, ownerID uint) ([]uint, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var ids []uint
	if err := tx.Model(&models.PropertyModel{}).
		Where("owner_id = ?", ownerID).
		Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list property IDs: %w", err)
	}

	return ids, nil
}

func (r *PropertyRepository) listWithQuery(
	query *gorm.DB,
	limit, offset int,
) ([]*property.Property, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count properties: %w", err)
	}

	query = query.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var propertyModels []models.PropertyModel
	if err := query.Find(&propertyModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list properties: %w", err)
	}

	properties := make([]*property.Property, len(propertyModels))
	for i, model := range propertyModels {
		p, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		properties[i] = p
	}

	return properties, total, nil
}
