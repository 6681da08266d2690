package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/domus-inc/domus/internal/domain/profile"
	"github.com/domus-inc/domus/internal/infrastructure/persistence/mappers"
	"github.com/domus-inc/domus/internal/infrastructure/persistence/models"
	"github.com/domus-inc/domus/internal/shared/db"
	"github.com/domus-inc/domus/internal/shared/errors"
)

type ProfileRepository struct {
	db     *gorm.DB
	mapper mappers.ProfileMapper
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{
		db:     db,
		mapper: mappers.NewProfileMapper(),
	}
}

func (r *ProfileRepository) Save(ctx context.Context, p *profile.Profile) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("email already registered")
		}
		return fmt.Errorf("failed to save profile: %w", err)
	}

	if err := p.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *ProfileRepository) Update(ctx context.Context, p *profile.Profile) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ProfileModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"display_name": model.DisplayName,
			"role":         model.Role,
			"version":      model.Version,
			"updated_at":   model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update profile: %w", result.Error)
	}

	return nil
}

func (r *ProfileRepository) GetByID(ctx context.Context, id uint) (*profile.Profile, error) {
	var model models.ProfileModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("profile not found")
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ProfileRepository) GetByEmail(ctx context.Context, email string) (*profile.Profile, error) {
	var model models.ProfileModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("profile not found")
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ProfileRepository) GetByIDs(ctx context.Context, ids []uint) ([]*profile.Profile, error) {
	if len(ids) == 0 {
		return []*profile.Profile{}, nil
	}

	var profileModels []models.ProfileModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id IN ?", ids).Find(&profileModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find profiles: %w", err)
	}

	profiles := make([]*profile.Profile, len(profileModels))
	for i, model := range profileModels {
		p, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		profiles[i] = p
	}

	return profiles, nil
}
