package profile

import "context"

type ProfileRepository interface {
	Save(ctx context.Context, profile *Profile) error
	Update(ctx context.Context, profile *Profile) error
	GetByID(ctx context.Context, id uint) (*Profile, error)
	GetByEmail(ctx context.Context, email string) (*Profile, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*Profile, error)
}
