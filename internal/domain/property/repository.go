package property

import "context"

type PropertyRepository interface {
	Save(ctx context.Context, property *Property) error
	Update(ctx context.Context, property *Property) error
	GetByID(ctx context.Context, id uint) (*Property, error)
	List(ctx context.Context, limit, offset int) ([]*Property, int64, error)
	ListByOwnerID(ctx context.Context, ownerID uint, limit, offset int) ([]*Property, int64, error)
	GetIDsByOwnerID(ctx context.Context, ownerID uint) ([]uint, error)
}
