package property

import (
	"fmt"
	"time"
)

type Property struct {
	id        uint
	title     string
	address   string
	ownerID   uint
	version   int
	createdAt time.Time
	updatedAt time.Time
}

func NewProperty(title, address string, ownerID uint) (*Property, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(address) == 0 {
		return nil, fmt.Errorf("address is required")
	}
	if len(address) > 500 {
		return nil, fmt.Errorf("address exceeds maximum length of 500 characters")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}

	now := time.Now().UTC()
	return &Property{
		title:     title,
		address:   address,
		ownerID:   ownerID,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructProperty(
	id uint,
	title string,
	address string,
	ownerID uint,
	version int,
	createdAt, updatedAt time.Time,
) (*Property, error) {
	if id == 0 {
		return nil, fmt.Errorf("property ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}

	return &Property{
		id:        id,
		title:     title,
		address:   address,
		ownerID:   ownerID,
		version:   version,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (p *Property) ID() uint {
	return p.id
}

func (p *Property) Title() string {
	return p.title
}

func (p *Property) Address() string {
	return p.address
}

func (p *Property) OwnerID() uint {
	return p.ownerID
}

func (p *Property) Version() int {
	return p.version
}

func (p *Property) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Property) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Property) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("property ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("property ID cannot be zero")
	}
	p.id = id
	return nil
}

// GetOwnerID satisfies the authorization.OwnedResource contract.
func (p *Property) GetOwnerID() uint {
	return p.ownerID
}

func (p *Property) UpdateTitle(title string) error {
	if len(title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	p.title = title
	p.updatedAt = time.Now().UTC()
	p.version++
	return nil
}

func (p *Property) UpdateAddress(address string) error {
	if len(address) == 0 {
		return fmt.Errorf("address is required")
	}
	if len(address) > 500 {
		return fmt.Errorf("address exceeds maximum length of 500 characters")
	}
	p.address = address
	p.updatedAt = time.Now().UTC()
	p.version++
	return nil
}
