package profile

import (
	"fmt"
	"strings"
	"time"

	"github.com/domus-inc/domus/internal/shared/authorization"
)

// Profile is the platform user record. The JWT only carries identity; the
// role lives here and is resolved per request.
type Profile struct {
	id           uint
	email        string
	passwordHash string
	displayName  string
	role         authorization.UserRole
	version      int
	createdAt    time.Time
	updatedAt    time.Time
}

func NewProfile(
	email string,
	passwordHash string,
	displayName string,
	role authorization.UserRole,
) (*Profile, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email address")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}
	if len(displayName) == 0 {
		return nil, fmt.Errorf("display name is required")
	}
	if len(displayName) > 100 {
		return nil, fmt.Errorf("display name exceeds maximum length of 100 characters")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := time.Now().UTC()
	return &Profile{
		email:        email,
		passwordHash: passwordHash,
		displayName:  displayName,
		role:         role,
		version:      1,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructProfile(
	id uint,
	email string,
	passwordHash string,
	displayName string,
	role authorization.UserRole,
	version int,
	createdAt, updatedAt time.Time,
) (*Profile, error) {
	if id == 0 {
		return nil, fmt.Errorf("profile ID cannot be zero")
	}
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &Profile{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		displayName:  displayName,
		role:         role,
		version:      version,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (p *Profile) ID() uint {
	return p.id
}

func (p *Profile) Email() string {
	return p.email
}

func (p *Profile) PasswordHash() string {
	return p.passwordHash
}

func (p *Profile) DisplayName() string {
	return p.displayName
}

func (p *Profile) Role() authorization.UserRole {
	return p.role
}

func (p *Profile) Version() int {
	return p.version
}

func (p *Profile) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Profile) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Profile) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("profile ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("profile ID cannot be zero")
	}
	p.id = id
	return nil
}

// ChangeRole updates the profile's role. Callers must invalidate the role
// cache afterwards.
func (p *Profile) ChangeRole(role authorization.UserRole) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	if p.role == role {
		return nil
	}
	p.role = role
	p.updatedAt = time.Now().UTC()
	p.version++
	return nil
}

func (p *Profile) UpdateDisplayName(displayName string) error {
	if len(displayName) == 0 {
		return fmt.Errorf("display name is required")
	}
	if len(displayName) > 100 {
		return fmt.Errorf("display name exceeds maximum length of 100 characters")
	}
	p.displayName = displayName
	p.updatedAt = time.Now().UTC()
	p.version++
	return nil
}
