package resource

import (
	"errors"
	"strings"
	"time"

	"booking-billing/internal/domain/billing"

	"github.com/google/uuid"
)

var (
	ErrEmptyResourceName   = errors.New("resource name cannot be empty")
	ErrResourceNameTooLong = errors.New("resource name is too long (max 255 characters)")
	ErrAlreadyInactive     = errors.New("resource is already inactive")
	ErrAlreadyActive       = errors.New("resource is already active")
)

const (
	MaxResourceNameLength = 255
)

// Resource is a reservable unit owned by an operator. The engine reads its
// commission configuration and flips its active flag; it never deletes one
// with historical statements.
type Resource struct {
	id        uuid.UUID
	name      string
	active    bool
	pricing   billing.Pricing
	anchorDay int
	createdAt time.Time
	updatedAt time.Time
}

func NewResource(id uuid.UUID, name string, active bool, pricing billing.Pricing, anchorDay int) (*Resource, error) {
	if err := validateResourceName(name); err != nil {
		return nil, err
	}
	if anchorDay < billing.MinAnchorDay || anchorDay > billing.MaxAnchorDay {
		return nil, billing.ErrInvalidAnchorDay
	}

	return &Resource{
		id:        id,
		name:      strings.TrimSpace(name),
		active:    active,
		pricing:   pricing,
		anchorDay: anchorDay,
	}, nil
}

func ReconstructResource(
	id uuid.UUID,
	name string,
	active bool,
	pricing billing.Pricing,
	anchorDay int,
	createdAt, updatedAt time.Time,
) *Resource {
	return &Resource{
		id:        id,
		name:      name,
		active:    active,
		pricing:   pricing,
		anchorDay: anchorDay,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Deactivate is used by the enforcement cascade. Reactivation is an owner
// action and never automatic.
func (r *Resource) Deactivate() error {
	if !r.active {
		return ErrAlreadyInactive
	}
	r.active = false
	return nil
}

func (r *Resource) Activate() error {
	if r.active {
		return ErrAlreadyActive
	}
	r.active = true
	return nil
}

// CurrentPeriod resolves the billing window containing ref for this
// resource's anchor day.
func (r *Resource) CurrentPeriod(ref time.Time) (billing.Period, error) {
	return billing.PeriodFor(ref, r.anchorDay)
}

func (r *Resource) ID() uuid.UUID           { return r.id }
func (r *Resource) Name() string            { return r.name }
func (r *Resource) Active() bool            { return r.active }
func (r *Resource) Pricing() billing.Pricing { return r.pricing }
func (r *Resource) AnchorDay() int          { return r.anchorDay }
func (r *Resource) CreatedAt() time.Time    { return r.createdAt }
func (r *Resource) UpdatedAt() time.Time    { return r.updatedAt }

func validateResourceName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyResourceName
	}
	if len(name) > MaxResourceNameLength {
		return ErrResourceNameTooLong
	}
	return nil
}
