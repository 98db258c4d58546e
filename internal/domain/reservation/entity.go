package reservation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidSlot      = errors.New("invalid time slot")
	ErrInvalidStatus    = errors.New("invalid reservation status")
	ErrNegativePrice    = errors.New("price cannot be negative")
	ErrZeroDay          = errors.New("reservation day cannot be zero")
	ErrAlreadyCancelled = errors.New("reservation is already cancelled")
)

// Slot is a start-end time-of-day label like "10:00-11:30". The billing
// engine treats it as an opaque collision key; it only validates shape.
type Slot struct {
	value string
}

func NewSlot(value string) (Slot, error) {
	value = strings.TrimSpace(value)
	parts := strings.Split(value, "-")
	if len(parts) != 2 {
		return Slot{}, ErrInvalidSlot
	}
	start, err := time.Parse("15:04", parts[0])
	if err != nil {
		return Slot{}, ErrInvalidSlot
	}
	end, err := time.Parse("15:04", parts[1])
	if err != nil {
		return Slot{}, ErrInvalidSlot
	}
	if !start.Before(end) {
		return Slot{}, ErrInvalidSlot
	}
	return Slot{value: value}, nil
}

func (s Slot) String() string { return s.value }

type Reservation struct {
	id         uuid.UUID
	resourceID uuid.UUID
	day        time.Time
	slot       Slot
	status     Status
	price      decimal.Decimal
	createdAt  time.Time
	updatedAt  time.Time
}

func NewReservation(
	resourceID uuid.UUID,
	day time.Time,
	slot Slot,
	status Status,
	price decimal.Decimal,
) (*Reservation, error) {
	if day.IsZero() {
		return nil, ErrZeroDay
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if price.IsNegative() {
		return nil, ErrNegativePrice
	}

	return &Reservation{
		id:         uuid.New(),
		resourceID: resourceID,
		day:        toDate(day),
		slot:       slot,
		status:     status,
		price:      price,
	}, nil
}

func ReconstructReservation(
	id, resourceID uuid.UUID,
	day time.Time,
	slot Slot,
	status Status,
	price decimal.Decimal,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:         id,
		resourceID: resourceID,
		day:        toDate(day),
		slot:       slot,
		status:     status,
		price:      price,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Cancel marks the reservation cancelled. The billing engine never deletes
// reservations; cancellation is the only mutation it performs.
func (r *Reservation) Cancel() error {
	if r.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	r.status = StatusCancelled
	return nil
}

func (r *Reservation) IsBillable() bool {
	return r.status.IsBillable()
}

func (r *Reservation) ID() uuid.UUID          { return r.id }
func (r *Reservation) ResourceID() uuid.UUID  { return r.resourceID }
func (r *Reservation) Day() time.Time         { return r.day }
func (r *Reservation) Slot() Slot             { return r.slot }
func (r *Reservation) Status() Status         { return r.status }
func (r *Reservation) Price() decimal.Decimal { return r.price }
func (r *Reservation) CreatedAt() time.Time   { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time   { return r.updatedAt }

func (r *Reservation) collisionKey() string {
	return fmt.Sprintf("%s|%s|%s", r.resourceID, r.day.Format(time.DateOnly), r.slot)
}

func toDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
