//go:build unit || e2e

package builder

import (
	"time"

	domreservation "booking-billing/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReservationBuilder struct {
	ResourceID uuid.UUID
	Day        time.Time
	Slot       string
	Status     domreservation.Status
	Price      decimal.Decimal
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ResourceID: uuid.New(),
		Day:        time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Slot:       "10:00-11:30",
		Status:     domreservation.StatusConfirmed,
		Price:      decimal.NewFromInt(8000),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildDomain() (*domreservation.Reservation, error) {
	slot, err := domreservation.NewSlot(b.Slot)
	if err != nil {
		return nil, err
	}
	return domreservation.NewReservation(b.ResourceID, b.Day, slot, b.Status, b.Price)
}

// Fluent builder methods
func (b *ReservationBuilder) WithResourceID(id uuid.UUID) *ReservationBuilder {
	b.ResourceID = id
	return b
}

func (b *ReservationBuilder) WithDay(day time.Time) *ReservationBuilder {
	b.Day = day
	return b
}

func (b *ReservationBuilder) WithSlot(slot string) *ReservationBuilder {
	b.Slot = slot
	return b
}

func (b *ReservationBuilder) WithStatus(status domreservation.Status) *ReservationBuilder {
	b.Status = status
	return b
}

func (b *ReservationBuilder) WithPrice(price decimal.Decimal) *ReservationBuilder {
	b.Price = price
	return b
}

func (b *ReservationBuilder) AsCancelled() *ReservationBuilder {
	b.Status = domreservation.StatusCancelled
	return b
}
