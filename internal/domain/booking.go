package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusRequested BookingStatus = "requested"
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// IsValid verifica se o status pertence ao enum de status de agendamento
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusRequested, BookingStatusPending, BookingStatusConfirmed,
		BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

type Booking struct {
	ID          int             `json:"id"`
	Reference   string          `json:"reference"`
	CustomerID  int             `json:"customer_id"`
	ServiceID   int             `json:"service_id"`
	VendorID    *int            `json:"vendor_id"`
	Status      BookingStatus   `json:"status"`
	Price       decimal.Decimal `json:"price"`
	BookedAt    time.Time       `json:"booked_at"`
	ScheduledAt *time.Time      `json:"scheduled_at"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type UpdateBookingRequest struct {
	ID          int              `json:"id"`
	VendorID    *int             `json:"vendor_id"`
	Price       *decimal.Decimal `json:"price"`
	ScheduledAt *time.Time       `json:"scheduled_at"`
}

// BookingFilters restringe a listagem de agendamentos
type BookingFilters struct {
	CustomerID *int
	VendorID   *int
	Status     *BookingStatus
}
