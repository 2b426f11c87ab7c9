package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusSuccess   PaymentStatus = "success"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusSuccess:
		return true
	}
	return false
}

// Payment representa um pagamento vinculado a um agendamento.
// Somente pagamentos com status "completed" contam para receita.
type Payment struct {
	ID        int             `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Status    PaymentStatus   `json:"status"`
	BookingID int             `json:"related_booking"`
	PayerID   *int            `json:"payer_id"`
	PayeeID   *int            `json:"payee_id"`
	CreatedAt time.Time       `json:"created_at"`
}
