package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service representa um serviço do catálogo (ex: Cleaning / Deep Cleaning)
type Service struct {
	ID          int             `json:"id"`
	Category    string          `json:"category"`
	SubCategory string          `json:"sub_category"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type UpdateServiceRequest struct {
	ID          int              `json:"id"`
	Category    *string          `json:"category"`
	SubCategory *string          `json:"sub_category"`
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Active      *bool            `json:"active"`
}
