package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOpeningRequest entrada para abrir una sesión de caja.
type CreateOpeningRequest struct {
	InitBalance decimal.Decimal `json:"initBalance"`
}

// OpeningResponse salida de una apertura de caja.
type OpeningResponse struct {
	ID          int64           `json:"id"`
	UserID      int64           `json:"userId"`
	Status      int             `json:"status"`
	InitBalance decimal.Decimal `json:"initBalance"`
	OpenedAt    time.Time       `json:"openedAt"`
	ClosedAt    *time.Time      `json:"closedAt,omitempty"`
}

// CreateCashMovementRequest entrada para registrar efectivo en una apertura activa.
type CreateCashMovementRequest struct {
	Type        string          `json:"type"` // CASH_IN | CASH_OUT
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

// CashMovementResponse salida de un movimiento de efectivo.
type CashMovementResponse struct {
	ID          int64           `json:"id"`
	OpeningID   int64           `json:"openingId"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	UserID      *int64          `json:"userId,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// OpeningSummaryResponse arqueo esperado de la apertura.
type OpeningSummaryResponse struct {
	OpeningID    int64           `json:"openingId"`
	InitBalance  decimal.Decimal `json:"initBalance"`
	TotalCashIn  decimal.Decimal `json:"totalCashIn"`
	TotalCashOut decimal.Decimal `json:"totalCashOut"`
	ExpectedCash decimal.Decimal `json:"expectedCash"`
}
