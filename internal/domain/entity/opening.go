package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una apertura de caja.
const (
	OpeningStatusOpen   = 1
	OpeningStatusClosed = 0
)

// Opening sesión de caja registradora: se abre con un saldo inicial y se
// cierra al final del turno. Los movimientos de efectivo cuelgan de ella.
type Opening struct {
	ID          int64
	UserID      int64
	Status      int
	InitBalance decimal.Decimal
	OpenedAt    time.Time
	ClosedAt    *time.Time
}

// Tipos de movimiento de efectivo.
const (
	CashMovementIn  = "CASH_IN"
	CashMovementOut = "CASH_OUT"
)

// CashMovement entrada o salida de efectivo dentro de una apertura activa.
type CashMovement struct {
	ID          int64
	OpeningID   int64
	Type        string
	Amount      decimal.Decimal
	Description string
	UserID      *int64
	CreatedAt   time.Time
}

// OpeningSummary arqueo esperado de la apertura.
type OpeningSummary struct {
	OpeningID    int64
	InitBalance  decimal.Decimal
	TotalCashIn  decimal.Decimal
	TotalCashOut decimal.Decimal
	ExpectedCash decimal.Decimal
}
