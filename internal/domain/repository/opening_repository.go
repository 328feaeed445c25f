package repository

import (
	"time"

	"github.com/puntoventa/bodega-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// OpeningRepository define el puerto para aperturas de caja y sus movimientos de efectivo.
type OpeningRepository interface {
	Create(opening *entity.Opening) error
	GetByID(id int64) (*entity.Opening, error)
	// GetActiveByUser devuelve la apertura con status=1 del usuario, nil si no hay.
	GetActiveByUser(userID int64) (*entity.Opening, error)
	Close(id int64, closedAt time.Time) error
	List(limit, offset int) ([]*entity.Opening, error)

	CreateCashMovement(movement *entity.CashMovement) error
	ListCashMovements(openingID int64, limit, offset int) ([]*entity.CashMovement, error)
	// SumCashMovements suma los montos de un tipo (CASH_IN/CASH_OUT) en la apertura.
	SumCashMovements(openingID int64, movementType string) (decimal.Decimal, error)
}
