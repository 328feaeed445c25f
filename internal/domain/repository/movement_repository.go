package repository

import (
	"time"

	"github.com/puntoventa/bodega-api/internal/domain/entity"
)

// MovementFilter filtros combinables para consultar el libro de movimientos.
type MovementFilter struct {
	WarehouseID *int64
	ProductID   *int64
	Type        string
	DateFrom    *time.Time
	DateTo      *time.Time
	Limit       int
	Offset      int
}

// MovementRepository define el puerto de persistencia del libro de movimientos.
// Es append-only: no existen Update ni Delete.
type MovementRepository interface {
	Create(movement *entity.InventoryMovement) error
	List(filter MovementFilter) ([]entity.MovementWithDetail, error)
	// SumByType agrega cantidades por tipo en un rango de fechas (reportes).
	SumByType(warehouseID *int64, from, to *time.Time) (map[string]int64, error)
}
