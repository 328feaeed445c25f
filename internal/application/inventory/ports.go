package inventory

import (
	"context"

	"github.com/puntoventa/bodega-api/internal/domain/repository"
)

// TxRepos repositorios atados a una misma transacción de BD. El TxRunner los
// construye sobre la tx y los pasa al callback: la propiedad y el alcance de la
// transacción quedan visibles en cada sitio de llamada.
type TxRepos struct {
	Balances   repository.BalanceRepository
	Movements  repository.MovementRepository
	Transfers  repository.TransferRepository
	Warehouses repository.WarehouseRepository
	Products   repository.ProductRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Commit si fn devuelve nil, Rollback si no.
// Garantiza atomicidad para el motor de inventario: o cambian todas las filas
// de la operación o ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(r TxRepos) error) error
}

// Metrics puntos de instrumentación del motor. La implementación real vive en
// infrastructure/metrics; NopMetrics sirve para tests.
type Metrics interface {
	MovementApplied(movementType string)
	TransferCompleted(items int)
	InsufficientStock()
}

// NopMetrics implementación vacía de Metrics.
type NopMetrics struct{}

func (NopMetrics) MovementApplied(string) {}
func (NopMetrics) TransferCompleted(int)  {}
func (NopMetrics) InsufficientStock()     {}
