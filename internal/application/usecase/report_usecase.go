package usecase

import (
	"fmt"
	"time"

	"github.com/puntoventa/bodega-api/internal/domain"
	"github.com/puntoventa/bodega-api/internal/domain/entity"
	"github.com/puntoventa/bodega-api/internal/domain/repository"
)

// Tope de filas para la exportación de stock.
const stockExportLimit = 10000

// ReportUseCase lecturas agregadas para reportes: exportación de stock y
// resumen de movimientos por tipo.
type ReportUseCase struct {
	balances   repository.BalanceRepository
	warehouses repository.WarehouseRepository
	movements  repository.MovementRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	balances repository.BalanceRepository,
	warehouses repository.WarehouseRepository,
	movements repository.MovementRepository,
) *ReportUseCase {
	return &ReportUseCase{balances: balances, warehouses: warehouses, movements: movements}
}

// StockExport devuelve la bodega y todo su stock ordenado por nombre de
// producto, listo para volcar a XLSX.
func (uc *ReportUseCase) StockExport(warehouseID int64) (*entity.Warehouse, []entity.BalanceWithProduct, error) {
	warehouse, err := uc.warehouses.GetByID(warehouseID)
	if err != nil {
		return nil, nil, err
	}
	if warehouse == nil {
		return nil, nil, fmt.Errorf("bodega %d: %w", warehouseID, domain.ErrNotFound)
	}
	rows, _, err := uc.balances.ListByWarehouse(warehouseID, repository.StockPage{
		PageIndex: 1,
		PageSize:  stockExportLimit,
		Sort:      []repository.Sort{{Key: "product.name", Order: "asc"}},
	})
	if err != nil {
		return nil, nil, err
	}
	return warehouse, rows, nil
}

// MovementsSummary agrega las cantidades del libro por tipo de movimiento,
// opcionalmente acotado por bodega y rango de fechas.
func (uc *ReportUseCase) MovementsSummary(warehouseID *int64, from, to *time.Time) (map[string]int64, error) {
	if warehouseID != nil {
		warehouse, err := uc.warehouses.GetByID(*warehouseID)
		if err != nil {
			return nil, err
		}
		if warehouse == nil {
			return nil, fmt.Errorf("bodega %d: %w", *warehouseID, domain.ErrNotFound)
		}
	}
	return uc.movements.SumByType(warehouseID, from, to)
}
