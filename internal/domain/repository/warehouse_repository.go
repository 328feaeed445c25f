package repository

import "github.com/puntoventa/bodega-api/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
// El motor de inventario solo lee existencia y estado activo como precondición.
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	// GetByID devuelve nil si no existe.
	GetByID(id int64) (*entity.Warehouse, error)
	Update(warehouse *entity.Warehouse) error
	List() ([]*entity.Warehouse, error)
	// Delete falla con ErrConflict si la bodega está referenciada por transferencias (FK RESTRICT).
	Delete(id int64) error
}
