package repository

import "github.com/puntoventa/bodega-api/internal/domain/entity"

// Sort par clave/dirección pedido por el cliente. Las claves se validan contra
// una whitelist en el adaptador; las desconocidas se ignoran.
type Sort struct {
	Key   string
	Order string // "asc" | "desc"
}

// StockPage parámetros de listado de stock por bodega.
type StockPage struct {
	PageIndex int // >= 1
	PageSize  int // 1..100
	Search    string
	Sort      []Sort
}

// BalanceRepository define el puerto para el balance materializado por producto+bodega.
// Las mutaciones solo deben invocarse con repositorios atados a una transacción (TxRunner).
type BalanceRepository interface {
	// Get obtiene el balance; nil si no existe fila para el par.
	Get(productID, warehouseID int64) (*entity.InventoryBalance, error)
	// GetForUpdate obtiene el balance bloqueando la fila (SELECT ... FOR UPDATE); nil si no existe.
	GetForUpdate(productID, warehouseID int64) (*entity.InventoryBalance, error)
	// CreateOrIncrement suma delta de forma atómica: INSERT ... ON CONFLICT DO UPDATE.
	// Cierra la ventana de carrera crear-vs-incrementar en la primera entrada del par.
	CreateOrIncrement(productID, warehouseID, delta int64) error
	// Decrement resta quantity a una fila ya bloqueada por GetForUpdate.
	Decrement(productID, warehouseID, quantity int64) error
	// ListByWarehouse lista el stock de una bodega con búsqueda, orden y paginación.
	// Devuelve el total filtrado pre-paginación.
	ListByWarehouse(warehouseID int64, page StockPage) ([]entity.BalanceWithProduct, int64, error)
}
