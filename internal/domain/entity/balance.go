package entity

import "time"

// InventoryBalance representa el stock actual de un producto en una bodega
// (proyección materializada del libro de movimientos, única por producto+bodega).
// Invariante: Quantity >= 0 y Quantity == suma neta de movimientos del par.
type InventoryBalance struct {
	ID          int64
	ProductID   int64
	WarehouseID int64
	Quantity    int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BalanceWithProduct fila de stock con los datos del producto para listados.
type BalanceWithProduct struct {
	InventoryBalance
	ProductName string
	ProductSKU  string
}
