package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeIN          = "IN"           // entrada manual
	MovementTypeOUT         = "OUT"          // salida manual
	MovementTypeTransferIN  = "TRANSFER_IN"  // entrada por transferencia
	MovementTypeTransferOUT = "TRANSFER_OUT" // salida por transferencia
)

// InventoryMovement es una entrada del libro de movimientos: inmutable,
// nunca se actualiza ni se borra. El balance es una proyección derivada de esto.
type InventoryMovement struct {
	ID          int64
	ProductID   int64
	WarehouseID int64
	Type        string
	Quantity    int64  // siempre positiva; el tipo indica el signo
	ReferenceID *int64 // ID de la transferencia cuando aplica
	Description string
	UserID      *int64
	CreatedAt   time.Time
}

// MovementWithDetail movimiento con identidad de producto y bodega para listados.
type MovementWithDetail struct {
	InventoryMovement
	ProductName   string
	ProductSKU    string
	WarehouseName string
}
