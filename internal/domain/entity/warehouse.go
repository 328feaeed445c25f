package entity

import "time"

// Warehouse representa una bodega o sucursal donde se almacena inventario (multi-bodega).
// Active=false la bloquea como origen o destino de cualquier movimiento de stock.
type Warehouse struct {
	ID        int64
	Name      string
	Address   string
	Code      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
