package entity

import "time"

// TransferStatusCompleted es el único estado del diseño actual: la transferencia
// se aplica completa en una transacción, no hay estados parciales ni pendientes.
const TransferStatusCompleted = "COMPLETED"

// Transfer es la cabecera de un traslado multi-producto entre dos bodegas.
// Por cada TransferItem existen exactamente dos movimientos con ReferenceID = Transfer.ID:
// un TRANSFER_OUT en la bodega origen y un TRANSFER_IN en la destino.
type Transfer struct {
	ID              int64
	FromWarehouseID int64
	ToWarehouseID   int64
	Status          string
	Date            time.Time
	UserID          *int64
	Observation     string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TransferItem una línea de la transferencia.
type TransferItem struct {
	ID         int64
	TransferID int64
	ProductID  int64
	Quantity   int64
}

// TransferItemWithProduct línea con datos del producto para el detalle.
type TransferItemWithProduct struct {
	TransferItem
	ProductName string
	ProductSKU  string
}

// TransferWithDetail cabecera con nombres de bodegas y conteo de líneas para listados.
type TransferWithDetail struct {
	Transfer
	FromWarehouseName string
	ToWarehouseName   string
	ItemsCount        int
}
