package dto

import "time"

// StockRequest body para POST /api/v1/inventory/in y /out.
type StockRequest struct {
	WarehouseID int64  `json:"warehouseId"`
	ProductID   int64  `json:"productId"`
	Quantity    int64  `json:"quantity"`
	Description string `json:"description,omitempty"`
	UserID      *int64 `json:"userId,omitempty"`
}

// TransferItemRequest una línea del body de transferencia.
type TransferItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

// TransferRequest body para POST /api/v1/inventory/transfer.
type TransferRequest struct {
	FromWarehouseID int64                 `json:"fromWarehouseId"`
	ToWarehouseID   int64                 `json:"toWarehouseId"`
	Items           []TransferItemRequest `json:"items"`
	Observation     string                `json:"observation,omitempty"`
	UserID          *int64                `json:"userId,omitempty"`
}

// StockQuery parámetros de GET /api/v1/warehouses/{id}/stock.
type StockQuery struct {
	PageIndex int    `query:"pageIndex"`
	PageSize  int    `query:"pageSize"`
	Search    string `query:"search"`
	Sort      string `query:"sort"` // JSON array de SortSpec
}

// ProductRef identidad de producto embebida en respuestas de stock/movimientos.
type ProductRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	SKU  string `json:"sku"`
}

// StockItemResponse una fila de stock de la bodega.
type StockItemResponse struct {
	ID        int64      `json:"id"`
	Quantity  int64      `json:"quantity"`
	Product   ProductRef `json:"product"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// StockListResponse listado paginado de stock; Total es el conteo filtrado pre-paginación.
type StockListResponse struct {
	Data  []StockItemResponse `json:"data"`
	Total int64               `json:"total"`
}

// MovementQuery filtros de GET /api/v1/inventory/movements.
type MovementQuery struct {
	WarehouseID *int64     `query:"warehouseId"`
	ProductID   *int64     `query:"productId"`
	Type        string     `query:"type"`
	DateFrom    *time.Time `query:"dateFrom"`
	DateTo      *time.Time `query:"dateTo"`
	Limit       int        `query:"limit"`
	Offset      int        `query:"offset"`
}

// MovementResponse una entrada del libro con identidad de producto y bodega.
type MovementResponse struct {
	ID          int64      `json:"id"`
	Type        string     `json:"type"`
	Quantity    int64      `json:"quantity"`
	ReferenceID *int64     `json:"referenceId,omitempty"`
	Description string     `json:"description,omitempty"`
	UserID      *int64     `json:"userId,omitempty"`
	Product     ProductRef `json:"product"`
	Warehouse   struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"warehouse"`
	CreatedAt time.Time `json:"createdAt"`
}

// TransferQuery parámetros de GET /api/v1/transfers.
type TransferQuery struct {
	PageIndex int    `query:"pageIndex"`
	PageSize  int    `query:"pageSize"`
	Search    string `query:"search"`
	Sort      string `query:"sort"`
}

// TransferItemResponse una línea del detalle de transferencia.
type TransferItemResponse struct {
	ID       int64      `json:"id"`
	Quantity int64      `json:"quantity"`
	Product  ProductRef `json:"product"`
}

// TransferResponse cabecera de transferencia para listados y detalle.
type TransferResponse struct {
	ID                int64                  `json:"id"`
	FromWarehouseID   int64                  `json:"fromWarehouseId"`
	ToWarehouseID     int64                  `json:"toWarehouseId"`
	FromWarehouseName string                 `json:"fromWarehouseName,omitempty"`
	ToWarehouseName   string                 `json:"toWarehouseName,omitempty"`
	Status            string                 `json:"status"`
	Date              time.Time              `json:"date"`
	UserID            *int64                 `json:"userId,omitempty"`
	Observation       string                 `json:"observation,omitempty"`
	ItemsCount        int                    `json:"itemsCount"`
	Items             []TransferItemResponse `json:"items,omitempty"`
}

// TransferListResponse listado paginado de transferencias.
type TransferListResponse struct {
	Data []TransferResponse `json:"data"`
	Meta PageMeta           `json:"meta"`
}
