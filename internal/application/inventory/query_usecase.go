package inventory

import (
	"context"
	"fmt"

	"github.com/puntoventa/bodega-api/internal/application/dto"
	"github.com/puntoventa/bodega-api/internal/domain"
	"github.com/puntoventa/bodega-api/internal/domain/entity"
	"github.com/puntoventa/bodega-api/internal/domain/repository"
)

// Límites de paginación del lado de lectura.
const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// QueryUseCase lado de lectura del inventario: stock por bodega, libro de
// movimientos y transferencias. Solo lecturas, sin transacción.
type QueryUseCase struct {
	balances   repository.BalanceRepository
	movements  repository.MovementRepository
	transfers  repository.TransferRepository
	warehouses repository.WarehouseRepository
}

// NewQueryUseCase construye el caso de uso con repositorios atados al pool.
func NewQueryUseCase(
	balances repository.BalanceRepository,
	movements repository.MovementRepository,
	transfers repository.TransferRepository,
	warehouses repository.WarehouseRepository,
) *QueryUseCase {
	return &QueryUseCase{
		balances:   balances,
		movements:  movements,
		transfers:  transfers,
		warehouses: warehouses,
	}
}

// normalizePage valida y normaliza paginación: índice y tamaño menores a 1 son
// error; el tamaño se recorta en silencio al máximo (100).
func normalizePage(pageIndex, pageSize int) (int, int, error) {
	if pageIndex == 0 {
		pageIndex = 1
	}
	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	if pageIndex < 1 || pageSize < 1 {
		return 0, 0, fmt.Errorf("paginación fuera de rango: %w", domain.ErrInvalidInput)
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return pageIndex, pageSize, nil
}

func toRepoSort(specs []dto.SortSpec) []repository.Sort {
	if len(specs) == 0 {
		return nil
	}
	out := make([]repository.Sort, 0, len(specs))
	for _, s := range specs {
		out = append(out, repository.Sort{Key: s.Key, Order: s.Order})
	}
	return out
}

// GetBalance lista el stock de una bodega con búsqueda por nombre/SKU de
// producto, orden por whitelist y paginación. Total refleja el conjunto
// filtrado antes de paginar.
func (uc *QueryUseCase) GetBalance(ctx context.Context, warehouseID int64, q dto.StockQuery) (*dto.StockListResponse, error) {
	pageIndex, pageSize, err := normalizePage(q.PageIndex, q.PageSize)
	if err != nil {
		return nil, err
	}
	warehouse, err := uc.warehouses.GetByID(warehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, fmt.Errorf("bodega %d: %w", warehouseID, domain.ErrNotFound)
	}

	rows, total, err := uc.balances.ListByWarehouse(warehouseID, repository.StockPage{
		PageIndex: pageIndex,
		PageSize:  pageSize,
		Search:    q.Search,
		Sort:      toRepoSort(dto.ParseSort(q.Sort)),
	})
	if err != nil {
		return nil, err
	}

	data := make([]dto.StockItemResponse, 0, len(rows))
	for _, row := range rows {
		data = append(data, dto.StockItemResponse{
			ID:       row.ID,
			Quantity: row.Quantity,
			Product: dto.ProductRef{
				ID:   row.ProductID,
				Name: row.ProductName,
				SKU:  row.ProductSKU,
			},
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		})
	}
	return &dto.StockListResponse{Data: data, Total: total}, nil
}

// GetMovements consulta el libro con los filtros provistos, más reciente primero.
func (uc *QueryUseCase) GetMovements(ctx context.Context, q dto.MovementQuery) ([]dto.MovementResponse, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	offset := q.Offset
	if offset < 0 {
		offset = 0
	}
	rows, err := uc.movements.List(repository.MovementFilter{
		WarehouseID: q.WarehouseID,
		ProductID:   q.ProductID,
		Type:        q.Type,
		DateFrom:    q.DateFrom,
		DateTo:      q.DateTo,
		Limit:       limit,
		Offset:      offset,
	})
	if err != nil {
		return nil, err
	}

	out := make([]dto.MovementResponse, 0, len(rows))
	for _, row := range rows {
		m := dto.MovementResponse{
			ID:          row.ID,
			Type:        row.Type,
			Quantity:    row.Quantity,
			ReferenceID: row.ReferenceID,
			Description: row.Description,
			UserID:      row.UserID,
			Product: dto.ProductRef{
				ID:   row.ProductID,
				Name: row.ProductName,
				SKU:  row.ProductSKU,
			},
			CreatedAt: row.CreatedAt,
		}
		m.Warehouse.ID = row.WarehouseID
		m.Warehouse.Name = row.WarehouseName
		out = append(out, m)
	}
	return out, nil
}

// ListTransfers pagina transferencias con búsqueda y orden por whitelist.
func (uc *QueryUseCase) ListTransfers(ctx context.Context, q dto.TransferQuery) (*dto.TransferListResponse, error) {
	pageIndex, pageSize, err := normalizePage(q.PageIndex, q.PageSize)
	if err != nil {
		return nil, err
	}
	rows, total, err := uc.transfers.List(repository.TransferPage{
		PageIndex: pageIndex,
		PageSize:  pageSize,
		Search:    q.Search,
		Sort:      toRepoSort(dto.ParseSort(q.Sort)),
	})
	if err != nil {
		return nil, err
	}

	data := make([]dto.TransferResponse, 0, len(rows))
	for _, row := range rows {
		data = append(data, toTransferResponse(row, nil))
	}
	return &dto.TransferListResponse{
		Data: data,
		Meta: dto.PageMeta{PageIndex: pageIndex, PageSize: pageSize, Total: total},
	}, nil
}

// GetTransferByID devuelve la transferencia con sus líneas y el producto de cada una.
func (uc *QueryUseCase) GetTransferByID(ctx context.Context, id int64) (*dto.TransferResponse, error) {
	transfer, err := uc.transfers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if transfer == nil {
		return nil, fmt.Errorf("transferencia %d: %w", id, domain.ErrNotFound)
	}
	items, err := uc.transfers.ListItems(id)
	if err != nil {
		return nil, err
	}
	resp := toTransferResponse(*transfer, items)
	return &resp, nil
}

func toTransferResponse(t entity.TransferWithDetail, items []entity.TransferItemWithProduct) dto.TransferResponse {
	resp := dto.TransferResponse{
		ID:                t.ID,
		FromWarehouseID:   t.FromWarehouseID,
		ToWarehouseID:     t.ToWarehouseID,
		FromWarehouseName: t.FromWarehouseName,
		ToWarehouseName:   t.ToWarehouseName,
		Status:            t.Status,
		Date:              t.Date,
		UserID:            t.UserID,
		Observation:       t.Observation,
		ItemsCount:        t.ItemsCount,
	}
	for _, item := range items {
		resp.Items = append(resp.Items, dto.TransferItemResponse{
			ID:       item.ID,
			Quantity: item.Quantity,
			Product: dto.ProductRef{
				ID:   item.ProductID,
				Name: item.ProductName,
				SKU:  item.ProductSKU,
			},
		})
	}
	if resp.ItemsCount == 0 && len(items) > 0 {
		resp.ItemsCount = len(items)
	}
	return resp
}
