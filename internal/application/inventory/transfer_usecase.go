package inventory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/puntoventa/bodega-api/internal/domain"
	"github.com/puntoventa/bodega-api/internal/domain/entity"
)

// TransferUseCase orquesta un traslado multi-producto entre dos bodegas:
// cabecera + líneas + dos movimientos por línea + ambos balances, como una
// sola unidad atómica. Cualquier fallo a mitad de camino revierte todo.
type TransferUseCase struct {
	txRunner TxRunner
	metrics  Metrics
}

// NewTransferUseCase construye el caso de uso.
func NewTransferUseCase(txRunner TxRunner, metrics Metrics) *TransferUseCase {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return &TransferUseCase{txRunner: txRunner, metrics: metrics}
}

// TransferItemInput una línea del traslado.
type TransferItemInput struct {
	ProductID int64
	Quantity  int64
}

// TransferInput entrada para Transfer.
type TransferInput struct {
	FromWarehouseID int64
	ToWarehouseID   int64
	Items           []TransferItemInput
	UserID          *int64
	Observation     string
}

// Transfer ejecuta el traslado. Las líneas se procesan ordenadas por ProductID
// para fijar un orden global de bloqueo: dos traslados simultáneos en
// direcciones opuestas sobre los mismos productos no pueden inter-bloquearse.
func (uc *TransferUseCase) Transfer(ctx context.Context, in TransferInput) (*entity.Transfer, error) {
	if in.FromWarehouseID == in.ToWarehouseID {
		return nil, fmt.Errorf("bodega origen y destino deben ser diferentes: %w", domain.ErrInvalidInput)
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	items := make([]TransferItemInput, len(in.Items))
	copy(items, in.Items)
	sort.Slice(items, func(i, j int) bool { return items[i].ProductID < items[j].ProductID })

	var transfer *entity.Transfer
	err := uc.txRunner.Run(ctx, func(r TxRepos) error {
		from, err := r.Warehouses.GetByID(in.FromWarehouseID)
		if err != nil {
			return err
		}
		to, err := r.Warehouses.GetByID(in.ToWarehouseID)
		if err != nil {
			return err
		}
		if from == nil || to == nil {
			return fmt.Errorf("una de las bodegas no existe: %w", domain.ErrNotFound)
		}
		if !from.Active || !to.Active {
			return fmt.Errorf("una de las bodegas está inactiva: %w", domain.ErrInactiveWarehouse)
		}

		now := time.Now()
		transfer = &entity.Transfer{
			FromWarehouseID: in.FromWarehouseID,
			ToWarehouseID:   in.ToWarehouseID,
			Status:          entity.TransferStatusCompleted,
			Date:            now,
			UserID:          in.UserID,
			Observation:     in.Observation,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := r.Transfers.Create(transfer); err != nil {
			return err
		}

		for _, item := range items {
			if err := uc.moveItem(r, transfer, from, to, item, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			uc.metrics.InsufficientStock()
		}
		return nil, err
	}
	uc.metrics.TransferCompleted(len(items))
	return transfer, nil
}

// moveItem aplica una línea: débito bloqueado en origen, crédito atómico en
// destino, dos movimientos con ReferenceID = transfer.ID y la línea persistida.
func (uc *TransferUseCase) moveItem(
	r TxRepos,
	transfer *entity.Transfer,
	from, to *entity.Warehouse,
	item TransferItemInput,
	now time.Time,
) error {
	source, err := r.Balances.GetForUpdate(item.ProductID, from.ID)
	if err != nil {
		return err
	}
	var available int64
	if source != nil {
		available = source.Quantity
	}
	if available < item.Quantity {
		return &domain.InsufficientStockError{ProductID: item.ProductID, Available: available}
	}

	if err := r.Balances.Decrement(item.ProductID, from.ID, item.Quantity); err != nil {
		return err
	}
	refID := transfer.ID
	outMov := &entity.InventoryMovement{
		ProductID:   item.ProductID,
		WarehouseID: from.ID,
		Type:        entity.MovementTypeTransferOUT,
		Quantity:    item.Quantity,
		ReferenceID: &refID,
		Description: "Transferencia a " + to.Name,
		UserID:      transfer.UserID,
		CreatedAt:   now,
	}
	if err := r.Movements.Create(outMov); err != nil {
		return err
	}

	if err := r.Balances.CreateOrIncrement(item.ProductID, to.ID, item.Quantity); err != nil {
		return err
	}
	inMov := &entity.InventoryMovement{
		ProductID:   item.ProductID,
		WarehouseID: to.ID,
		Type:        entity.MovementTypeTransferIN,
		Quantity:    item.Quantity,
		ReferenceID: &refID,
		Description: "Transferencia de " + from.Name,
		UserID:      transfer.UserID,
		CreatedAt:   now,
	}
	if err := r.Movements.Create(inMov); err != nil {
		return err
	}

	return r.Transfers.CreateItem(&entity.TransferItem{
		TransferID: transfer.ID,
		ProductID:  item.ProductID,
		Quantity:   item.Quantity,
	})
}
