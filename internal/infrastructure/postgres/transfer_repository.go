package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/puntoventa/bodega-api/internal/domain/entity"
	"github.com/puntoventa/bodega-api/internal/domain/repository"
)

var _ repository.TransferRepository = (*TransferRepo)(nil)

// Whitelist de orden para el listado de transferencias.
var transferSortColumns = map[string]string{
	"id":          "t.id",
	"date":        "t.date",
	"createdAt":   "t.created_at",
	"status":      "t.status",
	"observation": "t.observation",
}

// TransferRepo implementación de TransferRepository sobre PostgreSQL.
type TransferRepo struct {
	q Querier
}

// NewTransferRepository construye el adaptador de transferencias. Pasar pool o tx (Querier).
func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

// Create inserta la cabecera y asigna el ID generado (lo necesitan las líneas
// y los movimientos como reference_id dentro de la misma tx).
func (r *TransferRepo) Create(t *entity.Transfer) error {
	query := `
		INSERT INTO transfers (from_warehouse_id, to_warehouse_id, status, date, user_id, observation, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now(), now())
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(context.Background(), query,
		t.FromWarehouseID, t.ToWarehouseID, t.Status, t.Date, t.UserID, t.Observation,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create transfer: %w", err)
	}
	return nil
}

// CreateItem inserta una línea de la transferencia.
func (r *TransferRepo) CreateItem(item *entity.TransferItem) error {
	query := `
		INSERT INTO transfer_items (transfer_id, product_id, quantity)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		item.TransferID, item.ProductID, item.Quantity,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("create transfer item: %w", err)
	}
	return nil
}

// GetByID devuelve la cabecera con nombres de bodegas y conteo de líneas; nil si no existe.
func (r *TransferRepo) GetByID(id int64) (*entity.TransferWithDetail, error) {
	query := `
		SELECT t.id, t.from_warehouse_id, t.to_warehouse_id, t.status, t.date,
		       t.user_id, t.observation, t.created_at, t.updated_at,
		       wf.name, wt.name,
		       (SELECT COUNT(*) FROM transfer_items ti WHERE ti.transfer_id = t.id)
		FROM transfers t
		JOIN warehouses wf ON wf.id = t.from_warehouse_id
		JOIN warehouses wt ON wt.id = t.to_warehouse_id
		WHERE t.id = $1`
	var t entity.TransferWithDetail
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.FromWarehouseID, &t.ToWarehouseID, &t.Status, &t.Date,
		&t.UserID, &t.Observation, &t.CreatedAt, &t.UpdatedAt,
		&t.FromWarehouseName, &t.ToWarehouseName, &t.ItemsCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transfer: %w", err)
	}
	return &t, nil
}

// ListItems devuelve las líneas de una transferencia con datos del producto.
func (r *TransferRepo) ListItems(transferID int64) ([]entity.TransferItemWithProduct, error) {
	query := `
		SELECT ti.id, ti.transfer_id, ti.product_id, ti.quantity, p.name, p.sku
		FROM transfer_items ti
		JOIN products p ON p.id = ti.product_id
		WHERE ti.transfer_id = $1
		ORDER BY ti.id`
	rows, err := r.q.Query(context.Background(), query, transferID)
	if err != nil {
		return nil, fmt.Errorf("list transfer items: %w", err)
	}
	defer rows.Close()

	var items []entity.TransferItemWithProduct
	for rows.Next() {
		var it entity.TransferItemWithProduct
		if err := rows.Scan(&it.ID, &it.TransferID, &it.ProductID, &it.Quantity, &it.ProductName, &it.ProductSKU); err != nil {
			return nil, fmt.Errorf("scan transfer item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transfer items: %w", err)
	}
	return items, nil
}

// List pagina transferencias con búsqueda y orden por whitelist. La búsqueda
// cubre observación, estado y nombres de bodega; si el término es numérico,
// también el ID exacto. Devuelve el total filtrado pre-paginación.
func (r *TransferRepo) List(page repository.TransferPage) ([]entity.TransferWithDetail, int64, error) {
	ctx := context.Background()

	where := "1=1"
	var args []any
	if page.Search != "" {
		args = append(args, "%"+page.Search+"%")
		n := len(args)
		cond := fmt.Sprintf("(t.observation ILIKE $%d OR t.status ILIKE $%d OR wf.name ILIKE $%d OR wt.name ILIKE $%d", n, n, n, n)
		if id, err := strconv.ParseInt(page.Search, 10, 64); err == nil {
			args = append(args, id)
			cond += fmt.Sprintf(" OR t.id = $%d", len(args))
		}
		cond += ")"
		where += " AND " + cond
	}

	countQuery := `
		SELECT COUNT(*)
		FROM transfers t
		JOIN warehouses wf ON wf.id = t.from_warehouse_id
		JOIN warehouses wt ON wt.id = t.to_warehouse_id
		WHERE ` + where
	var total int64
	if err := r.q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count transfers: %w", err)
	}

	orderBy := buildOrderBy(page.Sort, transferSortColumns, "t.date DESC")
	offset := (page.PageIndex - 1) * page.PageSize
	args = append(args, page.PageSize, offset)
	query := fmt.Sprintf(`
		SELECT t.id, t.from_warehouse_id, t.to_warehouse_id, t.status, t.date,
		       t.user_id, t.observation, t.created_at, t.updated_at,
		       wf.name, wt.name,
		       (SELECT COUNT(*) FROM transfer_items ti WHERE ti.transfer_id = t.id)
		FROM transfers t
		JOIN warehouses wf ON wf.id = t.from_warehouse_id
		JOIN warehouses wt ON wt.id = t.to_warehouse_id
		WHERE %s
		ORDER BY %s
		LIMIT $%d OFFSET $%d`, where, orderBy, len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()

	var items []entity.TransferWithDetail
	for rows.Next() {
		var t entity.TransferWithDetail
		if err := rows.Scan(
			&t.ID, &t.FromWarehouseID, &t.ToWarehouseID, &t.Status, &t.Date,
			&t.UserID, &t.Observation, &t.CreatedAt, &t.UpdatedAt,
			&t.FromWarehouseName, &t.ToWarehouseName, &t.ItemsCount,
		); err != nil {
			return nil, 0, fmt.Errorf("scan transfer: %w", err)
		}
		items = append(items, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate transfers: %w", err)
	}
	return items, total, nil
}
