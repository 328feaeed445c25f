package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/puntoventa/bodega-api/internal/domain/entity"
	"github.com/puntoventa/bodega-api/internal/domain/repository"
)

var _ repository.BalanceRepository = (*BalanceRepo)(nil)

// Whitelist de orden para el listado de stock: clave del cliente -> columna SQL.
var balanceSortColumns = map[string]string{
	"quantity":     "b.quantity",
	"createdAt":    "b.created_at",
	"updatedAt":    "b.updated_at",
	"product.name": "p.name",
	"product.sku":  "p.sku",
}

// BalanceRepo implementación de BalanceRepository sobre PostgreSQL (usable con pool o tx).
type BalanceRepo struct {
	q Querier
}

// NewBalanceRepository construye el adaptador de balances. Pasar pool o tx (Querier).
func NewBalanceRepository(q Querier) *BalanceRepo {
	return &BalanceRepo{q: q}
}

// Get obtiene el balance de un producto en una bodega. Devuelve nil si no existe fila.
func (r *BalanceRepo) Get(productID, warehouseID int64) (*entity.InventoryBalance, error) {
	query := `
		SELECT id, product_id, warehouse_id, quantity, created_at, updated_at
		FROM inventory_balances WHERE product_id = $1 AND warehouse_id = $2`
	var b entity.InventoryBalance
	err := r.q.QueryRow(context.Background(), query, productID, warehouseID).Scan(
		&b.ID, &b.ProductID, &b.WarehouseID, &b.Quantity, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get balance: %w", err)
	}
	return &b, nil
}

// GetForUpdate obtiene el balance bloqueando la fila (SELECT FOR UPDATE).
// Devuelve nil si no existe: el caller decide si eso es stock cero o error.
func (r *BalanceRepo) GetForUpdate(productID, warehouseID int64) (*entity.InventoryBalance, error) {
	query := `
		SELECT id, product_id, warehouse_id, quantity, created_at, updated_at
		FROM inventory_balances WHERE product_id = $1 AND warehouse_id = $2
		FOR UPDATE`
	var b entity.InventoryBalance
	err := r.q.QueryRow(context.Background(), query, productID, warehouseID).Scan(
		&b.ID, &b.ProductID, &b.WarehouseID, &b.Quantity, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get balance for update: %w", err)
	}
	return &b, nil
}

// CreateOrIncrement suma delta en una sola sentencia atómica. El ON CONFLICT
// sobre (product_id, warehouse_id) cubre la carrera de la primera entrada del par.
func (r *BalanceRepo) CreateOrIncrement(productID, warehouseID, delta int64) error {
	query := `
		INSERT INTO inventory_balances (product_id, warehouse_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())
		ON CONFLICT (product_id, warehouse_id)
		DO UPDATE SET quantity = inventory_balances.quantity + EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, productID, warehouseID, delta)
	if err != nil {
		return fmt.Errorf("increment balance: %w", err)
	}
	return nil
}

// Decrement resta quantity a una fila que el caller ya bloqueó con GetForUpdate.
func (r *BalanceRepo) Decrement(productID, warehouseID, quantity int64) error {
	query := `
		UPDATE inventory_balances
		SET quantity = quantity - $3, updated_at = now()
		WHERE product_id = $1 AND warehouse_id = $2`
	tag, err := r.q.Exec(context.Background(), query, productID, warehouseID, quantity)
	if err != nil {
		return fmt.Errorf("decrement balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("decrement balance: fila inexistente para producto %d bodega %d", productID, warehouseID)
	}
	return nil
}

// ListByWarehouse lista el stock de una bodega con búsqueda por nombre/SKU,
// orden por whitelist y paginación. Devuelve el total filtrado pre-paginación.
func (r *BalanceRepo) ListByWarehouse(warehouseID int64, page repository.StockPage) ([]entity.BalanceWithProduct, int64, error) {
	ctx := context.Background()

	where := "b.warehouse_id = $1"
	args := []any{warehouseID}
	if page.Search != "" {
		args = append(args, "%"+page.Search+"%")
		where += fmt.Sprintf(" AND (p.name ILIKE $%d OR p.sku ILIKE $%d)", len(args), len(args))
	}

	countQuery := `
		SELECT COUNT(*)
		FROM inventory_balances b
		JOIN products p ON p.id = b.product_id
		WHERE ` + where
	var total int64
	if err := r.q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count balances: %w", err)
	}

	orderBy := buildOrderBy(page.Sort, balanceSortColumns, "b.updated_at DESC")
	offset := (page.PageIndex - 1) * page.PageSize
	args = append(args, page.PageSize, offset)
	query := fmt.Sprintf(`
		SELECT b.id, b.product_id, b.warehouse_id, b.quantity, b.created_at, b.updated_at,
		       p.name, p.sku
		FROM inventory_balances b
		JOIN products p ON p.id = b.product_id
		WHERE %s
		ORDER BY %s
		LIMIT $%d OFFSET $%d`, where, orderBy, len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list balances: %w", err)
	}
	defer rows.Close()

	var items []entity.BalanceWithProduct
	for rows.Next() {
		var b entity.BalanceWithProduct
		if err := rows.Scan(
			&b.ID, &b.ProductID, &b.WarehouseID, &b.Quantity, &b.CreatedAt, &b.UpdatedAt,
			&b.ProductName, &b.ProductSKU,
		); err != nil {
			return nil, 0, fmt.Errorf("scan balance: %w", err)
		}
		items = append(items, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate balances: %w", err)
	}
	return items, total, nil
}
