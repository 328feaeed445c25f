package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/puntoventa/bodega-api/internal/domain/entity"
	"github.com/puntoventa/bodega-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación de MovementRepository sobre PostgreSQL.
// El libro es append-only: este adaptador no expone UPDATE ni DELETE.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador de movimientos. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create inserta un movimiento y asigna el ID y created_at generados.
func (r *MovementRepo) Create(m *entity.InventoryMovement) error {
	query := `
		INSERT INTO inventory_movements (product_id, warehouse_id, type, quantity, reference_id, description, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query,
		m.ProductID, m.WarehouseID, m.Type, m.Quantity, m.ReferenceID, m.Description, m.UserID,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// List consulta el libro con filtros combinables, más reciente primero.
func (r *MovementRepo) List(filter repository.MovementFilter) ([]entity.MovementWithDetail, error) {
	where := "1=1"
	var args []any
	if filter.WarehouseID != nil {
		args = append(args, *filter.WarehouseID)
		where += fmt.Sprintf(" AND m.warehouse_id = $%d", len(args))
	}
	if filter.ProductID != nil {
		args = append(args, *filter.ProductID)
		where += fmt.Sprintf(" AND m.product_id = $%d", len(args))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		where += fmt.Sprintf(" AND m.type = $%d", len(args))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		where += fmt.Sprintf(" AND m.created_at >= $%d", len(args))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		where += fmt.Sprintf(" AND m.created_at <= $%d", len(args))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	args = append(args, limit, offset)

	query := fmt.Sprintf(`
		SELECT m.id, m.product_id, m.warehouse_id, m.type, m.quantity, m.reference_id,
		       m.description, m.user_id, m.created_at,
		       p.name, p.sku, w.name
		FROM inventory_movements m
		JOIN products p ON p.id = m.product_id
		JOIN warehouses w ON w.id = m.warehouse_id
		WHERE %s
		ORDER BY m.created_at DESC, m.id DESC
		LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var items []entity.MovementWithDetail
	for rows.Next() {
		var m entity.MovementWithDetail
		if err := rows.Scan(
			&m.ID, &m.ProductID, &m.WarehouseID, &m.Type, &m.Quantity, &m.ReferenceID,
			&m.Description, &m.UserID, &m.CreatedAt,
			&m.ProductName, &m.ProductSKU, &m.WarehouseName,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movements: %w", err)
	}
	return items, nil
}

// SumByType agrega cantidades por tipo de movimiento para reportes.
func (r *MovementRepo) SumByType(warehouseID *int64, from, to *time.Time) (map[string]int64, error) {
	where := "1=1"
	var args []any
	if warehouseID != nil {
		args = append(args, *warehouseID)
		where += fmt.Sprintf(" AND warehouse_id = $%d", len(args))
	}
	if from != nil {
		args = append(args, *from)
		where += fmt.Sprintf(" AND created_at >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		where += fmt.Sprintf(" AND created_at <= $%d", len(args))
	}

	query := fmt.Sprintf(`
		SELECT type, COALESCE(SUM(quantity), 0)
		FROM inventory_movements
		WHERE %s
		GROUP BY type`, where)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("sum movements: %w", err)
	}
	defer rows.Close()

	sums := make(map[string]int64)
	for rows.Next() {
		var movType string
		var total int64
		if err := rows.Scan(&movType, &total); err != nil {
			return nil, fmt.Errorf("scan sum: %w", err)
		}
		sums[movType] = total
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sums: %w", err)
	}
	return sums, nil
}
