package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/puntoventa/bodega-api/internal/domain"
	"github.com/puntoventa/bodega-api/internal/domain/entity"
	"github.com/puntoventa/bodega-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.OpeningRepository = (*OpeningRepo)(nil)

// OpeningRepo implementación de OpeningRepository sobre PostgreSQL.
type OpeningRepo struct {
	q Querier
}

// NewOpeningRepository construye el adaptador de aperturas. Pasar pool o tx (Querier).
func NewOpeningRepository(q Querier) *OpeningRepo {
	return &OpeningRepo{q: q}
}

// Create inserta la apertura y asigna el ID generado. El índice parcial único
// sobre (user_id) WHERE status = 1 respalda la regla de una apertura activa.
func (r *OpeningRepo) Create(o *entity.Opening) error {
	query := `
		INSERT INTO openings (user_id, status, init_balance, opened_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		o.UserID, o.Status, o.InitBalance, o.OpenedAt,
	).Scan(&o.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("apertura activa existente para usuario %d: %w", o.UserID, domain.ErrConflict)
		}
		return fmt.Errorf("create opening: %w", err)
	}
	return nil
}

// GetByID devuelve nil si no existe.
func (r *OpeningRepo) GetByID(id int64) (*entity.Opening, error) {
	query := `
		SELECT id, user_id, status, init_balance, opened_at, closed_at
		FROM openings WHERE id = $1`
	var o entity.Opening
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.UserID, &o.Status, &o.InitBalance, &o.OpenedAt, &o.ClosedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get opening: %w", err)
	}
	return &o, nil
}

// GetActiveByUser devuelve la apertura activa (status=1) del usuario, nil si no hay.
func (r *OpeningRepo) GetActiveByUser(userID int64) (*entity.Opening, error) {
	query := `
		SELECT id, user_id, status, init_balance, opened_at, closed_at
		FROM openings WHERE user_id = $1 AND status = 1`
	var o entity.Opening
	err := r.q.QueryRow(context.Background(), query, userID).Scan(
		&o.ID, &o.UserID, &o.Status, &o.InitBalance, &o.OpenedAt, &o.ClosedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active opening: %w", err)
	}
	return &o, nil
}

// Close marca la apertura como cerrada con la hora indicada.
func (r *OpeningRepo) Close(id int64, closedAt time.Time) error {
	query := `
		UPDATE openings SET status = 0, closed_at = $2
		WHERE id = $1 AND status = 1`
	tag, err := r.q.Exec(context.Background(), query, id, closedAt)
	if err != nil {
		return fmt.Errorf("close opening: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("apertura %d no activa: %w", id, domain.ErrConflict)
	}
	return nil
}

// List pagina aperturas, más reciente primero.
func (r *OpeningRepo) List(limit, offset int) ([]*entity.Opening, error) {
	query := `
		SELECT id, user_id, status, init_balance, opened_at, closed_at
		FROM openings
		ORDER BY opened_at DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list openings: %w", err)
	}
	defer rows.Close()

	var items []*entity.Opening
	for rows.Next() {
		var o entity.Opening
		if err := rows.Scan(&o.ID, &o.UserID, &o.Status, &o.InitBalance, &o.OpenedAt, &o.ClosedAt); err != nil {
			return nil, fmt.Errorf("scan opening: %w", err)
		}
		items = append(items, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate openings: %w", err)
	}
	return items, nil
}

// CreateCashMovement registra efectivo sobre una apertura.
func (r *OpeningRepo) CreateCashMovement(m *entity.CashMovement) error {
	query := `
		INSERT INTO cash_movements (opening_id, type, amount, description, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		m.OpeningID, m.Type, m.Amount, m.Description, m.UserID, m.CreatedAt,
	).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("create cash movement: %w", err)
	}
	return nil
}

// ListCashMovements lista el efectivo de una apertura, más reciente primero.
func (r *OpeningRepo) ListCashMovements(openingID int64, limit, offset int) ([]*entity.CashMovement, error) {
	query := `
		SELECT id, opening_id, type, amount, description, user_id, created_at
		FROM cash_movements
		WHERE opening_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, openingID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list cash movements: %w", err)
	}
	defer rows.Close()

	var items []*entity.CashMovement
	for rows.Next() {
		var m entity.CashMovement
		if err := rows.Scan(&m.ID, &m.OpeningID, &m.Type, &m.Amount, &m.Description, &m.UserID, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan cash movement: %w", err)
		}
		items = append(items, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cash movements: %w", err)
	}
	return items, nil
}

// SumCashMovements suma los montos de un tipo en la apertura.
func (r *OpeningRepo) SumCashMovements(openingID int64, movementType string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM cash_movements
		WHERE opening_id = $1 AND type = $2`
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(), query, openingID, movementType).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum cash movements: %w", err)
	}
	return total, nil
}
