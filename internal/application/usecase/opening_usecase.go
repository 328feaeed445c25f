package usecase

import (
	"fmt"
	"time"

	"github.com/puntoventa/bodega-api/internal/application/dto"
	"github.com/puntoventa/bodega-api/internal/domain"
	"github.com/puntoventa/bodega-api/internal/domain/entity"
	"github.com/puntoventa/bodega-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// OpeningUseCase sesiones de caja: apertura, cierre, movimientos de efectivo
// y arqueo esperado. Un usuario tiene a lo sumo una apertura activa.
type OpeningUseCase struct {
	repo repository.OpeningRepository
}

// NewOpeningUseCase construye el caso de uso.
func NewOpeningUseCase(repo repository.OpeningRepository) *OpeningUseCase {
	return &OpeningUseCase{repo: repo}
}

// Create abre una sesión de caja para el usuario. Falla con ErrConflict si ya
// tiene una activa.
func (uc *OpeningUseCase) Create(userID int64, in dto.CreateOpeningRequest) (*dto.OpeningResponse, error) {
	if in.InitBalance.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	active, err := uc.repo.GetActiveByUser(userID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, fmt.Errorf("el usuario ya tiene una apertura activa: %w", domain.ErrConflict)
	}
	opening := &entity.Opening{
		UserID:      userID,
		Status:      entity.OpeningStatusOpen,
		InitBalance: in.InitBalance,
		OpenedAt:    time.Now(),
	}
	if err := uc.repo.Create(opening); err != nil {
		return nil, err
	}
	return toOpeningResponse(opening), nil
}

// GetByID obtiene una apertura por ID.
func (uc *OpeningUseCase) GetByID(id int64) (*dto.OpeningResponse, error) {
	opening, err := uc.getOpening(id)
	if err != nil {
		return nil, err
	}
	return toOpeningResponse(opening), nil
}

// GetCurrent devuelve la apertura activa del usuario.
func (uc *OpeningUseCase) GetCurrent(userID int64) (*dto.OpeningResponse, error) {
	opening, err := uc.repo.GetActiveByUser(userID)
	if err != nil {
		return nil, err
	}
	if opening == nil {
		return nil, fmt.Errorf("sin apertura activa: %w", domain.ErrNotFound)
	}
	return toOpeningResponse(opening), nil
}

// Close cierra la apertura. Cerrar una ya cerrada es ErrConflict.
func (uc *OpeningUseCase) Close(id int64) (*dto.OpeningResponse, error) {
	opening, err := uc.getOpening(id)
	if err != nil {
		return nil, err
	}
	if opening.Status != entity.OpeningStatusOpen {
		return nil, fmt.Errorf("la apertura ya está cerrada: %w", domain.ErrConflict)
	}
	now := time.Now()
	if err := uc.repo.Close(id, now); err != nil {
		return nil, err
	}
	opening.Status = entity.OpeningStatusClosed
	opening.ClosedAt = &now
	return toOpeningResponse(opening), nil
}

// List pagina aperturas, más reciente primero.
func (uc *OpeningUseCase) List(limit, offset int) ([]dto.OpeningResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OpeningResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOpeningResponse(o))
	}
	return items, nil
}

// CreateCashMovement registra efectivo sobre una apertura activa.
func (uc *OpeningUseCase) CreateCashMovement(openingID, userID int64, in dto.CreateCashMovementRequest) (*dto.CashMovementResponse, error) {
	if in.Type != entity.CashMovementIn && in.Type != entity.CashMovementOut {
		return nil, domain.ErrInvalidInput
	}
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	opening, err := uc.getOpening(openingID)
	if err != nil {
		return nil, err
	}
	if opening.Status != entity.OpeningStatusOpen {
		return nil, fmt.Errorf("la apertura no está activa: %w", domain.ErrConflict)
	}
	movement := &entity.CashMovement{
		OpeningID:   openingID,
		Type:        in.Type,
		Amount:      in.Amount,
		Description: in.Description,
		UserID:      &userID,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.CreateCashMovement(movement); err != nil {
		return nil, err
	}
	return toCashMovementResponse(movement), nil
}

// ListCashMovements lista el efectivo de una apertura.
func (uc *OpeningUseCase) ListCashMovements(openingID int64, limit, offset int) ([]dto.CashMovementResponse, error) {
	if _, err := uc.getOpening(openingID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.ListCashMovements(openingID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CashMovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toCashMovementResponse(m))
	}
	return items, nil
}

// GetSummary calcula el arqueo esperado: saldo inicial + entradas - salidas.
func (uc *OpeningUseCase) GetSummary(openingID int64) (*dto.OpeningSummaryResponse, error) {
	opening, err := uc.getOpening(openingID)
	if err != nil {
		return nil, err
	}
	totalIn, err := uc.repo.SumCashMovements(openingID, entity.CashMovementIn)
	if err != nil {
		return nil, err
	}
	totalOut, err := uc.repo.SumCashMovements(openingID, entity.CashMovementOut)
	if err != nil {
		return nil, err
	}
	summary := ExpectedCash(opening.InitBalance, totalIn, totalOut)
	return &dto.OpeningSummaryResponse{
		OpeningID:    openingID,
		InitBalance:  opening.InitBalance,
		TotalCashIn:  totalIn,
		TotalCashOut: totalOut,
		ExpectedCash: summary,
	}, nil
}

// ExpectedCash efectivo esperado en caja: inicial + entradas - salidas.
func ExpectedCash(initBalance, totalIn, totalOut decimal.Decimal) decimal.Decimal {
	return initBalance.Add(totalIn).Sub(totalOut)
}

func (uc *OpeningUseCase) getOpening(id int64) (*entity.Opening, error) {
	opening, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if opening == nil {
		return nil, fmt.Errorf("apertura %d: %w", id, domain.ErrNotFound)
	}
	return opening, nil
}

func toOpeningResponse(o *entity.Opening) *dto.OpeningResponse {
	return &dto.OpeningResponse{
		ID:          o.ID,
		UserID:      o.UserID,
		Status:      o.Status,
		InitBalance: o.InitBalance,
		OpenedAt:    o.OpenedAt,
		ClosedAt:    o.ClosedAt,
	}
}

func toCashMovementResponse(m *entity.CashMovement) *dto.CashMovementResponse {
	return &dto.CashMovementResponse{
		ID:          m.ID,
		OpeningID:   m.OpeningID,
		Type:        m.Type,
		Amount:      m.Amount,
		Description: m.Description,
		UserID:      m.UserID,
		CreatedAt:   m.CreatedAt,
	}
}
