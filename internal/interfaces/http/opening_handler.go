package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/puntoventa/bodega-api/internal/application/dto"
	"github.com/puntoventa/bodega-api/internal/application/usecase"
)

// OpeningHandler maneja las aperturas de caja y sus movimientos de efectivo (protegido).
type OpeningHandler struct {
	uc *usecase.OpeningUseCase
}

// NewOpeningHandler construye el handler.
func NewOpeningHandler(uc *usecase.OpeningUseCase) *OpeningHandler {
	return &OpeningHandler{uc: uc}
}

// Create godoc
// @Summary      Abrir sesión de caja
// @Tags         openings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOpeningRequest  true  "initBalance"
// @Success      201   {object}  dto.OpeningResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/openings [post]
func (h *OpeningHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOpeningRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetCurrent godoc
// @Summary      Apertura activa del usuario
// @Tags         openings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OpeningResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/openings/current [get]
func (h *OpeningHandler) GetCurrent(c *fiber.Ctx) error {
	resp, err := h.uc.GetCurrent(GetUserID(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(resp)
}

// List godoc
// @Summary      Listar aperturas
// @Tags         openings
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Máximo de filas (def. 20)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {array}  dto.OpeningResponse
// @Router       /api/v1/openings [get]
func (h *OpeningHandler) List(c *fiber.Ctx) error {
	resp, err := h.uc.List(c.QueryInt("limit"), c.QueryInt("offset"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(resp)
}

// GetByID godoc
// @Summary      Obtener apertura
// @Tags         openings
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la apertura"
// @Success      200  {object}  dto.OpeningResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/openings/{id} [get]
func (h *OpeningHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	resp, err := h.uc.GetByID(id)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(resp)
}

// Close godoc
// @Summary      Cerrar apertura
// @Tags         openings
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la apertura"
// @Success      200  {object}  dto.OpeningResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/v1/openings/{id}/close [put]
func (h *OpeningHandler) Close(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	resp, err := h.uc.Close(id)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(resp)
}

// CreateCashMovement godoc
// @Summary      Registrar efectivo en la apertura
// @Tags         openings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                            true  "ID de la apertura"
// @Param        body  body  dto.CreateCashMovementRequest  true  "type (CASH_IN|CASH_OUT), amount, description (opcional)"
// @Success      201   {object}  dto.CashMovementResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/openings/{id}/cash-movements [post]
func (h *OpeningHandler) CreateCashMovement(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var in dto.CreateCashMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.CreateCashMovement(id, GetUserID(c), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListCashMovements godoc
// @Summary      Movimientos de efectivo de la apertura
// @Tags         openings
// @Security     Bearer
// @Produce      json
// @Param        id      path   int  true   "ID de la apertura"
// @Param        limit   query  int  false  "Máximo de filas (def. 20)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {array}   dto.CashMovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/openings/{id}/cash-movements [get]
func (h *OpeningHandler) ListCashMovements(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	resp, err := h.uc.ListCashMovements(id, c.QueryInt("limit"), c.QueryInt("offset"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(resp)
}

// GetSummary godoc
// @Summary      Arqueo esperado de la apertura
// @Tags         openings
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la apertura"
// @Success      200  {object}  dto.OpeningSummaryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/openings/{id}/summary [get]
func (h *OpeningHandler) GetSummary(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	resp, err := h.uc.GetSummary(id)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(resp)
}
