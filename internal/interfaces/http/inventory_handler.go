package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/puntoventa/bodega-api/internal/application/dto"
	"github.com/puntoventa/bodega-api/internal/application/inventory"
)

// InventoryHandler maneja entradas, salidas y el libro de movimientos (protegido).
type InventoryHandler struct {
	stock *inventory.StockUseCase
	query *inventory.QueryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(stock *inventory.StockUseCase, query *inventory.QueryUseCase) *InventoryHandler {
	return &InventoryHandler{stock: stock, query: query}
}

// AddStock godoc
// @Summary      Registrar entrada de stock
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockRequest  true  "warehouseId, productId, quantity, description (opcional)"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/inventory/in [post]
func (h *InventoryHandler) AddStock(c *fiber.Ctx) error {
	var in dto.StockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	input := inventory.StockInput{
		WarehouseID: in.WarehouseID,
		ProductID:   in.ProductID,
		Quantity:    in.Quantity,
		Description: in.Description,
		UserID:      stockUserID(c, in.UserID),
	}
	if err := h.stock.AddStock(c.Context(), input); err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "entrada registrada"})
}

// RemoveStock godoc
// @Summary      Registrar salida de stock
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockRequest  true  "warehouseId, productId, quantity, description (opcional)"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/inventory/out [post]
func (h *InventoryHandler) RemoveStock(c *fiber.Ctx) error {
	var in dto.StockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	input := inventory.StockInput{
		WarehouseID: in.WarehouseID,
		ProductID:   in.ProductID,
		Quantity:    in.Quantity,
		Description: in.Description,
		UserID:      stockUserID(c, in.UserID),
	}
	if err := h.stock.RemoveStock(c.Context(), input); err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "salida registrada"})
}

// GetMovements godoc
// @Summary      Consultar libro de movimientos
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        warehouseId  query  int     false  "Filtrar por bodega"
// @Param        productId    query  int     false  "Filtrar por producto"
// @Param        type         query  string  false  "IN | OUT | TRANSFER_IN | TRANSFER_OUT"
// @Param        dateFrom     query  string  false  "Desde (RFC3339)"
// @Param        dateTo       query  string  false  "Hasta (RFC3339)"
// @Param        limit        query  int     false  "Máximo de filas (def. 10)"
// @Param        offset       query  int     false  "Desplazamiento"
// @Success      200  {array}   dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/inventory/movements [get]
func (h *InventoryHandler) GetMovements(c *fiber.Ctx) error {
	q, err := parseMovementQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	list, err := h.query.GetMovements(c.Context(), q)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(list)
}

// parseMovementQuery arma el filtro desde la query string. Las fechas aceptan
// RFC3339 o solo fecha (2006-01-02).
func parseMovementQuery(c *fiber.Ctx) (dto.MovementQuery, error) {
	var q dto.MovementQuery
	if raw := c.Query("warehouseId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return q, fiber.NewError(fiber.StatusBadRequest, "warehouseId inválido")
		}
		q.WarehouseID = &id
	}
	if raw := c.Query("productId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return q, fiber.NewError(fiber.StatusBadRequest, "productId inválido")
		}
		q.ProductID = &id
	}
	q.Type = c.Query("type")
	if raw := c.Query("dateFrom"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			return q, fiber.NewError(fiber.StatusBadRequest, "dateFrom inválido")
		}
		q.DateFrom = &t
	}
	if raw := c.Query("dateTo"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			return q, fiber.NewError(fiber.StatusBadRequest, "dateTo inválido")
		}
		q.DateTo = &t
	}
	q.Limit = c.QueryInt("limit")
	q.Offset = c.QueryInt("offset")
	return q, nil
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

// stockUserID prefiere el usuario del token; el del body queda como respaldo
// para integraciones internas.
func stockUserID(c *fiber.Ctx, fromBody *int64) *int64 {
	if id := GetUserID(c); id != 0 {
		return &id
	}
	return fromBody
}
