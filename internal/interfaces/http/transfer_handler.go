package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/puntoventa/bodega-api/internal/application/dto"
	"github.com/puntoventa/bodega-api/internal/application/inventory"
)

// TransferHandler maneja traslados entre bodegas (protegido).
type TransferHandler struct {
	transfer *inventory.TransferUseCase
	query    *inventory.QueryUseCase
}

// NewTransferHandler construye el handler.
func NewTransferHandler(transfer *inventory.TransferUseCase, query *inventory.QueryUseCase) *TransferHandler {
	return &TransferHandler{transfer: transfer, query: query}
}

// Create godoc
// @Summary      Crear transferencia entre bodegas
// @Tags         transfers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "fromWarehouseId, toWarehouseId, items, observation (opcional)"
// @Success      201   {object}  dto.TransferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/inventory/transfer [post]
func (h *TransferHandler) Create(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	items := make([]inventory.TransferItemInput, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, inventory.TransferItemInput{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	input := inventory.TransferInput{
		FromWarehouseID: in.FromWarehouseID,
		ToWarehouseID:   in.ToWarehouseID,
		Items:           items,
		Observation:     in.Observation,
		UserID:          stockUserID(c, in.UserID),
	}
	transfer, err := h.transfer.Transfer(c.Context(), input)
	if err != nil {
		return handleError(c, err)
	}
	resp, err := h.query.GetTransferByID(c.Context(), transfer.ID)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary      Listar transferencias
// @Tags         transfers
// @Security     Bearer
// @Produce      json
// @Param        pageIndex  query  int     false  "Página (def. 1)"
// @Param        pageSize   query  int     false  "Tamaño (def. 10, máx. 100)"
// @Param        search     query  string  false  "Busca en observación, estado, bodegas o ID"
// @Param        sort       query  string  false  "JSON: [{\"key\":\"date\",\"order\":\"desc\"}]"
// @Success      200  {object}  dto.TransferListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/transfers [get]
func (h *TransferHandler) List(c *fiber.Ctx) error {
	q := dto.TransferQuery{
		PageIndex: c.QueryInt("pageIndex"),
		PageSize:  c.QueryInt("pageSize"),
		Search:    c.Query("search"),
		Sort:      c.Query("sort"),
	}
	resp, err := h.query.ListTransfers(c.Context(), q)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(resp)
}

// GetByID godoc
// @Summary      Detalle de una transferencia
// @Tags         transfers
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la transferencia"
// @Success      200  {object}  dto.TransferResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/transfers/{id} [get]
func (h *TransferHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	resp, err := h.query.GetTransferByID(c.Context(), id)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(resp)
}
