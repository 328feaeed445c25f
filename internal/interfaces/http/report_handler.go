package http

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/puntoventa/bodega-api/internal/application/dto"
	"github.com/puntoventa/bodega-api/internal/application/usecase"
	"github.com/puntoventa/bodega-api/internal/infrastructure/excel"
)

// ReportHandler sirve reportes: exportación XLSX de stock y resumen de
// movimientos por tipo (protegido).
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// ExportStock godoc
// @Summary      Exportar stock de una bodega a XLSX
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        id  path  int  true  "ID de la bodega"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/warehouses/{id}/stock/export [get]
func (h *ReportHandler) ExportStock(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	warehouse, balances, err := h.uc.StockExport(id)
	if err != nil {
		return handleError(c, err)
	}
	buf, err := excel.StockReport(warehouse, balances)
	if err != nil {
		return handleError(c, err)
	}
	filename := fmt.Sprintf("stock_%s_%s.xlsx", warehouse.Code, time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

// MovementsSummary godoc
// @Summary      Resumen de movimientos por tipo
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        warehouseId  query  int     false  "Filtrar por bodega"
// @Param        dateFrom     query  string  false  "Desde (RFC3339 o 2006-01-02)"
// @Param        dateTo       query  string  false  "Hasta (RFC3339 o 2006-01-02)"
// @Success      200  {object}  map[string]int64
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/reports/movements-summary [get]
func (h *ReportHandler) MovementsSummary(c *fiber.Ctx) error {
	var warehouseID *int64
	if raw := c.Query("warehouseId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "warehouseId inválido"})
		}
		warehouseID = &id
	}
	var from, to *time.Time
	if raw := c.Query("dateFrom"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dateFrom inválido"})
		}
		from = &t
	}
	if raw := c.Query("dateTo"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dateTo inválido"})
		}
		to = &t
	}
	sums, err := h.uc.MovementsSummary(warehouseID, from, to)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(sums)
}
