package excel

import (
	"bytes"
	"fmt"

	"github.com/puntoventa/bodega-api/internal/domain/entity"
	"github.com/xuri/excelize/v2"
)

// StockReport genera un XLSX con el stock de una bodega: una fila por producto
// con SKU, nombre y cantidad. Devuelve el archivo en memoria listo para servir.
func StockReport(warehouse *entity.Warehouse, balances []entity.BalanceWithProduct) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{"SKU", "Producto", "Bodega", "Cantidad", "Actualizado"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("escribir encabezado: %w", err)
	}

	row := 2
	for _, b := range balances {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, fmt.Errorf("celda fila %d: %w", row, err)
		}
		data := []interface{}{
			b.ProductSKU,
			b.ProductName,
			warehouse.Name,
			b.Quantity,
			b.UpdatedAt.Format("2006-01-02 15:04"),
		}
		if err := f.SetSheetRow(sheet, cell, &data); err != nil {
			return nil, fmt.Errorf("escribir fila %d: %w", row, err)
		}
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializar XLSX: %w", err)
	}
	return buf, nil
}
