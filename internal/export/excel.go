// Package export writes the invoice register to spreadsheet files.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/zencool/invoicer/internal/domain/entity"
	"github.com/zencool/invoicer/internal/format"
)

// ExcelExporter writes invoice projections to an .xlsx workbook.
type ExcelExporter struct {
	logger *zap.Logger
}

// NewExcelExporter creates a new Excel exporter.
func NewExcelExporter(logger *zap.Logger) *ExcelExporter {
	return &ExcelExporter{logger: logger}
}

var registerColumns = []string{"Invoice Number", "Client", "Issued", "Status", "Total"}

// Register renders the invoice list as a single-sheet workbook: one row per
// invoice plus a grand total row.
func (e *ExcelExporter) Register(items []entity.InvoiceListItem) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	for col, title := range registerColumns {
		e.setCell(f, sheet, col, 1, title)
	}

	var grandTotal float64
	row := 2
	for _, item := range items {
		e.setCell(f, sheet, 0, row, item.InvoiceNumber)
		e.setCell(f, sheet, 1, row, item.ClientName)
		e.setCell(f, sheet, 2, row, format.Date(item.IssuedDate))
		e.setCell(f, sheet, 3, row, item.Status)
		e.setCell(f, sheet, 4, row, item.Total)
		grandTotal += item.Total
		row++
	}

	e.setCell(f, sheet, 3, row, "Total")
	e.setCell(f, sheet, 4, row, grandTotal)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	e.logger.Info("Invoice register exported", zap.Int("invoices", len(items)))
	return buf.Bytes(), nil
}

// setCell sets a cell value by zero-based column index and one-based row.
func (e *ExcelExporter) setCell(f *excelize.File, sheet string, col, row int, value interface{}) {
	name, err := excelize.CoordinatesToCellName(col+1, row)
	if err != nil {
		e.logger.Warn("Invalid cell coordinates",
			zap.Int("col", col),
			zap.Int("row", row),
			zap.Error(err))
		return
	}
	if err := f.SetCellValue(sheet, name, value); err != nil {
		e.logger.Warn("Failed to set cell value",
			zap.String("sheet", sheet),
			zap.String("cell", name),
			zap.Error(err))
	}
}
