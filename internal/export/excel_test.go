package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/zencool/invoicer/internal/domain/entity"
)

func TestRegisterExport(t *testing.T) {
	exporter := NewExcelExporter(zap.NewNop())

	items := []entity.InvoiceListItem{
		{ID: "a", InvoiceNumber: "2025-1", ClientName: "PT Sejahtera", IssuedDate: "2025-01-01", Total: 200000, Status: entity.StatusBooked},
		{ID: "b", InvoiceNumber: "2025-2", ClientName: "CV Makmur", IssuedDate: "2025-02-10", Total: 75000, Status: entity.StatusDraft},
	}

	book, err := exporter.Register(items)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(book))
	require.NoError(t, err)
	defer f.Close()

	sheet := f.GetSheetName(0)

	header, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Invoice Number", header)

	client, err := f.GetCellValue(sheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "PT Sejahtera", client)

	issued, err := f.GetCellValue(sheet, "C3")
	require.NoError(t, err)
	assert.Equal(t, "Feb 10, 2025", issued)

	grandTotal, err := f.GetCellValue(sheet, "E4")
	require.NoError(t, err)
	assert.Equal(t, "275000", grandTotal)
}

func TestRegisterExportEmptyList(t *testing.T) {
	exporter := NewExcelExporter(zap.NewNop())

	book, err := exporter.Register(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(book))
	require.NoError(t, err)
	defer f.Close()

	sheet := f.GetSheetName(0)
	total, err := f.GetCellValue(sheet, "E2")
	require.NoError(t, err)
	assert.Equal(t, "0", total)
}
