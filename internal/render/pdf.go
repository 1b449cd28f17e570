package render

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/zencool/invoicer/internal/domain/entity"
	"github.com/zencool/invoicer/internal/format"
)

// PDF renders the invoice as an A4 portrait document for download. Content
// mirrors the HTML document: header, parties, item rows, total with its word
// form, notes, and bank details.
func (r *Renderer) PDF(inv *entity.Invoice) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(110, 10, inv.From.Name)
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Invoice "+inv.InvoiceNumber, "", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(107, 114, 128)
	pdf.Cell(110, 5, inv.From.Address)
	pdf.CellFormat(0, 5, "Issued at: "+format.Date(inv.IssuedDate), "", 1, "R", false, 0, "")
	pdf.Cell(110, 5, "")
	pdf.CellFormat(0, 5, "Due at: "+format.Date(inv.DueDate), "", 1, "R", false, 0, "")
	if inv.LateFee > 0 {
		pdf.Cell(110, 5, "")
		pdf.CellFormat(0, 5, fmt.Sprintf("Late fee: %s%%", strconv.FormatFloat(inv.LateFee, 'f', -1, 64)), "", 1, "R", false, 0, "")
	}
	pdf.Ln(8)

	// Parties
	pdf.SetTextColor(107, 114, 128)
	pdf.SetFont("Arial", "B", 9)
	pdf.Cell(90, 6, "FROM")
	pdf.CellFormat(0, 6, "TO", "", 1, "", false, 0, "")
	pdf.SetTextColor(26, 32, 44)
	writeParty := func(from, to string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Arial", style, 10)
		pdf.Cell(90, 5, from)
		pdf.CellFormat(0, 5, to, "", 1, "", false, 0, "")
	}
	writeParty(inv.From.Name, inv.To.Name, true)
	writeParty(inv.From.Address, inv.To.Address, false)
	writeParty(inv.From.Email, inv.To.Email, false)
	if inv.From.Phone != "" || inv.To.Phone != "" {
		writeParty(inv.From.Phone, inv.To.Phone, false)
	}
	pdf.Ln(8)

	// Item table
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(245, 245, 245)
	pdf.CellFormat(80, 8, "Item", "B", 0, "L", true, 0, "")
	pdf.CellFormat(25, 8, "Quantity", "B", 0, "R", true, 0, "")
	pdf.CellFormat(15, 8, "Unit", "B", 0, "R", true, 0, "")
	pdf.CellFormat(30, 8, "Price", "B", 0, "R", true, 0, "")
	pdf.CellFormat(30, 8, "Sum", "B", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, it := range inv.Items {
		pdf.CellFormat(80, 7, it.Description, "B", 0, "L", false, 0, "")
		pdf.CellFormat(25, 7, strconv.FormatFloat(it.Quantity, 'f', -1, 64), "B", 0, "R", false, 0, "")
		pdf.CellFormat(15, 7, "1", "B", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, format.GroupedNumber(it.UnitPrice), "B", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, format.GroupedNumber(it.Amount()), "B", 1, "R", false, 0, "")
	}

	// Totals
	total := inv.Total()
	pdf.Ln(4)
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(150, 7, "Subtotal", "", 0, "R", false, 0, "")
	pdf.CellFormat(30, 7, format.GroupedNumber(total), "", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(150, 8, "Total", "", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, format.Currency(total), "", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "I", 9)
	pdf.SetTextColor(107, 114, 128)
	pdf.CellFormat(0, 6, format.NumberToWords(int64(total))+" rupiah", "", 1, "R", false, 0, "")
	pdf.Ln(6)

	// Footer
	pdf.SetTextColor(26, 32, 44)
	if inv.Notes != "" {
		pdf.SetFont("Arial", "B", 9)
		pdf.CellFormat(0, 6, "NOTES", "", 1, "", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 5, inv.Notes, "", "L", false)
		pdf.Ln(2)
	}
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(0, 6, "BANK DETAILS", "", 1, "", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 5, inv.BankDetails.Bank, "", 1, "", false, 0, "")
	pdf.CellFormat(0, 5, inv.BankDetails.AccountNumber, "", 1, "", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate invoice PDF: %w", err)
	}
	return buf.Bytes(), nil
}
