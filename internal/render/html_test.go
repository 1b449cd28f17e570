package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zencool/invoicer/internal/domain/entity"
)

func sampleInvoice() *entity.Invoice {
	return &entity.Invoice{
		ID:            "inv-1",
		InvoiceNumber: "2025-3",
		Status:        entity.StatusDraft,
		IssuedDate:    "2025-01-01",
		DueDate:       "2025-01-15",
		LateFee:       1,
		Notes:         "Payment within 14 days\nThank you",
		From: entity.CompanyInfo{
			Name:    "CV Zen`cool",
			Address: "Jl. Gang Bona 3 No. 103, Jakarta Timur",
			Email:   "aczencool@gmail.com",
			Phone:   "085285564117",
			Website: "https://zencool-conditioning.vercel.app/",
		},
		To: entity.CompanyInfo{
			Name:    "PT Sejahtera",
			Address: "Jl. Merdeka 1, Jakarta",
			Email:   "client@example.com",
		},
		Items: []entity.InvoiceItem{
			{ID: "it-1", Description: "AC installation", Quantity: 2, UnitPrice: 50000},
			{ID: "it-2", Description: "Maintenance visit", Quantity: 1, UnitPrice: 100000},
		},
		BankDetails: entity.BankDetails{Bank: "Bank BCA", AccountNumber: "0123456789"},
	}
}

func TestHTMLDocumentContent(t *testing.T) {
	r, err := NewRenderer("")
	require.NoError(t, err)

	html, err := r.HTML(sampleInvoice())
	require.NoError(t, err)

	// Header and dates
	assert.Contains(t, html, "Invoice 2025-3")
	assert.Contains(t, html, "Issued at: Jan 1, 2025")
	assert.Contains(t, html, "Due at: Jan 15, 2025")
	assert.Contains(t, html, "Late fee: 1%")

	// Parties
	assert.Contains(t, html, "PT Sejahtera")
	assert.Contains(t, html, "aczencool@gmail.com")

	// Items and totals share the same computed values
	assert.Contains(t, html, "AC installation")
	assert.Contains(t, html, "50.000")
	assert.Contains(t, html, "100.000")
	assert.Equal(t, 2, strings.Count(html, ">200.000<"), "subtotal and total rows show the same amount")

	// Footer
	assert.Contains(t, html, "Bank BCA")
	assert.Contains(t, html, "Payment within 14 days<br>Thank you")

	// Preview document never auto-prints
	assert.NotContains(t, html, "window.print()")
}

func TestHTMLOmitsEmptySections(t *testing.T) {
	r, err := NewRenderer("")
	require.NoError(t, err)

	inv := sampleInvoice()
	inv.LateFee = 0
	inv.Notes = ""
	inv.To.Phone = ""

	html, err := r.HTML(inv)
	require.NoError(t, err)

	assert.NotContains(t, html, "Late fee:")
	assert.NotContains(t, html, "Notes")
}

func TestPrintHTMLAutoPrints(t *testing.T) {
	r, err := NewRenderer("")
	require.NoError(t, err)

	html, err := r.PrintHTML(sampleInvoice())
	require.NoError(t, err)

	assert.Contains(t, html, `onload="window.print();window.close();"`)
}

func TestLogoRendering(t *testing.T) {
	withLogo, err := NewRenderer("https://example.com/logo.png")
	require.NoError(t, err)

	html, err := withLogo.HTML(sampleInvoice())
	require.NoError(t, err)
	assert.Contains(t, html, `src="https://example.com/logo.png"`)

	withoutLogo, err := NewRenderer("")
	require.NoError(t, err)

	html, err = withoutLogo.HTML(sampleInvoice())
	require.NoError(t, err)
	assert.NotContains(t, html, "<img")
}

func TestHTMLEscapesUserContent(t *testing.T) {
	r, err := NewRenderer("")
	require.NoError(t, err)

	inv := sampleInvoice()
	inv.To.Name = `<script>alert("x")</script>`

	html, err := r.HTML(inv)
	require.NoError(t, err)
	assert.NotContains(t, html, `<script>alert`)
}

func TestPDFGeneration(t *testing.T) {
	r, err := NewRenderer("")
	require.NoError(t, err)

	pdf, err := r.PDF(sampleInvoice())
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.True(t, strings.HasPrefix(string(pdf), "%PDF-"), "output should be a PDF document")
}
