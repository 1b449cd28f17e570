// Package render maps an invoice aggregate to its document representations.
// The same computed total and field values feed the on-screen preview, the
// print path, and the export path, so the three never diverge in content.
package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/zencool/invoicer/internal/domain/entity"
	"github.com/zencool/invoicer/internal/format"
)

// Renderer produces the static, style-embedded invoice document.
type Renderer struct {
	logoURL string
	tmpl    *template.Template
}

// NewRenderer creates a document renderer. logoURL may be empty, in which
// case no logo block is emitted.
func NewRenderer(logoURL string) (*Renderer, error) {
	tmpl, err := template.New("invoice").Parse(documentTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document template: %w", err)
	}
	return &Renderer{
		logoURL: logoURL,
		tmpl:    tmpl,
	}, nil
}

type documentItem struct {
	Description string
	Quantity    float64
	UnitPrice   string
	Amount      string
}

type documentData struct {
	Inv        *entity.Invoice
	LogoURL    string
	IssuedDate string
	DueDate    string
	Items      []documentItem
	Total      string
	NoteLines  []string
	AutoPrint  bool
}

// HTML renders the invoice as a standalone HTML document for preview and
// export.
func (r *Renderer) HTML(inv *entity.Invoice) (string, error) {
	return r.render(inv, false)
}

// PrintHTML renders the same document with an onload handler that opens the
// print dialog and closes the window afterwards.
func (r *Renderer) PrintHTML(inv *entity.Invoice) (string, error) {
	return r.render(inv, true)
}

func (r *Renderer) render(inv *entity.Invoice, autoPrint bool) (string, error) {
	items := make([]documentItem, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, documentItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   format.GroupedNumber(it.UnitPrice),
			Amount:      format.GroupedNumber(it.Amount()),
		})
	}

	var noteLines []string
	if inv.Notes != "" {
		noteLines = strings.Split(inv.Notes, "\n")
	}

	data := documentData{
		Inv:        inv,
		LogoURL:    r.logoURL,
		IssuedDate: format.Date(inv.IssuedDate),
		DueDate:    format.Date(inv.DueDate),
		Items:      items,
		Total:      format.GroupedNumber(inv.Total()),
		NoteLines:  noteLines,
		AutoPrint:  autoPrint,
	}

	var sb strings.Builder
	if err := r.tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render invoice document: %w", err)
	}
	return sb.String(), nil
}

const documentTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Arial, sans-serif; color: #1a202c; background: #f7f7f7; }
  .container { width: 794px; margin: 24px auto; background: #ffffff; padding: 32px; border: 1px solid #e5e7eb; border-radius: 8px; box-sizing: border-box; }
  .header { display: flex; justify-content: space-between; align-items: flex-start; margin-bottom: 24px; padding-bottom: 24px; border-bottom: 1px solid #e5e7eb; }
  .company-info { display: flex; gap: 16px; align-items: center; }
  .logo { width: 72px; height: 72px; border-radius: 8px; display: flex; align-items: center; justify-content: center; flex-shrink: 0; overflow: hidden; background: #ffffff; }
  .logo img { width: 100%; height: 100%; object-fit: cover; display: block; }
  .company-details h1 { margin: 0; font-size: 20px; font-weight: 700; }
  .company-details p { margin: 4px 0; font-size: 13px; color: #6b7280; }
  .invoice-details { text-align: right; }
  .invoice-details h2 { margin: 0; font-size: 28px; font-weight: 700; color: #5b21b6; margin-bottom: 8px; }
  .invoice-details p { margin: 4px 0; font-size: 13px; color: #6b7280; }
  .parties { display: grid; grid-template-columns: 1fr 1fr; gap: 32px; margin-bottom: 24px; }
  .party h3 { margin: 0 0 12px 0; font-size: 12px; font-weight: 700; color: #6b7280; text-transform: uppercase; }
  .party p { margin: 4px 0; font-size: 13px; color: #374151; }
  .party p.name { font-weight: 700; }
  .items-table { width: 100%; margin-bottom: 24px; border-collapse: collapse; }
  .items-table th { text-align: left; padding: 12px 8px; font-weight: 700; color: #1a202c; border-bottom: 2px solid #e5e7eb; }
  .items-table th:nth-child(2), .items-table th:nth-child(3), .items-table th:nth-child(4), .items-table th:nth-child(5) { text-align: right; }
  .items-table td { padding: 12px 8px; border-bottom: 1px solid #f1f1f1; font-size: 14px; color: #25303a; }
  .totals { display: flex; justify-content: flex-end; margin-bottom: 24px; }
  .totals-box { width: 300px; }
  .totals-row { display: flex; justify-content: space-between; padding: 8px 0; border-bottom: 1px solid #e5e7eb; font-size: 14px; }
  .totals-row.total { border-bottom: none; padding-top: 12px; font-size: 16px; font-weight: 700; }
  .footer { padding-top: 24px; border-top: 1px solid #e5e7eb; display: grid; grid-template-columns: 1fr 1fr; gap: 16px; }
  .footer-section h3 { margin: 0 0 8px 0; font-size: 12px; font-weight: 700; color: #6b7280; text-transform: uppercase; }
  .footer-section p { margin: 4px 0; font-size: 13px; color: #374151; }
  .notes { margin-bottom: 16px; }
</style>
</head>
<body{{if .AutoPrint}} onload="window.print();window.close();"{{end}}>
<div class="container">
  <div class="header">
    <div class="company-info">
      {{if .LogoURL}}<div class="logo"><img src="{{.LogoURL}}" alt="{{.Inv.From.Name}} logo"/></div>{{end}}
      <div class="company-details">
        <h1>{{.Inv.From.Name}}</h1>
        <p>{{.Inv.From.Address}}</p>
      </div>
    </div>
    <div class="invoice-details">
      <h2>Invoice {{.Inv.InvoiceNumber}}</h2>
      <p>Issued at: {{.IssuedDate}}</p>
      <p>Due at: {{.DueDate}}</p>
      {{if gt .Inv.LateFee 0.0}}<p>Late fee: {{.Inv.LateFee}}%</p>{{end}}
    </div>
  </div>
  <div class="parties">
    <div class="party">
      <h3>From</h3>
      <p class="name">{{.Inv.From.Name}}</p>
      <p>{{.Inv.From.Address}}</p>
      <p>{{.Inv.From.Email}}</p>
      {{if .Inv.From.Phone}}<p>{{.Inv.From.Phone}}</p>{{end}}
    </div>
    <div class="party">
      <h3>To</h3>
      <p class="name">{{.Inv.To.Name}}</p>
      <p>{{.Inv.To.Address}}</p>
      <p>{{.Inv.To.Email}}</p>
      {{if .Inv.To.Phone}}<p>{{.Inv.To.Phone}}</p>{{end}}
    </div>
  </div>
  <table class="items-table">
    <thead>
      <tr>
        <th>Item</th>
        <th>Quantity</th>
        <th>Unit</th>
        <th>Price</th>
        <th>Sum</th>
      </tr>
    </thead>
    <tbody>
      {{range .Items}}
      <tr>
        <td>{{.Description}}</td>
        <td style="text-align: center;">{{.Quantity}}</td>
        <td style="text-align: center;">1</td>
        <td style="text-align: right;">{{.UnitPrice}}</td>
        <td style="text-align: right; font-weight: 600;">{{.Amount}}</td>
      </tr>
      {{end}}
    </tbody>
  </table>
  <div class="totals">
    <div class="totals-box">
      <div class="totals-row">
        <span>Subtotal</span>
        <span>{{.Total}}</span>
      </div>
      <div class="totals-row total">
        <span>Total</span>
        <span>{{.Total}}</span>
      </div>
    </div>
  </div>
  <div class="footer">
    {{if .NoteLines}}
    <div class="footer-section notes">
      <h3>Notes</h3>
      <p>{{range $i, $line := .NoteLines}}{{if $i}}<br>{{end}}{{$line}}{{end}}</p>
    </div>
    {{end}}
    <div class="footer-section">
      <h3>Bank Details</h3>
      <p>{{.Inv.BankDetails.Bank}}</p>
      <p>{{.Inv.BankDetails.AccountNumber}}</p>
    </div>
    <div class="footer-section">
      <h3>Contact</h3>
      {{if .Inv.From.Website}}<p>{{.Inv.From.Website}}</p>{{end}}
      <p>{{.Inv.From.Email}}</p>
      {{if .Inv.From.Phone}}<p>{{.Inv.From.Phone}}</p>{{end}}
    </div>
  </div>
</div>
</body>
</html>
`
