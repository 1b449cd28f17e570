package entity

// Invoice status constants. Any value may be set at any time; there are no
// transition restrictions.
const (
	StatusDraft  = "draft"
	StatusBooked = "booked"
)

// Invoice is the root billing document record.
type Invoice struct {
	ID            string        `json:"id"`
	InvoiceNumber string        `json:"invoiceNumber"`
	Status        string        `json:"status"`
	IssuedDate    string        `json:"issuedDate"` // YYYY-MM-DD
	DueDate       string        `json:"dueDate"`    // YYYY-MM-DD
	LateFee       float64       `json:"lateFee"`    // percentage, 0-100 expected but not enforced
	Notes         string        `json:"notes"`
	From          CompanyInfo   `json:"from"`
	To            CompanyInfo   `json:"to"`
	Items         []InvoiceItem `json:"items"`
	BankDetails   BankDetails   `json:"bankDetails"`
}

// CompanyInfo identifies one party on an invoice. All fields are free text.
type CompanyInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Website string `json:"website"`
}

// BankDetails holds the payment destination printed on the invoice.
type BankDetails struct {
	Bank          string `json:"bank"`
	AccountNumber string `json:"accountNumber"`
}

// InvoiceItem is one billable row. The line total is always derived,
// never stored.
type InvoiceItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

// Amount returns the derived line total.
func (it InvoiceItem) Amount() float64 {
	return it.Quantity * it.UnitPrice
}

// Total sums quantity x unit price over all line items. An invoice with no
// items has total 0.
func (inv *Invoice) Total() float64 {
	var total float64
	for _, it := range inv.Items {
		total += it.Amount()
	}
	return total
}

// InvoiceListItem is a read-only projection of an Invoice for list display.
// It is recomputed on every read and never persisted independently.
type InvoiceListItem struct {
	ID            string  `json:"id"`
	InvoiceNumber string  `json:"invoiceNumber"`
	ClientName    string  `json:"clientName"`
	IssuedDate    string  `json:"issuedDate"`
	Total         float64 `json:"total"`
	Status        string  `json:"status"`
}

// ListItem builds the list projection for this invoice.
func (inv *Invoice) ListItem() InvoiceListItem {
	return InvoiceListItem{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		ClientName:    inv.To.Name,
		IssuedDate:    inv.IssuedDate,
		Total:         inv.Total(),
		Status:        inv.Status,
	}
}
