package port

import (
	"context"

	"github.com/zencool/invoicer/internal/domain/entity"
)

// InvoiceRepository defines persistence operations for the invoice
// collection. The collection is stored as a single serialized blob, so every
// write rewrites it whole; acceptable for a single-user tool with a small
// number of invoices.
type InvoiceRepository interface {
	// LoadAll returns every persisted invoice in storage order. It returns
	// an empty slice when nothing has been persisted yet or the storage
	// medium is unavailable.
	LoadAll(ctx context.Context) ([]*entity.Invoice, error)
	// GetByID returns nil, nil when no invoice has the given ID.
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	// Save replaces the invoice with the same ID in place, preserving its
	// position, or appends it. Last write wins.
	Save(ctx context.Context, inv *entity.Invoice) error
	// Delete removes the invoice with the given ID. Deleting an absent ID
	// is a no-op, not an error.
	Delete(ctx context.Context, id string) error
	// ListProjections maps every invoice to its list projection,
	// recomputing totals. Order matches LoadAll.
	ListProjections(ctx context.Context) ([]entity.InvoiceListItem, error)
	// NextInvoiceNumberSuggestion increments a persisted counter and
	// returns "{year}-{counter}". The counter is a non-authoritative
	// suggestion only; it is never reconciled with user-edited numbers.
	NextInvoiceNumberSuggestion(ctx context.Context) (string, error)
}
