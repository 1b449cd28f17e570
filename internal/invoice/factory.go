// Package invoice builds new invoice aggregates with default field values.
package invoice

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/zencool/invoicer/internal/application/port"
	"github.com/zencool/invoicer/internal/domain/entity"
	"github.com/zencool/invoicer/internal/format"
)

// DefaultDueDays is the default payment term applied to new drafts.
const DefaultDueDays = 14

// Defaults holds the organizational values pre-filled into every new draft.
type Defaults struct {
	From    entity.CompanyInfo
	Bank    entity.BankDetails
	LateFee float64
}

// Factory creates draft invoices. The clock and ID generator are injected so
// tests can pin "now" and produce stable identifiers.
type Factory struct {
	clock    port.Clock
	idgen    port.IDGenerator
	defaults Defaults
}

// NewFactory creates a new invoice factory.
func NewFactory(clock port.Clock, idgen port.IDGenerator, defaults Defaults) *Factory {
	return &Factory{
		clock:    clock,
		idgen:    idgen,
		defaults: defaults,
	}
}

// NewDraft produces a new invoice with a fresh ID, draft status, issue date
// of today, due date 14 days out, the configured sender and bank defaults,
// and placeholder recipient fields for the user to overwrite. The draft is
// in-memory only; persisting it is an explicit separate step.
func (f *Factory) NewDraft() *entity.Invoice {
	now := f.clock.Now()
	return &entity.Invoice{
		ID:            f.idgen.NewID(),
		InvoiceNumber: fmt.Sprintf("%d-0", now.Year()),
		Status:        entity.StatusDraft,
		IssuedDate:    format.ISODate(now),
		DueDate:       format.ISODate(now.AddDate(0, 0, DefaultDueDays)),
		LateFee:       f.defaults.LateFee,
		Notes:         "",
		From:          f.defaults.From,
		To: entity.CompanyInfo{
			Name:    "Client Name",
			Address: "Client Address",
			Email:   "client@example.com",
		},
		Items:       []entity.InvoiceItem{},
		BankDetails: f.defaults.Bank,
	}
}

// NewItem produces an empty line item with a fresh ID, ready for the editor.
func (f *Factory) NewItem() entity.InvoiceItem {
	return entity.InvoiceItem{
		ID:       f.idgen.NewID(),
		Quantity: 1,
	}
}

// UUIDGenerator generates identifiers with collision probability negligible
// for a single-user collection (random 122-bit UUIDs).
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string { return uuid.NewString() }

// Verify interface compliance
var _ port.IDGenerator = (*UUIDGenerator)(nil)
