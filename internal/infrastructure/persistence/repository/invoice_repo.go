package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/zencool/invoicer/internal/application/port"
	"github.com/zencool/invoicer/internal/domain/entity"
	"go.uber.org/zap"
)

// Storage keys. The whole collection lives under one key; the number counter
// under another. There is no schema version field.
const (
	invoicesKey = "invoices_db"
	counterKey  = "invoice_counter"
)

// ErrCorruptStore marks a persisted blob that no longer parses as JSON. The
// blob is left intact so the data can still be recovered by hand; silently
// resetting to an empty collection would destroy it on the next save.
var ErrCorruptStore = errors.New("invoice store data is corrupt")

// InvoiceRepository implements port.InvoiceRepository over a single
// serialized blob in a key-value store. Every save or delete rewrites the
// whole collection.
type InvoiceRepository struct {
	store  port.KeyValueStore
	clock  port.Clock
	logger *zap.Logger
}

// NewInvoiceRepository creates a new invoice repository.
func NewInvoiceRepository(store port.KeyValueStore, clock port.Clock, logger *zap.Logger) *InvoiceRepository {
	return &InvoiceRepository{
		store:  store,
		clock:  clock,
		logger: logger,
	}
}

// LoadAll deserializes the persisted collection. A missing blob or an
// unavailable medium yields an empty collection; a malformed blob yields
// ErrCorruptStore.
func (r *InvoiceRepository) LoadAll(ctx context.Context) ([]*entity.Invoice, error) {
	if !r.store.Available() {
		r.logger.Debug("Storage medium unavailable, returning empty collection")
		return []*entity.Invoice{}, nil
	}

	blob, ok, err := r.store.Get(ctx, invoicesKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoices: %w", err)
	}
	if !ok {
		return []*entity.Invoice{}, nil
	}

	var invoices []*entity.Invoice
	if err := json.Unmarshal([]byte(blob), &invoices); err != nil {
		r.logger.Error("Failed to parse invoice blob", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrCorruptStore, err)
	}
	if invoices == nil {
		invoices = []*entity.Invoice{}
	}
	return invoices, nil
}

// GetByID scans the collection for a matching ID. Returns nil, nil when no
// invoice matches.
func (r *InvoiceRepository) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	invoices, err := r.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, inv := range invoices {
		if inv.ID == id {
			return inv, nil
		}
	}
	return nil, nil
}

// Save replaces the invoice with the same ID in place, preserving its
// position, or appends it, then rewrites the whole blob.
func (r *InvoiceRepository) Save(ctx context.Context, inv *entity.Invoice) error {
	invoices, err := r.LoadAll(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i, existing := range invoices {
		if existing.ID == inv.ID {
			invoices[i] = inv
			replaced = true
			break
		}
	}
	if !replaced {
		invoices = append(invoices, inv)
	}

	if err := r.write(ctx, invoices); err != nil {
		return err
	}

	r.logger.Info("Invoice saved",
		zap.String("id", inv.ID),
		zap.String("invoice_number", inv.InvoiceNumber),
		zap.Bool("replaced", replaced))
	return nil
}

// Delete removes the invoice with the given ID and rewrites the blob.
// Deleting an absent ID leaves the collection unchanged.
func (r *InvoiceRepository) Delete(ctx context.Context, id string) error {
	invoices, err := r.LoadAll(ctx)
	if err != nil {
		return err
	}

	filtered := invoices[:0]
	for _, inv := range invoices {
		if inv.ID != id {
			filtered = append(filtered, inv)
		}
	}

	if err := r.write(ctx, filtered); err != nil {
		return err
	}

	r.logger.Info("Invoice deleted", zap.String("id", id))
	return nil
}

// ListProjections maps every invoice to its list projection, recomputing the
// total from line items. Order matches storage order.
func (r *InvoiceRepository) ListProjections(ctx context.Context) ([]entity.InvoiceListItem, error) {
	invoices, err := r.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]entity.InvoiceListItem, 0, len(invoices))
	for _, inv := range invoices {
		items = append(items, inv.ListItem())
	}
	return items, nil
}

// NextInvoiceNumberSuggestion increments the persisted counter and returns
// "{year}-{counter}". The counter is independent of actual invoice numbers
// and only ever a default suggestion; collisions with user-edited numbers
// are possible and not detected.
func (r *InvoiceRepository) NextInvoiceNumberSuggestion(ctx context.Context) (string, error) {
	counter := 0
	if raw, ok, err := r.store.Get(ctx, counterKey); err != nil {
		return "", fmt.Errorf("failed to read invoice counter: %w", err)
	} else if ok {
		if n, err := strconv.Atoi(raw); err == nil {
			counter = n
		}
	}

	counter++
	if err := r.store.Set(ctx, counterKey, strconv.Itoa(counter)); err != nil {
		return "", fmt.Errorf("failed to persist invoice counter: %w", err)
	}

	return fmt.Sprintf("%d-%d", r.clock.Now().Year(), counter), nil
}

func (r *InvoiceRepository) write(ctx context.Context, invoices []*entity.Invoice) error {
	blob, err := json.Marshal(invoices)
	if err != nil {
		return fmt.Errorf("failed to serialize invoices: %w", err)
	}
	if err := r.store.Set(ctx, invoicesKey, string(blob)); err != nil {
		return fmt.Errorf("failed to persist invoices: %w", err)
	}
	return nil
}

// Verify interface compliance
var _ port.InvoiceRepository = (*InvoiceRepository)(nil)
