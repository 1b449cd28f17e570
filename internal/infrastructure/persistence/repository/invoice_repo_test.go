package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zencool/invoicer/internal/domain/entity"
	"github.com/zencool/invoicer/internal/infrastructure/persistence/kvstore"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func newTestRepo(t *testing.T) (*InvoiceRepository, *kvstore.MemoryStore) {
	t.Helper()
	store := kvstore.NewMemoryStore()
	clock := fixedClock{t: time.Date(2025, time.January, 1, 9, 0, 0, 0, time.UTC)}
	return NewInvoiceRepository(store, clock, zap.NewNop()), store
}

func testInvoice(id string) *entity.Invoice {
	return &entity.Invoice{
		ID:            id,
		InvoiceNumber: "2025-1",
		Status:        entity.StatusDraft,
		IssuedDate:    "2025-01-01",
		DueDate:       "2025-01-15",
		LateFee:       1,
		From:          entity.CompanyInfo{Name: "CV Zen`cool", Email: "sender@example.com"},
		To:            entity.CompanyInfo{Name: "PT Sejahtera", Email: "client@example.com"},
		Items: []entity.InvoiceItem{
			{ID: "it-1", Description: "AC installation", Quantity: 2, UnitPrice: 50000},
			{ID: "it-2", Description: "Maintenance", Quantity: 1, UnitPrice: 100000},
		},
		BankDetails: entity.BankDetails{Bank: "Bank BCA", AccountNumber: "0123456789"},
	}
}

func TestLoadAllEmptyOnFirstRun(t *testing.T) {
	repo, _ := newTestRepo(t)

	invoices, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, invoices)
}

func TestLoadAllUnavailableMediumDegradesToEmpty(t *testing.T) {
	store := kvstore.NewUnavailableStore()
	repo := NewInvoiceRepository(store, fixedClock{t: time.Now()}, zap.NewNop())

	invoices, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, invoices)
}

func TestSaveAndGetByIDRoundTrip(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	original := testInvoice("inv-1")
	require.NoError(t, repo.Save(ctx, original))

	got, err := repo.GetByID(ctx, "inv-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, original, got)
}

func TestGetByIDNotFound(t *testing.T) {
	repo, _ := newTestRepo(t)

	got, err := repo.GetByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSaveIsIdempotentOnID(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testInvoice("inv-1")))
	require.NoError(t, repo.Save(ctx, testInvoice("inv-2")))

	// Saving again with the same ID replaces in place, keeping position
	edited := testInvoice("inv-1")
	edited.Notes = "edited"
	require.NoError(t, repo.Save(ctx, edited))

	invoices, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, invoices, 2)
	assert.Equal(t, "inv-1", invoices[0].ID)
	assert.Equal(t, "edited", invoices[0].Notes)
	assert.Equal(t, "inv-2", invoices[1].ID)
}

func TestDelete(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testInvoice("inv-1")))
	require.NoError(t, repo.Save(ctx, testInvoice("inv-2")))

	require.NoError(t, repo.Delete(ctx, "inv-1"))

	got, err := repo.GetByID(ctx, "inv-1")
	require.NoError(t, err)
	assert.Nil(t, got)

	// Deleting an absent ID leaves the collection unchanged
	require.NoError(t, repo.Delete(ctx, "inv-1"))
	invoices, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, invoices, 1)
}

func TestListProjections(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testInvoice("inv-1")))
	second := testInvoice("inv-2")
	second.Items = nil
	require.NoError(t, repo.Save(ctx, second))

	projections, err := repo.ListProjections(ctx)
	require.NoError(t, err)

	invoices, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, projections, len(invoices))

	assert.Equal(t, "inv-1", projections[0].ID)
	assert.Equal(t, "PT Sejahtera", projections[0].ClientName)
	assert.Equal(t, float64(200000), projections[0].Total)
	assert.Equal(t, float64(0), projections[1].Total)
}

func TestNextInvoiceNumberSuggestion(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	first, err := repo.NextInvoiceNumberSuggestion(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2025-1", first)

	second, err := repo.NextInvoiceNumberSuggestion(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2025-2", second)
}

func TestCorruptBlobReturnsTypedError(t *testing.T) {
	repo, store := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "invoices_db", "{not json"))

	_, err := repo.LoadAll(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCorruptStore)

	// The corrupt blob stays intact for manual recovery
	raw, ok, err := store.Get(ctx, "invoices_db")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "{not json", raw)
}
