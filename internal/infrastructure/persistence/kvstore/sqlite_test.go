package kvstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zencool/invoicer/pkg/database"
)

func newSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	db, err := database.New(database.Config{
		Path:         filepath.Join(t.TempDir(), "test.db"),
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteStore(db, zap.NewNop())
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "invoices_db")
	require.NoError(t, err)
	assert.False(t, ok, "absent key reports ok=false")

	require.NoError(t, store.Set(ctx, "invoices_db", `[{"id":"a"}]`))

	value, ok, err := store.Get(ctx, "invoices_db")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":"a"}]`, value)

	// Set replaces the previous value
	require.NoError(t, store.Set(ctx, "invoices_db", `[]`))
	value, ok, err = store.Get(ctx, "invoices_db")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[]`, value)
}

func TestSQLiteStoreRemove(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "invoice_counter", "3"))
	require.NoError(t, store.Remove(ctx, "invoice_counter"))

	_, ok, err := store.Get(ctx, "invoice_counter")
	require.NoError(t, err)
	assert.False(t, ok)

	// Removing an absent key is a no-op
	require.NoError(t, store.Remove(ctx, "invoice_counter"))
}

func TestSQLiteStoreAvailable(t *testing.T) {
	store := newSQLiteStore(t)
	assert.True(t, store.Available())
}
