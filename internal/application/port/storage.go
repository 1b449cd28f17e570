package port

import "context"

// KeyValueStore abstracts the string-keyed blob storage backing the invoice
// repository. Implementations must treat an absent key as ok=false, not an
// error.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	// Available reports whether the medium can serve reads and writes.
	// Reads against an unavailable medium degrade to empty results.
	Available() bool
}
