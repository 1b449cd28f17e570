package port

import "time"

// Clock abstracts "now" so draft creation and due-date math can be pinned in
// tests instead of depending on wall-clock time.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall-clock implementation of Clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// IDGenerator produces opaque unique identifiers for invoices and line items.
type IDGenerator interface {
	NewID() string
}
