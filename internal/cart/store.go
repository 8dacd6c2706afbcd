package cart

import "context"

// Store is the session-scoped cart storage. The whole cart is read
// and written as one unit; there is no per-entry mutation across the
// interface.
type Store interface {
	Get(ctx context.Context, sessionID string) (Cart, error)
	Save(ctx context.Context, sessionID string, cart Cart) error
	Clear(ctx context.Context, sessionID string) error
}
