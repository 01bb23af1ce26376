package ports

import "context"

// CountCache caches the admin dashboard entity counts. Misses and backend
// errors are both reported as "not found"; callers fall back to the store.
type CountCache interface {
	GetCount(ctx context.Context, entity string) (int64, bool)
	SetCount(ctx context.Context, entity string, n int64) error
}
