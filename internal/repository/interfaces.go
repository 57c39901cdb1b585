// Package repository provides the data access layer for session carts and
// audit logs.
package repository

import (
	"context"

	"github.com/KMO142310/el-americano-delivery/internal/domain/model"
)

// CartRepository mirrors a session's cart to a session-scoped store so it
// survives a page reload. Load never fails the caller: a missing key yields
// an empty cart, and corrupt or unreachable storage degrades to an empty
// cart as well.
type CartRepository interface {
	// Load returns the cart stored for the session, or an empty cart.
	Load(ctx context.Context, sessionID string) *model.Cart

	// Save writes the full cart for the session, refreshing its TTL.
	Save(ctx context.Context, sessionID string, cart *model.Cart) error

	// Delete removes the session's cart from the store.
	Delete(ctx context.Context, sessionID string) error
}

// LogsRepositoryInterface defines log persistence operations.
// This interface allows mocking the repository in service tests.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
