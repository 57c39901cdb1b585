package repository

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/KMO142310/el-americano-delivery/internal/domain/model"
)

// memoryCartEntry holds a serialized cart and its expiry.
type memoryCartEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryCartRepository is the in-process fallback cart store, used when
// Redis is not configured. Carts are serialized the same way as in Redis so
// the restore path exercises identical decoding, and expire after the
// session TTL via a periodic sweep.
type MemoryCartRepository struct {
	mu      sync.Mutex
	entries map[string]*memoryCartEntry
	ttl     time.Duration
	stopCh  chan struct{}
}

// NewMemoryCartRepository creates an in-memory cart repository.
func NewMemoryCartRepository(ttl time.Duration) *MemoryCartRepository {
	r := &MemoryCartRepository{
		entries: make(map[string]*memoryCartEntry),
		ttl:     ttl,
		stopCh:  make(chan struct{}),
	}
	go r.cleanup()
	return r
}

// Load returns the session's cart, or an empty cart when absent, expired,
// or corrupt.
func (r *MemoryCartRepository) Load(_ context.Context, sessionID string) *model.Cart {
	r.mu.Lock()
	entry, ok := r.entries[sessionID]
	r.mu.Unlock()

	if !ok || time.Now().After(entry.expiresAt) {
		return model.NewCart()
	}

	var items []model.LineItem
	if err := json.Unmarshal(entry.data, &items); err != nil {
		log.Warn().Err(err).Str("session_id", sessionID).Msg("Corrupt cart payload, starting empty")
		return model.NewCart()
	}
	return &model.Cart{Items: items}
}

// Save stores the cart for the session, refreshing its TTL.
func (r *MemoryCartRepository) Save(_ context.Context, sessionID string, cart *model.Cart) error {
	data, err := json.Marshal(cart.Items)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.entries[sessionID] = &memoryCartEntry{
		data:      data,
		expiresAt: time.Now().Add(r.ttl),
	}
	r.mu.Unlock()
	return nil
}

// Delete removes the session's cart.
func (r *MemoryCartRepository) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	delete(r.entries, sessionID)
	r.mu.Unlock()
	return nil
}

// Stop shuts down the expiry sweeper.
func (r *MemoryCartRepository) Stop() {
	close(r.stopCh)
}

// cleanup periodically removes expired sessions.
func (r *MemoryCartRepository) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := time.Now()
			r.mu.Lock()
			for id, entry := range r.entries {
				if now.After(entry.expiresAt) {
					delete(r.entries, id)
				}
			}
			r.mu.Unlock()
		case <-r.stopCh:
			return
		}
	}
}
