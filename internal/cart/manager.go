package cart

import (
	"context"
	"log"
	"sync"

	"github.com/rehanmiah/the-palace-v1-sub000/internal/domain"
)

// Archive is the serialize/restore boundary around cart state. Carts live in
// memory; the archive only adds durability across restarts.
type Archive interface {
	Save(ctx context.Context, sessionID string, snap domain.CartSnapshot) error
	// Load returns (nil, nil) when no snapshot exists for the session.
	Load(ctx context.Context, sessionID string) (*domain.CartSnapshot, error)
	Delete(ctx context.Context, sessionID string) error
}

// Manager owns one Store per session. The archive is optional; a nil archive
// means purely in-memory carts.
type Manager struct {
	mu      sync.Mutex
	carts   map[string]*Store
	archive Archive
}

func NewManager(archive Archive) *Manager {
	return &Manager{
		carts:   make(map[string]*Store),
		archive: archive,
	}
}

// Cart returns the session's store, creating it on first use. On a memory
// miss the archive is consulted so a restarted process picks up where the
// session left off. Archive failures are logged and treated as an empty cart.
func (m *Manager) Cart(ctx context.Context, sessionID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	if store, ok := m.carts[sessionID]; ok {
		return store
	}

	store := NewStore()
	if m.archive != nil {
		snap, err := m.archive.Load(ctx, sessionID)
		if err != nil {
			log.Printf("[cart] failed to load archived cart for session %s: %v", sessionID, err)
		} else if snap != nil {
			store.Restore(*snap)
		}
	}
	m.carts[sessionID] = store
	return store
}

// Persist archives the session's current cart, best effort.
func (m *Manager) Persist(ctx context.Context, sessionID string) {
	if m.archive == nil {
		return
	}
	m.mu.Lock()
	store, ok := m.carts[sessionID]
	m.mu.Unlock()
	if !ok {
		return
	}
	if err := m.archive.Save(ctx, sessionID, store.Snapshot()); err != nil {
		log.Printf("[cart] failed to archive cart for session %s: %v", sessionID, err)
	}
}

// Settle deducts the ordered lines from the session's cart once checkout has
// committed. Only the snapshotted quantities are removed; anything added to
// the cart while the order was in flight stays. An emptied cart loses its
// archived snapshot, a non-empty remainder is re-archived.
func (m *Manager) Settle(ctx context.Context, sessionID string, snap domain.CartSnapshot) {
	m.mu.Lock()
	store, ok := m.carts[sessionID]
	m.mu.Unlock()
	if !ok {
		return
	}

	store.Deduct(snap.Lines)
	if store.ItemCount() == 0 {
		if m.archive != nil {
			if err := m.archive.Delete(ctx, sessionID); err != nil {
				log.Printf("[cart] failed to delete archived cart for session %s: %v", sessionID, err)
			}
		}
		return
	}
	m.Persist(ctx, sessionID)
}

// Drop clears the session's cart and removes its archived snapshot.
func (m *Manager) Drop(ctx context.Context, sessionID string) {
	m.mu.Lock()
	store, ok := m.carts[sessionID]
	m.mu.Unlock()
	if ok {
		store.Clear()
	}
	if m.archive != nil {
		if err := m.archive.Delete(ctx, sessionID); err != nil {
			log.Printf("[cart] failed to delete archived cart for session %s: %v", sessionID, err)
		}
	}
}
