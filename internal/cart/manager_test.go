package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/rehanmiah/the-palace-v1-sub000/internal/domain"
	"github.com/rehanmiah/the-palace-v1-sub000/internal/mocks"
)

func TestManager_CartIsPerSession(t *testing.T) {
	manager := NewManager(nil)
	ctx := context.Background()

	manager.Cart(ctx, "alice").Add(testDish(1, 5.00), 1, 0)

	assert.Equal(t, 1, manager.Cart(ctx, "alice").ItemCount())
	assert.Equal(t, 0, manager.Cart(ctx, "bob").ItemCount())
	assert.Same(t, manager.Cart(ctx, "alice"), manager.Cart(ctx, "alice"))
}

func TestManager_CartRestoresFromArchive(t *testing.T) {
	archive := mocks.NewArchive(t)
	snap := &domain.CartSnapshot{
		RestaurantID: 1,
		Lines:        []domain.CartLine{{DishID: 1, Price: 5.00, RestaurantID: 1, Quantity: 2}},
	}
	archive.On("Load", mock.Anything, "alice").Return(snap, nil).Once()

	manager := NewManager(archive)
	store := manager.Cart(context.Background(), "alice")

	assert.Equal(t, 2, store.ItemCount())
	assert.Equal(t, 1, store.RestaurantID())

	// Second access hits the in-memory store, not the archive.
	manager.Cart(context.Background(), "alice")
}

func TestManager_CartToleratesArchiveFailure(t *testing.T) {
	archive := mocks.NewArchive(t)
	archive.On("Load", mock.Anything, "alice").Return(nil, assert.AnError).Once()

	manager := NewManager(archive)
	store := manager.Cart(context.Background(), "alice")

	assert.Empty(t, store.Lines())
}

func TestManager_PersistSavesSnapshot(t *testing.T) {
	archive := mocks.NewArchive(t)
	archive.On("Load", mock.Anything, "alice").Return(nil, nil).Once()
	archive.On("Save", mock.Anything, "alice", mock.MatchedBy(func(snap domain.CartSnapshot) bool {
		return snap.ItemCount == 1 && snap.RestaurantID == 1
	})).Return(nil).Once()

	manager := NewManager(archive)
	ctx := context.Background()
	manager.Cart(ctx, "alice").Add(testDish(1, 5.00), 1, 0)
	manager.Persist(ctx, "alice")
}

func TestManager_PersistUnknownSessionIsNoOp(t *testing.T) {
	archive := mocks.NewArchive(t)
	manager := NewManager(archive)

	manager.Persist(context.Background(), "nobody")
	archive.AssertNotCalled(t, "Save")
}

func TestManager_SettleKeepsLinesAddedAfterSnapshot(t *testing.T) {
	archive := mocks.NewArchive(t)
	archive.On("Load", mock.Anything, "alice").Return(nil, nil).Once()
	archive.On("Save", mock.Anything, "alice", mock.MatchedBy(func(snap domain.CartSnapshot) bool {
		return snap.ItemCount == 1 && snap.Lines[0].DishID == 2
	})).Return(nil).Once()

	manager := NewManager(archive)
	ctx := context.Background()
	store := manager.Cart(ctx, "alice")
	store.Add(testDish(1, 5.00), 1, 0)

	snap := store.Snapshot()
	store.Add(testDish(2, 6.00), 1, 0) // arrives while the order commits

	manager.Settle(ctx, "alice", snap)

	assert.Equal(t, 1, store.ItemCount())
	assert.Equal(t, 2, store.Lines()[0].DishID)
}

func TestManager_SettleEmptiedCartDeletesArchive(t *testing.T) {
	archive := mocks.NewArchive(t)
	archive.On("Load", mock.Anything, "alice").Return(nil, nil).Once()
	archive.On("Delete", mock.Anything, "alice").Return(nil).Once()

	manager := NewManager(archive)
	ctx := context.Background()
	store := manager.Cart(ctx, "alice")
	store.Add(testDish(1, 5.00), 1, 0)

	manager.Settle(ctx, "alice", store.Snapshot())

	assert.Empty(t, store.Lines())
	archive.AssertNotCalled(t, "Save")
}

func TestManager_SettleUnknownSessionIsNoOp(t *testing.T) {
	archive := mocks.NewArchive(t)
	manager := NewManager(archive)

	manager.Settle(context.Background(), "nobody", domain.CartSnapshot{})
	archive.AssertNotCalled(t, "Delete")
}

func TestManager_DropClearsCartAndArchive(t *testing.T) {
	archive := mocks.NewArchive(t)
	archive.On("Load", mock.Anything, "alice").Return(nil, nil).Once()
	archive.On("Delete", mock.Anything, "alice").Return(nil).Once()

	manager := NewManager(archive)
	ctx := context.Background()
	store := manager.Cart(ctx, "alice")
	store.Add(testDish(1, 5.00), 1, 0)

	manager.Drop(ctx, "alice")

	assert.Empty(t, store.Lines())
	assert.Equal(t, 0, store.RestaurantID())
}
