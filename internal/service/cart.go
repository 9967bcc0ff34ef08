package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rehanmiah/the-palace-v1-sub000/internal/cart"
	"github.com/rehanmiah/the-palace-v1-sub000/internal/domain"
)

var ErrDishNotFound = errors.New("dish not found")

// CartService fronts the per-session cart stores. It resolves dish ids
// against the menu before anything enters a cart, so lines always carry the
// menu price, and it archives the cart after every mutation.
type CartService struct {
	carts *cart.Manager
	menu  MenuRepository
}

func NewCartService(carts *cart.Manager, menu MenuRepository) *CartService {
	return &CartService{carts: carts, menu: menu}
}

func (s *CartService) AddItem(ctx context.Context, sessionID string, dishID, restaurantID, spiceLevel int) (domain.CartSnapshot, error) {
	dish, err := s.menu.GetDish(restaurantID, dishID)
	if err != nil {
		return domain.CartSnapshot{}, fmt.Errorf("%w: dish %d in restaurant %d", ErrDishNotFound, dishID, restaurantID)
	}

	store := s.carts.Cart(ctx, sessionID)
	store.Add(*dish, restaurantID, spiceLevel)
	s.carts.Persist(ctx, sessionID)
	return store.Snapshot(), nil
}

func (s *CartService) SetQuantity(ctx context.Context, sessionID string, dishID, spiceLevel, quantity int) (domain.CartSnapshot, error) {
	store := s.carts.Cart(ctx, sessionID)
	store.UpdateQuantity(dishID, spiceLevel, quantity)
	s.carts.Persist(ctx, sessionID)
	return store.Snapshot(), nil
}

func (s *CartService) ChangeSpiceLevel(ctx context.Context, sessionID string, dishID, from, to int) (domain.CartSnapshot, error) {
	store := s.carts.Cart(ctx, sessionID)
	store.UpdateSpiceLevel(dishID, from, to)
	s.carts.Persist(ctx, sessionID)
	return store.Snapshot(), nil
}

func (s *CartService) RemoveDish(ctx context.Context, sessionID string, dishID int) (domain.CartSnapshot, error) {
	store := s.carts.Cart(ctx, sessionID)
	store.RemoveDish(dishID)
	s.carts.Persist(ctx, sessionID)
	return store.Snapshot(), nil
}

func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	s.carts.Drop(ctx, sessionID)
	return nil
}

func (s *CartService) Snapshot(ctx context.Context, sessionID string) domain.CartSnapshot {
	return s.carts.Cart(ctx, sessionID).Snapshot()
}

func (s *CartService) ItemQuantity(ctx context.Context, sessionID string, dishID, spiceLevel int) int {
	return s.carts.Cart(ctx, sessionID).ItemQuantity(dishID, spiceLevel)
}

var _ CartServiceInterface = (*CartService)(nil)
