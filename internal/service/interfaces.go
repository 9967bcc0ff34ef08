package service

import (
	"context"

	"github.com/rehanmiah/the-palace-v1-sub000/internal/domain"
)

type MenuRepository interface {
	CreateRestaurant(rest *domain.Restaurant) error
	ListRestaurants() ([]domain.Restaurant, error)
	CreateDish(dish *domain.Dish) error
	ListDishes(restaurantID int) ([]domain.Dish, error)
	GetDish(restaurantID, dishID int) (*domain.Dish, error)
}

type OrderRepository interface {
	CreateOrder(order *domain.Order) error
	GetOrder(orderID int) (*domain.Order, []domain.OrderItem, error)
	SaveQRCode(orderID int, qr []byte) error
	GetQRCode(orderID int) ([]byte, error)
}

type OrderPublisher interface {
	PublishOrderPlaced(ctx context.Context, msg domain.OrderPlacedMessage) error
}

type MenuServiceInterface interface {
	CreateRestaurant(rest *domain.Restaurant) error
	ListRestaurants() ([]domain.Restaurant, error)
	CreateDish(dish *domain.Dish) error
	ListDishes(restaurantID int) ([]domain.Dish, error)
	GetDish(restaurantID, dishID int) (*domain.Dish, error)
}

type CartServiceInterface interface {
	AddItem(ctx context.Context, sessionID string, dishID, restaurantID, spiceLevel int) (domain.CartSnapshot, error)
	SetQuantity(ctx context.Context, sessionID string, dishID, spiceLevel, quantity int) (domain.CartSnapshot, error)
	ChangeSpiceLevel(ctx context.Context, sessionID string, dishID, from, to int) (domain.CartSnapshot, error)
	RemoveDish(ctx context.Context, sessionID string, dishID int) (domain.CartSnapshot, error)
	Clear(ctx context.Context, sessionID string) error
	Snapshot(ctx context.Context, sessionID string) domain.CartSnapshot
	ItemQuantity(ctx context.Context, sessionID string, dishID, spiceLevel int) int
}

type CheckoutServiceInterface interface {
	Quote(ctx context.Context, sessionID, mode string) (domain.Totals, error)
	PlaceOrder(ctx context.Context, sessionID, mode string, contact domain.Contact) (*domain.Order, error)
}

type OrderServiceInterface interface {
	Get(orderID int) (*domain.Order, error)
	GetQRCode(orderID int) ([]byte, error)
	QRLink(orderID int) string
}
