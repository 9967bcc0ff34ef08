package domain

import (
	"errors"
	"time"
)

type Restaurant struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

type Dish struct {
	ID           int       `json:"dish_id"`
	RestaurantID int       `json:"restaurant_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	Category     string    `json:"category"`
	ImageURL     string    `json:"image_url"`
	IsVegetarian bool      `json:"is_vegetarian"`
	IsSpicy      bool      `json:"is_spicy"`
	IsPopular    bool      `json:"is_popular"`
	CreatedAt    time.Time `json:"created_at"`
}

// CartLine is one (dish, spice level) pairing with a quantity. A dish added
// at two different spice levels occupies two lines.
type CartLine struct {
	DishID       int     `json:"dish_id"`
	DishName     string  `json:"dish_name"`
	Price        float64 `json:"price"`
	RestaurantID int     `json:"restaurant_id"`
	SpiceLevel   int     `json:"spice_level"`
	Quantity     int     `json:"quantity"`
}

type CartSnapshot struct {
	RestaurantID int        `json:"restaurant_id"`
	Lines        []CartLine `json:"lines"`
	Subtotal     float64    `json:"subtotal"`
	ItemCount    int        `json:"item_count"`
}

type OrderMode string

const (
	ModeDelivery   OrderMode = "delivery"
	ModeCollection OrderMode = "collection"
)

var ErrUnknownOrderMode = errors.New("unknown order mode")

func ParseOrderMode(s string) (OrderMode, error) {
	switch OrderMode(s) {
	case ModeDelivery, ModeCollection:
		return OrderMode(s), nil
	}
	return "", ErrUnknownOrderMode
}

type Totals struct {
	Subtotal           float64   `json:"subtotal"`
	DeliveryFee        float64   `json:"delivery_fee"`
	CollectionDiscount float64   `json:"collection_discount"`
	Total              float64   `json:"total"`
	Mode               OrderMode `json:"mode"`
}

type Contact struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type Order struct {
	ID                 int         `json:"id"`
	RestaurantID       int         `json:"restaurant_id"`
	Mode               OrderMode   `json:"mode"`
	Subtotal           float64     `json:"subtotal"`
	DeliveryFee        float64     `json:"delivery_fee"`
	CollectionDiscount float64     `json:"collection_discount"`
	TotalAmount        float64     `json:"total_amount"`
	Status             string      `json:"status"`
	Contact            Contact     `json:"contact"`
	QRCode             string      `json:"qr_code,omitempty"`
	CreatedAt          time.Time   `json:"created_at"`
	Items              []OrderItem `json:"items"`
}

type OrderItem struct {
	DishID     int     `json:"dish_id"`
	DishName   string  `json:"dish_name"`
	SpiceLevel int     `json:"spice_level"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
}

type OrderPlacedItem struct {
	DishID   int `json:"dish_id"`
	Quantity int `json:"quantity"`
}

type OrderPlacedMessage struct {
	Type         string            `json:"type"`
	OrderID      int               `json:"order_id"`
	RestaurantID int               `json:"restaurant_id"`
	Mode         OrderMode         `json:"mode"`
	Total        float64           `json:"total"`
	Items        []OrderPlacedItem `json:"items"`
	Timestamp    time.Time         `json:"timestamp"`
}
