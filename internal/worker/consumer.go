package worker

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"

	"github.com/rehanmiah/the-palace-v1-sub000/internal/domain"
)

type StoreInterface interface {
	RecordDishOrdered(dishID, restaurantID, quantity int) error
}

// Consumer feeds placed orders into the popularity aggregates.
type Consumer struct {
	Reader *kafka.Reader
	Store  StoreInterface
}

func NewConsumer(reader *kafka.Reader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting popularity worker consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			log.Printf("Error reading message: %v", err)
			continue
		}

		var msg domain.OrderPlacedMessage
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		if msg.Type == "order_placed" {
			c.ProcessOrder(msg)
		}
	}
}

func (c *Consumer) ProcessOrder(msg domain.OrderPlacedMessage) {
	if msg.Type != "order_placed" {
		return
	}
	log.Printf("Processing order: OrderID=%d, RestaurantID=%d, items=%d",
		msg.OrderID, msg.RestaurantID, len(msg.Items))

	for _, item := range msg.Items {
		if err := c.Store.RecordDishOrdered(item.DishID, msg.RestaurantID, item.Quantity); err != nil {
			log.Printf("Error recording dish %d for order %d: %v", item.DishID, msg.OrderID, err)
		}
	}
}
