package tests

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rehanmiah/the-palace-v1-sub000/internal/domain"
	"github.com/rehanmiah/the-palace-v1-sub000/internal/mocks"
	"github.com/rehanmiah/the-palace-v1-sub000/internal/worker"
)

func TestConsumer_ProcessOrderRecordsEveryItem(t *testing.T) {
	store := mocks.NewStoreInterface(t)
	store.On("RecordDishOrdered", 1, 3, 2).Return(nil).Once()
	store.On("RecordDishOrdered", 2, 3, 1).Return(nil).Once()

	consumer := worker.NewConsumer(nil, store)
	consumer.ProcessOrder(domain.OrderPlacedMessage{
		Type:         "order_placed",
		OrderID:      42,
		RestaurantID: 3,
		Items: []domain.OrderPlacedItem{
			{DishID: 1, Quantity: 2},
			{DishID: 2, Quantity: 1},
		},
	})
}

func TestConsumer_ProcessOrderContinuesPastStoreErrors(t *testing.T) {
	store := mocks.NewStoreInterface(t)
	store.On("RecordDishOrdered", 1, 3, 1).Return(assert.AnError).Once()
	store.On("RecordDishOrdered", 2, 3, 1).Return(nil).Once()

	consumer := worker.NewConsumer(nil, store)
	consumer.ProcessOrder(domain.OrderPlacedMessage{
		Type:         "order_placed",
		OrderID:      42,
		RestaurantID: 3,
		Items: []domain.OrderPlacedItem{
			{DishID: 1, Quantity: 1},
			{DishID: 2, Quantity: 1},
		},
	})
}

func TestConsumer_ProcessOrderIgnoresOtherMessageTypes(t *testing.T) {
	store := mocks.NewStoreInterface(t)

	consumer := worker.NewConsumer(nil, store)
	consumer.ProcessOrder(domain.OrderPlacedMessage{
		Type:    "order_cancelled",
		OrderID: 42,
		Items:   []domain.OrderPlacedItem{{DishID: 1, Quantity: 1}},
	})

	store.AssertNotCalled(t, "RecordDishOrdered")
}
