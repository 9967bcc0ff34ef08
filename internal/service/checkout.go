package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/rehanmiah/the-palace-v1-sub000/internal/cart"
	"github.com/rehanmiah/the-palace-v1-sub000/internal/domain"
	"github.com/rehanmiah/the-palace-v1-sub000/internal/pricing"
)

var ErrEmptyCart = errors.New("cart is empty")

// CheckoutService turns a session cart into an order. The ordered lines are
// deducted from the cart only after the order has committed; any failure
// leaves it intact so the user can retry.
type CheckoutService struct {
	carts     *cart.Manager
	orders    OrderRepository
	publisher OrderPublisher
	qrEncoder QRGenerator
}

func NewCheckoutService(carts *cart.Manager, orders OrderRepository, publisher OrderPublisher, qr QRGenerator) *CheckoutService {
	return &CheckoutService{
		carts:     carts,
		orders:    orders,
		publisher: publisher,
		qrEncoder: qr,
	}
}

// Quote prices the session's current cart for the receipt screen without
// touching cart state.
func (s *CheckoutService) Quote(ctx context.Context, sessionID, mode string) (domain.Totals, error) {
	orderMode, err := domain.ParseOrderMode(mode)
	if err != nil {
		return domain.Totals{}, err
	}
	snap := s.carts.Cart(ctx, sessionID).Snapshot()
	return pricing.ComputeTotals(snap.Subtotal, orderMode), nil
}

func (s *CheckoutService) PlaceOrder(ctx context.Context, sessionID, mode string, contact domain.Contact) (*domain.Order, error) {
	orderMode, err := domain.ParseOrderMode(mode)
	if err != nil {
		return nil, err
	}

	snap := s.carts.Cart(ctx, sessionID).Snapshot()
	if len(snap.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	totals := pricing.ComputeTotals(snap.Subtotal, orderMode)
	order := &domain.Order{
		RestaurantID:       snap.RestaurantID,
		Mode:               orderMode,
		Subtotal:           totals.Subtotal,
		DeliveryFee:        totals.DeliveryFee,
		CollectionDiscount: totals.CollectionDiscount,
		TotalAmount:        totals.Total,
		Contact:            contact,
		Items:              make([]domain.OrderItem, 0, len(snap.Lines)),
	}
	for _, line := range snap.Lines {
		order.Items = append(order.Items, domain.OrderItem{
			DishID:     line.DishID,
			DishName:   line.DishName,
			SpiceLevel: line.SpiceLevel,
			Quantity:   line.Quantity,
			Price:      line.Price,
		})
	}

	if err := s.orders.CreateOrder(order); err != nil {
		return nil, err
	}

	// Collection orders get a pickup QR for the counter.
	if orderMode == domain.ModeCollection && s.qrEncoder != nil {
		if qr, err := s.qrEncoder.Generate(order.ID); err == nil {
			if err := s.orders.SaveQRCode(order.ID, qr); err != nil {
				log.Printf("[checkout] failed to store QR code for order %d: %v", order.ID, err)
			}
			order.QRCode = s.QRLink(order.ID)
		} else {
			log.Printf("[checkout] failed to generate QR code for order %d: %v", order.ID, err)
		}
	}

	if s.publisher != nil {
		msg := domain.OrderPlacedMessage{
			Type:         "order_placed",
			OrderID:      order.ID,
			RestaurantID: order.RestaurantID,
			Mode:         orderMode,
			Total:        order.TotalAmount,
			Timestamp:    time.Now(),
		}
		for _, item := range order.Items {
			msg.Items = append(msg.Items, domain.OrderPlacedItem{DishID: item.DishID, Quantity: item.Quantity})
		}
		if err := s.publisher.PublishOrderPlaced(ctx, msg); err != nil {
			log.Printf("[checkout] failed to publish order %d: %v", order.ID, err)
		}
	}

	s.carts.Settle(ctx, sessionID, snap)
	return order, nil
}

func (s *CheckoutService) QRLink(orderID int) string {
	return OrderQRLink(orderID)
}

var _ CheckoutServiceInterface = (*CheckoutService)(nil)
