package service

import (
	"fmt"

	"github.com/rehanmiah/the-palace-v1-sub000/internal/domain"
)

func OrderQRLink(orderID int) string {
	return fmt.Sprintf("/api/orders/%d/qrcode", orderID)
}

type OrderService struct {
	repo      OrderRepository
	qrEncoder QRGenerator
}

func NewOrderService(repo OrderRepository, qr QRGenerator) *OrderService {
	return &OrderService{repo: repo, qrEncoder: qr}
}

func (s *OrderService) Get(orderID int) (*domain.Order, error) {
	order, items, err := s.repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	if order.Mode == domain.ModeCollection {
		order.QRCode = OrderQRLink(order.ID)
	}
	return order, nil
}

func (s *OrderService) GetQRCode(orderID int) ([]byte, error) {
	qr, err := s.repo.GetQRCode(orderID)
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		if regenerated, err := s.qrEncoder.Generate(orderID); err == nil {
			_ = s.repo.SaveQRCode(orderID, regenerated)
			return regenerated, nil
		}
	}
	return qr, nil
}

func (s *OrderService) QRLink(orderID int) string {
	return OrderQRLink(orderID)
}

var _ OrderServiceInterface = (*OrderService)(nil)
