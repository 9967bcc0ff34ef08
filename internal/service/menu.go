package service

import (
	"errors"

	"github.com/rehanmiah/the-palace-v1-sub000/internal/domain"
)

type MenuService struct {
	repo MenuRepository
}

func NewMenuService(repo MenuRepository) *MenuService {
	return &MenuService{repo: repo}
}

func (s *MenuService) CreateRestaurant(rest *domain.Restaurant) error {
	if rest.Name == "" {
		return errors.New("restaurant name is required")
	}
	return s.repo.CreateRestaurant(rest)
}

func (s *MenuService) ListRestaurants() ([]domain.Restaurant, error) {
	return s.repo.ListRestaurants()
}

func (s *MenuService) CreateDish(dish *domain.Dish) error {
	if dish.Name == "" || dish.Price < 0 {
		return errors.New("invalid dish payload")
	}
	return s.repo.CreateDish(dish)
}

func (s *MenuService) ListDishes(restaurantID int) ([]domain.Dish, error) {
	return s.repo.ListDishes(restaurantID)
}

func (s *MenuService) GetDish(restaurantID, dishID int) (*domain.Dish, error) {
	return s.repo.GetDish(restaurantID, dishID)
}

var _ MenuServiceInterface = (*MenuService)(nil)
