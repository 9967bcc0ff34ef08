package storage

import (
	"database/sql"
	"fmt"

	"github.com/rehanmiah/the-palace-v1-sub000/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) CreateRestaurant(rest *domain.Restaurant) error {
	return r.DB.QueryRow(
		"INSERT INTO restaurants (name, address, description, image_url) VALUES ($1, $2, $3, $4) RETURNING id, created_at",
		rest.Name, rest.Address, rest.Description, rest.ImageURL,
	).Scan(&rest.ID, &rest.CreatedAt)
}

func (r *PostgresRepository) ListRestaurants() ([]domain.Restaurant, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, COALESCE(address, ''), COALESCE(description, ''), COALESCE(image_url, ''), created_at
		FROM restaurants
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []domain.Restaurant
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.Address, &rest.Description, &rest.ImageURL, &rest.CreatedAt); err != nil {
			continue
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, nil
}

func (r *PostgresRepository) CreateDish(dish *domain.Dish) error {
	return r.DB.QueryRow(`
		INSERT INTO dishes (restaurant_id, name, description, price, category, image_url, is_vegetarian, is_spicy)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`,
		dish.RestaurantID, dish.Name, dish.Description, dish.Price, dish.Category,
		dish.ImageURL, dish.IsVegetarian, dish.IsSpicy).
		Scan(&dish.ID, &dish.CreatedAt)
}

func (r *PostgresRepository) ListDishes(restaurantID int) ([]domain.Dish, error) {
	rows, err := r.DB.Query(`
		SELECT id, restaurant_id, name, COALESCE(description, ''), price, COALESCE(category, ''),
		       COALESCE(image_url, ''), is_vegetarian, is_spicy, is_popular, created_at
		FROM dishes
		WHERE restaurant_id = $1
		ORDER BY category, name`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dishes []domain.Dish
	for rows.Next() {
		var dish domain.Dish
		if err := rows.Scan(&dish.ID, &dish.RestaurantID, &dish.Name, &dish.Description, &dish.Price,
			&dish.Category, &dish.ImageURL, &dish.IsVegetarian, &dish.IsSpicy, &dish.IsPopular, &dish.CreatedAt); err != nil {
			continue
		}
		dishes = append(dishes, dish)
	}
	return dishes, nil
}

func (r *PostgresRepository) GetDish(restaurantID, dishID int) (*domain.Dish, error) {
	var dish domain.Dish
	err := r.DB.QueryRow(`
		SELECT id, restaurant_id, name, COALESCE(description, ''), price, COALESCE(category, ''),
		       COALESCE(image_url, ''), is_vegetarian, is_spicy, is_popular, created_at
		FROM dishes
		WHERE id = $1 AND restaurant_id = $2`, dishID, restaurantID).
		Scan(&dish.ID, &dish.RestaurantID, &dish.Name, &dish.Description, &dish.Price,
			&dish.Category, &dish.ImageURL, &dish.IsVegetarian, &dish.IsSpicy, &dish.IsPopular, &dish.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *PostgresRepository) CreateOrder(order *domain.Order) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.QueryRow(`
		INSERT INTO orders (restaurant_id, mode, subtotal, delivery_fee, collection_discount, total_amount,
		                    status, contact_name, contact_phone, contact_address, qr_code)
		VALUES ($1, $2, $3, $4, $5, $6, 'placed', $7, $8, $9, NULL)
		RETURNING id, created_at
	`, order.RestaurantID, order.Mode, order.Subtotal, order.DeliveryFee, order.CollectionDiscount,
		order.TotalAmount, order.Contact.Name, order.Contact.Phone, order.Contact.Address).
		Scan(&order.ID, &order.CreatedAt); err != nil {
		return err
	}
	order.Status = "placed"

	for _, item := range order.Items {
		if _, err := tx.Exec(`
			INSERT INTO order_items (order_id, dish_id, spice_level, quantity, price)
			VALUES ($1, $2, $3, $4, $5)
		`, order.ID, item.DishID, item.SpiceLevel, item.Quantity, item.Price); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) GetOrder(orderID int) (*domain.Order, []domain.OrderItem, error) {
	var order domain.Order
	if err := r.DB.QueryRow(`
		SELECT id, restaurant_id, mode, subtotal, delivery_fee, collection_discount, total_amount,
		       status, COALESCE(contact_name, ''), COALESCE(contact_phone, ''), COALESCE(contact_address, ''), created_at
		FROM orders WHERE id = $1
	`, orderID).Scan(&order.ID, &order.RestaurantID, &order.Mode, &order.Subtotal, &order.DeliveryFee,
		&order.CollectionDiscount, &order.TotalAmount, &order.Status,
		&order.Contact.Name, &order.Contact.Phone, &order.Contact.Address, &order.CreatedAt); err != nil {
		return nil, nil, err
	}

	rows, err := r.DB.Query(`
		SELECT oi.dish_id, d.name, oi.spice_level, oi.quantity, oi.price
		FROM order_items oi
		JOIN dishes d ON oi.dish_id = d.id
		WHERE oi.order_id = $1
	`, orderID)
	if err != nil {
		return &order, nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.DishID, &item.DishName, &item.SpiceLevel, &item.Quantity, &item.Price); err != nil {
			continue
		}
		items = append(items, item)
	}

	return &order, items, nil
}

func (r *PostgresRepository) SaveQRCode(orderID int, qr []byte) error {
	_, err := r.DB.Exec(`UPDATE orders SET qr_code = $1 WHERE id = $2`, qr, orderID)
	return err
}

func (r *PostgresRepository) GetQRCode(orderID int) ([]byte, error) {
	var qrCode []byte
	if err := r.DB.QueryRow("SELECT qr_code FROM orders WHERE id = $1", orderID).Scan(&qrCode); err != nil {
		return nil, err
	}
	return qrCode, nil
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS restaurants (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			address TEXT,
			description TEXT,
			image_url TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS dishes (
			id SERIAL PRIMARY KEY,
			restaurant_id INT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			description TEXT,
			price NUMERIC(10,2) NOT NULL,
			category TEXT,
			image_url TEXT,
			is_vegetarian BOOLEAN NOT NULL DEFAULT FALSE,
			is_spicy BOOLEAN NOT NULL DEFAULT FALSE,
			is_popular BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			restaurant_id INT NOT NULL,
			mode TEXT NOT NULL,
			subtotal NUMERIC(10,2) NOT NULL,
			delivery_fee NUMERIC(10,2) NOT NULL DEFAULT 0,
			collection_discount NUMERIC(10,2) NOT NULL DEFAULT 0,
			total_amount NUMERIC(10,2) NOT NULL,
			status TEXT NOT NULL,
			contact_name TEXT,
			contact_phone TEXT,
			contact_address TEXT,
			qr_code BYTEA,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id SERIAL PRIMARY KEY,
			order_id INT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			dish_id INT NOT NULL,
			spice_level INT NOT NULL DEFAULT 0,
			quantity INT NOT NULL,
			price NUMERIC(10,2) NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}
