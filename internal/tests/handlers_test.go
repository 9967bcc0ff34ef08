package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpapi "github.com/rehanmiah/the-palace-v1-sub000/internal/api/http"
	"github.com/rehanmiah/the-palace-v1-sub000/internal/domain"
	"github.com/rehanmiah/the-palace-v1-sub000/internal/mocks"
	"github.com/rehanmiah/the-palace-v1-sub000/internal/service"
)

type handlerMocks struct {
	menu     *mocks.MenuServiceInterface
	cart     *mocks.CartServiceInterface
	checkout *mocks.CheckoutServiceInterface
	orders   *mocks.OrderServiceInterface
}

func setupTestRouter(t *testing.T) (*mux.Router, handlerMocks) {
	t.Helper()
	m := handlerMocks{
		menu:     mocks.NewMenuServiceInterface(t),
		cart:     mocks.NewCartServiceInterface(t),
		checkout: mocks.NewCheckoutServiceInterface(t),
		orders:   mocks.NewOrderServiceInterface(t),
	}
	router := mux.NewRouter()
	httpapi.NewHandler(m.menu, m.cart, m.checkout, m.orders).RegisterRoutes(router)
	return router, m
}

func doRequest(router *mux.Router, method, target, session string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	if session != "" {
		req.Header.Set("X-Session-ID", session)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthCheck(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "storefront", body["service"])
}

func TestAddCartItem(t *testing.T) {
	payload := map[string]int{"dish_id": 1, "restaurant_id": 1, "spice_level": 2}

	tests := []struct {
		name         string
		session      string
		prepareMocks func(m handlerMocks)
		wantStatus   int
	}{
		{
			name:    "success",
			session: "alice",
			prepareMocks: func(m handlerMocks) {
				m.cart.On("AddItem", mock.Anything, "alice", 1, 1, 2).
					Return(domain.CartSnapshot{RestaurantID: 1, ItemCount: 1}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:         "missing session header",
			session:      "",
			prepareMocks: func(m handlerMocks) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:    "unknown dish",
			session: "alice",
			prepareMocks: func(m handlerMocks) {
				m.cart.On("AddItem", mock.Anything, "alice", 1, 1, 2).
					Return(domain.CartSnapshot{}, service.ErrDishNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := setupTestRouter(t)
			tt.prepareMocks(m)

			rec := doRequest(router, http.MethodPost, "/api/cart/items", tt.session, payload)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				var snap domain.CartSnapshot
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
				assert.Equal(t, 1, snap.ItemCount)
			}
		})
	}
}

func TestGetCart(t *testing.T) {
	router, m := setupTestRouter(t)
	m.cart.On("Snapshot", mock.Anything, "alice").
		Return(domain.CartSnapshot{RestaurantID: 3, ItemCount: 2, Subtotal: 14.00}).Once()

	rec := doRequest(router, http.MethodGet, "/api/cart", "alice", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var snap domain.CartSnapshot
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Equal(t, 3, snap.RestaurantID)
	assert.InDelta(t, 14.00, snap.Subtotal, 1e-9)
}

func TestUpdateCartItem(t *testing.T) {
	router, m := setupTestRouter(t)
	m.cart.On("SetQuantity", mock.Anything, "alice", 1, 0, 3).
		Return(domain.CartSnapshot{ItemCount: 3}, nil).Once()

	rec := doRequest(router, http.MethodPut, "/api/cart/items", "alice",
		map[string]int{"dish_id": 1, "spice_level": 0, "quantity": 3})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestChangeSpiceLevel(t *testing.T) {
	router, m := setupTestRouter(t)
	m.cart.On("ChangeSpiceLevel", mock.Anything, "alice", 1, 1, 3).
		Return(domain.CartSnapshot{ItemCount: 2}, nil).Once()

	rec := doRequest(router, http.MethodPut, "/api/cart/items/spice", "alice",
		map[string]int{"dish_id": 1, "from_spice_level": 1, "to_spice_level": 3})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRemoveCartDish(t *testing.T) {
	router, m := setupTestRouter(t)
	m.cart.On("RemoveDish", mock.Anything, "alice", 7).
		Return(domain.CartSnapshot{}, nil).Once()

	rec := doRequest(router, http.MethodDelete, "/api/cart/items/7", "alice", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestClearCart(t *testing.T) {
	router, m := setupTestRouter(t)
	m.cart.On("Clear", mock.Anything, "alice").Return(nil).Once()

	rec := doRequest(router, http.MethodDelete, "/api/cart", "alice", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestGetQuote(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		prepareMocks func(m handlerMocks)
		wantStatus   int
	}{
		{
			name:   "delivery quote",
			target: "/api/checkout/quote?mode=delivery",
			prepareMocks: func(m handlerMocks) {
				m.checkout.On("Quote", mock.Anything, "alice", "delivery").
					Return(domain.Totals{Subtotal: 10.00, DeliveryFee: 2.99, Total: 12.99}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "unknown mode",
			target: "/api/checkout/quote?mode=teleport",
			prepareMocks: func(m handlerMocks) {
				m.checkout.On("Quote", mock.Anything, "alice", "teleport").
					Return(domain.Totals{}, domain.ErrUnknownOrderMode).Once()
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := setupTestRouter(t)
			tt.prepareMocks(m)

			rec := doRequest(router, http.MethodGet, tt.target, "alice", nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				var totals domain.Totals
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &totals))
				assert.InDelta(t, 12.99, totals.Total, 1e-9)
			}
		})
	}
}

func TestPlaceOrder(t *testing.T) {
	payload := map[string]interface{}{
		"mode":    "delivery",
		"contact": map[string]string{"name": "Rehan", "phone": "07000000000"},
	}

	tests := []struct {
		name         string
		prepareMocks func(m handlerMocks)
		wantStatus   int
	}{
		{
			name: "created",
			prepareMocks: func(m handlerMocks) {
				m.checkout.On("PlaceOrder", mock.Anything, "alice", "delivery", mock.Anything).
					Return(&domain.Order{ID: 42, Status: "placed"}, nil).Once()
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "empty cart",
			prepareMocks: func(m handlerMocks) {
				m.checkout.On("PlaceOrder", mock.Anything, "alice", "delivery", mock.Anything).
					Return(nil, service.ErrEmptyCart).Once()
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "storage failure",
			prepareMocks: func(m handlerMocks) {
				m.checkout.On("PlaceOrder", mock.Anything, "alice", "delivery", mock.Anything).
					Return(nil, assert.AnError).Once()
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := setupTestRouter(t)
			tt.prepareMocks(m)

			rec := doRequest(router, http.MethodPost, "/api/checkout", "alice", payload)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusCreated {
				var order domain.Order
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
				assert.Equal(t, 42, order.ID)
			}
		})
	}
}

func TestGetRestaurantDishes(t *testing.T) {
	router, m := setupTestRouter(t)
	m.menu.On("ListDishes", 1).Return([]domain.Dish{
		{ID: 1, Name: "Korma", Price: 9.50},
		{ID: 2, Name: "Madras", Price: 11.50, IsSpicy: true},
	}, nil).Once()

	rec := doRequest(router, http.MethodGet, "/api/restaurants/1/dishes", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var dishes []domain.Dish
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dishes))
	assert.Len(t, dishes, 2)
}

func TestGetDishNotFound(t *testing.T) {
	router, m := setupTestRouter(t)
	m.menu.On("GetDish", 1, 99).Return(nil, assert.AnError).Once()

	rec := doRequest(router, http.MethodGet, "/api/restaurants/1/dishes/99", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetOrderQRCode(t *testing.T) {
	tests := []struct {
		name         string
		prepareMocks func(m handlerMocks)
		wantStatus   int
		wantType     string
	}{
		{
			name: "png returned",
			prepareMocks: func(m handlerMocks) {
				m.orders.On("GetQRCode", 7).Return([]byte("png-bytes"), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantType:   "image/png",
		},
		{
			name: "no code stored",
			prepareMocks: func(m handlerMocks) {
				m.orders.On("GetQRCode", 7).Return([]byte{}, nil).Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "unknown order",
			prepareMocks: func(m handlerMocks) {
				m.orders.On("GetQRCode", 7).Return(nil, assert.AnError).Once()
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := setupTestRouter(t)
			tt.prepareMocks(m)

			rec := doRequest(router, http.MethodGet, "/api/orders/7/qrcode", "", nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantType != "" {
				assert.Equal(t, tt.wantType, rec.Header().Get("Content-Type"))
			}
		})
	}
}
