package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/rehanmiah/the-palace-v1-sub000/internal/domain"
	"github.com/rehanmiah/the-palace-v1-sub000/internal/service"
)

type Handler struct {
	Menu     service.MenuServiceInterface
	Cart     service.CartServiceInterface
	Checkout service.CheckoutServiceInterface
	Orders   service.OrderServiceInterface
}

func NewHandler(menuSvc service.MenuServiceInterface, cartSvc service.CartServiceInterface,
	checkoutSvc service.CheckoutServiceInterface, orderSvc service.OrderServiceInterface) *Handler {
	return &Handler{
		Menu:     menuSvc,
		Cart:     cartSvc,
		Checkout: checkoutSvc,
		Orders:   orderSvc,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/restaurants", h.createRestaurant).Methods("POST")
	r.HandleFunc("/api/restaurants", h.getRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/dishes", h.createDish).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId}/dishes", h.getRestaurantDishes).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/dishes/{dishId}", h.getDish).Methods("GET")

	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/cart/items", h.updateCartItem).Methods("PUT")
	r.HandleFunc("/api/cart/items/spice", h.changeSpiceLevel).Methods("PUT")
	r.HandleFunc("/api/cart/items/{dishId}", h.removeCartDish).Methods("DELETE")

	r.HandleFunc("/api/checkout/quote", h.getQuote).Methods("GET")
	r.HandleFunc("/api/checkout", h.placeOrder).Methods("POST")

	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "storefront",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// sessionID extracts the caller's session. Cart and checkout routes refuse
// requests without one.
func sessionID(r *http.Request) string {
	return r.Header.Get("X-Session-ID")
}

func requireSession(w http.ResponseWriter, r *http.Request) (string, bool) {
	session := sessionID(r)
	if session == "" {
		http.Error(w, "Missing X-Session-ID header", http.StatusBadRequest)
		return "", false
	}
	return session, true
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	var rest domain.Restaurant
	if err := json.NewDecoder(r.Body).Decode(&rest); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Menu.CreateRestaurant(&rest); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, rest)
}

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Menu.ListRestaurants()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, restaurants)
}

func (h *Handler) createDish(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	var dish domain.Dish
	if err := json.NewDecoder(r.Body).Decode(&dish); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	dish.RestaurantID = restaurantID
	if err := h.Menu.CreateDish(&dish); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, dish)
}

func (h *Handler) getRestaurantDishes(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	dishes, err := h.Menu.ListDishes(restaurantID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, dishes)
}

func (h *Handler) getDish(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	dishID, _ := strconv.Atoi(mux.Vars(r)["dishId"])
	dish, err := h.Menu.GetDish(restaurantID, dishID)
	if err != nil {
		http.Error(w, "Dish not found", http.StatusNotFound)
		return
	}
	writeJSON(w, dish)
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}
	writeJSON(w, h.Cart.Snapshot(r.Context(), session))
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}
	if err := h.Cart.Clear(r.Context(), session); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	var payload struct {
		DishID       int `json:"dish_id"`
		RestaurantID int `json:"restaurant_id"`
		SpiceLevel   int `json:"spice_level"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	snap, err := h.Cart.AddItem(r.Context(), session, payload.DishID, payload.RestaurantID, payload.SpiceLevel)
	if err != nil {
		if errors.Is(err, service.ErrDishNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, snap)
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	var payload struct {
		DishID     int `json:"dish_id"`
		SpiceLevel int `json:"spice_level"`
		Quantity   int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	snap, err := h.Cart.SetQuantity(r.Context(), session, payload.DishID, payload.SpiceLevel, payload.Quantity)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, snap)
}

func (h *Handler) changeSpiceLevel(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	var payload struct {
		DishID         int `json:"dish_id"`
		FromSpiceLevel int `json:"from_spice_level"`
		ToSpiceLevel   int `json:"to_spice_level"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	snap, err := h.Cart.ChangeSpiceLevel(r.Context(), session, payload.DishID, payload.FromSpiceLevel, payload.ToSpiceLevel)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, snap)
}

func (h *Handler) removeCartDish(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}
	dishID, _ := strconv.Atoi(mux.Vars(r)["dishId"])

	snap, err := h.Cart.RemoveDish(r.Context(), session, dishID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, snap)
}

func (h *Handler) getQuote(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}
	mode := r.URL.Query().Get("mode")

	totals, err := h.Checkout.Quote(r.Context(), session, mode)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownOrderMode) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, totals)
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	var payload struct {
		Mode    string         `json:"mode"`
		Contact domain.Contact `json:"contact"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.Checkout.PlaceOrder(r.Context(), session, payload.Mode, payload.Contact)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownOrderMode), errors.Is(err, service.ErrEmptyCart):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(order)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])
	order, err := h.Orders.Get(orderID)
	if err != nil {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	writeJSON(w, order)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])
	qrCode, err := h.Orders.GetQRCode(orderID)
	if err != nil {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	if len(qrCode) == 0 {
		http.Error(w, "QR code not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}
