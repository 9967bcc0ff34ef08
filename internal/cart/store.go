package cart

import (
	"sync"

	"github.com/rehanmiah/the-palace-v1-sub000/internal/domain"
)

// Store holds the cart for one session. Lines are kept in insertion order so
// the receipt renders in the order dishes were added. A line is identified by
// the (dish id, spice level) pair, never by dish id alone: the same dish at
// two spice levels is two independent lines.
//
// A non-empty cart belongs to exactly one restaurant. Adding a dish from a
// different restaurant drops the existing lines first.
type Store struct {
	mu           sync.Mutex
	restaurantID int // 0 while the cart is empty
	lines        []domain.CartLine
}

func NewStore() *Store {
	return &Store{}
}

// locked lookup by composite key; -1 when absent.
func (s *Store) findLine(dishID, spiceLevel int) int {
	for i, line := range s.lines {
		if line.DishID == dishID && line.SpiceLevel == spiceLevel {
			return i
		}
	}
	return -1
}

func (s *Store) removeLineAt(i int) {
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	if len(s.lines) == 0 {
		s.restaurantID = 0
	}
}

// Add puts one unit of the dish at the given spice level into the cart. An
// existing (dish, spice level) line is incremented; otherwise a new line is
// appended with quantity 1.
func (s *Store) Add(dish domain.Dish, restaurantID, spiceLevel int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.restaurantID != 0 && s.restaurantID != restaurantID {
		// One restaurant at a time. The old cart is dropped, not merged;
		// any confirmation prompt belongs to the caller.
		s.lines = nil
	}
	s.restaurantID = restaurantID

	if i := s.findLine(dish.ID, spiceLevel); i >= 0 {
		s.lines[i].Quantity++
		return
	}

	s.lines = append(s.lines, domain.CartLine{
		DishID:       dish.ID,
		DishName:     dish.Name,
		Price:        dish.Price,
		RestaurantID: restaurantID,
		SpiceLevel:   spiceLevel,
		Quantity:     1,
	})
}

// UpdateQuantity sets the quantity of the (dish, spice level) line to exactly
// quantity. Zero or negative removes the line. A miss is a no-op so callers
// may invoke this defensively.
func (s *Store) UpdateQuantity(dishID, spiceLevel, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findLine(dishID, spiceLevel)
	if i < 0 {
		return
	}
	if quantity <= 0 {
		s.removeLineAt(i)
		return
	}
	s.lines[i].Quantity = quantity
}

// UpdateSpiceLevel moves the (dish, from) line to spice level to. If a line
// already exists at the target level the quantities merge into it; otherwise
// the line is re-keyed in place, keeping its position.
func (s *Store) UpdateSpiceLevel(dishID, from, to int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if from == to {
		return
	}
	i := s.findLine(dishID, from)
	if i < 0 {
		return
	}
	if j := s.findLine(dishID, to); j >= 0 {
		s.lines[j].Quantity += s.lines[i].Quantity
		s.removeLineAt(i)
		return
	}
	s.lines[i].SpiceLevel = to
}

// Deduct subtracts the given quantities from their matching lines, removing
// any line that reaches zero. Lines not present in the cart are ignored.
// Checkout uses this so units added while an order was committing survive.
func (s *Store) Deduct(lines []domain.CartLine) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, line := range lines {
		i := s.findLine(line.DishID, line.SpiceLevel)
		if i < 0 {
			continue
		}
		if s.lines[i].Quantity <= line.Quantity {
			s.removeLineAt(i)
			continue
		}
		s.lines[i].Quantity -= line.Quantity
	}
}

// RemoveDish drops every line for the dish, regardless of spice level.
func (s *Store) RemoveDish(dishID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.lines[:0]
	for _, line := range s.lines {
		if line.DishID != dishID {
			kept = append(kept, line)
		}
	}
	s.lines = kept
	if len(s.lines) == 0 {
		s.restaurantID = 0
	}
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	s.restaurantID = 0
}

func (s *Store) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var subtotal float64
	for _, line := range s.lines {
		subtotal += line.Price * float64(line.Quantity)
	}
	return subtotal
}

// ItemCount sums quantities across lines, not the number of lines.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}

// ItemQuantity reports the quantity of the specific (dish, spice level) line,
// 0 when absent. The menu screen uses this to pick between the add button and
// the quantity stepper per spice variant.
func (s *Store) ItemQuantity(dishID, spiceLevel int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.findLine(dishID, spiceLevel); i >= 0 {
		return s.lines[i].Quantity
	}
	return 0
}

func (s *Store) RestaurantID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.restaurantID
}

// Lines returns a copy; callers never get to splice the underlying slice.
func (s *Store) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]domain.CartLine, len(s.lines))
	copy(lines, s.lines)
	return lines
}

// Snapshot captures the cart with its derived aggregates in one locked pass.
func (s *Store) Snapshot() domain.CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := domain.CartSnapshot{
		RestaurantID: s.restaurantID,
		Lines:        make([]domain.CartLine, len(s.lines)),
	}
	copy(snap.Lines, s.lines)
	for _, line := range s.lines {
		snap.Subtotal += line.Price * float64(line.Quantity)
		snap.ItemCount += line.Quantity
	}
	return snap
}

// Restore replaces the cart contents with an archived snapshot. Lines with a
// non-positive quantity are skipped rather than resurrected.
func (s *Store) Restore(snap domain.CartSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	for _, line := range snap.Lines {
		if line.Quantity > 0 {
			s.lines = append(s.lines, line)
		}
	}
	if len(s.lines) == 0 {
		s.restaurantID = 0
		return
	}
	s.restaurantID = snap.RestaurantID
}
