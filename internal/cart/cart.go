// Package cart owns the list of (product, quantity) selections.
//
// Each cart line holds a snapshot copy of the product taken when it was
// added; later catalog edits do not propagate into the cart. The cart
// lives only for the process lifetime and is cleared on logout.
//
// Invariants maintained by every operation:
//   - at most one line per product id
//   - every quantity is a positive integer
package cart

import "github.com/roach88/quickcart/internal/model"

// Store is the shopping cart.
type Store struct {
	items []model.CartItem
}

// New creates an empty cart.
func New() *Store {
	return &Store{}
}

// AddItem adds one unit of product. When a line with the same product
// id already exists its quantity is incremented by 1; otherwise a new
// line with quantity 1 is appended, copying the product's current field
// values.
func (s *Store) AddItem(p model.Product) {
	for i := range s.items {
		if s.items[i].ID == p.ID {
			s.items[i].Quantity++
			return
		}
	}
	s.items = append(s.items, model.CartItem{Product: p, Quantity: 1})
}

// UpdateQuantity adjusts the line with the given id by delta, clamped
// so quantity never falls below 1. Removing a line requires RemoveItem
// explicitly; decrementing cannot do it. Unknown ids are a no-op.
func (s *Store) UpdateQuantity(id string, delta int) {
	for i := range s.items {
		if s.items[i].ID == id {
			q := s.items[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			s.items[i].Quantity = q
			return
		}
	}
}

// RemoveItem deletes the line with the given id. No-op if absent.
func (s *Store) RemoveItem(id string) {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.items = nil
}

// Items returns the cart lines in insertion order. The returned slice
// is a copy.
func (s *Store) Items() []model.CartItem {
	out := make([]model.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// TotalCount is the sum of all quantities, used for badge counts.
func (s *Store) TotalCount() int {
	total := 0
	for _, it := range s.items {
		total += it.Quantity
	}
	return total
}

// TotalPrice is the sum of price times quantity over all lines.
func (s *Store) TotalPrice() float64 {
	total := 0.0
	for _, it := range s.items {
		total += it.Subtotal()
	}
	return total
}
