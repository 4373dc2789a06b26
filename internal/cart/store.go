// Package cart holds the packages a session has selected for booking.
package cart

import (
	"lab-booking/internal/data/entity"
	"lab-booking/internal/pricing"

	"github.com/shopspring/decimal"
)

const (
	MinQuantity = 1
	MaxQuantity = 10
)

// Item is one package in the cart together with its quantity.
type Item struct {
	Package  entity.Package
	Quantity int
}

// Store is an ordered set of cart items, at most one per package id.
// Totals are recomputed on every read. Store is not safe for concurrent use;
// the owning checkout workflow serialises access.
type Store struct {
	items []*Item
}

func NewStore() *Store {
	return &Store{}
}

func clamp(q int) int {
	if q < MinQuantity {
		return MinQuantity
	}
	if q > MaxQuantity {
		return MaxQuantity
	}
	return q
}

func (s *Store) find(packageID string) (int, *Item) {
	for i, item := range s.items {
		if item.Package.ID == packageID {
			return i, item
		}
	}
	return -1, nil
}

// Add inserts pkg or, if it is already present, increases its quantity.
// The resulting quantity is clamped to [MinQuantity, MaxQuantity].
func (s *Store) Add(pkg entity.Package, quantity int) {
	if _, item := s.find(pkg.ID); item != nil {
		if quantity < 0 {
			quantity = 0
		}
		item.Quantity = clamp(item.Quantity + quantity)
		return
	}

	s.items = append(s.items, &Item{Package: pkg, Quantity: clamp(quantity)})
}

// UpdateQuantity sets the quantity of an existing item. Out-of-range values
// and unknown ids are ignored; the return value reports whether it applied.
func (s *Store) UpdateQuantity(packageID string, quantity int) bool {
	if quantity < MinQuantity || quantity > MaxQuantity {
		return false
	}
	_, item := s.find(packageID)
	if item == nil {
		return false
	}
	item.Quantity = quantity
	return true
}

// Remove deletes the item for packageID, if any.
func (s *Store) Remove(packageID string) {
	i, _ := s.find(packageID)
	if i < 0 {
		return
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
}

func (s *Store) Clear() {
	s.items = nil
}

func (s *Store) IsInCart(packageID string) bool {
	_, item := s.find(packageID)
	return item != nil
}

// QuantityOf returns 0 for packages not in the cart.
func (s *Store) QuantityOf(packageID string) int {
	if _, item := s.find(packageID); item != nil {
		return item.Quantity
	}
	return 0
}

func (s *Store) IsEmpty() bool {
	return len(s.items) == 0
}

// Items returns a copy of the cart contents in insertion order.
func (s *Store) Items() []Item {
	out := make([]Item, len(s.items))
	for i, item := range s.items {
		out[i] = *item
	}
	return out
}

// ItemCount is the sum of quantities.
func (s *Store) ItemCount() int {
	n := 0
	for _, item := range s.items {
		n += item.Quantity
	}
	return n
}

// Total is the sum of price * quantity.
func (s *Store) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.items {
		total = total.Add(pricing.LineTotal(&item.Package, item.Quantity))
	}
	return total
}

// OriginalTotal is the sum of reference price * quantity.
func (s *Store) OriginalTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.items {
		total = total.Add(pricing.LineReferenceTotal(&item.Package, item.Quantity))
	}
	return total
}

// Savings is OriginalTotal - Total, floored at zero.
func (s *Store) Savings() decimal.Decimal {
	savings := s.OriginalTotal().Sub(s.Total())
	if savings.IsNegative() {
		return decimal.Zero
	}
	return savings
}

// Summary is a point-in-time copy of the cart and its derived totals.
type Summary struct {
	Items         []Item
	ItemCount     int
	Total         decimal.Decimal
	OriginalTotal decimal.Decimal
	Savings       decimal.Decimal
}

func (s *Store) Summary() Summary {
	return Summary{
		Items:         s.Items(),
		ItemCount:     s.ItemCount(),
		Total:         s.Total(),
		OriginalTotal: s.OriginalTotal(),
		Savings:       s.Savings(),
	}
}
