// Package cart holds shopping carts. Each cart is an immutable State that
// changes only through commands; a Store applies commands for one session and
// persists the line list after every change.
package cart

import (
	"github.com/shopspring/decimal"
)

// LineItem is one (product, size) entry with a price captured when it was added.
type LineItem struct {
	ProductID string          `json:"productId"`
	Size      string          `json:"size"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// LineTotal returns price × quantity.
func (l LineItem) LineTotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

func (l LineItem) is(productID, size string) bool {
	return l.ProductID == productID && l.Size == size
}

// State is a snapshot of a cart. Items keep insertion order and hold at most
// one line per (product, size).
type State struct {
	Items  []LineItem `json:"items"`
	IsOpen bool       `json:"isOpen"`
}

// Total returns the sum of all line totals.
func (s State) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range s.Items {
		total = total.Add(l.LineTotal())
	}
	return total
}

// Count returns the number of units in the cart.
func (s State) Count() int {
	n := 0
	for _, l := range s.Items {
		n += l.Quantity
	}
	return n
}

// IsEmpty reports whether the cart has no lines.
func (s State) IsEmpty() bool {
	return len(s.Items) == 0
}

// Find returns the line for (productID, size).
func (s State) Find(productID, size string) (LineItem, bool) {
	for _, l := range s.Items {
		if l.is(productID, size) {
			return l, true
		}
	}
	return LineItem{}, false
}

func (s State) clone() State {
	items := make([]LineItem, len(s.Items))
	copy(items, s.Items)
	return State{Items: items, IsOpen: s.IsOpen}
}
