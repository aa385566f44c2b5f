package cart

import "github.com/shopspring/decimal"

// MaxLineQuantity is the most units a single line may hold.
const MaxLineQuantity = 99

// Command is a cart transition. Reduce applies it to a State.
type Command interface {
	apply(State) State
	// changesItems reports whether the command may alter the line list.
	changesItems() bool
}

// AddItem adds Quantity units of a (product, size). An existing line keeps its
// price and has its quantity increased; otherwise a line is appended.
type AddItem struct {
	ProductID string
	Size      string
	Price     decimal.Decimal
	Quantity  int
}

// RemoveItem deletes the (product, size) line if present.
type RemoveItem struct {
	ProductID string
	Size      string
}

// UpdateQuantity sets a line's quantity. Zero or less removes the line.
type UpdateQuantity struct {
	ProductID string
	Size      string
	Quantity  int
}

// Clear empties the line list.
type Clear struct{}

// Open shows the cart drawer.
type Open struct{}

// Close hides the cart drawer.
type Close struct{}

// Toggle flips the drawer visibility.
type Toggle struct{}

// RemoveOrdered takes the units of Items off the cart. Units added to a line
// after Items was taken stay in the cart.
type RemoveOrdered struct {
	Items []LineItem
}

// Load replaces the line list, typically with persisted lines.
type Load struct {
	Items []LineItem
}

// Reduce returns the state that results from applying cmd to s.
// s is never modified.
func Reduce(s State, cmd Command) State {
	return cmd.apply(s)
}

func (c AddItem) apply(s State) State {
	next := s.clone()
	for i := range next.Items {
		if next.Items[i].is(c.ProductID, c.Size) {
			next.Items[i].Quantity = addCapped(next.Items[i].Quantity, c.Quantity)
			return next
		}
	}
	next.Items = append(next.Items, LineItem{
		ProductID: c.ProductID,
		Size:      c.Size,
		Quantity:  min(c.Quantity, MaxLineQuantity),
		Price:     c.Price,
	})
	return next
}

func (c RemoveItem) apply(s State) State {
	next := State{Items: make([]LineItem, 0, len(s.Items)), IsOpen: s.IsOpen}
	for _, l := range s.Items {
		if !l.is(c.ProductID, c.Size) {
			next.Items = append(next.Items, l)
		}
	}
	return next
}

func (c UpdateQuantity) apply(s State) State {
	if c.Quantity <= 0 {
		return RemoveItem{ProductID: c.ProductID, Size: c.Size}.apply(s)
	}
	next := s.clone()
	for i := range next.Items {
		if next.Items[i].is(c.ProductID, c.Size) {
			next.Items[i].Quantity = min(c.Quantity, MaxLineQuantity)
		}
	}
	return next
}

func (c RemoveOrdered) apply(s State) State {
	ordered := make(map[lineKey]int, len(c.Items))
	for _, l := range c.Items {
		ordered[keyOf(l)] += l.Quantity
	}

	next := State{Items: make([]LineItem, 0, len(s.Items)), IsOpen: s.IsOpen}
	for _, l := range s.Items {
		l.Quantity -= ordered[keyOf(l)]
		if l.Quantity > 0 {
			next.Items = append(next.Items, l)
		}
	}
	return next
}

// addCapped returns have+more, saturating at MaxLineQuantity.
func addCapped(have, more int) int {
	if more >= MaxLineQuantity-have {
		return MaxLineQuantity
	}
	return have + more
}

type lineKey struct{ productID, size string }

func keyOf(l LineItem) lineKey { return lineKey{l.ProductID, l.Size} }

func (Clear) apply(s State) State {
	return State{Items: []LineItem{}, IsOpen: s.IsOpen}
}

func (Open) apply(s State) State {
	next := s.clone()
	next.IsOpen = true
	return next
}

func (Close) apply(s State) State {
	next := s.clone()
	next.IsOpen = false
	return next
}

func (Toggle) apply(s State) State {
	next := s.clone()
	next.IsOpen = !s.IsOpen
	return next
}

func (c Load) apply(s State) State {
	items := make([]LineItem, len(c.Items))
	copy(items, c.Items)
	return State{Items: items, IsOpen: s.IsOpen}
}

func (AddItem) changesItems() bool        { return true }
func (RemoveItem) changesItems() bool     { return true }
func (UpdateQuantity) changesItems() bool { return true }
func (RemoveOrdered) changesItems() bool  { return true }
func (Clear) changesItems() bool          { return true }
func (Load) changesItems() bool           { return true }
func (Open) changesItems() bool           { return false }
func (Close) changesItems() bool          { return false }
func (Toggle) changesItems() bool         { return false }
