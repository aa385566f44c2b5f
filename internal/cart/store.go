package cart

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"alsayed-store/internal/model"
	"alsayed-store/internal/storage"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// KeyPrefix namespaces persisted carts in the session store.
const KeyPrefix = "alsayed-cart:"

// Catalog resolves product metadata for cart lines.
type Catalog interface {
	ByID(id string) (model.Product, bool)
}

// Store owns the cart of one session. Commands are applied one at a time in
// call order and every change to the line list is written to storage before
// the call returns.
type Store struct {
	mu       sync.Mutex
	checkout sync.Mutex // serialises Checkout calls

	key     string
	state   State
	storage storage.Store
	catalog Catalog
	logger  zerolog.Logger
}

// NewStore creates the store for a session and rehydrates it from storage.
// Missing or unreadable data yields an empty, closed cart.
func NewStore(ctx context.Context, session string, st storage.Store, catalog Catalog, logger zerolog.Logger) *Store {
	s := &Store{
		key:     KeyPrefix + session,
		state:   State{Items: []LineItem{}},
		storage: st,
		catalog: catalog,
		logger:  logger.With().Str("component", "cart").Str("session", session).Logger(),
	}

	items, err := s.readPersisted(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to restore cart, starting empty")
		return s
	}
	s.state = Reduce(s.state, Load{Items: items})
	return s
}

func (s *Store) readPersisted(ctx context.Context) ([]LineItem, error) {
	data, err := s.storage.Get(ctx, s.key)
	if errors.Is(err, storage.ErrNotFound) {
		return []LineItem{}, nil
	}
	if err != nil {
		return nil, err
	}

	var items []LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}

	valid := make([]LineItem, 0, len(items))
	for _, l := range items {
		if l.ProductID == "" || l.Quantity < 1 || l.Quantity > MaxLineQuantity {
			s.logger.Warn().Str("product_id", l.ProductID).Int("quantity", l.Quantity).Msg("dropping invalid persisted cart line")
			continue
		}
		valid = append(valid, l)
	}
	return valid, nil
}

// Dispatch applies cmd and returns the resulting state. A failed write is
// logged; the in-memory transition still takes effect.
func (s *Store) Dispatch(ctx context.Context, cmd Command) State {
	state, _ := s.dispatch(ctx, cmd, nil)
	return state
}

// dispatch applies cmd unless guard rejects the current state.
func (s *Store) dispatch(ctx context.Context, cmd Command, guard func(State) error) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if guard != nil {
		if err := guard(s.state); err != nil {
			return s.state.clone(), err
		}
	}

	s.state = Reduce(s.state, cmd)

	if cmd.changesItems() {
		s.persist(ctx)
	}

	return s.state.clone(), nil
}

func (s *Store) persist(ctx context.Context) {
	data, err := json.Marshal(s.state.Items)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to encode cart")
		return
	}
	if err := s.storage.Set(ctx, s.key, data); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist cart")
	}
}

// State returns a copy of the current cart.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// AddItem adds quantity units of a product size at unitPrice. The line may
// not grow beyond MaxLineQuantity.
func (s *Store) AddItem(ctx context.Context, productID, size string, unitPrice decimal.Decimal, quantity int) (State, error) {
	if quantity < 1 || quantity > MaxLineQuantity {
		return s.State(), model.ErrInvalidQuantity
	}
	return s.dispatch(ctx, AddItem{ProductID: productID, Size: size, Price: unitPrice, Quantity: quantity}, func(st State) error {
		if line, ok := st.Find(productID, size); ok && line.Quantity+quantity > MaxLineQuantity {
			return model.ErrInvalidQuantity
		}
		return nil
	})
}

// RemoveItem deletes a line. Missing lines are ignored.
func (s *Store) RemoveItem(ctx context.Context, productID, size string) State {
	return s.Dispatch(ctx, RemoveItem{ProductID: productID, Size: size})
}

// UpdateQuantity sets a line's quantity, removing it when quantity <= 0.
func (s *Store) UpdateQuantity(ctx context.Context, productID, size string, quantity int) (State, error) {
	if quantity > MaxLineQuantity {
		return s.State(), model.ErrInvalidQuantity
	}
	return s.Dispatch(ctx, UpdateQuantity{ProductID: productID, Size: size, Quantity: quantity}), nil
}

// Clear empties the cart. Visibility is unchanged.
func (s *Store) Clear(ctx context.Context) State {
	return s.Dispatch(ctx, Clear{})
}

func (s *Store) Open(ctx context.Context) State   { return s.Dispatch(ctx, Open{}) }
func (s *Store) Close(ctx context.Context) State  { return s.Dispatch(ctx, Close{}) }
func (s *Store) Toggle(ctx context.Context) State { return s.Dispatch(ctx, Toggle{}) }

// Checkout hands the current cart to place and, when place succeeds, takes
// the ordered units off the cart. Checkouts of one cart run one at a time, so
// a second checkout sees what the first left behind. Other commands are not
// blocked while place runs; lines they add survive.
func (s *Store) Checkout(ctx context.Context, place func(State) error) error {
	s.checkout.Lock()
	defer s.checkout.Unlock()

	snapshot := s.State()
	if err := place(snapshot); err != nil {
		return err
	}

	s.Dispatch(ctx, RemoveOrdered{Items: snapshot.Items})
	return nil
}

// Total returns the cart subtotal.
func (s *Store) Total() decimal.Decimal {
	return s.State().Total()
}

// Count returns the number of units in the cart.
func (s *Store) Count() int {
	return s.State().Count()
}

// ItemDetails resolves display metadata for a product in the cart.
func (s *Store) ItemDetails(productID string) (model.Product, bool) {
	return s.catalog.ByID(productID)
}

// DetailedLine is a cart line together with its catalogue product.
type DetailedLine struct {
	LineItem
	Product model.Product
}

// Detailed returns the lines whose product still exists in the catalogue.
// Lines that cannot be resolved are skipped.
func (s *Store) Detailed() []DetailedLine {
	state := s.State()
	out := make([]DetailedLine, 0, len(state.Items))
	for _, l := range state.Items {
		p, ok := s.catalog.ByID(l.ProductID)
		if !ok {
			s.logger.Debug().Str("product_id", l.ProductID).Msg("skipping cart line for unknown product")
			continue
		}
		out = append(out, DetailedLine{LineItem: l, Product: p})
	}
	return out
}
