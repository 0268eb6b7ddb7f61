package core

// store.go holds the owned application state: the catalog (categories,
// suppliers, products) as the single source of truth, and the dependent
// cart/favorites state that cascades with it.
//
// Every public operation runs to completion under the store lock before
// the next one is processed. Persistence is a synchronous side effect
// after each commit: the mutated slots are serialized and handed to the
// Slots store. A failed save is logged and the in-memory state stays
// authoritative for the rest of the session (at-most-once durability,
// never a rollback source).

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sort"
	"sync"

	"github.com/jlavigne/epicerie/internal/state"
)

// Persisted slot names. Each slot is loaded and saved independently.
const (
	slotCategories      = "categories"
	slotSuppliers       = "suppliers"
	slotProducts        = "products"
	slotQuantities      = "quantities"
	slotFavorites       = "favorites"
	slotWaRecipients    = "waRecipients"
	slotEmailRecipients = "emailRecipients"
)

// Store owns the catalog and the user's transient list state. All access
// goes through its methods; there are no package-level singletons.
type Store struct {
	mu sync.RWMutex

	categories []Category
	suppliers  []Supplier
	products   []Product
	quantities map[string]int
	favorites  map[string]struct{}

	waRecipients    []Recipient
	emailRecipients []Recipient

	slots  state.Slots
	logger *slog.Logger
}

// NewStore creates a store over the seed catalog with an empty cart.
func NewStore(slots state.Slots, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		categories: ensureFallback(SeedCategories()),
		suppliers:  SeedSuppliers(),
		products:   SeedProducts(),
		quantities: make(map[string]int),
		favorites:  make(map[string]struct{}),
		slots:      slots,
		logger:     logger,
	}
}

// LoadStore builds a store from persisted slots. A slot that is absent or
// fails to parse falls back to the seed catalog (categories, suppliers,
// products) or an empty collection (everything else); the failure is
// logged and never fatal.
func LoadStore(ctx context.Context, slots state.Slots, logger *slog.Logger) *Store {
	s := NewStore(slots, logger)

	if cats, ok := loadSlot[[]Category](ctx, slots, slotCategories, s.logger); ok && len(cats) > 0 {
		s.categories = ensureFallback(cats)
	}
	if sups, ok := loadSlot[[]Supplier](ctx, slots, slotSuppliers, s.logger); ok && len(sups) > 0 {
		s.suppliers = sups
	}
	if prods, ok := loadSlot[[]Product](ctx, slots, slotProducts, s.logger); ok && len(prods) > 0 {
		s.products = prods
	}
	if qtys, ok := loadSlot[map[string]int](ctx, slots, slotQuantities, s.logger); ok {
		s.quantities = make(map[string]int, len(qtys))
		for id, q := range qtys {
			if q > 0 {
				s.quantities[id] = q
			}
		}
	}
	if favs, ok := loadSlot[[]string](ctx, slots, slotFavorites, s.logger); ok {
		s.favorites = make(map[string]struct{}, len(favs))
		for _, id := range favs {
			s.favorites[id] = struct{}{}
		}
	}
	if rs, ok := loadSlot[[]Recipient](ctx, slots, slotWaRecipients, s.logger); ok {
		s.waRecipients = rs
	}
	if rs, ok := loadSlot[[]Recipient](ctx, slots, slotEmailRecipients, s.logger); ok {
		s.emailRecipients = rs
	}

	return s
}

// loadSlot reads and unmarshals one slot. The second return value is false
// when the slot is absent or unreadable.
func loadSlot[T any](ctx context.Context, slots state.Slots, key string, logger *slog.Logger) (T, bool) {
	var zero T

	data, err := slots.Load(ctx, key)
	if errors.Is(err, state.ErrNotFound) {
		return zero, false
	}
	if err != nil {
		logger.Warn("loading state slot failed, using defaults", "slot", key, "error", err)
		return zero, false
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		logger.Warn("state slot is corrupt, using defaults", "slot", key, "error", err)
		return zero, false
	}
	return v, true
}

// persist saves the named slots. Callers invoke it after releasing the
// write lock; failures are logged, not propagated.
func (s *Store) persist(ctx context.Context, keys ...string) {
	for _, key := range keys {
		data, err := s.snapshotSlot(key)
		if err != nil {
			s.logger.Error("serializing state slot failed", "slot", key, "error", err)
			continue
		}
		if err := s.slots.Save(ctx, key, data); err != nil {
			s.logger.Error("saving state slot failed, changes not persisted", "slot", key, "error", err)
		}
	}
}

// snapshotSlot marshals the current value of one slot.
func (s *Store) snapshotSlot(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch key {
	case slotCategories:
		return json.Marshal(s.categories)
	case slotSuppliers:
		return json.Marshal(s.suppliers)
	case slotProducts:
		return json.Marshal(s.products)
	case slotQuantities:
		return json.Marshal(s.quantities)
	case slotFavorites:
		return json.Marshal(s.favoriteIDs())
	case slotWaRecipients:
		return json.Marshal(s.waRecipients)
	case slotEmailRecipients:
		return json.Marshal(s.emailRecipients)
	default:
		return nil, errors.New("unknown state slot: " + key)
	}
}

// favoriteIDs returns the favorites set as a sorted list. Caller holds at
// least a read lock.
func (s *Store) favoriteIDs() []string {
	ids := make([]string, 0, len(s.favorites))
	for id := range s.favorites {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Categories returns the category collection sorted by sortOrder, ties
// broken by insertion order.
func (s *Store) Categories() []Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Category, len(s.categories))
	copy(out, s.categories)
	sort.SliceStable(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out
}

// Products returns the product collection in insertion order.
func (s *Store) Products() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// Suppliers returns the supplier collection.
func (s *Store) Suppliers() []Supplier {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Supplier, len(s.suppliers))
	copy(out, s.suppliers)
	return out
}

// Quantities returns a copy of the cart quantity map. Entries are always
// >= 1; absence means zero.
func (s *Store) Quantities() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]int, len(s.quantities))
	for id, q := range s.quantities {
		out[id] = q
	}
	return out
}

// Quantity returns the cart quantity for one product (0 when absent).
func (s *Store) Quantity(productID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.quantities[productID]
}

// Favorites returns the favorite product ids, sorted.
func (s *Store) Favorites() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.favoriteIDs()
}

// IsFavorite reports favorite membership for one product.
func (s *Store) IsFavorite(productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.favorites[productID]
	return ok
}
