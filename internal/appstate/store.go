// Package appstate holds the client-side state shared across independent
// views: the in-progress cart, the cached menu catalog, the auth token, and
// the staff roster. The store is handed to its consumers through the
// composition root; nothing reaches it via package-level lookup.
//
// Persistence is an explicit boundary: Serialize emits a JSON snapshot and
// Restore rebuilds the store from one. Only the cart and the auth token are
// part of the snapshot; catalog and roster are re-fetched caches.
package appstate

import (
	"encoding/json"
	"fmt"
	"sync"

	"digisales/internal/core/domain/model/cart"
	"digisales/internal/core/domain/model/kernel"
	"digisales/internal/core/domain/model/menu"
	"digisales/internal/core/domain/model/session"
)

// Store is the shared mutable state of the register client.
// Safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	cart    *cart.Cart
	catalog menu.Catalog
	token   string
	staff   []session.Staff
}

// NewStore creates an empty store with an empty cart.
func NewStore() *Store {
	return &Store{cart: cart.NewCart()}
}

// AddToCart appends one occurrence of the item to the cart.
func (s *Store) AddToCart(item menu.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Add(item)
}

// RemoveFromCart removes one occurrence of the stock code from the cart.
func (s *Store) RemoveFromCart(stockID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.RemoveOneOccurrence(stockID)
}

// ClearCart empties the cart.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
}

// CartItems returns a copy of the raw cart entries in insertion order.
func (s *Store) CartItems() []menu.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Items()
}

// CartLines returns the aggregated cart view.
func (s *Store) CartLines() []cart.Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Aggregate()
}

// CartTotal returns the cart total over raw occurrences.
func (s *Store) CartTotal() kernel.Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total()
}

// ReplaceCart swaps the cart contents for the given raw entries.
// Used when a held order is resumed.
func (s *Store) ReplaceCart(items []menu.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.RestoreSnapshot(items)
}

// SetCatalog replaces the cached menu catalog.
func (s *Store) SetCatalog(catalog menu.Catalog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = catalog
}

// Catalog returns the cached menu catalog.
func (s *Store) Catalog() menu.Catalog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog
}

// SetToken stores the auth token returned by login.
func (s *Store) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Token returns the stored auth token, empty before login.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// SetStaff replaces the cached staff roster.
func (s *Store) SetStaff(staff []session.Staff) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.staff = make([]session.Staff, len(staff))
	copy(s.staff, staff)
}

// Staff returns a copy of the cached staff roster.
func (s *Store) Staff() []session.Staff {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make([]session.Staff, len(s.staff))
	copy(copied, s.staff)
	return copied
}

type cartItemSnapshot struct {
	StockID      string `json:"stock_id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Price        string `json:"price"`
	Units        string `json:"units"`
	CategoryID   string `json:"category_id"`
	CategoryName string `json:"category_name"`
}

type storeSnapshot struct {
	Token string             `json:"token"`
	Cart  []cartItemSnapshot `json:"cart"`
}

// Serialize emits a JSON snapshot of the cart and auth token.
func (s *Store) Serialize() ([]byte, error) {
	s.mu.Lock()
	items := s.cart.Items()
	token := s.token
	s.mu.Unlock()

	snapshot := storeSnapshot{Token: token, Cart: make([]cartItemSnapshot, 0, len(items))}
	for _, item := range items {
		snapshot.Cart = append(snapshot.Cart, cartItemSnapshot{
			StockID:      item.StockID(),
			Name:         item.Name(),
			Description:  item.Description(),
			Price:        item.Price().String(),
			Units:        item.Units(),
			CategoryID:   item.CategoryID(),
			CategoryName: item.CategoryName(),
		})
	}
	return json.Marshal(snapshot)
}

// Restore rebuilds the cart and auth token from a Serialize snapshot.
// A snapshot with an invalid entry is rejected wholesale; the store keeps
// its current contents.
func (s *Store) Restore(data []byte) error {
	var snapshot storeSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return fmt.Errorf("failed to decode state snapshot: %w", err)
	}

	items := make([]menu.Item, 0, len(snapshot.Cart))
	for _, entry := range snapshot.Cart {
		price, err := kernel.NewMoneyFromString(entry.Price)
		if err != nil {
			return fmt.Errorf("failed to restore cart entry %s: %w", entry.StockID, err)
		}
		item, err := menu.NewItem(
			entry.StockID,
			entry.Name,
			entry.Description,
			price,
			entry.Units,
			entry.CategoryID,
			entry.CategoryName,
		)
		if err != nil {
			return fmt.Errorf("failed to restore cart entry %s: %w", entry.StockID, err)
		}
		items = append(items, item)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = snapshot.Token
	s.cart.RestoreSnapshot(items)
	return nil
}
