package services

import (
	"sort"
	"sync"
)

// CartService tracks per-session cart contents by product name
type CartService interface {
	Add(sessionID, productName string)
	Remove(sessionID, productName string)
	Items(sessionID string) []string
	Count(sessionID string) int
	Clear(sessionID string)
}

// CartServiceImpl implements CartService in memory, keyed by session ID
type CartServiceImpl struct {
	mu    sync.RWMutex
	carts map[string]map[string]bool
}

// NewCartService creates a new cart service
func NewCartService() *CartServiceImpl {
	return &CartServiceImpl{
		carts: make(map[string]map[string]bool),
	}
}

// Add puts a product into the session's cart. Adding twice is a no-op; the
// demo site sells one of each item.
func (s *CartServiceImpl) Add(sessionID, productName string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[sessionID]
	if !ok {
		cart = make(map[string]bool)
		s.carts[sessionID] = cart
	}
	cart[productName] = true
}

// Remove takes a product out of the session's cart
func (s *CartServiceImpl) Remove(sessionID, productName string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts[sessionID], productName)
}

// Items returns the cart contents in name order
func (s *CartServiceImpl) Items(sessionID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart := s.carts[sessionID]
	items := make([]string, 0, len(cart))
	for name := range cart {
		items = append(items, name)
	}
	sort.Strings(items)
	return items
}

// Count returns the number of items in the session's cart
func (s *CartServiceImpl) Count(sessionID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.carts[sessionID])
}

// Clear empties the session's cart
func (s *CartServiceImpl) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, sessionID)
}
