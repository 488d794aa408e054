// Package wishlist tracks courses a learner saved for later.
package wishlist

import (
	"fmt"

	"github.com/coursetrail/coursetrail/internal/domain"
	"github.com/coursetrail/coursetrail/internal/storage"
)

const (
	collection = "wishlist"
	docItems   = "items"
)

// Service is the wishlist store: set semantics keyed by course id,
// insertion-ordered.
type Service struct {
	kv    storage.KV
	items []domain.WishlistItem
}

// NewService creates the wishlist store, loading any persisted state.
// Missing or corrupt persisted state starts the store empty.
func NewService(kv storage.KV) *Service {
	s := &Service{kv: kv}
	if err := kv.Load(collection, docItems, &s.items); err != nil {
		s.items = nil
	}
	return s
}

func (s *Service) persist() error {
	if err := s.kv.Save(collection, docItems, s.items); err != nil {
		return fmt.Errorf("persist wishlist: %w", err)
	}
	return nil
}

// Add inserts an item. Adding an id already present is a no-op.
func (s *Service) Add(item domain.WishlistItem) error {
	if s.Contains(item.ID) {
		return nil
	}
	s.items = append(s.items, item)
	return s.persist()
}

// Remove deletes an item by id. Absent ids are a no-op.
func (s *Service) Remove(id string) error {
	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return s.persist()
		}
	}
	return nil
}

// Clear empties the wishlist.
func (s *Service) Clear() error {
	if len(s.items) == 0 {
		return nil
	}
	s.items = nil
	return s.persist()
}

// Contains reports membership by course id.
func (s *Service) Contains(id string) bool {
	for _, item := range s.items {
		if item.ID == id {
			return true
		}
	}
	return false
}

// Count returns the number of saved courses.
func (s *Service) Count() int {
	return len(s.items)
}

// Items returns the saved courses in insertion order.
func (s *Service) Items() []domain.WishlistItem {
	out := make([]domain.WishlistItem, len(s.items))
	copy(out, s.items)
	return out
}
