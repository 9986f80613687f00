package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/lautaroCastilloJ/storefront/internal/domain"
	"github.com/lautaroCastilloJ/storefront/internal/storage"
)

// Store holds what the current visitor intends to buy and keeps it durable
// across runs. Every mutation writes through to persistent storage before
// returning, so a subsequent load always sees the latest state. An empty
// cart leaves no storage residue.
type Store struct {
	mu      sync.Mutex
	storage storage.Store
	items   []domain.LineItem
}

// NewStore restores the cart from storage. A missing entry means an empty
// cart; a corrupt entry is discarded and the cart starts empty.
func NewStore(ctx context.Context, st storage.Store) *Store {
	s := &Store{storage: st}
	s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) {
	raw, err := s.storage.Get(ctx, storage.KeyCart)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return
	}
	if err != nil {
		log.Printf("cart load error: %v", err)
		return
	}

	var items []domain.LineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Printf("discarding corrupt cart entry: %v", err)
		if e2 := s.storage.Delete(ctx, storage.KeyCart); e2 != nil {
			log.Printf("cart cleanup error: %v", e2)
		}
		return
	}
	s.items = items
}

// AddItem merges quantity into an existing line for the product, or appends
// a new line snapshotting the product's display fields. Adding the same
// product twice accumulates, it never duplicates rows. A non-positive
// quantity counts as adding one.
func (s *Store) AddItem(ctx context.Context, p domain.Product, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == p.ID {
			s.items[i].Quantity += quantity
			return s.persist(ctx)
		}
	}

	s.items = append(s.items, domain.NewLineItem(p, quantity))
	return s.persist(ctx)
}

// UpdateQuantity sets the line's quantity to exactly quantity. A quantity
// of zero or less removes the line instead; the cart never holds a
// non-positive quantity. Unknown products are a no-op.
func (s *Store) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		return s.remove(ctx, productID)
	}

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity = quantity
			return s.persist(ctx)
		}
	}
	return nil
}

// RemoveItem deletes the line for productID. Absent lines are a no-op, not
// an error.
func (s *Store) RemoveItem(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remove(ctx, productID)
}

func (s *Store) remove(ctx context.Context, productID string) error {
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return s.persist(ctx)
		}
	}
	return nil
}

// Clear empties the cart unconditionally.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	return s.persist(ctx)
}

// Items returns the lines in insertion order of first add. The slice is a
// copy; callers cannot mutate store state through it.
func (s *Store) Items() []domain.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]domain.LineItem, len(s.items))
	copy(items, s.items)
	return items
}

// TotalAmount is the sum over lines of unit price times quantity,
// recomputed on every call.
func (s *Store) TotalAmount() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, li := range s.items {
		total += li.Subtotal()
	}
	return total
}

// ItemCount is the sum of quantities across all lines.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int
	for _, li := range s.items {
		count += li.Quantity
	}
	return count
}

// persist mirrors the current lines to storage. Callers hold the lock.
func (s *Store) persist(ctx context.Context) error {
	if len(s.items) == 0 {
		if err := s.storage.Delete(ctx, storage.KeyCart); err != nil {
			return fmt.Errorf("failed to clear persisted cart: %w", err)
		}
		return nil
	}

	raw, err := json.Marshal(s.items)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := s.storage.Set(ctx, storage.KeyCart, string(raw)); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	return nil
}
