// Package store holds all marketplace state in process-local, insertion-ordered
// slices. Nothing is persisted: the store lives from application start to
// shutdown. Every public method takes the store lock, so check-then-act
// sequences (duplicate-email check, locate-then-mutate) are atomic.
package store

import (
	"sync"

	"github.com/akgundogan/farmgate-backend/internal/models"
)

type Store struct {
	mu sync.RWMutex

	users    []models.User
	products []models.Product
	orders   []models.Order
	reviews  []models.Review

	nextUserID    int64
	nextProductID int64
	nextOrderID   int64
	nextReviewID  int64
}

func New() *Store {
	return &Store{
		nextUserID:    1,
		nextProductID: 1,
		nextOrderID:   1,
		nextReviewID:  1,
	}
}

// Counts reports the size of each store, for the health endpoint.
func (s *Store) Counts() (users, products, orders, reviews int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users), len(s.products), len(s.orders), len(s.reviews)
}
