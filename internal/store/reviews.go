package store

import (
	"time"

	"github.com/akgundogan/farmgate-backend/internal/models"
)

// AddReview records a review from outside this service. Reviews are read-only
// through the API.
func (s *Store) AddReview(r models.Review) models.Review {
	s.mu.Lock()
	defer s.mu.Unlock()

	r.ID = s.nextReviewID
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	s.nextReviewID++
	s.reviews = append(s.reviews, r)
	return r
}

// ReviewsByFarmer returns the farmer's reviews in insertion order.
func (s *Store) ReviewsByFarmer(farmerID int64) []models.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Review, 0)
	for _, r := range s.reviews {
		if r.FarmerID == farmerID {
			out = append(out, r)
		}
	}
	return out
}

// FarmerSnapshot returns the farmer's products, orders, and reviews under a
// single read lock so dashboard figures come from one consistent view.
func (s *Store) FarmerSnapshot(farmerID int64) ([]models.Product, []models.Order, []models.Review) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]models.Product, 0)
	for _, p := range s.products {
		if p.FarmerID == farmerID {
			products = append(products, p)
		}
	}
	orders := make([]models.Order, 0)
	for _, o := range s.orders {
		if o.FarmerID == farmerID {
			orders = append(orders, o)
		}
	}
	reviews := make([]models.Review, 0)
	for _, r := range s.reviews {
		if r.FarmerID == farmerID {
			reviews = append(reviews, r)
		}
	}
	return products, orders, reviews
}
