package store

import (
	"time"

	"github.com/akgundogan/farmgate-backend/internal/models"
)

// AddOrder records an order that entered the system externally (seeding,
// integrations). There is no order-creation endpoint.
func (s *Store) AddOrder(o models.Order) models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	o.ID = s.nextOrderID
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now().UTC()
	}
	s.nextOrderID++
	s.orders = append(s.orders, o)
	return o
}

// OrdersByFarmer returns the farmer's orders in insertion order.
func (s *Store) OrdersByFarmer(farmerID int64) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Order, 0)
	for _, o := range s.orders {
		if o.FarmerID == farmerID {
			out = append(out, o)
		}
	}
	return out
}

// UpdateOrderStatus overwrites the status verbatim. No transition validation:
// any string a farmer sends is accepted.
func (s *Store) UpdateOrderStatus(farmerID, id int64, status string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id && s.orders[i].FarmerID == farmerID {
			now := time.Now().UTC()
			s.orders[i].Status = status
			s.orders[i].UpdatedAt = &now
			return s.orders[i], nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}
