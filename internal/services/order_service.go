package services

import (
	"github.com/akgundogan/farmgate-backend/internal/models"
	"github.com/akgundogan/farmgate-backend/internal/store"
)

type OrderService struct {
	store *store.Store
}

func NewOrderService(st *store.Store) *OrderService {
	return &OrderService{store: st}
}

func (s *OrderService) ListByFarmer(farmerID int64) []models.Order {
	return s.store.OrdersByFarmer(farmerID)
}

func (s *OrderService) UpdateStatus(farmerID, id int64, status string) (models.Order, error) {
	return s.store.UpdateOrderStatus(farmerID, id, status)
}
