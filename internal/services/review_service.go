package services

import (
	"github.com/akgundogan/farmgate-backend/internal/models"
	"github.com/akgundogan/farmgate-backend/internal/store"
)

type ReviewService struct {
	store *store.Store
}

func NewReviewService(st *store.Store) *ReviewService {
	return &ReviewService{store: st}
}

func (s *ReviewService) ListByFarmer(farmerID int64) []models.Review {
	return s.store.ReviewsByFarmer(farmerID)
}
