package services

import (
	"github.com/akgundogan/farmgate-backend/internal/dto"
	"github.com/akgundogan/farmgate-backend/internal/store"
)

const recentLimit = 5

type DashboardService struct {
	store *store.Store
}

func NewDashboardService(st *store.Store) *DashboardService {
	return &DashboardService{store: st}
}

// Stats aggregates one farmer's figures from a single consistent snapshot.
// "Recent" means last appended, not last updated.
func (s *DashboardService) Stats(farmerID int64) *dto.DashboardResponse {
	products, orders, reviews := s.store.FarmerSnapshot(farmerID)

	var revenue float64
	for _, o := range orders {
		revenue += o.Total
	}

	var avgRating float64
	if len(reviews) > 0 {
		var sum float64
		for _, r := range reviews {
			sum += r.Rating
		}
		avgRating = sum / float64(len(reviews))
	}

	return &dto.DashboardResponse{
		TotalProducts: len(products),
		TotalOrders:   len(orders),
		TotalRevenue:  revenue,
		AverageRating: avgRating,
		RecentOrders:  orders[max(0, len(orders)-recentLimit):],
		RecentReviews: reviews[max(0, len(reviews)-recentLimit):],
	}
}
