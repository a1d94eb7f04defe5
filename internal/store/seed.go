package store

import (
	"log/slog"

	"github.com/akgundogan/farmgate-backend/internal/models"
)

// SeedDemoData loads a handful of orders and reviews for the first farmer
// account (user id 1). Orders and reviews enter the system externally; this
// seeder stands in for that path during demos.
func SeedDemoData(s *Store) {
	const farmerID = 1

	demoOrders := []models.Order{
		{FarmerID: farmerID, BuyerName: "Elif Demir", ItemCount: 3, Status: "pending", Total: 42.50},
		{FarmerID: farmerID, BuyerName: "Mark Jensen", ItemCount: 1, Status: "confirmed", Total: 12.00},
		{FarmerID: farmerID, BuyerName: "Sofia Rossi", ItemCount: 5, Status: "delivered", Total: 87.25},
		{FarmerID: farmerID, BuyerName: "Tom Becker", ItemCount: 2, Status: "pending", Total: 19.90},
		{FarmerID: farmerID, BuyerName: "Ana Costa", ItemCount: 4, Status: "shipped", Total: 55.10},
		{FarmerID: farmerID, BuyerName: "Liam O'Brien", ItemCount: 1, Status: "pending", Total: 8.75},
	}
	for _, o := range demoOrders {
		s.AddOrder(o)
	}

	demoReviews := []models.Review{
		{FarmerID: farmerID, Reviewer: "Elif Demir", Rating: 5, Comment: "Tomatoes were incredibly fresh."},
		{FarmerID: farmerID, Reviewer: "Mark Jensen", Rating: 4, Comment: "Good eggs, slow pickup."},
		{FarmerID: farmerID, Reviewer: "Sofia Rossi", Rating: 5, Comment: "Best honey at the market."},
	}
	for _, r := range demoReviews {
		s.AddReview(r)
	}

	slog.Info("demo data seeded", "orders", len(demoOrders), "reviews", len(demoReviews))
}
