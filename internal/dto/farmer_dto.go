package dto

import "github.com/akgundogan/farmgate-backend/internal/models"

type ProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
	MinStock    int     `json:"minStock"`
	Image       string  `json:"image"`
}

type OrderStatusRequest struct {
	Status string `json:"status"`
}

type DashboardResponse struct {
	TotalProducts int             `json:"totalProducts"`
	TotalOrders   int             `json:"totalOrders"`
	TotalRevenue  float64         `json:"totalRevenue"`
	AverageRating float64         `json:"averageRating"`
	RecentOrders  []models.Order  `json:"recentOrders"`
	RecentReviews []models.Review `json:"recentReviews"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Users     int    `json:"users"`
	Products  int    `json:"products"`
	Orders    int    `json:"orders"`
	Reviews   int    `json:"reviews"`
}
