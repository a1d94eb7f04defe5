package models

import "time"

// Product is a catalog entry owned by exactly one farmer.
type Product struct {
	ID          int64      `json:"id"`
	FarmerID    int64      `json:"farmerId"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Category    string     `json:"category"`
	Stock       int        `json:"stock"`
	MinStock    int        `json:"minStock"`
	Image       string     `json:"image"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}
