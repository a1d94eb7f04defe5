package models

import "time"

// Order status is a free-form string; any value a farmer sets is stored verbatim.
type Order struct {
	ID        int64      `json:"id"`
	FarmerID  int64      `json:"farmerId"`
	BuyerName string     `json:"buyerName"`
	ItemCount int        `json:"itemCount"`
	Status    string     `json:"status"`
	Total     float64    `json:"total"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}
