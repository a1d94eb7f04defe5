package models

import "time"

// Review is read-only once recorded; there is no review mutation endpoint.
type Review struct {
	ID        int64     `json:"id"`
	FarmerID  int64     `json:"farmerId"`
	Reviewer  string    `json:"reviewer"`
	Rating    float64   `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}
