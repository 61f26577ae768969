package models

import "time"

// Lot is one recorded catch transaction. The three monetary fields are
// derived from weight, price and commission rate at creation time and
// stored as-is; they are never recomputed afterwards.
type Lot struct {
	ID               int       `json:"id"`
	BoatID           int       `json:"boat_id"`
	Species          string    `json:"species"`
	Weight           float64   `json:"weight"`           // kg
	PricePerUnit     float64   `json:"price_per_unit"`   // currency per kg
	CommissionRate   float64   `json:"commission_rate"`  // percentage, 0-100
	TotalAmount      float64   `json:"total_amount"`
	CommissionAmount float64   `json:"commission_amount"`
	PayableAmount    float64   `json:"payable_amount"`
	CreatedAt        time.Time `json:"created_at"`
}

// CreateLotRequest represents the request body for logging a lot.
// CommissionRate is optional and defaults to 5 percent.
type CreateLotRequest struct {
	BoatID         int      `json:"boat_id"`
	Species        string   `json:"species"`
	Weight         float64  `json:"weight"`
	PricePerUnit   float64  `json:"price_per_unit"`
	CommissionRate *float64 `json:"commission_rate,omitempty"`
}
