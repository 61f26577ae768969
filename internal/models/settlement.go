package models

import "time"

// Settlement marks a boat's payable for one week (identified by its
// Sunday start date) as paid out.
type Settlement struct {
	ID          int       `json:"id"`
	BoatID      int       `json:"boat_id"`
	WeekStart   time.Time `json:"week_start"`
	SettledByID int       `json:"settled_by_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateSettlementRequest represents the request body for settling a
// boat's week. Date may be any day inside the target week.
type CreateSettlementRequest struct {
	BoatID int    `json:"boat_id"`
	Date   string `json:"date"` // YYYY-MM-DD, defaults to today
}
