package domain

import "time"

type Rental struct {
	ID        string     `json:"id"`
	ItemID    string     `json:"item_id"`
	UserID    string     `json:"user_id"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Active    bool       `json:"active"`
	// TotalPriceCents is filled in when the rental is closed.
	TotalPriceCents *int64    `json:"total_price_cents"`
	CreatedAt       time.Time `json:"created_at"`
}

// RentalDays counts billable days between start and end, both inclusive.
func RentalDays(start, end time.Time) int64 {
	days := int64(end.Truncate(24*time.Hour).Sub(start.Truncate(24*time.Hour)) / (24 * time.Hour))
	if days < 0 {
		return 1
	}
	return days + 1
}

// StatusFix is one correction made by the status reconciler.
type StatusFix struct {
	ItemID string     `json:"item_id"`
	From   ItemStatus `json:"from"`
	To     ItemStatus `json:"to"`
}
