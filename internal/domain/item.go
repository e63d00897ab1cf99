package domain

import "time"

type ItemStatus string

const (
	ItemStatusAvailable   ItemStatus = "available"
	ItemStatusRented      ItemStatus = "rented"
	ItemStatusMaintenance ItemStatus = "maintenance"
)

func (s ItemStatus) Valid() bool {
	switch s {
	case ItemStatusAvailable, ItemStatusRented, ItemStatusMaintenance:
		return true
	default:
		return false
	}
}

type Item struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Category        string     `json:"category"`
	DailyPriceCents int64      `json:"daily_price_cents"`
	Status          ItemStatus `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type CreateItemInput struct {
	Name            string
	Category        string
	DailyPriceCents int64
}

// ItemFilter narrows catalog listings. Zero values match everything.
type ItemFilter struct {
	Category string
	Status   ItemStatus
	Query    string
}
