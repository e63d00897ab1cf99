package dto

import (
	"time"

	"github.com/DREXATROLL/muzrent-pro/internal/domain"
)

const dateLayout = "2006-01-02"

type ItemResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Category        string `json:"category"`
	DailyPriceCents int64  `json:"daily_price_cents"`
	Status          string `json:"status"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

type RentalResponse struct {
	ID              string  `json:"id"`
	ItemID          string  `json:"item_id"`
	UserID          string  `json:"user_id"`
	StartDate       string  `json:"start_date"`
	EndDate         *string `json:"end_date,omitempty"`
	Active          bool    `json:"active"`
	TotalPriceCents *int64  `json:"total_price_cents,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

type BookingResponse struct {
	Message string         `json:"message"`
	Rental  RentalResponse `json:"rental"`
}

type CancelResponse struct {
	Message string         `json:"message"`
	Rental  RentalResponse `json:"rental"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToItemResponse(i *domain.Item) ItemResponse {
	return ItemResponse{
		ID:              i.ID,
		Name:            i.Name,
		Category:        i.Category,
		DailyPriceCents: i.DailyPriceCents,
		Status:          string(i.Status),
		CreatedAt:       i.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       i.UpdatedAt.Format(time.RFC3339),
	}
}

func ToRentalResponse(r *domain.Rental) RentalResponse {
	resp := RentalResponse{
		ID:              r.ID,
		ItemID:          r.ItemID,
		UserID:          r.UserID,
		StartDate:       r.StartDate.Format(dateLayout),
		Active:          r.Active,
		TotalPriceCents: r.TotalPriceCents,
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
	}
	if r.EndDate != nil {
		end := r.EndDate.Format(dateLayout)
		resp.EndDate = &end
	}
	return resp
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}
