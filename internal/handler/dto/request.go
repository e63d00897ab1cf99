package dto

type CreateItemRequest struct {
	Name            string `json:"name" binding:"required"`
	Category        string `json:"category" binding:"required"`
	DailyPriceCents int64  `json:"daily_price_cents" binding:"gte=0"`
}

type MaintenanceRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

type ListItemsQuery struct {
	Category string `form:"category"`
	Status   string `form:"status"`
	Query    string `form:"q"`
}

type CreateUserRequest struct {
	Username       string `json:"username" binding:"required"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}
