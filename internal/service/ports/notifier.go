package ports

import (
	"context"

	"github.com/DREXATROLL/muzrent-pro/internal/domain"
)

type RentalNotifier interface {
	NotifyRentalBooked(ctx context.Context, user *domain.User, item *domain.Item, rental *domain.Rental)
	NotifyRentalCancelled(ctx context.Context, user *domain.User, item *domain.Item, rental *domain.Rental)
}
