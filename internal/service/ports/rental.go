package ports

import (
	"context"

	"github.com/DREXATROLL/muzrent-pro/internal/domain"
)

// RentalRepo owns the locking transactions. Book and Cancel must run as one
// atomic unit each and must not retry internally.
type RentalRepo interface {
	Book(ctx context.Context, rental *domain.Rental) (*domain.Item, error)
	Cancel(ctx context.Context, rentalID, userID string) (*domain.Rental, *domain.Item, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Rental, error)
	Reconcile(ctx context.Context) ([]domain.StatusFix, error)
}
