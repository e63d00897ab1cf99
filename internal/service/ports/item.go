package ports

import (
	"context"

	"github.com/DREXATROLL/muzrent-pro/internal/domain"
)

type ItemRepo interface {
	Create(ctx context.Context, item *domain.Item) error
	GetByID(ctx context.Context, id string) (*domain.Item, error)
	List(ctx context.Context, filter domain.ItemFilter) ([]*domain.Item, error)
	SetMaintenance(ctx context.Context, id string, enabled bool) (*domain.Item, error)
}
