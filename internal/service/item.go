package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/DREXATROLL/muzrent-pro/internal/domain"
	"github.com/DREXATROLL/muzrent-pro/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type ItemService struct {
	itemRepo ports.ItemRepo
	logger   logger.Logger
}

func NewItemService(itemRepo ports.ItemRepo, logger logger.Logger) *ItemService {
	return &ItemService{
		itemRepo: itemRepo,
		logger:   logger,
	}
}

func (s *ItemService) Create(ctx context.Context, input domain.CreateItemInput) (*domain.Item, error) {
	name := strings.TrimSpace(input.Name)
	category := strings.TrimSpace(input.Category)

	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if category == "" {
		return nil, fmt.Errorf("%w: category is required", domain.ErrValidation)
	}
	if input.DailyPriceCents < 0 {
		return nil, fmt.Errorf("%w: daily price must not be negative", domain.ErrValidation)
	}

	now := time.Now().UTC()
	item := &domain.Item{
		ID:              uuid.New().String(),
		Name:            name,
		Category:        category,
		DailyPriceCents: input.DailyPriceCents,
		Status:          domain.ItemStatusAvailable,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}

	s.logger.Info("item created",
		logger.String("item_id", item.ID),
		logger.String("category", item.Category),
	)

	return item, nil
}

func (s *ItemService) Get(ctx context.Context, id string) (*domain.Item, error) {
	return s.itemRepo.GetByID(ctx, id)
}

func (s *ItemService) List(ctx context.Context, filter domain.ItemFilter) ([]*domain.Item, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, filter.Status)
	}
	return s.itemRepo.List(ctx, filter)
}

// SetMaintenance takes an idle item out of circulation or puts it back.
func (s *ItemService) SetMaintenance(ctx context.Context, id string, enabled bool) (*domain.Item, error) {
	item, err := s.itemRepo.SetMaintenance(ctx, id, enabled)
	if err != nil {
		return nil, fmt.Errorf("set maintenance: %w", err)
	}

	s.logger.Info("item maintenance updated",
		logger.String("item_id", id),
		logger.String("status", string(item.Status)),
	)

	return item, nil
}
