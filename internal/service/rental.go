package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DREXATROLL/muzrent-pro/internal/domain"
	"github.com/DREXATROLL/muzrent-pro/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type RentalService struct {
	rentalRepo ports.RentalRepo
	userRepo   ports.UserRepo
	notifier   ports.RentalNotifier
	metrics    ports.RentalMetrics
	logger     logger.Logger
}

func NewRentalService(
	rentalRepo ports.RentalRepo,
	userRepo ports.UserRepo,
	notifier ports.RentalNotifier,
	metrics ports.RentalMetrics,
	logger logger.Logger,
) *RentalService {
	return &RentalService{
		rentalRepo: rentalRepo,
		userRepo:   userRepo,
		notifier:   notifier,
		metrics:    metrics,
		logger:     logger,
	}
}

// Book reserves an available item for userID. A taken item yields
// domain.ErrItemUnavailable, a lock wait past the limit domain.ErrTransient.
func (s *RentalService) Book(ctx context.Context, itemID, userID string) (*domain.Rental, error) {
	user, err := s.currentUser(ctx, userID)
	if err != nil {
		s.metrics.RecordBooking(err)
		return nil, err
	}

	now := time.Now().UTC()
	rental := &domain.Rental{
		ID:        uuid.New().String(),
		ItemID:    itemID,
		UserID:    userID,
		StartDate: now.Truncate(24 * time.Hour),
		CreatedAt: now,
	}

	item, err := s.rentalRepo.Book(ctx, rental)
	s.metrics.RecordBooking(err)
	if err != nil {
		s.logFailure(ctx, "booking failed", err, "item_id", itemID, userID)
		return nil, fmt.Errorf("book item: %w", err)
	}

	s.logger.Info("item booked",
		logger.String("rental_id", rental.ID),
		logger.String("item_id", itemID),
		logger.String("user_id", userID),
	)

	go s.notifier.NotifyRentalBooked(context.WithoutCancel(ctx), user, item, rental)

	return rental, nil
}

// Cancel closes the caller's active rental and frees the item.
func (s *RentalService) Cancel(ctx context.Context, rentalID, userID string) (*domain.Rental, error) {
	user, err := s.currentUser(ctx, userID)
	if err != nil {
		s.metrics.RecordCancellation(err)
		return nil, err
	}

	rental, item, err := s.rentalRepo.Cancel(ctx, rentalID, userID)
	s.metrics.RecordCancellation(err)
	if err != nil {
		s.logFailure(ctx, "cancellation failed", err, "rental_id", rentalID, userID)
		return nil, fmt.Errorf("cancel rental: %w", err)
	}

	s.logger.Info("rental cancelled",
		logger.String("rental_id", rentalID),
		logger.String("item_id", item.ID),
		logger.String("user_id", userID),
	)

	go s.notifier.NotifyRentalCancelled(context.WithoutCancel(ctx), user, item, rental)

	return rental, nil
}

func (s *RentalService) ListByUser(ctx context.Context, userID string) ([]*domain.Rental, error) {
	return s.rentalRepo.ListByUser(ctx, userID)
}

func (s *RentalService) Reconcile(ctx context.Context) ([]domain.StatusFix, error) {
	fixes, err := s.rentalRepo.Reconcile(ctx)
	if err != nil {
		return nil, fmt.Errorf("reconcile: %w", err)
	}

	if len(fixes) > 0 {
		s.metrics.RecordStatusFixes(len(fixes))
		s.logger.Warn("item statuses repaired",
			logger.Int("count", len(fixes)),
		)
	}

	return fixes, nil
}

// currentUser resolves the authenticated subject. A verified token whose
// user no longer exists is refused.
func (s *RentalService) currentUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: unknown user", domain.ErrForbidden)
		}
		return nil, fmt.Errorf("check user: %w", err)
	}
	return user, nil
}

// logFailure keeps expected outcomes (not found, taken) out of error logs.
func (s *RentalService) logFailure(ctx context.Context, msg string, err error, key, id, userID string) {
	level := logger.ErrorLevel
	switch {
	case errors.Is(err, domain.ErrTransient):
		level = logger.WarnLevel
	case errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrRentalNotFound),
		errors.Is(err, domain.ErrItemUnavailable):
		level = logger.DebugLevel
	}

	s.logger.LogAttrs(ctx, level, msg,
		logger.String(key, id),
		logger.String("user_id", userID),
		logger.String("error", err.Error()),
	)
}
