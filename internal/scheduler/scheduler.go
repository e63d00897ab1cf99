package scheduler

import (
	"context"
	"time"

	"github.com/DREXATROLL/muzrent-pro/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type statusReconciler interface {
	Reconcile(ctx context.Context) ([]domain.StatusFix, error)
}

// Scheduler periodically repairs item statuses that drifted from the
// rentals table.
type Scheduler struct {
	reconciler statusReconciler
	interval   time.Duration
	logger     logger.Logger
}

func New(
	reconciler statusReconciler,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		reconciler: reconciler,
		interval:   interval,
		logger:     logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("status reconciler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("status reconciler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	fixes, err := s.reconciler.Reconcile(ctx)
	if err != nil {
		s.logger.Error("failed to reconcile item statuses",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, f := range fixes {
		s.logger.Warn("item status repaired",
			logger.String("item_id", f.ItemID),
			logger.String("from", string(f.From)),
			logger.String("to", string(f.To)),
		)
	}
}
