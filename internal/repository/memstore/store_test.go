package memstore

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/DREXATROLL/muzrent-pro/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedItem(t *testing.T, s *Store, status domain.ItemStatus) *domain.Item {
	t.Helper()
	now := time.Now().UTC()
	item := &domain.Item{
		ID:              uuid.New().String(),
		Name:            "Yamaha P-125",
		Category:        "keys",
		DailyPriceCents: 1200,
		Status:          status,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	require.NoError(t, s.Items().Create(context.Background(), item))
	return item
}

func newRental(itemID, userID string) *domain.Rental {
	return &domain.Rental{
		ID:        uuid.New().String(),
		ItemID:    itemID,
		UserID:    userID,
		StartDate: time.Now().UTC().Truncate(24 * time.Hour),
		CreatedAt: time.Now().UTC(),
	}
}

func TestBook_ConcurrentBookersExactlyOneWins(t *testing.T) {
	s := New(time.Second)
	item := seedItem(t, s, domain.ItemStatusAvailable)

	const bookers = 50
	var (
		wg        sync.WaitGroup
		wins      atomic.Int32
		conflicts atomic.Int32
		start     = make(chan struct{})
	)
	for i := 0; i < bookers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			<-start
			_, err := s.Rentals().Book(context.Background(), newRental(item.ID, fmt.Sprintf("user-%d", n)))
			switch {
			case err == nil:
				wins.Add(1)
			case errors.Is(err, domain.ErrItemUnavailable):
				conflicts.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
	assert.Equal(t, int32(bookers-1), conflicts.Load())

	got, err := s.Items().GetByID(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ItemStatusRented, got.Status)
}

func TestBook_UnknownItem(t *testing.T) {
	s := New(time.Second)

	_, err := s.Rentals().Book(context.Background(), newRental("missing", "u1"))

	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	assert.Empty(t, s.locks.slots)
}

func TestBook_MaintenanceIsUnavailable(t *testing.T) {
	s := New(time.Second)
	item := seedItem(t, s, domain.ItemStatusMaintenance)

	_, err := s.Rentals().Book(context.Background(), newRental(item.ID, "u1"))

	assert.ErrorIs(t, err, domain.ErrItemUnavailable)
}

func TestBook_LockWaitIsBounded(t *testing.T) {
	s := New(50 * time.Millisecond)
	item := seedItem(t, s, domain.ItemStatusAvailable)

	release, err := s.lockItem(context.Background(), item.ID)
	require.NoError(t, err)
	defer release()

	started := time.Now()
	_, err = s.Rentals().Book(context.Background(), newRental(item.ID, "u1"))

	assert.ErrorIs(t, err, domain.ErrTransient)
	assert.Less(t, time.Since(started), time.Second)

	got, err := s.Items().GetByID(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ItemStatusAvailable, got.Status)
}

func TestBook_CancelledContextIsTransient(t *testing.T) {
	s := New(0)
	item := seedItem(t, s, domain.ItemStatusAvailable)

	release, err := s.lockItem(context.Background(), item.ID)
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = s.Rentals().Book(ctx, newRental(item.ID, "u1"))

	assert.ErrorIs(t, err, domain.ErrTransient)
}

func TestBookCancelRoundTrip(t *testing.T) {
	s := New(time.Second)
	item := seedItem(t, s, domain.ItemStatusAvailable)
	ctx := context.Background()

	first := newRental(item.ID, "u1")
	_, err := s.Rentals().Book(ctx, first)
	require.NoError(t, err)

	_, _, err = s.Rentals().Cancel(ctx, first.ID, "u2")
	assert.ErrorIs(t, err, domain.ErrRentalNotFound)

	closed, freed, err := s.Rentals().Cancel(ctx, first.ID, "u1")
	require.NoError(t, err)
	assert.False(t, closed.Active)
	require.NotNil(t, closed.TotalPriceCents)
	assert.Equal(t, int64(1200), *closed.TotalPriceCents)
	assert.Equal(t, domain.ItemStatusAvailable, freed.Status)

	_, _, err = s.Rentals().Cancel(ctx, first.ID, "u1")
	assert.ErrorIs(t, err, domain.ErrRentalNotActive)

	second := newRental(item.ID, "u2")
	_, err = s.Rentals().Book(ctx, second)
	require.NoError(t, err)

	rentals, err := s.Rentals().ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, rentals, 1)
	assert.False(t, rentals[0].Active)
}

func TestSetMaintenance(t *testing.T) {
	s := New(time.Second)
	ctx := context.Background()
	item := seedItem(t, s, domain.ItemStatusAvailable)

	got, err := s.Items().SetMaintenance(ctx, item.ID, true)
	require.NoError(t, err)
	assert.Equal(t, domain.ItemStatusMaintenance, got.Status)

	got, err = s.Items().SetMaintenance(ctx, item.ID, false)
	require.NoError(t, err)
	assert.Equal(t, domain.ItemStatusAvailable, got.Status)

	_, err = s.Rentals().Book(ctx, newRental(item.ID, "u1"))
	require.NoError(t, err)

	_, err = s.Items().SetMaintenance(ctx, item.ID, true)
	assert.ErrorIs(t, err, domain.ErrItemRented)
}

func TestReconcile(t *testing.T) {
	s := New(time.Second)
	ctx := context.Background()

	stale := seedItem(t, s, domain.ItemStatusRented)
	healthy := seedItem(t, s, domain.ItemStatusAvailable)
	booked := seedItem(t, s, domain.ItemStatusAvailable)

	_, err := s.Rentals().Book(ctx, newRental(booked.ID, "u1"))
	require.NoError(t, err)

	// подменяем статус в обход блокировки
	s.mu.Lock()
	drifted := s.items[booked.ID]
	drifted.Status = domain.ItemStatusMaintenance
	s.items[booked.ID] = drifted
	s.mu.Unlock()

	fixes, err := s.Rentals().Reconcile(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []domain.StatusFix{
		{ItemID: stale.ID, From: domain.ItemStatusRented, To: domain.ItemStatusAvailable},
		{ItemID: booked.ID, From: domain.ItemStatusMaintenance, To: domain.ItemStatusRented},
	}, fixes)

	got, err := s.Items().GetByID(ctx, healthy.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ItemStatusAvailable, got.Status)

	fixes, err = s.Rentals().Reconcile(ctx)
	require.NoError(t, err)
	assert.Empty(t, fixes)
}

func TestItems_ListFilter(t *testing.T) {
	s := New(time.Second)
	ctx := context.Background()

	seedItem(t, s, domain.ItemStatusAvailable)
	seedItem(t, s, domain.ItemStatusMaintenance)

	all, err := s.Items().List(ctx, domain.ItemFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	available, err := s.Items().List(ctx, domain.ItemFilter{Status: domain.ItemStatusAvailable, Query: "yamaha"})
	require.NoError(t, err)
	assert.Len(t, available, 1)

	none, err := s.Items().List(ctx, domain.ItemFilter{Category: "drums"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUsers_UniqueUsername(t *testing.T) {
	s := New(time.Second)
	ctx := context.Background()

	require.NoError(t, s.Users().Create(ctx, &domain.User{ID: "u1", Username: "alice"}))
	assert.ErrorIs(t, s.Users().Create(ctx, &domain.User{ID: "u2", Username: "alice"}), domain.ErrUsernameTaken)

	u, err := s.Users().GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)

	_, err = s.Users().GetByID(ctx, "u2")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestItems_ListQueryIsLiteral(t *testing.T) {
	s := New(time.Second)
	ctx := context.Background()

	seedItem(t, s, domain.ItemStatusAvailable)

	res, err := s.Items().List(ctx, domain.ItemFilter{Query: "_"})
	require.NoError(t, err)
	assert.Empty(t, res)

	res, err = s.Items().List(ctx, domain.ItemFilter{Query: "P-1"})
	require.NoError(t, err)
	assert.Len(t, res, 1)
}
