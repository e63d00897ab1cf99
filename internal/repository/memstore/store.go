// Package memstore keeps the catalog in process memory. Item state changes
// go through a per-item lock table, mirroring the row lock the Postgres
// repositories take with SELECT ... FOR UPDATE.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/DREXATROLL/muzrent-pro/internal/domain"
)

type Store struct {
	mu           sync.RWMutex
	items        map[string]domain.Item
	rentals      map[string]domain.Rental
	users        map[string]domain.User
	activeByItem map[string]string

	locks       *lockTable
	lockTimeout time.Duration
}

func New(lockTimeout time.Duration) *Store {
	return &Store{
		items:        make(map[string]domain.Item),
		rentals:      make(map[string]domain.Rental),
		users:        make(map[string]domain.User),
		activeByItem: make(map[string]string),
		locks:        newLockTable(),
		lockTimeout:  lockTimeout,
	}
}

func (s *Store) Items() *ItemRepository     { return &ItemRepository{s: s} }
func (s *Store) Rentals() *RentalRepository { return &RentalRepository{s: s} }
func (s *Store) Users() *UserRepository     { return &UserRepository{s: s} }

type ItemRepository struct {
	s *Store
}

func (r *ItemRepository) Create(_ context.Context, item *domain.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.items[item.ID] = *item
	return nil
}

func (r *ItemRepository) GetByID(_ context.Context, id string) (*domain.Item, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	item, ok := r.s.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	return &item, nil
}

func (r *ItemRepository) List(_ context.Context, filter domain.ItemFilter) ([]*domain.Item, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	query := strings.ToLower(filter.Query)
	var res []*domain.Item
	for _, item := range r.s.items {
		if filter.Category != "" && item.Category != filter.Category {
			continue
		}
		if filter.Status != "" && item.Status != filter.Status {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(item.Name), query) {
			continue
		}
		item := item
		res = append(res, &item)
	}

	sort.Slice(res, func(i, j int) bool {
		if !res[i].CreatedAt.Equal(res[j].CreatedAt) {
			return res[i].CreatedAt.Before(res[j].CreatedAt)
		}
		return res[i].ID < res[j].ID
	})
	return res, nil
}

func (r *ItemRepository) SetMaintenance(ctx context.Context, id string, enabled bool) (*domain.Item, error) {
	if !r.s.hasItem(id) {
		return nil, domain.ErrItemNotFound
	}

	release, err := r.s.lockItem(ctx, id)
	if err != nil {
		return nil, err
	}
	defer release()

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	item, ok := r.s.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	if item.Status == domain.ItemStatusRented {
		return nil, domain.ErrItemRented
	}

	target := domain.ItemStatusAvailable
	if enabled {
		target = domain.ItemStatusMaintenance
	}
	if item.Status != target {
		item.Status = target
		item.UpdatedAt = time.Now().UTC()
		r.s.items[id] = item
	}
	return &item, nil
}

type RentalRepository struct {
	s *Store
}

func (r *RentalRepository) Book(ctx context.Context, rental *domain.Rental) (*domain.Item, error) {
	if !r.s.hasItem(rental.ItemID) {
		return nil, domain.ErrItemNotFound
	}

	release, err := r.s.lockItem(ctx, rental.ItemID)
	if err != nil {
		return nil, err
	}
	defer release()

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	item, ok := r.s.items[rental.ItemID]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	if item.Status != domain.ItemStatusAvailable {
		return nil, domain.ErrItemUnavailable
	}
	if _, taken := r.s.activeByItem[item.ID]; taken {
		return nil, domain.ErrItemUnavailable
	}

	item.Status = domain.ItemStatusRented
	item.UpdatedAt = time.Now().UTC()
	rental.Active = true

	r.s.items[item.ID] = item
	r.s.rentals[rental.ID] = *rental
	r.s.activeByItem[item.ID] = rental.ID

	return &item, nil
}

func (r *RentalRepository) Cancel(ctx context.Context, rentalID, userID string) (*domain.Rental, *domain.Item, error) {
	r.s.mu.RLock()
	current, ok := r.s.rentals[rentalID]
	r.s.mu.RUnlock()
	if !ok || current.UserID != userID {
		return nil, nil, domain.ErrRentalNotFound
	}

	release, err := r.s.lockItem(ctx, current.ItemID)
	if err != nil {
		return nil, nil, err
	}
	defer release()

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rental := r.s.rentals[rentalID]
	if !rental.Active {
		return nil, nil, domain.ErrRentalNotActive
	}
	item, ok := r.s.items[rental.ItemID]
	if !ok {
		return nil, nil, domain.ErrItemNotFound
	}

	end := time.Now().UTC().Truncate(24 * time.Hour)
	total := domain.RentalDays(rental.StartDate, end) * item.DailyPriceCents
	rental.Active = false
	rental.EndDate = &end
	rental.TotalPriceCents = &total

	item.Status = domain.ItemStatusAvailable
	item.UpdatedAt = time.Now().UTC()

	r.s.rentals[rental.ID] = rental
	r.s.items[item.ID] = item
	delete(r.s.activeByItem, item.ID)

	return &rental, &item, nil
}

func (r *RentalRepository) ListByUser(_ context.Context, userID string) ([]*domain.Rental, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var res []*domain.Rental
	for _, rt := range r.s.rentals {
		if rt.UserID != userID {
			continue
		}
		rt := rt
		res = append(res, &rt)
	}

	sort.Slice(res, func(i, j int) bool {
		return res[i].CreatedAt.After(res[j].CreatedAt)
	})
	return res, nil
}

// Reconcile compares every item with the active rental index, taking each
// item lock in turn.
func (r *RentalRepository) Reconcile(ctx context.Context) ([]domain.StatusFix, error) {
	r.s.mu.RLock()
	ids := make([]string, 0, len(r.s.items))
	for id := range r.s.items {
		ids = append(ids, id)
	}
	r.s.mu.RUnlock()
	sort.Strings(ids)

	var fixes []domain.StatusFix
	for _, id := range ids {
		fix, err := r.reconcileItem(ctx, id)
		if err != nil {
			return fixes, err
		}
		if fix != nil {
			fixes = append(fixes, *fix)
		}
	}
	return fixes, nil
}

func (r *RentalRepository) reconcileItem(ctx context.Context, id string) (*domain.StatusFix, error) {
	release, err := r.s.lockItem(ctx, id)
	if err != nil {
		return nil, err
	}
	defer release()

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	item := r.s.items[id]
	_, active := r.s.activeByItem[id]

	var want domain.ItemStatus
	switch {
	case active && item.Status != domain.ItemStatusRented:
		want = domain.ItemStatusRented
	case !active && item.Status == domain.ItemStatusRented:
		want = domain.ItemStatusAvailable
	default:
		return nil, nil
	}

	fix := &domain.StatusFix{ItemID: id, From: item.Status, To: want}
	item.Status = want
	item.UpdatedAt = time.Now().UTC()
	r.s.items[id] = item
	return fix, nil
}

type UserRepository struct {
	s *Store
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Username == user.Username {
			return domain.ErrUsernameTaken
		}
	}
	r.s.users[user.ID] = *user
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (r *UserRepository) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) List(_ context.Context) ([]*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res := make([]*domain.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		u := u
		res = append(res, &u)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Username < res[j].Username })
	return res, nil
}

// hasItem keeps unknown ids out of the lock table.
func (s *Store) hasItem(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.items[id]
	return ok
}

func (s *Store) lockItem(ctx context.Context, id string) (func(), error) {
	return s.locks.acquire(ctx, id, s.lockTimeout)
}
