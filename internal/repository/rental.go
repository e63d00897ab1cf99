package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/DREXATROLL/muzrent-pro/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type RentalRepository struct {
	db          *dbpg.DB
	strategy    retry.Strategy
	lockTimeout time.Duration
}

func NewRentalRepo(db *dbpg.DB, lockTimeout time.Duration) *RentalRepository {
	return &RentalRepository{
		db:          db,
		strategy:    defaultStrategy(),
		lockTimeout: lockTimeout,
	}
}

// Book locks the item row, checks that it is available, marks it rented and
// inserts the rental in one transaction. It returns the item as it was
// committed. Failures never leave partial writes and are never retried here.
func (r *RentalRepository) Book(ctx context.Context, rental *domain.Rental) (*domain.Item, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, txError("begin tx", err)
	}
	defer tx.Rollback()

	if err = setLockTimeout(ctx, tx, r.lockTimeout); err != nil {
		return nil, err
	}

	// Блокируем строку предмета до конца транзакции
	lockQuery := `SELECT id, name, category, daily_price_cents, status, created_at, updated_at
				  FROM items
				  WHERE id = $1
				  FOR UPDATE`
	item, err := scanItem(tx.QueryRowContext(ctx, lockQuery, rental.ItemID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, txError("lock item", err)
	}

	if item.Status != domain.ItemStatusAvailable {
		return nil, domain.ErrItemUnavailable
	}

	now := time.Now().UTC()
	if _, err = tx.ExecContext(ctx,
		`UPDATE items SET status = $2, updated_at = $3 WHERE id = $1`,
		item.ID, domain.ItemStatusRented, now,
	); err != nil {
		return nil, txError("mark item rented", err)
	}

	insertQuery := `INSERT INTO rentals (id, item_id, user_id, start_date, active, created_at)
					VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err = tx.ExecContext(ctx, insertQuery,
		rental.ID, rental.ItemID, rental.UserID,
		rental.StartDate, true, rental.CreatedAt,
	); err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrItemUnavailable
		}
		return nil, txError("insert rental", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, txError("commit", err)
	}

	rental.Active = true
	item.Status = domain.ItemStatusRented
	item.UpdatedAt = now
	return item, nil
}

// Cancel closes an active rental owned by userID and frees its item. Rentals
// owned by someone else are reported as not found.
func (r *RentalRepository) Cancel(ctx context.Context, rentalID, userID string) (*domain.Rental, *domain.Item, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, txError("begin tx", err)
	}
	defer tx.Rollback()

	if err = setLockTimeout(ctx, tx, r.lockTimeout); err != nil {
		return nil, nil, err
	}

	// FOR UPDATE по join блокирует и аренду, и предмет
	lockQuery := `SELECT r.id, r.item_id, r.user_id, r.start_date, r.active, r.created_at,
				         i.id, i.name, i.category, i.daily_price_cents, i.status, i.created_at, i.updated_at
				  FROM rentals r
				  JOIN items i ON i.id = r.item_id
				  WHERE r.id = $1
				  FOR UPDATE`
	var (
		rental domain.Rental
		item   domain.Item
	)
	err = tx.QueryRowContext(ctx, lockQuery, rentalID).Scan(
		&rental.ID, &rental.ItemID, &rental.UserID, &rental.StartDate, &rental.Active, &rental.CreatedAt,
		&item.ID, &item.Name, &item.Category, &item.DailyPriceCents, &item.Status, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, domain.ErrRentalNotFound
		}
		return nil, nil, txError("lock rental", err)
	}

	if rental.UserID != userID {
		return nil, nil, domain.ErrRentalNotFound
	}
	if !rental.Active {
		return nil, nil, domain.ErrRentalNotActive
	}

	end := today()
	total := domain.RentalDays(rental.StartDate, end) * item.DailyPriceCents

	if _, err = tx.ExecContext(ctx,
		`UPDATE rentals SET active = false, end_date = $2, total_price_cents = $3 WHERE id = $1`,
		rental.ID, end, total,
	); err != nil {
		return nil, nil, txError("close rental", err)
	}

	now := time.Now().UTC()
	if _, err = tx.ExecContext(ctx,
		`UPDATE items SET status = $2, updated_at = $3 WHERE id = $1`,
		item.ID, domain.ItemStatusAvailable, now,
	); err != nil {
		return nil, nil, txError("release item", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, nil, txError("commit", err)
	}

	rental.Active = false
	rental.EndDate = &end
	rental.TotalPriceCents = &total
	item.Status = domain.ItemStatusAvailable
	item.UpdatedAt = now
	return &rental, &item, nil
}

func (r *RentalRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Rental, error) {
	query := `SELECT id, item_id, user_id, start_date, end_date, active, total_price_cents, created_at
			  FROM rentals
			  WHERE user_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list rentals by user: %w", err)
	}
	defer rows.Close()

	var res []*domain.Rental
	for rows.Next() {
		var (
			rt    domain.Rental
			end   sql.NullTime
			total sql.NullInt64
		)
		if err = rows.Scan(
			&rt.ID, &rt.ItemID, &rt.UserID, &rt.StartDate,
			&end, &rt.Active, &total, &rt.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan rental: %w", err)
		}
		if end.Valid {
			rt.EndDate = &end.Time
		}
		if total.Valid {
			rt.TotalPriceCents = &total.Int64
		}
		res = append(res, &rt)
	}

	return res, rows.Err()
}

// Reconcile repairs items whose status disagrees with their rentals. It runs
// at repeatable read so that a booking committed mid-way surfaces as a
// serialization failure instead of a wrong fix.
func (r *RentalRepository) Reconcile(ctx context.Context) ([]domain.StatusFix, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		return nil, txError("begin tx", err)
	}
	defer tx.Rollback()

	if err = setLockTimeout(ctx, tx, r.lockTimeout); err != nil {
		return nil, err
	}

	releaseQuery := `WITH stale AS (
					     SELECT i.id, i.status FROM items i
					     WHERE i.status = $1
					       AND NOT EXISTS (SELECT 1 FROM rentals r WHERE r.item_id = i.id AND r.active)
					     FOR UPDATE
					 )
					 UPDATE items SET status = $2, updated_at = now()
					 FROM stale
					 WHERE items.id = stale.id
					 RETURNING items.id, stale.status`
	released, err := collectFixes(ctx, tx, releaseQuery, domain.ItemStatusAvailable,
		domain.ItemStatusRented, domain.ItemStatusAvailable)
	if err != nil {
		return nil, err
	}

	occupyQuery := `WITH stale AS (
					    SELECT i.id, i.status FROM items i
					    WHERE i.status <> $1
					      AND EXISTS (SELECT 1 FROM rentals r WHERE r.item_id = i.id AND r.active)
					    FOR UPDATE
					)
					UPDATE items SET status = $2, updated_at = now()
					FROM stale
					WHERE items.id = stale.id
					RETURNING items.id, stale.status`
	occupied, err := collectFixes(ctx, tx, occupyQuery, domain.ItemStatusRented,
		domain.ItemStatusRented, domain.ItemStatusRented)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, txError("commit", err)
	}

	return append(released, occupied...), nil
}

func collectFixes(
	ctx context.Context,
	tx *sql.Tx,
	query string,
	to domain.ItemStatus,
	args ...interface{},
) ([]domain.StatusFix, error) {
	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, txError("reconcile items", err)
	}
	defer rows.Close()

	var res []domain.StatusFix
	for rows.Next() {
		fix := domain.StatusFix{To: to}
		if err = rows.Scan(&fix.ItemID, &fix.From); err != nil {
			return nil, fmt.Errorf("scan status fix: %w", err)
		}
		res = append(res, fix)
	}
	if err = rows.Err(); err != nil {
		return nil, txError("reconcile items", err)
	}

	return res, nil
}
