package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/DREXATROLL/muzrent-pro/internal/domain"
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const (
	dialectPostgres = "postgres"
	tableItems      = "items"
)

// likeEscaper makes a name query match literally inside ILIKE.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

var itemColumns = []interface{}{
	"id", "name", "category", "daily_price_cents", "status", "created_at", "updated_at",
}

type ItemRepository struct {
	db          *dbpg.DB
	strategy    retry.Strategy
	lockTimeout time.Duration
}

func NewItemRepo(db *dbpg.DB, lockTimeout time.Duration) *ItemRepository {
	return &ItemRepository{
		db:          db,
		strategy:    defaultStrategy(),
		lockTimeout: lockTimeout,
	}
}

func (r *ItemRepository) Create(ctx context.Context, item *domain.Item) error {
	query := `INSERT INTO items (id, name, category, daily_price_cents, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		item.ID, item.Name, item.Category, item.DailyPriceCents,
		item.Status, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}

	return nil
}

func (r *ItemRepository) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	query := `SELECT id, name, category, daily_price_cents, status, created_at, updated_at
			  FROM items
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("scan item: %w", err)
	}

	return item, nil
}

func (r *ItemRepository) List(ctx context.Context, filter domain.ItemFilter) ([]*domain.Item, error) {
	query, args, err := buildListItemsQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var res []*domain.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		res = append(res, item)
	}

	return res, rows.Err()
}

// SetMaintenance moves an item between available and maintenance under the
// same row lock the booking path takes. Rented items are refused.
func (r *ItemRepository) SetMaintenance(ctx context.Context, id string, enabled bool) (*domain.Item, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, txError("begin tx", err)
	}
	defer tx.Rollback()

	if err = setLockTimeout(ctx, tx, r.lockTimeout); err != nil {
		return nil, err
	}

	lockQuery := `SELECT id, name, category, daily_price_cents, status, created_at, updated_at
				  FROM items
				  WHERE id = $1
				  FOR UPDATE`
	item, err := scanItem(tx.QueryRowContext(ctx, lockQuery, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, txError("lock item", err)
	}

	if item.Status == domain.ItemStatusRented {
		return nil, domain.ErrItemRented
	}

	target := domain.ItemStatusAvailable
	if enabled {
		target = domain.ItemStatusMaintenance
	}
	if item.Status == target {
		return item, nil
	}

	now := time.Now().UTC()
	if _, err = tx.ExecContext(ctx,
		`UPDATE items SET status = $2, updated_at = $3 WHERE id = $1`,
		id, target, now,
	); err != nil {
		return nil, txError("update item status", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, txError("commit", err)
	}

	item.Status = target
	item.UpdatedAt = now
	return item, nil
}

func buildListItemsQuery(filter domain.ItemFilter) (string, []interface{}, error) {
	ds := goqu.Dialect(dialectPostgres).
		From(tableItems).
		Select(itemColumns...).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Prepared(true)

	if filter.Category != "" {
		ds = ds.Where(goqu.C("category").Eq(filter.Category))
	}
	if filter.Status != "" {
		ds = ds.Where(goqu.C("status").Eq(string(filter.Status)))
	}
	if filter.Query != "" {
		ds = ds.Where(goqu.C("name").ILike("%" + likeEscaper.Replace(filter.Query) + "%"))
	}

	return ds.ToSQL()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanItem(row rowScanner) (*domain.Item, error) {
	var item domain.Item
	if err := row.Scan(
		&item.ID, &item.Name, &item.Category, &item.DailyPriceCents,
		&item.Status, &item.CreatedAt, &item.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &item, nil
}
