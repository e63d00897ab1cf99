//go:build integration

package repository

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/DREXATROLL/muzrent-pro/internal/domain"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
)

// go test -tags integration ./internal/repository/ with MUZRENT_TEST_DSN set
// to a throwaway database.
func openTestDB(t *testing.T) *dbpg.DB {
	t.Helper()
	dsn := os.Getenv("MUZRENT_TEST_DSN")
	if dsn == "" {
		t.Skip("MUZRENT_TEST_DSN is not set")
	}

	raw, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.Up(raw, "../../migrations"))
	require.NoError(t, raw.Close())

	db, err := dbpg.New(dsn, nil, &dbpg.Options{MaxOpenConns: 32, MaxIdleConns: 8})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Master.Close() })
	return db
}

func TestIntegration_ConcurrentBooking(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	items := NewItemRepo(db, 3*time.Second)
	users := NewUserRepo(db)
	rentals := NewRentalRepo(db, 3*time.Second)

	now := time.Now().UTC()
	item := &domain.Item{
		ID: uuid.New().String(), Name: "Ludwig Supraphonic", Category: "drums",
		DailyPriceCents: 900, Status: domain.ItemStatusAvailable, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, items.Create(ctx, item))

	const bookers = 16
	userIDs := make([]string, bookers)
	for i := range userIDs {
		u := &domain.User{ID: uuid.New().String(), Username: "it-" + uuid.NewString()[:8], CreatedAt: now}
		require.NoError(t, users.Create(ctx, u))
		userIDs[i] = u.ID
	}

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		wins  int
		other []error
	)
	for _, uid := range userIDs {
		wg.Add(1)
		go func(uid string) {
			defer wg.Done()
			_, err := rentals.Book(ctx, &domain.Rental{
				ID: uuid.New().String(), ItemID: item.ID, UserID: uid,
				StartDate: today(), CreatedAt: time.Now().UTC(),
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				wins++
			case errors.Is(err, domain.ErrItemUnavailable):
			default:
				other = append(other, err)
			}
		}(uid)
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
	assert.Empty(t, other)

	got, err := items.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ItemStatusRented, got.Status)

	fixes, err := rentals.Reconcile(ctx)
	require.NoError(t, err)
	for _, f := range fixes {
		assert.NotEqual(t, item.ID, f.ItemID)
	}
}

func TestIntegration_LockTimeoutIsTransient(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	items := NewItemRepo(db, time.Second)
	rentals := NewRentalRepo(db, 100*time.Millisecond)

	now := time.Now().UTC()
	item := &domain.Item{
		ID: uuid.New().String(), Name: "Rhodes Mk I", Category: "keys",
		DailyPriceCents: 3000, Status: domain.ItemStatusAvailable, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, items.Create(ctx, item))

	holder, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	defer holder.Rollback()
	_, err = holder.ExecContext(ctx, `SELECT id FROM items WHERE id = $1 FOR UPDATE`, item.ID)
	require.NoError(t, err)

	_, err = rentals.Book(ctx, &domain.Rental{
		ID: uuid.New().String(), ItemID: item.ID, UserID: uuid.New().String(),
		StartDate: today(), CreatedAt: now,
	})

	assert.ErrorIs(t, err, domain.ErrTransient)
}
