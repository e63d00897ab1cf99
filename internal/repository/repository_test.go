package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/DREXATROLL/muzrent-pro/internal/domain"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const testLockTimeout = 2 * time.Second

var itemRowColumns = []string{"id", "name", "category", "daily_price_cents", "status", "created_at", "updated_at"}

func newMockDB(t *testing.T) (*dbpg.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return &dbpg.DB{Master: db}, mock
}

func newTestRentalRepo(t *testing.T) (*RentalRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	repo := NewRentalRepo(db, testLockTimeout)
	repo.strategy = retry.Strategy{Attempts: 1}
	return repo, mock
}

func newTestItemRepo(t *testing.T) (*ItemRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	repo := NewItemRepo(db, testLockTimeout)
	repo.strategy = retry.Strategy{Attempts: 1}
	return repo, mock
}

func expectLockTimeout(mock sqlmock.Sqlmock) {
	mock.ExpectExec(regexp.QuoteMeta("set_config('lock_timeout'")).
		WithArgs("2000ms").
		WillReturnResult(driver.ResultNoRows)
}

func itemRow(id string, status domain.ItemStatus) *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows(itemRowColumns).
		AddRow(id, "Fender Jazz Bass", "bass", int64(1500), string(status), now, now)
}

// --- Book ---

func TestRentalRepository_Book_Success(t *testing.T) {
	repo, mock := newTestRentalRepo(t)

	rental := &domain.Rental{ID: "r1", ItemID: "i1", UserID: "u1", StartDate: today(), CreatedAt: time.Now()}

	mock.ExpectBegin()
	expectLockTimeout(mock)
	mock.ExpectQuery("FOR UPDATE").WithArgs("i1").WillReturnRows(itemRow("i1", domain.ItemStatusAvailable))
	mock.ExpectExec("UPDATE items SET status").
		WithArgs("i1", domain.ItemStatusRented, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO rentals").
		WithArgs("r1", "i1", "u1", rental.StartDate, true, rental.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	item, err := repo.Book(context.Background(), rental)

	require.NoError(t, err)
	assert.Equal(t, domain.ItemStatusRented, item.Status)
	assert.True(t, rental.Active)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalRepository_Book_ItemNotFound(t *testing.T) {
	repo, mock := newTestRentalRepo(t)

	mock.ExpectBegin()
	expectLockTimeout(mock)
	mock.ExpectQuery("FOR UPDATE").WithArgs("missing").WillReturnRows(sqlmock.NewRows(itemRowColumns))
	mock.ExpectRollback()

	_, err := repo.Book(context.Background(), &domain.Rental{ID: "r1", ItemID: "missing", UserID: "u1"})

	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalRepository_Book_NotAvailable(t *testing.T) {
	for _, status := range []domain.ItemStatus{domain.ItemStatusRented, domain.ItemStatusMaintenance} {
		t.Run(string(status), func(t *testing.T) {
			repo, mock := newTestRentalRepo(t)

			mock.ExpectBegin()
			expectLockTimeout(mock)
			mock.ExpectQuery("FOR UPDATE").WithArgs("i1").WillReturnRows(itemRow("i1", status))
			mock.ExpectRollback()

			_, err := repo.Book(context.Background(), &domain.Rental{ID: "r1", ItemID: "i1", UserID: "u1"})

			assert.ErrorIs(t, err, domain.ErrItemUnavailable)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRentalRepository_Book_LockTimeoutIsTransient(t *testing.T) {
	repo, mock := newTestRentalRepo(t)

	mock.ExpectBegin()
	expectLockTimeout(mock)
	mock.ExpectQuery("FOR UPDATE").WithArgs("i1").
		WillReturnError(&pq.Error{Code: pgLockNotAvailable, Message: "canceling statement due to lock timeout"})
	mock.ExpectRollback()

	_, err := repo.Book(context.Background(), &domain.Rental{ID: "r1", ItemID: "i1", UserID: "u1"})

	assert.ErrorIs(t, err, domain.ErrTransient)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalRepository_Book_ActiveRentalIndexIsConflict(t *testing.T) {
	repo, mock := newTestRentalRepo(t)

	mock.ExpectBegin()
	expectLockTimeout(mock)
	mock.ExpectQuery("FOR UPDATE").WithArgs("i1").WillReturnRows(itemRow("i1", domain.ItemStatusAvailable))
	mock.ExpectExec("UPDATE items SET status").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO rentals").
		WillReturnError(&pq.Error{Code: pgUniqueViolation, Constraint: "uq_rentals_active_item"})
	mock.ExpectRollback()

	rental := &domain.Rental{ID: "r1", ItemID: "i1", UserID: "u1"}
	_, err := repo.Book(context.Background(), rental)

	assert.ErrorIs(t, err, domain.ErrItemUnavailable)
	assert.False(t, rental.Active)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalRepository_Book_InsertFailureRollsBack(t *testing.T) {
	repo, mock := newTestRentalRepo(t)

	mock.ExpectBegin()
	expectLockTimeout(mock)
	mock.ExpectQuery("FOR UPDATE").WithArgs("i1").WillReturnRows(itemRow("i1", domain.ItemStatusAvailable))
	mock.ExpectExec("UPDATE items SET status").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO rentals").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err := repo.Book(context.Background(), &domain.Rental{ID: "r1", ItemID: "i1", UserID: "u1"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrTransient)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalRepository_Book_CancelledContextIsTransient(t *testing.T) {
	repo, mock := newTestRentalRepo(t)

	mock.ExpectBegin().WillReturnError(context.Canceled)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := repo.Book(ctx, &domain.Rental{ID: "r1", ItemID: "i1", UserID: "u1"})

	assert.ErrorIs(t, err, domain.ErrTransient)
	assert.ErrorIs(t, err, context.Canceled)
}

// --- Cancel ---

var cancelColumns = []string{
	"id", "item_id", "user_id", "start_date", "active", "created_at",
	"id", "name", "category", "daily_price_cents", "status", "created_at", "updated_at",
}

func cancelRow(userID string, active bool, start time.Time) *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows(cancelColumns).AddRow(
		"r1", "i1", userID, start, active, now,
		"i1", "Roland TD-17", "drums", int64(1500), string(domain.ItemStatusRented), now, now,
	)
}

func TestRentalRepository_Cancel_Success(t *testing.T) {
	repo, mock := newTestRentalRepo(t)

	start := today().AddDate(0, 0, -2)

	mock.ExpectBegin()
	expectLockTimeout(mock)
	mock.ExpectQuery("FOR UPDATE").WithArgs("r1").WillReturnRows(cancelRow("u1", true, start))
	mock.ExpectExec("UPDATE rentals SET active = false").
		WithArgs("r1", sqlmock.AnyArg(), int64(3*1500)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE items SET status").
		WithArgs("i1", domain.ItemStatusAvailable, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	rental, item, err := repo.Cancel(context.Background(), "r1", "u1")

	require.NoError(t, err)
	assert.False(t, rental.Active)
	require.NotNil(t, rental.EndDate)
	require.NotNil(t, rental.TotalPriceCents)
	assert.Equal(t, int64(4500), *rental.TotalPriceCents)
	assert.Equal(t, domain.ItemStatusAvailable, item.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalRepository_Cancel_OtherOwner(t *testing.T) {
	repo, mock := newTestRentalRepo(t)

	mock.ExpectBegin()
	expectLockTimeout(mock)
	mock.ExpectQuery("FOR UPDATE").WithArgs("r1").WillReturnRows(cancelRow("u1", true, today()))
	mock.ExpectRollback()

	_, _, err := repo.Cancel(context.Background(), "r1", "intruder")

	assert.ErrorIs(t, err, domain.ErrRentalNotFound)
	assert.NotErrorIs(t, err, domain.ErrRentalNotActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalRepository_Cancel_Inactive(t *testing.T) {
	repo, mock := newTestRentalRepo(t)

	mock.ExpectBegin()
	expectLockTimeout(mock)
	mock.ExpectQuery("FOR UPDATE").WithArgs("r1").WillReturnRows(cancelRow("u1", false, today()))
	mock.ExpectRollback()

	_, _, err := repo.Cancel(context.Background(), "r1", "u1")

	assert.ErrorIs(t, err, domain.ErrRentalNotActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalRepository_Cancel_Deadlock(t *testing.T) {
	repo, mock := newTestRentalRepo(t)

	mock.ExpectBegin()
	expectLockTimeout(mock)
	mock.ExpectQuery("FOR UPDATE").WithArgs("r1").WillReturnError(&pq.Error{Code: pgDeadlockDetected})
	mock.ExpectRollback()

	_, _, err := repo.Cancel(context.Background(), "r1", "u1")

	assert.ErrorIs(t, err, domain.ErrTransient)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalRepository_ListByUser(t *testing.T) {
	repo, mock := newTestRentalRepo(t)

	now := time.Now().UTC()
	end := today()
	rows := sqlmock.NewRows([]string{
		"id", "item_id", "user_id", "start_date", "end_date", "active", "total_price_cents", "created_at",
	}).
		AddRow("r2", "i2", "u1", today(), nil, true, nil, now).
		AddRow("r1", "i1", "u1", today().AddDate(0, 0, -1), end, false, int64(3000), now.Add(-time.Hour))
	mock.ExpectQuery("FROM rentals").WithArgs("u1").WillReturnRows(rows)

	res, err := repo.ListByUser(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Nil(t, res[0].EndDate)
	assert.Nil(t, res[0].TotalPriceCents)
	require.NotNil(t, res[1].TotalPriceCents)
	assert.Equal(t, int64(3000), *res[1].TotalPriceCents)
}

func TestRentalRepository_Reconcile(t *testing.T) {
	repo, mock := newTestRentalRepo(t)

	mock.ExpectBegin()
	expectLockTimeout(mock)
	mock.ExpectQuery("NOT EXISTS").
		WithArgs(domain.ItemStatusRented, domain.ItemStatusAvailable).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow("i1", "rented"))
	mock.ExpectQuery("AND EXISTS").
		WithArgs(domain.ItemStatusRented, domain.ItemStatusRented).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow("i2", "maintenance"))
	mock.ExpectCommit()

	fixes, err := repo.Reconcile(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []domain.StatusFix{
		{ItemID: "i1", From: domain.ItemStatusRented, To: domain.ItemStatusAvailable},
		{ItemID: "i2", From: domain.ItemStatusMaintenance, To: domain.ItemStatusRented},
	}, fixes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// --- Items ---

func TestItemRepository_SetMaintenance(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	mock.ExpectBegin()
	expectLockTimeout(mock)
	mock.ExpectQuery("FOR UPDATE").WithArgs("i1").WillReturnRows(itemRow("i1", domain.ItemStatusAvailable))
	mock.ExpectExec("UPDATE items SET status").
		WithArgs("i1", domain.ItemStatusMaintenance, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	item, err := repo.SetMaintenance(context.Background(), "i1", true)

	require.NoError(t, err)
	assert.Equal(t, domain.ItemStatusMaintenance, item.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_SetMaintenance_RentedRefused(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	mock.ExpectBegin()
	expectLockTimeout(mock)
	mock.ExpectQuery("FOR UPDATE").WithArgs("i1").WillReturnRows(itemRow("i1", domain.ItemStatusRented))
	mock.ExpectRollback()

	_, err := repo.SetMaintenance(context.Background(), "i1", true)

	assert.ErrorIs(t, err, domain.ErrItemRented)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	mock.ExpectQuery("FROM items").WithArgs("missing").WillReturnRows(sqlmock.NewRows(itemRowColumns))

	_, err := repo.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestBuildListItemsQuery(t *testing.T) {
	t.Run("no filter", func(t *testing.T) {
		query, args, err := buildListItemsQuery(domain.ItemFilter{})

		require.NoError(t, err)
		assert.NotContains(t, query, "WHERE")
		assert.Contains(t, query, `ORDER BY "created_at" ASC, "id" ASC`)
		assert.Empty(t, args)
	})

	t.Run("all filters", func(t *testing.T) {
		query, args, err := buildListItemsQuery(domain.ItemFilter{
			Category: "guitars",
			Status:   domain.ItemStatusAvailable,
			Query:    "strat",
		})

		require.NoError(t, err)
		assert.Contains(t, query, `"category" = $1`)
		assert.Contains(t, query, `"status" = $2`)
		assert.Contains(t, query, `"name" ILIKE $3`)
		assert.Equal(t, []interface{}{"guitars", "available", "%strat%"}, args)
	})

	t.Run("wildcards are literal", func(t *testing.T) {
		query, args, err := buildListItemsQuery(domain.ItemFilter{Query: `50%_off\`})

		require.NoError(t, err)
		assert.Contains(t, query, `"name" ILIKE $1`)
		assert.Equal(t, []interface{}{`%50\%\_off\\%`}, args)
	})
}

// --- Users ---

func TestUserRepository_GetByUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)
	repo.strategy = retry.Strategy{Attempts: 1}

	rows := sqlmock.NewRows([]string{"id", "username", "telegram_chat_id", "created_at"}).
		AddRow("u1", "alice", int64(42), time.Now())
	mock.ExpectQuery("WHERE username").WithArgs("alice").WillReturnRows(rows)

	u, err := repo.GetByUsername(context.Background(), "alice")

	require.NoError(t, err)
	require.NotNil(t, u.TelegramChatID)
	assert.Equal(t, int64(42), *u.TelegramChatID)
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)
	repo.strategy = retry.Strategy{Attempts: 1}

	mock.ExpectQuery("WHERE id").WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "telegram_chat_id", "created_at"}))

	_, err := repo.GetByID(context.Background(), "ghost")

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// --- Errors ---

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"lock timeout", &pq.Error{Code: pgLockNotAvailable}, true},
		{"deadlock", &pq.Error{Code: pgDeadlockDetected}, true},
		{"serialization", &pq.Error{Code: pgSerializationFailure}, true},
		{"statement timeout", &pq.Error{Code: pgQueryCanceled}, true},
		{"connection failure", &pq.Error{Code: "08006"}, true},
		{"bad conn", driver.ErrBadConn, true},
		{"deadline", context.DeadlineExceeded, true},
		{"canceled", context.Canceled, true},
		{"unique violation", &pq.Error{Code: pgUniqueViolation}, false},
		{"plain", errors.New("syntax error"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isTransient(tt.err))
		})
	}
}
