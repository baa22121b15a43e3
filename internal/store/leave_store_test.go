package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/Abhishek8719/Employee-Leave-Management-System/internal/models"
	"github.com/Abhishek8719/Employee-Leave-Management-System/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// a single connection keeps every query on the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.LeaveRequest{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name, email string) *models.User {
	t.Helper()
	u := &models.User{Name: name, Email: email, PasswordHash: "x"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func date(v string) time.Time {
	d, err := time.Parse("2006-01-02", v)
	if err != nil {
		panic(err)
	}
	return d
}

func seedLeave(t *testing.T, db *gorm.DB, owner uint, status models.LeaveStatus, createdAt time.Time) *models.LeaveRequest {
	t.Helper()
	l := &models.LeaveRequest{
		UserID:    owner,
		StartDate: date("2099-01-10"),
		EndDate:   date("2099-01-12"),
		Reason:    "trip",
		Status:    status,
	}
	require.NoError(t, db.Create(l).Error)
	require.NoError(t, db.Model(l).UpdateColumn("created_at", createdAt).Error)
	return l
}

func TestUserStoreDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	users := store.NewUserStore(db)
	ctx := context.Background()

	require.NoError(t, users.CreateUser(ctx, &models.User{Name: "A", Email: "a@example.com", PasswordHash: "x"}))
	err := users.CreateUser(ctx, &models.User{Name: "B", Email: "a@example.com", PasswordHash: "y"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestUserStoreFindByEmail(t *testing.T) {
	db := newTestDB(t)
	users := store.NewUserStore(db)
	ctx := context.Background()
	seedUser(t, db, "Asha", "asha@example.com")

	u, err := users.FindUserByEmail(ctx, "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Asha", u.Name)

	_, err = users.FindUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateLeaveGuardIsAtomic(t *testing.T) {
	db := newTestDB(t)
	leaves := store.NewLeaveStore(db)
	ctx := context.Background()

	owner := seedUser(t, db, "Asha", "asha@example.com")
	other := seedUser(t, db, "Ben", "ben@example.com")
	pending := seedLeave(t, db, owner.ID, models.StatusPending, time.Now())
	decided := seedLeave(t, db, owner.ID, models.StatusApproved, time.Now())

	// wrong owner
	n, err := leaves.UpdateLeaveIfPendingAndOwned(ctx, pending.ID, other.ID, date("2099-02-01"), date("2099-02-02"), "theft")
	require.NoError(t, err)
	assert.Zero(t, n)

	// wrong status
	n, err = leaves.UpdateLeaveIfPendingAndOwned(ctx, decided.ID, owner.ID, date("2099-02-01"), date("2099-02-02"), "late edit")
	require.NoError(t, err)
	assert.Zero(t, n)

	// missing id
	n, err = leaves.UpdateLeaveIfPendingAndOwned(ctx, 9999, owner.ID, date("2099-02-01"), date("2099-02-02"), "ghost")
	require.NoError(t, err)
	assert.Zero(t, n)

	var unchanged models.LeaveRequest
	require.NoError(t, db.First(&unchanged, pending.ID).Error)
	assert.Equal(t, "trip", unchanged.Reason)

	// guard holds: one row changes
	n, err = leaves.UpdateLeaveIfPendingAndOwned(ctx, pending.ID, owner.ID, date("2099-02-01"), date("2099-02-02"), "updated")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	var changed models.LeaveRequest
	require.NoError(t, db.First(&changed, pending.ID).Error)
	assert.Equal(t, "updated", changed.Reason)
	assert.Equal(t, models.StatusPending, changed.Status)
}

func TestDeleteLeaveGuardIsAtomic(t *testing.T) {
	db := newTestDB(t)
	leaves := store.NewLeaveStore(db)
	ctx := context.Background()

	owner := seedUser(t, db, "Asha", "asha@example.com")
	other := seedUser(t, db, "Ben", "ben@example.com")
	pending := seedLeave(t, db, owner.ID, models.StatusPending, time.Now())
	decided := seedLeave(t, db, owner.ID, models.StatusRejected, time.Now())

	n, err := leaves.DeleteLeaveIfPendingAndOwned(ctx, pending.ID, other.ID)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = leaves.DeleteLeaveIfPendingAndOwned(ctx, decided.ID, owner.ID)
	require.NoError(t, err)
	assert.Zero(t, n, "decided requests are never deleted")

	n, err = leaves.DeleteLeaveIfPendingAndOwned(ctx, pending.ID, owner.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	var count int64
	require.NoError(t, db.Model(&models.LeaveRequest{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpdateStatusOnlyLeavesPendingOnce(t *testing.T) {
	db := newTestDB(t)
	leaves := store.NewLeaveStore(db)
	ctx := context.Background()

	owner := seedUser(t, db, "Asha", "asha@example.com")
	l := seedLeave(t, db, owner.ID, models.StatusPending, time.Now())

	n, err := leaves.UpdateLeaveStatusIfPending(ctx, l.ID, models.StatusApproved)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	// already decided: zero rows, status untouched
	n, err = leaves.UpdateLeaveStatusIfPending(ctx, l.ID, models.StatusRejected)
	require.NoError(t, err)
	assert.Zero(t, n)

	var got models.LeaveRequest
	require.NoError(t, db.First(&got, l.ID).Error)
	assert.Equal(t, models.StatusApproved, got.Status)

	n, err = leaves.UpdateLeaveStatusIfPending(ctx, 9999, models.StatusApproved)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestFindLeaveByIDForOwnerIsolation(t *testing.T) {
	db := newTestDB(t)
	leaves := store.NewLeaveStore(db)
	ctx := context.Background()

	owner := seedUser(t, db, "Asha", "asha@example.com")
	other := seedUser(t, db, "Ben", "ben@example.com")
	l := seedLeave(t, db, owner.ID, models.StatusPending, time.Now())

	got, err := leaves.FindLeaveByIDForOwner(ctx, l.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, l.ID, got.ID)

	_, err = leaves.FindLeaveByIDForOwner(ctx, l.ID, other.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFindLeaveWithOwnerByIDLoadsUser(t *testing.T) {
	db := newTestDB(t)
	leaves := store.NewLeaveStore(db)
	ctx := context.Background()

	owner := seedUser(t, db, "Asha", "asha@example.com")
	l := seedLeave(t, db, owner.ID, models.StatusApproved, time.Now())

	got, err := leaves.FindLeaveWithOwnerByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, "Asha", got.User.Name)
	assert.Equal(t, "asha@example.com", got.User.Email)
}

func TestListLeavesByOwnerOrderAndIsolation(t *testing.T) {
	db := newTestDB(t)
	leaves := store.NewLeaveStore(db)
	ctx := context.Background()

	owner := seedUser(t, db, "Asha", "asha@example.com")
	other := seedUser(t, db, "Ben", "ben@example.com")
	old := seedLeave(t, db, owner.ID, models.StatusPending, time.Now().Add(-2*time.Hour))
	recent := seedLeave(t, db, owner.ID, models.StatusPending, time.Now())
	seedLeave(t, db, other.ID, models.StatusPending, time.Now().Add(-time.Hour))

	got, err := leaves.ListLeavesByOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, recent.ID, got[0].ID)
	assert.Equal(t, old.ID, got[1].ID)
}

func TestListAllLeavesJoined(t *testing.T) {
	db := newTestDB(t)
	leaves := store.NewLeaveStore(db)
	ctx := context.Background()

	asha := seedUser(t, db, "Asha", "asha@example.com")
	ben := seedUser(t, db, "Ben", "ben@example.com")
	older := seedLeave(t, db, asha.ID, models.StatusPending, time.Now().Add(-time.Hour))
	newer := seedLeave(t, db, ben.ID, models.StatusApproved, time.Now())

	rows, err := leaves.ListAllLeavesJoined(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, newer.ID, rows[0].ID)
	assert.Equal(t, "Ben", rows[0].OwnerName)
	assert.Equal(t, "ben@example.com", rows[0].OwnerEmail)
	assert.Equal(t, models.StatusApproved, rows[0].Status)

	assert.Equal(t, older.ID, rows[1].ID)
	assert.Equal(t, "Asha", rows[1].OwnerName)
	assert.Equal(t, "trip", rows[1].Reason)
}
