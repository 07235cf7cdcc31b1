//go:build integration

package repository_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"shareit/internal/data/entity"
	"shareit/internal/data/repository"
	"shareit/internal/events"
	"shareit/internal/usecase"
	"shareit/migrations"
	"shareit/pkg/apperror"
	"shareit/pkg/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"go.uber.org/zap"
)

// setupDatabase starts a PostgreSQL container, applies the embedded
// migrations and returns repositories bound to a pool.
func setupDatabase(t *testing.T) *repository.Repository {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("shareit"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.BasicWaitStrategies(),
	)
	require.NoError(t, err, "failed to start PostgreSQL container")
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	log := zap.NewNop()
	require.NoError(t, database.Migrate(migrations.FS, strings.Replace(dsn, "postgres://", "pgx5://", 1), log))

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.Eventually(t, func() bool { return pool.Ping(ctx) == nil }, 30*time.Second, time.Second)

	return repository.NewRepository(pool, log)
}

func TestBookingRepositoryAgainstPostgres(t *testing.T) {
	repo := setupDatabase(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	alice := &entity.User{Name: "Alice", Email: "alice@example.com"}
	bob := &entity.User{Name: "Bob", Email: "bob@example.com"}
	require.NoError(t, repo.User.Create(ctx, alice))
	require.NoError(t, repo.User.Create(ctx, bob))

	err := repo.User.Create(ctx, &entity.User{Name: "Alice 2", Email: "alice@example.com"})
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)

	drill := &entity.Item{Name: "Drill", Description: "Cordless drill", Available: true, OwnerID: alice.ID}
	require.NoError(t, repo.Item.Create(ctx, drill))

	past := &entity.Booking{Start: now.Add(-72 * time.Hour), End: now.Add(-48 * time.Hour), ItemID: drill.ID, BookerID: bob.ID, Status: entity.BookingStatusWaiting}
	current := &entity.Booking{Start: now.Add(-time.Hour), End: now.Add(time.Hour), ItemID: drill.ID, BookerID: bob.ID, Status: entity.BookingStatusWaiting}
	future := &entity.Booking{Start: now.Add(48 * time.Hour), End: now.Add(72 * time.Hour), ItemID: drill.ID, BookerID: bob.ID, Status: entity.BookingStatusWaiting}
	for _, b := range []*entity.Booking{past, current, future} {
		require.NoError(t, repo.Booking.Create(ctx, b))
	}

	ok, err := repo.Booking.UpdateStatus(ctx, past.ID, entity.BookingStatusApproved)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = repo.Booking.UpdateStatus(ctx, past.ID, entity.BookingStatusRejected)
	require.NoError(t, err)
	assert.False(t, ok, "terminal booking must not change")

	ids := func(list []*entity.BookingDetail) []int64 {
		out := make([]int64, len(list))
		for i, b := range list {
			out[i] = b.ID
		}
		return out
	}

	tests := []struct {
		state entity.BookingState
		want  []int64
	}{
		{entity.BookingStateAll, []int64{future.ID, current.ID, past.ID}},
		{entity.BookingStatePast, []int64{past.ID}},
		{entity.BookingStateCurrent, []int64{current.ID}},
		{entity.BookingStateFuture, []int64{future.ID}},
		{entity.BookingStateWaiting, []int64{future.ID, current.ID}},
		{entity.BookingStateRejected, []int64{}},
	}
	for _, tt := range tests {
		byBooker, err := repo.Booking.FindByBooker(ctx, bob.ID, tt.state, now, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, tt.want, ids(byBooker), "booker %s", tt.state)

		byOwner, err := repo.Booking.FindByOwner(ctx, alice.ID, tt.state, now, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, tt.want, ids(byOwner), "owner %s", tt.state)
	}

	paged, err := repo.Booking.FindByBooker(ctx, bob.ID, entity.BookingStateAll, now, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{past.ID}, ids(paged))

	detail, err := repo.Booking.FindByID(ctx, future.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, detail.ItemOwnerID)
	assert.Equal(t, "Drill", detail.ItemName)
	assert.Equal(t, "Bob", detail.BookerName)

	missing, err := repo.Booking.FindByID(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)

	last, err := repo.Booking.FindLastApproved(ctx, drill.ID, now)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, past.ID, last.ID)

	next, err := repo.Booking.FindNextApproved(ctx, drill.ID, now)
	require.NoError(t, err)
	assert.Nil(t, next, "waiting bookings are not projected")

	done, err := repo.Booking.HasCompletedApproved(ctx, bob.ID, drill.ID, now)
	require.NoError(t, err)
	assert.True(t, done)
	done, err = repo.Booking.HasCompletedApproved(ctx, alice.ID, drill.ID, now)
	require.NoError(t, err)
	assert.False(t, done)
}

func TestConcurrentDecisionsResolveOnce(t *testing.T) {
	repo := setupDatabase(t)
	ctx := context.Background()

	owner := &entity.User{Name: "Owner", Email: "owner@example.com"}
	renter := &entity.User{Name: "Renter", Email: "renter@example.com"}
	require.NoError(t, repo.User.Create(ctx, owner))
	require.NoError(t, repo.User.Create(ctx, renter))
	item := &entity.Item{Name: "Ladder", Description: "Three metres", Available: true, OwnerID: owner.ID}
	require.NoError(t, repo.Item.Create(ctx, item))

	start := time.Now().Add(24 * time.Hour)
	booking := &entity.Booking{Start: start, End: start.Add(time.Hour), ItemID: item.ID, BookerID: renter.ID, Status: entity.BookingStatusWaiting}
	require.NoError(t, repo.Booking.Create(ctx, booking))

	svc := usecase.NewBookingService(repo, events.NoopPublisher{}, usecase.BookingPolicy{}, zap.NewNop())

	const deciders = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		rejected  int
	)
	for i := 0; i < deciders; i++ {
		wg.Add(1)
		go func(approve bool) {
			defer wg.Done()
			_, err := svc.DecideBooking(ctx, booking.ID, owner.ID, approve)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, apperror.ErrInvalidOperation):
				rejected++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i%2 == 0)
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, deciders-1, rejected)

	stored, err := repo.Booking.FindByID(ctx, booking.ID)
	require.NoError(t, err)
	assert.NotEqual(t, entity.BookingStatusWaiting, stored.Status)
}
