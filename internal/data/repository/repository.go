package repository

import (
	"context"

	"shareit/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db  database.PgxIface
	log *zap.Logger

	User        UserRepository
	Item        ItemRepository
	Booking     BookingRepository
	Comment     CommentRepository
	ItemRequest ItemRequestRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	repo := newRepositories(db, log)
	repo.db = db
	return repo
}

func newRepositories(db database.DBTX, log *zap.Logger) *Repository {
	return &Repository{
		log:         log,
		User:        NewUserRepository(db, log),
		Item:        NewItemRepository(db, log),
		Booking:     NewBookingRepository(db, log),
		Comment:     NewCommentRepository(db, log),
		ItemRequest: NewItemRequestRepository(db, log),
	}
}

// WithTx runs fn against repositories bound to a single transaction.
// A Repository assembled without a pool (for example from mocks) runs fn
// against itself.
func (r *Repository) WithTx(ctx context.Context, fn func(tx *Repository) error) error {
	if r.db == nil {
		return fn(r)
	}

	return database.RunInTx(ctx, r.db, func(tx pgx.Tx) error {
		return fn(newRepositories(tx, r.log))
	})
}

// Ping checks the underlying pool.
func (r *Repository) Ping(ctx context.Context) error {
	if r.db == nil {
		return nil
	}
	return r.db.Ping(ctx)
}
