package usecase

import (
	"context"
	"time"

	"shareit/internal/data/repository"
	"shareit/internal/metrics"
	"shareit/pkg/apperror"

	"go.uber.org/zap"
)

// CommentGate allows a comment only from a user with an approved booking
// of the item that has already ended.
type CommentGate interface {
	Check(ctx context.Context, authorID, itemID int64) error
}

type commentGate struct {
	bookings repository.BookingRepository
	now      func() time.Time
	log      *zap.Logger
}

func NewCommentGate(bookings repository.BookingRepository, log *zap.Logger) CommentGate {
	return &commentGate{
		bookings: bookings,
		now:      time.Now,
		log:      log.With(zap.String("service", "comment_gate")),
	}
}

func (g *commentGate) Check(ctx context.Context, authorID, itemID int64) error {
	ok, err := g.bookings.HasCompletedApproved(ctx, authorID, itemID, g.now())
	if err != nil {
		return err
	}
	if !ok {
		metrics.RecordCommentRejected()
		g.log.Warn("Comment rejected", zap.Int64("author_id", authorID), zap.Int64("item_id", itemID))
		return apperror.InvalidOperation("User %d cannot comment on item %d without a qualifying past booking", authorID, itemID)
	}
	return nil
}
