package usecase

import (
	"context"
	"time"

	"shareit/internal/data/entity"
	"shareit/internal/data/repository"

	"go.uber.org/zap"
)

// Availability is the last and next approved booking of one item.
type Availability struct {
	Last *entity.Booking
	Next *entity.Booking
}

// AvailabilityProjector derives last/next approved bookings for item views.
// Only the owner ever sees them; other viewers get an empty Availability.
type AvailabilityProjector interface {
	ForItem(ctx context.Context, item *entity.Item, viewerID int64) (Availability, error)
	ForOwnerItems(ctx context.Context, ownerID, viewerID int64, itemIDs []int64) (map[int64]Availability, error)
}

type availabilityProjector struct {
	bookings repository.BookingRepository
	now      func() time.Time
	log      *zap.Logger
}

func NewAvailabilityProjector(bookings repository.BookingRepository, log *zap.Logger) AvailabilityProjector {
	return &availabilityProjector{
		bookings: bookings,
		now:      time.Now,
		log:      log.With(zap.String("service", "availability")),
	}
}

func (p *availabilityProjector) ForItem(ctx context.Context, item *entity.Item, viewerID int64) (Availability, error) {
	if item.OwnerID != viewerID {
		return Availability{}, nil
	}

	now := p.now()
	last, err := p.bookings.FindLastApproved(ctx, item.ID, now)
	if err != nil {
		return Availability{}, err
	}
	next, err := p.bookings.FindNextApproved(ctx, item.ID, now)
	if err != nil {
		return Availability{}, err
	}

	return Availability{Last: last, Next: next}, nil
}

// ForOwnerItems issues a single owner scoped query and groups it in memory.
func (p *availabilityProjector) ForOwnerItems(ctx context.Context, ownerID, viewerID int64, itemIDs []int64) (map[int64]Availability, error) {
	result := make(map[int64]Availability, len(itemIDs))
	if ownerID != viewerID || len(itemIDs) == 0 {
		return result, nil
	}

	bookings, err := p.bookings.FindApprovedByOwner(ctx, ownerID, itemIDs)
	if err != nil {
		return nil, err
	}

	wanted := make(map[int64]struct{}, len(itemIDs))
	for _, id := range itemIDs {
		wanted[id] = struct{}{}
	}

	now := p.now()
	for _, b := range bookings {
		if _, ok := wanted[b.ItemID]; !ok || b.Status != entity.BookingStatusApproved {
			continue
		}
		a := result[b.ItemID]
		a.Last, a.Next = pickLast(a.Last, b, now), pickNext(a.Next, b, now)
		result[b.ItemID] = a
	}

	p.log.Debug("Projected owner items",
		zap.Int64("owner_id", ownerID),
		zap.Int("items", len(itemIDs)),
		zap.Int("bookings", len(bookings)),
	)
	return result, nil
}

// pickLast keeps the booking that started before now with the latest end.
func pickLast(current, candidate *entity.Booking, now time.Time) *entity.Booking {
	if !candidate.Start.Before(now) {
		return current
	}
	if current == nil || candidate.End.After(current.End) {
		return candidate
	}
	return current
}

// pickNext keeps the booking that starts soonest after now.
func pickNext(current, candidate *entity.Booking, now time.Time) *entity.Booking {
	if !candidate.Start.After(now) {
		return current
	}
	if current == nil || candidate.Start.Before(current.Start) {
		return candidate
	}
	return current
}
