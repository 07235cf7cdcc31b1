package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"shareit/internal/data/entity"
)

// memBookings is an in-memory BookingRepository that applies the same
// state predicates and ordering as the SQL implementation.
type memBookings struct {
	mu    sync.Mutex
	owner map[int64]int64 // item id -> owner id
	rows  []entity.Booking
}

func newMemBookings(itemOwners map[int64]int64) *memBookings {
	return &memBookings{owner: itemOwners}
}

func (m *memBookings) Create(_ context.Context, booking *entity.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	booking.ID = int64(len(m.rows) + 1)
	m.rows = append(m.rows, *booking)
	return nil
}

func (m *memBookings) detail(b entity.Booking) *entity.BookingDetail {
	return &entity.BookingDetail{Booking: b, ItemOwnerID: m.owner[b.ItemID]}
}

func (m *memBookings) FindByID(_ context.Context, id int64) (*entity.BookingDetail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.rows {
		if b.ID == id {
			return m.detail(b), nil
		}
	}
	return nil, nil
}

func (m *memBookings) FindByIDForUpdate(ctx context.Context, id int64) (*entity.BookingDetail, error) {
	return m.FindByID(ctx, id)
}

func (m *memBookings) FindByBooker(_ context.Context, bookerID int64, state entity.BookingState, now time.Time, limit, offset int) ([]*entity.BookingDetail, error) {
	return m.filter(func(b entity.Booking) bool { return b.BookerID == bookerID }, state, now, limit, offset), nil
}

func (m *memBookings) FindByOwner(_ context.Context, ownerID int64, state entity.BookingState, now time.Time, limit, offset int) ([]*entity.BookingDetail, error) {
	return m.filter(func(b entity.Booking) bool { return m.owner[b.ItemID] == ownerID }, state, now, limit, offset), nil
}

func (m *memBookings) filter(keep func(entity.Booking) bool, state entity.BookingState, now time.Time, limit, offset int) []*entity.BookingDetail {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []*entity.BookingDetail{}
	for _, b := range m.rows {
		if keep(b) && b.Matches(state, now) {
			out = append(out, m.detail(b))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Start.Equal(out[j].Start) {
			return out[i].Start.After(out[j].Start)
		}
		return out[i].ID > out[j].ID
	})

	if offset >= len(out) {
		return []*entity.BookingDetail{}
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (m *memBookings) UpdateStatus(_ context.Context, id int64, status entity.BookingStatus) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rows {
		if m.rows[i].ID == id && m.rows[i].Status == entity.BookingStatusWaiting {
			m.rows[i].Status = status
			return true, nil
		}
	}
	return false, nil
}

func (m *memBookings) FindLastApproved(_ context.Context, itemID int64, now time.Time) (*entity.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var last *entity.Booking
	for i := range m.rows {
		b := &m.rows[i]
		if b.ItemID == itemID && b.Status == entity.BookingStatusApproved {
			last = pickLast(last, b, now)
		}
	}
	return last, nil
}

func (m *memBookings) FindNextApproved(_ context.Context, itemID int64, now time.Time) (*entity.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var next *entity.Booking
	for i := range m.rows {
		b := &m.rows[i]
		if b.ItemID == itemID && b.Status == entity.BookingStatusApproved {
			next = pickNext(next, b, now)
		}
	}
	return next, nil
}

func (m *memBookings) FindApprovedByOwner(_ context.Context, ownerID int64, itemIDs []int64) ([]*entity.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	wanted := make(map[int64]bool, len(itemIDs))
	for _, id := range itemIDs {
		wanted[id] = true
	}
	var out []*entity.Booking
	for i := range m.rows {
		b := m.rows[i]
		if wanted[b.ItemID] && m.owner[b.ItemID] == ownerID && b.Status == entity.BookingStatusApproved {
			out = append(out, &b)
		}
	}
	return out, nil
}

func (m *memBookings) HasCompletedApproved(_ context.Context, bookerID, itemID int64, now time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.rows {
		if b.BookerID == bookerID && b.ItemID == itemID && b.Status == entity.BookingStatusApproved && b.End.Before(now) {
			return true, nil
		}
	}
	return false, nil
}
