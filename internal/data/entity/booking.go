package entity

import (
	"strings"
	"time"
)

// BookingStatus is the persisted lifecycle status. WAITING is the only
// non-terminal value.
type BookingStatus string

const (
	BookingStatusWaiting  BookingStatus = "WAITING"
	BookingStatusApproved BookingStatus = "APPROVED"
	BookingStatusRejected BookingStatus = "REJECTED"
)

// DecisionStatus maps an owner decision onto the terminal status.
func DecisionStatus(approved bool) BookingStatus {
	if approved {
		return BookingStatusApproved
	}
	return BookingStatusRejected
}

// BookingState is a query-time filter, never stored.
type BookingState string

const (
	BookingStateAll      BookingState = "ALL"
	BookingStateCurrent  BookingState = "CURRENT"
	BookingStatePast     BookingState = "PAST"
	BookingStateFuture   BookingState = "FUTURE"
	BookingStateWaiting  BookingState = "WAITING"
	BookingStateRejected BookingState = "REJECTED"
)

// ParseBookingState accepts a state token case-insensitively. An empty token
// means ALL.
func ParseBookingState(token string) (BookingState, bool) {
	token = strings.ToUpper(strings.TrimSpace(token))
	if token == "" {
		return BookingStateAll, true
	}

	switch state := BookingState(token); state {
	case BookingStateAll, BookingStateCurrent, BookingStatePast,
		BookingStateFuture, BookingStateWaiting, BookingStateRejected:
		return state, true
	}
	return "", false
}

type Booking struct {
	Base
	Start    time.Time     `db:"start_date"`
	End      time.Time     `db:"end_date"`
	ItemID   int64         `db:"item_id"`
	BookerID int64         `db:"booker_id"`
	Status   BookingStatus `db:"status"`
}

// Matches reports whether b falls into state at the instant now. It mirrors
// the SQL predicates used by the booking repository.
func (b *Booking) Matches(state BookingState, now time.Time) bool {
	switch state {
	case BookingStateAll:
		return true
	case BookingStatePast:
		return b.End.Before(now)
	case BookingStateFuture:
		return b.Start.After(now)
	case BookingStateCurrent:
		return !b.Start.After(now) && !b.End.Before(now)
	case BookingStateWaiting:
		return b.Status == BookingStatusWaiting
	case BookingStateRejected:
		return b.Status == BookingStatusRejected
	}
	return false
}

// BookingDetail is a booking joined with the item and booker it references.
type BookingDetail struct {
	Booking
	ItemName    string `db:"item_name"`
	ItemOwnerID int64  `db:"item_owner_id"`
	BookerName  string `db:"booker_name"`
}
