package response

import (
	"time"

	"shareit/internal/data/entity"
)

type BookingResponse struct {
	ID     int64                `json:"id"`
	Start  time.Time            `json:"start"`
	End    time.Time            `json:"end"`
	Status entity.BookingStatus `json:"status"`
	Booker UserShortResponse    `json:"booker"`
	Item   ItemShortResponse    `json:"item"`
}

// BookingShortResponse annotates item views with the last and next booking.
type BookingShortResponse struct {
	ID       int64     `json:"id"`
	BookerID int64     `json:"bookerId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

func BookingToResponse(b *entity.BookingDetail) BookingResponse {
	return BookingResponse{
		ID:     b.ID,
		Start:  b.Start,
		End:    b.End,
		Status: b.Status,
		Booker: UserShortResponse{ID: b.BookerID, Name: b.BookerName},
		Item:   ItemShortResponse{ID: b.ItemID, Name: b.ItemName},
	}
}

func BookingsToResponse(bookings []*entity.BookingDetail) []BookingResponse {
	out := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = BookingToResponse(b)
	}
	return out
}

// BookingToShortResponse returns nil for a nil booking.
func BookingToShortResponse(b *entity.Booking) *BookingShortResponse {
	if b == nil {
		return nil
	}
	return &BookingShortResponse{ID: b.ID, BookerID: b.BookerID, Start: b.Start, End: b.End}
}
