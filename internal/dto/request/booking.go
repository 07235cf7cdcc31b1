package request

import "time"

type CreateBookingRequest struct {
	ItemID int64     `json:"itemId" validate:"required,gt=0"`
	Start  time.Time `json:"start" validate:"required,future"`
	End    time.Time `json:"end" validate:"required,future,gtfield=Start"`
}
