package adaptor

import (
	"context"

	"shareit/internal/usecase"

	"go.uber.org/zap"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	User        *UserHandler
	Item        *ItemHandler
	Booking     *BookingHandler
	ItemRequest *ItemRequestHandler
	System      *SystemHandler
}

func NewHandler(service *usecase.Service, pinger Pinger, log *zap.Logger) *Handler {
	return &Handler{
		User:        NewUserHandler(service.User, log),
		Item:        NewItemHandler(service.Item, log),
		Booking:     NewBookingHandler(service.Booking, log),
		ItemRequest: NewItemRequestHandler(service.ItemRequest, log),
		System:      NewSystemHandler(pinger, log),
	}
}
