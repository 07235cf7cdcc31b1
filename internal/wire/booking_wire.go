package wire

import (
	"shareit/internal/adaptor"
	"shareit/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler, log *zap.Logger) {
	// ==================== IDENTIFIED ROUTES ====================
	r.With(middleware.Identity(log)).Route("/bookings", func(r chi.Router) {
		r.Post("/", bookingHandler.CreateBooking)             // POST /bookings
		r.Get("/", bookingHandler.ListBookerBookings)         // GET /bookings?state=&from=&size=
		r.Get("/owner", bookingHandler.ListOwnerBookings)     // GET /bookings/owner?state=&from=&size=
		r.Get("/{bookingId}", bookingHandler.GetBooking)      // GET /bookings/{bookingId}
		r.Patch("/{bookingId}", bookingHandler.DecideBooking) // PATCH /bookings/{bookingId}?approved=
	})
}
