package adaptor

import (
	"context"
	"net/http"

	"shareit/internal/dto/request"
	"shareit/internal/dto/response"
	"shareit/internal/usecase"
	"shareit/pkg/utils"

	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /bookings
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	var req request.CreateBookingRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, r, h.log, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "Booking created", booking)
}

// DecideBooking handles PATCH /bookings/{bookingId}?approved=true|false
func (h *BookingHandler) DecideBooking(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	bookingID, err := pathID(r, "bookingId")
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	approved, err := utils.ParseBool(r.URL.Query().Get("approved"))
	if err != nil {
		utils.ResponseBadRequest(w, "Query parameter approved must be true or false", nil)
		return
	}

	booking, err := h.service.DecideBooking(r.Context(), bookingID, userID, approved)
	if err != nil {
		handleServiceError(w, r, h.log, err, "decide booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// GetBooking handles GET /bookings/{bookingId}
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	bookingID, err := pathID(r, "bookingId")
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	booking, err := h.service.GetBooking(r.Context(), bookingID, userID)
	if err != nil {
		handleServiceError(w, r, h.log, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// ListBookerBookings handles GET /bookings?state=&from=&size=
func (h *BookingHandler) ListBookerBookings(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, "list booker bookings", h.service.ListBookerBookings)
}

// ListOwnerBookings handles GET /bookings/owner?state=&from=&size=
func (h *BookingHandler) ListOwnerBookings(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, "list owner bookings", h.service.ListOwnerBookings)
}

type bookingLister func(ctx context.Context, userID int64, state string, page request.PageRequest) ([]response.BookingResponse, error)

func (h *BookingHandler) list(w http.ResponseWriter, r *http.Request, operation string, find bookingLister) {
	userID, err := callerID(r)
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	query := r.URL.Query()
	page, err := parsePage(query)
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	bookings, err := find(r.Context(), userID, query.Get("state"), page)
	if err != nil {
		handleServiceError(w, r, h.log, err, operation)
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}
