package usecase

import (
	"context"
	"time"

	"shareit/internal/data/entity"
	"shareit/internal/data/repository"
	"shareit/internal/dto/request"
	"shareit/internal/dto/response"
	"shareit/internal/events"
	"shareit/internal/metrics"
	"shareit/pkg/apperror"
	"shareit/pkg/utils"

	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, renterID int64, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	DecideBooking(ctx context.Context, bookingID, ownerID int64, approved bool) (*response.BookingResponse, error)
	GetBooking(ctx context.Context, bookingID, userID int64) (*response.BookingResponse, error)
	ListBookerBookings(ctx context.Context, renterID int64, state string, page request.PageRequest) ([]response.BookingResponse, error)
	ListOwnerBookings(ctx context.Context, ownerID int64, state string, page request.PageRequest) ([]response.BookingResponse, error)
}

// BookingPolicy holds the optional lifecycle rules.
type BookingPolicy struct {
	// ForbidDecisionAfterStart makes approve/reject fail once start is not in the future.
	ForbidDecisionAfterStart bool
}

type bookingService struct {
	repo      *repository.Repository
	publisher events.Publisher
	policy    BookingPolicy
	now       func() time.Time
	log       *zap.Logger
}

func NewBookingService(repo *repository.Repository, publisher events.Publisher, policy BookingPolicy, log *zap.Logger) BookingService {
	return &bookingService{
		repo:      repo,
		publisher: publisher,
		policy:    policy,
		now:       time.Now,
		log:       log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, renterID int64, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, apperror.Validation("validation failed: "+utils.FormatValidationErrors(errs), errs)
	}

	var detail *entity.BookingDetail
	err := s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		renter, err := tx.User.FindByID(ctx, renterID)
		if err != nil {
			return err
		}
		if renter == nil {
			return apperror.NotFound("User with id %d not found", renterID)
		}

		item, err := tx.Item.FindByID(ctx, req.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return apperror.NotFound("Item with id %d not found", req.ItemID)
		}
		if item.OwnerID == renterID {
			return apperror.NotFound("Owner cannot book own item %d", item.ID)
		}
		if !item.Available {
			return apperror.InvalidOperation("Item %d is not available for booking", item.ID)
		}

		booking := &entity.Booking{
			Start:    req.Start,
			End:      req.End,
			ItemID:   item.ID,
			BookerID: renter.ID,
			Status:   entity.BookingStatusWaiting,
		}
		if err := tx.Booking.Create(ctx, booking); err != nil {
			return err
		}

		detail = &entity.BookingDetail{
			Booking:     *booking,
			ItemName:    item.Name,
			ItemOwnerID: item.OwnerID,
			BookerName:  renter.Name,
		}
		return nil
	})
	if err != nil {
		logFailure(s.log, "Create booking failed", err, zap.Int64("renter_id", renterID), zap.Int64("item_id", req.ItemID))
		return nil, err
	}

	metrics.RecordBookingCreated()
	s.log.Info("Booking created",
		zap.Int64("booking_id", detail.ID),
		zap.Int64("item_id", detail.ItemID),
		zap.Int64("renter_id", renterID),
	)
	s.publish(ctx, events.BookingCreated, detail)

	resp := response.BookingToResponse(detail)
	return &resp, nil
}

func (s *bookingService) DecideBooking(ctx context.Context, bookingID, ownerID int64, approved bool) (*response.BookingResponse, error) {
	status := entity.DecisionStatus(approved)

	var detail *entity.BookingDetail
	err := s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		booking, err := tx.Booking.FindByIDForUpdate(ctx, bookingID)
		if err != nil {
			return err
		}
		if booking == nil {
			return apperror.NotFound("Booking with id %d not found", bookingID)
		}
		if booking.ItemOwnerID != ownerID {
			return apperror.NotFound("Booking with id %d not found for owner %d", bookingID, ownerID)
		}
		if booking.Status != entity.BookingStatusWaiting {
			return apperror.InvalidOperation("Booking %d has already been %s", bookingID, booking.Status)
		}
		if s.policy.ForbidDecisionAfterStart && !booking.Start.After(s.now()) {
			return apperror.InvalidOperation("Booking %d has already started", bookingID)
		}

		updated, err := tx.Booking.UpdateStatus(ctx, bookingID, status)
		if err != nil {
			return err
		}
		if !updated {
			return apperror.InvalidOperation("Booking %d has already been decided", bookingID)
		}

		booking.Status = status
		detail = booking
		return nil
	})
	if err != nil {
		logFailure(s.log, "Decide booking failed", err, zap.Int64("booking_id", bookingID), zap.Int64("owner_id", ownerID))
		return nil, err
	}

	metrics.RecordBookingDecision(string(status))
	s.log.Info("Booking decided",
		zap.Int64("booking_id", bookingID),
		zap.Int64("owner_id", ownerID),
		zap.String("status", string(status)),
	)
	s.publish(ctx, events.BookingDecided, detail)

	resp := response.BookingToResponse(detail)
	return &resp, nil
}

func (s *bookingService) GetBooking(ctx context.Context, bookingID, userID int64) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	// Unrelated callers get the same answer as for a missing booking.
	if booking == nil || (booking.BookerID != userID && booking.ItemOwnerID != userID) {
		return nil, apperror.NotFound("Booking with id %d not found", bookingID)
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) ListBookerBookings(ctx context.Context, renterID int64, state string, page request.PageRequest) ([]response.BookingResponse, error) {
	return s.list(ctx, renterID, state, page, s.repo.Booking.FindByBooker)
}

func (s *bookingService) ListOwnerBookings(ctx context.Context, ownerID int64, state string, page request.PageRequest) ([]response.BookingResponse, error) {
	return s.list(ctx, ownerID, state, page, s.repo.Booking.FindByOwner)
}

type bookingFinder func(ctx context.Context, userID int64, state entity.BookingState, now time.Time, limit, offset int) ([]*entity.BookingDetail, error)

func (s *bookingService) list(ctx context.Context, userID int64, token string, page request.PageRequest, find bookingFinder) ([]response.BookingResponse, error) {
	state, ok := entity.ParseBookingState(token)
	if !ok {
		s.log.Warn("Unknown booking state", zap.String("state", token), zap.Int64("user_id", userID))
		return nil, apperror.InvalidOperation("Unknown state: %s", token)
	}

	if errs := utils.ValidateStruct(page); len(errs) > 0 {
		return nil, apperror.Validation("validation failed: "+utils.FormatValidationErrors(errs), errs)
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User with id %d not found", userID)
	}

	bookings, err := find(ctx, userID, state, s.now(), page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}

	return response.BookingsToResponse(bookings), nil
}

func (s *bookingService) publish(ctx context.Context, eventType string, b *entity.BookingDetail) {
	evt, err := events.NewBookingEvent(eventType, events.BookingPayload{
		BookingID: b.ID,
		ItemID:    b.ItemID,
		BookerID:  b.BookerID,
		OwnerID:   b.ItemOwnerID,
		Status:    string(b.Status),
		Start:     b.Start,
		End:       b.End,
	}, s.now())
	if err == nil {
		err = s.publisher.Publish(ctx, evt)
	}
	if err != nil {
		metrics.RecordEventPublishFailure(eventType)
		s.log.Warn("Failed to publish booking event",
			zap.Error(err),
			zap.String("type", eventType),
			zap.Int64("booking_id", b.ID),
		)
	}
}
