package usecase

import (
	"errors"

	"shareit/internal/data/repository"
	"shareit/internal/events"
	"shareit/pkg/apperror"
	"shareit/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	User         UserService
	Item         ItemService
	Booking      BookingService
	ItemRequest  ItemRequestService
	Availability AvailabilityProjector
	CommentGate  CommentGate
}

func NewService(repo *repository.Repository, publisher events.Publisher, config *utils.Config, log *zap.Logger) *Service {
	availability := NewAvailabilityProjector(repo.Booking, log)
	gate := NewCommentGate(repo.Booking, log)
	policy := BookingPolicy{ForbidDecisionAfterStart: config.Booking.ForbidDecisionAfterStart}

	return &Service{
		User:         NewUserService(repo.User, log),
		Item:         NewItemService(repo, availability, gate, log),
		Booking:      NewBookingService(repo, publisher, policy, log),
		ItemRequest:  NewItemRequestService(repo, log),
		Availability: availability,
		CommentGate:  gate,
	}
}

// logFailure logs business rejections at warn and lower layer faults at error.
func logFailure(log *zap.Logger, msg string, err error, fields ...zap.Field) {
	fields = append(fields, zap.Error(err))
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		log.Warn(msg, fields...)
		return
	}
	log.Error(msg, fields...)
}
