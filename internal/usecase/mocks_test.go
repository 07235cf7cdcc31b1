package usecase

import (
	"context"
	"time"

	"shareit/internal/data/entity"
	"shareit/internal/events"

	"github.com/stretchr/testify/mock"
)

type MockUserRepo struct{ mock.Mock }
type MockItemRepo struct{ mock.Mock }
type MockBookingRepo struct{ mock.Mock }
type MockCommentRepo struct{ mock.Mock }
type MockItemRequestRepo struct{ mock.Mock }
type MockPublisher struct{ mock.Mock }

func (m *MockUserRepo) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepo) FindAll(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *MockUserRepo) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockItemRepo) Create(ctx context.Context, item *entity.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockItemRepo) FindByID(ctx context.Context, id int64) (*entity.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Item), args.Error(1)
}

func (m *MockItemRepo) Update(ctx context.Context, item *entity.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockItemRepo) FindByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]*entity.Item, error) {
	args := m.Called(ctx, ownerID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Item), args.Error(1)
}

func (m *MockItemRepo) Search(ctx context.Context, text string, limit, offset int) ([]*entity.Item, error) {
	args := m.Called(ctx, text, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Item), args.Error(1)
}

func (m *MockItemRepo) FindByRequestIDs(ctx context.Context, requestIDs []int64) ([]*entity.Item, error) {
	args := m.Called(ctx, requestIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Item), args.Error(1)
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	return m.Called(ctx, booking).Error(0)
}

func (m *MockBookingRepo) FindByID(ctx context.Context, id int64) (*entity.BookingDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.BookingDetail), args.Error(1)
}

func (m *MockBookingRepo) FindByIDForUpdate(ctx context.Context, id int64) (*entity.BookingDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.BookingDetail), args.Error(1)
}

func (m *MockBookingRepo) FindByBooker(ctx context.Context, bookerID int64, state entity.BookingState, now time.Time, limit, offset int) ([]*entity.BookingDetail, error) {
	args := m.Called(ctx, bookerID, state, now, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.BookingDetail), args.Error(1)
}

func (m *MockBookingRepo) FindByOwner(ctx context.Context, ownerID int64, state entity.BookingState, now time.Time, limit, offset int) ([]*entity.BookingDetail, error) {
	args := m.Called(ctx, ownerID, state, now, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.BookingDetail), args.Error(1)
}

func (m *MockBookingRepo) UpdateStatus(ctx context.Context, id int64, status entity.BookingStatus) (bool, error) {
	args := m.Called(ctx, id, status)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepo) FindLastApproved(ctx context.Context, itemID int64, now time.Time) (*entity.Booking, error) {
	args := m.Called(ctx, itemID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Booking), args.Error(1)
}

func (m *MockBookingRepo) FindNextApproved(ctx context.Context, itemID int64, now time.Time) (*entity.Booking, error) {
	args := m.Called(ctx, itemID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Booking), args.Error(1)
}

func (m *MockBookingRepo) FindApprovedByOwner(ctx context.Context, ownerID int64, itemIDs []int64) ([]*entity.Booking, error) {
	args := m.Called(ctx, ownerID, itemIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Booking), args.Error(1)
}

func (m *MockBookingRepo) HasCompletedApproved(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error) {
	args := m.Called(ctx, bookerID, itemID, now)
	return args.Bool(0), args.Error(1)
}

func (m *MockCommentRepo) Create(ctx context.Context, comment *entity.Comment) error {
	return m.Called(ctx, comment).Error(0)
}

func (m *MockCommentRepo) FindByItemIDs(ctx context.Context, itemIDs []int64) ([]*entity.Comment, error) {
	args := m.Called(ctx, itemIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Comment), args.Error(1)
}

func (m *MockItemRequestRepo) Create(ctx context.Context, req *entity.ItemRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockItemRequestRepo) FindByID(ctx context.Context, id int64) (*entity.ItemRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ItemRequest), args.Error(1)
}

func (m *MockItemRequestRepo) FindByRequester(ctx context.Context, requesterID int64) ([]*entity.ItemRequest, error) {
	args := m.Called(ctx, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ItemRequest), args.Error(1)
}

func (m *MockItemRequestRepo) FindOthers(ctx context.Context, userID int64, limit, offset int) ([]*entity.ItemRequest, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ItemRequest), args.Error(1)
}

func (m *MockPublisher) Publish(ctx context.Context, evt events.Event) error {
	return m.Called(ctx, evt).Error(0)
}

func (m *MockPublisher) Close() error {
	return m.Called().Error(0)
}
