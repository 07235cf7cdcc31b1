package adaptor

import (
	"context"

	"shareit/internal/dto/request"
	"shareit/internal/dto/response"

	"github.com/stretchr/testify/mock"
)

type MockBookingService struct{ mock.Mock }

func (m *MockBookingService) CreateBooking(ctx context.Context, renterID int64, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	args := m.Called(ctx, renterID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.BookingResponse), args.Error(1)
}

func (m *MockBookingService) DecideBooking(ctx context.Context, bookingID, ownerID int64, approved bool) (*response.BookingResponse, error) {
	args := m.Called(ctx, bookingID, ownerID, approved)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.BookingResponse), args.Error(1)
}

func (m *MockBookingService) GetBooking(ctx context.Context, bookingID, userID int64) (*response.BookingResponse, error) {
	args := m.Called(ctx, bookingID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.BookingResponse), args.Error(1)
}

func (m *MockBookingService) ListBookerBookings(ctx context.Context, renterID int64, state string, page request.PageRequest) ([]response.BookingResponse, error) {
	args := m.Called(ctx, renterID, state, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.BookingResponse), args.Error(1)
}

func (m *MockBookingService) ListOwnerBookings(ctx context.Context, ownerID int64, state string, page request.PageRequest) ([]response.BookingResponse, error) {
	args := m.Called(ctx, ownerID, state, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.BookingResponse), args.Error(1)
}

type MockItemService struct{ mock.Mock }

func (m *MockItemService) CreateItem(ctx context.Context, ownerID int64, req *request.CreateItemRequest) (*response.ItemResponse, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.ItemResponse), args.Error(1)
}

func (m *MockItemService) UpdateItem(ctx context.Context, itemID, ownerID int64, req *request.UpdateItemRequest) (*response.ItemResponse, error) {
	args := m.Called(ctx, itemID, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.ItemResponse), args.Error(1)
}

func (m *MockItemService) GetItem(ctx context.Context, itemID, viewerID int64) (*response.ItemResponse, error) {
	args := m.Called(ctx, itemID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.ItemResponse), args.Error(1)
}

func (m *MockItemService) ListOwnerItems(ctx context.Context, ownerID int64, page request.PageRequest) ([]response.ItemResponse, error) {
	args := m.Called(ctx, ownerID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.ItemResponse), args.Error(1)
}

func (m *MockItemService) SearchItems(ctx context.Context, text string, page request.PageRequest) ([]response.ItemResponse, error) {
	args := m.Called(ctx, text, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.ItemResponse), args.Error(1)
}

func (m *MockItemService) AddComment(ctx context.Context, itemID, authorID int64, req *request.CreateCommentRequest) (*response.CommentResponse, error) {
	args := m.Called(ctx, itemID, authorID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.CommentResponse), args.Error(1)
}

type MockUserService struct{ mock.Mock }

func (m *MockUserService) CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.UserResponse), args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, userID int64, req *request.UpdateUserRequest) (*response.UserResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.UserResponse), args.Error(1)
}

func (m *MockUserService) GetUser(ctx context.Context, userID int64) (*response.UserResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.UserResponse), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]response.UserResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.UserResponse), args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

type MockItemRequestService struct{ mock.Mock }

func (m *MockItemRequestService) CreateRequest(ctx context.Context, requesterID int64, req *request.CreateItemRequestRequest) (*response.ItemRequestResponse, error) {
	args := m.Called(ctx, requesterID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.ItemRequestResponse), args.Error(1)
}

func (m *MockItemRequestService) ListOwnRequests(ctx context.Context, requesterID int64) ([]response.ItemRequestResponse, error) {
	args := m.Called(ctx, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.ItemRequestResponse), args.Error(1)
}

func (m *MockItemRequestService) ListOtherRequests(ctx context.Context, userID int64, page request.PageRequest) ([]response.ItemRequestResponse, error) {
	args := m.Called(ctx, userID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.ItemRequestResponse), args.Error(1)
}

func (m *MockItemRequestService) GetRequest(ctx context.Context, requestID, userID int64) (*response.ItemRequestResponse, error) {
	args := m.Called(ctx, requestID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.ItemRequestResponse), args.Error(1)
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }
