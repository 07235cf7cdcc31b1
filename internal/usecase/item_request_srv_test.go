package usecase

import (
	"context"
	"testing"

	"shareit/internal/data/entity"
	"shareit/internal/data/repository"
	"shareit/internal/dto/request"
	"shareit/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newItemRequestFixture() (ItemRequestService, *MockUserRepo, *MockItemRepo, *MockItemRequestRepo) {
	users, items, requests := new(MockUserRepo), new(MockItemRepo), new(MockItemRequestRepo)
	repo := &repository.Repository{User: users, Item: items, ItemRequest: requests}
	return NewItemRequestService(repo, zap.NewNop()), users, items, requests
}

func TestItemRequestService(t *testing.T) {
	ctx := context.Background()
	alice := &entity.User{Base: entity.Base{ID: 1}, Name: "Alice"}

	t.Run("create", func(t *testing.T) {
		svc, users, _, requests := newItemRequestFixture()
		users.On("FindByID", ctx, int64(1)).Return(alice, nil)
		requests.On("Create", ctx, mock.MatchedBy(func(r *entity.ItemRequest) bool {
			return r.RequesterID == 1 && r.Description == "Need a ladder"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*entity.ItemRequest).ID = 5
		}).Return(nil)

		resp, err := svc.CreateRequest(ctx, 1, &request.CreateItemRequestRequest{Description: "Need a ladder"})

		require.NoError(t, err)
		assert.Equal(t, int64(5), resp.ID)
		assert.Empty(t, resp.Items)
		assert.NotNil(t, resp.Items)
	})

	t.Run("own requests carry their answers", func(t *testing.T) {
		svc, users, items, requests := newItemRequestFixture()
		users.On("FindByID", ctx, int64(1)).Return(alice, nil)
		requests.On("FindByRequester", ctx, int64(1)).Return([]*entity.ItemRequest{
			{Base: entity.Base{ID: 5}}, {Base: entity.Base{ID: 6}},
		}, nil)
		items.On("FindByRequestIDs", ctx, []int64{5, 6}).Return([]*entity.Item{
			{ID: 20, OwnerID: 2, RequestID: int64Ptr(6)},
		}, nil)

		out, err := svc.ListOwnRequests(ctx, 1)

		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.Empty(t, out[0].Items)
		require.Len(t, out[1].Items, 1)
		assert.Equal(t, int64(20), out[1].Items[0].ID)
		items.AssertNumberOfCalls(t, "FindByRequestIDs", 1)
	})

	t.Run("others are paged", func(t *testing.T) {
		svc, users, items, requests := newItemRequestFixture()
		users.On("FindByID", ctx, int64(1)).Return(alice, nil)
		requests.On("FindOthers", ctx, int64(1), 5, 5).Return([]*entity.ItemRequest{}, nil)
		items.On("FindByRequestIDs", ctx, []int64{}).Return([]*entity.Item{}, nil)

		out, err := svc.ListOtherRequests(ctx, 1, request.PageRequest{From: 7, Size: 5})

		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("get unknown request", func(t *testing.T) {
		svc, users, _, requests := newItemRequestFixture()
		users.On("FindByID", ctx, int64(1)).Return(alice, nil)
		requests.On("FindByID", ctx, int64(9)).Return(nil, nil)

		_, err := svc.GetRequest(ctx, 9, 1)

		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, users, _, _ := newItemRequestFixture()
		users.On("FindByID", ctx, int64(3)).Return(nil, nil)

		_, err := svc.GetRequest(ctx, 5, 3)

		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})
}
