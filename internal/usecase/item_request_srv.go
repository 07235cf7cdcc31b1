package usecase

import (
	"context"
	"strings"

	"shareit/internal/data/entity"
	"shareit/internal/data/repository"
	"shareit/internal/dto/request"
	"shareit/internal/dto/response"
	"shareit/pkg/apperror"
	"shareit/pkg/utils"

	"go.uber.org/zap"
)

type ItemRequestService interface {
	CreateRequest(ctx context.Context, requesterID int64, req *request.CreateItemRequestRequest) (*response.ItemRequestResponse, error)
	ListOwnRequests(ctx context.Context, requesterID int64) ([]response.ItemRequestResponse, error)
	ListOtherRequests(ctx context.Context, userID int64, page request.PageRequest) ([]response.ItemRequestResponse, error)
	GetRequest(ctx context.Context, requestID, userID int64) (*response.ItemRequestResponse, error)
}

type itemRequestService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewItemRequestService(repo *repository.Repository, log *zap.Logger) ItemRequestService {
	return &itemRequestService{
		repo: repo,
		log:  log.With(zap.String("service", "item_request")),
	}
}

func (s *itemRequestService) CreateRequest(ctx context.Context, requesterID int64, req *request.CreateItemRequestRequest) (*response.ItemRequestResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperror.Validation("validation failed: "+utils.FormatValidationErrors(errs), errs)
	}

	if err := s.requireUser(ctx, requesterID); err != nil {
		return nil, err
	}

	itemRequest := &entity.ItemRequest{Description: strings.TrimSpace(req.Description), RequesterID: requesterID}
	if err := s.repo.ItemRequest.Create(ctx, itemRequest); err != nil {
		return nil, err
	}

	s.log.Info("Item request created", zap.Int64("request_id", itemRequest.ID), zap.Int64("requester_id", requesterID))
	resp := response.ItemRequestToResponse(itemRequest, nil)
	return &resp, nil
}

func (s *itemRequestService) ListOwnRequests(ctx context.Context, requesterID int64) ([]response.ItemRequestResponse, error) {
	if err := s.requireUser(ctx, requesterID); err != nil {
		return nil, err
	}

	requests, err := s.repo.ItemRequest.FindByRequester(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	return s.withAnswers(ctx, requests)
}

func (s *itemRequestService) ListOtherRequests(ctx context.Context, userID int64, page request.PageRequest) ([]response.ItemRequestResponse, error) {
	if errs := utils.ValidateStruct(page); len(errs) > 0 {
		return nil, apperror.Validation("validation failed: "+utils.FormatValidationErrors(errs), errs)
	}

	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	requests, err := s.repo.ItemRequest.FindOthers(ctx, userID, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	return s.withAnswers(ctx, requests)
}

func (s *itemRequestService) GetRequest(ctx context.Context, requestID, userID int64) (*response.ItemRequestResponse, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	itemRequest, err := s.repo.ItemRequest.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if itemRequest == nil {
		return nil, apperror.NotFound("Item request with id %d not found", requestID)
	}

	out, err := s.withAnswers(ctx, []*entity.ItemRequest{itemRequest})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

// withAnswers attaches the items offered for each request using one query.
func (s *itemRequestService) withAnswers(ctx context.Context, requests []*entity.ItemRequest) ([]response.ItemRequestResponse, error) {
	ids := make([]int64, len(requests))
	for i, r := range requests {
		ids[i] = r.ID
	}

	items, err := s.repo.Item.FindByRequestIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]response.ItemRequestResponse, len(requests))
	for i, r := range requests {
		out[i] = response.ItemRequestToResponse(r, items)
	}
	return out, nil
}

func (s *itemRequestService) requireUser(ctx context.Context, userID int64) error {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NotFound("User with id %d not found", userID)
	}
	return nil
}
