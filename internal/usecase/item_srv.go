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

type ItemService interface {
	CreateItem(ctx context.Context, ownerID int64, req *request.CreateItemRequest) (*response.ItemResponse, error)
	UpdateItem(ctx context.Context, itemID, ownerID int64, req *request.UpdateItemRequest) (*response.ItemResponse, error)
	GetItem(ctx context.Context, itemID, viewerID int64) (*response.ItemResponse, error)
	ListOwnerItems(ctx context.Context, ownerID int64, page request.PageRequest) ([]response.ItemResponse, error)
	SearchItems(ctx context.Context, text string, page request.PageRequest) ([]response.ItemResponse, error)
	AddComment(ctx context.Context, itemID, authorID int64, req *request.CreateCommentRequest) (*response.CommentResponse, error)
}

type itemService struct {
	repo         *repository.Repository
	availability AvailabilityProjector
	gate         CommentGate
	log          *zap.Logger
}

func NewItemService(repo *repository.Repository, availability AvailabilityProjector, gate CommentGate, log *zap.Logger) ItemService {
	return &itemService{
		repo:         repo,
		availability: availability,
		gate:         gate,
		log:          log.With(zap.String("service", "item")),
	}
}

func (s *itemService) CreateItem(ctx context.Context, ownerID int64, req *request.CreateItemRequest) (*response.ItemResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperror.Validation("validation failed: "+utils.FormatValidationErrors(errs), errs)
	}

	if err := s.requireUser(ctx, ownerID); err != nil {
		return nil, err
	}

	if req.RequestID != nil {
		itemRequest, err := s.repo.ItemRequest.FindByID(ctx, *req.RequestID)
		if err != nil {
			return nil, err
		}
		if itemRequest == nil {
			return nil, apperror.NotFound("Item request with id %d not found", *req.RequestID)
		}
	}

	item := &entity.Item{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Available:   *req.Available,
		OwnerID:     ownerID,
		RequestID:   req.RequestID,
	}
	if err := s.repo.Item.Create(ctx, item); err != nil {
		return nil, err
	}

	s.log.Info("Item created", zap.Int64("item_id", item.ID), zap.Int64("owner_id", ownerID))
	resp := response.ItemToResponse(item)
	return &resp, nil
}

func (s *itemService) UpdateItem(ctx context.Context, itemID, ownerID int64, req *request.UpdateItemRequest) (*response.ItemResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperror.Validation("validation failed: "+utils.FormatValidationErrors(errs), errs)
	}

	item, err := s.findItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.OwnerID != ownerID {
		s.log.Warn("Item update by non-owner", zap.Int64("item_id", itemID), zap.Int64("user_id", ownerID))
		return nil, apperror.NotFound("Item with id %d not found for owner %d", itemID, ownerID)
	}

	if req.Name != nil {
		item.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		item.Description = strings.TrimSpace(*req.Description)
	}
	if req.Available != nil {
		item.Available = *req.Available
	}

	if err := s.repo.Item.Update(ctx, item); err != nil {
		return nil, err
	}

	s.log.Info("Item updated", zap.Int64("item_id", itemID))
	resp := response.ItemToResponse(item)
	return &resp, nil
}

func (s *itemService) GetItem(ctx context.Context, itemID, viewerID int64) (*response.ItemResponse, error) {
	item, err := s.findItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	availability, err := s.availability.ForItem(ctx, item, viewerID)
	if err != nil {
		return nil, err
	}

	comments, err := s.repo.Comment.FindByItemIDs(ctx, []int64{item.ID})
	if err != nil {
		return nil, err
	}

	resp := response.ItemToResponse(item)
	resp.LastBooking = response.BookingToShortResponse(availability.Last)
	resp.NextBooking = response.BookingToShortResponse(availability.Next)
	for _, c := range comments {
		resp.Comments = append(resp.Comments, response.CommentToResponse(c))
	}
	return &resp, nil
}

func (s *itemService) ListOwnerItems(ctx context.Context, ownerID int64, page request.PageRequest) ([]response.ItemResponse, error) {
	if errs := utils.ValidateStruct(page); len(errs) > 0 {
		return nil, apperror.Validation("validation failed: "+utils.FormatValidationErrors(errs), errs)
	}

	if err := s.requireUser(ctx, ownerID); err != nil {
		return nil, err
	}

	items, err := s.repo.Item.FindByOwner(ctx, ownerID, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}

	ids := make([]int64, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}

	availability, err := s.availability.ForOwnerItems(ctx, ownerID, ownerID, ids)
	if err != nil {
		return nil, err
	}

	comments, err := s.repo.Comment.FindByItemIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byItem := make(map[int64][]response.CommentResponse, len(items))
	for _, c := range comments {
		byItem[c.ItemID] = append(byItem[c.ItemID], response.CommentToResponse(c))
	}

	out := make([]response.ItemResponse, len(items))
	for i, item := range items {
		resp := response.ItemToResponse(item)
		resp.LastBooking = response.BookingToShortResponse(availability[item.ID].Last)
		resp.NextBooking = response.BookingToShortResponse(availability[item.ID].Next)
		if c, ok := byItem[item.ID]; ok {
			resp.Comments = c
		}
		out[i] = resp
	}
	return out, nil
}

func (s *itemService) SearchItems(ctx context.Context, text string, page request.PageRequest) ([]response.ItemResponse, error) {
	if errs := utils.ValidateStruct(page); len(errs) > 0 {
		return nil, apperror.Validation("validation failed: "+utils.FormatValidationErrors(errs), errs)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return []response.ItemResponse{}, nil
	}

	items, err := s.repo.Item.Search(ctx, text, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}

	out := make([]response.ItemResponse, len(items))
	for i, item := range items {
		out[i] = response.ItemToResponse(item)
	}
	return out, nil
}

func (s *itemService) AddComment(ctx context.Context, itemID, authorID int64, req *request.CreateCommentRequest) (*response.CommentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperror.Validation("validation failed: "+utils.FormatValidationErrors(errs), errs)
	}

	author, err := s.repo.User.FindByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, apperror.NotFound("User with id %d not found", authorID)
	}

	if _, err := s.findItem(ctx, itemID); err != nil {
		return nil, err
	}

	if err := s.gate.Check(ctx, authorID, itemID); err != nil {
		return nil, err
	}

	comment := &entity.Comment{
		Text:       strings.TrimSpace(req.Text),
		ItemID:     itemID,
		AuthorID:   authorID,
		AuthorName: author.Name,
	}
	if err := s.repo.Comment.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.log.Info("Comment added", zap.Int64("comment_id", comment.ID), zap.Int64("item_id", itemID))
	resp := response.CommentToResponse(comment)
	return &resp, nil
}

func (s *itemService) findItem(ctx context.Context, itemID int64) (*entity.Item, error) {
	item, err := s.repo.Item.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NotFound("Item with id %d not found", itemID)
	}
	return item, nil
}

func (s *itemService) requireUser(ctx context.Context, userID int64) error {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NotFound("User with id %d not found", userID)
	}
	return nil
}
