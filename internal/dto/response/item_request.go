package response

import (
	"time"

	"shareit/internal/data/entity"
)

type ItemRequestResponse struct {
	ID          int64                 `json:"id"`
	Description string                `json:"description"`
	Created     time.Time             `json:"created"`
	Items       []RequestItemResponse `json:"items"`
}

// RequestItemResponse is an item offered in answer to a request.
type RequestItemResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     int64  `json:"ownerId"`
	RequestID   int64  `json:"requestId"`
}

func ItemRequestToResponse(req *entity.ItemRequest, items []*entity.Item) ItemRequestResponse {
	answers := make([]RequestItemResponse, 0, len(items))
	for _, item := range items {
		if item.RequestID == nil || *item.RequestID != req.ID {
			continue
		}
		answers = append(answers, RequestItemResponse{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Available:   item.Available,
			OwnerID:     item.OwnerID,
			RequestID:   req.ID,
		})
	}

	return ItemRequestResponse{
		ID:          req.ID,
		Description: req.Description,
		Created:     req.CreatedAt,
		Items:       answers,
	}
}
