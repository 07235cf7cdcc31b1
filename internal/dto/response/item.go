package response

import (
	"time"

	"shareit/internal/data/entity"
)

type ItemShortResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ItemResponse struct {
	ID          int64                 `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Available   bool                  `json:"available"`
	RequestID   *int64                `json:"requestId,omitempty"`
	LastBooking *BookingShortResponse `json:"lastBooking"`
	NextBooking *BookingShortResponse `json:"nextBooking"`
	Comments    []CommentResponse     `json:"comments"`
}

type CommentResponse struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

func ItemToResponse(item *entity.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Available:   item.Available,
		RequestID:   item.RequestID,
		Comments:    []CommentResponse{},
	}
}

func CommentToResponse(c *entity.Comment) CommentResponse {
	return CommentResponse{ID: c.ID, Text: c.Text, AuthorName: c.AuthorName, Created: c.CreatedAt}
}
