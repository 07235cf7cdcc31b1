package request

type CreateItemRequest struct {
	Name        string `json:"name" validate:"required,notblank,max=300"`
	Description string `json:"description" validate:"required,notblank,max=1000"`
	Available   *bool  `json:"available" validate:"required"`
	RequestID   *int64 `json:"requestId,omitempty" validate:"omitempty,gt=0"`
}

// UpdateItemRequest is a partial update: nil fields keep their stored value.
type UpdateItemRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,notblank,max=300"`
	Description *string `json:"description,omitempty" validate:"omitempty,notblank,max=1000"`
	Available   *bool   `json:"available,omitempty"`
}

type CreateCommentRequest struct {
	Text string `json:"text" validate:"required,notblank,max=1000"`
}
