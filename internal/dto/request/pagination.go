package request

import "shareit/pkg/utils"

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// PageRequest is the from/size window used by every list endpoint.
type PageRequest struct {
	From int `json:"from" validate:"min=0"`
	Size int `json:"size" validate:"min=1,max=100"`
}

func (p PageRequest) Limit() int {
	return p.Size
}

func (p PageRequest) Offset() int {
	return utils.PageOffset(p.From, p.Size)
}
