package entity

type ItemRequest struct {
	Base
	Description string `db:"description"`
	RequesterID int64  `db:"requester_id"`
}
