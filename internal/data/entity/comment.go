package entity

type Comment struct {
	Base
	Text     string `db:"text"`
	ItemID   int64  `db:"item_id"`
	AuthorID int64  `db:"author_id"`

	// AuthorName is joined from users on read.
	AuthorName string `db:"author_name"`
}
