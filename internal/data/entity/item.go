package entity

type Item struct {
	ID          int64  `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Available   bool   `db:"available"`
	OwnerID     int64  `db:"owner_id"`
	RequestID   *int64 `db:"request_id"`
}
