package entity

import "time"

// Base carries the identity columns shared by every table.
type Base struct {
	ID        int64     `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}
