package entity

import (
	"time"
)

// Base is embedded by soft-deletable records. IDs are bigserial,
// assigned by the database at insert.
type Base struct {
	ID        int64      `db:"id"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

type BaseNoDelete struct {
	ID        int64     `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type BaseSimple struct {
	ID        int64     `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}
