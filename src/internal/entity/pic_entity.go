package entity

import (
	"database/sql"
	"time"
)

type Agent struct {
	ID        string         `db:"id"`
	Name      string         `db:"name"`
	Phone     sql.NullString `db:"phone"`
	City      sql.NullString `db:"city"`
	IsActive  bool           `db:"is_active"`
	CreatedAt time.Time      `db:"created_at"`
}

type Branch struct {
	ID   string         `db:"id"`
	Name string         `db:"name"`
	City sql.NullString `db:"city"`
}

// Profile is the employee identity row used for karyawan PIC resolution.
type Profile struct {
	ID   string `db:"id"`
	Name string `db:"name"`
}
