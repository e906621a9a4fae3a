package entity

import (
	"database/sql"
	"time"
)

type Package struct {
	ID               string         `db:"id"`
	Title            string         `db:"title"`
	Description      sql.NullString `db:"description"`
	Price            float64        `db:"price"`
	DurationDays     int            `db:"duration_days"`
	DpDeadlineDays   sql.NullInt64  `db:"dp_deadline_days"`
	FullDeadlineDays sql.NullInt64  `db:"full_deadline_days"`
	ImageURL         sql.NullString `db:"image_url"`
	IsPublished      bool           `db:"is_published"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        sql.NullTime   `db:"updated_at"`
}

type PackageDeparture struct {
	ID            string    `db:"id"`
	PackageID     string    `db:"package_id"`
	DepartureDate time.Time `db:"departure_date"`
	Quota         int       `db:"quota"`
}

// PackageCommission holds the commission owed per pilgrim for one
// (package, pic_type) pair. The pair is unique.
type PackageCommission struct {
	ID               string  `db:"id"`
	PackageID        string  `db:"package_id"`
	PicType          string  `db:"pic_type"`
	CommissionAmount float64 `db:"commission_amount"`
}
