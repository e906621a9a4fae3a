package entity

import (
	"database/sql"
	"time"
)

const (
	BookingStatusDraft          = "draft"
	BookingStatusWaitingPayment = "waiting_payment"
	BookingStatusPartialPaid    = "partial_paid"
	BookingStatusPaid           = "paid"
	BookingStatusCancelled      = "cancelled"
)

const (
	PicTypeCabang   = "cabang"
	PicTypeAgen     = "agen"
	PicTypeKaryawan = "karyawan"
)

type Booking struct {
	ID          string         `db:"id"`
	Code        string         `db:"code"`
	UserID      string         `db:"user_id"`
	TotalPrice  float64        `db:"total_price"`
	Status      string         `db:"status"`
	PackageID   sql.NullString `db:"package_id"`
	DepartureID sql.NullString `db:"departure_id"`
	PicID       sql.NullString `db:"pic_id"`
	PicType     sql.NullString `db:"pic_type"`
	CreatedAt   time.Time      `db:"created_at"`
}

const (
	PaymentStatusPaid    = "paid"
	PaymentStatusPending = "pending"
	PaymentStatusFailed  = "failed"
)

type Payment struct {
	ID        string    `db:"id"`
	BookingID string    `db:"booking_id"`
	Amount    float64   `db:"amount"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}
