package repository

import (
	"context"
	"time"

	"umroh-service/src/internal/entity"
	"umroh-service/src/pkg/databases/mysql"
)

type BookingRepository interface {
	// FindCommissionable returns in-window bookings that carry both PIC fields
	// and are not cancelled.
	FindCommissionable(ctx context.Context, start, end time.Time) ([]entity.Booking, error)
	// FindOpen returns bookings still awaiting money.
	FindOpen(ctx context.Context) ([]entity.Booking, error)
	FindAll(ctx context.Context, status string) ([]entity.Booking, error)
}

type bookingRepository struct {
	DB mysql.DBInterface
}

func NewBookingRepository(db mysql.DBInterface) BookingRepository {
	return &bookingRepository{
		DB: db,
	}
}

func (r *bookingRepository) FindCommissionable(ctx context.Context, start, end time.Time) ([]entity.Booking, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var bookings []entity.Booking
	query := `
		SELECT
			b.id,
			b.code,
			b.user_id,
			b.total_price,
			b.status,
			b.package_id,
			b.departure_id,
			b.pic_id,
			b.pic_type,
			b.created_at
		FROM bookings b
		WHERE b.created_at >= ?
		AND b.created_at <= ?
		AND b.pic_id IS NOT NULL
		AND b.pic_type IS NOT NULL
		AND b.status != 'cancelled'
		ORDER BY b.created_at ASC
	`

	err = db.SelectContext(ctx, &bookings, query, start, end)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *bookingRepository) FindOpen(ctx context.Context) ([]entity.Booking, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var bookings []entity.Booking
	query := `
		SELECT
			b.id,
			b.code,
			b.user_id,
			b.total_price,
			b.status,
			b.package_id,
			b.departure_id,
			b.pic_id,
			b.pic_type,
			b.created_at
		FROM bookings b
		WHERE b.status IN ('draft', 'waiting_payment', 'partial_paid')
	`

	err = db.SelectContext(ctx, &bookings, query)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *bookingRepository) FindAll(ctx context.Context, status string) ([]entity.Booking, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	query := `
		SELECT
			b.id,
			b.code,
			b.user_id,
			b.total_price,
			b.status,
			b.package_id,
			b.departure_id,
			b.pic_id,
			b.pic_type,
			b.created_at
		FROM bookings b
	`
	args := []interface{}{}
	if status != "" {
		query += ` WHERE b.status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY b.created_at DESC`

	var bookings []entity.Booking
	err = db.SelectContext(ctx, &bookings, query, args...)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}
