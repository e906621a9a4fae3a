package repository

import (
	"context"

	"umroh-service/src/pkg/databases/mysql"

	"github.com/jmoiron/sqlx"
)

type PilgrimRepository interface {
	// CountByBookingIDs maps booking id to its pilgrim count. Bookings with no
	// pilgrim rows are simply absent from the map.
	CountByBookingIDs(ctx context.Context, bookingIDs []string) (map[string]int, error)
}

type pilgrimRepository struct {
	DB mysql.DBInterface
}

func NewPilgrimRepository(db mysql.DBInterface) PilgrimRepository {
	return &pilgrimRepository{
		DB: db,
	}
}

type pilgrimCountRow struct {
	BookingID string `db:"booking_id"`
	Total     int    `db:"total"`
}

func (r *pilgrimRepository) CountByBookingIDs(ctx context.Context, bookingIDs []string) (map[string]int, error) {
	counts := make(map[string]int)
	if len(bookingIDs) == 0 {
		return counts, nil
	}

	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	query, args, err := sqlx.In(`
		SELECT bp.booking_id, COUNT(*) AS total
		FROM booking_pilgrims bp
		WHERE bp.booking_id IN (?)
		GROUP BY bp.booking_id
	`, bookingIDs)
	if err != nil {
		return nil, err
	}

	var rows []pilgrimCountRow
	err = db.SelectContext(ctx, &rows, db.Rebind(query), args...)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.BookingID] = row.Total
	}

	return counts, nil
}
