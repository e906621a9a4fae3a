package repository

import (
	"context"

	"umroh-service/src/pkg/databases/mysql"
)

type PaymentRepository interface {
	// SumPaidByBooking totals the paid payments of one booking, 0 when none.
	SumPaidByBooking(ctx context.Context, bookingID string) (float64, error)
}

type paymentRepository struct {
	DB mysql.DBInterface
}

func NewPaymentRepository(db mysql.DBInterface) PaymentRepository {
	return &paymentRepository{
		DB: db,
	}
}

func (r *paymentRepository) SumPaidByBooking(ctx context.Context, bookingID string) (float64, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return 0, err
	}

	var total float64
	query := `
		SELECT COALESCE(SUM(p.amount), 0)
		FROM payments p
		WHERE p.booking_id = ?
		AND p.status = 'paid'
	`

	err = db.GetContext(ctx, &total, query, bookingID)
	if err != nil {
		return 0, err
	}

	return total, nil
}
