package repository

import (
	"context"
	"database/sql"
	"time"

	"umroh-service/src/internal/entity"
	"umroh-service/src/pkg/databases/mysql"
)

type NotificationRepository interface {
	// FindByBookingSince returns a booking's notifications created at or after
	// the given instant, newest first.
	FindByBookingSince(ctx context.Context, bookingID string, since time.Time) ([]entity.Notification, error)
	// BatchInsert persists the whole sweep output in one statement.
	BatchInsert(ctx context.Context, notifications []entity.Notification) error
	FindByUser(ctx context.Context, userID string) ([]entity.Notification, error)
	MarkRead(ctx context.Context, id, userID string) error
}

type notificationRepository struct {
	DB mysql.DBInterface
}

func NewNotificationRepository(db mysql.DBInterface) NotificationRepository {
	return &notificationRepository{
		DB: db,
	}
}

func (r *notificationRepository) FindByBookingSince(ctx context.Context, bookingID string, since time.Time) ([]entity.Notification, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var notifications []entity.Notification
	query := `
		SELECT n.id, n.user_id, n.booking_id, n.type, n.title, n.message, n.is_read, n.created_at
		FROM notifications n
		WHERE n.booking_id = ?
		AND n.created_at >= ?
		ORDER BY n.created_at DESC
	`

	err = db.SelectContext(ctx, &notifications, query, bookingID, since)
	if err != nil {
		return nil, err
	}

	return notifications, nil
}

func (r *notificationRepository) BatchInsert(ctx context.Context, notifications []entity.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO notifications
			(id, user_id, booking_id, type, title, message, is_read, created_at)
		VALUES
			(:id, :user_id, :booking_id, :type, :title, :message, :is_read, :created_at)
	`

	_, err = db.NamedExecContext(ctx, query, notifications)
	return err
}

func (r *notificationRepository) FindByUser(ctx context.Context, userID string) ([]entity.Notification, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var notifications []entity.Notification
	query := `
		SELECT n.id, n.user_id, n.booking_id, n.type, n.title, n.message, n.is_read, n.created_at
		FROM notifications n
		WHERE n.user_id = ?
		ORDER BY n.created_at DESC
		LIMIT 100
	`

	err = db.SelectContext(ctx, &notifications, query, userID)
	if err != nil {
		return nil, err
	}

	return notifications, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id, userID string) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	result, err := db.ExecContext(ctx,
		`UPDATE notifications SET is_read = 1 WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
