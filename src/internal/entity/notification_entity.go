package entity

import (
	"database/sql"
	"time"
)

const (
	NotificationTypeDpReminder   = "dp_reminder"
	NotificationTypeFullReminder = "full_reminder"
	NotificationTypeOverdue      = "overdue"
)

type Notification struct {
	ID        string         `db:"id"`
	UserID    string         `db:"user_id"`
	BookingID sql.NullString `db:"booking_id"`
	Type      string         `db:"type"`
	Title     string         `db:"title"`
	Message   string         `db:"message"`
	IsRead    bool           `db:"is_read"`
	CreatedAt time.Time      `db:"created_at"`
}
