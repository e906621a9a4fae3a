package model

import "time"

type NotificationResponse struct {
	ID        string    `json:"id"`
	BookingID string    `json:"bookingId,omitempty"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

type MarkNotificationReadRequest struct {
	ID     string `json:"-" validate:"required"`
	UserID string `json:"-" validate:"required"`
}
