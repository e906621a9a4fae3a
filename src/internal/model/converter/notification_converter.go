package converter

import (
	"time"

	"umroh-service/src/internal/entity"
	"umroh-service/src/internal/model"
)

func NotificationToResponse(n *entity.Notification) *model.NotificationResponse {
	return &model.NotificationResponse{
		ID:        n.ID,
		BookingID: n.BookingID.String,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

func NotificationsToEvent(sweepID string, ranAt time.Time, notifications []entity.Notification) *model.NotificationEvent {
	reminders := make([]model.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		reminders = append(reminders, *NotificationToResponse(&notifications[i]))
	}

	return &model.NotificationEvent{
		SweepID:   sweepID,
		RanAt:     ranAt,
		Count:     len(notifications),
		Reminders: reminders,
	}
}
