package model

import "time"

// NotificationEvent is published after a reminder sweep persists its batch.
type NotificationEvent struct {
	SweepID   string                 `json:"sweep_id"`
	RanAt     time.Time              `json:"ran_at"`
	Count     int                    `json:"count"`
	Reminders []NotificationResponse `json:"reminders"`
}

func (e *NotificationEvent) GetId() string {
	return e.SweepID
}
