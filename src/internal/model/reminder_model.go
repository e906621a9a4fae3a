package model

type ReminderSweepResponse struct {
	NotificationsCreated int `json:"notificationsCreated"`
}
