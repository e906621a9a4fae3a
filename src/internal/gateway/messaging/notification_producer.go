package messaging

import (
	"umroh-service/src/internal/model"
	kafka "umroh-service/src/pkg/kafka/confluent"
	"umroh-service/src/pkg/log"
)

type NotificationProducer struct {
	SweepResultProducer Producer[*model.NotificationEvent]
}

func NewNotificationProducer(producer kafka.Producer, log log.Log) *NotificationProducer {
	return &NotificationProducer{
		SweepResultProducer: Producer[*model.NotificationEvent]{
			Producer: producer,
			Topic:    "booking-notifications",
			Log:      log,
		},
	}
}

func (u *NotificationProducer) SendSweepResult(event *model.NotificationEvent) error {
	return u.SweepResultProducer.Send(event)
}
