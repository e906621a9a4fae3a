package jobs

import (
	"context"
	"fmt"
	"time"

	"umroh-service/src/internal/model"
	"umroh-service/src/internal/usecase"
	"umroh-service/src/pkg/log"

	"github.com/hibiken/asynq"
)

const TypeReminderSweep = "reminder:sweep"

type ReminderTask struct {
	UseCase *usecase.ReminderUseCase
	Log     log.Log
}

func NewReminderTask(useCase *usecase.ReminderUseCase, logger log.Log) *ReminderTask {
	return &ReminderTask{
		UseCase: useCase,
		Log:     logger,
	}
}

func (t *ReminderTask) HandleSweep(ctx context.Context, task *asynq.Task) error {
	result := t.UseCase.RunSweep(ctx, time.Now())
	if result.Error != nil {
		t.Log.Error("reminder-task", result.Error.Error(), "HandleSweep", "")
		return result.Error
	}

	response := result.Data.(*model.ReminderSweepResponse)
	t.Log.Info("reminder-task",
		fmt.Sprintf("scheduled sweep created %d notifications", response.NotificationsCreated),
		"HandleSweep", "")
	return nil
}
