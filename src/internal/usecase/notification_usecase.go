package usecase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"umroh-service/src/internal/model"
	"umroh-service/src/internal/model/converter"
	"umroh-service/src/internal/repository"
	httpError "umroh-service/src/pkg/http-error"
	"umroh-service/src/pkg/log"
	"umroh-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
)

type NotificationUseCase struct {
	Log                    log.Log
	Validate               *validator.Validate
	NotificationRepository repository.NotificationRepository
}

func NewNotificationUseCase(
	logger log.Log,
	validate *validator.Validate,
	notificationRepository repository.NotificationRepository,
) *NotificationUseCase {
	return &NotificationUseCase{
		Log:                    logger,
		Validate:               validate,
		NotificationRepository: notificationRepository,
	}
}

func (c *NotificationUseCase) ListByUser(ctx context.Context, userID string) utils.Result {
	var result utils.Result

	notifications, err := c.NotificationRepository.FindByUser(ctx, userID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to list notifications: %v", err)
		result.Error = errObj
		c.Log.Error("notification-usecase", errObj.Message, "ListByUser", userID)
		return result
	}

	responses := make([]model.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, *converter.NotificationToResponse(&notifications[i]))
	}

	result.Data = responses
	return result
}

func (c *NotificationUseCase) MarkRead(ctx context.Context, request *model.MarkNotificationReadRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("notification-usecase", err.Error(), "MarkRead-validation", utils.ConvertString(request))
		return result
	}

	if err := c.NotificationRepository.MarkRead(ctx, request.ID, request.UserID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			errObj := httpError.NewNotFound()
			errObj.Message = fmt.Sprintf("notification with id %s not found", request.ID)
			result.Error = errObj
			return result
		}
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to mark notification read: %v", err)
		result.Error = errObj
		c.Log.Error("notification-usecase", errObj.Message, "MarkRead", request.ID)
		return result
	}

	result.Data = map[string]bool{"updated": true}
	return result
}
