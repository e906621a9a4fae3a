package http

import (
	"umroh-service/src/internal/delivery/http/middleware"
	"umroh-service/src/internal/model"
	"umroh-service/src/internal/usecase"
	"umroh-service/src/pkg/log"
	"umroh-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type NotificationController struct {
	Log     log.Log
	UseCase *usecase.NotificationUseCase
}

func NewNotificationController(useCase *usecase.NotificationUseCase, logger log.Log) *NotificationController {
	return &NotificationController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *NotificationController) List(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	result := c.UseCase.ListByUser(ctx.Context(), auth.UserID)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Notifications", fiber.StatusOK, ctx)
}

func (c *NotificationController) MarkRead(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := &model.MarkNotificationReadRequest{
		ID:     ctx.Params("id"),
		UserID: auth.UserID,
	}

	result := c.UseCase.MarkRead(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Mark Notification Read", fiber.StatusOK, ctx)
}
