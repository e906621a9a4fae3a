package http

import (
	"time"

	"umroh-service/src/internal/model"
	"umroh-service/src/internal/usecase"
	httpError "umroh-service/src/pkg/http-error"
	"umroh-service/src/pkg/log"

	"github.com/gofiber/fiber/v2"
)

type JobController struct {
	Log     log.Log
	UseCase *usecase.ReminderUseCase
}

func NewJobController(useCase *usecase.ReminderUseCase, logger log.Log) *JobController {
	return &JobController{
		Log:     logger,
		UseCase: useCase,
	}
}

// ReminderSweep is the externally scheduled trigger. Its response shape is a
// fixed contract with the invoking scheduler: {"success": true,
// "notificationsCreated": n} or {"error": "..."} with a failure status.
func (c *JobController) ReminderSweep(ctx *fiber.Ctx) error {
	result := c.UseCase.RunSweep(ctx.Context(), time.Now())
	if result.Error != nil {
		code := fiber.StatusInternalServerError
		if commonErr, ok := result.Error.(*httpError.CommonError); ok {
			code = commonErr.Code
		}
		return ctx.Status(code).JSON(fiber.Map{
			"error": result.Error.Error(),
		})
	}

	response := result.Data.(*model.ReminderSweepResponse)
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":              true,
		"notificationsCreated": response.NotificationsCreated,
	})
}
