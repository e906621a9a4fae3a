package http

import (
	"umroh-service/src/internal/model"
	"umroh-service/src/internal/usecase"
	"umroh-service/src/pkg/log"
	"umroh-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type ReportController struct {
	Log     log.Log
	UseCase *usecase.CommissionUseCase
}

func NewReportController(useCase *usecase.CommissionUseCase, logger log.Log) *ReportController {
	return &ReportController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *ReportController) CommissionReport(ctx *fiber.Ctx) error {
	request := new(model.CommissionReportRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("ReportController.CommissionReport", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.ComputeCommissions(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Commission Report", fiber.StatusOK, ctx)
}
