package http

import (
	"umroh-service/src/internal/model"
	"umroh-service/src/internal/usecase"
	"umroh-service/src/pkg/log"
	"umroh-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type CatalogController struct {
	Log     log.Log
	UseCase *usecase.CatalogUseCase
}

func NewCatalogController(useCase *usecase.CatalogUseCase, logger log.Log) *CatalogController {
	return &CatalogController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *CatalogController) CreatePackage(ctx *fiber.Ctx) error {
	request := new(model.CreatePackageRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("CatalogController.CreatePackage", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.CreatePackage(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Create Package", fiber.StatusCreated, ctx)
}

func (c *CatalogController) UpdatePackage(ctx *fiber.Ctx) error {
	request := new(model.UpdatePackageRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("CatalogController.UpdatePackage", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.ID = ctx.Params("id")

	result := c.UseCase.UpdatePackage(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Update Package", fiber.StatusOK, ctx)
}

func (c *CatalogController) ListPackages(ctx *fiber.Ctx) error {
	result := c.UseCase.ListPackages(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "List Packages", fiber.StatusOK, ctx)
}

func (c *CatalogController) UpsertCommissionRate(ctx *fiber.Ctx) error {
	request := new(model.UpsertCommissionRateRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("CatalogController.UpsertCommissionRate", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.UpsertCommissionRate(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Upsert Commission Rate", fiber.StatusOK, ctx)
}

func (c *CatalogController) ListCommissionRates(ctx *fiber.Ctx) error {
	result := c.UseCase.ListCommissionRates(ctx.Context(), ctx.Params("id"))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "List Commission Rates", fiber.StatusOK, ctx)
}

func (c *CatalogController) CreateAgent(ctx *fiber.Ctx) error {
	request := new(model.CreateAgentRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("CatalogController.CreateAgent", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.CreateAgent(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Create Agent", fiber.StatusCreated, ctx)
}

func (c *CatalogController) ListAgents(ctx *fiber.Ctx) error {
	result := c.UseCase.ListAgents(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "List Agents", fiber.StatusOK, ctx)
}

func (c *CatalogController) ListBookings(ctx *fiber.Ctx) error {
	request := &model.ListBookingsRequest{
		Status: ctx.Query("status"),
	}

	result := c.UseCase.ListBookings(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "List Bookings", fiber.StatusOK, ctx)
}
