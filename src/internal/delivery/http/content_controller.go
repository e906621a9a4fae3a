package http

import (
	"umroh-service/src/internal/usecase"
	"umroh-service/src/pkg/log"
	"umroh-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type ContentController struct {
	Log     log.Log
	UseCase *usecase.ContentUseCase
}

func NewContentController(useCase *usecase.ContentUseCase, logger log.Log) *ContentController {
	return &ContentController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *ContentController) ListPackages(ctx *fiber.Ctx) error {
	result := c.UseCase.ListPublishedPackages(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Public Packages", fiber.StatusOK, ctx)
}

func (c *ContentController) GetPackage(ctx *fiber.Ctx) error {
	result := c.UseCase.GetPackage(ctx.Context(), ctx.Params("id"))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Public Package Detail", fiber.StatusOK, ctx)
}

func (c *ContentController) ListTestimonials(ctx *fiber.Ctx) error {
	result := c.UseCase.ListTestimonials(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Testimonials", fiber.StatusOK, ctx)
}

func (c *ContentController) ListFaqs(ctx *fiber.Ctx) error {
	result := c.UseCase.ListFaqs(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "FAQ", fiber.StatusOK, ctx)
}
