package usecase

import (
	"context"
	"fmt"
	"time"

	"umroh-service/src/internal/model"
	"umroh-service/src/internal/model/converter"
	"umroh-service/src/internal/repository"
	httpError "umroh-service/src/pkg/http-error"
	"umroh-service/src/pkg/log"
	"umroh-service/src/pkg/utils"
)

// ContentUseCase serves the public marketing pages: published packages,
// testimonials and the FAQ.
type ContentUseCase struct {
	Log                   log.Log
	PackageRepository     repository.PackageRepository
	DepartureRepository   repository.DepartureRepository
	TestimonialRepository repository.TestimonialRepository
	FaqRepository         repository.FaqRepository
}

func NewContentUseCase(
	logger log.Log,
	packageRepository repository.PackageRepository,
	departureRepository repository.DepartureRepository,
	testimonialRepository repository.TestimonialRepository,
	faqRepository repository.FaqRepository,
) *ContentUseCase {
	return &ContentUseCase{
		Log:                   logger,
		PackageRepository:     packageRepository,
		DepartureRepository:   departureRepository,
		TestimonialRepository: testimonialRepository,
		FaqRepository:         faqRepository,
	}
}

func (c *ContentUseCase) ListPublishedPackages(ctx context.Context) utils.Result {
	var result utils.Result

	packages, err := c.PackageRepository.FindPublished(ctx)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to list packages: %v", err)
		result.Error = errObj
		c.Log.Error("content-usecase", errObj.Message, "ListPublishedPackages", "")
		return result
	}

	now := time.Now()
	responses := make([]model.PackageResponse, 0, len(packages))
	for i := range packages {
		next, err := c.DepartureRepository.FindNextByPackageID(ctx, packages[i].ID, now)
		if err != nil {
			c.Log.Error("content-usecase", fmt.Sprintf("next departure lookup failed: %v", err), "ListPublishedPackages", packages[i].ID)
			next = nil
		}
		responses = append(responses, *converter.PackageToResponse(&packages[i], next))
	}

	result.Data = responses
	return result
}

func (c *ContentUseCase) GetPackage(ctx context.Context, id string) utils.Result {
	var result utils.Result

	pkg, err := c.PackageRepository.FindByID(ctx, id)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("package with id %s not found", id)
		result.Error = errObj
		c.Log.Error("content-usecase", err.Error(), "GetPackage", id)
		return result
	}

	next, err := c.DepartureRepository.FindNextByPackageID(ctx, pkg.ID, time.Now())
	if err != nil {
		c.Log.Error("content-usecase", fmt.Sprintf("next departure lookup failed: %v", err), "GetPackage", id)
		next = nil
	}

	result.Data = converter.PackageToResponse(pkg, next)
	return result
}

func (c *ContentUseCase) ListTestimonials(ctx context.Context) utils.Result {
	var result utils.Result

	testimonials, err := c.TestimonialRepository.FindAll(ctx)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to list testimonials: %v", err)
		result.Error = errObj
		c.Log.Error("content-usecase", errObj.Message, "ListTestimonials", "")
		return result
	}

	responses := make([]model.TestimonialResponse, 0, len(testimonials))
	for i := range testimonials {
		responses = append(responses, *converter.TestimonialToResponse(&testimonials[i]))
	}

	result.Data = responses
	return result
}

func (c *ContentUseCase) ListFaqs(ctx context.Context) utils.Result {
	var result utils.Result

	faqs, err := c.FaqRepository.FindAll(ctx)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to list faqs: %v", err)
		result.Error = errObj
		c.Log.Error("content-usecase", errObj.Message, "ListFaqs", "")
		return result
	}

	responses := make([]model.FaqResponse, 0, len(faqs))
	for i := range faqs {
		responses = append(responses, *converter.FaqToResponse(&faqs[i]))
	}

	result.Data = responses
	return result
}
