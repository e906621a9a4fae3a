package usecase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"umroh-service/src/internal/entity"
	"umroh-service/src/internal/model"
	"umroh-service/src/internal/model/converter"
	"umroh-service/src/internal/repository"
	httpError "umroh-service/src/pkg/http-error"
	"umroh-service/src/pkg/log"
	"umroh-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type CatalogUseCase struct {
	Log                  log.Log
	Validate             *validator.Validate
	PackageRepository    repository.PackageRepository
	CommissionRepository repository.CommissionRepository
	AgentRepository      repository.AgentRepository
	BookingRepository    repository.BookingRepository
}

func NewCatalogUseCase(
	logger log.Log,
	validate *validator.Validate,
	packageRepository repository.PackageRepository,
	commissionRepository repository.CommissionRepository,
	agentRepository repository.AgentRepository,
	bookingRepository repository.BookingRepository,
) *CatalogUseCase {
	return &CatalogUseCase{
		Log:                  logger,
		Validate:             validate,
		PackageRepository:    packageRepository,
		CommissionRepository: commissionRepository,
		AgentRepository:      agentRepository,
		BookingRepository:    bookingRepository,
	}
}

func (c *CatalogUseCase) CreatePackage(ctx context.Context, request *model.CreatePackageRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("catalog-usecase", err.Error(), "CreatePackage-validation", utils.ConvertString(request))
		return result
	}

	pkg := &entity.Package{
		ID:               uuid.NewString(),
		Title:            request.Title,
		Description:      sql.NullString{String: request.Description, Valid: request.Description != ""},
		Price:            request.Price,
		DurationDays:     request.DurationDays,
		DpDeadlineDays:   sql.NullInt64{Int64: int64(request.DpDeadlineDays), Valid: request.DpDeadlineDays > 0},
		FullDeadlineDays: sql.NullInt64{Int64: int64(request.FullDeadlineDays), Valid: request.FullDeadlineDays > 0},
		ImageURL:         sql.NullString{String: request.ImageURL, Valid: request.ImageURL != ""},
		IsPublished:      request.IsPublished,
		CreatedAt:        time.Now(),
	}

	if err := c.PackageRepository.Create(ctx, pkg); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to create package: %v", err)
		result.Error = errObj
		c.Log.Error("catalog-usecase", errObj.Message, "CreatePackage", "")
		return result
	}

	c.Log.Info("catalog-usecase", "package created", "CreatePackage", pkg.ID)
	result.Data = converter.PackageToResponse(pkg, nil)
	return result
}

func (c *CatalogUseCase) UpdatePackage(ctx context.Context, request *model.UpdatePackageRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("catalog-usecase", err.Error(), "UpdatePackage-validation", utils.ConvertString(request))
		return result
	}

	pkg := &entity.Package{
		ID:               request.ID,
		Title:            request.Title,
		Description:      sql.NullString{String: request.Description, Valid: request.Description != ""},
		Price:            request.Price,
		DurationDays:     request.DurationDays,
		DpDeadlineDays:   sql.NullInt64{Int64: int64(request.DpDeadlineDays), Valid: request.DpDeadlineDays > 0},
		FullDeadlineDays: sql.NullInt64{Int64: int64(request.FullDeadlineDays), Valid: request.FullDeadlineDays > 0},
		ImageURL:         sql.NullString{String: request.ImageURL, Valid: request.ImageURL != ""},
		IsPublished:      request.IsPublished,
		UpdatedAt:        sql.NullTime{Time: time.Now(), Valid: true},
	}

	if err := c.PackageRepository.Update(ctx, pkg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			errObj := httpError.NewNotFound()
			errObj.Message = fmt.Sprintf("package with id %s not found", request.ID)
			result.Error = errObj
			return result
		}
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to update package: %v", err)
		result.Error = errObj
		c.Log.Error("catalog-usecase", errObj.Message, "UpdatePackage", request.ID)
		return result
	}

	result.Data = converter.PackageToResponse(pkg, nil)
	return result
}

func (c *CatalogUseCase) ListPackages(ctx context.Context) utils.Result {
	var result utils.Result

	packages, err := c.PackageRepository.FindAll(ctx)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to list packages: %v", err)
		result.Error = errObj
		c.Log.Error("catalog-usecase", errObj.Message, "ListPackages", "")
		return result
	}

	responses := make([]model.PackageResponse, 0, len(packages))
	for i := range packages {
		responses = append(responses, *converter.PackageToResponse(&packages[i], nil))
	}

	result.Data = responses
	return result
}

func (c *CatalogUseCase) UpsertCommissionRate(ctx context.Context, request *model.UpsertCommissionRateRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("catalog-usecase", err.Error(), "UpsertCommissionRate-validation", utils.ConvertString(request))
		return result
	}

	if _, err := c.PackageRepository.FindByID(ctx, request.PackageID); err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("package with id %s not found", request.PackageID)
		result.Error = errObj
		c.Log.Error("catalog-usecase", err.Error(), "UpsertCommissionRate", request.PackageID)
		return result
	}

	rate := &entity.PackageCommission{
		ID:               uuid.NewString(),
		PackageID:        request.PackageID,
		PicType:          request.PicType,
		CommissionAmount: request.CommissionAmount,
	}

	if err := c.CommissionRepository.Upsert(ctx, rate); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to save commission rate: %v", err)
		result.Error = errObj
		c.Log.Error("catalog-usecase", errObj.Message, "UpsertCommissionRate", request.PackageID)
		return result
	}

	result.Data = converter.CommissionRateToResponse(rate)
	return result
}

func (c *CatalogUseCase) ListCommissionRates(ctx context.Context, packageID string) utils.Result {
	var result utils.Result

	rates, err := c.CommissionRepository.FindByPackageID(ctx, packageID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to list commission rates: %v", err)
		result.Error = errObj
		c.Log.Error("catalog-usecase", errObj.Message, "ListCommissionRates", packageID)
		return result
	}

	responses := make([]model.CommissionRateResponse, 0, len(rates))
	for i := range rates {
		responses = append(responses, *converter.CommissionRateToResponse(&rates[i]))
	}

	result.Data = responses
	return result
}

func (c *CatalogUseCase) CreateAgent(ctx context.Context, request *model.CreateAgentRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("catalog-usecase", err.Error(), "CreateAgent-validation", utils.ConvertString(request))
		return result
	}

	agent := &entity.Agent{
		ID:        uuid.NewString(),
		Name:      request.Name,
		Phone:     sql.NullString{String: request.Phone, Valid: request.Phone != ""},
		City:      sql.NullString{String: request.City, Valid: request.City != ""},
		IsActive:  true,
		CreatedAt: time.Now(),
	}

	if err := c.AgentRepository.Create(ctx, agent); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to create agent: %v", err)
		result.Error = errObj
		c.Log.Error("catalog-usecase", errObj.Message, "CreateAgent", "")
		return result
	}

	result.Data = converter.AgentToResponse(agent)
	return result
}

func (c *CatalogUseCase) ListAgents(ctx context.Context) utils.Result {
	var result utils.Result

	agents, err := c.AgentRepository.FindAll(ctx)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to list agents: %v", err)
		result.Error = errObj
		c.Log.Error("catalog-usecase", errObj.Message, "ListAgents", "")
		return result
	}

	responses := make([]model.AgentResponse, 0, len(agents))
	for i := range agents {
		responses = append(responses, *converter.AgentToResponse(&agents[i]))
	}

	result.Data = responses
	return result
}

func (c *CatalogUseCase) ListBookings(ctx context.Context, request *model.ListBookingsRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("catalog-usecase", err.Error(), "ListBookings-validation", request.Status)
		return result
	}

	bookings, err := c.BookingRepository.FindAll(ctx, request.Status)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to list bookings: %v", err)
		result.Error = errObj
		c.Log.Error("catalog-usecase", errObj.Message, "ListBookings", "")
		return result
	}

	responses := make([]model.BookingResponse, 0, len(bookings))
	for i := range bookings {
		responses = append(responses, *converter.BookingToResponse(&bookings[i]))
	}

	result.Data = responses
	return result
}
