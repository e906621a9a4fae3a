package usecase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"umroh-service/src/internal/entity"
	"umroh-service/src/internal/model"
	"umroh-service/src/internal/repository"
	httpError "umroh-service/src/pkg/http-error"
	"umroh-service/src/pkg/log"
	"umroh-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

const (
	picNamePlaceholder      = "Tidak diketahui"
	packageTitlePlaceholder = "Paket tidak diketahui"

	lookupCacheTTL = 10 * time.Minute
)

// picKey groups commission summaries; a structured key so an agent and a
// branch sharing an id can never collide.
type picKey struct {
	PicType string
	PicID   string
}

type rateKey struct {
	PackageID string
	PicType   string
}

type CommissionUseCase struct {
	Log                  log.Log
	Validate             *validator.Validate
	BookingRepository    repository.BookingRepository
	PilgrimRepository    repository.PilgrimRepository
	CommissionRepository repository.CommissionRepository
	PackageRepository    repository.PackageRepository
	AgentRepository      repository.AgentRepository
	BranchRepository     repository.BranchRepository
	ProfileRepository    repository.ProfileRepository
	Config               *viper.Viper
	Redis                redis.UniversalClient
}

func NewCommissionUseCase(
	logger log.Log,
	validate *validator.Validate,
	bookingRepository repository.BookingRepository,
	pilgrimRepository repository.PilgrimRepository,
	commissionRepository repository.CommissionRepository,
	packageRepository repository.PackageRepository,
	agentRepository repository.AgentRepository,
	branchRepository repository.BranchRepository,
	profileRepository repository.ProfileRepository,
	cfg *viper.Viper,
	redisClient redis.UniversalClient,
) *CommissionUseCase {
	return &CommissionUseCase{
		Log:                  logger,
		Validate:             validate,
		BookingRepository:    bookingRepository,
		PilgrimRepository:    pilgrimRepository,
		CommissionRepository: commissionRepository,
		PackageRepository:    packageRepository,
		AgentRepository:      agentRepository,
		BranchRepository:     branchRepository,
		ProfileRepository:    profileRepository,
		Config:               cfg,
		Redis:                redisClient,
	}
}

// ComputeCommissions joins in-window bookings with pilgrim counts, the
// commission rate table and PIC identities into per-booking rows, per-PIC
// summaries and per-type totals. Only the booking fetch is fatal; every
// enrichment lookup degrades to zero or a placeholder.
func (c *CommissionUseCase) ComputeCommissions(ctx context.Context, request *model.CommissionReportRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("commission-usecase", err.Error(), "ComputeCommissions-validation", utils.ConvertString(request))
		return result
	}

	bookings, err := c.BookingRepository.FindCommissionable(ctx, request.StartDate, request.EndDate)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to load bookings: %v", err)
		result.Error = errObj
		c.Log.Error("commission-usecase", errObj.Message, "ComputeCommissions", "")
		return result
	}

	response := &model.CommissionReportResponse{
		Rows:      []model.CommissionRow{},
		Summaries: []model.CommissionSummary{},
	}

	if len(bookings) == 0 {
		result.Data = response
		return result
	}

	bookingIDs := make([]string, 0, len(bookings))
	for _, booking := range bookings {
		bookingIDs = append(bookingIDs, booking.ID)
	}

	pilgrimCounts, err := c.PilgrimRepository.CountByBookingIDs(ctx, bookingIDs)
	if err != nil {
		c.Log.Error("commission-usecase", fmt.Sprintf("pilgrim count lookup failed, counting 0: %v", err), "ComputeCommissions", "")
		pilgrimCounts = map[string]int{}
	}

	rateCache := make(map[rateKey]float64)
	titleCache := make(map[string]string)
	nameCache := make(map[picKey]string)

	summaryIndex := make(map[picKey]*model.CommissionSummary)
	summaryOrder := []picKey{}

	for _, booking := range bookings {
		picType := booking.PicType.String
		picID := booking.PicID.String
		packageID := booking.PackageID.String

		pilgrimCount := pilgrimCounts[booking.ID]
		rate := c.lookupRate(ctx, rateCache, packageID, picType)
		total := rate * float64(pilgrimCount)

		row := model.CommissionRow{
			BookingID:            booking.ID,
			BookingCode:          booking.Code,
			PackageTitle:         c.lookupPackageTitle(ctx, titleCache, packageID),
			PicType:              picType,
			PicID:                picID,
			PicName:              c.lookupPicName(ctx, nameCache, picType, picID),
			PilgrimCount:         pilgrimCount,
			CommissionPerPilgrim: rate,
			TotalCommission:      total,
		}
		response.Rows = append(response.Rows, row)

		key := picKey{PicType: picType, PicID: picID}
		summary, ok := summaryIndex[key]
		if !ok {
			summary = &model.CommissionSummary{
				PicType: picType,
				PicID:   picID,
				PicName: row.PicName,
			}
			summaryIndex[key] = summary
			summaryOrder = append(summaryOrder, key)
		}
		summary.TotalPilgrims += pilgrimCount
		summary.TotalCommission += total

		switch picType {
		case entity.PicTypeCabang:
			response.Totals.Cabang += total
		case entity.PicTypeAgen:
			response.Totals.Agen += total
		case entity.PicTypeKaryawan:
			response.Totals.Karyawan += total
		}
		response.Totals.Grand += total
	}

	for _, key := range summaryOrder {
		response.Summaries = append(response.Summaries, *summaryIndex[key])
	}
	sort.SliceStable(response.Summaries, func(i, j int) bool {
		return response.Summaries[i].TotalCommission > response.Summaries[j].TotalCommission
	})

	c.Log.Info("commission-usecase",
		fmt.Sprintf("computed %d rows, %d summaries", len(response.Rows), len(response.Summaries)),
		"ComputeCommissions", "")

	result.Data = response
	return result
}

func (c *CommissionUseCase) lookupRate(ctx context.Context, cache map[rateKey]float64, packageID, picType string) float64 {
	key := rateKey{PackageID: packageID, PicType: picType}
	if rate, ok := cache[key]; ok {
		return rate
	}

	rate := 0.0
	row, err := c.CommissionRepository.FindRate(ctx, packageID, picType)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			c.Log.Error("commission-usecase", fmt.Sprintf("rate lookup failed, using 0: %v", err), "lookupRate", packageID)
		}
	} else {
		rate = row.CommissionAmount
	}

	cache[key] = rate
	return rate
}

func (c *CommissionUseCase) lookupPackageTitle(ctx context.Context, cache map[string]string, packageID string) string {
	if packageID == "" {
		return packageTitlePlaceholder
	}
	if title, ok := cache[packageID]; ok {
		return title
	}

	redisKey := fmt.Sprintf("REPORT:PACKAGE-TITLE:%s", packageID)
	if c.Redis != nil {
		if title, err := c.Redis.Get(ctx, redisKey).Result(); err == nil && title != "" {
			cache[packageID] = title
			return title
		}
	}

	title := packageTitlePlaceholder
	pkg, err := c.PackageRepository.FindByID(ctx, packageID)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			c.Log.Error("commission-usecase", fmt.Sprintf("package lookup failed, using placeholder: %v", err), "lookupPackageTitle", packageID)
		}
	} else {
		title = pkg.Title
		if c.Redis != nil {
			if err := c.Redis.Set(ctx, redisKey, title, lookupCacheTTL).Err(); err != nil {
				c.Log.Error("commission-usecase", err.Error(), "lookupPackageTitle-cache", packageID)
			}
		}
	}

	cache[packageID] = title
	return title
}

func (c *CommissionUseCase) lookupPicName(ctx context.Context, cache map[picKey]string, picType, picID string) string {
	key := picKey{PicType: picType, PicID: picID}
	if name, ok := cache[key]; ok {
		return name
	}

	redisKey := fmt.Sprintf("REPORT:PIC-NAME:%s:%s", picType, picID)
	if c.Redis != nil {
		if name, err := c.Redis.Get(ctx, redisKey).Result(); err == nil && name != "" {
			cache[key] = name
			return name
		}
	}

	resolved := picNamePlaceholder
	name, err := c.resolvePicName(ctx, picType, picID)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			c.Log.Error("commission-usecase", fmt.Sprintf("pic name lookup failed, using placeholder: %v", err), "lookupPicName", picID)
		}
	} else {
		resolved = name
		if c.Redis != nil {
			if err := c.Redis.Set(ctx, redisKey, resolved, lookupCacheTTL).Err(); err != nil {
				c.Log.Error("commission-usecase", err.Error(), "lookupPicName-cache", picID)
			}
		}
	}

	cache[key] = resolved
	return resolved
}

// resolvePicName dispatches on pic_type to the registry owning that identity.
func (c *CommissionUseCase) resolvePicName(ctx context.Context, picType, picID string) (string, error) {
	var finder repository.PicNameFinder

	switch picType {
	case entity.PicTypeAgen:
		finder = c.AgentRepository
	case entity.PicTypeCabang:
		finder = c.BranchRepository
	case entity.PicTypeKaryawan:
		finder = c.ProfileRepository
	default:
		return "", fmt.Errorf("unknown pic type %q", picType)
	}

	return finder.FindNameByID(ctx, picID)
}
