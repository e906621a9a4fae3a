package usecase

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"umroh-service/src/internal/entity"
	"umroh-service/src/internal/model"
	httpError "umroh-service/src/pkg/http-error"
	"umroh-service/src/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() log.Log {
	v := viper.New()
	v.Set("log.level", "ERROR")
	v.Set("app.name", "UMROH_SERVICE_TEST")
	log.InitLogger(v)
	return log.GetLogger()
}

func commissionBooking(id, code, packageID, picType, picID string) entity.Booking {
	return entity.Booking{
		ID:         id,
		Code:       code,
		UserID:     "user-" + id,
		TotalPrice: 25000000,
		Status:     entity.BookingStatusPaid,
		PackageID:  sql.NullString{String: packageID, Valid: true},
		PicID:      sql.NullString{String: picID, Valid: true},
		PicType:    sql.NullString{String: picType, Valid: true},
	}
}

type commissionFixture struct {
	bookings *stubBookingRepository
	pilgrims *stubPilgrimRepository
	rates    *stubCommissionRepository
	packages *stubPackageRepository
	agents   *stubAgentRepository
	branches *stubNameRepository
	profiles *stubNameRepository
	useCase  *CommissionUseCase
}

func newCommissionFixture() *commissionFixture {
	f := &commissionFixture{
		bookings: &stubBookingRepository{},
		pilgrims: &stubPilgrimRepository{counts: map[string]int{}},
		rates:    &stubCommissionRepository{rates: map[rateKey]float64{}},
		packages: &stubPackageRepository{packages: map[string]*entity.Package{}},
		agents:   &stubAgentRepository{stubNameRepository{names: map[string]string{}}},
		branches: &stubNameRepository{names: map[string]string{}},
		profiles: &stubNameRepository{names: map[string]string{}},
	}
	f.useCase = NewCommissionUseCase(
		testLogger(),
		validator.New(),
		f.bookings,
		f.pilgrims,
		f.rates,
		f.packages,
		f.agents,
		f.branches,
		f.profiles,
		viper.New(),
		nil,
	)
	return f
}

func reportRequest() *model.CommissionReportRequest {
	return &model.CommissionReportRequest{
		StartDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestComputeCommissions_EmptyWindow(t *testing.T) {
	f := newCommissionFixture()

	result := f.useCase.ComputeCommissions(context.Background(), reportRequest())

	require.Nil(t, result.Error)
	response := result.Data.(*model.CommissionReportResponse)
	assert.Empty(t, response.Rows)
	assert.Empty(t, response.Summaries)
	assert.Zero(t, response.Totals.Grand)
}

func TestComputeCommissions_SingleBooking(t *testing.T) {
	f := newCommissionFixture()
	f.bookings.commissionable = []entity.Booking{
		commissionBooking("b1", "UMR-001", "pkg1", entity.PicTypeAgen, "agent1"),
	}
	f.pilgrims.counts["b1"] = 3
	f.rates.rates[rateKey{PackageID: "pkg1", PicType: entity.PicTypeAgen}] = 50000
	f.packages.packages["pkg1"] = &entity.Package{ID: "pkg1", Title: "Umroh Reguler 9 Hari"}
	f.agents.names["agent1"] = "Budi Santoso"

	result := f.useCase.ComputeCommissions(context.Background(), reportRequest())

	require.Nil(t, result.Error)
	response := result.Data.(*model.CommissionReportResponse)
	require.Len(t, response.Rows, 1)

	row := response.Rows[0]
	assert.Equal(t, "UMR-001", row.BookingCode)
	assert.Equal(t, "Umroh Reguler 9 Hari", row.PackageTitle)
	assert.Equal(t, "Budi Santoso", row.PicName)
	assert.Equal(t, 3, row.PilgrimCount)
	assert.Equal(t, float64(50000), row.CommissionPerPilgrim)
	assert.Equal(t, float64(150000), row.TotalCommission)

	require.Len(t, response.Summaries, 1)
	assert.Equal(t, float64(150000), response.Summaries[0].TotalCommission)
	assert.Equal(t, 3, response.Summaries[0].TotalPilgrims)

	assert.Equal(t, float64(150000), response.Totals.Agen)
	assert.Zero(t, response.Totals.Cabang)
	assert.Zero(t, response.Totals.Karyawan)
	assert.Equal(t, float64(150000), response.Totals.Grand)
}

func TestComputeCommissions_MissingRateAndIdentity(t *testing.T) {
	f := newCommissionFixture()
	f.bookings.commissionable = []entity.Booking{
		commissionBooking("b1", "UMR-002", "pkg-gone", entity.PicTypeCabang, "branch-gone"),
	}
	f.pilgrims.counts["b1"] = 4

	result := f.useCase.ComputeCommissions(context.Background(), reportRequest())

	require.Nil(t, result.Error)
	response := result.Data.(*model.CommissionReportResponse)
	require.Len(t, response.Rows, 1)

	row := response.Rows[0]
	assert.Equal(t, "Paket tidak diketahui", row.PackageTitle)
	assert.Equal(t, "Tidak diketahui", row.PicName)
	assert.Zero(t, row.CommissionPerPilgrim)
	assert.Zero(t, row.TotalCommission)
	assert.Zero(t, response.Totals.Grand)
}

func TestComputeCommissions_GroupingAndTotals(t *testing.T) {
	f := newCommissionFixture()
	f.bookings.commissionable = []entity.Booking{
		commissionBooking("b1", "UMR-010", "pkg1", entity.PicTypeAgen, "agent1"),
		commissionBooking("b2", "UMR-011", "pkg1", entity.PicTypeAgen, "agent1"),
		commissionBooking("b3", "UMR-012", "pkg1", entity.PicTypeCabang, "branch1"),
		commissionBooking("b4", "UMR-013", "pkg1", entity.PicTypeKaryawan, "staff1"),
	}
	f.pilgrims.counts = map[string]int{"b1": 2, "b2": 3, "b3": 10, "b4": 1}
	f.rates.rates[rateKey{PackageID: "pkg1", PicType: entity.PicTypeAgen}] = 50000
	f.rates.rates[rateKey{PackageID: "pkg1", PicType: entity.PicTypeCabang}] = 40000
	f.rates.rates[rateKey{PackageID: "pkg1", PicType: entity.PicTypeKaryawan}] = 30000
	f.packages.packages["pkg1"] = &entity.Package{ID: "pkg1", Title: "Umroh Plus Turki"}
	f.agents.names["agent1"] = "Budi Santoso"
	f.branches.names["branch1"] = "Cabang Surabaya"
	f.profiles.names["staff1"] = "Siti Aminah"

	result := f.useCase.ComputeCommissions(context.Background(), reportRequest())

	require.Nil(t, result.Error)
	response := result.Data.(*model.CommissionReportResponse)
	assert.Len(t, response.Rows, 4)

	// agent1 carries two bookings folded into one summary
	require.Len(t, response.Summaries, 3)
	assert.Equal(t, "Cabang Surabaya", response.Summaries[0].PicName)
	assert.Equal(t, float64(400000), response.Summaries[0].TotalCommission)
	assert.Equal(t, "Budi Santoso", response.Summaries[1].PicName)
	assert.Equal(t, 5, response.Summaries[1].TotalPilgrims)
	assert.Equal(t, float64(250000), response.Summaries[1].TotalCommission)
	assert.Equal(t, "Siti Aminah", response.Summaries[2].PicName)

	assert.Equal(t, float64(250000), response.Totals.Agen)
	assert.Equal(t, float64(400000), response.Totals.Cabang)
	assert.Equal(t, float64(30000), response.Totals.Karyawan)
	assert.Equal(t, float64(680000), response.Totals.Grand)

	var rowSum float64
	for _, row := range response.Rows {
		rowSum += row.TotalCommission
	}
	assert.Equal(t, response.Totals.Grand, rowSum)
}

func TestComputeCommissions_BookingFetchFails(t *testing.T) {
	f := newCommissionFixture()
	f.bookings.err = errors.New("connection refused")

	result := f.useCase.ComputeCommissions(context.Background(), reportRequest())

	require.NotNil(t, result.Error)
	commonErr, ok := result.Error.(*httpError.CommonError)
	require.True(t, ok)
	assert.Equal(t, 500, commonErr.Code)
}

func TestComputeCommissions_PilgrimLookupDegrades(t *testing.T) {
	f := newCommissionFixture()
	f.bookings.commissionable = []entity.Booking{
		commissionBooking("b1", "UMR-020", "pkg1", entity.PicTypeAgen, "agent1"),
	}
	f.pilgrims.err = errors.New("timeout")
	f.rates.rates[rateKey{PackageID: "pkg1", PicType: entity.PicTypeAgen}] = 50000
	f.packages.packages["pkg1"] = &entity.Package{ID: "pkg1", Title: "Umroh Reguler"}
	f.agents.names["agent1"] = "Budi Santoso"

	result := f.useCase.ComputeCommissions(context.Background(), reportRequest())

	require.Nil(t, result.Error)
	response := result.Data.(*model.CommissionReportResponse)
	require.Len(t, response.Rows, 1)
	assert.Zero(t, response.Rows[0].PilgrimCount)
	assert.Zero(t, response.Rows[0].TotalCommission)
}

func TestComputeCommissions_InvalidWindow(t *testing.T) {
	f := newCommissionFixture()

	request := &model.CommissionReportRequest{
		StartDate: time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}
	result := f.useCase.ComputeCommissions(context.Background(), request)

	require.NotNil(t, result.Error)
	commonErr, ok := result.Error.(*httpError.CommonError)
	require.True(t, ok)
	assert.Equal(t, 400, commonErr.Code)
}
