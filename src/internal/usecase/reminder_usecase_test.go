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

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sweepNow = time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

type reminderFixture struct {
	bookings      *stubBookingRepository
	payments      *stubPaymentRepository
	packages      *stubPackageRepository
	departures    *stubDepartureRepository
	notifications *stubNotificationRepository
	useCase       *ReminderUseCase
}

func newReminderFixture() *reminderFixture {
	f := &reminderFixture{
		bookings:      &stubBookingRepository{},
		payments:      &stubPaymentRepository{paid: map[string]float64{}, errs: map[string]error{}},
		packages:      &stubPackageRepository{packages: map[string]*entity.Package{}},
		departures:    &stubDepartureRepository{departures: map[string]*entity.PackageDeparture{}},
		notifications: &stubNotificationRepository{history: map[string][]entity.Notification{}},
	}
	f.useCase = NewReminderUseCase(
		testLogger(),
		f.bookings,
		f.payments,
		f.packages,
		f.departures,
		f.notifications,
		nil,
		viper.New(),
		nil,
	)
	return f
}

// addBooking wires an open booking whose departure is daysOut days from
// sweepNow, against a package relying on the default deadline windows.
func (f *reminderFixture) addBooking(id, code string, totalPrice float64, daysOut int) {
	f.bookings.open = append(f.bookings.open, entity.Booking{
		ID:          id,
		Code:        code,
		UserID:      "user-" + id,
		TotalPrice:  totalPrice,
		Status:      entity.BookingStatusWaitingPayment,
		PackageID:   sql.NullString{String: "pkg-" + id, Valid: true},
		DepartureID: sql.NullString{String: "dep-" + id, Valid: true},
	})
	f.packages.packages["pkg-"+id] = &entity.Package{
		ID:    "pkg-" + id,
		Title: "Umroh Reguler",
	}
	f.departures.departures["dep-"+id] = &entity.PackageDeparture{
		ID:            "dep-" + id,
		PackageID:     "pkg-" + id,
		DepartureDate: sweepNow.Add(time.Duration(daysOut) * 24 * time.Hour),
	}
}

func (f *reminderFixture) run(t *testing.T) *model.ReminderSweepResponse {
	t.Helper()
	result := f.useCase.RunSweep(context.Background(), sweepNow)
	require.Nil(t, result.Error)
	return result.Data.(*model.ReminderSweepResponse)
}

func TestRunSweep_UrgentDpReminder(t *testing.T) {
	f := newReminderFixture()
	// departure in 33 days, dp deadline defaults to 30, so 3 days remain
	f.addBooking("b1", "UMR-100", 25000000, 33)

	response := f.run(t)

	assert.Equal(t, 1, response.NotificationsCreated)
	require.Len(t, f.notifications.inserted, 1)

	notification := f.notifications.inserted[0]
	assert.Equal(t, entity.NotificationTypeDpReminder, notification.Type)
	assert.Equal(t, "Segera Bayar DP", notification.Title)
	assert.Equal(t, "user-b1", notification.UserID)
	assert.Equal(t, "b1", notification.BookingID.String)
	assert.False(t, notification.IsRead)
}

func TestRunSweep_SoftDpReminder(t *testing.T) {
	f := newReminderFixture()
	f.addBooking("b1", "UMR-101", 25000000, 34)

	response := f.run(t)

	assert.Equal(t, 1, response.NotificationsCreated)
	assert.Equal(t, "Pengingat Pembayaran DP", f.notifications.inserted[0].Title)
}

func TestRunSweep_OutsideWindowCreatesNothing(t *testing.T) {
	f := newReminderFixture()
	f.addBooking("b1", "UMR-102", 25000000, 40) // 10 days until dp deadline
	f.addBooking("b2", "UMR-103", 25000000, 30) // exactly on the deadline day

	response := f.run(t)

	assert.Zero(t, response.NotificationsCreated)
	assert.Empty(t, f.notifications.inserted)
}

func TestRunSweep_DpOverdue(t *testing.T) {
	f := newReminderFixture()
	f.addBooking("b1", "UMR-104", 25000000, 29)

	response := f.run(t)

	assert.Equal(t, 1, response.NotificationsCreated)
	notification := f.notifications.inserted[0]
	assert.Equal(t, entity.NotificationTypeOverdue, notification.Type)
	assert.Equal(t, "Pembayaran DP Terlambat", notification.Title)
}

func TestRunSweep_UrgentFullReminder(t *testing.T) {
	f := newReminderFixture()
	// paid DP, full deadline defaults to 7, departure in 10 days leaves 3
	f.addBooking("b1", "UMR-105", 25000000, 10)
	f.payments.paid["b1"] = 10000000

	response := f.run(t)

	assert.Equal(t, 1, response.NotificationsCreated)
	notification := f.notifications.inserted[0]
	assert.Equal(t, entity.NotificationTypeFullReminder, notification.Type)
	assert.Equal(t, "Segera Lunasi Pembayaran", notification.Title)
	assert.Contains(t, notification.Message, "Rp15000000")
}

func TestRunSweep_FullOverdue(t *testing.T) {
	f := newReminderFixture()
	f.addBooking("b1", "UMR-106", 25000000, 5)
	f.payments.paid["b1"] = 10000000

	response := f.run(t)

	assert.Equal(t, 1, response.NotificationsCreated)
	assert.Equal(t, "Pelunasan Terlambat", f.notifications.inserted[0].Title)
}

func TestRunSweep_FullyPaidSkipped(t *testing.T) {
	f := newReminderFixture()
	f.addBooking("b1", "UMR-107", 25000000, 33)
	f.payments.paid["b1"] = 25000000

	response := f.run(t)

	assert.Zero(t, response.NotificationsCreated)
}

func TestRunSweep_CustomDeadlines(t *testing.T) {
	f := newReminderFixture()
	f.addBooking("b1", "UMR-108", 25000000, 12)
	f.packages.packages["pkg-b1"].DpDeadlineDays = sql.NullInt64{Int64: 10, Valid: true}

	response := f.run(t)

	assert.Equal(t, 1, response.NotificationsCreated)
	assert.Equal(t, "Segera Bayar DP", f.notifications.inserted[0].Title)
}

func TestRunSweep_IdempotentWithinDay(t *testing.T) {
	f := newReminderFixture()
	f.addBooking("b1", "UMR-109", 25000000, 33)

	first := f.run(t)
	second := f.run(t)

	assert.Equal(t, 1, first.NotificationsCreated)
	assert.Zero(t, second.NotificationsCreated)
	assert.Len(t, f.notifications.inserted, 1)
}

func TestRunSweep_YesterdayHistoryDoesNotSuppress(t *testing.T) {
	f := newReminderFixture()
	f.addBooking("b1", "UMR-110", 25000000, 33)
	f.notifications.history["b1"] = []entity.Notification{{
		ID:        "old",
		Type:      entity.NotificationTypeDpReminder,
		CreatedAt: sweepNow.Add(-24 * time.Hour),
	}}

	response := f.run(t)

	assert.Equal(t, 1, response.NotificationsCreated)
}

func TestRunSweep_OverdueVariantsShareDedupKey(t *testing.T) {
	f := newReminderFixture()
	f.addBooking("b1", "UMR-111", 25000000, 5)
	f.payments.paid["b1"] = 10000000
	// a DP overdue already recorded today suppresses the full-payment variant
	f.notifications.history["b1"] = []entity.Notification{{
		ID:        "today",
		Type:      entity.NotificationTypeOverdue,
		CreatedAt: sweepNow.Add(-time.Hour),
	}}

	response := f.run(t)

	assert.Zero(t, response.NotificationsCreated)
}

func TestRunSweep_MissingRefsSkipped(t *testing.T) {
	f := newReminderFixture()
	f.bookings.open = []entity.Booking{{
		ID:         "b1",
		Code:       "UMR-112",
		UserID:     "user-b1",
		TotalPrice: 25000000,
		Status:     entity.BookingStatusDraft,
	}}
	f.bookings.open = append(f.bookings.open, entity.Booking{
		ID:          "b2",
		Code:        "UMR-113",
		UserID:      "user-b2",
		TotalPrice:  25000000,
		Status:      entity.BookingStatusWaitingPayment,
		PackageID:   sql.NullString{String: "pkg-b2", Valid: true},
		DepartureID: sql.NullString{String: "dep-missing", Valid: true},
	})

	response := f.run(t)

	assert.Zero(t, response.NotificationsCreated)
}

func TestRunSweep_BookingFetchFails(t *testing.T) {
	f := newReminderFixture()
	f.bookings.err = errors.New("connection refused")

	result := f.useCase.RunSweep(context.Background(), sweepNow)

	require.NotNil(t, result.Error)
	commonErr, ok := result.Error.(*httpError.CommonError)
	require.True(t, ok)
	assert.Equal(t, 500, commonErr.Code)
}

func TestRunSweep_BatchInsertFails(t *testing.T) {
	f := newReminderFixture()
	f.addBooking("b1", "UMR-114", 25000000, 33)
	f.notifications.insertErr = errors.New("deadlock")

	result := f.useCase.RunSweep(context.Background(), sweepNow)

	require.NotNil(t, result.Error)
	commonErr, ok := result.Error.(*httpError.CommonError)
	require.True(t, ok)
	assert.Equal(t, 500, commonErr.Code)
}

func TestRunSweep_LookupFailureSkipsOnlyThatBooking(t *testing.T) {
	f := newReminderFixture()
	f.addBooking("b1", "UMR-115", 25000000, 33)
	f.addBooking("b2", "UMR-116", 25000000, 33)
	f.payments.errs["b1"] = errors.New("timeout")

	response := f.run(t)

	assert.Equal(t, 1, response.NotificationsCreated)
	assert.Equal(t, "b2", f.notifications.inserted[0].BookingID.String)
}
