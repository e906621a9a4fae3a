package usecase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"umroh-service/src/internal/entity"
	"umroh-service/src/internal/gateway/messaging"
	"umroh-service/src/internal/model"
	"umroh-service/src/internal/model/converter"
	"umroh-service/src/internal/repository"
	httpError "umroh-service/src/pkg/http-error"
	"umroh-service/src/pkg/log"
	"umroh-service/src/pkg/utils"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

const (
	defaultDpDeadlineDays   = 30
	defaultFullDeadlineDays = 7

	sweepLockKey = "REMINDER:SWEEP:LOCK"
	sweepLockTTL = 2 * time.Minute
)

type ReminderUseCase struct {
	Log                    log.Log
	BookingRepository      repository.BookingRepository
	PaymentRepository      repository.PaymentRepository
	PackageRepository      repository.PackageRepository
	DepartureRepository    repository.DepartureRepository
	NotificationRepository repository.NotificationRepository
	NotificationProducer   *messaging.NotificationProducer
	Config                 *viper.Viper
	Redis                  redis.UniversalClient
}

func NewReminderUseCase(
	logger log.Log,
	bookingRepository repository.BookingRepository,
	paymentRepository repository.PaymentRepository,
	packageRepository repository.PackageRepository,
	departureRepository repository.DepartureRepository,
	notificationRepository repository.NotificationRepository,
	notificationProducer *messaging.NotificationProducer,
	cfg *viper.Viper,
	redisClient redis.UniversalClient,
) *ReminderUseCase {
	return &ReminderUseCase{
		Log:                    logger,
		BookingRepository:      bookingRepository,
		PaymentRepository:      paymentRepository,
		PackageRepository:      packageRepository,
		DepartureRepository:    departureRepository,
		NotificationRepository: notificationRepository,
		NotificationProducer:   notificationProducer,
		Config:                 cfg,
		Redis:                  redisClient,
	}
}

// RunSweep scans open bookings, decides which payment reminders are due given
// now, and persists the whole batch at once. Dedup is per booking, per
// notification type, per calendar day, so re-running within the same day
// creates nothing new.
func (c *ReminderUseCase) RunSweep(ctx context.Context, now time.Time) utils.Result {
	var result utils.Result

	if c.Redis != nil {
		acquired, err := c.Redis.SetNX(ctx, sweepLockKey, now.Format(time.RFC3339), sweepLockTTL).Result()
		if err != nil {
			c.Log.Error("reminder-usecase", fmt.Sprintf("sweep lock check failed, proceeding: %v", err), "RunSweep", "")
		} else if !acquired {
			c.Log.Info("reminder-usecase", "another sweep holds the lock, skipping", "RunSweep", "")
			result.Data = &model.ReminderSweepResponse{NotificationsCreated: 0}
			return result
		} else {
			defer c.Redis.Del(ctx, sweepLockKey)
		}
	}

	bookings, err := c.BookingRepository.FindOpen(ctx)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to load open bookings: %v", err)
		result.Error = errObj
		c.Log.Error("reminder-usecase", errObj.Message, "RunSweep", "")
		return result
	}

	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	var batch []entity.Notification

	for i := range bookings {
		booking := &bookings[i]
		notifications, err := c.evaluateBooking(ctx, booking, now, midnight)
		if err != nil {
			c.Log.Error("reminder-usecase", fmt.Sprintf("skipping booking %s: %v", booking.Code, err), "RunSweep", booking.ID)
			continue
		}
		batch = append(batch, notifications...)
	}

	if len(batch) > 0 {
		if err := c.NotificationRepository.BatchInsert(ctx, batch); err != nil {
			errObj := httpError.NewInternalServerError()
			errObj.Message = fmt.Sprintf("failed to insert %d notifications: %v", len(batch), err)
			result.Error = errObj
			c.Log.Error("reminder-usecase", errObj.Message, "RunSweep", "")
			return result
		}

		if c.NotificationProducer != nil {
			event := converter.NotificationsToEvent(uuid.NewString(), now, batch)
			if err := c.NotificationProducer.SendSweepResult(event); err != nil {
				c.Log.Error("reminder-usecase", fmt.Sprintf("failed to publish sweep event: %v", err), "RunSweep", "")
			}
		}
	}

	c.Log.Info("reminder-usecase",
		fmt.Sprintf("sweep finished, %d notifications created from %d open bookings", len(batch), len(bookings)),
		"RunSweep", "")

	result.Data = &model.ReminderSweepResponse{NotificationsCreated: len(batch)}
	return result
}

func (c *ReminderUseCase) evaluateBooking(ctx context.Context, booking *entity.Booking, now, midnight time.Time) ([]entity.Notification, error) {
	if !booking.PackageID.Valid || !booking.DepartureID.Valid {
		return nil, nil
	}

	departure, err := c.DepartureRepository.FindByID(ctx, booking.DepartureID.String)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("departure lookup: %w", err)
	}

	paidAmount, err := c.PaymentRepository.SumPaidByBooking(ctx, booking.ID)
	if err != nil {
		return nil, fmt.Errorf("payment sum: %w", err)
	}

	remaining := booking.TotalPrice - paidAmount
	if remaining <= 0 {
		return nil, nil
	}

	pkg, err := c.PackageRepository.FindByID(ctx, booking.PackageID.String)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("package lookup: %w", err)
	}

	dpDeadlineDays := int(pkg.DpDeadlineDays.Int64)
	if dpDeadlineDays == 0 {
		dpDeadlineDays = defaultDpDeadlineDays
	}
	fullDeadlineDays := int(pkg.FullDeadlineDays.Int64)
	if fullDeadlineDays == 0 {
		fullDeadlineDays = defaultFullDeadlineDays
	}

	daysUntilDeparture := ceilDays(departure.DepartureDate.Sub(now))
	daysUntilDpDeadline := daysUntilDeparture - maxInt(dpDeadlineDays, 0)
	daysUntilFullDeadline := daysUntilDeparture - maxInt(fullDeadlineDays, 0)

	history, err := c.NotificationRepository.FindByBookingSince(ctx, booking.ID, midnight)
	if err != nil {
		return nil, fmt.Errorf("notification history: %w", err)
	}
	sentToday := make(map[string]bool, len(history))
	for _, n := range history {
		sentToday[n.Type] = true
	}

	var out []entity.Notification

	if paidAmount == 0 && !sentToday[entity.NotificationTypeDpReminder] {
		switch {
		case daysUntilDpDeadline > 0 && daysUntilDpDeadline <= 3:
			out = append(out, c.buildNotification(booking, now, entity.NotificationTypeDpReminder,
				"Segera Bayar DP",
				fmt.Sprintf("Batas pembayaran DP untuk booking %s (%s) tinggal %d hari lagi. Segera lakukan pembayaran Anda.",
					booking.Code, pkg.Title, daysUntilDpDeadline)))
		case daysUntilDpDeadline > 3 && daysUntilDpDeadline <= 7:
			out = append(out, c.buildNotification(booking, now, entity.NotificationTypeDpReminder,
				"Pengingat Pembayaran DP",
				fmt.Sprintf("Jangan lupa membayar DP untuk booking %s (%s) dalam %d hari ke depan.",
					booking.Code, pkg.Title, daysUntilDpDeadline)))
		}
	}

	if paidAmount > 0 && remaining > 0 && !sentToday[entity.NotificationTypeFullReminder] {
		switch {
		case daysUntilFullDeadline > 0 && daysUntilFullDeadline <= 3:
			out = append(out, c.buildNotification(booking, now, entity.NotificationTypeFullReminder,
				"Segera Lunasi Pembayaran",
				fmt.Sprintf("Sisa pembayaran Rp%.0f untuk booking %s (%s) jatuh tempo %d hari lagi. Segera lunasi.",
					remaining, booking.Code, pkg.Title, daysUntilFullDeadline)))
		case daysUntilFullDeadline > 3 && daysUntilFullDeadline <= 7:
			out = append(out, c.buildNotification(booking, now, entity.NotificationTypeFullReminder,
				"Pengingat Pelunasan",
				fmt.Sprintf("Sisa pembayaran Rp%.0f untuk booking %s (%s) jatuh tempo dalam %d hari.",
					remaining, booking.Code, pkg.Title, daysUntilFullDeadline)))
		}
	}

	// both overdue variants share one dedup key: an overdue recorded today,
	// of either kind, suppresses the other until tomorrow. The predicate is
	// built from persisted history only and is not updated mid-sweep.
	if daysUntilDpDeadline < 0 && paidAmount == 0 && !sentToday[entity.NotificationTypeOverdue] {
		out = append(out, c.buildNotification(booking, now, entity.NotificationTypeOverdue,
			"Pembayaran DP Terlambat",
			fmt.Sprintf("Batas pembayaran DP untuk booking %s (%s) telah terlewati. Segera hubungi kami untuk menghindari pembatalan.",
				booking.Code, pkg.Title)))
	}

	if daysUntilFullDeadline < 0 && paidAmount > 0 && remaining > 0 && !sentToday[entity.NotificationTypeOverdue] {
		out = append(out, c.buildNotification(booking, now, entity.NotificationTypeOverdue,
			"Pelunasan Terlambat",
			fmt.Sprintf("Batas pelunasan untuk booking %s (%s) telah terlewati. Sisa pembayaran Rp%.0f. Segera hubungi kami.",
				booking.Code, pkg.Title, remaining)))
	}

	return out, nil
}

func (c *ReminderUseCase) buildNotification(booking *entity.Booking, now time.Time, notifType, title, message string) entity.Notification {
	return entity.Notification{
		ID:        uuid.NewString(),
		UserID:    booking.UserID,
		BookingID: sql.NullString{String: booking.ID, Valid: true},
		Type:      notifType,
		Title:     title,
		Message:   message,
		IsRead:    false,
		CreatedAt: now,
	}
}

func ceilDays(d time.Duration) int {
	return int(math.Ceil(d.Hours() / 24))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
