package usecase

import (
	"context"
	"database/sql"
	"time"

	"umroh-service/src/internal/entity"
)

type stubBookingRepository struct {
	commissionable []entity.Booking
	open           []entity.Booking
	err            error
}

func (s *stubBookingRepository) FindCommissionable(ctx context.Context, start, end time.Time) ([]entity.Booking, error) {
	return s.commissionable, s.err
}

func (s *stubBookingRepository) FindOpen(ctx context.Context) ([]entity.Booking, error) {
	return s.open, s.err
}

func (s *stubBookingRepository) FindAll(ctx context.Context, status string) ([]entity.Booking, error) {
	return nil, s.err
}

type stubPilgrimRepository struct {
	counts map[string]int
	err    error
}

func (s *stubPilgrimRepository) CountByBookingIDs(ctx context.Context, bookingIDs []string) (map[string]int, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.counts, nil
}

type stubCommissionRepository struct {
	rates map[rateKey]float64
	err   error
}

func (s *stubCommissionRepository) FindRate(ctx context.Context, packageID, picType string) (*entity.PackageCommission, error) {
	if s.err != nil {
		return nil, s.err
	}
	amount, ok := s.rates[rateKey{PackageID: packageID, PicType: picType}]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &entity.PackageCommission{
		PackageID:        packageID,
		PicType:          picType,
		CommissionAmount: amount,
	}, nil
}

func (s *stubCommissionRepository) Upsert(ctx context.Context, rate *entity.PackageCommission) error {
	return s.err
}

func (s *stubCommissionRepository) FindByPackageID(ctx context.Context, packageID string) ([]entity.PackageCommission, error) {
	return nil, s.err
}

type stubPackageRepository struct {
	packages map[string]*entity.Package
	err      error
}

func (s *stubPackageRepository) FindByID(ctx context.Context, id string) (*entity.Package, error) {
	if s.err != nil {
		return nil, s.err
	}
	pkg, ok := s.packages[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return pkg, nil
}

func (s *stubPackageRepository) FindPublished(ctx context.Context) ([]entity.Package, error) {
	return nil, s.err
}

func (s *stubPackageRepository) FindAll(ctx context.Context) ([]entity.Package, error) {
	return nil, s.err
}

func (s *stubPackageRepository) Create(ctx context.Context, pkg *entity.Package) error {
	return s.err
}

func (s *stubPackageRepository) Update(ctx context.Context, pkg *entity.Package) error {
	return s.err
}

type stubDepartureRepository struct {
	departures map[string]*entity.PackageDeparture
	err        error
}

func (s *stubDepartureRepository) FindByID(ctx context.Context, id string) (*entity.PackageDeparture, error) {
	if s.err != nil {
		return nil, s.err
	}
	departure, ok := s.departures[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return departure, nil
}

func (s *stubDepartureRepository) FindNextByPackageID(ctx context.Context, packageID string, now time.Time) (*time.Time, error) {
	return nil, s.err
}

type stubNameRepository struct {
	names map[string]string
	err   error
}

func (s *stubNameRepository) FindNameByID(ctx context.Context, id string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	name, ok := s.names[id]
	if !ok {
		return "", sql.ErrNoRows
	}
	return name, nil
}

type stubAgentRepository struct {
	stubNameRepository
}

func (s *stubAgentRepository) Create(ctx context.Context, agent *entity.Agent) error {
	return s.err
}

func (s *stubAgentRepository) FindAll(ctx context.Context) ([]entity.Agent, error) {
	return nil, s.err
}

type stubPaymentRepository struct {
	paid map[string]float64
	errs map[string]error
}

func (s *stubPaymentRepository) SumPaidByBooking(ctx context.Context, bookingID string) (float64, error) {
	if err, ok := s.errs[bookingID]; ok {
		return 0, err
	}
	return s.paid[bookingID], nil
}

type stubNotificationRepository struct {
	history   map[string][]entity.Notification
	insertErr error
	inserted  []entity.Notification
}

func (s *stubNotificationRepository) FindByBookingSince(ctx context.Context, bookingID string, since time.Time) ([]entity.Notification, error) {
	var out []entity.Notification
	for _, n := range s.history[bookingID] {
		if !n.CreatedAt.Before(since) {
			out = append(out, n)
		}
	}
	return out, nil
}

func (s *stubNotificationRepository) BatchInsert(ctx context.Context, notifications []entity.Notification) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.inserted = append(s.inserted, notifications...)
	if s.history == nil {
		s.history = make(map[string][]entity.Notification)
	}
	for _, n := range notifications {
		s.history[n.BookingID.String] = append(s.history[n.BookingID.String], n)
	}
	return nil
}

func (s *stubNotificationRepository) FindByUser(ctx context.Context, userID string) ([]entity.Notification, error) {
	return nil, nil
}

func (s *stubNotificationRepository) MarkRead(ctx context.Context, id, userID string) error {
	return nil
}

type stubUserRepository struct {
	users map[string]*entity.User
	err   error
}

func (s *stubUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, u := range s.users {
		if u.UserID == id {
			return u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *stubUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	user, ok := s.users[email]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return user, nil
}
