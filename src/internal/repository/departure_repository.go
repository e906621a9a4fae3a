package repository

import (
	"context"
	"time"

	"umroh-service/src/internal/entity"
	"umroh-service/src/pkg/databases/mysql"
)

type DepartureRepository interface {
	FindByID(ctx context.Context, id string) (*entity.PackageDeparture, error)
	// FindNextByPackageID returns the closest upcoming departure date, nil when
	// the package has none scheduled.
	FindNextByPackageID(ctx context.Context, packageID string, now time.Time) (*time.Time, error)
}

type departureRepository struct {
	DB mysql.DBInterface
}

func NewDepartureRepository(db mysql.DBInterface) DepartureRepository {
	return &departureRepository{
		DB: db,
	}
}

func (r *departureRepository) FindByID(ctx context.Context, id string) (*entity.PackageDeparture, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var departure entity.PackageDeparture
	query := `
		SELECT d.id, d.package_id, d.departure_date, d.quota
		FROM package_departures d
		WHERE d.id = ?
		LIMIT 1
	`

	err = db.GetContext(ctx, &departure, query, id)
	if err != nil {
		return nil, err
	}

	return &departure, nil
}

func (r *departureRepository) FindNextByPackageID(ctx context.Context, packageID string, now time.Time) (*time.Time, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var dates []time.Time
	query := `
		SELECT d.departure_date
		FROM package_departures d
		WHERE d.package_id = ?
		AND d.departure_date >= ?
		ORDER BY d.departure_date ASC
		LIMIT 1
	`

	err = db.SelectContext(ctx, &dates, query, packageID, now)
	if err != nil {
		return nil, err
	}
	if len(dates) == 0 {
		return nil, nil
	}

	return &dates[0], nil
}
