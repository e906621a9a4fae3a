package repository

import (
	"context"

	"umroh-service/src/internal/entity"
	"umroh-service/src/pkg/databases/mysql"
)

type CommissionRepository interface {
	// FindRate resolves the per-pilgrim rate for one (package, pic_type) pair.
	// Returns sql.ErrNoRows when no rate is configured.
	FindRate(ctx context.Context, packageID, picType string) (*entity.PackageCommission, error)
	Upsert(ctx context.Context, rate *entity.PackageCommission) error
	FindByPackageID(ctx context.Context, packageID string) ([]entity.PackageCommission, error)
}

type commissionRepository struct {
	DB mysql.DBInterface
}

func NewCommissionRepository(db mysql.DBInterface) CommissionRepository {
	return &commissionRepository{
		DB: db,
	}
}

func (r *commissionRepository) FindRate(ctx context.Context, packageID, picType string) (*entity.PackageCommission, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var rate entity.PackageCommission
	query := `
		SELECT pc.id, pc.package_id, pc.pic_type, pc.commission_amount
		FROM package_commissions pc
		WHERE pc.package_id = ?
		AND pc.pic_type = ?
		LIMIT 1
	`

	err = db.GetContext(ctx, &rate, query, packageID, picType)
	if err != nil {
		return nil, err
	}

	return &rate, nil
}

func (r *commissionRepository) Upsert(ctx context.Context, rate *entity.PackageCommission) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	// uniqueness per (package_id, pic_type) is enforced by the table's
	// composite unique key
	query := `
		INSERT INTO package_commissions
			(id, package_id, pic_type, commission_amount)
		VALUES
			(:id, :package_id, :pic_type, :commission_amount)
		ON DUPLICATE KEY UPDATE
			commission_amount = VALUES(commission_amount)
	`

	_, err = db.NamedExecContext(ctx, query, rate)
	return err
}

func (r *commissionRepository) FindByPackageID(ctx context.Context, packageID string) ([]entity.PackageCommission, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var rates []entity.PackageCommission
	query := `
		SELECT pc.id, pc.package_id, pc.pic_type, pc.commission_amount
		FROM package_commissions pc
		WHERE pc.package_id = ?
		ORDER BY pc.pic_type ASC
	`

	err = db.SelectContext(ctx, &rates, query, packageID)
	if err != nil {
		return nil, err
	}

	return rates, nil
}
