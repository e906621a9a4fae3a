package repository

import (
	"context"
	"database/sql"

	"umroh-service/src/internal/entity"
	"umroh-service/src/pkg/databases/mysql"
)

type PackageRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Package, error)
	FindPublished(ctx context.Context) ([]entity.Package, error)
	FindAll(ctx context.Context) ([]entity.Package, error)
	Create(ctx context.Context, pkg *entity.Package) error
	Update(ctx context.Context, pkg *entity.Package) error
}

type packageRepository struct {
	DB mysql.DBInterface
}

func NewPackageRepository(db mysql.DBInterface) PackageRepository {
	return &packageRepository{
		DB: db,
	}
}

const packageColumns = `
	p.id,
	p.title,
	p.description,
	p.price,
	p.duration_days,
	p.dp_deadline_days,
	p.full_deadline_days,
	p.image_url,
	p.is_published,
	p.created_at,
	p.updated_at
`

func (r *packageRepository) FindByID(ctx context.Context, id string) (*entity.Package, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var pkg entity.Package
	query := `SELECT ` + packageColumns + ` FROM packages p WHERE p.id = ? LIMIT 1`

	err = db.GetContext(ctx, &pkg, query, id)
	if err != nil {
		return nil, err
	}

	return &pkg, nil
}

func (r *packageRepository) FindPublished(ctx context.Context) ([]entity.Package, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var packages []entity.Package
	query := `SELECT ` + packageColumns + ` FROM packages p WHERE p.is_published = 1 ORDER BY p.created_at DESC`

	err = db.SelectContext(ctx, &packages, query)
	if err != nil {
		return nil, err
	}

	return packages, nil
}

func (r *packageRepository) FindAll(ctx context.Context) ([]entity.Package, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var packages []entity.Package
	query := `SELECT ` + packageColumns + ` FROM packages p ORDER BY p.created_at DESC`

	err = db.SelectContext(ctx, &packages, query)
	if err != nil {
		return nil, err
	}

	return packages, nil
}

func (r *packageRepository) Create(ctx context.Context, pkg *entity.Package) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO packages
			(id, title, description, price, duration_days, dp_deadline_days, full_deadline_days, image_url, is_published, created_at)
		VALUES
			(:id, :title, :description, :price, :duration_days, :dp_deadline_days, :full_deadline_days, :image_url, :is_published, :created_at)
	`

	_, err = db.NamedExecContext(ctx, query, pkg)
	return err
}

func (r *packageRepository) Update(ctx context.Context, pkg *entity.Package) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		UPDATE packages SET
			title = :title,
			description = :description,
			price = :price,
			duration_days = :duration_days,
			dp_deadline_days = :dp_deadline_days,
			full_deadline_days = :full_deadline_days,
			image_url = :image_url,
			is_published = :is_published,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := db.NamedExecContext(ctx, query, pkg)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
