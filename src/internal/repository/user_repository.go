package repository

import (
	"context"

	"umroh-service/src/internal/entity"
	"umroh-service/src/pkg/databases/mysql"
)

type UserRepository interface {
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

type userRepository struct {
	DB mysql.DBInterface
}

func NewUserRepository(db mysql.DBInterface) UserRepository {
	return &userRepository{
		DB: db,
	}
}

const userColumns = `
	u.user_id,
	u.full_name,
	u.email,
	u.password_hash,
	u.role,
	u.mobile_number,
	u.created_at,
	u.updated_at
`

func (r *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var user entity.User
	query := `SELECT ` + userColumns + ` FROM users u WHERE u.user_id = ? LIMIT 1`

	err = db.GetContext(ctx, &user, query, id)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var user entity.User
	query := `SELECT ` + userColumns + ` FROM users u WHERE u.email = ? LIMIT 1`

	err = db.GetContext(ctx, &user, query, email)
	if err != nil {
		return nil, err
	}

	return &user, nil
}
