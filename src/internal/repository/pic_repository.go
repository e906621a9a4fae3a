package repository

import (
	"context"

	"umroh-service/src/internal/entity"
	"umroh-service/src/pkg/databases/mysql"
)

// PicNameFinder is the lookup each pic_type dispatches to when resolving a
// display name for the commission report.
type PicNameFinder interface {
	FindNameByID(ctx context.Context, id string) (string, error)
}

type AgentRepository interface {
	PicNameFinder
	Create(ctx context.Context, agent *entity.Agent) error
	FindAll(ctx context.Context) ([]entity.Agent, error)
}

type BranchRepository interface {
	PicNameFinder
}

type ProfileRepository interface {
	PicNameFinder
}

type agentRepository struct {
	DB mysql.DBInterface
}

func NewAgentRepository(db mysql.DBInterface) AgentRepository {
	return &agentRepository{DB: db}
}

func (r *agentRepository) FindNameByID(ctx context.Context, id string) (string, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return "", err
	}

	var name string
	err = db.GetContext(ctx, &name, `SELECT a.name FROM agents a WHERE a.id = ? LIMIT 1`, id)
	if err != nil {
		return "", err
	}

	return name, nil
}

func (r *agentRepository) Create(ctx context.Context, agent *entity.Agent) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO agents
			(id, name, phone, city, is_active, created_at)
		VALUES
			(:id, :name, :phone, :city, :is_active, :created_at)
	`

	_, err = db.NamedExecContext(ctx, query, agent)
	return err
}

func (r *agentRepository) FindAll(ctx context.Context) ([]entity.Agent, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var agents []entity.Agent
	query := `
		SELECT a.id, a.name, a.phone, a.city, a.is_active, a.created_at
		FROM agents a
		ORDER BY a.name ASC
	`

	err = db.SelectContext(ctx, &agents, query)
	if err != nil {
		return nil, err
	}

	return agents, nil
}

type branchRepository struct {
	DB mysql.DBInterface
}

func NewBranchRepository(db mysql.DBInterface) BranchRepository {
	return &branchRepository{DB: db}
}

func (r *branchRepository) FindNameByID(ctx context.Context, id string) (string, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return "", err
	}

	var name string
	err = db.GetContext(ctx, &name, `SELECT b.name FROM branches b WHERE b.id = ? LIMIT 1`, id)
	if err != nil {
		return "", err
	}

	return name, nil
}

type profileRepository struct {
	DB mysql.DBInterface
}

func NewProfileRepository(db mysql.DBInterface) ProfileRepository {
	return &profileRepository{DB: db}
}

func (r *profileRepository) FindNameByID(ctx context.Context, id string) (string, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return "", err
	}

	var name string
	err = db.GetContext(ctx, &name, `SELECT p.name FROM profiles p WHERE p.id = ? LIMIT 1`, id)
	if err != nil {
		return "", err
	}

	return name, nil
}
