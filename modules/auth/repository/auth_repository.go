package repository

import (
	"context"
	"database/sql"

	"github.com/prasen-shakya/Schedulify/core/database"
	"github.com/prasen-shakya/Schedulify/core/logger"
	"github.com/prasen-shakya/Schedulify/modules/auth/entity"

	"github.com/google/uuid"
)

// AuthRepository handles user persistence.
type AuthRepository struct {
	DB database.IDatabase
}

func NewAuthRepository(db database.IDatabase) *AuthRepository {
	return &AuthRepository{DB: db}
}

// AuthRepositoryInterface defines the repository contract.
type AuthRepositoryInterface interface {
	CreateUser(ctx context.Context, user *entity.User) error
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

func (r *AuthRepository) CreateUser(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (user_id, name, email, password)
		VALUES ($1, $2, $3, $4)
	`

	err := r.DB.ExecContext(ctx, query, user.ID, user.Name, user.Email, user.Password)
	if err != nil {
		logger.Error("AuthRepository:CreateUser", err)
		return err
	}
	return nil
}

func (r *AuthRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT user_id, name, email, password, created_at
		FROM users WHERE email = $1
	`

	var user entity.User
	err := r.DB.GetContext(ctx, &user, query, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("AuthRepository:GetUserByEmail", err)
		return nil, err
	}
	return &user, nil
}

func (r *AuthRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `
		SELECT user_id, name, email, password, created_at
		FROM users WHERE user_id = $1
	`

	var user entity.User
	err := r.DB.GetContext(ctx, &user, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("AuthRepository:GetUserByID", err)
		return nil, err
	}
	return &user, nil
}
