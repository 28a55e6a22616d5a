package service

import (
	"context"
	"fmt"
	"time"

	"github.com/prasen-shakya/Schedulify/core/cache"
	"github.com/prasen-shakya/Schedulify/core/errors"
	"github.com/prasen-shakya/Schedulify/core/logger"
	"github.com/prasen-shakya/Schedulify/core/utils"
	"github.com/prasen-shakya/Schedulify/modules/auth/dto"
	"github.com/prasen-shakya/Schedulify/modules/auth/entity"
	"github.com/prasen-shakya/Schedulify/modules/auth/repository"

	"github.com/google/uuid"
)

// AuthService handles registration, login and session revocation.
type AuthService struct {
	repo  repository.AuthRepositoryInterface
	cache cache.Cache
}

// AuthServiceInterface defines the service contract.
type AuthServiceInterface interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.SessionData, *errors.AppError)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionData, *errors.AppError)
	Logout(ctx context.Context, token string) *errors.AppError
	GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, *errors.AppError)
}

func NewAuthService(repo repository.AuthRepositoryInterface, cache cache.Cache) AuthServiceInterface {
	return &AuthService{repo: repo, cache: cache}
}

// Register creates an account and opens a session in one step, the way the
// original register endpoint logs the new user straight in.
func (service *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.SessionData, *errors.AppError) {
	existing, err := service.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to check existing email", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "Email already exists.", nil)
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("AuthService:Register:HashPassword", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to hash password", err)
	}

	user := &entity.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
	}
	if err := service.repo.CreateUser(ctx, user); err != nil {
		// A racing duplicate insert surfaces here via the unique constraint;
		// it is not silently merged.
		return nil, errors.NewAppError(errors.ErrInternalServer, fmt.Sprintf("failed to create user: %v", err), err)
	}

	return service.openSession(user.ID)
}

// Login verifies credentials. Unknown email and wrong password produce the
// same message so the endpoint is not a user-existence oracle.
func (service *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionData, *errors.AppError) {
	loginKey := req.Email

	blocked, err := service.cache.IsLoginBlocked(ctx, loginKey)
	if err != nil {
		logger.Warn("AuthService:Login:IsLoginBlocked", "error", err)
	}
	if blocked {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Too many failed attempts. Try again later.", nil)
	}

	user, err := service.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to look up user", err)
	}
	if user == nil {
		service.recordFailedAttempt(ctx, loginKey)
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid email or password.", nil)
	}

	if !utils.ComparePassword(user.Password, req.Password) {
		service.recordFailedAttempt(ctx, loginKey)
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid email or password.", nil)
	}

	if err := service.cache.ResetLoginAttempts(ctx, loginKey); err != nil {
		logger.Warn("AuthService:Login:ResetLoginAttempts", "error", err)
	}

	return service.openSession(user.ID)
}

// Logout revokes the presented token for its remaining lifetime.
func (service *AuthService) Logout(ctx context.Context, token string) *errors.AppError {
	claims, err := utils.ValidateAndParseToken(token)
	if err != nil {
		// Already invalid or expired; nothing to revoke.
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if err := service.cache.AddTokenToBlacklist(ctx, token, ttl); err != nil {
		logger.Warn("AuthService:Logout:AddTokenToBlacklist", "error", err)
	}
	return nil
}

func (service *AuthService) GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, *errors.AppError) {
	user, err := service.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get user", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "User not found.", nil)
	}
	return user, nil
}

func (service *AuthService) openSession(userID uuid.UUID) (*dto.SessionData, *errors.AppError) {
	token, expiresAt, err := utils.GenerateToken(userID)
	if err != nil {
		logger.Error("AuthService:openSession:GenerateToken", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to generate token", err)
	}
	return &dto.SessionData{Token: token, ExpiresAt: expiresAt}, nil
}

func (service *AuthService) recordFailedAttempt(ctx context.Context, key string) {
	if err := service.cache.IncrementLoginAttempt(ctx, key); err != nil {
		logger.Warn("AuthService:recordFailedAttempt", "error", err)
	}
}
