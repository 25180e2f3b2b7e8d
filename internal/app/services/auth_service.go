package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/devraj/lecturehall/internal/app/models/dto"
	"github.com/devraj/lecturehall/internal/app/repositories"
	"github.com/devraj/lecturehall/internal/pkg/apperrors"
	"github.com/devraj/lecturehall/internal/pkg/auth"
	"github.com/devraj/lecturehall/internal/pkg/validation"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	userRepo   repositories.IUserRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo repositories.IUserRepository, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login authenticates a user by email and password and issues a token.
// Unknown email and wrong password both map to ErrInvalidCredentials so the
// response does not reveal which part was wrong.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := validation.ValidateEmail(req.Email); err != nil {
		return nil, err
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info().Str("email", user.Email).Str("role", string(user.Role)).Msg("User logged in")

	return &dto.LoginResponse{
		Auth:  true,
		Token: token,
		User:  dto.NewUserResponse(user),
	}, nil
}
