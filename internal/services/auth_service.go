package services

import (
	"errors"
	"fmt"
	"log/slog"

	"mca-underwriting/internal/dto"
	"mca-underwriting/internal/models"
	"mca-underwriting/internal/repositories"

	"github.com/google/uuid"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService handles authentication business logic
type AuthService struct {
	userRepo        repositories.UserRepositoryInterface
	passwordService PasswordServiceInterface
	tokenService    TokenServiceInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	passwordService PasswordServiceInterface,
	tokenService TokenServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		metrics:         metrics,
		logger:          logger,
	}
}

// Login authenticates an underwriter and returns an access token
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			// Same error for unknown user and wrong password
			s.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "login_failed"})
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !s.passwordService.ComparePassword(req.Password, user.PasswordHash) {
		s.logger.Warn("failed login attempt",
			"email", user.Email)
		s.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "login_failed"})
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	if err := s.userRepo.UpdateLastLogin(user.ID); err != nil {
		// Non-critical: a stale last_login_at shouldn't block login
		s.logger.Warn("failed to record last login",
			"error", err,
			"user_id", user.ID)
	}

	s.logger.Info("user logged in",
		"user_id", user.ID,
		"email", user.Email,
		"role", user.Role)
	s.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "login_success"})

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}

// GetProfile returns the authenticated user's profile
func (s *AuthService) GetProfile(userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}
