package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/prepwise-app/prepwise-api/internal/domain/entities"
	"github.com/prepwise-app/prepwise-api/internal/domain/repositories"
	"github.com/prepwise-app/prepwise-api/pkg/jwt"
)

// SessionStore tracks issued refresh tokens by hash so they can be
// revoked before expiry.
type SessionStore interface {
	SaveSession(ctx context.Context, userID uuid.UUID, tokenHash string, ttl time.Duration) error
	SessionExists(ctx context.Context, userID uuid.UUID, tokenHash string) (bool, error)
	DeleteSession(ctx context.Context, userID uuid.UUID, tokenHash string) error
}

// TokenPair is an issued access/refresh token pair
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// Service handles authentication
type Service interface {
	SignUp(ctx context.Context, email, name, password string) (*entities.User, *TokenPair, error)
	SignIn(ctx context.Context, email, password string) (*entities.User, *TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	GetUser(ctx context.Context, userID uuid.UUID) (*entities.User, error)
}

type authService struct {
	userRepo   repositories.UserRepository
	sessions   SessionStore
	jwtManager *jwt.Manager
	logger     *zap.Logger
}

// NewService creates a new auth service
func NewService(userRepo repositories.UserRepository, sessions SessionStore, jwtManager *jwt.Manager, logger *zap.Logger) Service {
	return &authService{
		userRepo:   userRepo,
		sessions:   sessions,
		jwtManager: jwtManager,
		logger:     logger,
	}
}

// SignUp registers a new user and issues a token pair
func (s *authService) SignUp(ctx context.Context, email, name, password string) (*entities.User, *TokenPair, error) {
	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, nil, entities.ErrEmailAlreadyUsed
	} else if !errors.Is(err, entities.ErrUserNotFound) {
		return nil, nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entities.NewUser(email, name, string(hash))
	if err := user.Validate(); err != nil {
		return nil, nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.logger.Error("failed to create user", zap.String("email", email), zap.Error(err))
		return nil, nil, err
	}

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("user signed up", zap.String("user_id", user.ID.String()))
	return user, pair, nil
}

// SignIn authenticates a user by email and password
func (s *authService) SignIn(ctx context.Context, email, password string) (*entities.User, *TokenPair, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, nil, entities.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !user.IsActive {
		return nil, nil, entities.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, entities.ErrInvalidCredentials
	}

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		s.logger.Warn("failed to update last login", zap.String("user_id", user.ID.String()), zap.Error(err))
	}

	return user, pair, nil
}

// Refresh exchanges a valid refresh token for a new token pair. The old
// refresh token session is revoked.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, entities.ErrSessionExpired
	}

	tokenHash, err := s.jwtManager.HashToken(refreshToken)
	if err != nil {
		return nil, err
	}

	exists, err := s.sessions.SessionExists(ctx, userID, tokenHash)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, entities.ErrSessionNotFound
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.DeleteSession(ctx, userID, tokenHash); err != nil {
		s.logger.Warn("failed to revoke old session", zap.String("user_id", userID.String()), zap.Error(err))
	}

	return s.issueTokens(ctx, user)
}

// Logout revokes the session for the given refresh token
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return entities.ErrSessionExpired
	}

	tokenHash, err := s.jwtManager.HashToken(refreshToken)
	if err != nil {
		return err
	}

	return s.sessions.DeleteSession(ctx, userID, tokenHash)
}

// GetUser returns a user by ID
func (s *authService) GetUser(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

func (s *authService) issueTokens(ctx context.Context, user *entities.User) (*TokenPair, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	tokenHash, err := s.jwtManager.HashToken(refreshToken)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.SaveSession(ctx, user.ID, tokenHash, s.jwtManager.GetRefreshExpiry()); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.jwtManager.GetAccessExpiry().Seconds()),
	}, nil
}
