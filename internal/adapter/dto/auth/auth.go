package auth

import (
	"github.com/prepwise-app/prepwise-api/internal/domain/entities"
	"github.com/prepwise-app/prepwise-api/internal/usecase/auth"
)

// SignUpRequest is the payload for user registration
type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required,min=1,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// SignInRequest is the payload for user login
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest is the payload for token refresh
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// AuthResponse carries the authenticated user and issued tokens
type AuthResponse struct {
	User   *entities.PublicUser `json:"user"`
	Tokens *auth.TokenPair      `json:"tokens"`
}
