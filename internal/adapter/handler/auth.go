package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/prepwise-app/prepwise-api/errors"
	authdto "github.com/prepwise-app/prepwise-api/internal/adapter/dto/auth"
	"github.com/prepwise-app/prepwise-api/internal/domain/entities"
	"github.com/prepwise-app/prepwise-api/internal/infrastructure/http/middleware"
	"github.com/prepwise-app/prepwise-api/internal/usecase/auth"
)

// Auth handles authentication endpoints
type Auth struct {
	authService auth.Service
	logger      *zap.Logger
}

// NewAuth creates a new auth handler
func NewAuth(authService auth.Service, logger *zap.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

// SignUp registers a new user
// POST /v1/auth/sign-up
func (h *Auth) SignUp(c echo.Context) error {
	var req authdto.SignUpRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.BadRequest(err, "Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.BadRequest(err, "Invalid request body"))
	}

	user, tokens, err := h.authService.SignUp(c.Request().Context(), req.Email, req.Name, req.Password)
	if err != nil {
		if stdErrors.Is(err, entities.ErrEmailAlreadyUsed) {
			return HandleError(h.logger, c, errors.Conflict(err, "Email already in use"))
		}
		return HandleError(h.logger, c, err)
	}

	setRefreshCookie(c, tokens.RefreshToken)

	return HandleSuccess(h.logger, c, http.StatusCreated, authdto.AuthResponse{
		User:   user.ToPublic(),
		Tokens: tokens,
	})
}

// SignIn authenticates a user
// POST /v1/auth/sign-in
func (h *Auth) SignIn(c echo.Context) error {
	var req authdto.SignInRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.BadRequest(err, "Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.BadRequest(err, "Invalid request body"))
	}

	user, tokens, err := h.authService.SignIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if stdErrors.Is(err, entities.ErrInvalidCredentials) {
			return HandleError(h.logger, c, errors.Unauthorized(err, "Invalid email or password"))
		}
		return HandleError(h.logger, c, err)
	}

	setRefreshCookie(c, tokens.RefreshToken)

	return HandleSuccess(h.logger, c, http.StatusOK, authdto.AuthResponse{
		User:   user.ToPublic(),
		Tokens: tokens,
	})
}

// RefreshToken exchanges a refresh token for a new token pair
// POST /v1/auth/refresh
func (h *Auth) RefreshToken(c echo.Context) error {
	token := refreshTokenFromRequest(c)
	if token == "" {
		return HandleError(h.logger, c, errors.BadRequest(nil, "Missing refresh token"))
	}

	tokens, err := h.authService.Refresh(c.Request().Context(), token)
	if err != nil {
		if stdErrors.Is(err, entities.ErrSessionExpired) || stdErrors.Is(err, entities.ErrSessionNotFound) {
			return HandleError(h.logger, c, errors.Unauthorized(err, "Invalid or expired session"))
		}
		return HandleError(h.logger, c, err)
	}

	setRefreshCookie(c, tokens.RefreshToken)

	return HandleSuccess(h.logger, c, http.StatusOK, tokens)
}

// Logout revokes the current session
// POST /v1/auth/logout
func (h *Auth) Logout(c echo.Context) error {
	token := refreshTokenFromRequest(c)
	if token != "" {
		if err := h.authService.Logout(c.Request().Context(), token); err != nil {
			h.logger.Warn("logout failed", zap.Error(err))
		}
	}

	clearRefreshCookie(c)

	return HandleSuccess(h.logger, c, http.StatusOK, map[string]string{"message": "Logged out"})
}

// Me returns the authenticated user
// GET /v1/auth/me
func (h *Auth) Me(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return HandleError(h.logger, c, errors.Unauthorized(nil, "User not authenticated"))
	}

	user, err := h.authService.GetUser(c.Request().Context(), userID)
	if err != nil {
		if stdErrors.Is(err, entities.ErrUserNotFound) {
			return HandleError(h.logger, c, errors.NotFound(err, "User not found"))
		}
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, user.ToPublic())
}

// refreshTokenFromRequest reads the refresh token from the JSON body or
// the refresh_token cookie
func refreshTokenFromRequest(c echo.Context) string {
	var req authdto.RefreshRequest
	if err := c.Bind(&req); err == nil && req.RefreshToken != "" {
		return req.RefreshToken
	}
	if cookie, err := c.Cookie("refresh_token"); err == nil {
		return cookie.Value
	}
	return ""
}

func setRefreshCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     "refresh_token",
		Value:    token,
		Path:     "/v1/auth",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
}

func clearRefreshCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:   "refresh_token",
		Value:  "",
		Path:   "/v1/auth",
		MaxAge: -1,
	})
}
