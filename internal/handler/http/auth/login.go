package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"cahaya-digital/internal/domain/entity"
	"cahaya-digital/internal/handler/http/respond"
	"cahaya-digital/internal/observability/logging"
	authservice "cahaya-digital/internal/service/auth"
)

type loginRequest struct {
	Username string `json:"username" example:"admin"`
	Password string `json:"password" example:"your_password"`
}

// SessionUser is the account summary returned on login. It never carries the password hash.
type SessionUser struct {
	ID       int64       `json:"id" example:"1"`
	Username string      `json:"username" example:"admin"`
	FullName *string     `json:"fullName,omitempty" example:"Administrator"`
	Email    *string     `json:"email,omitempty" example:"admin@cahayadigital25.com"`
	Role     entity.Role `json:"role" example:"admin"`
}

type loginResponse struct {
	Token     string      `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresAt time.Time   `json:"expiresAt" example:"2026-01-02T15:04:05Z"`
	User      SessionUser `json:"user"`
}

// LoginHandler verifies credentials and issues an access token.
type LoginHandler struct {
	Auth   *authservice.AuthService
	Tokens *TokenIssuer
}

// ServeHTTP logs a user in.
// @Summary      Log in to the admin panel
// @Description  Verifies username and password and returns a JWT access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body loginRequest true "Credentials"
// @Success      200 {object} loginResponse
// @Failure      400 {object} respond.ErrorResponse "Malformed request"
// @Failure      401 {object} respond.ErrorResponse "Invalid username or password"
// @Failure      403 {object} respond.ErrorResponse "Account disabled"
// @Failure      429 {object} respond.ErrorResponse "Too many login attempts"
// @Header       429 {integer} Retry-After "Seconds until the client should retry"
// @Failure      500 {object} respond.ErrorResponse
// @Router       /api/auth/login [post]
func (h LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := logging.WithRequestID(r.Context(), logging.FromContext(r.Context()))

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}
	if req.Username == "" || req.Password == "" {
		respond.Error(w, http.StatusBadRequest, errors.New("username and password are required"))
		return
	}

	u, err := h.Auth.Authenticate(r.Context(), authservice.Credentials{Username: req.Username, Password: req.Password})
	switch {
	case errors.Is(err, authservice.ErrInvalidCredentials):
		logger.Warn("login failed", slog.String("username", req.Username), slog.String("reason", "invalid_credentials"))
		respond.Error(w, http.StatusUnauthorized, err)
		return
	case errors.Is(err, authservice.ErrInactiveUser):
		logger.Warn("login failed", slog.String("username", req.Username), slog.String("reason", "inactive"))
		respond.Error(w, http.StatusForbidden, err)
		return
	case err != nil:
		respond.DomainError(w, "user", err)
		return
	}

	token, exp, err := h.Tokens.Issue(u)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	logger.Info("login succeeded", slog.Int64("user_id", u.ID), slog.String("role", string(u.Role)))
	respond.JSON(w, http.StatusOK, loginResponse{
		Token:     token,
		ExpiresAt: exp,
		User: SessionUser{
			ID:       u.ID,
			Username: u.Username,
			FullName: u.FullName,
			Email:    u.Email,
			Role:     u.Role,
		},
	})
}
