package handlers

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/poetree/internal/models"
)

// Authenticator is the account and token service used by the auth handlers.
type Authenticator interface {
	SignUp(ctx context.Context, req models.AuthRequest) (*models.AuthDTO, error)
	SignIn(ctx context.Context, req models.AuthRequest) (*models.AuthDTO, error)
	Refresh(ctx context.Context, req models.RefreshRequest) (*models.TokenPairDTO, error)
	ResetPassword(ctx context.Context, req models.ResetRequest) error
	UpdatePassword(ctx context.Context, userID uuid.UUID, req models.PasswordUpdateRequest) (*models.TokenPairDTO, error)
}

// NewSignUpHandler returns an HTTP handler for account creation.
// @Summary Sign up
// @Description Creates an account and returns a token pair with the new user.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.AuthRequest true "Credentials"
// @Success 201 {object} models.Response[models.AuthDTO]
// @Failure 400 {object} handlers.ErrorResponse "Invalid email or blank password"
// @Failure 409 {object} handlers.ErrorResponse "Email already in use"
// @Failure 429 {object} handlers.ErrorResponse "Too many requests"
// @Router /auth/signup [post]
func NewSignUpHandler(svc Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.AuthRequest
		if !decode(w, r, &req) {
			return
		}
		out, err := svc.SignUp(r.Context(), req)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, "signed up successfully", out)
	}
}

// NewSignInHandler returns an HTTP handler for password sign in.
// @Summary Sign in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.AuthRequest true "Credentials"
// @Success 200 {object} models.Response[models.AuthDTO]
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse "Invalid credentials"
// @Failure 429 {object} handlers.ErrorResponse "Too many requests"
// @Router /auth/signin [post]
func NewSignInHandler(svc Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.AuthRequest
		if !decode(w, r, &req) {
			return
		}
		out, err := svc.SignIn(r.Context(), req)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, "signed in successfully", out)
	}
}

// NewRefreshHandler returns an HTTP handler that trades a refresh token for a new pair.
// @Summary Refresh tokens
// @Description Redeems a refresh token once and returns a new access and refresh token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.RefreshRequest true "Refresh token"
// @Success 200 {object} models.Response[models.TokenPairDTO]
// @Failure 400 {object} handlers.ErrorResponse "Invalid refresh token"
// @Router /auth/refresh [post]
func NewRefreshHandler(svc Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RefreshRequest
		if !decode(w, r, &req) {
			return
		}
		out, err := svc.Refresh(r.Context(), req)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, "tokens successfully regenerated", out)
	}
}

// NewResetPasswordHandler returns an HTTP handler for password reset requests.
// @Summary Request a password reset
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.ResetRequest true "Account email"
// @Success 200 {object} models.Response[bool]
// @Failure 400 {object} handlers.ErrorResponse
// @Router /auth/reset [post]
func NewResetPasswordHandler(svc Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.ResetRequest
		if !decode(w, r, &req) {
			return
		}
		if err := svc.ResetPassword(r.Context(), req); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, "reset link sent", true)
	}
}

// NewUpdatePasswordHandler returns an HTTP handler that changes the caller's password.
// @Summary Change password
// @Description Verifies the old password, stores the new one, revokes every refresh token and returns a fresh pair.
// @Tags users
// @Accept json
// @Produce json
// @Param request body models.PasswordUpdateRequest true "Old and new password"
// @Success 200 {object} models.Response[models.TokenPairDTO]
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse "Wrong old password"
// @Router /users/me/password [put]
// @Security BearerAuth
func NewUpdatePasswordHandler(svc Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		var req models.PasswordUpdateRequest
		if !decode(w, r, &req) {
			return
		}
		out, err := svc.UpdatePassword(r.Context(), userID, req)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, "password updated", out)
	}
}
