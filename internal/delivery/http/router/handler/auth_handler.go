// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"sagedo/internal/delivery/http/middleware"
	"sagedo/internal/delivery/http/response"
	domainerrors "sagedo/internal/domain/errors"
	"sagedo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for identity and account handlers.
type AuthHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.UserUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Register handles the account registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if err := middleware.SetCurrentUser(c, user.Snapshot()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserView(user), "User registered successfully")
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login handles the email and password login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if err := middleware.SetCurrentUser(c, user.Snapshot()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserView(user), "Login successful")
}

type googleLoginRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

// GoogleLogin handles the Google Sign-In request with an ID token.
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	var req googleLoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid Google login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.GoogleLogin(c.Request().Context(), usecase.GoogleLoginInput{IDToken: req.IDToken})
	if err != nil {
		return errors.WithStack(err)
	}

	if err := middleware.SetCurrentUser(c, user.Snapshot()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserView(user), "Login successful")
}

// Logout drops the caller's session.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := middleware.ClearCurrentUser(c); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

// Me returns the caller's account. The admin identity has no user row, so it
// is answered from the session snapshot.
func (h *AuthHandler) Me(c echo.Context) error {
	snapshot := middleware.CurrentUser(c)
	if snapshot == nil {
		return domainerrors.ErrUnauthorized
	}

	if snapshot.ID == uuid.Nil {
		return response.Success(c, http.StatusOK, userView{
			ID:      snapshot.ID,
			Email:   snapshot.Email,
			Name:    snapshot.Name,
			IsAdmin: true,
		}, "")
	}

	user, err := h.uc.GetUser(c.Request().Context(), snapshot.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserView(user), "")
}

// VerifyEmail marks the account behind the token as verified.
func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Verification token is required")
	}

	if err := h.uc.VerifyEmail(c.Request().Context(), token); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Email verified successfully")
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ForgotPassword issues a reset token. The response never reveals whether
// the email belongs to an account.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.RequestPasswordReset(c.Request().Context(), req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "If the email exists, a reset link has been sent")
}

type resetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// ResetPassword completes a password reset.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ResetPassword(c.Request().Context(), usecase.ResetPasswordInput{
		Token:    req.Token,
		Password: req.Password,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password reset successfully")
}

// DeleteAccount removes the caller's account and logs them out.
func (h *AuthHandler) DeleteAccount(c echo.Context) error {
	snapshot := middleware.CurrentUser(c)
	if snapshot == nil {
		return domainerrors.ErrUnauthorized
	}
	if snapshot.ID == uuid.Nil {
		return domainerrors.ErrForbidden.WrapMessage("the admin identity cannot be deleted")
	}

	if err := h.uc.DeleteAccount(c.Request().Context(), snapshot.ID); err != nil {
		return errors.WithStack(err)
	}

	if err := middleware.ClearCurrentUser(c); err != nil {
		h.logger.Warn("Failed to clear session after account deletion", "error", err)
	}

	return response.Success(c, http.StatusOK, nil, "Account deleted")
}
