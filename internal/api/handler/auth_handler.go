package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/otokita/catalog-api/internal/api/metrics"
	"github.com/otokita/catalog-api/internal/core/domain"
	"github.com/otokita/catalog-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type userInfo struct {
	Username string `json:"username"`
	Role     string `json:"jabatan"`
}

type loginResponse struct {
	Role      string   `json:"role"`
	User      userInfo `json:"user"`
	Token     string   `json:"token"`
	ExpiresIn int      `json:"expiresIn"`
}

// Login verifies credentials and returns a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      401   {object}  envelope
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		if errors.Is(err, domain.ErrInvalidCredentials) {
			// Same message for unknown username and wrong password.
			return respondError(c, http.StatusUnauthorized, "invalid username or password")
		}
		return respondError(c, http.StatusInternalServerError, "internal server error")
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return respondData(c, http.StatusOK, "login successful", loginResponse{
		Role: string(result.User.Role),
		User: userInfo{
			Username: result.User.Username,
			Role:     string(result.User.Role),
		},
		Token:     result.Token,
		ExpiresIn: result.ExpiresIn,
	})
}

// Register creates an account with the non-privileged role.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "New account details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      409   {object}  envelope
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return respondError(c, http.StatusConflict, "username already registered")
		}
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return respondError(c, http.StatusBadRequest, "username and password are required")
		}
		return respondError(c, http.StatusInternalServerError, "internal server error")
	}

	metrics.RegistrationsTotal.Inc()
	return respondData(c, http.StatusCreated, "registration successful", userInfo{
		Username: user.Username,
		Role:     string(user.Role),
	})
}
