// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"roster/internal/delivery/http/response"
	"roster/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// Signup handles the account registration request.
func (h *UserHandler) Signup(c echo.Context) error {
	var input *usecase.SignupInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.Message(c, http.StatusBadRequest, "Invalid signup input")
	}

	if _, err := h.uc.Signup(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	// Confirmation only; no sensitive data echoed back.
	return response.Message(c, http.StatusCreated, "User created successfully")
}

// Login handles the authentication request.
func (h *UserHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.Message(c, http.StatusBadRequest, "Invalid login input")
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Token(c, http.StatusOK, output.Token)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
