package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"parcelhub/internal/errors"
	"parcelhub/internal/model"
	"parcelhub/internal/service"
)

// UserHandler handles registration, lookup and role administration.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterUserRequest represents a registration submission.
type RegisterUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"omitempty,min=6"`
}

// RegisterUserResponse reports whether the registration inserted a record.
type RegisterUserResponse struct {
	Message  string      `json:"message"`
	Inserted bool        `json:"inserted"`
	User     *model.User `json:"user,omitempty"`
}

// RoleResponse carries a user's stored role.
type RoleResponse struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Register godoc
// @Summary Register a user (idempotent)
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterUserRequest true "User data"
// @Success 200 {object} RegisterUserResponse
// @Success 201 {object} RegisterUserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	user, inserted, err := h.userService.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	if !inserted {
		return c.JSON(http.StatusOK, RegisterUserResponse{
			Message:  "User already exist",
			Inserted: false,
			User:     user,
		})
	}
	return c.JSON(http.StatusCreated, RegisterUserResponse{
		Message:  "User registered successfully",
		Inserted: true,
		User:     user,
	})
}

// Search godoc
// @Summary Find a user by email
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param email query string true "Email"
// @Success 200 {object} model.User
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/search [get]
func (h *UserHandler) Search(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "email query parameter is required",
			Code:  "INVALID_REQUEST",
		})
	}

	user, err := h.userService.Search(c.Request().Context(), email)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, user)
}

// Role godoc
// @Summary Get a user's role by email
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param email query string true "Email"
// @Success 200 {object} RoleResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/role [get]
func (h *UserHandler) Role(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "email query parameter is required",
			Code:  "INVALID_REQUEST",
		})
	}

	role, err := h.userService.RoleByEmail(c.Request().Context(), email)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, RoleResponse{Email: email, Role: role})
}

// MakeAdmin godoc
// @Summary Grant the admin role
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} ModifiedResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/make-admin/{id} [patch]
func (h *UserHandler) MakeAdmin(c echo.Context) error {
	return h.setRole(c, model.RoleAdmin, "Admin role granted")
}

// RemoveAdmin godoc
// @Summary Revoke the admin role
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} ModifiedResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/remove-admin/{id} [patch]
func (h *UserHandler) RemoveAdmin(c echo.Context) error {
	return h.setRole(c, model.RoleUser, "Admin role revoked")
}

func (h *UserHandler) setRole(c echo.Context, role, message string) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid user id",
			Code:  "INVALID_REQUEST",
		})
	}

	modified, err := h.userService.SetRole(c.Request().Context(), uint(id), role)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, ModifiedResponse{
		Message:  message,
		Modified: modified,
	})
}
