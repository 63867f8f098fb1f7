package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"parcelhub/internal/errors"
	"parcelhub/internal/middleware"
	"parcelhub/internal/model"
	"parcelhub/internal/service"
)

// RiderHandler handles rider application and delivery endpoints.
type RiderHandler struct {
	riderService service.RiderService
}

// NewRiderHandler creates a new rider handler.
func NewRiderHandler(riderService service.RiderService) *RiderHandler {
	return &RiderHandler{riderService: riderService}
}

// ApplyRequest represents a rider application.
type ApplyRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Region   string `json:"region"`
	District string `json:"district" validate:"required"`
}

// ApproveRequest represents an application decision.
type ApproveRequest struct {
	Status string `json:"status" validate:"required,oneof=active cancelled"`
	Email  string `json:"email" validate:"required,email"`
}

// Apply godoc
// @Summary Submit a rider application
// @Tags riders
// @Accept json
// @Produce json
// @Param request body ApplyRequest true "Application data"
// @Success 201 {object} model.Rider
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /riders [post]
func (h *RiderHandler) Apply(c echo.Context) error {
	var req ApplyRequest
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

	rider := &model.Rider{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Region:   req.Region,
		District: req.District,
	}
	created, err := h.riderService.Apply(c.Request().Context(), rider)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, created)
}

// ListPending godoc
// @Summary List pending rider applications
// @Tags riders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Rider
// @Failure 403 {object} errors.ErrorResponse
// @Router /riders/pending [get]
func (h *RiderHandler) ListPending(c echo.Context) error {
	riders, err := h.riderService.ListPending(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, riders)
}

// ListActive godoc
// @Summary List active riders
// @Tags riders
// @Produce json
// @Security BearerAuth
// @Param district query string false "Filter by district"
// @Success 200 {array} model.Rider
// @Failure 403 {object} errors.ErrorResponse
// @Router /riders/active [get]
func (h *RiderHandler) ListActive(c echo.Context) error {
	riders, err := h.riderService.ListActive(c.Request().Context(), c.QueryParam("district"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, riders)
}

// PendingDeliveries godoc
// @Summary List a rider's open deliveries
// @Tags riders
// @Produce json
// @Security BearerAuth
// @Param email query string false "Rider email"
// @Success 200 {array} model.Parcel
// @Failure 401 {object} errors.ErrorResponse
// @Router /parcels/rider/pending [get]
func (h *RiderHandler) PendingDeliveries(c echo.Context) error {
	parcels, err := h.riderService.ListPendingDeliveries(c.Request().Context(), riderEmail(c))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, parcels)
}

// CompletedDeliveries godoc
// @Summary List a rider's completed deliveries
// @Tags riders
// @Produce json
// @Security BearerAuth
// @Param email query string false "Rider email"
// @Success 200 {array} model.Parcel
// @Failure 401 {object} errors.ErrorResponse
// @Router /rider/delivery/completed [get]
func (h *RiderHandler) CompletedDeliveries(c echo.Context) error {
	parcels, err := h.riderService.ListCompletedDeliveries(c.Request().Context(), riderEmail(c))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, parcels)
}

// Approve godoc
// @Summary Decide a rider application
// @Tags riders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rider ID"
// @Param request body ApproveRequest true "Decision data"
// @Success 200 {object} service.ApprovalResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /riders/approve/{id} [patch]
func (h *RiderHandler) Approve(c echo.Context) error {
	riderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid rider id",
			Code:  "INVALID_UUID",
		})
	}

	var req ApproveRequest
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

	result, err := h.riderService.Approve(c.Request().Context(), riderID, model.RiderStatus(req.Status), req.Email)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, result)
}

// Cancel godoc
// @Summary Cancel a rider application
// @Tags riders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rider ID"
// @Success 200 {object} ModifiedResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /riders/cancel/{id} [patch]
func (h *RiderHandler) Cancel(c echo.Context) error {
	return h.simpleTransition(c, h.riderService.Cancel, "Rider application cancelled")
}

// Deactivate godoc
// @Summary Deactivate an active rider
// @Tags riders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rider ID"
// @Success 200 {object} ModifiedResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /riders/deactivate/{id} [patch]
func (h *RiderHandler) Deactivate(c echo.Context) error {
	return h.simpleTransition(c, h.riderService.Deactivate, "Rider deactivated")
}

func (h *RiderHandler) simpleTransition(c echo.Context, op func(ctx context.Context, riderID uuid.UUID) (int64, error), message string) error {
	riderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid rider id",
			Code:  "INVALID_UUID",
		})
	}

	modified, err := op(c.Request().Context(), riderID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, ModifiedResponse{
		Message:  message,
		Modified: modified,
	})
}

// riderEmail prefers the explicit query parameter, falling back to the
// authenticated identity.
func riderEmail(c echo.Context) string {
	if email := c.QueryParam("email"); email != "" {
		return email
	}
	if claims, ok := middleware.ClaimsFrom(c); ok {
		return claims.Email
	}
	return ""
}
