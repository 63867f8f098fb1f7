package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"parcelhub/internal/errors"
	"parcelhub/internal/middleware"
	"parcelhub/internal/service"
)

// PaymentHandler handles payment endpoints.
type PaymentHandler struct {
	paymentService service.PaymentService
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// RecordPaymentRequest represents a completed payment to record.
type RecordPaymentRequest struct {
	ParcelID      string `json:"parcelId" validate:"required,uuid"`
	Email         string `json:"email" validate:"required,email"`
	Amount        string `json:"amount" validate:"required"`
	PaymentMethod string `json:"paymentMethod" validate:"required"`
	TransactionID string `json:"transactionId" validate:"required"`
}

// CreateIntentRequest represents a payment-intent request.
type CreateIntentRequest struct {
	Amount   string `json:"amount" validate:"required"`
	Currency string `json:"currency"`
}

// CreateIntentResponse carries the gateway's client secret.
type CreateIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// Record godoc
// @Summary Record a completed payment
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RecordPaymentRequest true "Payment data"
// @Success 201 {object} service.PaymentRecord
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /payments [post]
func (h *PaymentHandler) Record(c echo.Context) error {
	var req RecordPaymentRequest
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

	parcelID, _ := uuid.Parse(req.ParcelID)
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid amount",
			Code:  "INVALID_AMOUNT",
		})
	}

	record, err := h.paymentService.RecordPayment(c.Request().Context(), parcelID, req.Email, amount, req.PaymentMethod, req.TransactionID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, record)
}

// List godoc
// @Summary List all payments
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Payment
// @Failure 403 {object} errors.ErrorResponse
// @Router /payments [get]
func (h *PaymentHandler) List(c echo.Context) error {
	payments, err := h.paymentService.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, payments)
}

// ListByUser godoc
// @Summary List a user's payments
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param email query string false "Email"
// @Success 200 {array} model.Payment
// @Failure 401 {object} errors.ErrorResponse
// @Router /payments/user [get]
func (h *PaymentHandler) ListByUser(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		if claims, ok := middleware.ClaimsFrom(c); ok {
			email = claims.Email
		}
	}
	payments, err := h.paymentService.ListByEmail(c.Request().Context(), email)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, payments)
}

// CreateIntent godoc
// @Summary Create a payment intent at the external gateway
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateIntentRequest true "Intent data"
// @Success 200 {object} CreateIntentResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /create-payment-intent [post]
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	var req CreateIntentRequest
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

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid amount",
			Code:  "INVALID_AMOUNT",
		})
	}
	currency := req.Currency
	if currency == "" {
		currency = "usd"
	}

	intent, err := h.paymentService.CreateIntent(c.Request().Context(), amount, currency)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, CreateIntentResponse{ClientSecret: intent.ClientSecret})
}
