package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"parcelhub/internal/errors"
	"parcelhub/internal/middleware"
	"parcelhub/internal/model"
	"parcelhub/internal/repository"
	"parcelhub/internal/service"
)

// ParcelHandler handles parcel endpoints.
type ParcelHandler struct {
	parcelService service.ParcelService
}

// NewParcelHandler creates a new parcel handler.
func NewParcelHandler(parcelService service.ParcelService) *ParcelHandler {
	return &ParcelHandler{parcelService: parcelService}
}

// CreateParcelRequest represents a parcel submission.
type CreateParcelRequest struct {
	Type             string `json:"type" validate:"required"`
	Weight           string `json:"weight"`
	Cost             string `json:"cost"`
	SenderName       string `json:"sender_name" validate:"required"`
	SenderPhone      string `json:"sender_phone"`
	SenderRegion     string `json:"sender_region"`
	SenderDistrict   string `json:"sender_district"`
	SenderAddress    string `json:"sender_address"`
	ReceiverName     string `json:"receiver_name" validate:"required"`
	ReceiverPhone    string `json:"receiver_phone"`
	ReceiverRegion   string `json:"receiver_region"`
	ReceiverDistrict string `json:"receiver_district"`
	ReceiverAddress  string `json:"receiver_address"`
	CreatedBy        string `json:"created_by" validate:"required,email"`
}

// AssignRiderRequest represents a rider assignment.
type AssignRiderRequest struct {
	ParcelID   string `json:"parcelId" validate:"required,uuid"`
	RiderID    string `json:"riderId" validate:"required,uuid"`
	RiderEmail string `json:"riderEmail" validate:"required,email"`
	RiderName  string `json:"riderName" validate:"required"`
}

// UpdateStatusRequest represents a delivery status transition.
type UpdateStatusRequest struct {
	ParcelID string `json:"parcelId" validate:"required,uuid"`
	Status   string `json:"status" validate:"required"`
}

// RequestCashoutRequest represents a rider cashout request.
type RequestCashoutRequest struct {
	ParcelID string `json:"parcelId" validate:"required,uuid"`
}

// ModifiedResponse reports how many records an operation touched.
type ModifiedResponse struct {
	Message  string `json:"message"`
	Modified int64  `json:"modified"`
}

// List godoc
// @Summary List parcels
// @Tags parcels
// @Produce json
// @Param email query string false "Filter by creator email"
// @Param delivery_status query string false "Filter by delivery status"
// @Param isPaid query bool false "Filter by payment flag"
// @Success 200 {array} model.Parcel
// @Failure 500 {object} errors.ErrorResponse
// @Router /parcels [get]
func (h *ParcelHandler) List(c echo.Context) error {
	filter, err := parseParcelFilter(c)
	if err != nil {
		return err
	}
	parcels, err := h.parcelService.List(c.Request().Context(), filter)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, parcels)
}

// ListByUser godoc
// @Summary List parcels for a user
// @Tags parcels
// @Produce json
// @Security BearerAuth
// @Param email query string false "Creator email"
// @Param delivery_status query string false "Filter by delivery status"
// @Param isPaid query bool false "Filter by payment flag"
// @Success 200 {array} model.Parcel
// @Failure 401 {object} errors.ErrorResponse
// @Router /parcels/user [get]
func (h *ParcelHandler) ListByUser(c echo.Context) error {
	filter, err := parseParcelFilter(c)
	if err != nil {
		return err
	}
	if filter.Email == "" {
		// default to the caller's own parcels
		if claims, ok := middleware.ClaimsFrom(c); ok {
			filter.Email = claims.Email
		}
	}
	parcels, err := h.parcelService.List(c.Request().Context(), filter)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, parcels)
}

// Get godoc
// @Summary Get a parcel by id
// @Tags parcels
// @Produce json
// @Security BearerAuth
// @Param id path string true "Parcel ID"
// @Success 200 {object} model.Parcel
// @Failure 404 {object} errors.ErrorResponse
// @Router /parcels/{id} [get]
func (h *ParcelHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid parcel id",
			Code:  "INVALID_UUID",
		})
	}
	parcel, err := h.parcelService.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, parcel)
}

// Create godoc
// @Summary Create a parcel
// @Tags parcels
// @Accept json
// @Produce json
// @Param request body CreateParcelRequest true "Parcel data"
// @Success 201 {object} model.Parcel
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /parcels [post]
func (h *ParcelHandler) Create(c echo.Context) error {
	var req CreateParcelRequest
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

	weight, err := parseDecimal(req.Weight)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid weight",
			Code:  "INVALID_AMOUNT",
		})
	}
	cost, err := parseDecimal(req.Cost)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid cost",
			Code:  "INVALID_AMOUNT",
		})
	}

	parcel := &model.Parcel{
		Type:             req.Type,
		Weight:           weight,
		Cost:             cost,
		SenderName:       req.SenderName,
		SenderPhone:      req.SenderPhone,
		SenderRegion:     req.SenderRegion,
		SenderDistrict:   req.SenderDistrict,
		SenderAddress:    req.SenderAddress,
		ReceiverName:     req.ReceiverName,
		ReceiverPhone:    req.ReceiverPhone,
		ReceiverRegion:   req.ReceiverRegion,
		ReceiverDistrict: req.ReceiverDistrict,
		ReceiverAddress:  req.ReceiverAddress,
		CreatedBy:        req.CreatedBy,
	}

	created, err := h.parcelService.Create(c.Request().Context(), parcel)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, created)
}

// AssignRider godoc
// @Summary Assign a rider to a parcel
// @Tags parcels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AssignRiderRequest true "Assignment data"
// @Success 200 {object} ModifiedResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /parcels/assignRider [patch]
func (h *ParcelHandler) AssignRider(c echo.Context) error {
	var req AssignRiderRequest
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
	riderID, _ := uuid.Parse(req.RiderID)

	modified, err := h.parcelService.AssignRider(c.Request().Context(), parcelID, riderID, req.RiderEmail, req.RiderName)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, ModifiedResponse{
		Message:  "Rider assignment processed",
		Modified: modified,
	})
}

// UpdateStatus godoc
// @Summary Update a parcel's delivery status
// @Tags parcels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateStatusRequest true "Status data"
// @Success 200 {object} ModifiedResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /parcels/updateStatus [patch]
func (h *ParcelHandler) UpdateStatus(c echo.Context) error {
	var req UpdateStatusRequest
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
	updatedBy := ""
	if claims, ok := middleware.ClaimsFrom(c); ok {
		updatedBy = claims.Email
	}

	modified, err := h.parcelService.UpdateStatus(c.Request().Context(), parcelID, model.DeliveryStatus(req.Status), updatedBy)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, ModifiedResponse{
		Message:  "Delivery status updated",
		Modified: modified,
	})
}

// RequestCashout godoc
// @Summary Request cashout for a parcel
// @Tags parcels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RequestCashoutRequest true "Cashout data"
// @Success 200 {object} ModifiedResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /parcels/requestCashout [patch]
func (h *ParcelHandler) RequestCashout(c echo.Context) error {
	var req RequestCashoutRequest
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
	modified, err := h.parcelService.RequestCashout(c.Request().Context(), parcelID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, ModifiedResponse{
		Message:  "Cashout requested",
		Modified: modified,
	})
}

// Delete godoc
// @Summary Delete a parcel
// @Tags parcels
// @Produce json
// @Security BearerAuth
// @Param id path string true "Parcel ID"
// @Success 200 {object} ModifiedResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /parcels/{id} [delete]
func (h *ParcelHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid parcel id",
			Code:  "INVALID_UUID",
		})
	}
	modified, err := h.parcelService.Delete(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, ModifiedResponse{
		Message:  "Parcel deleted",
		Modified: modified,
	})
}

func parseParcelFilter(c echo.Context) (repository.ParcelFilter, error) {
	filter := repository.ParcelFilter{
		Email:          c.QueryParam("email"),
		DeliveryStatus: model.DeliveryStatus(c.QueryParam("delivery_status")),
	}
	if raw := c.QueryParam("isPaid"); raw != "" {
		isPaid, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: "invalid isPaid value",
				Code:  "INVALID_REQUEST",
			})
		}
		filter.IsPaid = &isPaid
	}
	return filter, nil
}

func parseDecimal(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(raw)
}
