package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"parcelhub/internal/errors"
	"parcelhub/internal/model"
	"parcelhub/internal/service"
)

// TrackingHandler handles the parcel movement log endpoints.
type TrackingHandler struct {
	trackingService service.TrackingService
}

// NewTrackingHandler creates a new tracking handler.
func NewTrackingHandler(trackingService service.TrackingService) *TrackingHandler {
	return &TrackingHandler{trackingService: trackingService}
}

// AppendTrackingRequest represents a movement log entry.
type AppendTrackingRequest struct {
	TrackingID string     `json:"tracking_id" validate:"required"`
	ParcelID   string     `json:"parcel_id"`
	Status     string     `json:"status" validate:"required"`
	Message    string     `json:"message"`
	Timestamp  *time.Time `json:"timestamp"`
	UpdatedBy  string     `json:"updated_by"`
}

// Append godoc
// @Summary Append a tracking event
// @Tags trackings
// @Accept json
// @Produce json
// @Param request body AppendTrackingRequest true "Event data"
// @Success 201 {object} model.TrackingEvent
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /trackings [post]
func (h *TrackingHandler) Append(c echo.Context) error {
	var req AppendTrackingRequest
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

	event := &model.TrackingEvent{
		TrackingID: req.TrackingID,
		ParcelID:   req.ParcelID,
		Status:     req.Status,
		Message:    req.Message,
		UpdatedBy:  req.UpdatedBy,
	}
	if req.Timestamp != nil {
		event.Timestamp = *req.Timestamp
	}

	created, err := h.trackingService.Append(c.Request().Context(), event)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, created)
}

// History godoc
// @Summary Get the movement log for a tracking id
// @Tags trackings
// @Produce json
// @Param trackingId path string true "Tracking ID"
// @Success 200 {array} model.TrackingEvent
// @Failure 500 {object} errors.ErrorResponse
// @Router /trackings/{trackingId} [get]
func (h *TrackingHandler) History(c echo.Context) error {
	events, err := h.trackingService.History(c.Request().Context(), c.Param("trackingId"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, events)
}
