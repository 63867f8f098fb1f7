package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"parcelhub/internal/config"
	"parcelhub/internal/handler"
	"parcelhub/internal/middleware"
	"parcelhub/internal/model"
)

// Register wires routes, guards and middleware. Every guarded route applies
// authentication before the role check; a failure at either stage
// short-circuits and the handler never runs.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	roleStore middleware.RoleStore,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	parcelHandler *handler.ParcelHandler,
	riderHandler *handler.RiderHandler,
	paymentHandler *handler.PaymentHandler,
	trackingHandler *handler.TrackingHandler,
) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	authn := middleware.RequireAuthenticated(cfg.JWTSecret)
	admin := middleware.RequireRole(model.RoleAdmin, roleStore)
	rider := middleware.RequireRole(model.RoleRider, roleStore)

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Auth
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/refresh", authHandler.Refresh)
	e.POST("/auth/logout", authHandler.Logout)

	// Users
	e.POST("/users", userHandler.Register)
	e.GET("/users/search", userHandler.Search, authn)
	e.GET("/users/role", userHandler.Role, authn)
	e.PATCH("/users/make-admin/:id", userHandler.MakeAdmin, authn, admin)
	e.PATCH("/users/remove-admin/:id", userHandler.RemoveAdmin, authn, admin)

	// Parcels
	e.GET("/parcels", parcelHandler.List)
	e.POST("/parcels", parcelHandler.Create)
	e.GET("/parcels/user", parcelHandler.ListByUser, authn)
	e.GET("/parcels/rider/pending", riderHandler.PendingDeliveries, authn, rider)
	e.GET("/parcels/:id", parcelHandler.Get, authn)
	e.DELETE("/parcels/:id", parcelHandler.Delete, authn)
	e.PATCH("/parcels/assignRider", parcelHandler.AssignRider, authn, admin)
	e.PATCH("/parcels/updateStatus", parcelHandler.UpdateStatus, authn, rider)
	e.PATCH("/parcels/requestCashout", parcelHandler.RequestCashout, authn, rider)

	// Rider-scoped delivery history
	e.GET("/rider/delivery/completed", riderHandler.CompletedDeliveries, authn, rider)

	// Payments
	e.POST("/create-payment-intent", paymentHandler.CreateIntent, authn)
	e.POST("/payments", paymentHandler.Record, authn)
	e.GET("/payments", paymentHandler.List, authn, admin)
	e.GET("/payments/user", paymentHandler.ListByUser, authn)

	// Trackings
	e.POST("/trackings", trackingHandler.Append)
	e.GET("/trackings/:trackingId", trackingHandler.History)

	// Riders
	e.POST("/riders", riderHandler.Apply)
	e.GET("/riders/pending", riderHandler.ListPending, authn, admin)
	e.GET("/riders/active", riderHandler.ListActive, authn, admin)
	e.PATCH("/riders/approve/:id", riderHandler.Approve, authn, admin)
	e.PATCH("/riders/cancel/:id", riderHandler.Cancel, authn, admin)
	e.PATCH("/riders/deactivate/:id", riderHandler.Deactivate, authn, admin)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
