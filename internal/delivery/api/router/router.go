// Package router registers the API routes.
package router

import (
	"khitma/internal/delivery/api/middleware"
	"khitma/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler       *handler.HealthHandler
	DeviceHandler       *handler.DeviceHandler
	ActivityHandler     *handler.ActivityHandler
	PreferenceHandler   *handler.PreferenceHandler
	MotivationHandler   *handler.MotivationHandler
	NotificationHandler *handler.NotificationHandler
	PushHandler         *handler.PushHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler       *handler.HealthHandler
	deviceHandler       *handler.DeviceHandler
	activityHandler     *handler.ActivityHandler
	preferenceHandler   *handler.PreferenceHandler
	motivationHandler   *handler.MotivationHandler
	notificationHandler *handler.NotificationHandler
	pushHandler         *handler.PushHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:       params.HealthHandler,
		deviceHandler:       params.DeviceHandler,
		activityHandler:     params.ActivityHandler,
		preferenceHandler:   params.PreferenceHandler,
		motivationHandler:   params.MotivationHandler,
		notificationHandler: params.NotificationHandler,
		pushHandler:         params.PushHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.Health)

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	devicesGroup := apiV1.Group("/devices")
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.GetUserDevices)
		devicesGroup.DELETE("/:token", r.deviceHandler.UnregisterDevice)
	}

	activityGroup := apiV1.Group("/activity")
	{
		activityGroup.POST("/ping", r.activityHandler.Ping)
		activityGroup.POST("/reading", r.activityHandler.MarkReading)
	}
	apiV1.GET("/streak", r.activityHandler.Streak)

	preferencesGroup := apiV1.Group("/preferences")
	{
		preferencesGroup.GET("", r.preferenceHandler.GetPreference)
		preferencesGroup.PUT("", r.preferenceHandler.UpdatePreference)
	}

	apiV1.GET("/motivation/today", r.motivationHandler.Today)

	notificationsGroup := apiV1.Group("/notifications")
	{
		notificationsGroup.GET("", r.notificationHandler.ListNotifications)
		notificationsGroup.PATCH("/:id/read", r.notificationHandler.MarkRead)
		notificationsGroup.DELETE("/:id", r.notificationHandler.DeleteNotification)
	}

	pushGroup := apiV1.Group("/push")
	{
		pushGroup.POST("/received", r.pushHandler.Received)
		pushGroup.POST("/opened", r.pushHandler.Opened)
	}
}
