package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/tareffa/internal/server/http/handlers"
	"github.com/polkiloo/tareffa/internal/server/http/middleware"
)

const notificationsPath = "/api/notifications"

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StudioFacade, logger *slog.Logger) *gin.Engine {
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{notificationsPath})))

	sessionHandler := handlers.NewSessionHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	adminHandler := handlers.NewAdminHandler(facade)
	uploadHandler := handlers.NewUploadHandler(facade)
	notificationHandler := handlers.NewNotificationHandler(facade)
	planHandler := handlers.NewPlanHandler(facade)

	api := engine.Group("/api")
	api.GET("/plans", planHandler.List)

	session := api.Group("/session")
	session.POST("/login", sessionHandler.Login)
	session.POST("/provider", sessionHandler.Provider)
	session.POST("/register", sessionHandler.Register)
	session.POST("/logout", sessionHandler.Logout)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))
	authed.GET("/session", sessionHandler.Current)
	authed.GET("/orders", orderHandler.List)
	authed.POST("/orders", orderHandler.Create)
	authed.GET("/orders/:id", orderHandler.Get)
	authed.GET("/dashboard", orderHandler.Dashboard)
	authed.POST("/uploads", uploadHandler.Prepare)
	authed.GET("/files/*key", uploadHandler.Download)
	authed.GET("/notifications", notificationHandler.Stream)

	admin := authed.Group("/admin")
	admin.Use(middleware.AdminOnly())
	admin.PATCH("/orders/:id/status", adminHandler.UpdateStatus)
	admin.POST("/orders/:id/comments", adminHandler.AddComment)
	admin.POST("/orders/:id/deliveries", adminHandler.AddDelivery)

	return engine
}
