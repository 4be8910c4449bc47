package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // the Echo web framework handles routing

	"github.com/rafidhani/tukang-backend/internal/handler" // handlers implement the endpoint logic
)

// RegisterRoutes registers routes that live outside the /api prefix: the
// health check used by load balancers and monitoring systems.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// APIHandlers groups the handlers mounted under /api. Keeping them in one
// struct keeps the registration signature readable as endpoints grow.
type APIHandlers struct {
	Auth     *handler.AuthHandler
	Provider *handler.ProviderHandler
	Order    *handler.OrderHandler
	Chat     *handler.ChatHandler
	Admin    *handler.AdminHandler
}

// RegisterAPI registers every /api endpoint. The limiter middleware wraps
// the whole group; the cache middleware is attached only to the
// read-mostly endpoints whose payloads change rarely (provider directory,
// QRIS settings). There is no auth middleware: the API contract is
// token-less and the caller holds the user object returned by login.
func RegisterAPI(e *echo.Echo, h APIHandlers, limiter, cache echo.MiddlewareFunc) {
	g := e.Group("/api", limiter)

	// ---- Auth ----
	g.POST("/register", h.Auth.Register)
	g.POST("/login", h.Auth.Login)

	// ---- Provider directory ----
	g.GET("/tukang", h.Provider.ListTukang, cache)

	// ---- Orders ----
	g.POST("/pesanan", h.Order.Create)
	g.GET("/pesanan", h.Order.List)
	g.GET("/pesanan/:id", h.Order.Get)
	g.PUT("/pesanan/:id", h.Order.UpdateStatus)
	// Admin alias; same status column, kept for client compatibility.
	g.PUT("/pesanan/:id/status", h.Order.UpdateStatus)

	// ---- Chat ----
	g.GET("/chats", h.Chat.List)
	g.POST("/chats", h.Chat.Send)

	// ---- Users / admin ----
	g.GET("/users/all", h.Admin.ListUsers)
	g.PUT("/users/:id", h.Admin.UpdateProfile)
	g.DELETE("/users/:id", h.Admin.DeleteUser)

	// ---- QRIS ----
	g.GET("/qris-settings", handler.QRISSettings, cache)
}
