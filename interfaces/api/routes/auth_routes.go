package routes

import (
	"github.com/gofiber/fiber/v2"

	"austino-shop/interfaces/api/handlers"
	"austino-shop/interfaces/api/middleware"
)

func SetupAuthRoutes(api fiber.Router, h *handlers.Handlers) {
	auth := api.Group("/auth")

	// Public routes
	auth.Post("/register", h.AuthHandler.Register)
	auth.Post("/login", h.AuthHandler.Login)

	// Protected routes
	auth.Get("/me", middleware.Protected(h.JWTSecret), h.AuthHandler.GetProfile)

	// Admin routes - เปลี่ยน role บน identity record
	users := api.Group("/users", middleware.Protected(h.JWTSecret), middleware.AdminOnly())
	users.Put("/:id/role", h.AuthHandler.UpdateRole)
}
