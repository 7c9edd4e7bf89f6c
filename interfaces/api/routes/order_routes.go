package routes

import (
	"github.com/gofiber/fiber/v2"

	"austino-shop/interfaces/api/handlers"
	"austino-shop/interfaces/api/middleware"
)

func SetupOrderRoutes(api fiber.Router, h *handlers.Handlers) {
	orders := api.Group("/orders", middleware.Protected(h.JWTSecret))

	orders.Post("/", h.OrderHandler.PlaceOrder)             // core workflow
	orders.Get("/", h.OrderHandler.ListMine)                // ประวัติ order ของตัวเอง
	orders.Get("/number/:number", h.OrderHandler.GetByNumber)
	orders.Get("/:id", h.OrderHandler.GetByID)

	// Admin routes
	admin := api.Group("/admin/orders", middleware.Protected(h.JWTSecret), middleware.AdminOnly())
	admin.Get("/", h.OrderHandler.List)                 // ทุก order กรอง status/วันที่
	admin.Put("/:id/status", h.OrderHandler.UpdateStatus)
}
