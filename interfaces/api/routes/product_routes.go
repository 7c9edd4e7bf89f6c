package routes

import (
	"github.com/gofiber/fiber/v2"

	"austino-shop/interfaces/api/handlers"
	"austino-shop/interfaces/api/middleware"
)

func SetupProductRoutes(api fiber.Router, h *handlers.Handlers) {
	products := api.Group("/products")

	// Public routes
	products.Get("/", h.ProductHandler.List)      // ค้นสินค้า (category filter รวม subtree)
	products.Get("/:id", h.ProductHandler.GetByID)

	// Admin routes
	admin := products.Group("", middleware.Protected(h.JWTSecret), middleware.AdminOnly())
	admin.Post("/", h.ProductHandler.Create)
	admin.Post("/bulk", h.ProductHandler.CreateBulk) // สร้างหลายตัว all-or-nothing
	admin.Put("/:id", h.ProductHandler.Update)
	admin.Delete("/:id", h.ProductHandler.Delete)
}
