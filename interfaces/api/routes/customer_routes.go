package routes

import (
	"github.com/gofiber/fiber/v2"

	"austino-shop/interfaces/api/handlers"
	"austino-shop/interfaces/api/middleware"
)

func SetupCustomerRoutes(api fiber.Router, h *handlers.Handlers) {
	customers := api.Group("/customers", middleware.Protected(h.JWTSecret))

	customers.Get("/me", h.CustomerHandler.GetMe)    // โปรไฟล์ลูกค้าของตัวเอง
	customers.Put("/me", h.CustomerHandler.UpdateMe) // อัปเดตเบอร์โทร/ที่อยู่
}
