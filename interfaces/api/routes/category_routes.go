package routes

import (
	"github.com/gofiber/fiber/v2"

	"austino-shop/interfaces/api/handlers"
	"austino-shop/interfaces/api/middleware"
)

func SetupCategoryRoutes(api fiber.Router, h *handlers.Handlers) {
	categories := api.Group("/categories")

	// Public routes
	categories.Get("/", h.CategoryHandler.List)                       // ดึง categories ทั้งหมด (?tree=true = nested)
	categories.Get("/tree", h.CategoryHandler.ListTree)               // ทั้ง forest แบบ nested
	categories.Get("/slug/:slug", h.CategoryHandler.GetBySlug)        // ดึง category ตาม slug
	categories.Get("/:id", h.CategoryHandler.GetByID)                 // ดึง category ตาม ID
	categories.Get("/:id/average-price", h.CategoryHandler.AveragePrice) // ราคาเฉลี่ยทั้ง subtree

	// Admin routes
	admin := categories.Group("", middleware.Protected(h.JWTSecret), middleware.AdminOnly())
	admin.Post("/", h.CategoryHandler.Create)           // สร้าง category ใหม่
	admin.Post("/resolve", h.CategoryHandler.ResolvePath) // resolve/create ตาม path
	admin.Put("/:id", h.CategoryHandler.Update)         // อัปเดต category
	admin.Delete("/:id", h.CategoryHandler.Delete)      // ลบ category
}
