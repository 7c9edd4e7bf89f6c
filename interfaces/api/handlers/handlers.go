package handlers

import (
	"austino-shop/domain/services"
)

// Services contains all the services needed for handlers
type Services struct {
	UserService     services.UserService
	CustomerService services.CustomerService
	CategoryService services.CategoryService
	ProductService  services.ProductService
	OrderService    services.OrderService
	JWTSecret       string
}

// Handlers contains all HTTP handlers
type Handlers struct {
	AuthHandler     *AuthHandler
	CustomerHandler *CustomerHandler
	CategoryHandler *CategoryHandler
	ProductHandler  *ProductHandler
	OrderHandler    *OrderHandler
	JWTSecret       string
}

// NewHandlers creates a new instance of Handlers with all dependencies
func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		AuthHandler:     NewAuthHandler(services.UserService),
		CustomerHandler: NewCustomerHandler(services.CustomerService),
		CategoryHandler: NewCategoryHandler(services.CategoryService),
		ProductHandler:  NewProductHandler(services.ProductService, services.CategoryService),
		OrderHandler:    NewOrderHandler(services.OrderService),
		JWTSecret:       services.JWTSecret,
	}
}
