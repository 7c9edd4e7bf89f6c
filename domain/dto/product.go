package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"austino-shop/domain/models"
)

// === Requests ===

// CreateProductRequest ระบุ category ด้วย id หรือ path อย่างใดอย่างหนึ่ง
// (path จะ resolve/create ให้ เช่น "Bakery > Bread")
type CreateProductRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Description   string          `json:"description" validate:"max=5000"`
	Price         decimal.Decimal `json:"price" validate:"required"`
	StockQuantity *int            `json:"stockQuantity" validate:"omitempty,min=0"`
	IsActive      *bool           `json:"isActive"`
	CategoryID    *uuid.UUID      `json:"categoryId"`
	CategoryPath  string          `json:"categoryPath" validate:"omitempty,max=1000"`
}

type BulkCreateProductRequest struct {
	Products []CreateProductRequest `json:"products" validate:"required,min=1,dive"`
}

type UpdateProductRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description   *string          `json:"description" validate:"omitempty,max=5000"`
	Price         *decimal.Decimal `json:"price"`
	StockQuantity *int             `json:"stockQuantity" validate:"omitempty,min=0"`
	IsActive      *bool            `json:"isActive"`
	CategoryID    *uuid.UUID       `json:"categoryId"`
}

// ListProductsQuery query string ของ GET /products
// category จะกรองแบบ descendant-inclusive (รวม subtree ทั้งหมด)
type ListProductsQuery struct {
	CategoryID *uuid.UUID
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Page       int
	Limit      int
}

// === Responses ===

type ProductResponse struct {
	ID               uuid.UUID       `json:"id"`
	Name             string          `json:"name"`
	Description      string          `json:"description,omitempty"`
	Price            decimal.Decimal `json:"price"`
	CategoryID       uuid.UUID       `json:"categoryId"`
	CategoryFullPath string          `json:"categoryFullPath,omitempty"`
	StockQuantity    int             `json:"stockQuantity"`
	IsActive         bool            `json:"isActive"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// === Mappers ===

func ProductToProductResponse(product *models.Product) *ProductResponse {
	if product == nil {
		return nil
	}
	return &ProductResponse{
		ID:            product.ID,
		Name:          product.Name,
		Description:   product.Description,
		Price:         product.Price,
		CategoryID:    product.CategoryID,
		StockQuantity: product.StockQuantity,
		IsActive:      product.IsActive,
		CreatedAt:     product.CreatedAt,
		UpdatedAt:     product.UpdatedAt,
	}
}

func ProductsToProductResponses(products []*models.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i, product := range products {
		responses[i] = *ProductToProductResponse(product)
	}
	return responses
}
