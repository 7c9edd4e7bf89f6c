package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"austino-shop/domain/models"
)

// === Requests ===

type CreateCategoryRequest struct {
	Name        string     `json:"name" validate:"required,min=1,max=200"`
	Description string     `json:"description" validate:"max=2000"`
	ParentID    *uuid.UUID `json:"parentId"`
}

type UpdateCategoryRequest struct {
	Name        *string    `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string    `json:"description" validate:"omitempty,max=2000"`
	ParentID    *uuid.UUID `json:"parentId"`
}

// ResolvePathRequest resolve/create category ตาม path เช่น "Bakery > Bread > Sourdough"
// รองรับทั้ง ">" และ "/" เป็นตัวคั่น
type ResolvePathRequest struct {
	Path string `json:"path" validate:"required,min=1,max=1000"`
}

// === Responses ===

type CategoryResponse struct {
	ID          uuid.UUID           `json:"id"`
	Name        string              `json:"name"`
	Slug        string              `json:"slug"`
	Description string              `json:"description,omitempty"`
	ParentID    *uuid.UUID          `json:"parentId"`
	FullPath    string              `json:"fullPath,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
	Children    []*CategoryResponse `json:"children,omitempty"`
}

type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// AveragePriceResponse ราคาเฉลี่ยของสินค้า active ใน subtree (รวมตัวเอง)
type AveragePriceResponse struct {
	CategoryID    uuid.UUID       `json:"categoryId"`
	CategoryName  string          `json:"categoryName"`
	CategoryPath  string          `json:"categoryPath"`
	AveragePrice  decimal.Decimal `json:"averagePrice"`
	ProductsCount int64           `json:"productsCount"`
}

// === Mappers ===

func CategoryToCategoryResponse(category *models.Category) *CategoryResponse {
	if category == nil {
		return nil
	}
	return &CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Slug:        category.Slug,
		Description: category.Description,
		ParentID:    category.ParentID,
		CreatedAt:   category.CreatedAt,
	}
}

func CategoryToCategoryResponseWithChildren(category *models.Category) *CategoryResponse {
	resp := CategoryToCategoryResponse(category)
	if resp == nil {
		return nil
	}
	if len(category.Children) > 0 {
		resp.Children = make([]*CategoryResponse, len(category.Children))
		for i := range category.Children {
			resp.Children[i] = CategoryToCategoryResponseWithChildren(&category.Children[i])
		}
	}
	return resp
}

func CategoriesToCategoryResponses(categories []*models.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = *CategoryToCategoryResponse(category)
	}
	return responses
}

func CategoriesToTreeResponses(categories []*models.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = *CategoryToCategoryResponseWithChildren(category)
	}
	return responses
}
