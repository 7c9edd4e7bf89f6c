package services

import (
	"context"

	"github.com/google/uuid"

	"austino-shop/domain/dto"
	"austino-shop/domain/models"
)

type ProductService interface {
	// Create สร้างสินค้า - รับ categoryId หรือ categoryPath อย่างใดอย่างหนึ่ง
	Create(ctx context.Context, req *dto.CreateProductRequest) (*models.Product, error)

	// CreateBulk สร้างหลายตัว all-or-nothing
	CreateBulk(ctx context.Context, req *dto.BulkCreateProductRequest) ([]*models.Product, error)

	// GetByID ดึงสินค้าตาม ID
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)

	// Update อัปเดตสินค้า
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateProductRequest) (*models.Product, error)

	// Delete ลบสินค้า
	Delete(ctx context.Context, id uuid.UUID) error

	// List ค้นสินค้า - กรอง category แบบรวม subtree, ช่วงราคา, pagination
	List(ctx context.Context, query *dto.ListProductsQuery) ([]*models.Product, int64, error)
}
