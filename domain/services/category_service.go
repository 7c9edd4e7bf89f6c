package services

import (
	"context"

	"github.com/google/uuid"

	"austino-shop/domain/dto"
	"austino-shop/domain/models"
)

type CategoryService interface {
	// Create สร้าง category ใหม่
	Create(ctx context.Context, req *dto.CreateCategoryRequest) (*models.Category, error)

	// GetByID ดึง category ตาม ID
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)

	// GetBySlug ดึง category ตาม slug
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)

	// ResolveOrCreatePath เดิน path เช่น "Bakery > Bread > Sourdough" จาก root
	// สร้าง node ที่ขาดระหว่างทาง แล้วคืน leaf - idempotent
	ResolveOrCreatePath(ctx context.Context, path string) (*models.Category, error)

	// FullPath สาย ancestor จาก root ถึง node ต่อด้วย " > "
	FullPath(ctx context.Context, id uuid.UUID) (string, error)

	// DescendantIDs คืน id ของ node + ลูกหลานทั้งหมด (descendant-inclusive filter)
	DescendantIDs(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error)

	// AveragePrice ราคาเฉลี่ยสินค้า active ทั้ง subtree
	AveragePrice(ctx context.Context, id uuid.UUID) (*dto.AveragePriceResponse, error)

	// Update อัปเดต category (กัน cycle ตอนย้าย parent)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateCategoryRequest) (*models.Category, error)

	// Delete ลบ category
	Delete(ctx context.Context, id uuid.UUID) error

	// List ดึงทั้งหมดแบบ flat
	List(ctx context.Context) ([]*models.Category, error)

	// ListTree ดึงแบบ tree structure
	ListTree(ctx context.Context) ([]*models.Category, error)
}
