package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"austino-shop/domain/models"
)

// ProductFilter เงื่อนไขการค้นสินค้า (CategoryIDs มาจาก descendant-inclusive filter)
type ProductFilter struct {
	CategoryIDs []uuid.UUID
	MinPrice    *decimal.Decimal
	MaxPrice    *decimal.Decimal
	ActiveOnly  bool
	Offset      int
	Limit       int
}

// PriceStats สถิติราคาในขอบเขต category subtree
type PriceStats struct {
	AveragePrice decimal.Decimal
	ProductCount int64
}

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	// CreateBatch สร้างหลายตัวใน transaction เดียว (bulk upload - all or nothing)
	CreateBatch(ctx context.Context, products []*models.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	// GetActiveByID ดึงเฉพาะสินค้าที่ active - not found และ inactive ตอบเหมือนกัน
	GetActiveByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter ProductFilter) ([]*models.Product, int64, error)
	// PriceStatsByCategoryIDs เฉลี่ยราคา (active เท่านั้น) ในชุด category ที่ให้มา
	PriceStatsByCategoryIDs(ctx context.Context, categoryIDs []uuid.UUID) (*PriceStats, error)
	// ListLowStock สินค้า active ที่ stock ต่ำกว่า threshold (สำหรับ report)
	ListLowStock(ctx context.Context, threshold int) ([]*models.Product, error)
}
