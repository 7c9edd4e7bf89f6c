package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"austino-shop/domain/models"
	"austino-shop/domain/repositories"
)

type ProductRepositoryImpl struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) repositories.ProductRepository {
	return &ProductRepositoryImpl{db: db}
}

func (r *ProductRepositoryImpl) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *ProductRepositoryImpl) CreateBatch(ctx context.Context, products []*models.Product) error {
	// all or nothing - แถวเดียวพังทั้ง batch rollback
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, product := range products {
			if err := tx.Create(product).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ProductRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).Preload("Category").Where("id = ?", id).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepositoryImpl) GetActiveByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepositoryImpl) Update(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *ProductRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Product{}).Error
}

func (r *ProductRepositoryImpl) List(ctx context.Context, filter repositories.ProductFilter) ([]*models.Product, int64, error) {
	var products []*models.Product
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Product{})

	if len(filter.CategoryIDs) > 0 {
		query = query.Where("category_id IN ?", filter.CategoryIDs)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", filter.MaxPrice)
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Category").
		Order("created_at DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *ProductRepositoryImpl) PriceStatsByCategoryIDs(ctx context.Context, categoryIDs []uuid.UUID) (*repositories.PriceStats, error) {
	if len(categoryIDs) == 0 {
		return &repositories.PriceStats{AveragePrice: decimal.Zero}, nil
	}

	type row struct {
		Average decimal.NullDecimal
		Count   int64
	}
	var result row

	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Select("AVG(price) as average, COUNT(*) as count").
		Where("category_id IN ? AND is_active = ?", categoryIDs, true).
		Scan(&result).Error
	if err != nil {
		return nil, err
	}

	stats := &repositories.PriceStats{
		AveragePrice: decimal.Zero,
		ProductCount: result.Count,
	}
	if result.Average.Valid {
		// AVG คืนทศนิยมยาว ปัดเป็น 2 ตำแหน่งให้ตรงกับ price scale
		stats.AveragePrice = result.Average.Decimal.Round(2)
	}
	return stats, nil
}

func (r *ProductRepositoryImpl) ListLowStock(ctx context.Context, threshold int) ([]*models.Product, error) {
	var products []*models.Product
	err := r.db.WithContext(ctx).
		Where("stock_quantity < ? AND is_active = ?", threshold, true).
		Order("stock_quantity ASC").
		Find(&products).Error
	return products, err
}
