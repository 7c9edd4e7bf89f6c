package serviceimpl

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"austino-shop/domain/dto"
	"austino-shop/domain/models"
	"austino-shop/domain/repositories"
	"austino-shop/domain/services"
	"austino-shop/pkg/logger"
)

var ErrProductNotFound = errors.New("product not found")

type ProductServiceImpl struct {
	productRepo     repositories.ProductRepository
	categoryService services.CategoryService
}

func NewProductService(
	productRepo repositories.ProductRepository,
	categoryService services.CategoryService,
) services.ProductService {
	return &ProductServiceImpl{
		productRepo:     productRepo,
		categoryService: categoryService,
	}
}

func (s *ProductServiceImpl) Create(ctx context.Context, req *dto.CreateProductRequest) (*models.Product, error) {
	product, err := s.buildProduct(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		logger.ErrorContext(ctx, "Failed to create product", "name", product.Name, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Product created", "product_id", product.ID, "name", product.Name)
	return product, nil
}

// CreateBulk validate และ resolve category ของทุกตัวก่อน แล้วค่อย insert
// ทั้ง batch ใน transaction เดียว - ตัวเดียวพังทั้งชุดไม่เข้า
func (s *ProductServiceImpl) CreateBulk(ctx context.Context, req *dto.BulkCreateProductRequest) ([]*models.Product, error) {
	if len(req.Products) == 0 {
		return nil, errors.New("product list is empty")
	}

	products := make([]*models.Product, 0, len(req.Products))
	for i := range req.Products {
		product, err := s.buildProduct(ctx, &req.Products[i])
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	if err := s.productRepo.CreateBatch(ctx, products); err != nil {
		logger.ErrorContext(ctx, "Failed to create product batch", "count", len(products), "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Product batch created", "count", len(products))
	return products, nil
}

func (s *ProductServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *ProductServiceImpl) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateProductRequest) (*models.Product, error) {
	product, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, errors.New("product name is required")
		}
		product.Name = name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, errors.New("price must not be negative")
		}
		product.Price = req.Price.Round(2)
	}
	if req.StockQuantity != nil {
		if *req.StockQuantity < 0 {
			return nil, errors.New("stock quantity must not be negative")
		}
		product.StockQuantity = *req.StockQuantity
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if req.CategoryID != nil {
		if _, err := s.categoryService.GetByID(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
		product.CategoryID = *req.CategoryID
	}
	product.UpdatedAt = time.Now()

	if err := s.productRepo.Update(ctx, product); err != nil {
		logger.ErrorContext(ctx, "Failed to update product", "product_id", id, "error", err)
		return nil, err
	}

	return product, nil
}

func (s *ProductServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, id)
}

// List ค้นสินค้า - กรอง category แบบรวม subtree ทั้งหมด (descendant-inclusive)
func (s *ProductServiceImpl) List(ctx context.Context, query *dto.ListProductsQuery) ([]*models.Product, int64, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	filter := repositories.ProductFilter{
		MinPrice:   query.MinPrice,
		MaxPrice:   query.MaxPrice,
		ActiveOnly: true,
		Offset:     (page - 1) * limit,
		Limit:      limit,
	}

	if query.CategoryID != nil {
		ids, err := s.categoryService.DescendantIDs(ctx, *query.CategoryID)
		if err != nil {
			return nil, 0, err
		}
		filter.CategoryIDs = ids
	}

	return s.productRepo.List(ctx, filter)
}

// buildProduct แปลง request เป็น model - resolve category จาก id หรือ path
func (s *ProductServiceImpl) buildProduct(ctx context.Context, req *dto.CreateProductRequest) (*models.Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.New("product name is required")
	}
	if req.Price.IsNegative() {
		return nil, errors.New("price must not be negative")
	}

	var categoryID uuid.UUID
	switch {
	case req.CategoryID != nil:
		category, err := s.categoryService.GetByID(ctx, *req.CategoryID)
		if err != nil {
			return nil, err
		}
		categoryID = category.ID
	case req.CategoryPath != "":
		category, err := s.categoryService.ResolveOrCreatePath(ctx, req.CategoryPath)
		if err != nil {
			return nil, err
		}
		categoryID = category.ID
	default:
		return nil, errors.New("categoryId or categoryPath is required")
	}

	stock := 100
	if req.StockQuantity != nil {
		stock = *req.StockQuantity
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	return &models.Product{
		ID:            uuid.New(),
		Name:          name,
		Description:   req.Description,
		Price:         req.Price.Round(2),
		CategoryID:    categoryID,
		StockQuantity: stock,
		IsActive:      active,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}, nil
}
