package serviceimpl

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"austino-shop/domain/dto"
	"austino-shop/domain/models"
	"austino-shop/domain/repositories"
	"austino-shop/domain/services"
	redisinfra "austino-shop/infrastructure/redis"
	"austino-shop/pkg/logger"
	"austino-shop/pkg/utils"
)

const (
	subtreeCachePrefix = "category:subtree:"
	subtreeCacheTTL    = 10 * time.Minute
)

type CategoryServiceImpl struct {
	categoryRepo repositories.CategoryRepository
	productRepo  repositories.ProductRepository
	cache        *redisinfra.Client // nil = ไม่ cache
}

func NewCategoryService(
	categoryRepo repositories.CategoryRepository,
	productRepo repositories.ProductRepository,
	cache *redisinfra.Client,
) services.CategoryService {
	return &CategoryServiceImpl{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		cache:        cache,
	}
}

func (s *CategoryServiceImpl) Create(ctx context.Context, req *dto.CreateCategoryRequest) (*models.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.New("category name is required")
	}

	if req.ParentID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *req.ParentID); err != nil {
			return nil, models.ErrCategoryNotFound
		}
	}

	category := &models.Category{
		ID:          uuid.New(),
		Name:        name,
		Slug:        s.uniqueSlug(ctx, name),
		Description: req.Description,
		ParentID:    req.ParentID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		logger.ErrorContext(ctx, "Failed to create category", "name", name, "error", err)
		return nil, err
	}

	s.invalidateSubtreeCache(ctx)
	logger.InfoContext(ctx, "Category created", "category_id", category.ID, "name", name)

	return category, nil
}

func (s *CategoryServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *CategoryServiceImpl) GetBySlug(ctx context.Context, categorySlug string) (*models.Category, error) {
	category, err := s.categoryRepo.GetBySlug(ctx, categorySlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

// ResolveOrCreatePath เดิน path จาก root ทีละ segment สร้าง node ที่ขาด แล้วคืน leaf
// รองรับ ">" และ "/" เป็นตัวคั่น - เรียกซ้ำด้วย path เดิมได้ node เดิม (idempotent)
func (s *CategoryServiceImpl) ResolveOrCreatePath(ctx context.Context, path string) (*models.Category, error) {
	segments := SplitCategoryPath(path)
	if len(segments) == 0 {
		return nil, errors.New("category path is empty")
	}

	var current *models.Category
	var parentID *uuid.UUID

	for _, name := range segments {
		existing, err := s.categoryRepo.GetByNameUnderParent(ctx, name, parentID)
		if err == nil {
			current = existing
			parentID = &existing.ID
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		category := &models.Category{
			ID:        uuid.New(),
			Name:      name,
			Slug:      s.uniqueSlug(ctx, name),
			ParentID:  parentID,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := s.categoryRepo.Create(ctx, category); err != nil {
			// race ตอน resolve path เดียวกันพร้อมกัน - อ่านตัวที่ชนะมาใช้
			if existing, getErr := s.categoryRepo.GetByNameUnderParent(ctx, name, parentID); getErr == nil {
				current = existing
				parentID = &existing.ID
				continue
			}
			return nil, err
		}

		logger.InfoContext(ctx, "Category created from path", "category_id", category.ID, "name", name)
		current = category
		parentID = &category.ID
	}

	s.invalidateSubtreeCache(ctx)
	return current, nil
}

// FullPath สาย ancestor จาก root ถึง node ต่อด้วย " > " เช่น "Bakery > Bread > Sourdough"
func (s *CategoryServiceImpl) FullPath(ctx context.Context, id uuid.UUID) (string, error) {
	var names []string
	currentID := &id
	// เดินขึ้นทาง parent จนถึง root - จำกัดความลึกกันข้อมูลเสีย
	for depth := 0; currentID != nil && depth < 64; depth++ {
		category, err := s.categoryRepo.GetByID(ctx, *currentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return "", models.ErrCategoryNotFound
			}
			return "", err
		}
		names = append([]string{category.Name}, names...)
		currentID = category.ParentID
	}
	return strings.Join(names, " > "), nil
}

// DescendantIDs id ของ node + ลูกหลานทุกชั้น (BFS) - cache ผลใน Redis
func (s *CategoryServiceImpl) DescendantIDs(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error) {
	cacheKey := subtreeCachePrefix + id.String()

	if s.cache != nil {
		var cached []uuid.UUID
		if err := s.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	ids := []uuid.UUID{id}
	queue := []uuid.UUID{id}
	for len(queue) > 0 {
		currentID := queue[0]
		queue = queue[1:]

		children, err := s.categoryRepo.ListByParent(ctx, currentID)
		if err != nil {
			return nil, err
		}
		for _, child := range children {
			ids = append(ids, child.ID)
			queue = append(queue, child.ID)
		}
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, cacheKey, ids, subtreeCacheTTL); err != nil {
			logger.WarnContext(ctx, "Failed to cache subtree", "category_id", id, "error", err)
		}
	}

	return ids, nil
}

func (s *CategoryServiceImpl) AveragePrice(ctx context.Context, id uuid.UUID) (*dto.AveragePriceResponse, error) {
	category, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ids, err := s.DescendantIDs(ctx, id)
	if err != nil {
		return nil, err
	}

	stats, err := s.productRepo.PriceStatsByCategoryIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	fullPath, err := s.FullPath(ctx, id)
	if err != nil {
		return nil, err
	}

	return &dto.AveragePriceResponse{
		CategoryID:    category.ID,
		CategoryName:  category.Name,
		CategoryPath:  fullPath,
		AveragePrice:  stats.AveragePrice,
		ProductsCount: stats.ProductCount,
	}, nil
}

func (s *CategoryServiceImpl) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, errors.New("category name is required")
		}
		if name != category.Name {
			category.Name = name
			category.Slug = s.uniqueSlug(ctx, name)
		}
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.ParentID != nil {
		// ย้าย parent ต้องไม่เกิด cycle - parent ใหม่ห้ามอยู่ใน subtree ของตัวเอง
		if *req.ParentID == id {
			return nil, models.ErrCategoryCycle
		}
		if _, err := s.GetByID(ctx, *req.ParentID); err != nil {
			return nil, err
		}
		descendants, err := s.DescendantIDs(ctx, id)
		if err != nil {
			return nil, err
		}
		for _, descID := range descendants {
			if descID == *req.ParentID {
				return nil, models.ErrCategoryCycle
			}
		}
		category.ParentID = req.ParentID
	}
	category.UpdatedAt = time.Now()

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		logger.ErrorContext(ctx, "Failed to update category", "category_id", id, "error", err)
		return nil, err
	}

	s.invalidateSubtreeCache(ctx)
	return category, nil
}

func (s *CategoryServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	children, err := s.categoryRepo.ListByParent(ctx, id)
	if err != nil {
		return err
	}
	if len(children) > 0 {
		return errors.New("category has subcategories")
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateSubtreeCache(ctx)
	logger.InfoContext(ctx, "Category deleted", "category_id", id)
	return nil
}

func (s *CategoryServiceImpl) List(ctx context.Context) ([]*models.Category, error) {
	return s.categoryRepo.List(ctx)
}

func (s *CategoryServiceImpl) ListTree(ctx context.Context) ([]*models.Category, error) {
	return s.categoryRepo.ListTree(ctx)
}

// uniqueSlug สร้าง slug จากชื่อ ถ้าชนเติม suffix สั้น ๆ
func (s *CategoryServiceImpl) uniqueSlug(ctx context.Context, name string) string {
	base := slug.Make(name)
	if _, err := s.categoryRepo.GetBySlug(ctx, base); err != nil {
		return base
	}
	return base + "-" + utils.GenerateRandomString(4)
}

// invalidateSubtreeCache ล้าง cache ทั้งหมด - การย้าย node เดียว
// เปลี่ยนผลของหลาย subtree พร้อมกัน ล้างหมดง่ายและถูกต้องกว่าไล่ลบทีละ key
func (s *CategoryServiceImpl) invalidateSubtreeCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if _, err := s.cache.ScanAndDelete(ctx, subtreeCachePrefix+"*"); err != nil {
		logger.WarnContext(ctx, "Failed to invalidate subtree cache", "error", err)
	}
}

// SplitCategoryPath แยก path เป็น segment - รองรับทั้ง ">" และ "/"
// ตัด whitespace และข้าม segment ว่าง
func SplitCategoryPath(path string) []string {
	normalized := strings.ReplaceAll(path, "/", ">")
	parts := strings.Split(normalized, ">")

	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name != "" {
			segments = append(segments, name)
		}
	}
	return segments
}
