package serviceimpl

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"austino-shop/domain/dto"
)

func newTestProductService() (*ProductServiceImpl, *mockStore, *mockCategoryRepo) {
	categoryRepo := newMockCategoryRepo()
	store := newMockStore()
	categoryService := NewCategoryService(categoryRepo, store, nil)
	svc := NewProductService(store, categoryService).(*ProductServiceImpl)
	return svc, store, categoryRepo
}

func TestProductCreate_WithCategoryPath(t *testing.T) {
	svc, _, categories := newTestProductService()
	ctx := context.Background()

	product, err := svc.Create(ctx, &dto.CreateProductRequest{
		Name:         "Sourdough",
		Price:        decimal.RequireFromString("2.99"),
		CategoryPath: "Bakery > Bread",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// path ถูก resolve/create ให้อัตโนมัติ
	if categories.count() != 2 {
		t.Errorf("expected 2 categories from path, got %d", categories.count())
	}
	if product.StockQuantity != 100 {
		t.Errorf("expected default stock 100, got %d", product.StockQuantity)
	}
	if !product.IsActive {
		t.Error("expected product active by default")
	}
}

func TestProductCreate_RequiresCategory(t *testing.T) {
	svc, _, _ := newTestProductService()

	_, err := svc.Create(context.Background(), &dto.CreateProductRequest{
		Name:  "Orphan",
		Price: decimal.RequireFromString("1.00"),
	})
	if err == nil {
		t.Error("expected error without category reference")
	}
}

func TestProductCreate_NegativePriceRejected(t *testing.T) {
	svc, _, _ := newTestProductService()

	_, err := svc.Create(context.Background(), &dto.CreateProductRequest{
		Name:         "Broken",
		Price:        decimal.RequireFromString("-1.00"),
		CategoryPath: "Bakery",
	})
	if err == nil {
		t.Error("expected rejection of negative price")
	}
}

func TestProductCreateBulk_SharedPathResolvedOnce(t *testing.T) {
	svc, store, categories := newTestProductService()
	ctx := context.Background()

	products, err := svc.CreateBulk(ctx, &dto.BulkCreateProductRequest{
		Products: []dto.CreateProductRequest{
			{Name: "Sourdough", Price: decimal.RequireFromString("2.99"), CategoryPath: "Bakery > Bread"},
			{Name: "Baguette", Price: decimal.RequireFromString("1.80"), CategoryPath: "Bakery > Bread"},
		},
	})
	if err != nil {
		t.Fatalf("bulk create failed: %v", err)
	}

	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	// ทั้งสองตัวชี้ category เดียวกัน - resolve ครั้งที่สอง idempotent
	if products[0].CategoryID != products[1].CategoryID {
		t.Error("expected both products in same category")
	}
	if categories.count() != 2 {
		t.Errorf("expected 2 categories total, got %d", categories.count())
	}

	store.mu.Lock()
	stored := len(store.products)
	store.mu.Unlock()
	if stored != 2 {
		t.Errorf("expected 2 products persisted, got %d", stored)
	}
}

func TestProductCreateBulk_InvalidEntryRejectsAll(t *testing.T) {
	svc, store, _ := newTestProductService()

	_, err := svc.CreateBulk(context.Background(), &dto.BulkCreateProductRequest{
		Products: []dto.CreateProductRequest{
			{Name: "Good", Price: decimal.RequireFromString("2.99"), CategoryPath: "Bakery"},
			{Name: "", Price: decimal.RequireFromString("1.00"), CategoryPath: "Bakery"}, // ชื่อว่าง
		},
	})
	if err == nil {
		t.Fatal("expected bulk create to fail on invalid entry")
	}

	store.mu.Lock()
	stored := len(store.products)
	store.mu.Unlock()
	if stored != 0 {
		t.Errorf("expected no products persisted (all or nothing), got %d", stored)
	}
}
