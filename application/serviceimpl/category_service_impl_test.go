package serviceimpl

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"austino-shop/domain/dto"
	"austino-shop/domain/models"
	"austino-shop/domain/repositories"
	"austino-shop/domain/services"
)

// mockCategoryRepo in-memory CategoryRepository
type mockCategoryRepo struct {
	mu         sync.Mutex
	categories map[uuid.UUID]*models.Category
}

func newMockCategoryRepo() *mockCategoryRepo {
	return &mockCategoryRepo{categories: make(map[uuid.UUID]*models.Category)}
}

func (m *mockCategoryRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.categories)
}

func (m *mockCategoryRepo) Create(ctx context.Context, category *models.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.categories[category.ID] = category
	return nil
}

func (m *mockCategoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *c
	return &copied, nil
}

func (m *mockCategoryRepo) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.categories {
		if c.Slug == slug {
			copied := *c
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCategoryRepo) GetByNameUnderParent(ctx context.Context, name string, parentID *uuid.UUID) (*models.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.categories {
		if c.Name != name {
			continue
		}
		if parentID == nil && c.ParentID == nil {
			copied := *c
			return &copied, nil
		}
		if parentID != nil && c.ParentID != nil && *c.ParentID == *parentID {
			copied := *c
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCategoryRepo) Update(ctx context.Context, category *models.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.categories[category.ID] = category
	return nil
}

func (m *mockCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.categories, id)
	return nil
}

func (m *mockCategoryRepo) List(ctx context.Context) ([]*models.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.Category
	for _, c := range m.categories {
		copied := *c
		out = append(out, &copied)
	}
	return out, nil
}

func (m *mockCategoryRepo) ListTree(ctx context.Context) ([]*models.Category, error) {
	return m.List(ctx)
}

func (m *mockCategoryRepo) ListByParent(ctx context.Context, parentID uuid.UUID) ([]*models.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.Category
	for _, c := range m.categories {
		if c.ParentID != nil && *c.ParentID == parentID {
			copied := *c
			out = append(out, &copied)
		}
	}
	return out, nil
}

// statsProductRepo ProductRepository ที่ capture ชุด category IDs ที่ถูกถาม
type statsProductRepo struct {
	mockStore
	capturedIDs []uuid.UUID
	stats       repositories.PriceStats
}

func (s *statsProductRepo) PriceStatsByCategoryIDs(ctx context.Context, categoryIDs []uuid.UUID) (*repositories.PriceStats, error) {
	s.capturedIDs = categoryIDs
	stats := s.stats
	return &stats, nil
}

func newTestCategoryService() (services.CategoryService, *mockCategoryRepo, *statsProductRepo) {
	repo := newMockCategoryRepo()
	products := &statsProductRepo{
		mockStore: *newMockStore(),
		stats: repositories.PriceStats{
			AveragePrice: decimal.RequireFromString("5.25"),
			ProductCount: 4,
		},
	}
	svc := NewCategoryService(repo, products, nil)
	return svc, repo, products
}

func TestResolveOrCreatePath_CreatesChain(t *testing.T) {
	svc, repo, _ := newTestCategoryService()
	ctx := context.Background()

	leaf, err := svc.ResolveOrCreatePath(ctx, "Bakery > Bread > Sourdough")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	if leaf.Name != "Sourdough" {
		t.Errorf("expected leaf Sourdough, got %s", leaf.Name)
	}
	if repo.count() != 3 {
		t.Errorf("expected 3 categories created, got %d", repo.count())
	}

	fullPath, err := svc.FullPath(ctx, leaf.ID)
	if err != nil {
		t.Fatalf("full path failed: %v", err)
	}
	if fullPath != "Bakery > Bread > Sourdough" {
		t.Errorf("unexpected full path: %q", fullPath)
	}
}

func TestResolveOrCreatePath_Idempotent(t *testing.T) {
	svc, repo, _ := newTestCategoryService()
	ctx := context.Background()

	first, err := svc.ResolveOrCreatePath(ctx, "Bakery > Bread")
	if err != nil {
		t.Fatalf("first resolve failed: %v", err)
	}

	second, err := svc.ResolveOrCreatePath(ctx, "Bakery > Bread")
	if err != nil {
		t.Fatalf("second resolve failed: %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("expected same leaf on repeat resolve, got %s and %s", first.ID, second.ID)
	}
	if repo.count() != 2 {
		t.Errorf("expected no new categories on repeat, got %d", repo.count())
	}
}

func TestResolveOrCreatePath_SlashDelimiter(t *testing.T) {
	svc, _, _ := newTestCategoryService()
	ctx := context.Background()

	viaArrow, err := svc.ResolveOrCreatePath(ctx, "Dairy > Cheese")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	viaSlash, err := svc.ResolveOrCreatePath(ctx, "Dairy / Cheese")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	if viaArrow.ID != viaSlash.ID {
		t.Errorf("both delimiters must resolve to same node")
	}
}

func TestSplitCategoryPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want []string
	}{
		{"arrow delimiter", "Bakery > Bread", []string{"Bakery", "Bread"}},
		{"slash delimiter", "Bakery/Bread", []string{"Bakery", "Bread"}},
		{"extra whitespace", "  Bakery  >  Bread  ", []string{"Bakery", "Bread"}},
		{"empty segments skipped", "Bakery >> Bread >", []string{"Bakery", "Bread"}},
		{"single node", "Bakery", []string{"Bakery"}},
		{"empty path", "   ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitCategoryPath(tt.path)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitCategoryPath(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestDescendantIDs_IncludesSelfAndAllLevels(t *testing.T) {
	svc, _, _ := newTestCategoryService()
	ctx := context.Background()

	leaf, err := svc.ResolveOrCreatePath(ctx, "Bakery > Bread > Sourdough")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if _, err := svc.ResolveOrCreatePath(ctx, "Bakery > Cakes"); err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	root, err := svc.ResolveOrCreatePath(ctx, "Bakery")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	ids, err := svc.DescendantIDs(ctx, root.ID)
	if err != nil {
		t.Fatalf("descendants failed: %v", err)
	}

	// Bakery + Bread + Sourdough + Cakes
	if len(ids) != 4 {
		t.Errorf("expected 4 ids, got %d", len(ids))
	}

	found := false
	for _, id := range ids {
		if id == leaf.ID {
			found = true
		}
	}
	if !found {
		t.Errorf("expected deep leaf in descendant set")
	}
}

func TestUpdate_CycleGuard(t *testing.T) {
	svc, _, _ := newTestCategoryService()
	ctx := context.Background()

	leaf, err := svc.ResolveOrCreatePath(ctx, "Bakery > Bread > Sourdough")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	root, err := svc.ResolveOrCreatePath(ctx, "Bakery")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	// ย้าย root ไปใต้ leaf ของตัวเอง = cycle
	_, err = svc.Update(ctx, root.ID, &dto.UpdateCategoryRequest{ParentID: &leaf.ID})
	if !errors.Is(err, models.ErrCategoryCycle) {
		t.Errorf("expected ErrCategoryCycle, got: %v", err)
	}

	// ย้ายมาเป็น parent ของตัวเอง
	_, err = svc.Update(ctx, root.ID, &dto.UpdateCategoryRequest{ParentID: &root.ID})
	if !errors.Is(err, models.ErrCategoryCycle) {
		t.Errorf("expected ErrCategoryCycle for self-parent, got: %v", err)
	}
}

func TestDelete_WithChildrenRejected(t *testing.T) {
	svc, _, _ := newTestCategoryService()
	ctx := context.Background()

	if _, err := svc.ResolveOrCreatePath(ctx, "Bakery > Bread"); err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	root, err := svc.ResolveOrCreatePath(ctx, "Bakery")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	if err := svc.Delete(ctx, root.ID); err == nil {
		t.Error("expected delete of category with children to fail")
	}
}

func TestAveragePrice_CoversSubtree(t *testing.T) {
	svc, _, products := newTestCategoryService()
	ctx := context.Background()

	if _, err := svc.ResolveOrCreatePath(ctx, "Bakery > Bread > Sourdough"); err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	root, err := svc.ResolveOrCreatePath(ctx, "Bakery")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	result, err := svc.AveragePrice(ctx, root.ID)
	if err != nil {
		t.Fatalf("average price failed: %v", err)
	}

	// query ต้องครอบคลุม subtree ทั้งหมด ไม่ใช่แค่ node เดียว
	if len(products.capturedIDs) != 3 {
		t.Errorf("expected stats over 3 categories, got %d", len(products.capturedIDs))
	}
	if !result.AveragePrice.Equal(decimal.RequireFromString("5.25")) {
		t.Errorf("expected average 5.25, got %s", result.AveragePrice)
	}
	if result.ProductsCount != 4 {
		t.Errorf("expected 4 products, got %d", result.ProductsCount)
	}
	if result.CategoryPath != "Bakery" {
		t.Errorf("expected path Bakery, got %q", result.CategoryPath)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _, _ := newTestCategoryService()

	_, err := svc.GetByID(context.Background(), uuid.New())
	if !errors.Is(err, models.ErrCategoryNotFound) {
		t.Errorf("expected ErrCategoryNotFound, got: %v", err)
	}
}
