package serviceimpl

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"austino-shop/domain/dto"
	"austino-shop/domain/models"
	"austino-shop/domain/ports"
	"austino-shop/domain/repositories"
)

// mockStore in-memory store ที่ implement ทั้ง ProductRepository และ OrderRepository
// CreateWithItems ทำ conditional decrement แบบเดียวกับ database จริง
type mockStore struct {
	mu       sync.Mutex
	products map[uuid.UUID]*models.Product
	orders   map[uuid.UUID]*models.Order
}

func newMockStore() *mockStore {
	return &mockStore{
		products: make(map[uuid.UUID]*models.Product),
		orders:   make(map[uuid.UUID]*models.Order),
	}
}

func (m *mockStore) addProduct(name string, price string, stock int, active bool) *models.Product {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := &models.Product{
		ID:            uuid.New(),
		Name:          name,
		Price:         decimal.RequireFromString(price),
		CategoryID:    uuid.New(),
		StockQuantity: stock,
		IsActive:      active,
	}
	m.products[p.ID] = p
	return p
}

func (m *mockStore) stockOf(id uuid.UUID) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.products[id].StockQuantity
}

func (m *mockStore) orderCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.orders)
}

// --- ProductRepository ---

func (m *mockStore) Create(ctx context.Context, product *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products[product.ID] = product
	return nil
}

func (m *mockStore) CreateBatch(ctx context.Context, products []*models.Product) error {
	for _, p := range products {
		if err := m.Create(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func (m *mockStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *p
	return &copied, nil
}

func (m *mockStore) GetActiveByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok || !p.IsActive {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *p
	return &copied, nil
}

func (m *mockStore) Update(ctx context.Context, product *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products[product.ID] = product
	return nil
}

func (m *mockStore) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.products, id)
	return nil
}

func (m *mockStore) List(ctx context.Context, filter repositories.ProductFilter) ([]*models.Product, int64, error) {
	return nil, 0, nil
}

func (m *mockStore) PriceStatsByCategoryIDs(ctx context.Context, categoryIDs []uuid.UUID) (*repositories.PriceStats, error) {
	return &repositories.PriceStats{AveragePrice: decimal.Zero}, nil
}

func (m *mockStore) ListLowStock(ctx context.Context, threshold int) ([]*models.Product, error) {
	return nil, nil
}

// --- OrderRepository ---

func (m *mockStore) CreateWithItems(ctx context.Context, order *models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// conditional decrement - ทั้งก้อนหรือไม่เลย เหมือน transaction จริง
	decremented := make(map[uuid.UUID]int)
	for i := range order.Items {
		item := &order.Items[i]
		p, ok := m.products[item.ProductID]
		if !ok || p.StockQuantity < item.Quantity {
			// rollback สิ่งที่ตัดไปแล้วในก้อนนี้
			for id, qty := range decremented {
				m.products[id].StockQuantity += qty
			}
			return &models.StockConflictError{ProductID: item.ProductID}
		}
		p.StockQuantity -= item.Quantity
		decremented[item.ProductID] += item.Quantity
	}

	m.orders[order.ID] = order
	return nil
}

func (m *mockStore) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return o, nil
}

func (m *mockStore) GetByNumber(ctx context.Context, orderNumber string) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.orders {
		if o.OrderNumber == orderNumber {
			return o, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStore) ListByCustomer(ctx context.Context, customerID uuid.UUID, offset, limit int) ([]*models.Order, int64, error) {
	return nil, 0, nil
}

func (m *mockStore) ListOrders(ctx context.Context, filter repositories.OrderFilter) ([]*models.Order, int64, error) {
	return nil, 0, nil
}

func (m *mockStore) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	o.Status = status
	return nil
}

// orderRepoAdapter แยก method ที่ชื่อชนกันระหว่างสอง interface
type orderRepoAdapter struct {
	*mockStore
}

func (a orderRepoAdapter) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	return a.mockStore.GetOrderByID(ctx, id)
}

func (a orderRepoAdapter) List(ctx context.Context, filter repositories.OrderFilter) ([]*models.Order, int64, error) {
	return a.mockStore.ListOrders(ctx, filter)
}

// --- CustomerService mock ---

type mockCustomerService struct {
	customer *models.Customer
}

func (m *mockCustomerService) GetOrCreateByUser(ctx context.Context, userID uuid.UUID) (*models.Customer, error) {
	return m.customer, nil
}

func (m *mockCustomerService) UpdateContact(ctx context.Context, userID uuid.UUID, req *dto.UpdateCustomerRequest) (*models.Customer, error) {
	return m.customer, nil
}

// --- NotificationService mock ---

type mockNotificationService struct {
	mu     sync.Mutex
	calls  int
	report models.NotificationReport
}

func (m *mockNotificationService) SendOrderNotifications(ctx context.Context, order *models.Order, customer *models.Customer) *models.NotificationReport {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	report := m.report
	return &report
}

func (m *mockNotificationService) SendLowStockReport(ctx context.Context, products []*models.Product) string {
	return models.DispatchSkipped
}

func (m *mockNotificationService) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// --- Event publisher mock ---

type mockPublisher struct {
	mu        sync.Mutex
	published int
	err       error
}

func (m *mockPublisher) PublishOrderPlaced(ctx context.Context, event *ports.OrderPlacedEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.published++
	return m.err
}

// --- Helpers ---

func newTestOrderService(store *mockStore) (*OrderServiceImpl, *mockNotificationService, *mockPublisher) {
	customer := &models.Customer{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Phone:  "+254700000001",
		User:   &models.User{Username: "alice", FirstName: "Alice"},
	}
	notifications := &mockNotificationService{
		report: models.NotificationReport{CustomerSMS: models.DispatchSuccess, AdminEmail: models.DispatchSuccess},
	}
	publisher := &mockPublisher{}

	svc := NewOrderService(
		orderRepoAdapter{store},
		store,
		&mockCustomerService{customer: customer},
		notifications,
		publisher,
	).(*OrderServiceImpl)

	return svc, notifications, publisher
}

// --- Tests ---

func TestPlaceOrder_TotalIsExactDecimalSum(t *testing.T) {
	store := newMockStore()
	bread := store.addProduct("Sourdough", "2.99", 10, true)
	jam := store.addProduct("Strawberry Jam", "8.50", 5, true)

	svc, notifications, publisher := newTestOrderService(store)

	order, report, err := svc.PlaceOrder(context.Background(), uuid.New(), []dto.OrderItemInput{
		{ProductID: bread.ID, Quantity: 2},
		{ProductID: jam.ID, Quantity: 1},
	})
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}

	// 2×2.99 + 1×8.50 = 14.48 เป๊ะ ไม่มี float drift
	want := decimal.RequireFromString("14.48")
	if !order.TotalAmount.Equal(want) {
		t.Errorf("expected total 14.48, got %s", order.TotalAmount)
	}

	if !strings.HasPrefix(order.OrderNumber, "ORD-") || len(order.OrderNumber) != 12 {
		t.Errorf("unexpected order number format: %q", order.OrderNumber)
	}
	if order.Status != models.OrderStatusPending {
		t.Errorf("expected pending status, got %s", order.Status)
	}
	if store.stockOf(bread.ID) != 8 {
		t.Errorf("expected bread stock 8, got %d", store.stockOf(bread.ID))
	}
	if store.stockOf(jam.ID) != 4 {
		t.Errorf("expected jam stock 4, got %d", store.stockOf(jam.ID))
	}

	if report.CustomerSMS != models.DispatchSuccess {
		t.Errorf("expected SMS success, got %q", report.CustomerSMS)
	}
	if notifications.callCount() != 1 {
		t.Errorf("expected 1 notification dispatch, got %d", notifications.callCount())
	}
	if publisher.published != 1 {
		t.Errorf("expected 1 event published, got %d", publisher.published)
	}
}

func TestPlaceOrder_UnitPriceSnapshot(t *testing.T) {
	store := newMockStore()
	bread := store.addProduct("Sourdough", "2.99", 10, true)

	svc, _, _ := newTestOrderService(store)

	order, _, err := svc.PlaceOrder(context.Background(), uuid.New(), []dto.OrderItemInput{
		{ProductID: bread.ID, Quantity: 1},
	})
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}

	// เปลี่ยนราคาหลังสั่ง - order เดิมต้องไม่ขยับ
	store.mu.Lock()
	store.products[bread.ID].Price = decimal.RequireFromString("99.99")
	store.mu.Unlock()

	if !order.Items[0].UnitPrice.Equal(decimal.RequireFromString("2.99")) {
		t.Errorf("expected snapshot price 2.99, got %s", order.Items[0].UnitPrice)
	}
}

func TestPlaceOrder_EmptyOrderRejected(t *testing.T) {
	store := newMockStore()
	svc, notifications, _ := newTestOrderService(store)

	_, _, err := svc.PlaceOrder(context.Background(), uuid.New(), nil)
	if !errors.Is(err, models.ErrEmptyOrder) {
		t.Fatalf("expected ErrEmptyOrder, got: %v", err)
	}
	if notifications.callCount() != 0 {
		t.Errorf("expected no notifications for rejected order")
	}
}

func TestPlaceOrder_ProductNotFound(t *testing.T) {
	store := newMockStore()
	bread := store.addProduct("Sourdough", "2.99", 10, true)

	svc, _, _ := newTestOrderService(store)

	missing := uuid.New()
	_, _, err := svc.PlaceOrder(context.Background(), uuid.New(), []dto.OrderItemInput{
		{ProductID: bread.ID, Quantity: 1},
		{ProductID: missing, Quantity: 1},
	})

	var notFound *models.ProductNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected ProductNotFoundError, got: %v", err)
	}
	if notFound.ProductID != missing {
		t.Errorf("expected product %s in error, got %s", missing, notFound.ProductID)
	}

	// ปฏิเสธทั้ง request - บรรทัดแรกที่ valid ต้องไม่ตัด stock
	if store.stockOf(bread.ID) != 10 {
		t.Errorf("expected no stock change, got %d", store.stockOf(bread.ID))
	}
	if store.orderCount() != 0 {
		t.Errorf("expected no order persisted")
	}
}

func TestPlaceOrder_InactiveProductTreatedAsMissing(t *testing.T) {
	store := newMockStore()
	hidden := store.addProduct("Discontinued", "1.00", 10, false)

	svc, _, _ := newTestOrderService(store)

	_, _, err := svc.PlaceOrder(context.Background(), uuid.New(), []dto.OrderItemInput{
		{ProductID: hidden.ID, Quantity: 1},
	})

	var notFound *models.ProductNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected ProductNotFoundError for inactive product, got: %v", err)
	}
}

func TestPlaceOrder_InsufficientStock(t *testing.T) {
	store := newMockStore()
	jam := store.addProduct("Strawberry Jam", "8.50", 3, true)

	svc, notifications, _ := newTestOrderService(store)

	_, _, err := svc.PlaceOrder(context.Background(), uuid.New(), []dto.OrderItemInput{
		{ProductID: jam.ID, Quantity: 5},
	})

	var insufficient *models.InsufficientStockError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientStockError, got: %v", err)
	}
	if insufficient.Requested != 5 || insufficient.Available != 3 {
		t.Errorf("expected requested=5 available=3, got requested=%d available=%d",
			insufficient.Requested, insufficient.Available)
	}

	if store.stockOf(jam.ID) != 3 {
		t.Errorf("expected no stock change, got %d", store.stockOf(jam.ID))
	}
	if store.orderCount() != 0 {
		t.Errorf("expected no order persisted")
	}
	if notifications.callCount() != 0 {
		t.Errorf("expected no notifications for rejected order")
	}
}

func TestPlaceOrder_DuplicateLinesKeptSeparate(t *testing.T) {
	store := newMockStore()
	bread := store.addProduct("Sourdough", "2.99", 5, true)

	svc, _, _ := newTestOrderService(store)

	order, _, err := svc.PlaceOrder(context.Background(), uuid.New(), []dto.OrderItemInput{
		{ProductID: bread.ID, Quantity: 2},
		{ProductID: bread.ID, Quantity: 3},
	})
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}

	if len(order.Items) != 2 {
		t.Errorf("expected 2 separate line items, got %d", len(order.Items))
	}
	if store.stockOf(bread.ID) != 0 {
		t.Errorf("expected stock 0, got %d", store.stockOf(bread.ID))
	}

	// 5×2.99 = 14.95
	if !order.TotalAmount.Equal(decimal.RequireFromString("14.95")) {
		t.Errorf("expected total 14.95, got %s", order.TotalAmount)
	}
}

func TestPlaceOrder_DuplicateLinesExceedingStock(t *testing.T) {
	store := newMockStore()
	bread := store.addProduct("Sourdough", "2.99", 4, true)

	svc, _, _ := newTestOrderService(store)

	// แต่ละบรรทัดผ่าน pre-check (4 >= 3) แต่รวมกันเกิน - conditional decrement จับได้
	_, _, err := svc.PlaceOrder(context.Background(), uuid.New(), []dto.OrderItemInput{
		{ProductID: bread.ID, Quantity: 3},
		{ProductID: bread.ID, Quantity: 3},
	})

	var insufficient *models.InsufficientStockError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientStockError, got: %v", err)
	}

	// rollback ทั้ง transaction - stock กลับเต็ม
	if store.stockOf(bread.ID) != 4 {
		t.Errorf("expected stock restored to 4, got %d", store.stockOf(bread.ID))
	}
	if store.orderCount() != 0 {
		t.Errorf("expected no order persisted")
	}
}

func TestPlaceOrder_NotificationFailureDoesNotFailOrder(t *testing.T) {
	store := newMockStore()
	bread := store.addProduct("Sourdough", "2.99", 10, true)

	svc, notifications, _ := newTestOrderService(store)
	notifications.report = models.NotificationReport{
		CustomerSMS: "Failed-provider timeout",
		AdminEmail:  "Failed-connection refused",
	}

	order, report, err := svc.PlaceOrder(context.Background(), uuid.New(), []dto.OrderItemInput{
		{ProductID: bread.ID, Quantity: 1},
	})
	if err != nil {
		t.Fatalf("order must succeed even when notifications fail, got: %v", err)
	}
	if order == nil {
		t.Fatal("expected committed order")
	}
	if report.CustomerSMS != "Failed-provider timeout" {
		t.Errorf("expected failure captured in report, got %q", report.CustomerSMS)
	}
	if store.stockOf(bread.ID) != 9 {
		t.Errorf("expected stock decremented, got %d", store.stockOf(bread.ID))
	}
}

func TestPlaceOrder_PublisherFailureIgnored(t *testing.T) {
	store := newMockStore()
	bread := store.addProduct("Sourdough", "2.99", 10, true)

	svc, _, publisher := newTestOrderService(store)
	publisher.err = errors.New("nats down")

	_, _, err := svc.PlaceOrder(context.Background(), uuid.New(), []dto.OrderItemInput{
		{ProductID: bread.ID, Quantity: 1},
	})
	if err != nil {
		t.Fatalf("order must succeed even when event publish fails, got: %v", err)
	}
}

func TestPlaceOrder_ConcurrentNeverOversells(t *testing.T) {
	store := newMockStore()
	jam := store.addProduct("Strawberry Jam", "8.50", 10, true)

	svc, _, _ := newTestOrderService(store)

	const buyers = 25
	var wg sync.WaitGroup
	var successes int32
	var mu sync.Mutex

	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := svc.PlaceOrder(context.Background(), uuid.New(), []dto.OrderItemInput{
				{ProductID: jam.ID, Quantity: 1},
			})
			if err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if successes != 10 {
		t.Errorf("expected exactly 10 successful orders, got %d", successes)
	}
	if store.stockOf(jam.ID) != 0 {
		t.Errorf("expected stock 0, got %d", store.stockOf(jam.ID))
	}
	if store.stockOf(jam.ID) < 0 {
		t.Errorf("stock must never be negative")
	}
}

func TestUpdateStatus_Transitions(t *testing.T) {
	store := newMockStore()
	bread := store.addProduct("Sourdough", "2.99", 10, true)

	svc, _, _ := newTestOrderService(store)

	order, _, err := svc.PlaceOrder(context.Background(), uuid.New(), []dto.OrderItemInput{
		{ProductID: bread.ID, Quantity: 1},
	})
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}

	// pending → shipped ข้ามขั้น ต้องโดนปฏิเสธ
	if _, err := svc.UpdateStatus(context.Background(), order.ID, models.OrderStatusShipped); err == nil {
		t.Error("expected rejection for pending → shipped")
	}

	// pending → processing → shipped → delivered ตามลำดับ
	for _, status := range []models.OrderStatus{
		models.OrderStatusProcessing,
		models.OrderStatusShipped,
		models.OrderStatusDelivered,
	} {
		if _, err := svc.UpdateStatus(context.Background(), order.ID, status); err != nil {
			t.Fatalf("expected transition to %s to succeed: %v", status, err)
		}
	}

	// delivered เป็น terminal - เปลี่ยนต่อไม่ได้รวมถึง cancel
	if _, err := svc.UpdateStatus(context.Background(), order.ID, models.OrderStatusCancelled); err == nil {
		t.Error("expected rejection for delivered → cancelled")
	}
}

func TestUpdateStatus_CancelFromAnyNonTerminal(t *testing.T) {
	store := newMockStore()
	bread := store.addProduct("Sourdough", "2.99", 10, true)

	svc, _, _ := newTestOrderService(store)

	order, _, err := svc.PlaceOrder(context.Background(), uuid.New(), []dto.OrderItemInput{
		{ProductID: bread.ID, Quantity: 1},
	})
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}

	if _, err := svc.UpdateStatus(context.Background(), order.ID, models.OrderStatusProcessing); err != nil {
		t.Fatalf("processing transition failed: %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), order.ID, models.OrderStatusCancelled); err != nil {
		t.Errorf("expected cancel from processing to succeed: %v", err)
	}
}

func TestPlaceOrder_OrderNumbersUnique(t *testing.T) {
	store := newMockStore()
	bread := store.addProduct("Sourdough", "2.99", 100, true)

	svc, _, _ := newTestOrderService(store)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		order, _, err := svc.PlaceOrder(context.Background(), uuid.New(), []dto.OrderItemInput{
			{ProductID: bread.ID, Quantity: 1},
		})
		if err != nil {
			t.Fatalf("place order %d failed: %v", i, err)
		}
		if seen[order.OrderNumber] {
			t.Fatalf("duplicate order number: %s", order.OrderNumber)
		}
		seen[order.OrderNumber] = true
	}
}
