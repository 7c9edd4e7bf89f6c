package serviceimpl

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"austino-shop/domain/dto"
	"austino-shop/domain/models"
	"austino-shop/domain/ports"
	"austino-shop/domain/repositories"
	"austino-shop/domain/services"
	"austino-shop/pkg/logger"
	"austino-shop/pkg/utils"
)

type OrderServiceImpl struct {
	orderRepo       repositories.OrderRepository
	productRepo     repositories.ProductRepository
	customerService services.CustomerService
	notifications   services.NotificationService
	eventPublisher  ports.OrderEventPublisherPort
}

func NewOrderService(
	orderRepo repositories.OrderRepository,
	productRepo repositories.ProductRepository,
	customerService services.CustomerService,
	notifications services.NotificationService,
	eventPublisher ports.OrderEventPublisherPort,
) services.OrderService {
	return &OrderServiceImpl{
		orderRepo:       orderRepo,
		productRepo:     productRepo,
		customerService: customerService,
		notifications:   notifications,
		eventPublisher:  eventPublisher,
	}
}

// PlaceOrder - core workflow สามเฟส
// เฟส 1 validate ทุกรายการตามลำดับที่ส่งมา ผิดข้อเดียวปฏิเสธทั้ง request ไม่มี mutation
// เฟส 2 สร้าง order + ตัด stock ใน transaction เดียว (conditional decrement กัน oversell)
// เฟส 3 หลัง commit: แจ้งเตือน + publish event แบบ best-effort ไม่กระทบผลของ order
func (s *OrderServiceImpl) PlaceOrder(ctx context.Context, userID uuid.UUID, items []dto.OrderItemInput) (*models.Order, *models.NotificationReport, error) {
	if len(items) == 0 {
		return nil, nil, models.ErrEmptyOrder
	}

	customer, err := s.customerService.GetOrCreateByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	// เฟส 1: validate + snapshot ราคา - รายการซ้ำไม่ merge แต่ตรวจทีละบรรทัด
	orderItems := make([]models.OrderItem, 0, len(items))
	total := decimal.Zero
	for _, input := range items {
		product, err := s.productRepo.GetActiveByID(ctx, input.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, &models.ProductNotFoundError{ProductID: input.ProductID}
			}
			return nil, nil, err
		}

		if !product.InStock(input.Quantity) {
			return nil, nil, &models.InsufficientStockError{
				ProductID:   product.ID,
				ProductName: product.Name,
				Requested:   input.Quantity,
				Available:   product.StockQuantity,
			}
		}

		item := models.OrderItem{
			ID:        uuid.New(),
			ProductID: product.ID,
			Quantity:  input.Quantity,
			UnitPrice: product.Price, // snapshot - ราคาเปลี่ยนทีหลังไม่กระทบ order นี้
			CreatedAt: time.Now(),
			Product:   product,
		}
		orderItems = append(orderItems, item)
		total = total.Add(item.Subtotal())
	}

	order := &models.Order{
		ID:          uuid.New(),
		OrderNumber: utils.GenerateOrderNumber(),
		CustomerID:  customer.ID,
		Status:      models.OrderStatusPending,
		TotalAmount: total,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
		Items:       orderItems,
	}

	// เฟส 2: atomic commit - แพ้ race ที่ stock = rollback ทั้งก้อน
	if err := s.orderRepo.CreateWithItems(ctx, order); err != nil {
		var conflict *models.StockConflictError
		if errors.As(err, &conflict) {
			return nil, nil, s.stockConflictToInsufficient(ctx, conflict, items)
		}
		logger.ErrorContext(ctx, "Failed to create order", "order_number", order.OrderNumber, "error", err)
		return nil, nil, err
	}

	logger.InfoContext(ctx, "Order placed",
		"order_number", order.OrderNumber,
		"customer_id", customer.ID,
		"total", total.StringFixed(2),
		"items", len(orderItems),
	)

	// เฟส 3: best-effort หลัง commit - order สำเร็จไปแล้ว ไม่มีอะไร rollback ได้
	report := s.notifications.SendOrderNotifications(ctx, order, customer)
	s.publishOrderPlaced(ctx, order, customer)

	return order, report, nil
}

func (s *OrderServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *OrderServiceImpl) GetByNumber(ctx context.Context, orderNumber string) (*models.Order, error) {
	order, err := s.orderRepo.GetByNumber(ctx, orderNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *OrderServiceImpl) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*models.Order, int64, error) {
	customer, err := s.customerService.GetOrCreateByUser(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return s.orderRepo.ListByCustomer(ctx, customer.ID, offset, limit)
}

func (s *OrderServiceImpl) List(ctx context.Context, filter repositories.OrderFilter) ([]*models.Order, int64, error) {
	return s.orderRepo.List(ctx, filter)
}

func (s *OrderServiceImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, errors.New("invalid order status")
	}

	order, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !order.CanTransitionTo(status) {
		return nil, errors.New("invalid status transition from " + string(order.Status) + " to " + string(status))
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		logger.ErrorContext(ctx, "Failed to update order status", "order_id", id, "error", err)
		return nil, err
	}

	order.Status = status
	logger.InfoContext(ctx, "Order status updated", "order_number", order.OrderNumber, "status", status)

	return order, nil
}

// stockConflictToInsufficient แปลง conflict จาก repository เป็น error ที่บอกจำนวนคงเหลือจริง
// (อ่าน stock หลัง rollback เพื่อให้ caller ปรับจำนวนได้)
func (s *OrderServiceImpl) stockConflictToInsufficient(ctx context.Context, conflict *models.StockConflictError, items []dto.OrderItemInput) error {
	requested := 0
	for _, input := range items {
		if input.ProductID == conflict.ProductID {
			requested += input.Quantity
		}
	}

	product, err := s.productRepo.GetByID(ctx, conflict.ProductID)
	if err != nil {
		return &models.InsufficientStockError{
			ProductID: conflict.ProductID,
			Requested: requested,
		}
	}

	return &models.InsufficientStockError{
		ProductID:   product.ID,
		ProductName: product.Name,
		Requested:   requested,
		Available:   product.StockQuantity,
	}
}

func (s *OrderServiceImpl) publishOrderPlaced(ctx context.Context, order *models.Order, customer *models.Customer) {
	if s.eventPublisher == nil {
		return
	}

	event := &ports.OrderPlacedEvent{
		OrderID:     order.ID.String(),
		OrderNumber: order.OrderNumber,
		CustomerID:  customer.ID.String(),
		TotalAmount: order.TotalAmount.StringFixed(2),
		PlacedAt:    order.CreatedAt,
	}
	for i := range order.Items {
		item := &order.Items[i]
		eventItem := ports.OrderPlacedEventItem{
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.StringFixed(2),
		}
		if item.Product != nil {
			eventItem.Name = item.Product.Name
		}
		event.Items = append(event.Items, eventItem)
	}

	if err := s.eventPublisher.PublishOrderPlaced(ctx, event); err != nil {
		logger.WarnContext(ctx, "Failed to publish order event", "order_number", order.OrderNumber, "error", err)
	}
}
