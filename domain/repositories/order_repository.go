package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"austino-shop/domain/models"
)

// OrderFilter เงื่อนไขการค้น order (หน้า admin)
type OrderFilter struct {
	Status    models.OrderStatus
	StartDate *time.Time
	EndDate   *time.Time
	Offset    int
	Limit     int
}

type OrderRepository interface {
	// CreateWithItems สร้าง order + items + ตัด stock ใน transaction เดียว
	// การตัด stock เป็น conditional update:
	//   UPDATE products SET stock_quantity = stock_quantity - ? WHERE id = ? AND stock_quantity >= ?
	// ถ้า affected rows = 0 ต้อง rollback ทั้ง transaction แล้วคืน *models.StockConflictError
	CreateWithItems(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	GetByNumber(ctx context.Context, orderNumber string) (*models.Order, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, offset, limit int) ([]*models.Order, int64, error)
	List(ctx context.Context, filter OrderFilter) ([]*models.Order, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error
}
