package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus สถานะของ order
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// ValidOrderStatus ตรวจสอบว่า status อยู่ในชุดที่รองรับ
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID          uuid.UUID       `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	OrderNumber string          `gorm:"size:20;uniqueIndex;not null"` // ORD-XXXXXXXX สร้างครั้งเดียว ไม่ reuse
	CustomerID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status      OrderStatus     `gorm:"size:20;default:'pending'"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Relations - order เป็นเจ้าของ items (ลบ order แล้ว items หายด้วย)
	Customer *Customer   `gorm:"foreignKey:CustomerID"`
	Items    []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (Order) TableName() string {
	return "orders"
}

// IsTerminal ตรวจสอบว่า status เป็นสถานะสุดท้ายแล้ว
func (o *Order) IsTerminal() bool {
	return o.Status == OrderStatusDelivered || o.Status == OrderStatusCancelled
}

// CanTransitionTo ตรวจสอบว่าเปลี่ยนไป status ใหม่ได้หรือไม่
// pending → processing → shipped → delivered, ยกเลิกได้ทุกสถานะที่ยังไม่จบ
func (o *Order) CanTransitionTo(next OrderStatus) bool {
	if o.IsTerminal() {
		return false
	}
	if next == OrderStatusCancelled {
		return true
	}
	switch o.Status {
	case OrderStatusPending:
		return next == OrderStatusProcessing
	case OrderStatusProcessing:
		return next == OrderStatusShipped
	case OrderStatusShipped:
		return next == OrderStatusDelivered
	}
	return false
}

// OrderItem line item หนึ่งรายการ UnitPrice เป็น snapshot ราคาตอนสั่ง
// ไม่เปลี่ยนตามราคาสินค้าในอนาคต
type OrderItem struct {
	ID        uuid.UUID       `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt time.Time

	// Relations
	Product *Product `gorm:"foreignKey:ProductID"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

// Subtotal = quantity × unit_price (decimal เสมอ ไม่ใช้ float)
func (i *OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
