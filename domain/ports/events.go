package ports

import (
	"context"
	"time"
)

// OrderPlacedEvent event หลัง order commit สำเร็จ สำหรับ consumer ภายนอก
// (analytics, fulfillment) - ส่งนอก transaction เสมอ
type OrderPlacedEvent struct {
	OrderID     string                 `json:"order_id"`
	OrderNumber string                 `json:"order_number"`
	CustomerID  string                 `json:"customer_id"`
	TotalAmount string                 `json:"total_amount"` // decimal string เช่น "14.48"
	Items       []OrderPlacedEventItem `json:"items"`
	PlacedAt    time.Time              `json:"placed_at"`
}

type OrderPlacedEventItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

// OrderEventPublisherPort publish order events แบบ best-effort
// publish ไม่สำเร็จ = log อย่างเดียว ห้ามกระทบผลของ PlaceOrder
type OrderEventPublisherPort interface {
	PublishOrderPlaced(ctx context.Context, event *OrderPlacedEvent) error
}
