package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"austino-shop/domain/models"
)

// === Requests ===

// OrderItemInput หนึ่ง line item - สินค้าซ้ำกันหลายบรรทัดได้ (ไม่ merge)
type OrderItemInput struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
}

type PlaceOrderRequest struct {
	Items []OrderItemInput `json:"items" validate:"dive"`
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" validate:"required,oneof=pending processing shipped delivered cancelled"`
}

// === Responses ===

type OrderItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"productId"`
	ProductName string          `json:"productName,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type OrderResponse struct {
	ID          uuid.UUID           `json:"id"`
	OrderNumber string              `json:"orderNumber"`
	Status      models.OrderStatus  `json:"status"`
	TotalAmount decimal.Decimal     `json:"totalAmount"`
	CreatedAt   time.Time           `json:"createdAt"`
	Items       []OrderItemResponse `json:"items"`
}

// PlaceOrderResponse order ที่ commit แล้ว + ผลการส่งแจ้งเตือน (best-effort)
type PlaceOrderResponse struct {
	Order         OrderResponse              `json:"order"`
	Notifications models.NotificationReport `json:"notifications"`
}

// === Mappers ===

func OrderItemToResponse(item *models.OrderItem) OrderItemResponse {
	resp := OrderItemResponse{
		ID:        item.ID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		UnitPrice: item.UnitPrice,
		Subtotal:  item.Subtotal(),
	}
	if item.Product != nil {
		resp.ProductName = item.Product.Name
	}
	return resp
}

func OrderToOrderResponse(order *models.Order) *OrderResponse {
	if order == nil {
		return nil
	}
	items := make([]OrderItemResponse, len(order.Items))
	for i := range order.Items {
		items[i] = OrderItemToResponse(&order.Items[i])
	}
	return &OrderResponse{
		ID:          order.ID,
		OrderNumber: order.OrderNumber,
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
		CreatedAt:   order.CreatedAt,
		Items:       items,
	}
}

func OrdersToOrderResponses(orders []*models.Order) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i, order := range orders {
		responses[i] = *OrderToOrderResponse(order)
	}
	return responses
}
