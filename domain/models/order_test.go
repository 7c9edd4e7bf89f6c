package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestOrderItem_Subtotal(t *testing.T) {
	item := OrderItem{
		Quantity:  3,
		UnitPrice: decimal.RequireFromString("2.99"),
	}

	if !item.Subtotal().Equal(decimal.RequireFromString("8.97")) {
		t.Errorf("expected 8.97, got %s", item.Subtotal())
	}
}

func TestOrder_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{OrderStatusPending, OrderStatusProcessing, true},
		{OrderStatusPending, OrderStatusShipped, false},
		{OrderStatusProcessing, OrderStatusShipped, true},
		{OrderStatusShipped, OrderStatusDelivered, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusShipped, OrderStatusCancelled, true},
		{OrderStatusDelivered, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusProcessing, false},
		{OrderStatusDelivered, OrderStatusProcessing, false},
	}

	for _, tt := range tests {
		order := Order{Status: tt.from}
		if got := order.CanTransitionTo(tt.to); got != tt.want {
			t.Errorf("%s → %s: expected %v, got %v", tt.from, tt.to, tt.want, got)
		}
	}
}

func TestValidOrderStatus(t *testing.T) {
	if !ValidOrderStatus(OrderStatusPending) {
		t.Error("pending must be valid")
	}
	if ValidOrderStatus("unknown") {
		t.Error("unknown must be invalid")
	}
}
