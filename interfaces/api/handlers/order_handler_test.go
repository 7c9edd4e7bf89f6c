package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"austino-shop/domain/dto"
	"austino-shop/domain/models"
	"austino-shop/domain/repositories"
	"austino-shop/pkg/utils"
)

// stubOrderService คืนผลตามที่ตั้งไว้ - ใช้ทดสอบ error mapping ของ handler
type stubOrderService struct {
	placeOrderErr error
	order         *models.Order
	report        *models.NotificationReport
}

func (s *stubOrderService) PlaceOrder(ctx context.Context, userID uuid.UUID, items []dto.OrderItemInput) (*models.Order, *models.NotificationReport, error) {
	if s.placeOrderErr != nil {
		return nil, nil, s.placeOrderErr
	}
	return s.order, s.report, nil
}

func (s *stubOrderService) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	return nil, models.ErrOrderNotFound
}

func (s *stubOrderService) GetByNumber(ctx context.Context, orderNumber string) (*models.Order, error) {
	return nil, models.ErrOrderNotFound
}

func (s *stubOrderService) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*models.Order, int64, error) {
	return nil, 0, nil
}

func (s *stubOrderService) List(ctx context.Context, filter repositories.OrderFilter) ([]*models.Order, int64, error) {
	return nil, 0, nil
}

func (s *stubOrderService) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	return nil, models.ErrOrderNotFound
}

func newOrderTestApp(svc *stubOrderService) *fiber.App {
	app := fiber.New()

	// ใส่ user context แทน auth middleware จริง
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user", &utils.UserContext{ID: uuid.New(), Username: "alice", Role: "user"})
		return c.Next()
	})

	handler := NewOrderHandler(svc)
	app.Post("/orders", handler.PlaceOrder)
	return app
}

func placeOrderRequest(t *testing.T) *bytes.Reader {
	t.Helper()
	body, err := json.Marshal(dto.PlaceOrderRequest{
		Items: []dto.OrderItemInput{{ProductID: uuid.New(), Quantity: 1}},
	})
	if err != nil {
		t.Fatal(err)
	}
	return bytes.NewReader(body)
}

func TestPlaceOrderHandler_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"empty order", models.ErrEmptyOrder, fiber.StatusBadRequest},
		{"product not found", &models.ProductNotFoundError{ProductID: uuid.New()}, fiber.StatusNotFound},
		{"insufficient stock", &models.InsufficientStockError{ProductName: "Jam", Requested: 5, Available: 2}, fiber.StatusBadRequest},
		{"unexpected failure", context.DeadlineExceeded, fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newOrderTestApp(&stubOrderService{placeOrderErr: tt.err})

			req := httptest.NewRequest("POST", "/orders", placeOrderRequest(t))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, resp.StatusCode)
			}
		})
	}
}

func TestPlaceOrderHandler_SuccessIncludesReport(t *testing.T) {
	order := &models.Order{
		ID:          uuid.New(),
		OrderNumber: "ORD-3F9A01BC",
		Status:      models.OrderStatusPending,
		TotalAmount: decimal.RequireFromString("14.48"),
	}
	svc := &stubOrderService{
		order:  order,
		report: &models.NotificationReport{CustomerSMS: models.DispatchSuccess, AdminEmail: "Failed-connection refused"},
	}

	app := newOrderTestApp(svc)

	req := httptest.NewRequest("POST", "/orders", placeOrderRequest(t))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	raw, _ := io.ReadAll(resp.Body)
	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			Order struct {
				OrderNumber string `json:"orderNumber"`
			} `json:"order"`
			Notifications models.NotificationReport `json:"notifications"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}

	if !envelope.Success {
		t.Error("expected success envelope")
	}
	if envelope.Data.Order.OrderNumber != "ORD-3F9A01BC" {
		t.Errorf("unexpected order number: %s", envelope.Data.Order.OrderNumber)
	}
	// รายงานแจ้งเตือนต้องติดไปกับ response แม้ส่งไม่สำเร็จ
	if envelope.Data.Notifications.AdminEmail != "Failed-connection refused" {
		t.Errorf("expected notification failure surfaced, got %q", envelope.Data.Notifications.AdminEmail)
	}
}
