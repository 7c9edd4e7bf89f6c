package services

import (
	"context"

	"github.com/google/uuid"

	"austino-shop/domain/dto"
	"austino-shop/domain/models"
	"austino-shop/domain/repositories"
)

type OrderService interface {
	// PlaceOrder - core workflow: validate → ตัด stock → คำนวณ total → commit → แจ้งเตือน
	// validate ก่อน mutation เสมอ ผิดข้อเดียว = ปฏิเสธทั้ง request ไม่มี partial order
	// แจ้งเตือนหลัง commit แบบ best-effort ผลอยู่ใน NotificationReport
	PlaceOrder(ctx context.Context, userID uuid.UUID, items []dto.OrderItemInput) (*models.Order, *models.NotificationReport, error)

	// GetByID ดึง order ตาม internal ID
	GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error)

	// GetByNumber ดึง order ตาม display number (ORD-XXXXXXXX)
	GetByNumber(ctx context.Context, orderNumber string) (*models.Order, error)

	// ListByUser ดึง order ของ user คนเดียว
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*models.Order, int64, error)

	// List ดึง order ทั้งหมด กรอง status/ช่วงวันที่ (admin)
	List(ctx context.Context, filter repositories.OrderFilter) ([]*models.Order, int64, error)

	// UpdateStatus เปลี่ยน status ตาม transition ที่อนุญาตเท่านั้น
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error)
}
