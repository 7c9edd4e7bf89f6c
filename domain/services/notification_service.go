package services

import (
	"context"

	"austino-shop/domain/models"
)

type NotificationService interface {
	// SendOrderNotifications ส่ง SMS หาลูกค้า + email หา staff หลัง order commit
	// ไม่คืน error - ทุกความล้มเหลวถูก capture ลง report
	SendOrderNotifications(ctx context.Context, order *models.Order, customer *models.Customer) *models.NotificationReport

	// SendLowStockReport ส่งรายงานสินค้า stock ต่ำให้ staff (scheduled job)
	SendLowStockReport(ctx context.Context, products []*models.Product) string
}
