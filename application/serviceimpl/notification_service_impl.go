package serviceimpl

import (
	"context"
	"fmt"
	"strings"

	"austino-shop/domain/models"
	"austino-shop/domain/ports"
	"austino-shop/domain/repositories"
	"austino-shop/domain/services"
	"austino-shop/pkg/logger"
)

type NotificationServiceImpl struct {
	smsSender   ports.SMSSenderPort
	emailSender ports.EmailSenderPort
	userRepo    repositories.UserRepository
}

func NewNotificationService(
	smsSender ports.SMSSenderPort,
	emailSender ports.EmailSenderPort,
	userRepo repositories.UserRepository,
) services.NotificationService {
	return &NotificationServiceImpl{
		smsSender:   smsSender,
		emailSender: emailSender,
		userRepo:    userRepo,
	}
}

// SendOrderNotifications ส่ง SMS หาลูกค้า + email หา staff - เรียกหลัง order commit แล้วเท่านั้น
// ไม่คืน error ความล้มเหลวทุกแบบถูกเก็บเป็น status string ใน report
func (s *NotificationServiceImpl) SendOrderNotifications(ctx context.Context, order *models.Order, customer *models.Customer) *models.NotificationReport {
	report := &models.NotificationReport{}

	// SMS หาลูกค้า - ไม่มีเบอร์ = ข้าม ไม่ใช่ error
	if !customer.HasPhone() {
		report.CustomerSMS = models.NoPhoneNumber
	} else {
		result := s.smsSender.SendSMS(ctx, customer.Phone, s.renderCustomerSMS(order, customer))
		report.CustomerSMS = result.Status
	}

	// Email หา staff ทุกคนที่ active
	staff, err := s.userRepo.ListStaff(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list staff for notification", "error", err)
		report.AdminEmail = "Failed-" + err.Error()
		return report
	}
	if len(staff) == 0 {
		report.AdminEmail = "Failed-no staff recipients"
		return report
	}

	recipients := make([]string, 0, len(staff))
	for _, u := range staff {
		recipients = append(recipients, u.Email)
	}

	subject := fmt.Sprintf("New order %s", order.OrderNumber)
	result := s.emailSender.SendEmail(ctx, subject, s.renderAdminEmail(order, customer, report.CustomerSMS), recipients)
	report.AdminEmail = result.Status

	logger.InfoContext(ctx, "Order notifications dispatched",
		"order_number", order.OrderNumber,
		"customer_sms", report.CustomerSMS,
		"admin_email", report.AdminEmail,
	)

	return report
}

// SendLowStockReport ส่งรายการสินค้า stock ต่ำให้ staff (scheduled job)
func (s *NotificationServiceImpl) SendLowStockReport(ctx context.Context, products []*models.Product) string {
	if len(products) == 0 {
		return models.DispatchSkipped
	}

	staff, err := s.userRepo.ListStaff(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list staff for low stock report", "error", err)
		return "Failed-" + err.Error()
	}
	if len(staff) == 0 {
		return "Failed-no staff recipients"
	}

	recipients := make([]string, 0, len(staff))
	for _, u := range staff {
		recipients = append(recipients, u.Email)
	}

	body := strings.Builder{}
	body.WriteString("The following products are running low on stock:\n\n")
	for _, p := range products {
		body.WriteString(fmt.Sprintf("- %s: %d remaining\n", p.Name, p.StockQuantity))
	}
	body.WriteString("\nPlease restock as soon as possible.\n")

	subject := fmt.Sprintf("Low stock report: %d products", len(products))
	result := s.emailSender.SendEmail(ctx, subject, body.String(), recipients)
	return result.Status
}

func (s *NotificationServiceImpl) renderCustomerSMS(order *models.Order, customer *models.Customer) string {
	name := "customer"
	if customer.User != nil {
		name = customer.User.FullName()
	}
	return fmt.Sprintf("Dear %s, your order %s totalling %s has been received and is being processed. Thank you for shopping with us!",
		name, order.OrderNumber, order.TotalAmount.StringFixed(2))
}

func (s *NotificationServiceImpl) renderAdminEmail(order *models.Order, customer *models.Customer, smsStatus string) string {
	body := strings.Builder{}

	customerName := "unknown"
	if customer.User != nil {
		customerName = customer.User.FullName()
	}

	body.WriteString(fmt.Sprintf("Order %s has been placed by %s.\n\n", order.OrderNumber, customerName))
	body.WriteString("Items:\n")
	for i := range order.Items {
		item := &order.Items[i]
		itemName := item.ProductID.String()
		if item.Product != nil {
			itemName = item.Product.Name
		}
		body.WriteString(fmt.Sprintf("- %s x%d @ %s = %s\n",
			itemName, item.Quantity, item.UnitPrice.StringFixed(2), item.Subtotal().StringFixed(2)))
	}
	body.WriteString(fmt.Sprintf("\nTotal: %s\n", order.TotalAmount.StringFixed(2)))
	// staff เห็นด้วยว่า SMS ถึงลูกค้าหรือไม่
	body.WriteString(fmt.Sprintf("Customer SMS: %s\n", smsStatus))

	return body.String()
}
