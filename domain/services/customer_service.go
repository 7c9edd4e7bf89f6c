package services

import (
	"context"

	"github.com/google/uuid"

	"austino-shop/domain/dto"
	"austino-shop/domain/models"
)

type CustomerService interface {
	// GetOrCreateByUser หา customer ของ user ถ้าไม่มีสร้างใหม่ (lazy)
	GetOrCreateByUser(ctx context.Context, userID uuid.UUID) (*models.Customer, error)

	// UpdateContact อัปเดตเบอร์โทร/ที่อยู่
	UpdateContact(ctx context.Context, userID uuid.UUID, req *dto.UpdateCustomerRequest) (*models.Customer, error)
}
