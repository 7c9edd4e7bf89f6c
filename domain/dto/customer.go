package dto

import (
	"time"

	"github.com/google/uuid"

	"austino-shop/domain/models"
)

// === Requests ===

// UpdateCustomerRequest อัปเดตข้อมูลติดต่อ (เบอร์ควรเป็น E.164 เช่น +2547xxxxxxxx)
type UpdateCustomerRequest struct {
	Phone   *string `json:"phone" validate:"omitempty,max=20"`
	Address *string `json:"address" validate:"omitempty,max=255"`
}

// === Responses ===

type CustomerResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Phone     string    `json:"phone,omitempty"`
	Address   *string   `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// === Mappers ===

func CustomerToCustomerResponse(customer *models.Customer) *CustomerResponse {
	if customer == nil {
		return nil
	}
	return &CustomerResponse{
		ID:        customer.ID,
		UserID:    customer.UserID,
		Phone:     customer.Phone,
		Address:   customer.Address,
		CreatedAt: customer.CreatedAt,
	}
}
