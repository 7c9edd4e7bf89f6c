package serviceimpl

import (
	"context"
	"time"

	"github.com/google/uuid"

	"austino-shop/domain/dto"
	"austino-shop/domain/models"
	"austino-shop/domain/repositories"
	"austino-shop/domain/services"
	"austino-shop/pkg/logger"
)

type CustomerServiceImpl struct {
	customerRepo repositories.CustomerRepository
	userRepo     repositories.UserRepository
}

func NewCustomerService(customerRepo repositories.CustomerRepository, userRepo repositories.UserRepository) services.CustomerService {
	return &CustomerServiceImpl{
		customerRepo: customerRepo,
		userRepo:     userRepo,
	}
}

// GetOrCreateByUser หา customer profile ของ user ถ้าไม่มีสร้างเปล่า ๆ ให้
// เรียกตอนสั่งซื้อครั้งแรก - user ทุกคนที่ login แล้วสั่งซื้อได้ทันที
func (s *CustomerServiceImpl) GetOrCreateByUser(ctx context.Context, userID uuid.UUID) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByUserID(ctx, userID)
	if err == nil {
		return customer, nil
	}

	// ตรวจว่า user มีจริงก่อนสร้าง profile
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	customer = &models.Customer{
		ID:        uuid.New(),
		UserID:    user.ID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		// race ตอนสร้างพร้อมกัน - uniqueIndex ที่ user_id กันซ้ำ อ่านตัวที่ชนะมาใช้
		if existing, getErr := s.customerRepo.GetByUserID(ctx, userID); getErr == nil {
			return existing, nil
		}
		logger.ErrorContext(ctx, "Failed to create customer profile", "user_id", userID, "error", err)
		return nil, err
	}

	customer.User = user
	logger.InfoContext(ctx, "Customer profile created", "user_id", userID, "customer_id", customer.ID)

	return customer, nil
}

func (s *CustomerServiceImpl) UpdateContact(ctx context.Context, userID uuid.UUID, req *dto.UpdateCustomerRequest) (*models.Customer, error) {
	customer, err := s.GetOrCreateByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Address != nil {
		customer.Address = req.Address
	}
	customer.UpdatedAt = time.Now()

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		logger.ErrorContext(ctx, "Failed to update customer contact", "customer_id", customer.ID, "error", err)
		return nil, err
	}

	return customer, nil
}
