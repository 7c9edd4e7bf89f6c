package repositories

import (
	"context"

	"github.com/google/uuid"

	"austino-shop/domain/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	// ListStaff ดึง admin ที่ active และมี email (ผู้รับแจ้งเตือน order)
	ListStaff(ctx context.Context) ([]*models.User, error)
}
