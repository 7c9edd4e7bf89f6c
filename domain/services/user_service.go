package services

import (
	"context"

	"github.com/google/uuid"

	"austino-shop/domain/dto"
	"austino-shop/domain/models"
)

type UserService interface {
	// Register สมัคร user ใหม่ (role เริ่มที่ "user" เสมอ)
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)

	// Login ตรวจ credential แล้วคืน JWT
	Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error)

	// GetProfile ดึง user ตาม ID
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)

	// UpdateRole เปลี่ยน role บน identity record - ทางเดียวที่สิทธิ์เปลี่ยนได้
	UpdateRole(ctx context.Context, userID uuid.UUID, role string) (*models.User, error)
}
