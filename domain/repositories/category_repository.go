package repositories

import (
	"context"

	"github.com/google/uuid"

	"austino-shop/domain/models"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	// GetByNameUnderParent หา category ชื่อตรงเป๊ะใต้ parent เดียวกัน (parentID nil = root)
	// ใช้โดย path resolver เพื่อให้ idempotent
	GetByNameUnderParent(ctx context.Context, name string, parentID *uuid.UUID) (*models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*models.Category, error)
	ListTree(ctx context.Context) ([]*models.Category, error)
	ListByParent(ctx context.Context, parentID uuid.UUID) ([]*models.Category, error)
}
