package models

import (
	"time"

	"github.com/google/uuid"
)

// Category หมวดหมู่สินค้า เป็น forest (parent nil = root)
// Invariant: ไม่มี cycle - node ห้ามเป็น ancestor ของตัวเอง
type Category struct {
	ID          uuid.UUID  `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name        string     `gorm:"size:200;uniqueIndex;not null"`
	Slug        string     `gorm:"size:200;uniqueIndex;not null"`
	Description string     `gorm:"type:text"`
	ParentID    *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Relations
	Parent   *Category  `gorm:"foreignKey:ParentID"`
	Children []Category `gorm:"foreignKey:ParentID"`
}

func (Category) TableName() string {
	return "categories"
}

// IsRoot ตรวจสอบว่าเป็น root category
func (c *Category) IsRoot() bool {
	return c.ParentID == nil
}
