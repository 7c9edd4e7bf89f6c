package models

import (
	"time"

	"github.com/google/uuid"
)

// Customer โปรไฟล์ลูกค้า ผูกกับ User แบบ 1:1
// สร้างแบบ lazy ตอนสั่งซื้อครั้งแรก ไม่มีการลบโดย workflow
type Customer struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Phone     string    `gorm:"size:20"`  // E.164 เช่น +2547xxxxxxxx
	Address   *string   `gorm:"size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// Relations
	User *User `gorm:"foreignKey:UserID"`
}

func (Customer) TableName() string {
	return "customers"
}

// HasPhone ตรวจสอบว่ามีเบอร์สำหรับส่ง SMS หรือไม่
func (c *Customer) HasPhone() bool {
	return c.Phone != ""
}
