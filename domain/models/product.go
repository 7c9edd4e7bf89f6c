package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product สินค้าในแคตตาล็อก ราคาเป็น fixed-point decimal 2 ตำแหน่งเสมอ
// Invariant: StockQuantity >= 0 ตลอดเวลา (บังคับด้วย conditional decrement ตอนตัด stock)
type Product struct {
	ID            uuid.UUID       `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name          string          `gorm:"size:200;not null"`
	Description   string          `gorm:"type:text"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CategoryID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	StockQuantity int             `gorm:"not null;default:100"`
	IsActive      bool            `gorm:"default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Relations
	Category *Category `gorm:"foreignKey:CategoryID"`
}

func (Product) TableName() string {
	return "products"
}

// InStock ตรวจสอบว่ามี stock พอสำหรับจำนวนที่ขอ
func (p *Product) InStock(quantity int) bool {
	return p.StockQuantity >= quantity
}
