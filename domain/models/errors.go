package models

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Error ของ order workflow - handler ใช้ map เป็น HTTP status
// (empty/insufficient → 400, not found → 404, อื่น ๆ → 500)
var (
	// ErrEmptyOrder คำสั่งซื้อไม่มีรายการสินค้า
	ErrEmptyOrder = errors.New("order must contain at least one item")

	// ErrOrderNotFound หา order ไม่เจอ
	ErrOrderNotFound = errors.New("order not found")

	// ErrCategoryNotFound หา category ไม่เจอ
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryCycle การย้าย parent จะทำให้เกิด cycle
	ErrCategoryCycle = errors.New("category cannot be moved under its own descendant")
)

// ProductNotFoundError สินค้าที่อ้างถึงไม่มีอยู่หรือไม่ active
type ProductNotFoundError struct {
	ProductID uuid.UUID
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %s not found or inactive", e.ProductID)
}

// InsufficientStockError stock ไม่พอสำหรับจำนวนที่ขอ
// Available คือจำนวนคงเหลือตอนตรวจ เพื่อให้ caller แก้คำขอได้
type InsufficientStockError struct {
	ProductID   uuid.UUID
	ProductName string
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: requested %d, available %d",
		e.ProductName, e.Requested, e.Available)
}

// StockConflictError conditional decrement แถวไม่ถูก update (แพ้ race หรือ stock หมด)
// repository คืน error นี้ service แปลงเป็น InsufficientStockError พร้อมจำนวนคงเหลือ
type StockConflictError struct {
	ProductID uuid.UUID
}

func (e *StockConflictError) Error() string {
	return fmt.Sprintf("stock decrement conflict for product %s", e.ProductID)
}
