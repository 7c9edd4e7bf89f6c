package utils

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
	"strings"
)

const (
	// ตัวอักษรที่ใช้สำหรับ random string (ไม่มีตัวที่สับสน เช่น 0, O, l, 1)
	alphanumeric = "abcdefghjkmnpqrstuvwxyz23456789"
)

// GenerateRandomString สร้าง random string ความยาว n ตัวอักษร
func GenerateRandomString(n int) string {
	result := make([]byte, n)
	for i := 0; i < n; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphanumeric))))
		if err != nil {
			// fallback ถ้า crypto/rand ใช้ไม่ได้
			result[i] = alphanumeric[i%len(alphanumeric)]
			continue
		}
		result[i] = alphanumeric[num.Int64()]
	}
	return string(result)
}

// GenerateOrderNumber สร้างเลข order แบบ "ORD-" + hex 8 ตัวพิมพ์ใหญ่
// เช่น ORD-3F9A01BC - unique constraint ที่ database เป็นตัวกันชนสุดท้าย
func GenerateOrderNumber() string {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		// fallback ถ้า crypto/rand ใช้ไม่ได้
		return "ORD-" + strings.ToUpper(GenerateRandomString(8))
	}
	return "ORD-" + strings.ToUpper(hex.EncodeToString(buf))
}
