package utils

import (
	"regexp"
	"testing"
)

func TestGenerateOrderNumber_Format(t *testing.T) {
	// ORD- ตามด้วย hex 8 ตัวพิมพ์ใหญ่
	pattern := regexp.MustCompile(`^ORD-[0-9A-F]{8}$`)

	for i := 0; i < 100; i++ {
		number := GenerateOrderNumber()
		if !pattern.MatchString(number) {
			t.Fatalf("unexpected order number format: %q", number)
		}
	}
}

func TestGenerateOrderNumber_Uniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		number := GenerateOrderNumber()
		if seen[number] {
			t.Fatalf("duplicate order number in 1000 draws: %s", number)
		}
		seen[number] = true
	}
}

func TestGenerateRandomString_Length(t *testing.T) {
	for _, n := range []int{1, 4, 8, 16} {
		if got := GenerateRandomString(n); len(got) != n {
			t.Errorf("expected length %d, got %d", n, len(got))
		}
	}
}
