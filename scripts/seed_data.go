package main

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"austino-shop/domain/models"
)

// Connection string ตาม .env
const dsn = "host=localhost user=postgres password=postgres dbname=austino_shop port=5432 sslmode=disable"

func main() {
	fmt.Println("============================================")
	fmt.Println("  Austino Shop - Seed Dev Data")
	fmt.Println("============================================")
	fmt.Println()

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	bakery := seedCategory(db, "Bakery", nil)
	bread := seedCategory(db, "Bread", &bakery.ID)
	seedCategory(db, "Pastry", &bakery.ID)
	dairy := seedCategory(db, "Dairy", nil)

	seedProduct(db, "Sourdough Loaf", "2.99", 40, bread.ID)
	seedProduct(db, "Baguette", "1.80", 60, bread.ID)
	seedProduct(db, "Whole Milk 1L", "1.20", 120, dairy.ID)
	seedProduct(db, "Butter 250g", "3.45", 80, dairy.ID)

	fmt.Println()
	fmt.Println("============================================")
	fmt.Println("  Done! Ready for local testing.")
	fmt.Println("============================================")
}

func seedCategory(db *gorm.DB, name string, parentID *uuid.UUID) *models.Category {
	category := &models.Category{
		Name:     name,
		Slug:     slug.Make(name),
		ParentID: parentID,
	}

	if err := db.Where("slug = ?", category.Slug).FirstOrCreate(category).Error; err != nil {
		log.Fatal("Failed to seed category:", err)
	}
	fmt.Printf("  category: %s\n", name)
	return category
}

func seedProduct(db *gorm.DB, name, price string, stock int, categoryID uuid.UUID) {
	product := &models.Product{
		Name:          name,
		Price:         decimal.RequireFromString(price),
		StockQuantity: stock,
		CategoryID:    categoryID,
		IsActive:      true,
	}

	if err := db.Where("name = ?", name).FirstOrCreate(product).Error; err != nil {
		log.Fatal("Failed to seed product:", err)
	}
	fmt.Printf("  product: %s (%s)\n", name, price)
}
