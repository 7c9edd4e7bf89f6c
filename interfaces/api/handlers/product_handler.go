package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"austino-shop/application/serviceimpl"
	"austino-shop/domain/dto"
	"austino-shop/domain/models"
	"austino-shop/domain/services"
	"austino-shop/pkg/logger"
	"austino-shop/pkg/utils"
)

type ProductHandler struct {
	productService  services.ProductService
	categoryService services.CategoryService
}

func NewProductHandler(productService services.ProductService, categoryService services.CategoryService) *ProductHandler {
	return &ProductHandler{
		productService:  productService,
		categoryService: categoryService,
	}
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	product, err := h.productService.Create(ctx, &req)
	if err != nil {
		if errors.Is(err, models.ErrCategoryNotFound) {
			return utils.NotFoundResponse(c, "Category not found")
		}
		logger.ErrorContext(ctx, "Failed to create product", "error", err)
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.CreatedResponse(c, h.toResponse(c, product))
}

// CreateBulk สร้างสินค้าหลายตัวจาก payload เดียว - all or nothing
func (h *ProductHandler) CreateBulk(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.BulkCreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	products, err := h.productService.CreateBulk(ctx, &req)
	if err != nil {
		if errors.Is(err, models.ErrCategoryNotFound) {
			return utils.NotFoundResponse(c, "Category not found")
		}
		logger.ErrorContext(ctx, "Failed to create product batch", "error", err)
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.CreatedResponse(c, dto.ProductsToProductResponses(products))
}

func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid product ID")
	}

	product, err := h.productService.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceimpl.ErrProductNotFound) {
			return utils.NotFoundResponse(c, "Product not found")
		}
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, h.toResponse(c, product))
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid product ID")
	}

	var req dto.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	product, err := h.productService.Update(ctx, id, &req)
	if err != nil {
		if errors.Is(err, serviceimpl.ErrProductNotFound) {
			return utils.NotFoundResponse(c, "Product not found")
		}
		if errors.Is(err, models.ErrCategoryNotFound) {
			return utils.NotFoundResponse(c, "Category not found")
		}
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, h.toResponse(c, product))
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid product ID")
	}

	if err := h.productService.Delete(ctx, id); err != nil {
		if errors.Is(err, serviceimpl.ErrProductNotFound) {
			return utils.NotFoundResponse(c, "Product not found")
		}
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, fiber.Map{"deleted": true})
}

// List ค้นสินค้า - ?category=<id> กรองรวม subtree, ?minPrice/?maxPrice ช่วงราคา
func (h *ProductHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	query := &dto.ListProductsQuery{
		Page:  c.QueryInt("page", 1),
		Limit: c.QueryInt("limit", 20),
	}

	if raw := c.Query("category"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid category ID")
		}
		query.CategoryID = &id
	}
	if raw := c.Query("minPrice"); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid minPrice")
		}
		query.MinPrice = &price
	}
	if raw := c.Query("maxPrice"); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid maxPrice")
		}
		query.MaxPrice = &price
	}

	products, total, err := h.productService.List(ctx, query)
	if err != nil {
		if errors.Is(err, models.ErrCategoryNotFound) {
			return utils.NotFoundResponse(c, "Category not found")
		}
		logger.ErrorContext(ctx, "Failed to list products", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.PaginatedSuccessResponse(c, dto.ProductsToProductResponses(products), total, query.Page, query.Limit)
}

func (h *ProductHandler) toResponse(c *fiber.Ctx, product *models.Product) *dto.ProductResponse {
	resp := dto.ProductToProductResponse(product)
	if fullPath, err := h.categoryService.FullPath(c.UserContext(), product.CategoryID); err == nil {
		resp.CategoryFullPath = fullPath
	}
	return resp
}
