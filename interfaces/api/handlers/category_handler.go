package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"austino-shop/domain/dto"
	"austino-shop/domain/models"
	"austino-shop/domain/services"
	"austino-shop/pkg/logger"
	"austino-shop/pkg/utils"
)

type CategoryHandler struct {
	categoryService services.CategoryService
}

func NewCategoryHandler(categoryService services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	category, err := h.categoryService.Create(ctx, &req)
	if err != nil {
		if errors.Is(err, models.ErrCategoryNotFound) {
			return utils.NotFoundResponse(c, "Parent category not found")
		}
		logger.ErrorContext(ctx, "Failed to create category", "error", err)
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.CreatedResponse(c, dto.CategoryToCategoryResponse(category))
}

// ResolvePath resolve/create สาย category ตาม path เช่น "Bakery > Bread > Sourdough"
func (h *CategoryHandler) ResolvePath(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.ResolvePathRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	category, err := h.categoryService.ResolveOrCreatePath(ctx, req.Path)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to resolve category path", "path", req.Path, "error", err)
		return utils.BadRequestResponse(c, err.Error())
	}

	resp := dto.CategoryToCategoryResponse(category)
	if fullPath, err := h.categoryService.FullPath(ctx, category.ID); err == nil {
		resp.FullPath = fullPath
	}

	return utils.SuccessResponse(c, resp)
}

func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid category ID")
	}

	category, err := h.categoryService.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrCategoryNotFound) {
			return utils.NotFoundResponse(c, "Category not found")
		}
		return utils.InternalServerErrorResponse(c)
	}

	resp := dto.CategoryToCategoryResponse(category)
	if fullPath, err := h.categoryService.FullPath(ctx, id); err == nil {
		resp.FullPath = fullPath
	}

	return utils.SuccessResponse(c, resp)
}

func (h *CategoryHandler) GetBySlug(c *fiber.Ctx) error {
	ctx := c.UserContext()

	category, err := h.categoryService.GetBySlug(ctx, c.Params("slug"))
	if err != nil {
		if errors.Is(err, models.ErrCategoryNotFound) {
			return utils.NotFoundResponse(c, "Category not found")
		}
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.CategoryToCategoryResponse(category))
}

// AveragePrice ราคาเฉลี่ยของสินค้า active ทั้ง subtree (รวม descendant ทุกชั้น)
func (h *CategoryHandler) AveragePrice(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid category ID")
	}

	result, err := h.categoryService.AveragePrice(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrCategoryNotFound) {
			return utils.NotFoundResponse(c, "Category not found")
		}
		logger.ErrorContext(ctx, "Failed to compute average price", "category_id", id, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, result)
}

func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid category ID")
	}

	var req dto.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	category, err := h.categoryService.Update(ctx, id, &req)
	if err != nil {
		if errors.Is(err, models.ErrCategoryNotFound) {
			return utils.NotFoundResponse(c, "Category not found")
		}
		if errors.Is(err, models.ErrCategoryCycle) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.ErrorContext(ctx, "Failed to update category", "category_id", id, "error", err)
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, dto.CategoryToCategoryResponse(category))
}

func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid category ID")
	}

	if err := h.categoryService.Delete(ctx, id); err != nil {
		if errors.Is(err, models.ErrCategoryNotFound) {
			return utils.NotFoundResponse(c, "Category not found")
		}
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, fiber.Map{"deleted": true})
}

// ListTree คืนทั้ง forest แบบ nested (roots พร้อม children)
func (h *CategoryHandler) ListTree(c *fiber.Ctx) error {
	ctx := c.UserContext()

	categories, err := h.categoryService.ListTree(ctx)
	if err != nil {
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.CategoryListResponse{
		Categories: dto.CategoriesToTreeResponses(categories),
	})
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	// ?tree=true ทำงานเหมือน /tree
	if c.QueryBool("tree") {
		return h.ListTree(c)
	}

	categories, err := h.categoryService.List(ctx)
	if err != nil {
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.CategoryListResponse{
		Categories: dto.CategoriesToCategoryResponses(categories),
	})
}
