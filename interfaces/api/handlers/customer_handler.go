package handlers

import (
	"github.com/gofiber/fiber/v2"

	"austino-shop/domain/dto"
	"austino-shop/domain/services"
	"austino-shop/pkg/logger"
	"austino-shop/pkg/utils"
)

type CustomerHandler struct {
	customerService services.CustomerService
}

func NewCustomerHandler(customerService services.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
	}
}

// GetMe ดึง customer profile ของ user ที่ login อยู่ (สร้างให้ถ้ายังไม่มี)
func (h *CustomerHandler) GetMe(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	customer, err := h.customerService.GetOrCreateByUser(ctx, userCtx.ID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load customer profile", "user_id", userCtx.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.CustomerToCustomerResponse(customer))
}

// UpdateMe อัปเดตข้อมูลติดต่อ (เบอร์โทรสำหรับ SMS, ที่อยู่จัดส่ง)
func (h *CustomerHandler) UpdateMe(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.UpdateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	customer, err := h.customerService.UpdateContact(ctx, userCtx.ID, &req)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to update customer contact", "user_id", userCtx.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.CustomerToCustomerResponse(customer))
}
