package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"austino-shop/domain/dto"
	"austino-shop/domain/models"
	"austino-shop/domain/repositories"
	"austino-shop/domain/services"
	"austino-shop/pkg/logger"
	"austino-shop/pkg/utils"
)

type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// PlaceOrder สั่งซื้อ - ตอบ 201 พร้อม order + notification report
// mapping: empty/insufficient → 400, product not found → 404, อื่น ๆ → 500
func (h *OrderHandler) PlaceOrder(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.PlaceOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	order, report, err := h.orderService.PlaceOrder(ctx, userCtx.ID, req.Items)
	if err != nil {
		return h.mapPlaceOrderError(c, err)
	}

	return utils.CreatedResponse(c, &dto.PlaceOrderResponse{
		Order:         *dto.OrderToOrderResponse(order),
		Notifications: *report,
	})
}

func (h *OrderHandler) mapPlaceOrderError(c *fiber.Ctx, err error) error {
	ctx := c.UserContext()

	if errors.Is(err, models.ErrEmptyOrder) {
		return utils.BadRequestResponse(c, err.Error())
	}

	var notFound *models.ProductNotFoundError
	if errors.As(err, &notFound) {
		return utils.NotFoundResponse(c, notFound.Error())
	}

	var insufficient *models.InsufficientStockError
	if errors.As(err, &insufficient) {
		return utils.BadRequestWithDetails(c, insufficient.Error(), fiber.Map{
			"productId": insufficient.ProductID,
			"requested": insufficient.Requested,
			"available": insufficient.Available,
		})
	}

	logger.ErrorContext(ctx, "Order placement failed", "error", err)
	return utils.InternalServerErrorResponse(c)
}

func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid order ID")
	}

	order, err := h.orderService.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrOrderNotFound) {
			return utils.NotFoundResponse(c, "Order not found")
		}
		return utils.InternalServerErrorResponse(c)
	}

	// เจ้าของดูได้ admin ดูได้ คนอื่นตอบ 404 (ไม่เปิดเผยว่า order มีอยู่)
	if userCtx.Role != models.RoleAdmin {
		if order.Customer == nil || order.Customer.UserID != userCtx.ID {
			return utils.NotFoundResponse(c, "Order not found")
		}
	}

	return utils.SuccessResponse(c, dto.OrderToOrderResponse(order))
}

func (h *OrderHandler) GetByNumber(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	order, err := h.orderService.GetByNumber(ctx, c.Params("number"))
	if err != nil {
		if errors.Is(err, models.ErrOrderNotFound) {
			return utils.NotFoundResponse(c, "Order not found")
		}
		return utils.InternalServerErrorResponse(c)
	}

	if userCtx.Role != models.RoleAdmin {
		if order.Customer == nil || order.Customer.UserID != userCtx.ID {
			return utils.NotFoundResponse(c, "Order not found")
		}
	}

	return utils.SuccessResponse(c, dto.OrderToOrderResponse(order))
}

// ListMine ประวัติ order ของ user ที่ login อยู่
func (h *OrderHandler) ListMine(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}

	orders, total, err := h.orderService.ListByUser(ctx, userCtx.ID, (page-1)*limit, limit)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list orders", "user_id", userCtx.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.PaginatedSuccessResponse(c, dto.OrdersToOrderResponses(orders), total, page, limit)
}

// List order ทั้งหมด กรอง ?status= และช่วงวันที่ (admin)
func (h *OrderHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}

	filter := repositories.OrderFilter{
		Offset: (page - 1) * limit,
		Limit:  limit,
	}

	if raw := c.Query("status"); raw != "" {
		status := models.OrderStatus(raw)
		if !models.ValidOrderStatus(status) {
			return utils.BadRequestResponse(c, "Invalid order status")
		}
		filter.Status = status
	}
	if raw := c.Query("startDate"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid startDate")
		}
		filter.StartDate = &t
	}
	if raw := c.Query("endDate"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid endDate")
		}
		filter.EndDate = &t
	}

	orders, total, err := h.orderService.List(ctx, filter)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list orders", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.PaginatedSuccessResponse(c, dto.OrdersToOrderResponses(orders), total, page, limit)
}

// UpdateStatus เปลี่ยนสถานะ order (admin) - transition ที่ไม่อนุญาตตอบ 400
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid order ID")
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	order, err := h.orderService.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		if errors.Is(err, models.ErrOrderNotFound) {
			return utils.NotFoundResponse(c, "Order not found")
		}
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, dto.OrderToOrderResponse(order))
}
