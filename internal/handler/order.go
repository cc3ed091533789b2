package handler

import (
	"errors"
	"net/http"

	"storefront-checkout/internal/middleware"
	"storefront-checkout/internal/service"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

func (h *OrderHandler) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()
	userID := middleware.UserID(c)

	orders, err := h.orderService.ListForUser(ctx, userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()
	userID := middleware.UserID(c)
	orderID := c.Param("orderID")

	order, err := h.orderService.GetForUser(ctx, orderID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorJSON(c, http.StatusNotFound, "not_found", "Order not found")
		}
		return err
	}

	return c.JSON(http.StatusOK, order)
}
