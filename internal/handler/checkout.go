package handler

import (
	"errors"
	"net/http"

	"storefront-checkout/internal/dto"
	"storefront-checkout/internal/gateway"
	"storefront-checkout/internal/middleware"
	"storefront-checkout/internal/service"

	"github.com/labstack/echo/v4"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

func (h *CheckoutHandler) Checkout(c echo.Context) error {
	ctx := c.Request().Context()

	userID := middleware.UserID(c)
	if userID == "" {
		return errorJSON(c, http.StatusUnauthorized, "unauthorized", "Unauthorized")
	}

	var req dto.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid_body", "Invalid request body")
	}

	resp, err := h.checkoutService.Checkout(ctx, userID, &req)
	if err != nil {
		return checkoutError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

func checkoutError(c echo.Context, err error) error {
	var validationErr *service.ValidationError
	var declinedErr *service.PaymentDeclinedError
	var gatewayErr *gateway.GatewayError

	switch {
	case errors.As(err, &validationErr):
		return errorJSON(c, http.StatusBadRequest, "validation_error", validationErr.Error())
	case errors.Is(err, service.ErrEmptyCart):
		return errorJSON(c, http.StatusBadRequest, "empty_cart", "Cart is empty")
	case errors.As(err, &declinedErr):
		return errorJSON(c, http.StatusBadRequest, "payment_failed", declinedErr.Error())
	case errors.As(err, &gatewayErr):
		return errorJSON(c, http.StatusBadRequest, "payment_failed", gatewayErr.Message)
	case errors.Is(err, service.ErrOrderCreation):
		return errorJSON(c, http.StatusInternalServerError, "order_creation_failed", "Failed to create order")
	case errors.Is(err, service.ErrOrderItemsCreation):
		return errorJSON(c, http.StatusInternalServerError, "order_items_failed", "Failed to create order items")
	default:
		return errorJSON(c, http.StatusInternalServerError, "internal_error", "Internal server error")
	}
}

func errorJSON(c echo.Context, status int, reason, message string) error {
	return c.JSON(status, dto.ErrorResponse{
		Reason: reason,
		Error:  message,
	})
}
