package handler

import (
	"errors"
	"net/http"

	"storefront-checkout/internal/dto"
	"storefront-checkout/internal/middleware"
	"storefront-checkout/internal/service"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CartHandler struct {
	cartService service.CartService
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

func (h *CartHandler) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	userID := middleware.UserID(c)

	items, err := h.cartService.GetItems(ctx, userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, items)
}

func (h *CartHandler) AddItem(c echo.Context) error {
	ctx := c.Request().Context()
	userID := middleware.UserID(c)

	var req dto.AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid_body", "Invalid request body")
	}

	if err := h.cartService.AddItem(ctx, userID, req.ProductID, req.Quantity); err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			return errorJSON(c, http.StatusBadRequest, "validation_error", validationErr.Error())
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorJSON(c, http.StatusNotFound, "not_found", "Product not found")
		}
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	ctx := c.Request().Context()
	userID := middleware.UserID(c)
	productID := c.Param("productID")

	if err := h.cartService.RemoveItem(ctx, userID, productID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
